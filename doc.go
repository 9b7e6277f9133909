// Package ruuid provides a strict, allocation-light 128-bit identifier type
// that stores its bytes in the RFC 4122 big-endian field layout.
//
// The package does not generate identifiers. It parses, formats, orders and
// hashes values that were produced elsewhere, and it never inspects the
// version or variant bits when doing so.
//
// Basic Usage:
//
//	id, err := ruuid.Parse("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id)                     // 550e8400-e29b-41d4-a716-446655440000
//	fmt.Printf("%#x\n", id.TimeLow())   // 0x550e8400
//	fmt.Printf("%#x\n", id.Node())      // 0x446655440000
//
// Accepted Forms:
//
// Parse accepts the 36-character dashed form and the 32-digit undashed form,
// each optionally wrapped in braces, with hex digits in either case:
//
//	550e8400-e29b-41d4-a716-446655440000
//	{550e8400-e29b-41d4-a716-446655440000}
//	550E8400E29B41D4A716446655440000
//	{550e8400e29b41d4a716446655440000}
//
// Dashes and braces are all-or-none. String always renders the lowercase
// dashed form without braces, and Parse(id.String()) == id for every id.
// Failures wrap ErrInvalidFormat:
//
//	if _, err := ruuid.Parse(s); errors.Is(err, ruuid.ErrInvalidFormat) {
//	    // reject input
//	}
//
// Ordering and Hashing:
//
// UUID is a comparable array, so it works as a map key as is. Compare orders
// byte-wise with byte 0 most significant, matching bytes.Compare on the raw
// values, and can be handed to slices.SortFunc. Hash folds the value to 64
// bits for custom hash tables; it is not collision resistant.
//
// Thread Safety:
//
// UUID is a plain value with no internal state. All functions and methods are
// safe for concurrent use.
package ruuid
