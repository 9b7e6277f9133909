package ruuid

import (
	"testing"
)

func BenchmarkUUID_String(b *testing.B) {
	uuid := randomUUID(b)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.String()
	}
}

func BenchmarkParse(b *testing.B) {
	s := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_NoHyphens(b *testing.B) {
	s := "f47ac10b58cc4372a5670e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Braces(b *testing.B) {
	s := "{f47ac10b-58cc-4372-a567-0e02b2c3d479}"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Invalid(b *testing.B) {
	s := "f47ac10b-58cc-4372-a567-0e02b2c3d47g"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(s); err == nil {
			b.Fatal("expected error")
		}
	}
}

func BenchmarkUUID_MarshalText(b *testing.B) {
	uuid := randomUUID(b)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := uuid.MarshalText()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_UnmarshalText(b *testing.B) {
	text := []byte("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var uuid UUID
		err := uuid.UnmarshalText(text)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_MarshalBinary(b *testing.B) {
	uuid := randomUUID(b)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := uuid.MarshalBinary()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_UnmarshalBinary(b *testing.B) {
	uuid := randomUUID(b)
	data, _ := uuid.MarshalBinary()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var u UUID
		err := u.UnmarshalBinary(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_EncodeToHex(b *testing.B) {
	uuid := randomUUID(b)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.EncodeToHex()
	}
}

func BenchmarkDecodeFromHex(b *testing.B) {
	s := "f47ac10b58cc4372a5670e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := DecodeFromHex(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_EncodeToBase64(b *testing.B) {
	uuid := randomUUID(b)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.EncodeToBase64()
	}
}

func BenchmarkDecodeFromBase64(b *testing.B) {
	s := randomUUID(b).EncodeToBase64()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := DecodeFromBase64(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_Compare(b *testing.B) {
	uuid1 := randomUUID(b)
	uuid2 := randomUUID(b)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid1.Compare(uuid2)
	}
}

func BenchmarkUUID_Hash(b *testing.B) {
	uuid := randomUUID(b)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.Hash()
	}
}

func BenchmarkUUID_Fields(b *testing.B) {
	uuid := randomUUID(b)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.TimeLow()
		_ = uuid.TimeMid()
		_ = uuid.TimeHiAndVersion()
		_ = uuid.ClockSeq()
		_ = uuid.Node()
	}
}

// Parsing shares no state, so it should scale across goroutines.
func BenchmarkParse_Parallel(b *testing.B) {
	s := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := Parse(s); err != nil {
				b.Fatal(err)
			}
		}
	})
}
