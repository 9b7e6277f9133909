package mysqlstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Lzww0608/ruuid"
	"github.com/Lzww0608/ruuid/internal/store"
)

func TestConfig(t *testing.T) {
	cfg, err := Config("user:secret@tcp(127.0.0.1:3306)/ids")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3306", cfg.Addr)
	assert.Equal(t, "ids", cfg.DBName)
	assert.True(t, cfg.ParseTime)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	cfg, err = Config("user:secret@tcp(db:3306)/ids?timeout=1s")
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Timeout)
}

func TestConfig_Invalid(t *testing.T) {
	for _, dsn := range []string{
		"user:secret@tcp(127.0.0.1:3306)/",
		"user:secret@tcp(127.0.0.1:3306",
		"user:secret@tcp(127.0.0.1:3306)/ids?timeout=soon",
	} {
		_, err := Config(dsn)
		assert.Error(t, err, dsn)
	}
}

// TestStore_Integration needs a disposable database, e.g.
// UUIDSTORE_TEST_MYSQL_DSN='root:root@tcp(127.0.0.1:3306)/ruuid_test'.
func TestStore_Integration(t *testing.T) {
	dsn := os.Getenv("UUIDSTORE_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("UUIDSTORE_TEST_MYSQL_DSN not set")
	}

	ctx := context.Background()
	s, err := Open(dsn, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.EnsureSchema(ctx))
	_, err = s.db.ExecContext(ctx, "DELETE FROM uuid_records")
	require.NoError(t, err)

	a := ruuid.MustParse("ffffffff-0000-0000-0000-000000000000")
	b := ruuid.MustParse("00000000-0000-0000-0000-000000000001")

	require.NoError(t, s.Put(ctx, store.Record{ID: a, Label: "a"}))
	require.NoError(t, s.Put(ctx, store.Record{ID: b, Label: "b"}))
	require.NoError(t, s.Put(ctx, store.Record{ID: a, Label: "a2"}))

	got, err := s.Get(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "a2", got.Label)

	recs, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []store.Record{{ID: b, Label: "b"}, {ID: a, Label: "a2"}}, recs)

	require.NoError(t, s.Delete(ctx, a))
	assert.ErrorIs(t, s.Delete(ctx, a), store.ErrNotFound)
	_, err = s.Get(ctx, a)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
