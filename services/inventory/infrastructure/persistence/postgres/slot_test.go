package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/wherearethenoodles/pkg/database"
	"github.com/ghuser/wherearethenoodles/pkg/logger"
)

// Integration test, skipped unless DATABASE_URL is set.
func TestSlotIntegration(t *testing.T) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}
	ctx := context.Background()

	db, err := database.NewPool(ctx, dbURL, logger.Discard())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer db.Close()

	s, err := New(ctx, db)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	key := "test.slot." + uuid.NewString()
	t.Cleanup(func() {
		_, _ = db.DB().ExecContext(context.Background(), `DELETE FROM storage_slots WHERE key = $1`, key)
	})

	if _, ok, err := s.Get(ctx, key); ok || err != nil {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	for _, v := range []string{`[{"id":"a"}]`, `[]`} {
		if err := s.Set(ctx, key, []byte(v)); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, ok, err := s.Get(ctx, key)
		if err != nil || !ok || string(got) != v {
			t.Fatalf("Get: %q ok=%v err=%v", got, ok, err)
		}
	}
}
