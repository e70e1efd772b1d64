package uid

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateGameIDIsUniqueUUID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateGameID()
		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("game ID %q is not a UUID: %v", id, err)
		}
		if parsed.Version() != 4 {
			t.Fatalf("expected version 4, got %d", parsed.Version())
		}
		if seen[id] {
			t.Fatalf("duplicate game ID %s", id)
		}
		seen[id] = true
	}
}
