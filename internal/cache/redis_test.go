package cache

import (
	"context"
	"testing"
)

// Without Init the cache is disabled and every helper must behave as a
// silent miss, so catalog reads fall through to Mongo.
func TestDisabledCache(t *testing.T) {
	if Enabled() {
		t.Fatal("cache reports enabled without Init")
	}

	var dest []string
	hit, err := GetJSON(context.Background(), "colleges:all", &dest)
	if err != nil {
		t.Errorf("GetJSON() error: %v", err)
	}
	if hit {
		t.Error("GetJSON() reported a hit with no client")
	}

	if err := SetJSON(context.Background(), "colleges:all", []string{"x"}, 60); err != nil {
		t.Errorf("SetJSON() error: %v", err)
	}
}
