package pjson

import "testing"

func TestDefaultFeaturesCollectCommentsForcedOffWithoutComments(t *testing.T) {
	f := DefaultFeatures()
	f.AllowComments = false
	f.CollectComments = true
	f = f.normalized()
	if f.CollectComments {
		t.Fatalf("CollectComments should be forced off when AllowComments is false")
	}
}

func TestFeaturesZeroStackLimitIsKept(t *testing.T) {
	f := Features{}.normalized()
	if f.StackLimit != 0 {
		t.Fatalf("got %d, want 0", f.StackLimit)
	}
}

func TestStrictFeaturesPreset(t *testing.T) {
	f := StrictFeatures()
	if f.AllowComments || !f.StrictRoot || !f.RejectDupKeys || !f.FailIfExtra {
		t.Fatalf("unexpected strict preset: %+v", f)
	}
}

func TestFeaturesFromMapRejectsUnknownKey(t *testing.T) {
	_, err := FeaturesFromMap(map[string]any{"notAKey": true})
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestFeaturesFromMapResolvesKnownKeys(t *testing.T) {
	f, err := FeaturesFromMap(map[string]any{
		"allowComments": false,
		"strictRoot":    true,
		"stackLimit":    float64(42), // as if decoded from JSON
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.AllowComments || !f.StrictRoot || f.StackLimit != 42 {
		t.Fatalf("got %+v", f)
	}
}
