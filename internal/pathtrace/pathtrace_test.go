package pathtrace

import (
	"reflect"
	"testing"
)

func TestTrackerStringRendersPath(t *testing.T) {
	var tr Tracker
	tr.PushKey("users")
	tr.PushIndex(3)
	tr.PushKey("name")

	want := "$.users[3].name"
	if got := tr.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTrackerPopUnwindsOneSegment(t *testing.T) {
	var tr Tracker
	tr.PushKey("a")
	tr.PushKey("b")
	tr.Pop()
	if got, want := tr.String(), "$.a"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTrackerPopPastRootIsNoOp(t *testing.T) {
	var tr Tracker
	tr.Pop()
	tr.Pop()
	if got, want := tr.String(), "$"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTrackerSlice(t *testing.T) {
	var tr Tracker
	tr.PushKey("a")
	tr.PushIndex(2)
	got := tr.Slice()
	want := []any{"a", 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
