package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/kalenwatt/pjson"
)

func TestTreeBuilderScalarConstructors(t *testing.T) {
	var b TreeBuilder

	if got := b.NewNull().(*Value); got.Kind != Null {
		t.Fatalf("NewNull: got %+v", got)
	}
	if got := b.NewBool(true).(*Value); got.Kind != Bool || !got.B {
		t.Fatalf("NewBool: got %+v", got)
	}
	if got := b.NewInt(-5).(*Value); got.Kind != Int || got.I != -5 {
		t.Fatalf("NewInt: got %+v", got)
	}
	if got := b.NewUint(5).(*Value); got.Kind != Uint || got.U != 5 {
		t.Fatalf("NewUint: got %+v", got)
	}
	if got := b.NewDouble(1.5).(*Value); got.Kind != Double || got.D != 1.5 {
		t.Fatalf("NewDouble: got %+v", got)
	}
	if got := b.NewString("hi").(*Value); got.Kind != String || got.S != "hi" {
		t.Fatalf("NewString: got %+v", got)
	}
}

func TestTreeBuilderObjectPreservesInsertionOrder(t *testing.T) {
	var b TreeBuilder
	obj := b.NewObject()
	b.ObjectSet(obj, "z", b.NewInt(1))
	b.ObjectSet(obj, "a", b.NewInt(2))

	o := obj.(*Value)
	want := []string{"z", "a"}
	if len(o.ObjOrder) != 2 || o.ObjOrder[0] != want[0] || o.ObjOrder[1] != want[1] {
		t.Fatalf("got order %v, want %v", o.ObjOrder, want)
	}
	if !b.ObjectHas(obj, "a") || b.ObjectHas(obj, "missing") {
		t.Fatalf("ObjectHas behaved unexpectedly")
	}
}

func TestTreeBuilderObjectSetOverwriteKeepsOrder(t *testing.T) {
	var b TreeBuilder
	obj := b.NewObject()
	b.ObjectSet(obj, "a", b.NewInt(1))
	b.ObjectSet(obj, "a", b.NewInt(2))

	o := obj.(*Value)
	if len(o.ObjOrder) != 1 {
		t.Fatalf("overwrite should not duplicate ObjOrder entries: %v", o.ObjOrder)
	}
	if o.Obj["a"].I != 2 {
		t.Fatalf("got %d, want 2", o.Obj["a"].I)
	}
}

func TestTreeBuilderArrayAppend(t *testing.T) {
	var b TreeBuilder
	arr := b.NewArray()
	b.ArrayAppend(arr, b.NewInt(1))
	b.ArrayAppend(arr, b.NewInt(2))

	a := arr.(*Value)
	if len(a.Arr) != 2 || a.Arr[0].I != 1 || a.Arr[1].I != 2 {
		t.Fatalf("got %+v", a.Arr)
	}
}

func TestTreeBuilderSetOffsets(t *testing.T) {
	var b TreeBuilder
	n := b.NewInt(1)
	b.SetOffsets(n, 3, 7)
	v := n.(*Value)
	if v.OffsetStart != 3 || v.OffsetLimit != 7 {
		t.Fatalf("got %+v", v)
	}
}

func TestTreeBuilderAttachCommentAppends(t *testing.T) {
	var b TreeBuilder
	n := b.NewInt(1)
	b.AttachComment(n, "first", pjson.Before)
	b.AttachComment(n, "second", pjson.After)

	v := n.(*Value)
	if len(v.Comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(v.Comments))
	}
	if v.Comments[0].Text != "first" || v.Comments[0].Placement != pjson.Before {
		t.Fatalf("got %+v", v.Comments[0])
	}
	if v.Comments[1].Text != "second" || v.Comments[1].Placement != pjson.After {
		t.Fatalf("got %+v", v.Comments[1])
	}
}

func TestTreeBuilderSwapKeepsDestinationIdentity(t *testing.T) {
	var b TreeBuilder
	obj := b.NewObject()
	slot := b.NewNull()
	b.ObjectSet(obj, "k", slot)

	filled := b.NewInt(42)
	b.Swap(slot, filled)

	o := obj.(*Value)
	if o.Obj["k"] != slot.(*Value) {
		t.Fatalf("Swap must preserve dst's pointer identity in the parent slot")
	}
	if o.Obj["k"].Kind != Int || o.Obj["k"].I != 42 {
		t.Fatalf("got %+v, want the swapped-in int payload", o.Obj["k"])
	}
}

func TestDumpScalarsAndContainers(t *testing.T) {
	var b TreeBuilder
	obj := b.NewObject()
	b.ObjectSet(obj, "a", b.NewInt(1))
	arr := b.NewArray()
	b.ArrayAppend(arr, b.NewBool(true))
	b.ArrayAppend(arr, b.NewString("x"))
	b.ObjectSet(obj, "b", arr)

	got := obj.(*Value).Dump()
	want := `{"a":1,"b":[true,"x"]}`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDumpNilValueIsNull(t *testing.T) {
	var v *Value
	if got := v.Dump(); got != "null" {
		t.Fatalf("got %q, want null", got)
	}
}

func TestBuiltTreeMatchesExpectedShape(t *testing.T) {
	var b TreeBuilder
	obj := b.NewObject()
	b.ObjectSet(obj, "name", b.NewString("ok"))
	arr := b.NewArray()
	b.ArrayAppend(arr, b.NewInt(1))
	b.ArrayAppend(arr, b.NewInt(2))
	b.ObjectSet(obj, "nums", arr)

	got := obj.(*Value)
	want := &Value{
		Kind:     Object,
		ObjOrder: []string{"name", "nums"},
		Obj: map[string]*Value{
			"name": {Kind: String, S: "ok"},
			"nums": {
				Kind: Array,
				Arr: []*Value{
					{Kind: Int, I: 1},
					{Kind: Int, I: 2},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}
