package pjson

// Node is an opaque handle to a value produced by a Builder. The core
// package never inspects it; it only ever passes handles it previously
// received back into the same Builder.
type Node any

// CommentPlacement records the semantic relation between a comment and the
// value it is attached to.
type CommentPlacement int

const (
	// Before means the comment appears immediately before the value it is
	// attached to (on its own line, or preceding a value on a later line).
	Before CommentPlacement = iota
	// AfterOnSameLine means a // or single-line /* */ comment trails the
	// value on the same source line.
	AfterOnSameLine
	// After means the comment follows the whole document's root value,
	// with no further value to attach to.
	After
)

// Builder is the abstract collaborator the core parser drives to construct
// a value: it only needs something able to hold
// null/bool/int/uint/double/string/array/object, attach byte-range
// offsets, and attach comments. The core never constructs a value tree
// itself.
//
// A ready-to-use implementation backed by a simple in-memory tree lives in
// the internal/value package.
type Builder interface {
	NewNull() Node
	NewBool(b bool) Node
	NewInt(i int64) Node
	NewUint(u uint64) Node
	NewDouble(f float64) Node
	NewString(s string) Node
	NewObject() Node
	NewArray() Node

	// ObjectSet installs val under key in obj. Keys are unique within an
	// object: last-write-wins unless the caller has already rejected the
	// duplicate via ObjectHas.
	ObjectSet(obj Node, key string, val Node)
	// ObjectHas reports whether obj already has a member named key. Used by
	// the Value Parser to implement RejectDupKeys.
	ObjectHas(obj Node, key string) bool
	// ArrayAppend appends val to the end of arr.
	ArrayAppend(arr Node, val Node)

	SetOffsets(n Node, start, limit int)
	AttachComment(n Node, text string, placement CommentPlacement)

	// Swap exchanges the payload of dst and src in place, leaving src as a
	// disposable husk. This backs the array/object-then-fill idiom: the
	// parser allocates a slot, recurses into a fresh value, then swaps the
	// recursed value's payload into the slot.
	Swap(dst, src Node)
}
