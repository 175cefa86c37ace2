// Package value is a default, ready-to-use implementation of pjson.Builder.
// The core parser keeps the JSON value tree itself out of its scope; this
// package exists so the repository has something concrete for
// cmd/pjsonlint to print and for tests to assert against. It carries no
// comparison or canonical-serialization support beyond Dump, a debug aid.
//
// Translated into an idiomatic Go tagged union rather than a C++-style
// class hierarchy with a type enum.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kalenwatt/pjson"
)

// Kind tags the payload a Value currently holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Uint
	Double
	String
	Array
	Object
)

// Comment is a single comment annotation attached to a Value.
type Comment struct {
	Text      string
	Placement pjson.CommentPlacement
}

// Value is a tagged union capable of holding any of the payloads the core
// Parser installs, plus the byte-offset and comment annotations a Value
// Builder is required to carry.
type Value struct {
	Kind Kind

	B bool
	I int64
	U uint64
	D float64
	S string

	Arr []*Value
	Obj map[string]*Value
	// ObjOrder preserves insertion order, since Go maps don't.
	ObjOrder []string

	OffsetStart int
	OffsetLimit int

	Comments []Comment
}

// TreeBuilder implements pjson.Builder by constructing a tree of *Value
// nodes. It is stateless; the zero value is ready to use.
type TreeBuilder struct{}

var _ pjson.Builder = TreeBuilder{}

func (TreeBuilder) NewNull() pjson.Node           { return &Value{Kind: Null} }
func (TreeBuilder) NewBool(b bool) pjson.Node     { return &Value{Kind: Bool, B: b} }
func (TreeBuilder) NewInt(i int64) pjson.Node      { return &Value{Kind: Int, I: i} }
func (TreeBuilder) NewUint(u uint64) pjson.Node    { return &Value{Kind: Uint, U: u} }
func (TreeBuilder) NewDouble(f float64) pjson.Node { return &Value{Kind: Double, D: f} }
func (TreeBuilder) NewString(s string) pjson.Node  { return &Value{Kind: String, S: s} }
func (TreeBuilder) NewObject() pjson.Node          { return &Value{Kind: Object, Obj: map[string]*Value{}} }
func (TreeBuilder) NewArray() pjson.Node           { return &Value{Kind: Array} }

func (TreeBuilder) ObjectSet(obj pjson.Node, key string, val pjson.Node) {
	o := obj.(*Value)
	if _, exists := o.Obj[key]; !exists {
		o.ObjOrder = append(o.ObjOrder, key)
	}
	o.Obj[key] = val.(*Value)
}

func (TreeBuilder) ObjectHas(obj pjson.Node, key string) bool {
	o := obj.(*Value)
	_, ok := o.Obj[key]
	return ok
}

func (TreeBuilder) ArrayAppend(arr pjson.Node, val pjson.Node) {
	a := arr.(*Value)
	a.Arr = append(a.Arr, val.(*Value))
}

func (TreeBuilder) SetOffsets(n pjson.Node, start, limit int) {
	v := n.(*Value)
	v.OffsetStart = start
	v.OffsetLimit = limit
}

func (TreeBuilder) AttachComment(n pjson.Node, text string, placement pjson.CommentPlacement) {
	v := n.(*Value)
	v.Comments = append(v.Comments, Comment{Text: text, Placement: placement})
}

// Swap exchanges the payload of dst and src in place, backing the
// array/object-then-fill idiom: dst keeps its pointer identity (and thus
// its place in a parent's Obj/Arr slot) while its contents become src's.
// Only the payload fields move; OffsetStart, OffsetLimit, and Comments stay
// with dst, since they are annotations on the slot itself, not on whichever
// payload currently occupies it.
func (TreeBuilder) Swap(dst, src pjson.Node) {
	d := dst.(*Value)
	s := src.(*Value)
	d.Kind, s.Kind = s.Kind, d.Kind
	d.B, s.B = s.B, d.B
	d.I, s.I = s.I, d.I
	d.U, s.U = s.U, d.U
	d.D, s.D = s.D, d.D
	d.S, s.S = s.S, d.S
	d.Arr, s.Arr = s.Arr, d.Arr
	d.Obj, s.Obj = s.Obj, d.Obj
	d.ObjOrder, s.ObjOrder = s.ObjOrder, d.ObjOrder
}

// Dump renders v as a debug-only, non-canonical JSON-like string. It is not
// a serialization guarantee: canonicalization and full round-trip
// serialization are out of scope.
func (v *Value) Dump() string {
	var sb strings.Builder
	v.dump(&sb)
	return sb.String()
}

func (v *Value) dump(sb *strings.Builder) {
	if v == nil {
		sb.WriteString("null")
		return
	}
	switch v.Kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		if v.B {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Int:
		sb.WriteString(strconv.FormatInt(v.I, 10))
	case Uint:
		sb.WriteString(strconv.FormatUint(v.U, 10))
	case Double:
		sb.WriteString(strconv.FormatFloat(v.D, 'g', -1, 64))
	case String:
		sb.WriteString(fmt.Sprintf("%q", v.S))
	case Array:
		sb.WriteByte('[')
		for i, e := range v.Arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.dump(sb)
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, k := range v.ObjOrder {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(fmt.Sprintf("%q", k))
			sb.WriteByte(':')
			v.Obj[k].dump(sb)
		}
		sb.WriteByte('}')
	}
}
