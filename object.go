package pjson

import "fmt"

// parseObject parses an object's members into obj. obj already holds the
// slot the caller wants filled (the top of the nodes stack); parseObject
// first swaps an empty object payload into it, matching the
// array/object-then-fill idiom described on Builder.Swap, then reads
// members until ObjectEnd.
func (st *parseState) parseObject(obj Node) bool {
	empty := st.b.NewObject()
	st.b.Swap(obj, empty)

	addedMember := false
	for {
		keyTok := st.skipCommentTokens()

		if keyTok.Kind == ObjectEnd && !addedMember {
			return true
		}

		key := st.decodeMemberKey(keyTok)
		if key.failed {
			return key.recovered
		}
		addedMember = true

		if len(key.value) >= 1<<30 {
			panic(newFatalError(st.cur, keyTok.OffsetStart, "keylength >= 2^30"))
		}

		if st.features.RejectDupKeys && st.b.ObjectHas(obj, key.value) {
			return st.addErrorAndRecover(keyTok.OffsetStart, fmt.Sprintf("Duplicate key: '%s'", key.value), ObjectEnd)
		}

		colonTok := st.tz.readToken()
		if colonTok.Kind != MemberSeparator {
			return st.addErrorAndRecover(colonTok.OffsetStart, "Missing ':' after object member name", ObjectEnd)
		}

		slot := st.b.NewNull()
		st.b.ObjectSet(obj, key.value, slot)
		st.nodes = append(st.nodes, slot)
		st.path.PushKey(key.value)
		ok2, _ := st.parseValue()
		st.path.Pop()
		st.nodes = st.nodes[:len(st.nodes)-1]
		if !ok2 {
			return st.recover(ObjectEnd)
		}

		sepTok := st.skipCommentTokens()
		if sepTok.Kind != ArraySeparator && sepTok.Kind != ObjectEnd {
			return st.addErrorAndRecover(sepTok.OffsetStart, "Missing ',' or '}' in object declaration", ObjectEnd)
		}
		if sepTok.Kind == ObjectEnd {
			return true
		}
	}
}

// memberKey is decodeMemberKey's result: either a decoded key string, or a
// record that the caller already ran recovery and should propagate its
// (always-false) result straight up.
type memberKey struct {
	value     string
	failed    bool
	recovered bool
}

// decodeMemberKey implements §4.5.2 steps 2-3: a member name is either a
// String token (decoded the same way the String Decoder decodes any
// string), or, with AllowNumericKeys, a Number token stringified to its
// canonical form. Anything else is a syntax error.
func (st *parseState) decodeMemberKey(keyTok Token) memberKey {
	switch {
	case keyTok.Kind == String:
		dec, ok, errMsg := decodeString(keyTok.raw(st.cur.buf))
		if !ok {
			return memberKey{failed: true, recovered: st.addErrorAndRecover(keyTok.OffsetStart, errMsg, ObjectEnd)}
		}
		return memberKey{value: string(dec)}
	case keyTok.Kind == Number && st.features.AllowNumericKeys:
		res, ok, errMsg := decodeNumber(keyTok.raw(st.cur.buf))
		if !ok {
			return memberKey{failed: true, recovered: st.addErrorAndRecover(keyTok.OffsetStart, errMsg, ObjectEnd)}
		}
		return memberKey{value: numberAsString(res)}
	default:
		return memberKey{failed: true, recovered: st.addErrorAndRecover(keyTok.OffsetStart, "Missing '}' or object member name", ObjectEnd)}
	}
}
