package pjson

import "unicode/utf8"

// decodeString converts the interior of a raw quoted token span (excluding
// the opening and closing quote bytes) into a decoded UTF-8 byte sequence.
// It returns the decoded bytes, or ok=false and an error message on a
// malformed escape or a missing closing quote.
func decodeString(raw []byte) (decoded []byte, ok bool, errMsg string) {
	// raw includes the surrounding quote bytes; strip them.
	if len(raw) < 2 || raw[len(raw)-1] != raw[0] {
		return nil, false, "Unterminated string"
	}
	interior := raw[1 : len(raw)-1]

	out := make([]byte, 0, len(interior))
	i := 0
	for i < len(interior) {
		b := interior[i]
		if b != '\\' {
			out = append(out, b)
			i++
			continue
		}
		i++
		if i >= len(interior) {
			return nil, false, "Unterminated string"
		}
		switch interior[i] {
		case '"':
			out = append(out, '"')
			i++
		case '\\':
			out = append(out, '\\')
			i++
		case '/':
			out = append(out, '/')
			i++
		case 'b':
			out = append(out, 0x08)
			i++
		case 'f':
			out = append(out, 0x0C)
			i++
		case 'n':
			out = append(out, 0x0A)
			i++
		case 'r':
			out = append(out, 0x0D)
			i++
		case 't':
			out = append(out, 0x09)
			i++
		case 'u':
			i++
			cp, n, decOK := decodeHex4(interior, i)
			if !decOK {
				return nil, false, "Bad escape sequence"
			}
			i = n

			if cp >= 0xD800 && cp <= 0xDBFF {
				// High surrogate: the next six bytes must be a matching low
				// surrogate escape.
				if i+1 >= len(interior) || interior[i] != '\\' || interior[i+1] != 'u' {
					return nil, false, "Bad escape sequence"
				}
				low, n2, decOK2 := decodeHex4(interior, i+2)
				if !decOK2 || low < 0xDC00 || low > 0xDFFF {
					return nil, false, "Bad escape sequence"
				}
				combined := 0x10000 + ((cp - 0xD800) << 10) + (low - 0xDC00)
				out = utf8.AppendRune(out, rune(combined))
				i = n2
			} else if cp >= 0xDC00 && cp <= 0xDFFF {
				// Lone low surrogate with no preceding high surrogate.
				return nil, false, "Bad escape sequence"
			} else {
				out = utf8.AppendRune(out, rune(cp))
			}
		default:
			return nil, false, "Bad escape sequence"
		}
	}
	return out, true, ""
}

// decodeHex4 reads exactly four hex digits (case-insensitive) starting at
// interior[at] and returns the decoded value and the index just past it.
func decodeHex4(interior []byte, at int) (value int, next int, ok bool) {
	if at+4 > len(interior) {
		return 0, at, false
	}
	v := 0
	for k := 0; k < 4; k++ {
		d := hexDigit(interior[at+k])
		if d < 0 {
			return 0, at, false
		}
		v = v*16 + d
	}
	return v, at + 4, true
}

func hexDigit(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}
