package pjson

import (
	"fmt"
	"math"
	"strconv"

	"github.com/kalenwatt/pjson/internal/locale"
)

type numberKind int

const (
	numInt numberKind = iota
	numUint
	numDouble
)

type numberResult struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

// decodeNumber runs a two-path decode: an integer path attempted first,
// falling back to a double path on overflow or on any syntax the integer
// path can't represent (a fractional part, an exponent, or no digits at
// all).
func decodeNumber(raw []byte) (numberResult, bool, string) {
	if res, ok := decodeInteger(raw); ok {
		return res, true, ""
	}
	return decodeDouble(raw)
}

func decodeInteger(raw []byte) (numberResult, bool) {
	negative := false
	i := 0
	if len(raw) > 0 && raw[0] == '-' {
		negative = true
		i = 1
	}
	if i >= len(raw) {
		return numberResult{}, false
	}

	var maxVal uint64
	if negative {
		maxVal = 1 << 63 // |math.MinInt64|
	} else {
		maxVal = math.MaxUint64
	}

	var value uint64
	j := i
	for j < len(raw) {
		c := raw[j]
		if c < '0' || c > '9' {
			return numberResult{}, false
		}
		d := uint64(c - '0')
		if value >= maxVal/10 {
			isLastDigit := j == len(raw)-1
			if value == maxVal/10 && d <= maxVal%10 && isLastDigit {
				value = value*10 + d
				j++
				break
			}
			return numberResult{}, false
		}
		value = value*10 + d
		j++
	}
	if j != len(raw) || j == i {
		return numberResult{}, false
	}

	if negative {
		if value == 1<<63 {
			return numberResult{kind: numInt, i: math.MinInt64}, true
		}
		return numberResult{kind: numInt, i: -int64(value)}, true
	}
	if value <= math.MaxInt64 {
		return numberResult{kind: numInt, i: int64(value)}, true
	}
	return numberResult{kind: numUint, u: value}, true
}

// numberAsString renders a decoded number in its canonical string form, for
// AllowNumericKeys: an object key spelled as a bare number is stringified
// the same way regardless of which of the three payload kinds it decoded
// to.
func numberAsString(r numberResult) string {
	switch r.kind {
	case numInt:
		return strconv.FormatInt(r.i, 10)
	case numUint:
		return strconv.FormatUint(r.u, 10)
	default:
		return strconv.FormatFloat(r.f, 'g', -1, 64)
	}
}

func decodeDouble(raw []byte) (numberResult, bool, string) {
	lit := locale.Normalize(string(raw))
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return numberResult{}, false, fmt.Sprintf("'%s' is not a number.", raw)
	}
	return numberResult{kind: numDouble, f: f}, true, ""
}
