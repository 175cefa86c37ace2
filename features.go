package pjson

import "fmt"

// Features gates the permissive behaviors of the Tokenizer and Value Parser.
// The zero value is NOT usable directly — construct one with
// DefaultFeatures or StrictFeatures, or resolve one from a map with
// FeaturesFromMap.
type Features struct {
	AllowComments                bool
	StrictRoot                   bool
	AllowDroppedNullPlaceholders bool
	AllowNumericKeys             bool
	AllowSingleQuotes            bool
	FailIfExtra                  bool
	RejectDupKeys                bool
	AllowSpecialFloats           bool
	StackLimit                   int // non-negative; default 1000

	// CollectComments retains comments as annotations on values. Forced to
	// false whenever AllowComments is false, per spec.
	CollectComments bool
}

// DefaultFeatures returns the permissive default feature bag: comments on,
// lenient root, no dup-key rejection, no extra-input rejection.
func DefaultFeatures() Features {
	f := Features{
		AllowComments:                true,
		StrictRoot:                   false,
		AllowDroppedNullPlaceholders: false,
		AllowNumericKeys:             false,
		AllowSingleQuotes:            false,
		FailIfExtra:                  false,
		RejectDupKeys:                false,
		AllowSpecialFloats:           false,
		StackLimit:                   1000,
		CollectComments:              true,
	}
	return f.normalized()
}

// StrictFeatures returns the named "strict" preset: comments off, root
// strictness on, dup-key rejection on, extra-input rejection on.
func StrictFeatures() Features {
	f := Features{
		AllowComments:                false,
		StrictRoot:                   true,
		AllowDroppedNullPlaceholders: false,
		AllowNumericKeys:             false,
		AllowSingleQuotes:            false,
		FailIfExtra:                  true,
		RejectDupKeys:                true,
		AllowSpecialFloats:           false,
		StackLimit:                   1000,
		CollectComments:              false,
	}
	return f.normalized()
}

// normalized applies the "force off" rule: CollectComments can never be true
// when AllowComments is false. StackLimit is left exactly as given — 0 is a
// legal, distinct value (a caller deliberately disabling recursion), not a
// sentinel for "apply the default"; the default of 1000 is only ever
// written by DefaultFeatures and StrictFeatures.
func (f Features) normalized() Features {
	if !f.AllowComments {
		f.CollectComments = false
	}
	return f
}

// featureKeys is the ten recognized configuration keys, case-sensitive.
var featureKeys = map[string]bool{
	"collectComments":              true,
	"allowComments":                true,
	"strictRoot":                   true,
	"allowDroppedNullPlaceholders": true,
	"allowNumericKeys":             true,
	"allowSingleQuotes":            true,
	"stackLimit":                   true,
	"failIfExtra":                  true,
	"rejectDupKeys":                true,
	"allowSpecialFloats":           true,
}

// FeaturesFromMap resolves a Features value from a configuration map of the
// ten recognized keys (§6). Any key outside that set is reported as an
// error; no other validation is performed. Unset keys take the
// DefaultFeatures value.
func FeaturesFromMap(m map[string]any) (Features, error) {
	f := DefaultFeatures()
	for k, v := range m {
		if !featureKeys[k] {
			return Features{}, fmt.Errorf("pjson: invalid feature key %q", k)
		}
		switch k {
		case "collectComments":
			f.CollectComments, _ = v.(bool)
		case "allowComments":
			f.AllowComments, _ = v.(bool)
		case "strictRoot":
			f.StrictRoot, _ = v.(bool)
		case "allowDroppedNullPlaceholders":
			f.AllowDroppedNullPlaceholders, _ = v.(bool)
		case "allowNumericKeys":
			f.AllowNumericKeys, _ = v.(bool)
		case "allowSingleQuotes":
			f.AllowSingleQuotes, _ = v.(bool)
		case "stackLimit":
			switch n := v.(type) {
			case int:
				f.StackLimit = n
			case int64:
				f.StackLimit = int(n)
			case float64:
				f.StackLimit = int(n)
			}
		case "failIfExtra":
			f.FailIfExtra, _ = v.(bool)
		case "rejectDupKeys":
			f.RejectDupKeys, _ = v.(bool)
		case "allowSpecialFloats":
			f.AllowSpecialFloats, _ = v.(bool)
		}
	}
	return f.normalized(), nil
}
