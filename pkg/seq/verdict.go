package seq

import (
	"fmt"
	"strings"
)

// Verdict is the binary outcome of validation.
type Verdict int

const (
	// Invalid means no decomposition into the configured tokens exists.
	Invalid Verdict = iota
	// Valid means at least one decomposition exists.
	Valid
)

// String returns "valid" or "invalid".
func (v Verdict) String() string {
	if v == Valid {
		return "valid"
	}
	return "invalid"
}

// OK reports whether the verdict is Valid.
func (v Verdict) OK() bool {
	return v == Valid
}

// ParseVerdict converts a string to a Verdict.
// Returns Invalid and false if s is not a verdict name.
func ParseVerdict(s string) (Verdict, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "valid":
		return Valid, true
	case "invalid":
		return Invalid, true
	default:
		return Invalid, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Verdict) UnmarshalText(text []byte) error {
	parsed, ok := ParseVerdict(string(text))
	if !ok {
		return fmt.Errorf("unknown verdict %q", string(text))
	}
	*v = parsed
	return nil
}

func verdictOf(ok bool) Verdict {
	if ok {
		return Valid
	}
	return Invalid
}
