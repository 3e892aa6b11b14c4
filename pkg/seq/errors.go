package seq

import (
	"errors"
	"fmt"
)

// ErrEmptyToken is matched by every *EmptyTokenError via errors.Is.
var ErrEmptyToken = errors.New("empty token")

// Token set names used in EmptyTokenError.
const (
	SetWords   = "words"
	SetJoiners = "joiners"
)

// EmptyTokenError reports a configured token set containing "".
// An empty token matches without consuming input, so it would break
// termination of the search.
type EmptyTokenError struct {
	Set string // SetWords or SetJoiners
}

func (e *EmptyTokenError) Error() string {
	return fmt.Sprintf("%s: %s set contains an empty token", ErrEmptyToken, e.Set)
}

// Is reports whether target is ErrEmptyToken.
func (e *EmptyTokenError) Is(target error) bool {
	return target == ErrEmptyToken
}
