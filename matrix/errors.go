package matrix

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every DomainError via errors.Is.
var ErrDomain = errors.New("matrix: domain error")

// DomainError reports numeric input a kernel function cannot map to a
// well-defined result, e.g. normalising the zero vector or a frustum whose
// near and far planes coincide.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("matrix: %s: %s", e.Op, e.Reason)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func domainErr(op, format string, args ...any) error {
	return &DomainError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
