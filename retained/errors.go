package retained

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when two widgets in one tree share an id.
var ErrDuplicateID = errors.New("duplicate widget id")

// ErrNilRoot is returned when the build function produces no view.
var ErrNilRoot = errors.New("build returned a nil root view")

// ConfigError describes a structurally invalid tree. It is raised with
// panic at the point of misuse: the engine cannot lay such a tree out.
type ConfigError struct {
	Op     string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("retained: %s: %s", e.Op, e.Reason)
}

func configPanic(op, reason string) {
	panic(&ConfigError{Op: op, Reason: reason})
}
