package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidLevelConfiguration is matched by every level validation failure.
var ErrInvalidLevelConfiguration = errors.New("invalid level configuration")

// Validation error codes.
const (
	CodeInvalidLayout = "INVALID_LAYOUT"
	CodeEmptyTitle    = "EMPTY_TITLE"
	CodeEmptySrc      = "EMPTY_SRC"
	CodeMissingField  = "MISSING_FIELD"
	CodeNoLevels      = "NO_LEVELS"
)

// ValidationError contains details about a rejected level.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is lets errors.Is match ErrInvalidLevelConfiguration.
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidLevelConfiguration
}
