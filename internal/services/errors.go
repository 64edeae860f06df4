package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAppNotFound         = errors.New("editor application not found")
	ErrDirectoryNotFound   = errors.New("directory not found")
	ErrInvalidBracketCount = errors.New("invalid bracket count")
	ErrExternalTool        = errors.New("external tool error")
	ErrValidation          = errors.New("validation error")
	ErrConfiguration       = errors.New("configuration error")
	ErrTimeout             = errors.New("timeout")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether an error should abort the whole run rather than be
// absorbed into a single job's result. Missing directories, a missing editor
// executable, and bad configuration make every remaining job meaningless;
// everything else is recorded against the job that raised it and the run
// continues.
func IsFatal(err error) bool {
	switch {
	case errors.Is(err, ErrAppNotFound),
		errors.Is(err, ErrDirectoryNotFound),
		errors.Is(err, ErrInvalidBracketCount),
		errors.Is(err, ErrConfiguration),
		errors.Is(err, ErrValidation):
		return true
	default:
		return false
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
