package validation

import (
	"errors"
	"strings"
)

// Issue describes a single validation failure. Path points at the offending value,
// an empty path means the whole payload.
type Issue struct {
	Message string `json:"message"`
	Path    []any  `json:"path"`
}

// Error aggregates every issue found in a payload.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	messages := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		messages = append(messages, issue.Message)
	}

	return "invalid input: " + strings.Join(messages, "; ")
}

// Issues extracts validation issues from err, reporting false when err is not a validation error.
func Issues(err error) ([]Issue, bool) {
	var verr *Error
	if !errors.As(err, &verr) {
		return nil, false
	}

	return verr.Issues, true
}

type collector struct {
	issues []Issue
}

func (c *collector) add(message string, path ...any) {
	if path == nil {
		path = []any{}
	}
	c.issues = append(c.issues, Issue{Message: message, Path: path})
}

func (c *collector) err() error {
	if len(c.issues) == 0 {
		return nil
	}

	return &Error{Issues: c.issues}
}
