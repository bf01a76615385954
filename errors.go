package recsum

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeInvalidValue = "invalid_value"
	CodeParseError   = "parse_error"
	// Document-shape checks (whole-input semantics)
	CodeNotAnObject = "not_an_object"
	CodeNotAList    = "not_a_list"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /2/value).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	Offset  int64 // Byte offset in the input source (-1 when unknown).
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error renders the first issue's human message, suffixed with the JSON
// Pointer for non-root paths so callers can locate the offending element.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	b := &strings.Builder{}
	it := iss[0]
	b.WriteString(it.Message)
	if it.Path != "" && it.Path != "/" {
		fmt.Fprintf(b, " at %s", it.Path)
	}
	if n := len(iss); n > 1 {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// prefixIssues re-roots issues produced at an element under its JSON Pointer.
func prefixIssues(ptr string, iss Issues) Issues {
	out := make(Issues, len(iss))
	for i, it := range iss {
		switch it.Path {
		case "", "/":
			it.Path = ptr
		default:
			it.Path = ptr + it.Path
		}
		out[i] = it
	}
	return out
}
