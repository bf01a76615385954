package recsum

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/reoring/recsum/i18n"
)

// ParseRecord checks one untyped candidate against the record schema and
// returns the typed Record. Checks run in a fixed order (id, then name, then
// value; presence before type before content) and stop at the first
// violation. Issue paths are relative to the candidate; callers embed them
// under the element pointer.
func ParseRecord(ctx context.Context, v any) (Record, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Record{}, Issues{{Path: "/", Code: CodeNotAnObject, Message: i18n.T(CodeNotAnObject, nil), Offset: -1}}
	}

	idv, ok := obj["id"]
	if !ok {
		return Record{}, requiredIssue("id")
	}
	id, ok := asInt(idv)
	if !ok {
		return Record{}, typeIssue("id", "int")
	}

	namev, ok := obj["name"]
	if !ok {
		return Record{}, requiredIssue("name")
	}
	name, ok := namev.(string)
	if !ok || strings.TrimSpace(name) == "" {
		return Record{}, Issues{{
			Path:    "/name",
			Code:    CodeInvalidValue,
			Message: i18n.T(CodeInvalidValue, map[string]string{"field": "name"}),
			Offset:  -1,
		}}
	}

	valv, ok := obj["value"]
	if !ok {
		return Record{}, requiredIssue("value")
	}
	val, ok := asFloat(valv)
	if !ok {
		return Record{}, typeIssue("value", "a number")
	}

	return Record{ID: id, Name: name, Value: val}, nil
}

func requiredIssue(field string) Issues {
	return Issues{{
		Path:    "/" + field,
		Code:    CodeRequired,
		Message: i18n.T(CodeRequired, map[string]string{"field": field}),
		Offset:  -1,
	}}
}

func typeIssue(field, expected string) Issues {
	return Issues{{
		Path:    "/" + field,
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"field": field, "expected": expected}),
		Offset:  -1,
	}}
}

// asInt reports whether v is an integer value. json.Number text must parse as
// a base-10 integer, so 1.0 and 1e3 are rejected. bool is a distinct type and
// never matches.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := strconv.ParseInt(n.String(), 10, 64)
		return i, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// asFloat reports whether v is numeric (integer or floating-point) and
// coerces it to float64 for accumulation.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
