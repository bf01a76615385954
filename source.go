package recsum

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/recsum/i18n"
)

// Source abstracts over polymorphic input encodings. DecodeAny returns the
// whole document as a JSON-like value tree: map[string]any, []any, string,
// json.Number (JSON inputs) or native Go numbers (YAML inputs), bool, nil.
type Source interface {
	DecodeAny() (any, error)
	Format() Format
}

// DetectFormat picks the input encoding from the file extension. Everything
// that is not .yaml/.yml is treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// ---- JSON ----

type jsonSource struct{ r io.Reader }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return jsonSource{r: bytes.NewReader(b)} }

func (s jsonSource) Format() Format { return FormatJSON }

func (s jsonSource) DecodeAny() (any, error) {
	dec := j.NewDecoder(s.r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{{
			Path:    "/",
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, nil) + ": " + err.Error(),
			Cause:   err,
			Offset:  decodeOffset(err),
		}}
	}
	// The document must be exactly one value; anything but EOF behind it is
	// malformed input.
	var trailing any
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			err = errors.New("trailing data after top-level value")
		}
		return nil, Issues{{
			Path:    "/",
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, nil) + ": " + err.Error(),
			Cause:   err,
			Offset:  decodeOffset(err),
		}}
	}
	return v, nil
}

// decodeOffset extracts the byte offset from a decoder diagnostic when the
// error type carries one.
func decodeOffset(err error) int64 {
	var syn *j.SyntaxError
	if errors.As(err, &syn) {
		return syn.Offset
	}
	var typ *j.UnmarshalTypeError
	if errors.As(err, &typ) {
		return typ.Offset
	}
	return -1
}

// ---- YAML ----

type yamlSource struct{ r io.Reader }

// YAMLReader wraps an io.Reader as a YAML Source.
func YAMLReader(r io.Reader) Source { return yamlSource{r: r} }

// YAMLBytes wraps a byte slice as a YAML Source.
func YAMLBytes(b []byte) Source { return yamlSource{r: bytes.NewReader(b)} }

func (s yamlSource) Format() Format { return FormatYAML }

func (s yamlSource) DecodeAny() (any, error) {
	dec := yaml.NewDecoder(s.r)
	var v any
	if err := dec.Decode(&v); err != nil {
		// io.EOF means an empty document, which is just as undecodable here.
		return nil, Issues{{
			Path:    "/",
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, nil) + ": " + err.Error(),
			Cause:   err,
			Offset:  -1,
		}}
	}
	var trailing any
	if err := dec.Decode(&trailing); err == nil {
		err = errors.New("trailing document after top-level value")
		return nil, Issues{{
			Path:    "/",
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, nil) + ": " + err.Error(),
			Cause:   err,
			Offset:  -1,
		}}
	} else if !errors.Is(err, io.EOF) {
		return nil, Issues{{
			Path:    "/",
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, nil) + ": " + err.Error(),
			Cause:   err,
			Offset:  -1,
		}}
	}
	return yamlNormalizeValue(v), nil
}

// yamlNormalizeValue converts YAML-decoded values (which may contain
// map[any]any) into JSON-like trees recursively. Non-string keys are dropped.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
