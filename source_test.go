package recsum_test

import (
	"strings"
	"testing"

	recsum "github.com/reoring/recsum"
)

func TestDetectFormat(t *testing.T) {
	cases := map[string]recsum.Format{
		"records.json": recsum.FormatJSON,
		"records.txt":  recsum.FormatJSON,
		"records":      recsum.FormatJSON,
		"records.yaml": recsum.FormatYAML,
		"records.YML":  recsum.FormatYAML,
	}
	for path, want := range cases {
		if got := recsum.DetectFormat(path); got != want {
			t.Fatalf("%s: expected %v, got %v", path, want, got)
		}
	}
}

func TestJSONSource_DecodeError(t *testing.T) {
	_, err := recsum.JSONBytes([]byte(`[{"id":1,`)).DecodeAny()
	iss, ok := recsum.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != recsum.CodeParseError {
		t.Fatalf("expected parse_error issue, got %v", err)
	}
	if !strings.HasPrefix(iss[0].Message, "parse error") {
		t.Fatalf("expected decoder diagnostic, got %q", iss[0].Message)
	}
}

func TestJSONSource_TrailingContent(t *testing.T) {
	// Both a second JSON value and raw garbage after the document must fail.
	for _, in := range []string{`[] []`, `[] garbage`} {
		_, err := recsum.JSONBytes([]byte(in)).DecodeAny()
		iss, ok := recsum.AsIssues(err)
		if !ok || len(iss) == 0 || iss[0].Code != recsum.CodeParseError {
			t.Fatalf("%q: expected parse_error issue, got %v", in, err)
		}
	}
}

func TestYAMLSource_SecondDocumentRejected(t *testing.T) {
	data := []byte("- id: 1\n  name: a\n  value: 2\n---\n- id: 2\n  name: b\n  value: 3\n")
	_, err := recsum.YAMLBytes(data).DecodeAny()
	iss, ok := recsum.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != recsum.CodeParseError {
		t.Fatalf("expected parse_error issue, got %v", err)
	}
}

func TestYAMLSource_EmptyDocument(t *testing.T) {
	_, err := recsum.YAMLBytes(nil).DecodeAny()
	iss, ok := recsum.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != recsum.CodeParseError {
		t.Fatalf("expected parse_error issue for empty document, got %v", err)
	}
}

func TestYAMLSource_NormalizesNestedValues(t *testing.T) {
	v, err := recsum.YAMLBytes([]byte("- id: 1\n  name: a\n  value: 2\n")).DecodeAny()
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	list, ok := v.([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("expected one-element list, got %T", v)
	}
	if _, ok := list[0].(map[string]any); !ok {
		t.Fatalf("expected map[string]any element, got %T", list[0])
	}
}
