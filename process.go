package recsum

import (
	"context"
	"fmt"
	"os"

	"github.com/reoring/recsum/i18n"
)

// ProcessFrom decodes the full document from src and folds every element into
// a Summary. The walk is single-pass and in document order; the first invalid
// element aborts the run and no partial summary is returned.
func ProcessFrom(ctx context.Context, src Source) (Summary, error) {
	v, err := src.DecodeAny()
	if err != nil {
		return Summary{}, err
	}

	list, ok := v.([]any)
	if !ok {
		return Summary{}, Issues{{
			Path:    "/",
			Code:    CodeNotAList,
			Message: i18n.T(CodeNotAList, map[string]string{"encoding": src.Format().String()}),
			Offset:  -1,
		}}
	}

	var total float64
	count := 0
	for i, item := range list {
		rec, err := ParseRecord(ctx, item)
		if err != nil {
			if iss, ok := AsIssues(err); ok {
				return Summary{}, prefixIssues(fmt.Sprintf("/%d", i), iss)
			}
			return Summary{}, err
		}
		total += rec.Value
		count++
	}

	avg := 0.0
	if count > 0 {
		avg = total / float64(count)
	}
	return Summary{Count: count, TotalValue: total, AvgValue: avg}, nil
}

// ProcessFile reads the input at path fully into memory and processes it with
// the given encoding. Use DetectFormat to resolve the encoding from the file
// extension.
func ProcessFile(ctx context.Context, path string, format Format) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("reading input: %w", err)
	}

	var src Source
	if format == FormatYAML {
		src = YAMLBytes(data)
	} else {
		src = JSONBytes(data)
	}
	return ProcessFrom(ctx, src)
}
