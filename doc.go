package recsum

// Package recsum validates record lists against a fixed schema and reduces
// them to a count/total/average summary.
//
// - Ordered, short-circuiting validation of untyped decoded input (ParseRecord)
// - A stable error model via Issues (JSON Pointer, code, message)
// - Polymorphic input sources: JSON (goccy/go-json, UseNumber) and YAML (yaml.v3)
// - Single-pass aggregation with first-failure abort (ProcessFrom/ProcessFile)
//
// Design policy:
// - Keep only public APIs in the root package; place the CLI under cmd/recsum.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	sum, err := recsum.ProcessFile(ctx, path, recsum.DetectFormat(path))
//	sum, err := recsum.ProcessFrom(ctx, recsum.JSONBytes(data))
//
