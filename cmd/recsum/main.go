package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	j "github.com/goccy/go-json"

	recsum "github.com/reoring/recsum"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the testable entry point; it returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "process":
		return processCmd(args[1:], stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "recsum CLI\n\nUsage:\n  recsum process --input records.json [--format json|yaml] [-v]\n\nReads a list of records ({id, name, value}) and prints a summary\n({count, total_value, avg_value}) as one JSON line on stdout.")
}

func processCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("process", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var input string
	var formatName string
	var verbose bool
	fs.StringVar(&input, "input", "", "path to the input file")
	fs.StringVar(&input, "i", "", "path to the input file (shorthand)")
	fs.StringVar(&formatName, "format", "", "input encoding: json or yaml (default: by file extension)")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if input == "" {
		fs.Usage()
		return 2
	}

	logf := func(format string, a ...any) {
		if verbose {
			fmt.Fprintf(stderr, format+"\n", a...)
		}
	}

	format, ok := resolveFormat(formatName, input)
	if !ok {
		fmt.Fprintf(stderr, "unknown format %q (want json or yaml)\n", formatName)
		return 2
	}
	logf("process: input=%s format=%s", input, format)

	sum, err := recsum.ProcessFile(context.Background(), input, format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	out, err := j.Marshal(sum)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	logf("process: %d records summarized", sum.Count)
	return 0
}

func resolveFormat(name, path string) (recsum.Format, bool) {
	switch name {
	case "":
		return recsum.DetectFormat(path), true
	case "json":
		return recsum.FormatJSON, true
	case "yaml", "yml":
		return recsum.FormatYAML, true
	}
	return recsum.FormatJSON, false
}
