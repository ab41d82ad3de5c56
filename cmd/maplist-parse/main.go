package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"maplist/backend/internal/export"
	"maplist/backend/internal/placeparser"
	"maplist/backend/internal/placeparser/core"
)

func main() {
	kindFlag := flag.String("kind", string(core.InputAuto), "input kind: auto|text|html")
	formatFlag := flag.String("format", "json", "output format: json|csv")
	sourceURLFlag := flag.String("source-url", "", "optional canonical list URL passed through to the result")
	flag.Parse()
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "usage: maplist-parse [-kind auto] [-format json] [-source-url URL] [file]")
		os.Exit(2)
	}

	kind := core.InputKind(strings.TrimSpace(*kindFlag))
	if kind == "" {
		kind = core.InputAuto
	}
	if !kind.Valid() {
		fmt.Fprintf(os.Stderr, "invalid kind: %s\n", kind)
		os.Exit(2)
	}
	format := strings.ToLower(strings.TrimSpace(*formatFlag))
	if format != "json" && format != "csv" {
		fmt.Fprintf(os.Stderr, "invalid format: %s\n", format)
		os.Exit(2)
	}

	input, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}

	result, err := placeparser.ParseWithOptions(input, placeparser.Options{
		Kind:      kind,
		SourceURL: strings.TrimSpace(*sourceURLFlag),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}

	if format == "csv" {
		if err := export.WriteCSV(os.Stdout, result.Places); err != nil {
			fmt.Fprintf(os.Stderr, "csv error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
