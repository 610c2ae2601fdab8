package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteResult encodes a run result as indented JSON and writes it to w.
// Unbounded band bottoms are written as null.
func WriteResult(w io.Writer, res *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteResultFile writes a run result to a JSON file at path.
// This is a convenience wrapper around [WriteResult] for file-based output.
func WriteResultFile(res *Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(f, res)
}

// ReadResult decodes a result written by WriteResult.
func ReadResult(r io.Reader) (*Result, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &res, nil
}
