package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tailscale/hujson"
)

// readPayload decodes a JSON or JSONC (comments, trailing commas) file into
// dst. "-" reads stdin. Unknown fields are rejected so typos surface.
func readPayload(path string, stdin io.Reader, dst any) error {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}
	std, err := hujson.Standardize(raw)
	if err != nil {
		return fmt.Errorf("parse payload %s: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode payload %s: %w", path, err)
	}
	return nil
}
