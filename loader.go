package banque

import (
	"bytes"
	"fmt"
	"os"
)

// DefaultFile is the historical name of the bank file.
const DefaultFile = "banque.json"

// LoadFile reads a bank file. A missing file is reported as a wrapped
// fs.ErrNotExist so the caller can decide to start with an empty bank; a
// malformed file wraps ErrBadFormat.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open bank file %q: %w", path, err)
	}
	defer f.Close()

	bank, err := DecodeBank(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode bank file %q: %w", path, err)
	}
	return bank, nil
}

// SaveFile writes the whole bank to path, replacing any previous content.
// The document is fully encoded in memory first, so an encoding failure never
// truncates an existing file; the write itself is a single call.
func SaveFile(path string, b *Bank) error {
	var buf bytes.Buffer
	if err := EncodeBank(&buf, b); err != nil {
		return fmt.Errorf("could not encode bank for %q: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write bank file %q: %w", path, err)
	}
	return nil
}
