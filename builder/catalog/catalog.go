// Package catalog writes a TOML listing of the generated icons.
package catalog

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Icon is a single catalog entry.
type Icon struct {
	Name      string `toml:"name"`
	Component string `toml:"component"`
	File      string `toml:"file"`
	ViewBox   string `toml:"view_box,omitempty"`
	Elements  int    `toml:"elements"`
}

type Catalog struct {
	Package string `toml:"package"`
	Icons   []Icon `toml:"icons"`
}

// Encode returns c as TOML.
func Encode(c Catalog) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a catalog written by Encode.
func Decode(data []byte) (Catalog, error) {
	var c Catalog
	if _, err := toml.Decode(string(data), &c); err != nil {
		return Catalog{}, fmt.Errorf("decoding catalog: %w", err)
	}
	return c, nil
}
