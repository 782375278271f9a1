package circuit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML netlist. Unknown document fields are rejected, so a
// typo'd key fails loudly instead of silently dropping a gate or an
// observation.
func Load(r io.Reader) (Netlist, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var n Netlist
	if err := dec.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return Netlist{}, fmt.Errorf("the netlist document is empty")
		}
		return Netlist{}, fmt.Errorf("could not parse the netlist: %v", err)
	}
	return n, nil
}

// LoadFile reads a YAML netlist from disk.
func LoadFile(path string) (Netlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return Netlist{}, fmt.Errorf("could not open %s: %v", path, err)
	}
	defer f.Close()
	n, err := Load(f)
	if err != nil {
		return Netlist{}, fmt.Errorf("%s: %v", path, err)
	}
	return n, nil
}
