package commands

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scott-cotton/cli"

	"openrecord/record"
	"openrecord/recordyaml"
)

// load reads the input document named by -f, or cc.In when none is given.
func (cfg *mainConfig) load(cc *cli.Context) (*record.Record, error) {
	opts, err := cfg.recordOpts()
	if err != nil {
		return nil, err
	}

	if cfg.File == "" || cfg.File == "-" {
		theLog.Debug("reading document", "from", "stdin")

		r, err := recordyaml.Read(cc.In, opts...)
		if err != nil {
			return nil, fmt.Errorf("error decoding stdin: %w", err)
		}

		return r, nil
	}

	theLog.Debug("reading document", "from", cfg.File)

	r, err := recordyaml.LoadFile(cfg.File, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", cfg.File, err)
	}

	theLog.Debug("loaded document", "fields", r.Len(), "policy", r.Policy())

	return r, nil
}

func writeYAML(w io.Writer, r *record.Record) error {
	data, err := recordyaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}

	_, err = w.Write(data)

	return err
}

// writeValue prints records as YAML and everything else as text.
func writeValue(w io.Writer, v any) error {
	switch x := v.(type) {
	case *record.Record:
		return writeYAML(w, x)
	case nil:
		_, err := fmt.Fprintln(w, "null")
		return err
	case string:
		_, err := fmt.Fprintln(w, x)
		return err
	case []any, map[string]any:
		data, err := yaml.Marshal(x)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}

		_, err = w.Write(data)

		return err
	default:
		_, err := fmt.Fprintln(w, x)
		return err
	}
}

// splitPath splits a dotted path. "" and "." denote the document itself.
func splitPath(path string) []string {
	path = strings.Trim(path, ".")
	if path == "" {
		return nil
	}

	return strings.Split(path, ".")
}

// parseValue reads a command line value as a YAML scalar or flow collection.
// Input that does not parse is kept as a string.
func parseValue(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}

	return v
}

// lookup returns the value at path, reporting missing fields with suggestions.
func lookup(r *record.Record, path []string) (any, error) {
	if len(path) == 0 {
		return r, nil
	}

	parent, err := r.At(path[:len(path)-1]...)
	if err != nil {
		return nil, err
	}

	v, err := parent.Fetch(path[len(path)-1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", strings.Join(path, "."), err)
	}

	return v, nil
}
