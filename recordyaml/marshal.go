package recordyaml

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"

	"openrecord/internal/visit"
	"openrecord/record"
)

// Marshal serializes r to YAML, keeping field order. It fails with
// record.ErrCycle when r contains itself.
func Marshal(r *record.Record) ([]byte, error) {
	n, err := Node(r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(n); err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile writes r as YAML to the given path.
func WriteFile(r *record.Record, path string) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write record file %s: %w", path, err)
	}

	return nil
}

// Node converts r to a YAML mapping node.
func Node(r *record.Record) (*yaml.Node, error) {
	var e encoder
	return e.record(r)
}

type encoder struct {
	path visit.Tracker[*record.Record]
}

func (e *encoder) record(r *record.Record) (*yaml.Node, error) {
	if !e.path.Enter(r) {
		return nil, record.ErrCycle
	}
	defer e.path.Leave(r)

	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for k, v := range r.All() {
		vn, err := e.value(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}

		n.Content = append(n.Content, keyNode(k), vn)
	}

	return n, nil
}

func keyNode(k string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
}

func (e *encoder) value(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case *record.Record:
		return e.record(x)
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

		for i, item := range x {
			in, err := e.value(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}

			n.Content = append(n.Content, in)
		}

		return n, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, k := range keys {
			vn, err := e.value(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}

			n.Content = append(n.Content, keyNode(k), vn)
		}

		return n, nil
	}

	if v == nil || (reflect.ValueOf(v).Kind() == reflect.Pointer && reflect.ValueOf(v).IsNil()) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}

	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}

	return &n, nil
}
