package recordyaml

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"openrecord/record"
)

var ErrNotMapping = errors.New("document is not a mapping")

const mergeTag = "!!merge"

// LoadFile loads and parses a YAML document from the given path.
func LoadFile(path string, opts ...record.Option) (*record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file %s: %w", path, err)
	}

	return Load(data, opts...)
}

// Read parses a YAML document from rd.
func Read(rd io.Reader, opts ...record.Option) (*record.Record, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read record YAML: %w", err)
	}

	return Load(data, opts...)
}

// Load parses a YAML document whose top level is a mapping.
// An empty document yields an empty record.
func Load(data []byte, opts ...record.Option) (*record.Record, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse record YAML: %w", err)
	}

	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return record.Blank(opts...), nil
	}

	root := resolve(&doc)
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d", ErrNotMapping, root.Line)
	}

	d := decoder{opts: opts}

	return d.mapping(root)
}

type decoder struct {
	opts []record.Option
}

// resolve skips document wrappers and follows aliases.
func resolve(n *yaml.Node) *yaml.Node {
	for {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) == 1:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return n
		}
	}
}

func (d decoder) mapping(n *yaml.Node) (*record.Record, error) {
	r := record.Blank(d.opts...)

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]

		if k.Kind == yaml.ScalarNode && k.ShortTag() == mergeTag {
			if err := d.merge(r, v); err != nil {
				return nil, err
			}

			continue
		}

		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
		}

		val, err := d.value(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k.Value, err)
		}

		if err := r.Store(k.Value, val); err != nil {
			return nil, fmt.Errorf("line %d: %w", k.Line, err)
		}
	}

	return r, nil
}

// merge applies a "<<" entry. Keys already present win over merged ones.
func (d decoder) merge(r *record.Record, v *yaml.Node) error {
	v = resolve(v)

	var sources []*yaml.Node

	switch v.Kind {
	case yaml.MappingNode:
		sources = []*yaml.Node{v}
	case yaml.SequenceNode:
		for _, item := range v.Content {
			sources = append(sources, resolve(item))
		}
	default:
		return fmt.Errorf("line %d: merge value must be a mapping or a list of mappings", v.Line)
	}

	for _, src := range sources {
		if src.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: merge value must be a mapping", src.Line)
		}

		m, err := d.mapping(src)
		if err != nil {
			return err
		}

		for k, val := range m.All() {
			if r.Has(k) {
				continue
			}

			if err := r.Store(k, val); err != nil {
				return err
			}
		}
	}

	return nil
}

func (d decoder) value(n *yaml.Node) (any, error) {
	n = resolve(n)

	switch n.Kind {
	case yaml.MappingNode:
		return d.mapping(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))

		for i, item := range n.Content {
			v, err := d.value(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}

			out = append(out, v)
		}

		return out, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}

		return v, nil
	}
}
