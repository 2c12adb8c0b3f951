package domain

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"
)

// RuleEntry is a single rule identifier with its configured value.
type RuleEntry struct {
	Name  string
	Value any
}

// On builds a RuleEntry for the given severity. When options are given the
// value takes the [severity, options...] form.
func On(name string, severity Severity, options ...any) RuleEntry {
	if len(options) == 0 {
		return RuleEntry{Name: name, Value: severity}
	}
	value := make([]any, 0, len(options)+1)
	value = append(value, severity)
	value = append(value, options...)
	return RuleEntry{Name: name, Value: value}
}

// RuleMap maps rule identifiers to their values. Keys are unique and iteration
// follows insertion order so rendered output is stable.
//
// Values are opaque: a Severity, a [severity, options...] sequence, or any
// other value supplied by the caller.
type RuleMap struct {
	keys   []string
	values map[string]any
}

// NewRuleMap creates a RuleMap holding the given entries in order.
// A later entry with an existing name replaces the earlier value in place.
func NewRuleMap(entries ...RuleEntry) *RuleMap {
	m := &RuleMap{values: make(map[string]any, len(entries))}
	for _, e := range entries {
		m.Set(e.Name, e.Value)
	}
	return m
}

// Set stores value under name, keeping the original position of an existing key.
func (m *RuleMap) Set(name string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.values[name] = value
}

// Get returns the value stored under name.
func (m *RuleMap) Get(name string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[name]
	return v, ok
}

// Len returns the number of rules.
func (m *RuleMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the rule identifiers in insertion order.
func (m *RuleMap) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// All iterates over the rules in insertion order.
func (m *RuleMap) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a copy of the map. Values are shared.
func (m *RuleMap) Clone() *RuleMap {
	if m == nil {
		return nil
	}
	out := &RuleMap{
		keys:   slices.Clone(m.keys),
		values: make(map[string]any, len(m.values)),
	}
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// Merge returns a new map with the entries of incoming laid over m.
// Existing keys keep their position, new keys are appended.
func (m *RuleMap) Merge(incoming *RuleMap) *RuleMap {
	out := m.Clone()
	if out == nil {
		out = NewRuleMap()
	}
	for k, v := range incoming.All() {
		out.Set(k, v)
	}
	return out
}

// MarshalYAML encodes the rules as an ordered mapping.
func (m *RuleMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range m.All() {
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			valueNode,
		)
	}
	return node, nil
}

// UnmarshalYAML decodes an ordered mapping of rules.
func (m *RuleMap) UnmarshalYAML(value *yaml.Node) error {
	m.keys = nil
	m.values = make(map[string]any)
	if value.Kind != yaml.MappingNode {
		var discard map[string]any
		return value.Decode(&discard)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var v any
		if err := value.Content[i+1].Decode(&v); err != nil {
			return err
		}
		m.Set(value.Content[i].Value, v)
	}
	return nil
}

// MarshalJSON encodes the rules as a JSON object in insertion order.
func (m *RuleMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
