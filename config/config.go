// Package config reads hierarchical configuration from YAML documents.
//
// A [Section] is a node in the document addressed by a path of keys joined with ":".
// Items in a sequence are addressed by their index, so the second handler of the
// first pipeline is "pipelines:0:handlers:1". Keys are matched without regard to case.
package config

import (
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sectrean/di-builder/internal/errors"
)

// KeyDelimiter separates keys in a section path.
const KeyDelimiter = ":"

// Section is a node in a configuration document.
//
// A Section for a path that is not in the document can still be used.
// It has no value and no children, and [Section.Exists] returns false.
type Section struct {
	node *yaml.Node
	path []string
}

// Parse reads a YAML document.
func Parse(data []byte) (*Section, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	var root *yaml.Node
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root = doc.Content[0]
	}

	return &Section{node: root}, nil
}

// LoadOption is used to configure [Load].
type LoadOption func(*loadConfig)

type loadConfig struct {
	envFiles  []string
	expandEnv bool
}

// WithEnvFiles loads environment variables from .env files before the document is read,
// and expands ${VAR} references in the document.
//
// Files that do not exist are skipped. Variables already set in the environment are not
// overwritten.
func WithEnvFiles(files ...string) LoadOption {
	return func(c *loadConfig) {
		c.envFiles = append(c.envFiles, files...)
		c.expandEnv = true
	}
}

// Load reads a YAML document from a file.
func Load(path string, opts ...LoadOption) (*Section, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, f := range cfg.envFiles {
		// Non-fatal: .env files are optional
		_ = godotenv.Load(f)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}

	if cfg.expandEnv {
		data = []byte(os.ExpandEnv(string(data)))
	}

	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}

	return s, nil
}

// Path returns the full path of the Section. The root Section has an empty path.
func (s *Section) Path() string {
	return strings.Join(s.path, KeyDelimiter)
}

// Key returns the last key in the path of the Section.
func (s *Section) Key() string {
	if len(s.path) == 0 {
		return ""
	}
	return s.path[len(s.path)-1]
}

// Exists returns true if the Section is in the document.
func (s *Section) Exists() bool {
	return s.node != nil
}

// Value returns the value of a scalar Section, or "" for anything else.
func (s *Section) Value() string {
	if s.node == nil || s.node.Kind != yaml.ScalarNode {
		return ""
	}
	return s.node.Value
}

// Get returns the value of the sub-section with the given key.
func (s *Section) Get(key string) string {
	return s.Section(key).Value()
}

// Section returns the sub-section with the given key. The key may be a path such as "a:b:0".
func (s *Section) Section(key string) *Section {
	cur := s
	for _, k := range strings.Split(key, KeyDelimiter) {
		cur = cur.child(k)
	}
	return cur
}

func (s *Section) child(key string) *Section {
	path := append(s.path[:len(s.path):len(s.path)], key)
	node := resolveAlias(s.node)

	if node != nil {
		switch node.Kind {
		case yaml.MappingNode:
			for i := 0; i+1 < len(node.Content); i += 2 {
				if strings.EqualFold(node.Content[i].Value, key) {
					return &Section{node: resolveAlias(node.Content[i+1]), path: path}
				}
			}

		case yaml.SequenceNode:
			if i, err := strconv.Atoi(key); err == nil && i >= 0 && i < len(node.Content) {
				return &Section{node: resolveAlias(node.Content[i]), path: path}
			}
		}
	}

	return &Section{path: path}
}

// Children returns the immediate sub-sections in document order.
func (s *Section) Children() []*Section {
	node := resolveAlias(s.node)
	if node == nil {
		return nil
	}

	var children []*Section
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			children = append(children, s.child(node.Content[i].Value))
		}

	case yaml.SequenceNode:
		for i := range node.Content {
			children = append(children, s.child(strconv.Itoa(i)))
		}
	}

	return children
}

// Decode decodes the Section into v using yaml struct tags.
//
// Mapping keys are matched to struct fields without regard to case.
// Decoding a Section that does not exist leaves v unchanged.
func (s *Section) Decode(v any) error {
	if s.node == nil {
		return nil
	}

	node := foldKeys(s.node, reflect.TypeOf(v))
	if err := node.Decode(v); err != nil {
		return errors.Wrapf(err, "decode config %q", s.Path())
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// foldKeys returns a copy of n with mapping keys renamed to the struct field
// names of t they match without regard to case. n is not modified.
func foldKeys(n *yaml.Node, t reflect.Type) *yaml.Node {
	n = resolveAlias(n)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if n == nil || t == nil {
		return n
	}

	switch {
	case n.Kind == yaml.MappingNode && t.Kind() == reflect.Struct:
		fields := make(map[string]reflect.StructField)
		collectFields(t, fields)

		c := *n
		c.Content = make([]*yaml.Node, len(n.Content))
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if f, ok := fields[strings.ToLower(key.Value)]; ok {
				k := *key
				k.Value = fieldName(f)
				key = &k
				val = foldKeys(val, f.Type)
			}
			c.Content[i], c.Content[i+1] = key, val
		}
		return &c

	case n.Kind == yaml.MappingNode && t.Kind() == reflect.Map:
		c := *n
		c.Content = make([]*yaml.Node, len(n.Content))
		for i := 0; i+1 < len(n.Content); i += 2 {
			c.Content[i] = n.Content[i]
			c.Content[i+1] = foldKeys(n.Content[i+1], t.Elem())
		}
		return &c

	case n.Kind == yaml.SequenceNode && (t.Kind() == reflect.Slice || t.Kind() == reflect.Array):
		c := *n
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, item := range n.Content {
			c.Content[i] = foldKeys(item, t.Elem())
		}
		return &c
	}

	return n
}

// collectFields adds the decodable fields of struct type t, keyed by lower case name.
// Fields tagged ",inline" are flattened into their parent.
func collectFields(t reflect.Type, fields map[string]reflect.StructField) {
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() && !f.Anonymous {
			continue
		}

		tag := f.Tag.Get("yaml")
		if tag == "-" {
			continue
		}

		if strings.Contains(tag, ",inline") {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				collectFields(ft, fields)
			}
			continue
		}

		fields[strings.ToLower(fieldName(f))] = f
	}
}

// fieldName returns the key yaml.v3 decodes into f.
func fieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}
