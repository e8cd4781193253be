// Package prefixfile loads ordered prefix declarations from YAML files and
// JSON-LD context documents.
package prefixfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/piprate/json-gold/ld"
	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/turtle-writer/rdf"
)

// ErrUnsupportedPrefixFile indicates a file extension with no known loader.
var ErrUnsupportedPrefixFile = errors.New("prefixfile: unsupported file type")

// Load reads prefixes from path, choosing the loader by extension:
// .yaml and .yml use LoadYAML, .jsonld and .json use LoadJSONLD.
func Load(path string) ([]rdf.Prefix, error) {
	var loader func(io.Reader) ([]rdf.Prefix, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		loader = LoadYAML
	case ".jsonld", ".json":
		loader = LoadJSONLD
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPrefixFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	prefixes, err := loader(f)
	if err != nil {
		return nil, fmt.Errorf("prefixfile: %s: %w", path, err)
	}
	return prefixes, nil
}

// LoadYAML reads a document of the form
//
//	prefixes:
//	  foaf: http://xmlns.com/foaf/0.1/
//	  rdfs: http://www.w3.org/2000/01/rdf-schema#
//
// keeping the mapping order.
func LoadYAML(r io.Reader) ([]rdf.Prefix, error) {
	var doc struct {
		Prefixes yaml.Node `yaml:"prefixes"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	node := doc.Prefixes
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: prefixes must be a mapping", node.Line)
	}

	prefixes := make([]rdf.Prefix, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: namespace for %q must be a string", value.Line, key.Value)
		}
		prefixes = append(prefixes, rdf.Prefix{Label: key.Value, Namespace: value.Value})
	}
	return prefixes, nil
}

// LoadJSONLD reads a JSON-LD document and returns the prefixes defined by
// its @context, ordered by label. Only term definitions whose IRI ends in '/'
// or '#' count as prefixes. A document without @context is treated as the
// context itself.
func LoadJSONLD(r io.Reader) ([]rdf.Prefix, error) {
	var doc map[string]interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	localContext, ok := doc["@context"]
	if !ok {
		localContext = doc
	}

	opts := ld.NewJsonLdOptions("")
	active, err := ld.NewContext(nil, opts).Parse(localContext)
	if err != nil {
		return nil, err
	}

	mapping := active.GetPrefixes(true)
	labels := make([]string, 0, len(mapping))
	for label := range mapping {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	prefixes := make([]rdf.Prefix, 0, len(labels))
	for _, label := range labels {
		prefixes = append(prefixes, rdf.Prefix{Label: label, Namespace: mapping[label]})
	}
	return prefixes, nil
}
