// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvfactor/factor"
	"gopkg.in/yaml.v3"
)

// Document is the YAML shape of a model file.
//
//	variables:
//	  - name: Rain
//	    domain: [wet, dry]
//	factors:
//	  - name: PRain
//	    scope: [Rain]
//	    values: [0.2, 0.8]
//
// Domain values keep their YAML scalar types (int, float64, bool, string).
// Go-side float32 values are written as float64 and read back as float64.
type Document struct {
	Variables []VariableSpec `yaml:"variables"`
	Factors   []FactorSpec   `yaml:"factors,omitempty"`
}

// VariableSpec declares one random variable.
type VariableSpec struct {
	Name   string `yaml:"name"`
	Domain []any  `yaml:"domain,flow"`
}

// MarshalYAML writes the domain as a flow sequence. Float values always carry
// a decimal point (or .inf/.nan) so 1.0 reads back as float64, not int.
func (s VariableSpec) MarshalYAML() (any, error) {
	dom := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range s.Domain {
		n := &yaml.Node{}
		switch x := v.(type) {
		case float64:
			n.Kind, n.Tag, n.Value = yaml.ScalarNode, "!!float", floatText(x)
		case float32:
			n.Kind, n.Tag, n.Value = yaml.ScalarNode, "!!float", floatText(float64(x))
		default:
			if err := n.Encode(v); err != nil {
				return nil, fmt.Errorf("model: variable %s: %w", s.Name, err)
			}
		}
		dom.Content = append(dom.Content, n)
	}

	return &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "name"},
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Name},
		{Kind: yaml.ScalarNode, Value: "domain"},
		dom,
	}}, nil
}

// floatText formats f in a form YAML resolves to !!float.
func floatText(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	t := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(t, ".e") {
		t += ".0"
	}

	return t
}

// FactorSpec declares one factor; Values follow the row-major order of Scope.
type FactorSpec struct {
	Name   string    `yaml:"name"`
	Scope  []string  `yaml:"scope,flow"`
	Values []float64 `yaml:"values,flow"`
}

// DocumentFor describes f as a self-contained document: its scope's variables
// followed by a single factor declaration named name.
func DocumentFor(name string, f *factor.Factor) Document {
	vars := f.Scope().Variables()
	doc := Document{Variables: make([]VariableSpec, len(vars))}
	for i, v := range vars {
		doc.Variables[i] = VariableSpec{Name: v.Name(), Domain: v.Domain()}
	}
	doc.Factors = []FactorSpec{{
		Name:   name,
		Scope:  f.Scope().Names(),
		Values: f.Values(),
	}}

	return doc
}

// EncodeFactor writes f to w as a YAML document that Load reads back.
func EncodeFactor(w io.Writer, name string, f *factor.Factor) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(DocumentFor(name, f)); err != nil {
		return fmt.Errorf("model: encode %s: %w", name, err)
	}

	return enc.Close()
}
