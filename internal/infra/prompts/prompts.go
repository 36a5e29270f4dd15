// Package prompts resolves the enumerated request options (depth, complexity,
// length) into the instruction fragments the generation adapters inject into
// model prompts. Presets live in an embedded YAML file so prompt tuning does
// not require touching adapter code.
package prompts

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// Catalog holds the parsed preset groups.
type Catalog struct {
	depth      group
	complexity group
	length     group
}

type group struct {
	Default string            `yaml:"default"`
	Options map[string]string `yaml:"options"`
}

type presetFile struct {
	Depth      group `yaml:"depth"`
	Complexity group `yaml:"complexity"`
	Length     group `yaml:"length"`
}

// Parse builds a Catalog from YAML preset definitions.
func Parse(data []byte) (*Catalog, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for name, g := range map[string]group{"depth": f.Depth, "complexity": f.Complexity, "length": f.Length} {
		if _, ok := g.Options[g.Default]; !ok {
			return nil, fmt.Errorf("parse presets: group %q default %q has no option entry", name, g.Default)
		}
	}
	return &Catalog{depth: f.Depth, complexity: f.Complexity, length: f.Length}, nil
}

// Default returns the Catalog parsed from the embedded preset file.
// The embedded file is validated at init; a broken embed is a build defect.
func Default() *Catalog {
	c, err := Parse(presetsYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Depth resolves a depth option to its canonical name and instruction.
// Unknown names resolve to the group default.
func (c *Catalog) Depth(name string) (string, string) {
	return c.depth.resolve(name)
}

// Complexity resolves a complexity option to its canonical name and instruction.
func (c *Catalog) Complexity(name string) (string, string) {
	return c.complexity.resolve(name)
}

// Length resolves a length option to its canonical name and instruction.
func (c *Catalog) Length(name string) (string, string) {
	return c.length.resolve(name)
}

func (g group) resolve(name string) (string, string) {
	if instr, ok := g.Options[name]; ok {
		return name, instr
	}
	return g.Default, g.Options[g.Default]
}
