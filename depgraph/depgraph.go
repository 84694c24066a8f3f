package depgraph

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Serializer is implemented by values that can flatten themselves into a
// plain mapping suitable for document output.
type Serializer interface {
	Serialize() map[string]any
}

// ParamSpec describes one parameter of a run and its position in the
// dependency graph.
type ParamSpec struct {
	// Name is the registration name of the parameter.
	Name string `yaml:"name"`
	// Type is the storage type of the parameter values (e.g. "numeric").
	Type string `yaml:"type"`
	// Label is the human-readable axis label.
	Label string `yaml:"label,omitempty"`
	// Unit is the physical unit of the parameter values.
	Unit string `yaml:"unit,omitempty"`
	// DependsOn names the setpoint parameters this parameter was measured
	// against.
	DependsOn []string `yaml:"depends_on,omitempty"`
	// InferredFrom names the raw parameters this parameter was computed
	// from.
	InferredFrom []string `yaml:"inferred_from,omitempty"`
}

// Serialize flattens the spec into a plain mapping.
func (s ParamSpec) Serialize() map[string]any {
	m := map[string]any{
		"name": s.Name,
		"type": s.Type,
	}
	if s.Label != "" {
		m["label"] = s.Label
	}
	if s.Unit != "" {
		m["unit"] = s.Unit
	}
	if len(s.DependsOn) > 0 {
		m["depends_on"] = append([]string(nil), s.DependsOn...)
	}
	if len(s.InferredFrom) > 0 {
		m["inferred_from"] = append([]string(nil), s.InferredFrom...)
	}
	return m
}

// InterDependencies is the dependency graph of all parameters of a run.
type InterDependencies struct {
	ParamSpecs []ParamSpec `yaml:"paramspecs"`
}

var _ Serializer = InterDependencies{}

// Serialize flattens the graph into a plain mapping keyed by "paramspecs".
func (i InterDependencies) Serialize() map[string]any {
	specs := make([]map[string]any, 0, len(i.ParamSpecs))
	for _, s := range i.ParamSpecs {
		specs = append(specs, s.Serialize())
	}
	return map[string]any{"paramspecs": specs}
}

// RunDescriber bundles everything needed to describe a measurement run.
// Currently that is the parameter interdependencies.
type RunDescriber struct {
	Interdeps InterDependencies `yaml:"Parameters"`
}

var _ Serializer = RunDescriber{}

// Serialize flattens the run description into a plain mapping, keyed by
// "Parameters".
func (r RunDescriber) Serialize() map[string]any {
	return map[string]any{"Parameters": r.Interdeps.Serialize()}
}

// OutputYAML renders the run description as a YAML document.
func (r RunDescriber) OutputYAML() (string, error) {
	out, err := yaml.Marshal(r.Serialize())
	if err != nil {
		return "", fmt.Errorf("depgraph: marshal run description: %w", err)
	}
	return string(out), nil
}
