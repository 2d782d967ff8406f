package config

// Model is the unified, format-agnostic representation of a build description.
type Model struct {
	// Rules are kept in the order they were declared in the source.
	Rules []*Rule
}

// Rule declares one target, its dependencies and the commands that build it.
type Rule struct {
	Target       string
	Dependencies []string
	Commands     []string
	// Origin locates the rule in its source for error messages, e.g. "myMakefile:3".
	Origin string
}

// DefaultTarget returns the target of the first rule, or "" for an empty model.
func (m *Model) DefaultTarget() string {
	if m == nil || len(m.Rules) == 0 {
		return ""
	}
	return m.Rules[0].Target
}

// Targets returns every declared target name in declaration order, without duplicates.
func (m *Model) Targets() []string {
	seen := make(map[string]struct{}, len(m.Rules))
	var out []string
	for _, r := range m.Rules {
		if _, ok := seen[r.Target]; ok {
			continue
		}
		seen[r.Target] = struct{}{}
		out = append(out, r.Target)
	}
	return out
}
