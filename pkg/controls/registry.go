package controls

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formfield/pkg/model"
)

// Built-in control identifiers exposed by the registry.
const (
	ControlFloat    = "float"
	ControlPercent  = "percent"
	ControlInt      = "int"
	ControlCurrency = "currency"
)

// Matcher decides whether a control should handle the supplied field.
type Matcher func(field model.FieldDefinition) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	control  Control
	order    int
}

// Registry selects controls for fields based on explicit metadata hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order. An empty registry never resolves a control.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
	named map[string]Control
}

// NewRegistry constructs a registry with the built-in numeric controls wired
// from the supplied collaborators.
func NewRegistry(deps Deps) *Registry {
	reg := &Registry{named: make(map[string]Control)}
	reg.registerBuiltins(deps)
	return reg
}

// Register adds a control with the provided name, priority, and matcher.
// Higher priority values take precedence. The latest registration under a
// name wins for explicit-hint lookups.
func (r *Registry) Register(name string, priority int, matcher Matcher, control Control) {
	if r == nil || matcher == nil || control == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.named == nil {
		r.named = make(map[string]Control)
	}
	r.named[trimmed] = control
	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		control:  control,
		order:    len(r.rules),
	})
}

// Resolve returns the control for a field. An explicit Metadata["control"]
// hint is honoured before matcher evaluation.
func (r *Registry) Resolve(field model.FieldDefinition) (Control, bool) {
	if r == nil {
		return nil, false
	}
	if hint := explicitControl(field); hint != "" {
		if control, ok := r.Control(hint); ok {
			return control, true
		}
	}

	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return nil, false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.control, true
		}
	}
	return nil, false
}

// Control retrieves a registered control by name.
func (r *Registry) Control(name string) (Control, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	control, ok := r.named[strings.TrimSpace(name)]
	return control, ok
}

// Names returns the sorted registered control names.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.named))
	for name := range r.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func explicitControl(field model.FieldDefinition) string {
	if field.Metadata == nil {
		return ""
	}
	return strings.TrimSpace(field.Metadata["control"])
}

func (r *Registry) registerBuiltins(deps Deps) {
	r.Register(ControlFloat, 90, func(field model.FieldDefinition) bool {
		return field.Type == model.FieldTypeFloat
	}, NewFloat(deps))

	r.Register(ControlPercent, 80, func(field model.FieldDefinition) bool {
		return field.Type == model.FieldTypePercent
	}, NewPercent(deps))

	r.Register(ControlCurrency, 70, func(field model.FieldDefinition) bool {
		return field.Type == model.FieldTypeCurrency
	}, NewCurrency(deps))

	r.Register(ControlInt, 60, func(field model.FieldDefinition) bool {
		return field.Type == model.FieldTypeInt
	}, NewInt(deps))
}
