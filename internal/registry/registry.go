// Package registry resolves "app_label.ModelName" identifiers to monitorable tables.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/target/chroniker-go/internal/domain/model"
)

var (
	// ErrMalformedModel is returned for identifiers that are not exactly "app_label.ModelName".
	ErrMalformedModel = errors.New("model must be in the format app_label.ModelName")
	// ErrAppNotFound is returned when no model is registered under the app label.
	ErrAppNotFound = errors.New("app not found")
	// ErrModelNotFound is returned when the app exists but has no such model.
	ErrModelNotFound = errors.New("model not found")
	// ErrDuplicateModel is returned when registering an identifier twice.
	ErrDuplicateModel = errors.New("model already registered")
)

// BuiltinJobModel is the job tracking table itself, always monitorable.
var BuiltinJobModel = model.Model{AppLabel: "chroniker", Name: "Job", Table: "jobs"}

// LookupError carries the user-facing lookup message and the sentinel it matches.
type LookupError struct {
	Kind    error
	message string
}

func (e *LookupError) Error() string { return e.message }

func (e *LookupError) Unwrap() error { return e.Kind }

// Registry maps app labels and model names to tables.
// Model names match case-insensitively, app labels exactly.
// It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	apps map[string]map[string]model.Model
}

// New returns a registry holding the given models.
func New(models ...model.Model) (*Registry, error) {
	r := &Registry{apps: make(map[string]map[string]model.Model)}
	for _, m := range models {
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds m. The table defaults to the lowercase "app_model" convention.
func (r *Registry) Register(m model.Model) error {
	m.AppLabel = strings.TrimSpace(m.AppLabel)
	m.Name = strings.TrimSpace(m.Name)
	m.Table = strings.TrimSpace(m.Table)
	if m.AppLabel == "" || m.Name == "" || strings.Contains(m.AppLabel, ".") || strings.Contains(m.Name, ".") {
		return fmt.Errorf("register %q: %w", m.Label(), ErrMalformedModel)
	}
	if m.Table == "" {
		m.Table = DefaultTable(m.AppLabel, m.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	models, ok := r.apps[m.AppLabel]
	if !ok {
		models = make(map[string]model.Model)
		r.apps[m.AppLabel] = models
	}
	key := strings.ToLower(m.Name)
	if _, exists := models[key]; exists {
		return fmt.Errorf("register %q: %w", m.Label(), ErrDuplicateModel)
	}
	models[key] = m
	return nil
}

// Lookup returns the model registered under appLabel and name.
func (r *Registry) Lookup(appLabel, name string) (model.Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	models, ok := r.apps[appLabel]
	if !ok {
		return model.Model{}, &LookupError{
			Kind:    ErrAppNotFound,
			message: fmt.Sprintf("No installed app with label '%s'.", appLabel),
		}
	}
	m, ok := models[strings.ToLower(name)]
	if !ok {
		return model.Model{}, &LookupError{
			Kind:    ErrModelNotFound,
			message: fmt.Sprintf("App '%s' doesn't have a '%s' model.", appLabel, name),
		}
	}
	return m, nil
}

// Resolve parses an "app_label.ModelName" identifier and looks it up.
func (r *Registry) Resolve(ref string) (model.Model, error) {
	appLabel, name, err := SplitModelRef(ref)
	if err != nil {
		return model.Model{}, err
	}
	return r.Lookup(appLabel, name)
}

// Models returns every registered model sorted by label.
func (r *Registry) Models() []model.Model {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Model, 0)
	for _, models := range r.apps {
		for _, m := range models {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label() < out[j].Label() })
	return out
}

// SplitModelRef splits ref on its single ".". Any other shape is malformed.
func SplitModelRef(ref string) (string, string, error) {
	parts := strings.Split(ref, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w (got %q)", ErrMalformedModel, ref)
	}
	return parts[0], parts[1], nil
}

// DefaultTable returns the conventional table name for a model: "app_model", lowercased.
func DefaultTable(appLabel, name string) string {
	return strings.ToLower(appLabel + "_" + name)
}

// ParseEntry parses a configured "app.Model[:table]" entry.
func ParseEntry(entry string) (model.Model, error) {
	ref, table, _ := strings.Cut(strings.TrimSpace(entry), ":")
	appLabel, name, err := SplitModelRef(strings.TrimSpace(ref))
	if err != nil {
		return model.Model{}, fmt.Errorf("parse model entry %q: %w", entry, err)
	}
	return model.Model{AppLabel: appLabel, Name: name, Table: strings.TrimSpace(table)}, nil
}

// FromConfig builds a registry holding the built-in job model plus the configured entries.
func FromConfig(entries []string) (*Registry, error) {
	r, err := New(BuiltinJobModel)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		m, parseErr := ParseEntry(entry)
		if parseErr != nil {
			return nil, parseErr
		}
		if regErr := r.Register(m); regErr != nil {
			return nil, regErr
		}
	}
	return r, nil
}
