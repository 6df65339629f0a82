package variant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/errors"
)

// Registry maps variant names and aliases to variants. It is filled once
// and read-only afterwards, so it may be shared between goroutines.
type Registry struct {
	variants map[string]WildVariant
	names    []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{variants: make(map[string]WildVariant)}
}

// Builtin returns a registry holding one instance of every built-in variant.
func Builtin() *Registry {
	r := NewRegistry()
	for _, entry := range []struct {
		variant WildVariant
		aliases []string
	}{
		{Chess(), []string{"standard", "normal"}},
		{Atomic(), nil},
		{FischerRandom(), []string{"960", "chess960", "wild/fr"}},
		{Giveaway(), []string{"suicide"}},
		{Kriegspiel(), nil},
		{Shatranj(), nil},
		{BothSidesCastling(), []string{"wild/1"}},
		{NoCastling(), nil},
		{ShuffleBoth(), nil},
	} {
		// Built-in names are distinct.
		_ = r.Register(entry.variant, entry.aliases...)
	}
	return r
}

// Register adds v under its name and the given aliases. Names are matched
// case-insensitively. Registering a taken name fails and leaves the
// registry unchanged.
func (r *Registry) Register(v WildVariant, aliases ...string) error {
	keys := append([]string{v.Name()}, aliases...)
	for i, key := range keys {
		keys[i] = strings.ToLower(strings.TrimSpace(key))
		if keys[i] == "" {
			return fmt.Errorf("empty variant name: %w", errors.ErrInvalidConfig)
		}
		if _, taken := r.variants[keys[i]]; taken {
			return fmt.Errorf("variant name %q already registered: %w", keys[i], errors.ErrInvalidConfig)
		}
	}
	for _, key := range keys {
		r.variants[key] = v
	}
	r.names = append(r.names, keys[0])
	sort.Strings(r.names)
	return nil
}

// Lookup returns the variant registered under name.
func (r *Registry) Lookup(name string) (WildVariant, error) {
	v, ok := r.variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, errors.ErrUnknownVariant)
	}
	return v, nil
}

// Names returns the canonical names, sorted.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}
