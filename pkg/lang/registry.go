package lang

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Sentinel errors for registry lookups.
var (
	// ErrUnrecognizedLanguage means no profile matches a file. Callers skip
	// the file.
	ErrUnrecognizedLanguage = errors.New("unrecognized language")

	// ErrUnknownLanguage means a language identifier or alias is not known.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrUnknownTag means a tag name is outside the vocabulary.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrNoTags means a tag filter named no tags at all.
	ErrNoTags = errors.New("no tags given")
)

// Registry maps extensions and identifiers to language profiles.
// A Registry is immutable once built and safe for concurrent use.
type Registry struct {
	profiles    []*Profile
	byName      map[string]*Profile
	byExtension map[string]*Profile
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry built from the builtin table.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(builtinProfiles())
	})
	return defaultRegistry
}

// NewRegistry builds a registry from profiles. Later profiles do not
// override an extension or alias already claimed by an earlier one.
func NewRegistry(profiles []*Profile) *Registry {
	reg := &Registry{
		profiles:    profiles,
		byName:      make(map[string]*Profile),
		byExtension: make(map[string]*Profile),
	}

	for _, p := range profiles {
		claim(reg.byName, p.Name, p)
		claim(reg.byName, p.Display, p)
		for _, alias := range p.Aliases {
			claim(reg.byName, alias, p)
		}
		for _, ext := range p.Extensions {
			claim(reg.byExtension, ext, p)
		}
	}

	return reg
}

func claim(m map[string]*Profile, key string, p *Profile) {
	key = strings.ToLower(key)
	if _, taken := m[key]; !taken {
		m[key] = p
	}
}

// Resolve returns the profile for path based on its extension.
func (r *Registry) Resolve(path string) (*Profile, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, fmt.Errorf("%w: %s: no file extension", ErrUnrecognizedLanguage, path)
	}
	if p, ok := r.byExtension[ext]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s: extension %q", ErrUnrecognizedLanguage, path, ext)
}

// Lookup resolves a language by identifier, display name or alias.
func (r *Registry) Lookup(name string) (*Profile, error) {
	if p, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
}

// SupportedTags returns the tags a language supports in canonical table
// order. Unknown languages yield nil.
func (r *Registry) SupportedTags(language string) []Tag {
	p, err := r.Lookup(language)
	if err != nil {
		return nil
	}
	return p.SupportedTags()
}

// Profiles returns all profiles in table order.
func (r *Registry) Profiles() []*Profile {
	return slices.Clone(r.profiles)
}

// Extensions returns every registered extension, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExtension))
	for ext := range r.byExtension {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Supported reports whether path has a registered extension.
func (r *Registry) Supported(path string) bool {
	_, ok := r.byExtension[strings.ToLower(filepath.Ext(path))]
	return ok
}
