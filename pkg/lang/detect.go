package lang

import (
	"fmt"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Detect resolves the profile for path. Files with an extension go through
// Resolve. Extensionless files are identified by their shebang line; an
// ambiguous or unknown interpreter leaves them unrecognized.
func (r *Registry) Detect(path string, content []byte) (*Profile, error) {
	if filepath.Ext(path) != "" {
		return r.Resolve(path)
	}

	name, safe := enry.GetLanguageByShebang(content)
	if !safe || name == "" {
		return nil, fmt.Errorf("%w: %s: no usable shebang", ErrUnrecognizedLanguage, path)
	}

	p, err := r.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: interpreter language %q", ErrUnrecognizedLanguage, path, name)
	}
	return p, nil
}
