package extract

import (
	"errors"
	"fmt"

	"github.com/yaklabco/srcmine/pkg/lang"
)

// Configuration errors.
var (
	// ErrUnsupportedTag means a requested tag is not defined for a file's
	// language.
	ErrUnsupportedTag = errors.New("unsupported tag")

	// ErrNoTags means the request named no tags.
	ErrNoTags = lang.ErrNoTags

	// ErrInvalidPattern means the name pattern is not a valid regexp.
	ErrInvalidPattern = errors.New("invalid name pattern")
)

// UnsupportedTagError names the tag, the language and the tags the
// language does support.
type UnsupportedTagError struct {
	Tag       lang.Tag
	Language  string
	Supported []lang.Tag
}

func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("tag %s is not supported for %s; supported tags: %s",
		e.Tag, e.Language, lang.JoinTags(e.Supported))
}

// Unwrap lets errors.Is match ErrUnsupportedTag.
func (e *UnsupportedTagError) Unwrap() error {
	return ErrUnsupportedTag
}
