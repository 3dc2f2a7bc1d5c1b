package lang

import (
	"fmt"
	"strings"
)

// Tag identifies a construct kind. The vocabulary is closed; each language
// supports a subset of it.
type Tag string

// Construct tags.
const (
	TagClass     Tag = "CLASS"
	TagStruct    Tag = "STRUCT"
	TagEnum      Tag = "ENUM"
	TagUnion     Tag = "UNION"
	TagTrait     Tag = "TRAIT"
	TagInterface Tag = "INTERFACE"
	TagProtocol  Tag = "PROTOCOL"
	TagExtension Tag = "EXTENSION"
	TagModule    Tag = "MODULE"
	TagNamespace Tag = "NAMESPACE"
	TagImpl      Tag = "IMPL"
	TagFunction  Tag = "FUNCTION"
	TagMethod    Tag = "METHOD"
	TagMacro     Tag = "MACRO"
	TagComponent Tag = "COMPONENT"
	TagProperty  Tag = "PROPERTY"
	TagConstant  Tag = "CONSTANT"
	TagVariable  Tag = "VARIABLE"
	TagTypeAlias Tag = "TYPE_ALIAS"
	TagTypedef   Tag = "TYPEDEF"
	TagImport    Tag = "IMPORT"
	TagDecorator Tag = "DECORATOR"
)

// AllTags returns the full vocabulary in canonical order.
func AllTags() []Tag {
	return []Tag{
		TagClass, TagStruct, TagEnum, TagUnion, TagTrait, TagInterface,
		TagProtocol, TagExtension, TagModule, TagNamespace, TagImpl,
		TagFunction, TagMethod, TagMacro, TagComponent, TagProperty,
		TagConstant, TagVariable, TagTypeAlias, TagTypedef, TagImport,
		TagDecorator,
	}
}

// HeadlineTags returns the tags that name a type, a callable or a module.
// They make up the entries of a reference catalog.
func HeadlineTags() []Tag {
	return []Tag{
		TagClass, TagStruct, TagEnum, TagUnion, TagTrait, TagInterface,
		TagProtocol, TagExtension, TagModule, TagNamespace, TagImpl,
		TagFunction, TagMethod, TagTypeAlias, TagTypedef, TagComponent,
	}
}

// ParseTag parses a tag name case-insensitively.
func ParseTag(name string) (Tag, error) {
	candidate := Tag(strings.ToUpper(strings.TrimSpace(name)))
	for _, tag := range AllTags() {
		if tag == candidate {
			return tag, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTag, name)
}

// ParseTagFilter parses a pipe-separated tag list such as "CLASS|FUNCTION".
// Duplicates are dropped while preserving first-seen order.
func ParseTagFilter(filter string) ([]Tag, error) {
	var tags []Tag
	seen := make(map[Tag]bool)

	for _, part := range strings.Split(filter, "|") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		tag, err := ParseTag(part)
		if err != nil {
			return nil, err
		}
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoTags, filter)
	}

	return tags, nil
}

// String returns the tag name.
func (t Tag) String() string {
	return string(t)
}

// JoinTags renders tags as a comma-separated list.
func JoinTags(tags []Tag) string {
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = string(tag)
	}
	return strings.Join(names, ", ")
}
