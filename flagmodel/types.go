// Package flagmodel turns raw configuration sections into an ordered, typed
// model of flags grouped by module. It is pure: no I/O, no logging.
package flagmodel

import (
	"sort"
	"strings"

	"github.com/teranos/confgen/errors"
)

// Type is the static type of a flag.
type Type int

const (
	TypeNone Type = iota
	TypeBool
	TypeInt32
	TypeInt64
	TypeUint32
	TypeUint64
	TypeFloat
	TypeDouble
	TypeString
)

// typeKeywords maps every accepted type hint to its Type.
// "string" is shorthand for std::string.
var typeKeywords = map[string]Type{
	"bool":        TypeBool,
	"int32_t":     TypeInt32,
	"int64_t":     TypeInt64,
	"uint32_t":    TypeUint32,
	"uint64_t":    TypeUint64,
	"float":       TypeFloat,
	"double":      TypeDouble,
	"std::string": TypeString,
	"string":      TypeString,
}

var typeNames = map[Type]string{
	TypeNone:   "none",
	TypeBool:   "bool",
	TypeInt32:  "int32_t",
	TypeInt64:  "int64_t",
	TypeUint32: "uint32_t",
	TypeUint64: "uint64_t",
	TypeFloat:  "float",
	TypeDouble: "double",
	TypeString: "std::string",
}

// String returns the canonical keyword for t.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsInteger reports whether t is one of the integer types.
func (t Type) IsInteger() bool {
	switch t {
	case TypeInt32, TypeInt64, TypeUint32, TypeUint64:
		return true
	}
	return false
}

// IsSigned reports whether t is a signed integer type.
func (t Type) IsSigned() bool {
	return t == TypeInt32 || t == TypeInt64
}

// BitSize returns the width of numeric types and 0 for the rest.
func (t Type) BitSize() int {
	switch t {
	case TypeInt32, TypeUint32, TypeFloat:
		return 32
	case TypeInt64, TypeUint64, TypeDouble:
		return 64
	}
	return 0
}

// Keywords returns every accepted type keyword, sorted.
func Keywords() []string {
	keywords := make([]string, 0, len(typeKeywords))
	for k := range typeKeywords {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}

// ParseType maps a type keyword to its Type.
func ParseType(keyword string) (Type, error) {
	if t, ok := typeKeywords[keyword]; ok {
		return t, nil
	}
	return TypeNone, errors.WithHintf(
		errors.Newk(errors.ErrUnsupportedType, "%q is not a supported type", keyword),
		"supported types: %s", strings.Join(Keywords(), ", "),
	)
}
