package flagmodel

import (
	"regexp"
	"strings"

	"github.com/teranos/confgen/errors"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsIdentifier reports whether s is a legal bare identifier.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// KeySyntax selects where a type hint sits inside a raw key.
type KeySyntax int

const (
	// TypeFirst reads "uint32_t count".
	TypeFirst KeySyntax = iota
	// TypeLast reads "count uint32_t", the older positional form.
	TypeLast
)

const (
	typeFirstName = "type-first"
	typeLastName  = "type-last"
)

func (s KeySyntax) String() string {
	switch s {
	case TypeFirst:
		return typeFirstName
	case TypeLast:
		return typeLastName
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s KeySyntax) MarshalText() ([]byte, error) {
	switch s {
	case TypeFirst, TypeLast:
		return []byte(s.String()), nil
	}
	return nil, errors.Newf("unknown key syntax %d", int(s))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *KeySyntax) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case typeFirstName, "":
		*s = TypeFirst
	case typeLastName:
		*s = TypeLast
	default:
		return errors.WithHintf(
			errors.Newf("unknown key syntax %q", string(text)),
			"use %q or %q", typeFirstName, typeLastName,
		)
	}
	return nil
}

// Key is a resolved raw key.
type Key struct {
	Identifier string
	// Hint is TypeNone when the key carries no type keyword.
	Hint Type
}

// Resolver splits raw keys into an identifier and an optional type hint.
type Resolver struct {
	Syntax KeySyntax
}

// Resolve tokenizes rawKey on runs of whitespace. One token is a bare
// identifier; two tokens are a type keyword and an identifier in the order
// selected by Syntax.
func (r Resolver) Resolve(rawKey string) (Key, error) {
	tokens := strings.Fields(rawKey)

	switch len(tokens) {
	case 1:
		if err := checkIdentifier(tokens[0], rawKey); err != nil {
			return Key{}, err
		}
		return Key{Identifier: tokens[0]}, nil
	case 2:
		typeToken, name := tokens[0], tokens[1]
		if r.Syntax == TypeLast {
			name, typeToken = tokens[0], tokens[1]
		}
		hint, err := ParseType(typeToken)
		if err != nil {
			return Key{}, errors.Wrapf(err, "key %q", rawKey)
		}
		if err := checkIdentifier(name, rawKey); err != nil {
			return Key{}, err
		}
		return Key{Identifier: name, Hint: hint}, nil
	case 0:
		return Key{}, errors.Newk(errors.ErrMalformedKey, "key is empty")
	}

	return Key{}, errors.WithHint(
		errors.Newk(errors.ErrMalformedKey, "key %q has too much whitespace to be a valid identifier", rawKey),
		"a key is an identifier, optionally paired with one type keyword",
	)
}

func checkIdentifier(name, rawKey string) error {
	if IsIdentifier(name) {
		return nil
	}
	if name == strings.TrimSpace(rawKey) {
		return errors.Newk(errors.ErrInvalidIdentifier, "%q is not a valid identifier", name)
	}
	return errors.Newk(errors.ErrInvalidIdentifier, "%q in key %q is not a valid identifier", name, rawKey)
}
