package flagmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/confgen/errors"
)

func TestResolveTypeFirst(t *testing.T) {
	r := Resolver{}

	tests := []struct {
		name    string
		rawKey  string
		want    Key
		wantErr error
	}{
		{name: "bare identifier", rawKey: "valid_name", want: Key{Identifier: "valid_name"}},
		{name: "leading underscore", rawKey: "_x1", want: Key{Identifier: "_x1"}},
		{name: "surrounding whitespace", rawKey: "  port ", want: Key{Identifier: "port"}},
		{name: "type hint", rawKey: "uint32_t count", want: Key{Identifier: "count", Hint: TypeUint32}},
		{name: "collapsed whitespace", rawKey: "double \t  ratio", want: Key{Identifier: "ratio", Hint: TypeDouble}},
		{name: "string alias", rawKey: "string name", want: Key{Identifier: "name", Hint: TypeString}},
		{name: "std string", rawKey: "std::string name", want: Key{Identifier: "name", Hint: TypeString}},
		{name: "dash", rawKey: "bad-name", wantErr: errors.ErrInvalidIdentifier},
		{name: "leading digit", rawKey: "1st", wantErr: errors.ErrInvalidIdentifier},
		{name: "hinted bad name", rawKey: "bool bad-name", wantErr: errors.ErrInvalidIdentifier},
		{name: "unknown type", rawKey: "int count", wantErr: errors.ErrUnsupportedType},
		{name: "reversed order", rawKey: "count uint32_t", wantErr: errors.ErrUnsupportedType},
		{name: "three tokens", rawKey: "a b c", wantErr: errors.ErrMalformedKey},
		{name: "empty", rawKey: "   ", wantErr: errors.ErrMalformedKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.rawKey)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTypeLast(t *testing.T) {
	r := Resolver{Syntax: TypeLast}

	got, err := r.Resolve("count uint32_t")
	require.NoError(t, err)
	assert.Equal(t, Key{Identifier: "count", Hint: TypeUint32}, got)

	_, err = r.Resolve("uint32_t count")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedType))
}

func TestResolveErrorsNameTheKey(t *testing.T) {
	_, err := Resolver{}.Resolve("a b c")
	require.Error(t, err)
	assert.Equal(t, `key "a b c" has too much whitespace to be a valid identifier`, err.Error())

	_, err = Resolver{}.Resolve("bad-name")
	require.Error(t, err)
	assert.Equal(t, `"bad-name" is not a valid identifier`, err.Error())

	_, err = Resolver{}.Resolve("int count")
	require.Error(t, err)
	assert.Equal(t, `key "int count": "int" is not a supported type`, err.Error())
}

func TestKeySyntaxText(t *testing.T) {
	var s KeySyntax
	require.NoError(t, s.UnmarshalText([]byte("type-last")))
	assert.Equal(t, TypeLast, s)

	require.NoError(t, s.UnmarshalText([]byte("Type-First")))
	assert.Equal(t, TypeFirst, s)

	require.Error(t, s.UnmarshalText([]byte("prefix")))

	text, err := TypeLast.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "type-last", string(text))

	_, err = KeySyntax(9).MarshalText()
	require.Error(t, err)
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("root"))
	assert.True(t, IsIdentifier("Module_2"))
	assert.False(t, IsIdentifier(""))
	assert.False(t, IsIdentifier("a.b"))
	assert.False(t, IsIdentifier("ünïcode"))
}
