package flagmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/confgen/errors"
)

func section(name string, kv ...string) Section {
	s := Section{Name: name}
	for i := 0; i+1 < len(kv); i += 2 {
		s.Entries = append(s.Entries, Entry{Key: kv[i], Value: kv[i+1]})
	}
	return s
}

func TestBuildEndToEnd(t *testing.T) {
	m, err := NewBuilder(TypeFirst).Build([]Section{
		section("root", "port", "8080"),
		section("net", "timeout", "-1", "name", "worker1"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"root", "net"}, m.Modules())
	assert.Equal(t, []Flag{
		{Module: "root", Identifier: "port", Literal: "8080", Type: TypeUint64},
		{Module: "net", Identifier: "timeout", Literal: "-1", Type: TypeInt32},
		{Module: "net", Identifier: "name", Literal: `"worker1"`, Type: TypeString},
	}, m.Flags())
	assert.Len(t, m.ModuleFlags("net"), 2)
	assert.Equal(t, []string{"net"}, m.NonRootModules())
}

func TestBuildPreservesOrder(t *testing.T) {
	m, err := NewBuilder(TypeFirst).Build([]Section{
		section("root", "z", "1", "a", "2"),
		section("net", "m", "x", "b", "y"),
		section("db", "k", "true"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"root", "net", "db"}, m.Modules())

	var ids []string
	for _, f := range m.Flags() {
		ids = append(ids, f.Path())
	}
	assert.Equal(t, []string{"root.z", "root.a", "net.m", "net.b", "db.k"}, ids)
}

func TestBuildMergesRepeatedSections(t *testing.T) {
	m, err := NewBuilder(TypeFirst).Build([]Section{
		section("net", "a", "1"),
		section("db", "b", "2"),
		section("net", "c", "3"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"net", "db"}, m.Modules())
	flags := m.ModuleFlags("net")
	require.Len(t, flags, 2)
	assert.Equal(t, "c", flags[1].Identifier)
}

func TestBuildDuplicateIdentifier(t *testing.T) {
	_, err := NewBuilder(TypeFirst).Build([]Section{
		section("net", "x", "1", "uint32_t x", "2"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDuplicateIdentifier))
	assert.Equal(t, `module "net": "x" is defined more than once`, err.Error())
}

func TestBuildDuplicateBeatsTypeMismatch(t *testing.T) {
	_, err := NewBuilder(TypeFirst).Build([]Section{
		section("net", "x", "1", "bool x", "hello"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDuplicateIdentifier))
}

func TestBuildSameIdentifierInDifferentModules(t *testing.T) {
	m, err := NewBuilder(TypeFirst).Build([]Section{
		section("root", "x", "1"),
		section("net", "x", "2"),
	})
	require.NoError(t, err)
	assert.Len(t, m.Flags(), 2)
}

func TestBuildStringQuotingIdempotent(t *testing.T) {
	bare, err := NewBuilder(TypeFirst).Build([]Section{section("root", "greeting", "hello")})
	require.NoError(t, err)
	quoted, err := NewBuilder(TypeFirst).Build([]Section{section("root", "greeting", `"hello"`)})
	require.NoError(t, err)

	assert.Equal(t, `"hello"`, bare.Flags()[0].Literal)
	assert.Equal(t, bare.Flags(), quoted.Flags())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		sections []Section
		wantErr  error
		wantMsg  string
	}{
		{
			name:     "hint mismatch",
			sections: []Section{section("net", "bool verbose", "hello")},
			wantErr:  errors.ErrTypeMismatch,
			wantMsg:  `module "net": key "verbose": value "hello" is not a valid bool`,
		},
		{
			name:     "invalid identifier",
			sections: []Section{section("net", "bad-name", "1")},
			wantErr:  errors.ErrInvalidIdentifier,
			wantMsg:  `module "net": "bad-name" is not a valid identifier`,
		},
		{
			name:     "malformed key",
			sections: []Section{section("db", "a b c", "1")},
			wantErr:  errors.ErrMalformedKey,
		},
		{
			name:     "unsupported type",
			sections: []Section{section("db", "short n", "1")},
			wantErr:  errors.ErrUnsupportedType,
		},
		{
			name:     "invalid section",
			sections: []Section{section("my-module", "a", "1")},
			wantErr:  errors.ErrInvalidIdentifier,
			wantMsg:  `section "my-module" is not a valid module name`,
		},
		{
			name:     "overflowing negative",
			sections: []Section{section("root", "offset", "-3000000000")},
			wantErr:  errors.ErrTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewBuilder(TypeFirst).Build(tt.sections)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestBuildTypeLastSyntax(t *testing.T) {
	m, err := NewBuilder(TypeLast).Build([]Section{section("root", "count uint32_t", "3")})
	require.NoError(t, err)
	assert.Equal(t, TypeUint32, m.Flags()[0].Type)
}

func TestBuildEmptyModule(t *testing.T) {
	m, err := NewBuilder(TypeFirst).Build([]Section{section("root"), section("empty")})
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "empty"}, m.Modules())
	assert.True(t, m.HasModule("empty"))
	assert.Empty(t, m.ModuleFlags("empty"))
	assert.False(t, m.HasModule("missing"))
}

func TestFlagNames(t *testing.T) {
	root := Flag{Module: RootModule, Identifier: "port"}
	net := Flag{Module: "net", Identifier: "timeout"}

	assert.Equal(t, "port", root.Name())
	assert.Equal(t, "root.port", root.Path())
	assert.True(t, root.IsRoot())
	assert.Equal(t, "net.timeout", net.Name())
	assert.Equal(t, "net.timeout", net.Path())
}

func TestModelAccessorsReturnCopies(t *testing.T) {
	m, err := NewBuilder(TypeFirst).Build([]Section{section("root", "a", "1")})
	require.NoError(t, err)

	flags := m.Flags()
	flags[0].Identifier = "mutated"
	modules := m.Modules()
	modules[0] = "mutated"

	assert.Equal(t, "a", m.Flags()[0].Identifier)
	assert.Equal(t, "root", m.Modules()[0])
}
