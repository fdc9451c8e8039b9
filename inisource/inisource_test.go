package inisource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/flagmodel"
)

func TestParse(t *testing.T) {
	data := []byte(`
; comment
[root]
port = 8080

[net]
timeout = -1
name = worker1
uint32_t   retries = 3
`)

	sections, err := Parse("config.ini", data)
	require.NoError(t, err)

	assert.Equal(t, []flagmodel.Section{
		{Name: "root", Entries: []flagmodel.Entry{{Key: "port", Value: "8080"}}},
		{Name: "net", Entries: []flagmodel.Entry{
			{Key: "timeout", Value: "-1"},
			{Key: "name", Value: "worker1"},
			{Key: "uint32_t   retries", Value: "3"},
		}},
	}, sections)
}

func TestParsePreservesValues(t *testing.T) {
	data := []byte(`[root]
greeting = "hello"
channel = #general
Mixed_Case = 1
`)

	sections, err := Parse("config.ini", data)
	require.NoError(t, err)
	require.Len(t, sections, 1)

	entries := sections[0].Entries
	require.Len(t, entries, 3)
	assert.Equal(t, `"hello"`, entries[0].Value)
	assert.Equal(t, "#general", entries[1].Value)
	assert.Equal(t, "Mixed_Case", entries[2].Key)
}

func TestParseKeyValueSplit(t *testing.T) {
	tests := []struct {
		name    string
		ini     string
		entries []flagmodel.Entry
	}{
		{
			name:    "scoped type keyword",
			ini:     "[net]\nstd::string name = worker1\n",
			entries: []flagmodel.Entry{{Key: "std::string name", Value: "worker1"}},
		},
		{
			name:    "colon in value",
			ini:     "[net]\nurl = http://x:80\n",
			entries: []flagmodel.Entry{{Key: "url", Value: "http://x:80"}},
		},
		{
			name: "trailing backslash",
			ini:  "[root]\ndir = C:\\tmp\\\nport = 8080\n",
			entries: []flagmodel.Entry{
				{Key: "dir", Value: `C:\tmp\`},
				{Key: "port", Value: "8080"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections, err := Parse("config.ini", []byte(tt.ini))
			require.NoError(t, err)
			require.Len(t, sections, 1)
			assert.Equal(t, tt.entries, sections[0].Entries)
		})
	}
}

func TestParseScopedTypeKeywordFeedsBuilder(t *testing.T) {
	sections, err := Parse("config.ini", []byte("[net]\nstd::string name = worker1\n"))
	require.NoError(t, err)

	m, err := flagmodel.NewBuilder(flagmodel.TypeFirst).Build(sections)
	require.NoError(t, err)
	require.Len(t, m.Flags(), 1)

	flag := m.Flags()[0]
	assert.Equal(t, "net.name", flag.Path())
	assert.Equal(t, flagmodel.TypeString, flag.Type)
	assert.Equal(t, `"worker1"`, flag.Literal)
}

func TestParseKeyOutsideSection(t *testing.T) {
	_, err := Parse("config.ini", []byte("port = 1\n[root]\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingSection))
	assert.Contains(t, err.Error(), `"port"`)
}

func TestParseRepeatedKey(t *testing.T) {
	_, err := Parse("config.ini", []byte("[net]\nport = 1\nport = 2\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDuplicateIdentifier))
	assert.Contains(t, err.Error(), `module "net"`)
}

func TestParseEmptySection(t *testing.T) {
	sections, err := Parse("config.ini", []byte("[root]\n[empty]\n"))
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "empty", sections[1].Name)
	assert.Empty(t, sections[1].Entries)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("config.ini", []byte("[root\nport = 1\n"))
	require.Error(t, err)
	assert.False(t, errors.IsInputError(err))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[root]\nverbose = true\n"), 0644))

	sections, err := Load(path)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "verbose", sections[0].Entries[0].Key)

	_, err = Load(filepath.Join(dir, "missing.ini"))
	require.Error(t, err)
}

func TestParseFeedsBuilder(t *testing.T) {
	sections, err := Parse("config.ini", []byte("[root]\nport = 8080\n[net]\ntimeout = -1\nname = worker1\n"))
	require.NoError(t, err)

	m, err := flagmodel.NewBuilder(flagmodel.TypeFirst).Build(sections)
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "net"}, m.Modules())
	assert.Len(t, m.Flags(), 3)
}
