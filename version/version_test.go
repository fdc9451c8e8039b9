package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoString(t *testing.T) {
	dev := Info{CommitHash: "abcdef123456", BuildTime: "now", Version: "dev"}
	assert.Equal(t, "confgen dev (commit abcdef123456, built now)", dev.String())

	tagged := Info{CommitHash: "abc", BuildTime: "now", Version: "1.2.0"}
	assert.Equal(t, "confgen 1.2.0 (commit abc, built now)", tagged.String())
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.True(t, strings.Contains(info.Platform, "/"))
	assert.NotEmpty(t, info.GoVersion)
}

func TestCheckConstraint(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		constraint string
		wantErr    bool
	}{
		{"empty constraint", "1.0.0", "", false},
		{"dev build", "dev", ">= 9.0", false},
		{"dev build bad constraint", "dev", "not a constraint", true},
		{"satisfied", "1.4.2", ">= 1.2, < 2", false},
		{"too old", "1.1.0", ">= 1.2", true},
		{"bad constraint", "1.1.0", "not a constraint", true},
		{"bad version", "banana", ">= 1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkConstraint(tt.current, tt.constraint)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
