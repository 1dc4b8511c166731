package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"bare tilde", "~", home},
		{"tilde path", "~/.config/ptop/config.yaml", filepath.Join(home, ".config/ptop/config.yaml")},
		{"absolute", "/proc", "/proc"},
		{"other user unsupported", "~root/x", "~root/x"},
		{"tilde in middle", "/a/~/b", "/a/~/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandTilde(tt.input))
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("PTOP_TEST_ROOT", "/mnt/host")

	assert.Equal(t, "/mnt/host/proc", ExpandPath("$PTOP_TEST_ROOT/proc"))
	assert.Equal(t, "/mnt/host/proc", ExpandPath("${PTOP_TEST_ROOT}/proc"))
	assert.Equal(t, "/proc", ExpandPath("/proc"))
}
