package autostart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnable_WritesDesktopEntry(t *testing.T) {
	cases := []struct {
		exec string
		want string
	}{
		{"/usr/bin/losnot", "Exec=/usr/bin/losnot\n"},
		{"/opt/my apps/losnot", "Exec=\"/opt/my apps/losnot\"\n"},
	}

	for _, tc := range cases {
		dir := filepath.Join(t.TempDir(), "autostart")
		m := New(dir, tc.exec)

		require.NoError(t, m.Enable())

		assert.True(t, m.Enabled())
		data, err := os.ReadFile(filepath.Join(dir, DesktopFileName))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "[Desktop Entry]\n"), "entry:\n%s", data)
		assert.Contains(t, string(data), "Type=Application\n")
		assert.Contains(t, string(data), tc.want)
		assert.Contains(t, string(data), "X-GNOME-Autostart-enabled=true\n")
	}
}

func TestQuoteExec(t *testing.T) {
	cases := map[string]string{
		"/usr/bin/losnot":      "/usr/bin/losnot",
		"/opt/my apps/losnot":  `"/opt/my apps/losnot"`,
		`/opt/$HOME/losnot`:    `"/opt/\\$HOME/losnot"`,
		`/opt/say "hi"/losnot`: `"/opt/say \\"hi\\"/losnot"`,
		"":                     "",
	}

	for in, want := range cases {
		assert.Equal(t, want, QuoteExec(in), "QuoteExec(%q)", in)
	}
}

func TestDisable_RemovesEntry(t *testing.T) {
	m := New(t.TempDir(), "losnot")
	require.NoError(t, m.Enable())

	require.NoError(t, m.Disable())

	assert.False(t, m.Enabled())
	assert.NoFileExists(t, m.Path())
}

func TestDisable_MissingEntryIsFine(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "never-created"), "losnot")

	assert.NoError(t, m.Disable())
	assert.False(t, m.Enabled())
}

func TestEnable_FailsWhenDirIsAFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "autostart")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	m := New(blocker, "losnot")
	assert.Error(t, m.Enable())
	assert.False(t, m.Enabled())
}
