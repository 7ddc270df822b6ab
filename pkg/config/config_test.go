package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, "lower", c.Engine.Case)
	assert.Equal(t, "_", c.Engine.Empty)
	assert.Equal(t, ScanCrossable, c.Engine.Scan)
	assert.Equal(t, 200, c.Dict.MaxWords)
	assert.Equal(t, 32, c.Engine.CacheSize)
	assert.True(t, c.CLI.ShowHints)

	opts, err := c.LayoutOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, `
[engine]
case = "upper"
empty = "."
scan = "letters"
skip_unplaceable = true

[dict]
max_words = 12
`)
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "upper", c.Engine.Case)
	assert.Equal(t, ".", c.Engine.Empty)
	assert.True(t, c.Engine.SkipUnplaceable)
	assert.Equal(t, 12, c.Dict.MaxWords)
	// untouched keys keep their defaults
	assert.Equal(t, 2, c.Dict.MinLength)
	assert.True(t, c.CLI.Color)

	p, err := c.CasePolicy()
	require.NoError(t, err)
	assert.Equal(t, words.CaseUpper, p)

	opts, err := c.LayoutOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}

func TestPartialRecovery(t *testing.T) {
	// max_words has the wrong type, the rest is still read
	path := writeFile(t, `
[engine]
case = "preserve"

[dict]
max_words = "lots"
min_length = 4

[cli]
color = false
`)
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "preserve", c.Engine.Case)
	assert.Equal(t, 200, c.Dict.MaxWords)
	assert.Equal(t, 4, c.Dict.MinLength)
	assert.False(t, c.CLI.Color)
}

func TestUnparseableFallsBackToDefaults(t *testing.T) {
	path := writeFile(t, "[engine\ncase = ")
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	c, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
	assert.FileExists(t, path)

	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := writeFile(t, "[cli]\nshow_hints = false\n")
	c, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.False(t, c.CLI.ShowHints)
}

func TestLayoutOptionsErrors(t *testing.T) {
	testCases := []struct {
		name  string
		apply func(*Config)
	}{
		{"long empty", func(c *Config) { c.Engine.Empty = "--" }},
		{"unknown scan", func(c *Config) { c.Engine.Scan = "diagonal" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.apply(c)
			_, err := c.LayoutOptions()
			assert.Error(t, err)
		})
	}

	c := DefaultConfig()
	c.Engine.Case = "title"
	_, err := c.CasePolicy()
	assert.Error(t, err)
	_, err = c.DictionaryOptions()
	assert.Error(t, err)
}

func TestDictionaryOptions(t *testing.T) {
	opts, err := DefaultConfig().DictionaryOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}
