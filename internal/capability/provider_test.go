package capability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFor(t *testing.T) {
	key, ok := KeyFor("anthropic")
	assert.True(t, ok)
	assert.Equal(t, "ANTHROPIC_API_KEY", key)

	key, ok = KeyFor("Gemini")
	assert.True(t, ok)
	assert.Equal(t, "GEMINI_API_KEY", key)

	_, ok = KeyFor("unknown-provider")
	assert.False(t, ok)
}

func TestEnvProviderProcessEnv(t *testing.T) {
	t.Setenv("MUX_EVALS_TEST_KEY", "secret")

	p := NewEnvProvider()
	assert.True(t, p.Has("MUX_EVALS_TEST_KEY"))
	assert.Equal(t, "secret", p.Get("MUX_EVALS_TEST_KEY"))
	assert.False(t, p.Has("MUX_EVALS_UNSET_KEY"))
}

func TestEnvProviderSetButEmpty(t *testing.T) {
	t.Setenv("MUX_EVALS_EMPTY_KEY", "")

	p := NewEnvProvider()
	assert.True(t, p.Has("MUX_EVALS_EMPTY_KEY"))
	assert.Equal(t, "", p.Get("MUX_EVALS_EMPTY_KEY"))

	s := Static{"EMPTY_KEY": ""}
	assert.True(t, s.Has("EMPTY_KEY"))
}

func TestEnvProviderDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "# comment\n\nFILE_ONLY_KEY=from-file\nexport EXPORTED_KEY=\"quoted\"\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	p := NewEnvProvider()
	require.NoError(t, p.LoadDotEnv(envFile))

	assert.Equal(t, "from-file", p.Get("FILE_ONLY_KEY"))
	assert.Equal(t, "quoted", p.Get("EXPORTED_KEY"))
}

func TestEnvProviderProcessEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SHADOWED_KEY=file\n"), 0o600))

	t.Setenv("SHADOWED_KEY", "process")

	p := NewEnvProvider()
	require.NoError(t, p.LoadDotEnv(envFile))
	assert.Equal(t, "process", p.Get("SHADOWED_KEY"))
}

func TestEnvProviderDotEnvMissingFile(t *testing.T) {
	p := NewEnvProvider()
	assert.NoError(t, p.LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}

func TestEnvProviderDotEnvMalformed(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("not a pair\n"), 0o600))

	p := NewEnvProvider()
	assert.Error(t, p.LoadDotEnv(envFile))
}

func TestStaticProvider(t *testing.T) {
	s := Static{"OPENAI_API_KEY": "sk-test"}
	assert.True(t, s.Has("OPENAI_API_KEY"))
	assert.False(t, s.Has("ANTHROPIC_API_KEY"))
	assert.Equal(t, "sk-test", s.APIKeyFor("openai"))
	assert.Equal(t, "", s.APIKeyFor("anthropic"))
	assert.Equal(t, "", s.APIKeyFor("unknown"))
}
