package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeTempConfig(t, `{
		"jd_dir": "jds",
		"models_dir": "artifacts",
		"domain": "data science",
		"port": 9090,
		"verbose": true,
		"json_output": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "jds", cfg.JDDir)
	assert.Equal(t, "artifacts", cfg.ModelsDir)
	assert.Equal(t, "data science", cfg.Domain)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.JSONOutput)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"port": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/screener")
	t.Setenv("SCREENER_JD_DIR", "env-jds")
	t.Setenv("SCREENER_MODELS_DIR", "env-models")
	t.Setenv("SCREENER_PORT", "7070")

	cfg := FromEnv()

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/screener", cfg.DatabaseURL)
	assert.Equal(t, "env-jds", cfg.JDDir)
	assert.Equal(t, "env-models", cfg.ModelsDir)
	assert.Equal(t, 7070, cfg.Port)
}

func TestFromEnv_InvalidPortIgnored(t *testing.T) {
	t.Setenv("SCREENER_PORT", "not-a-port")
	cfg := FromEnv()
	assert.Zero(t, cfg.Port)
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg.Port = 8080
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := Config{Resume: filepath.Join(t.TempDir(), "ghost.pdf")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingJDDir(t *testing.T) {
	cfg := Config{JDDir: filepath.Join(t.TempDir(), "absent")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ExistingPaths(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resume, []byte("text"), 0o644))

	cfg := Config{Resume: resume, JDDir: dir}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Domain: "web development", Port: 9000}
	defaults := Config{
		JDDir:     "default-jds",
		ModelsDir: "default-models",
		Domain:    "ignored",
		APIKey:    "default-key",
		Port:      8080,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "default-jds", merged.JDDir)
	assert.Equal(t, "default-models", merged.ModelsDir)
	assert.Equal(t, "web development", merged.Domain)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, 9000, merged.Port)
}

func TestApplyBuiltinDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyBuiltinDefaults()

	assert.Equal(t, DefaultJDDir, cfg.JDDir)
	assert.Equal(t, DefaultModelsDir, cfg.ModelsDir)
	assert.Equal(t, DefaultPort, cfg.Port)

	cfg2 := Config{JDDir: "custom", Port: 1234}
	cfg2.ApplyBuiltinDefaults()
	assert.Equal(t, "custom", cfg2.JDDir)
	assert.Equal(t, 1234, cfg2.Port)
}
