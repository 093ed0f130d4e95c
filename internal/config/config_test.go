package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 5, cfg.Engine.TrajectoryWindow)
	assert.Equal(t, 10, cfg.Engine.MasteryWindow)
	assert.Equal(t, 5, cfg.Engine.DominantErrorWindow)
	assert.Equal(t, 10, cfg.Engine.BreakCooldownMinutes)
}

func TestLoad_FromFile(t *testing.T) {
	dir := chdirTemp(t)
	yaml := `
log:
  level: debug
  format: json
engine:
  break_cooldown_minutes: 20
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tutord.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 20, cfg.Engine.BreakCooldownMinutes)
	// Untouched values keep defaults.
	assert.Equal(t, 10, cfg.Engine.MasteryWindow)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TUTORD_LOG_LEVEL", "warn")
	t.Setenv("TUTORD_ENGINE_TRAJECTORY_WINDOW", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Engine.TrajectoryWindow)
}

// chdirTemp moves the test into an empty directory so a developer's own
// tutord.yaml can't leak into results.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}
