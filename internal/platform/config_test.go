package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/registro/internal/platform"
)

func TestFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv(platform.EnvAddr, "")
		t.Setenv(platform.EnvData, "")
		t.Setenv(platform.EnvLogFormat, "")
		t.Setenv(platform.EnvExportYAML, "")

		cfg := platform.FromEnv()
		assert.Equal(t, platform.DefaultAddr, cfg.Addr)
		assert.Equal(t, "personas.json", cfg.DataFile)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.True(t, cfg.ExportYAML)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv(platform.EnvAddr, ":8080")
		t.Setenv(platform.EnvData, "/var/lib/registro/data.json")
		t.Setenv(platform.EnvLogFormat, "JSON")
		t.Setenv(platform.EnvExportYAML, "false")

		cfg := platform.FromEnv()
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "/var/lib/registro/data.json", cfg.DataFile)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.False(t, cfg.ExportYAML)
	})

	t.Run("Invalid Bool Keeps Default", func(t *testing.T) {
		t.Setenv(platform.EnvExportYAML, "maybe")
		assert.True(t, platform.FromEnv().ExportYAML)
	})
}
