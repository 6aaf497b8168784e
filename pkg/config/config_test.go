package config

import (
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "./data", config.DataDir)
	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, "127.0.0.1", config.Bind)
	assert.False(t, config.Decode.Lenient)
	assert.Empty(t, config.Security.APIKey)
	assert.Equal(t, "info", config.Logging.Level)
	assert.NoError(t, config.Validate())
	assert.Equal(t, "127.0.0.1:8080", config.Addr())
}

func TestGenerateSecureKey(t *testing.T) {
	t.Run("generate 32 byte key", func(t *testing.T) {
		key, err := GenerateSecureKey(32)
		require.NoError(t, err)
		assert.Len(t, key, 64)

		_, err = hex.DecodeString(key)
		assert.NoError(t, err)
	})

	t.Run("generate different keys", func(t *testing.T) {
		key1, err := GenerateSecureKey(16)
		require.NoError(t, err)
		key2, err := GenerateSecureKey(16)
		require.NoError(t, err)

		assert.NotEqual(t, key1, key2)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing config", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		expectedConfig := &Config{
			DataDir:  "/custom/data",
			Port:     9000,
			Bind:     "0.0.0.0",
			Decode:   Decode{Lenient: true},
			Security: Security{APIKey: "test-key"},
			Logging: Logging{
				Level: "debug",
			},
		}

		err := SaveConfig(expectedConfig, configPath)
		require.NoError(t, err)

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, expectedConfig, loadedConfig)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "partial.yaml")
		err := os.WriteFile(configPath, []byte("port: 9100\ndecode:\n  lenient: true\n"), 0600)
		require.NoError(t, err)

		config, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, 9100, config.Port)
		assert.True(t, config.Decode.Lenient)
		assert.Equal(t, "./data", config.DataDir)
		assert.Equal(t, "info", config.Logging.Level)
	})

	t.Run("load non-existent config", func(t *testing.T) {
		_, err := LoadConfig("/non/existent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("load invalid yaml", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "invalid.yaml")
		err := os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestSaveConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	config := DefaultConfig()

	err := SaveConfig(config, configPath)
	require.NoError(t, err)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loadedConfig, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loadedConfig)
}

func TestSaveConfigErrorHandling(t *testing.T) {
	// a regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	err := SaveConfig(DefaultConfig(), filepath.Join(blocker, "config.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config directory")
}

func TestBootstrapConfig(t *testing.T) {
	t.Run("with api key", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		dataDir := "/custom/data/dir"

		config, err := BootstrapConfig(configPath, dataDir, true)
		require.NoError(t, err)

		assert.Equal(t, dataDir, config.DataDir)
		assert.Equal(t, 8080, config.Port)
		assert.Len(t, config.Security.APIKey, 64)
		_, err = hex.DecodeString(config.Security.APIKey)
		assert.NoError(t, err)

		assert.True(t, ConfigExists(configPath))

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, config, loadedConfig)
	})

	t.Run("without api key", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")

		config, err := BootstrapConfig(configPath, "", false)
		require.NoError(t, err)
		assert.Equal(t, "./data", config.DataDir)
		assert.Empty(t, config.Security.APIKey)
	})
}

func TestLogging_SlogLevel(t *testing.T) {
	testCases := []struct {
		level   string
		want    slog.Level
		wantErr bool
	}{
		{level: "", want: slog.LevelInfo},
		{level: "debug", want: slog.LevelDebug},
		{level: "INFO", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			got, err := Logging{Level: tc.level}.SlogLevel()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	config := DefaultConfig()
	config.DataDir = ""
	assert.ErrorContains(t, config.Validate(), "data_dir")

	config = DefaultConfig()
	config.Port = 70000
	assert.ErrorContains(t, config.Validate(), "port")

	config = DefaultConfig()
	config.Logging.Level = "chatty"
	assert.ErrorContains(t, config.Validate(), "invalid log level")
}

func TestGetDefaultConfigPath(t *testing.T) {
	path := GetDefaultConfigPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "prjtool")
}

func TestConfigExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingPath := filepath.Join(tmpDir, "exists.yaml")
	require.NoError(t, os.WriteFile(existingPath, []byte("test"), 0644))

	assert.True(t, ConfigExists(existingPath))
	assert.False(t, ConfigExists(filepath.Join(tmpDir, "does-not-exist.yaml")))
}

func TestConfigYAMLKeys(t *testing.T) {
	data, err := yaml.Marshal(&Config{DataDir: "/d", Decode: Decode{Lenient: true}, Security: Security{APIKey: "k"}})
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "data_dir: /d")
	assert.Contains(t, text, "lenient: true")
	assert.Contains(t, text, "api_key: k")
}
