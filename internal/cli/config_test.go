package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))
	return dir
}

func TestLoadConfigMissingFile(t *testing.T) {
	v, err := loadConfig(t.TempDir())
	require.NoError(t, err)

	cfg, err := decodeConfig(v)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadConfigValues(t *testing.T) {
	dir := writeConfig(t, `prompt: "$ "
greeting: Hello there
lowercase_input: false
leap_day: mar1
log_level: debug
log_file: contacts.log
`)
	v, err := loadConfig(dir)
	require.NoError(t, err)

	cfg, err := decodeConfig(v)
	require.NoError(t, err)
	assert.Equal(t, types.Config{
		Prompt:         "$ ",
		Greeting:       "Hello there",
		LowercaseInput: false,
		LeapDay:        types.LeapDayMar1,
		LogLevel:       "debug",
		LogFile:        "contacts.log",
	}, cfg)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, "leap_day: feb28\n")
	t.Setenv("CONTACTS_LEAP_DAY", "mar1")

	v, err := loadConfig(dir)
	require.NoError(t, err)
	cfg, err := decodeConfig(v)
	require.NoError(t, err)
	assert.Equal(t, types.LeapDayMar1, cfg.LeapDay)
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := writeConfig(t, "prompt: [unterminated\n")
	_, err := loadConfig(dir)
	assert.ErrorContains(t, err, "read config")
}

func TestDecodeConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown leap day", content: "leap_day: skip\n", wantErr: types.ErrLeapDayUnknown},
		{name: "unknown log level", content: "log_level: loud\n", wantErr: types.ErrLogLevelUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := loadConfig(writeConfig(t, tt.content))
			require.NoError(t, err)
			_, err = decodeConfig(v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
