package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			modify: func(c *Config) {},
		},
		{
			name:   "mar1 leap day policy",
			modify: func(c *Config) { c.LeapDay = LeapDayMar1 },
		},
		{
			name:    "unknown leap day policy",
			modify:  func(c *Config) { c.LeapDay = "skip" },
			wantErr: ErrLeapDayUnknown,
		},
		{
			name:    "empty leap day policy",
			modify:  func(c *Config) { c.LeapDay = "" },
			wantErr: ErrLeapDayUnknown,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: ErrLogLevelUnknown,
		},
		{
			name:   "debug log level",
			modify: func(c *Config) { c.LogLevel = "debug" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)

			err := c.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, "> ", c.Prompt)
	assert.Equal(t, "How can I help you?", c.Greeting)
	assert.True(t, c.LowercaseInput)
	assert.Equal(t, LeapDayFeb28, c.LeapDay)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Empty(t, c.LogFile)
}
