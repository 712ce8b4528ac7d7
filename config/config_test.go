// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(filename, []byte(content), 0644)
	assert.NoError(t, err)
	return filename
}

func TestReadConfig_Defaults(t *testing.T) {
	config, err := ReadConfig(writeConfigFile(t, ""))
	assert.NoError(t, err)

	assert.Equal(t, "sentinel.db", config.Database)
	assert.Equal(t, "model.gob", config.ModelFile)
	assert.Equal(t, "credentials.json", config.CredentialsFile)
	assert.Equal(t, "token.json", config.TokenFile)
	assert.Equal(t, "*/45 * * * * *", config.PollSchedule)
	assert.Equal(t, 4, config.FetchConcurrency)
	assert.Equal(t, "Suspicious", config.SuspiciousLabel)
	assert.True(t, config.DryRun)
	assert.False(t, config.AutoAct)
	assert.True(t, config.Notify)
	assert.Equal(t, 20, config.MinTrainSamples)
	assert.Nil(t, config.Loglevel)
}

func TestReadConfig_Overrides(t *testing.T) {
	config, err := ReadConfig(writeConfigFile(t, `
Database = "watcher.db"
PollSchedule = "0 */5 * * * *"
FetchConcurrency = 8
DryRun = false
AutoAct = true
Loglevel = "debug"
`))
	assert.NoError(t, err)

	assert.Equal(t, "watcher.db", config.Database)
	assert.Equal(t, "0 */5 * * * *", config.PollSchedule)
	assert.Equal(t, 8, config.FetchConcurrency)
	assert.False(t, config.DryRun)
	assert.True(t, config.AutoAct)
	assert.NotNil(t, config.Loglevel)
	assert.Equal(t, "debug", *config.Loglevel)
}

func TestReadConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			"empty database",
			`Database = " "`,
			"Database name must not be empty, set to a filename for the sqlite database",
		},
		{
			"empty modelfile",
			`ModelFile = ""`,
			"ModelFile must not be empty, set to a filename for the model snapshot",
		},
		{
			"empty credentials",
			`CredentialsFile = ""`,
			"CredentialsFile must not be empty, set to the OAuth client credentials json",
		},
		{
			"empty suspicious label",
			`SuspiciousLabel = ""`,
			"SuspiciousLabel must not be empty, set to the label name for suspicious mail",
		},
		{
			"bad schedule",
			`PollSchedule = "every 5 minutes"`,
			"PollSchedule is not a valid cron expression",
		},
		{
			"schedule without seconds field",
			`PollSchedule = "* * * * *"`,
			"PollSchedule is not a valid cron expression",
		},
		{
			"zero concurrency",
			`FetchConcurrency = 0`,
			"FetchConcurrency must be at least 1, got 0",
		},
		{
			"zero train samples",
			`MinTrainSamples = 0`,
			"MinTrainSamples must be at least 1, got 0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config, err := ReadConfig(writeConfigFile(t, tc.content))
			assert.Nil(t, config)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestReadConfig_MissingFile(t *testing.T) {
	config, err := ReadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Nil(t, config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not read config file")
}
