// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Database  string
	ModelFile string

	CredentialsFile string
	TokenFile       string

	// PollSchedule is a cron expression with a seconds field, e.g.
	// "*/45 * * * * *" for every 45 seconds.
	PollSchedule     string
	FetchConcurrency int

	SuspiciousLabel string

	DryRun  bool
	AutoAct bool
	Notify  bool

	MinTrainSamples int

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		Database:         "sentinel.db",
		ModelFile:        "model.gob",
		CredentialsFile:  "credentials.json",
		TokenFile:        "token.json",
		PollSchedule:     "*/45 * * * * *",
		FetchConcurrency: 4,
		SuspiciousLabel:  "Suspicious",
		DryRun:           true,
		Notify:           true,
		MinTrainSamples:  20,
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite database"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.ModelFile, "ModelFile must not be empty, set to a filename for the model snapshot"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.CredentialsFile, "CredentialsFile must not be empty, set to the OAuth client credentials json"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.TokenFile, "TokenFile must not be empty, set to a filename for the cached OAuth token"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.SuspiciousLabel, "SuspiciousLabel must not be empty, set to the label name for suspicious mail"); err != nil {
		return err
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(c.PollSchedule); err != nil {
		return fmt.Errorf("PollSchedule is not a valid cron expression: %w", err)
	}

	if c.FetchConcurrency < 1 {
		return fmt.Errorf("FetchConcurrency must be at least 1, got %d", c.FetchConcurrency)
	}

	if c.MinTrainSamples < 1 {
		return fmt.Errorf("MinTrainSamples must be at least 1, got %d", c.MinTrainSamples)
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
