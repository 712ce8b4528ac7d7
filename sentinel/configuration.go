// SPDX-License-Identifier: GPL-3.0-or-later
package sentinel

import (
	"fmt"

	"github.com/CrawX/go-inbox-sentinel/domain"
)

type ConfigFunc func(c *configuration) error

func DryRun() ConfigFunc {
	return func(c *configuration) error {
		if c.AutoAct {
			return fmt.Errorf("DryRun and AutoAct cannot be used at the same time")
		}

		c.DryRun = true
		return nil
	}
}

func AutoAct() ConfigFunc {
	return func(c *configuration) error {
		if c.DryRun {
			return fmt.Errorf("DryRun and AutoAct cannot be used at the same time")
		}

		c.AutoAct = true
		return nil
	}
}

func SuspiciousLabel(name string) ConfigFunc {
	return func(c *configuration) error {
		if len(name) == 0 {
			return fmt.Errorf("SuspiciousLabel cannot be empty")
		}

		c.SuspiciousLabel = name
		return nil
	}
}

func WithNotifier(notifier domain.Notifier) ConfigFunc {
	return func(c *configuration) error {
		c.Notifier = notifier
		return nil
	}
}

func WithPolicy(policy domain.ActionPolicy) ConfigFunc {
	return func(c *configuration) error {
		if policy == nil {
			return fmt.Errorf("policy cannot be nil")
		}

		c.Policy = policy
		return nil
	}
}

type configuration struct {
	DryRun  bool
	AutoAct bool

	SuspiciousLabel string

	Notifier domain.Notifier
	Policy   domain.ActionPolicy
}
