// SPDX-License-Identifier: GPL-3.0-or-later
package sentinel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSentinelConfiguration(t *testing.T) {
	tests := []struct {
		name string
		cfgs []ConfigFunc
		err  string
	}{
		{"defaults", []ConfigFunc{}, ""},
		{"dry-run", []ConfigFunc{DryRun()}, ""},
		{"auto-act", []ConfigFunc{AutoAct()}, ""},
		{"dry-run and auto-act conflict", []ConfigFunc{DryRun(), AutoAct()}, "error applying configuration: DryRun and AutoAct cannot be used at the same time"},
		{"conflict in either order", []ConfigFunc{AutoAct(), DryRun()}, "error applying configuration: DryRun and AutoAct cannot be used at the same time"},
		{"empty suspicious label", []ConfigFunc{SuspiciousLabel("")}, "error applying configuration: SuspiciousLabel cannot be empty"},
		{"nil policy", []ConfigFunc{WithPolicy(nil)}, "error applying configuration: policy cannot be nil"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSentinel(nil, nil, nil, nil, tc.cfgs...)
			if len(tc.err) == 0 {
				assert.NotNil(t, s)
				assert.NoError(t, err)
			} else {
				assert.Nil(t, s)
				assert.EqualError(t, err, tc.err)
			}
		})
	}
}

func TestDefaultPolicyFollowsAutoAct(t *testing.T) {
	s, err := NewSentinel(nil, nil, nil, nil, AutoAct())
	assert.NoError(t, err)
	policy, ok := s.configuration.Policy.(*ThresholdPolicy)
	assert.True(t, ok)
	assert.True(t, policy.Act)

	s, err = NewSentinel(nil, nil, nil, nil)
	assert.NoError(t, err)
	policy, ok = s.configuration.Policy.(*ThresholdPolicy)
	assert.True(t, ok)
	assert.False(t, policy.Act)
}
