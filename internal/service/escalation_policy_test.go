package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscalationPolicyThreshold(t *testing.T) {
	policy := NewEscalationPolicy()

	cases := []struct {
		priority int
		want     bool
	}{
		{1, false},
		{2, false},
		{3, false},
		{4, true},
		{5, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, policy.ShouldEscalate(tc.priority), "priority %d", tc.priority)
	}
}

func TestEscalationPolicyCustomThreshold(t *testing.T) {
	policy := EscalationPolicy{Threshold: 2}
	assert.False(t, policy.ShouldEscalate(1))
	assert.True(t, policy.ShouldEscalate(2))
}
