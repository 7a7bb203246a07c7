// pkg/types/types_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test RenamePair helpers and ApplyResult outcome predicates

package types_test

import (
	"testing"

	"github.com/arthur-debert/retitle/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestRenamePair(t *testing.T) {
	p := types.RenamePair{From: "a.txt", To: "b.txt"}

	assert.False(t, p.IsNoop())
	assert.Equal(t, types.RenamePair{From: "b.txt", To: "a.txt"}, p.Inverse())
	assert.Equal(t, p, p.Inverse().Inverse())
	assert.Equal(t, "a.txt|b.txt", p.String())
}

func TestNewIdentityPair(t *testing.T) {
	p := types.NewIdentityPair("notes")

	assert.True(t, p.IsNoop())
	assert.Equal(t, "notes|notes", p.String())
	assert.Equal(t, p, p.Inverse())
}

func TestApplyResultOutcome(t *testing.T) {
	tests := []struct {
		outcome   types.Outcome
		succeeded bool
		fatal     bool
	}{
		{types.OutcomeCompleted, true, false},
		{types.OutcomeRolledBack, false, false},
		{types.OutcomeRollbackFailed, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			r := &types.ApplyResult{Outcome: tt.outcome}
			assert.Equal(t, tt.succeeded, r.Succeeded())
			assert.Equal(t, tt.fatal, r.Fatal())
		})
	}
}
