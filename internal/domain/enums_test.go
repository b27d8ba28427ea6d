package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolutionStateIsValid(t *testing.T) {
	assert.True(t, ResolutionUnresolved.IsValid())
	assert.True(t, ResolutionNeedsProfile.IsValid())
	assert.True(t, ResolutionResolved.IsValid())
	assert.False(t, ResolutionState("BOGUS").IsValid())
}

func TestResolutionStateTransitions(t *testing.T) {
	assert.True(t, ResolutionUnresolved.CanTransitionTo(ResolutionNeedsProfile))
	assert.True(t, ResolutionUnresolved.CanTransitionTo(ResolutionResolved))
	assert.True(t, ResolutionNeedsProfile.CanTransitionTo(ResolutionResolved))
	assert.True(t, ResolutionNeedsProfile.CanTransitionTo(ResolutionUnresolved))
	assert.True(t, ResolutionResolved.CanTransitionTo(ResolutionUnresolved))

	assert.False(t, ResolutionResolved.CanTransitionTo(ResolutionNeedsProfile))
	assert.False(t, ResolutionUnresolved.CanTransitionTo(ResolutionUnresolved))
}
