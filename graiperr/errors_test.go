package graiperr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ninsei-dev/graiph/graiperr"
)

func TestRetryableKinds(t *testing.T) {
	assert.True(t, graiperr.New(graiperr.KindNotGraphical, "x").Retryable())
	assert.True(t, graiperr.New(graiperr.KindStuckStubs, "x").Retryable())
	assert.False(t, graiperr.New(graiperr.KindBadTarget, "x").Retryable())
}

func TestInformationalKind(t *testing.T) {
	assert.True(t, graiperr.New(graiperr.KindMaxStepsReached, "x").Informational())
	assert.False(t, graiperr.New(graiperr.KindBadArity, "x").Informational())
}

func TestWrapUnwrap(t *testing.T) {
	base := errors.New("boom")
	wrapped := graiperr.Wrap(graiperr.KindBadInputs, base, "missing target")

	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "BadInputs")
	assert.Contains(t, wrapped.Error(), "boom")
}
