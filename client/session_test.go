package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionGateHappyPathReturningUser(t *testing.T) {
	g := NewSessionGate()
	assert.Equal(t, StateUnauthenticated, g.State())

	require.NoError(t, g.BeginAuth())
	assert.Equal(t, StateAuthenticating, g.State())

	require.NoError(t, g.AuthSucceeded(&Profile{UserID: "u1", IsNewUser: false}))
	assert.Equal(t, StateReturningUser, g.State())
	assert.Equal(t, "u1", g.Profile().UserID)
}

func TestSessionGateNewUserFlag(t *testing.T) {
	g := NewSessionGate()
	require.NoError(t, g.BeginAuth())
	require.NoError(t, g.AuthSucceeded(&Profile{UserID: "u1", IsNewUser: true}))
	assert.Equal(t, StateNewUser, g.State())
}

func TestSessionGateAbsentProfileClassifiesAsNewUser(t *testing.T) {
	g := NewSessionGate()
	require.NoError(t, g.BeginAuth())
	require.NoError(t, g.AuthSucceeded(nil))
	assert.Equal(t, StateNewUser, g.State())
}

func TestSessionGateAuthFailure(t *testing.T) {
	g := NewSessionGate()
	require.NoError(t, g.BeginAuth())

	authErr := errors.New("invalid email or password")
	require.NoError(t, g.AuthFailed(authErr))

	assert.Equal(t, StateUnauthenticated, g.State())
	assert.ErrorIs(t, g.AuthErr(), authErr)
	assert.Nil(t, g.Profile())

	// the error clears on the next attempt
	require.NoError(t, g.BeginAuth())
	assert.NoError(t, g.AuthErr())
}

func TestSessionGateFinishOnboarding(t *testing.T) {
	g := NewSessionGate()
	require.NoError(t, g.BeginAuth())
	require.NoError(t, g.AuthSucceeded(&Profile{IsNewUser: true}))

	require.NoError(t, g.FinishOnboarding())
	assert.Equal(t, StateReturningUser, g.State())
	assert.False(t, g.Profile().IsNewUser)
}

func TestSessionGateSignOutDiscardsSessionState(t *testing.T) {
	g := NewSessionGate()
	require.NoError(t, g.BeginAuth())
	require.NoError(t, g.AuthSucceeded(&Profile{UserID: "u1"}))

	g.SignOut()
	assert.Equal(t, StateUnauthenticated, g.State())
	assert.Nil(t, g.Profile())
	assert.NoError(t, g.AuthErr())
}

func TestSessionGateRejectsImpossibleTransitions(t *testing.T) {
	g := NewSessionGate()

	assert.ErrorIs(t, g.AuthSucceeded(nil), ErrBadTransition)
	assert.ErrorIs(t, g.AuthFailed(errors.New("x")), ErrBadTransition)
	assert.ErrorIs(t, g.FinishOnboarding(), ErrBadTransition)

	require.NoError(t, g.BeginAuth())
	assert.ErrorIs(t, g.BeginAuth(), ErrBadTransition)

	require.NoError(t, g.AuthSucceeded(&Profile{IsNewUser: false}))
	assert.ErrorIs(t, g.FinishOnboarding(), ErrBadTransition, "returning user has nothing to onboard")
}
