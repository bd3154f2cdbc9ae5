package client

import "errors"

// SessionState is the screen-deciding state of the app. The states
// form a small machine:
//
//	Unauthenticated -> Authenticating -> {NewUser, ReturningUser}
//
// NewUser reaches ReturningUser by finishing goal-setting;
// ReturningUser exits only via sign-out.
type SessionState int

const (
	StateUnauthenticated SessionState = iota
	StateAuthenticating
	StateNewUser
	StateReturningUser
)

func (s SessionState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateNewUser:
		return "new_user"
	case StateReturningUser:
		return "returning_user"
	default:
		return "unknown"
	}
}

var ErrBadTransition = errors.New("invalid session transition")

// SessionGate derives which top-level screen to show. It owns no
// persisted state; the isNewUser flag lives in the remote profile and
// is only mirrored here.
type SessionGate struct {
	state   SessionState
	authErr error
	profile *Profile
}

func NewSessionGate() *SessionGate {
	return &SessionGate{state: StateUnauthenticated}
}

func (g *SessionGate) State() SessionState { return g.state }

// AuthErr returns the error attached to the last failed sign-in, reset
// on the next attempt.
func (g *SessionGate) AuthErr() error { return g.authErr }

// Profile returns the cached profile, nil before sign-in completes or
// when the remote document was absent.
func (g *SessionGate) Profile() *Profile { return g.profile }

// BeginAuth moves to Authenticating when credentials are submitted.
func (g *SessionGate) BeginAuth() error {
	if g.state != StateUnauthenticated {
		return ErrBadTransition
	}
	g.state = StateAuthenticating
	g.authErr = nil
	return nil
}

// AuthSucceeded resolves Authenticating using the fetched profile. An
// absent profile document is inconclusive and classifies the session
// as NewUser, same as an explicit isNewUser flag.
func (g *SessionGate) AuthSucceeded(profile *Profile) error {
	if g.state != StateAuthenticating {
		return ErrBadTransition
	}
	g.profile = profile
	if profile == nil || profile.IsNewUser {
		g.state = StateNewUser
	} else {
		g.state = StateReturningUser
	}
	return nil
}

// AuthFailed returns to Unauthenticated with the error attached.
func (g *SessionGate) AuthFailed(err error) error {
	if g.state != StateAuthenticating {
		return ErrBadTransition
	}
	g.state = StateUnauthenticated
	g.authErr = err
	g.profile = nil
	return nil
}

// FinishOnboarding moves NewUser to ReturningUser once goal-setting is
// done. The caller is responsible for flipping the persisted flag.
func (g *SessionGate) FinishOnboarding() error {
	if g.state != StateNewUser {
		return ErrBadTransition
	}
	if g.profile != nil {
		g.profile.IsNewUser = false
	}
	g.state = StateReturningUser
	return nil
}

// SignOut resets to Unauthenticated and discards the cached profile.
// It is a pure local reset; nothing is revoked server-side.
func (g *SessionGate) SignOut() {
	g.state = StateUnauthenticated
	g.authErr = nil
	g.profile = nil
}
