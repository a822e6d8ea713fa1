package testutils

import (
	"context"
	"strings"
	"sync"

	"syncro/pkg/synctypes"
)

// StubAuthenticator is a navigation.Authenticator whose outcome is fixed by the
// test. When gated, every call blocks until Release is called or its context ends.
type StubAuthenticator struct {
	mu    sync.Mutex
	err   error
	calls []synctypes.Credentials
	gate  chan struct{}
}

// NewStubAuthenticator creates an authenticator that succeeds immediately.
func NewStubAuthenticator() *StubAuthenticator {
	return &StubAuthenticator{}
}

// NewGatedAuthenticator creates an authenticator that blocks until Release.
func NewGatedAuthenticator() *StubAuthenticator {
	return &StubAuthenticator{gate: make(chan struct{})}
}

// FailWith makes subsequent calls return err.
func (a *StubAuthenticator) FailWith(err error) *StubAuthenticator {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.err = err
	return a
}

// Release unblocks every pending and future call of a gated authenticator.
func (a *StubAuthenticator) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.gate != nil {
		close(a.gate)
		a.gate = nil
	}
}

// Calls returns the credentials seen so far.
func (a *StubAuthenticator) Calls() []synctypes.Credentials {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]synctypes.Credentials(nil), a.calls...)
}

// Authenticate implements navigation.Authenticator.
func (a *StubAuthenticator) Authenticate(ctx context.Context, creds synctypes.Credentials) (*synctypes.Session, error) {
	a.mu.Lock()
	a.calls = append(a.calls, creds)
	gate := a.gate
	a.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	a.mu.Lock()
	err := a.err
	a.mu.Unlock()
	if err != nil {
		return nil, err
	}

	name := creds.Email
	if at := strings.IndexByte(name, '@'); at > 0 {
		name = name[:at]
	}
	return &synctypes.Session{
		ID:     "u1",
		Name:   name,
		Email:  creds.Email,
		Avatar: strings.ToUpper(name[:1]),
	}, nil
}
