package services

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"syncro/internal/logger"
	"syncro/pkg/synctypes"
)

// DefaultLoginDelay is the simulated credential check latency.
const DefaultLoginDelay = time.Second

// AuthService is the simulated credential check. It accepts every email after
// a fixed delay and builds the session from the team roster when the email
// belongs to a member.
type AuthService struct {
	content *ContentService
	delay   time.Duration
	newID   func() string
}

// NewAuthService creates an AuthService. newID may be nil, in which case
// random UUIDs are used for session ids.
func NewAuthService(content *ContentService, delay time.Duration, newID func() string) *AuthService {
	if delay < 0 {
		delay = 0
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &AuthService{content: content, delay: delay, newID: newID}
}

// Name returns the service name "auth" for registration.
func (a *AuthService) Name() string {
	return "auth"
}

// Initialize implements synctypes.Service.
func (a *AuthService) Initialize() error {
	return nil
}

// Authenticate waits out the simulated latency and returns a session for the
// email. The password is ignored.
func (a *AuthService) Authenticate(ctx context.Context, creds synctypes.Credentials) (*synctypes.Session, error) {
	logger.ServiceOperation("auth", "authenticate", "email", creds.Email, "delay", a.delay)

	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := displayNameFromEmail(creds.Email)
	if a.content != nil {
		if member, ok := a.content.FindMember(creds.Email); ok {
			name = member.Name
		}
	}

	return &synctypes.Session{
		ID:     a.newID(),
		Name:   name,
		Email:  creds.Email,
		Avatar: Initials(name),
	}, nil
}

// displayNameFromEmail turns "jane.doe@x.io" into "Jane Doe".
func displayNameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}
	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	if len(words) == 0 {
		return email
	}
	return strings.Join(words, " ")
}

// Initials returns up to two upper-case initials of a display name.
func Initials(name string) string {
	var initials []rune
	for _, w := range strings.Fields(name) {
		initials = append(initials, unicode.ToUpper([]rune(w)[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}
