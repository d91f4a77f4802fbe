// internal/application/usecase/auth_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	userdom "storefront/internal/domain/user"
)

var ErrAuthInvalidArgument = errors.New("auth_usecase: invalid argument")

// SessionState is the auth session lifecycle.
//
// anonymous -> authenticating on a login/register attempt;
// authenticating -> authenticated on success (carrying the resolved user);
// authenticating -> anonymous on failure;
// authenticated -> anonymous on logout.
// Authenticating is transient: every attempt resolves to one of the two
// terminal states before returning.
type SessionState string

const (
	SessionAnonymous      SessionState = "anonymous"
	SessionAuthenticating SessionState = "authenticating"
	SessionAuthenticated  SessionState = "authenticated"
)

// AuthUsecase owns the current session and gates cart/checkout callers, which
// depend only on "is a user authenticated, and what is their id".
//
// Credential checking goes through the user repository port; whether that is
// an in-memory list or a remote store is irrelevant to the contract.
type AuthUsecase struct {
	users userdom.Repository
	clock Clock
	newID func() string

	mu      sync.Mutex
	state   SessionState
	current *userdom.User
}

func NewAuthUsecase(users userdom.Repository) *AuthUsecase {
	return &AuthUsecase{
		users: users,
		clock: systemClock{},
		newID: uuid.NewString,
		state: SessionAnonymous,
	}
}

// NewAuthUsecaseWithClock is useful for tests.
func NewAuthUsecaseWithClock(users userdom.Repository, clock Clock, newID func() string) *AuthUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &AuthUsecase{users: users, clock: clock, newID: newID, state: SessionAnonymous}
}

// Login verifies email/password. On success the session becomes authenticated
// with the resolved user; on a bad credential it returns (zero, false, nil)
// and the session is anonymous. Which of email/password was wrong is never
// revealed.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (userdom.User, bool, error) {
	em := userdom.NormalizeEmail(email)
	if em == "" || password == "" {
		return userdom.User{}, false, ErrAuthInvalidArgument
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = SessionAuthenticating

	u, err := uc.users.GetByEmail(ctx, em)
	if err != nil {
		uc.resolveAnonymous()
		if errors.Is(err, userdom.ErrNotFound) {
			return userdom.User{}, false, nil
		}
		return userdom.User{}, false, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		uc.resolveAnonymous()
		return userdom.User{}, false, nil
	}

	uc.resolveAuthenticated(u)
	log.Printf("[auth_uc] login ok userId=%s", u.ID)
	return u, true, nil
}

// Register creates a new non-admin user and authenticates the session with it.
// A duplicate email fails with (zero, false, nil) and leaves the session
// anonymous.
func (uc *AuthUsecase) Register(ctx context.Context, email, password, name string) (userdom.User, bool, error) {
	em := userdom.NormalizeEmail(email)
	if em == "" || password == "" || strings.TrimSpace(name) == "" {
		return userdom.User{}, false, ErrAuthInvalidArgument
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = SessionAuthenticating

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.resolveAnonymous()
		return userdom.User{}, false, err
	}

	u, err := userdom.New(uc.newID(), em, name, string(hash), false, uc.clock.Now())
	if err != nil {
		uc.resolveAnonymous()
		return userdom.User{}, false, err
	}

	created, err := uc.users.Create(ctx, u)
	if err != nil {
		uc.resolveAnonymous()
		if errors.Is(err, userdom.ErrEmailTaken) {
			return userdom.User{}, false, nil
		}
		return userdom.User{}, false, err
	}

	uc.resolveAuthenticated(created)
	log.Printf("[auth_uc] register ok userId=%s", created.ID)
	return created, true, nil
}

// Logout unconditionally transitions to anonymous.
func (uc *AuthUsecase) Logout() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = SessionAnonymous
	uc.current = nil
}

// CurrentUser returns the authenticated user, if any.
func (uc *AuthUsecase) CurrentUser() (userdom.User, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.state != SessionAuthenticated || uc.current == nil {
		return userdom.User{}, false
	}
	return *uc.current, true
}

// State reports the current session state.
func (uc *AuthUsecase) State() SessionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// callers hold uc.mu
func (uc *AuthUsecase) resolveAnonymous() {
	uc.state = SessionAnonymous
	uc.current = nil
}

func (uc *AuthUsecase) resolveAuthenticated(u userdom.User) {
	uc.state = SessionAuthenticated
	uc.current = &u
}
