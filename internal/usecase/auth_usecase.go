package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"azmedical/internal/domain/model"
	"azmedical/internal/i18n"
	repo "azmedical/internal/repository"
	"azmedical/internal/validator"
)

// SocialSupportEmail routes login to the social-support demo account.
const SocialSupportEmail = "sosial@azmedical.az"

const defaultAvatar = "/placeholder.svg?height=100&width=100"

// Authenticator stands in for the identity backend. This is mock auth:
// passwords are never checked and the mock below is the only production
// implementation.
type Authenticator interface {
	Authenticate(ctx context.Context, email string, password string) (model.UserProfile, error)
	Register(ctx context.Context, in validator.RegisterInput) (model.UserProfile, error)
}

// MockAuthenticator waits the configured delay and hands back a canned
// profile. Fail, when set, lets tests reject an attempt deterministically.
type MockAuthenticator struct {
	LoginDelay    time.Duration
	RegisterDelay time.Duration
	Fail          func(email string) error
}

func (a *MockAuthenticator) Authenticate(ctx context.Context, email string, _ string) (model.UserProfile, error) {
	if err := wait(ctx, a.LoginDelay); err != nil {
		return model.UserProfile{}, err
	}
	if a.Fail != nil {
		if err := a.Fail(email); err != nil {
			return model.UserProfile{}, err
		}
	}

	if email == SocialSupportEmail {
		return model.UserProfile{
			ID:       "social-1",
			Name:     "Sosial Yardım İstifadəçisi",
			Email:    email,
			Avatar:   defaultAvatar,
			Type:     model.AccountSocialSupport,
			Category: model.SupportAssistance,
		}, nil
	}

	return model.UserProfile{
		ID:     "1",
		Name:   "Əli Məmmədov",
		Email:  email,
		Avatar: defaultAvatar,
		Type:   model.AccountRegular,
	}, nil
}

func (a *MockAuthenticator) Register(ctx context.Context, in validator.RegisterInput) (model.UserProfile, error) {
	if err := wait(ctx, a.RegisterDelay); err != nil {
		return model.UserProfile{}, err
	}
	if a.Fail != nil {
		if err := a.Fail(in.Email); err != nil {
			return model.UserProfile{}, err
		}
	}

	return model.UserProfile{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(in.Name),
		Email:  strings.TrimSpace(in.Email),
		Avatar: defaultAvatar,
		Type:   model.AccountRegular,
	}, nil
}

// TokenIssuer mints the opaque session token.
type TokenIssuer interface {
	Issue(user model.UserProfile, now time.Time) string
}

// MockTokenIssuer produces mock_token_-prefixed values. The payload
// happens to be JWT-shaped, but nothing in this system parses, verifies,
// or expires it; the token is opaque end to end.
type MockTokenIssuer struct {
	Secret []byte
}

func (i *MockTokenIssuer) Issue(user model.UserProfile, now time.Time) string {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"acct": string(user.Type),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.Secret)
	if err != nil {
		// Fall back to the bare time-derived form.
		return fmt.Sprintf("mock_token_%d", now.UnixMilli())
	}
	return "mock_token_" + signed
}

// AuthUsecase drives the mock login, registration, logout, and profile
// update flows against the session repository.
type AuthUsecase struct {
	sessions repo.SessionRepository
	prefs    repo.PreferencesRepository
	auth     Authenticator
	issuer   TokenIssuer
	clock    Clock
	log      *zap.Logger
}

func NewAuthUsecase(
	sessions repo.SessionRepository,
	prefs repo.PreferencesRepository,
	auth Authenticator,
	issuer TokenIssuer,
	clock Clock,
	log *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		sessions: sessions,
		prefs:    prefs,
		auth:     auth,
		issuer:   issuer,
		clock:    clock,
		log:      log,
	}
}

// LoginOutput tells the UI who signed in, where to navigate, and what to
// toast, in the active display language.
type LoginOutput struct {
	User         model.UserProfile
	RedirectPath string
	Message      string
}

func (u *AuthUsecase) Login(ctx context.Context, in validator.LoginInput) (LoginOutput, error) {
	if fields := validator.ValidateLogin(in); !fields.Valid() {
		return LoginOutput{}, &ValidationError{Fields: fields}
	}

	user, err := u.auth.Authenticate(ctx, strings.TrimSpace(in.Email), in.Password)
	if err != nil {
		return LoginOutput{}, fmt.Errorf("%w: %v", ErrAuthRejected, err)
	}

	token := u.issuer.Issue(user, u.clock.Now())
	u.sessions.Set(user, token)

	redirect := "/dashboard"
	if user.IsSocialSupport() {
		redirect = "/social-dashboard"
	}

	u.log.Info("login",
		zap.String("user_id", user.ID),
		zap.String("account_type", string(user.Type)),
	)

	p := i18n.Printer(u.prefs.Language())
	return LoginOutput{
		User:         user,
		RedirectPath: redirect,
		Message:      p.Sprintf("login.success") + " " + p.Sprintf("login.welcome"),
	}, nil
}

func (u *AuthUsecase) Register(ctx context.Context, in validator.RegisterInput) (LoginOutput, error) {
	if fields := validator.ValidateRegister(in); !fields.Valid() {
		return LoginOutput{}, &ValidationError{Fields: fields}
	}

	user, err := u.auth.Register(ctx, in)
	if err != nil {
		return LoginOutput{}, fmt.Errorf("%w: %v", ErrAuthRejected, err)
	}

	token := u.issuer.Issue(user, u.clock.Now())
	u.sessions.Set(user, token)

	u.log.Info("register", zap.String("user_id", user.ID))

	p := i18n.Printer(u.prefs.Language())
	return LoginOutput{
		User:         user,
		RedirectPath: "/dashboard",
		Message:      p.Sprintf("register.success"),
	}, nil
}

func (u *AuthUsecase) Logout() {
	u.sessions.Clear()
	u.log.Info("logout")
}

// Session exposes the current auth state for view refreshes.
func (u *AuthUsecase) Session() repo.Session {
	return u.sessions.Get()
}

// UpdateProfile rewrites the stored profile's editable fields. The session
// token is untouched.
func (u *AuthUsecase) UpdateProfile(in validator.ProfileInput) (model.UserProfile, error) {
	s := u.sessions.Get()
	if !s.IsAuthenticated || s.User == nil {
		return model.UserProfile{}, ErrUnauthorized
	}

	if fields := validator.ValidateProfile(in); !fields.Valid() {
		return model.UserProfile{}, &ValidationError{Fields: fields}
	}

	updated := *s.User
	updated.Name = strings.TrimSpace(in.Name)
	updated.Email = strings.TrimSpace(in.Email)

	u.sessions.Set(updated, s.Token)
	return updated, nil
}
