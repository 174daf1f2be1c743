package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"turmalink/backend/config"
	"turmalink/backend/internal/dto"
	"turmalink/backend/internal/model"
	"turmalink/backend/pkg/jwt"
)

type fakeVerifier struct {
	identity *GoogleIdentity
	err      error
}

func (v *fakeVerifier) Verify(ctx context.Context, credential string) (*GoogleIdentity, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.identity, nil
}

func newAuthFixture(t *testing.T, verifier TokenVerifier) (AuthService, *memDB) {
	t.Helper()
	repo, db := newTestRepo()
	authCfg := &config.AuthConfig{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
	svc := NewAuthService(repo, jwt.NewManager(authCfg), nil, verifier, authCfg, zap.NewNop())
	return svc, db
}

func TestRegistrationFlowCreatesRoleProfile(t *testing.T) {
	svc, db := newAuthFixture(t, nil)
	ctx := context.Background()

	started, err := svc.StartRegistration(ctx, &dto.StartRegistrationRequest{FirstName: "Paula", Email: "p@x.com"})
	if err != nil {
		t.Fatalf("StartRegistration: %v", err)
	}
	if !started.Created {
		t.Errorf("expected a fresh stub")
	}
	if started.User.Confirmed {
		t.Errorf("stub must start unconfirmed")
	}

	tokens, err := svc.CompleteRegistration(ctx, &dto.CompleteRegistrationRequest{
		Email:     "p@x.com",
		FirstName: "Paula",
		Password:  "correct horse battery",
		Role:      model.RoleProfessor,
	})
	if err != nil {
		t.Fatalf("CompleteRegistration: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Errorf("expected a token pair")
	}
	if !tokens.User.Confirmed {
		t.Errorf("user must be confirmed after completion")
	}

	// the professor role implies a professor profile row
	var found bool
	for _, p := range db.professors {
		if p.UserID == started.User.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("professor profile not created for role %q", model.RoleProfessor)
	}
}

func TestStartRegistrationResumesExistingStub(t *testing.T) {
	svc, _ := newAuthFixture(t, nil)
	ctx := context.Background()

	first, err := svc.StartRegistration(ctx, &dto.StartRegistrationRequest{FirstName: "Sam", Email: "s@x.com"})
	if err != nil {
		t.Fatalf("first start: %v", err)
	}

	second, err := svc.StartRegistration(ctx, &dto.StartRegistrationRequest{FirstName: "Sam", Email: "s@x.com"})
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if second.Created {
		t.Errorf("second start must resume, not create")
	}
	if second.User.ID != first.User.ID {
		t.Errorf("resumed a different user")
	}
}

func TestStartRegistrationRejectsConfirmedEmail(t *testing.T) {
	svc, _ := newAuthFixture(t, nil)
	ctx := context.Background()

	if _, err := svc.StartRegistration(ctx, &dto.StartRegistrationRequest{FirstName: "Sam", Email: "s@x.com"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.CompleteRegistration(ctx, &dto.CompleteRegistrationRequest{
		Email: "s@x.com", FirstName: "Sam", Password: "correct horse battery", Role: model.RoleStudent,
	}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	_, err := svc.StartRegistration(ctx, &dto.StartRegistrationRequest{FirstName: "Sam", Email: "s@x.com"})
	if !stderrors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestCompleteRegistrationWithoutStart(t *testing.T) {
	svc, _ := newAuthFixture(t, nil)

	_, err := svc.CompleteRegistration(context.Background(), &dto.CompleteRegistrationRequest{
		Email: "ghost@x.com", FirstName: "Ghost", Password: "correct horse battery", Role: model.RoleStudent,
	})
	if !stderrors.Is(err, ErrRegistrationNotStarted) {
		t.Fatalf("err = %v, want ErrRegistrationNotStarted", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture(t, nil)
	ctx := context.Background()

	if _, err := svc.StartRegistration(ctx, &dto.StartRegistrationRequest{FirstName: "Sam", Email: "s@x.com"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.CompleteRegistration(ctx, &dto.CompleteRegistrationRequest{
		Email: "s@x.com", FirstName: "Sam", Password: "correct horse battery", Role: model.RoleStudent,
	}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	tokens, err := svc.Login(ctx, &dto.LoginRequest{Email: "s@x.com", Password: "correct horse battery"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tokens.AccessToken == "" {
		t.Errorf("expected an access token")
	}

	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "s@x.com", Password: "wrong"}); !stderrors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@x.com", Password: "whatever"}); !stderrors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRejectsUnconfirmedAccount(t *testing.T) {
	svc, _ := newAuthFixture(t, nil)
	ctx := context.Background()

	if _, err := svc.StartRegistration(ctx, &dto.StartRegistrationRequest{FirstName: "Sam", Email: "s@x.com"}); err != nil {
		t.Fatalf("start: %v", err)
	}

	_, err := svc.Login(ctx, &dto.LoginRequest{Email: "s@x.com", Password: "anything"})
	if !stderrors.Is(err, ErrAccountNotConfirmed) {
		t.Fatalf("err = %v, want ErrAccountNotConfirmed", err)
	}
}

func TestLoginWithIDTokenCreatesStub(t *testing.T) {
	verifier := &fakeVerifier{identity: &GoogleIdentity{Email: "g@x.com", FirstName: "Gia", LastName: "Silva"}}
	svc, db := newAuthFixture(t, verifier)

	tokens, err := svc.LoginWithIDToken(context.Background(), &dto.GoogleLoginRequest{Credential: "fake-credential"})
	if err != nil {
		t.Fatalf("LoginWithIDToken: %v", err)
	}
	if tokens.User.Email != "g@x.com" {
		t.Errorf("user email = %q, want g@x.com", tokens.User.Email)
	}
	if len(db.users) != 1 {
		t.Errorf("user count = %d, want 1", len(db.users))
	}
}

func TestLoginWithIDTokenRejectsBadCredential(t *testing.T) {
	verifier := &fakeVerifier{err: fmt.Errorf("bad token")}
	svc, _ := newAuthFixture(t, verifier)

	_, err := svc.LoginWithIDToken(context.Background(), &dto.GoogleLoginRequest{Credential: "junk"})
	if !stderrors.Is(err, ErrInvalidIDToken) {
		t.Fatalf("err = %v, want ErrInvalidIDToken", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newAuthFixture(t, nil)
	ctx := context.Background()

	if _, err := svc.StartRegistration(ctx, &dto.StartRegistrationRequest{FirstName: "Sam", Email: "s@x.com"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	tokens, err := svc.CompleteRegistration(ctx, &dto.CompleteRegistrationRequest{
		Email: "s@x.com", FirstName: "Sam", Password: "correct horse battery", Role: model.RoleStudent,
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	// an access token must not pass for a refresh token
	if _, err := svc.Refresh(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.AccessToken}); !stderrors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("err = %v, want ErrInvalidRefreshToken", err)
	}

	refreshed, err := svc.Refresh(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Errorf("expected a new access token")
	}
}
