package service

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"turmalink/backend/config"
	"turmalink/backend/internal/dto"
	"turmalink/backend/internal/model"
	"turmalink/backend/internal/repository"
	"turmalink/backend/pkg/jwt"
	"turmalink/backend/pkg/redis"
)

// ── auth errors ──

var (
	ErrEmailAlreadyRegistered = stderrors.New("email already registered")
	ErrRegistrationNotStarted = stderrors.New("registration was not started for this email")
	ErrInvalidCredentials     = stderrors.New("invalid email or password")
	ErrAccountNotConfirmed    = stderrors.New("account registration is not complete")
	ErrInvalidRefreshToken    = stderrors.New("invalid refresh token")
	ErrInvalidIDToken         = stderrors.New("invalid identity token")
)

// GoogleIdentity is the subset of a verified Google ID token the service
// needs.
type GoogleIdentity struct {
	Email      string
	FirstName  string
	LastName   string
	AvatarLink string
}

// TokenVerifier verifies an external identity token. The production verifier
// calls Google's tokeninfo endpoint; tests inject a fake.
type TokenVerifier interface {
	Verify(ctx context.Context, credential string) (*GoogleIdentity, error)
}

// AuthService owns registration and session issuance.
type AuthService interface {
	// StartRegistration creates the unconfirmed stub user. When the email
	// already has an unconfirmed stub the call is a no-op reporting
	// Created=false; a confirmed email is rejected.
	StartRegistration(ctx context.Context, req *dto.StartRegistrationRequest) (*dto.RegistrationResponse, error)
	// CompleteRegistration fills the stub's profile, sets the password and
	// role, creates the role profile and confirms the account, all in one
	// transaction.
	CompleteRegistration(ctx context.Context, req *dto.CompleteRegistrationRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// LoginWithIDToken logs in with a verified Google identity, creating an
	// unconfirmed stub when the email is unknown.
	LoginWithIDToken(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, rawToken string) error
	Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
}

type authService struct {
	repo     *repository.Repository
	jwtMgr   *jwt.Manager
	rdb      *redis.Client
	verifier TokenVerifier
	authCfg  *config.AuthConfig
	logger   *zap.Logger
}

// NewAuthService creates the AuthService. rdb may be nil; logout then
// degrades to a no-op with a warning.
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, verifier TokenVerifier, authCfg *config.AuthConfig, logger *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		jwtMgr:   jwtMgr,
		rdb:      rdb,
		verifier: verifier,
		authCfg:  authCfg,
		logger:   logger,
	}
}

func (s *authService) StartRegistration(ctx context.Context, req *dto.StartRegistrationRequest) (*dto.RegistrationResponse, error) {
	existing, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err == nil {
		if existing.Confirmed {
			return nil, ErrEmailAlreadyRegistered
		}
		// stub already exists, resume the pending registration
		return &dto.RegistrationResponse{Created: false, User: *toUserResponse(existing)}, nil
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup email failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	user := &model.User{
		FirstName: req.FirstName,
		Email:     req.Email,
		Confirmed: false,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyRegistered
		}
		s.logger.Error("create stub user failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("registration started", zap.String("user_id", user.UserID), zap.String("email", user.Email))
	return &dto.RegistrationResponse{Created: true, User: *toUserResponse(user)}, nil
}

func (s *authService) CompleteRegistration(ctx context.Context, req *dto.CompleteRegistrationRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotStarted
		}
		s.logger.Error("lookup email failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	if user.Confirmed {
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	user.PasswordHash = string(hash)
	user.Role = req.Role
	user.Gender = req.Gender
	user.Confirmed = true
	if req.BirthDate != "" {
		if bd, perr := time.Parse("2006-01-02", req.BirthDate); perr == nil {
			user.BirthDate = &bd
		}
	}

	// The role profile is a consequence of setting the role, created in the
	// same transaction as the user write.
	err = s.repo.Tx.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.User.Update(ctx, user); err != nil {
			return err
		}
		return ensureRoleProfile(ctx, txRepo, user)
	})
	if err != nil {
		s.logger.Error("complete registration failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	s.logger.Info("registration completed",
		zap.String("user_id", user.UserID),
		zap.String("role", user.Role),
	)

	return s.issueTokens(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("lookup email failed", zap.Error(err))
		return nil, err
	}
	if !user.Confirmed {
		return nil, ErrAccountNotConfirmed
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("user logged in", zap.String("user_id", user.UserID))
	return s.issueTokens(user)
}

func (s *authService) LoginWithIDToken(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.TokenResponse, error) {
	identity, err := s.verifier.Verify(ctx, req.Credential)
	if err != nil {
		s.logger.Warn("id token verification failed", zap.Error(err))
		return nil, ErrInvalidIDToken
	}

	user, err := s.repo.User.GetByEmail(ctx, identity.Email)
	if err != nil {
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("lookup email failed", zap.Error(err))
			return nil, err
		}
		user = &model.User{
			FirstName: identity.FirstName,
			LastName:  identity.LastName,
			Email:     identity.Email,
			Confirmed: false,
		}
		if identity.AvatarLink != "" {
			user.AvatarLink = identity.AvatarLink
		}
		if cerr := s.repo.User.Create(ctx, user); cerr != nil {
			s.logger.Error("create user from identity failed", zap.Error(cerr))
			return nil, cerr
		}
		s.logger.Info("user created from google identity", zap.String("user_id", user.UserID))
	}

	return s.issueTokens(user)
}

func (s *authService) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.jwtMgr.ParseToken(rawToken)
	if err != nil {
		// an expired token needs no blacklisting
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil
		}
		return err
	}

	if s.rdb == nil {
		s.logger.Warn("redis unavailable, logout does not revoke the token")
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("blacklist token failed", zap.Error(err))
		return err
	}

	s.logger.Info("user logged out", zap.String("user_id", claims.UserID))
	return nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidRefreshToken
	}

	if s.rdb != nil {
		blacklisted, berr := s.rdb.IsBlacklisted(ctx, claims.ID)
		if berr != nil {
			s.logger.Error("blacklist check failed", zap.Error(berr))
		} else if blacklisted {
			return nil, ErrInvalidRefreshToken
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		s.logger.Error("load user failed", zap.Error(err))
		return nil, err
	}

	access, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: access,
		ExpiresIn:   int(s.authCfg.AccessTokenTTL.Seconds()),
		User:        *toUserResponse(user),
	}, nil
}

func (s *authService) issueTokens(user *model.User) (*dto.TokenResponse, error) {
	access, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.authCfg.AccessTokenTTL.Seconds()),
		User:         *toUserResponse(user),
	}, nil
}
