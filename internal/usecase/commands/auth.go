package commands

import (
	"context"
	"crypto/subtle"
	"time"

	"seat-redeem/internal/domain/user"
	reqdto "seat-redeem/internal/handler/dto/request"
	"seat-redeem/internal/pkg/config"
	"seat-redeem/internal/pkg/errs"
	"seat-redeem/internal/pkg/jwt"
	"seat-redeem/internal/pkg/password"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	Username    string
	Role        user.Role
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	operator   *user.Operator
	jwtService *jwt.Service
}

func NewAuthCommands(cfg config.Config, jwtService *jwt.Service) (AuthCommands, error) {
	username, err := user.NewUsername(cfg.Admin.Username)
	if err != nil {
		return nil, errs.Wrap(err, "admin username")
	}
	if err := password.ValidateHash(cfg.Admin.PasswordHash); err != nil {
		return nil, errs.Wrap(err, "admin password hash")
	}
	return &authCommandsImpl{
		operator:   user.NewOperator(username, cfg.Admin.PasswordHash, user.RoleAdmin),
		jwtService: jwtService,
	}, nil
}

func (a *authCommandsImpl) Login(_ context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	username, pw, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	// bcrypt runs on every attempt, matching username or not
	pwErr := password.ComparePassword(a.operator.PasswordHash(), pw.Value())
	nameOK := subtle.ConstantTimeCompare([]byte(username.Value()), []byte(a.operator.Username().Value())) == 1
	if pwErr != nil || !nameOK {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateToken(a.operator.Username().Value(), a.operator.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Username:    a.operator.Username().Value(),
		Role:        a.operator.Role(),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
