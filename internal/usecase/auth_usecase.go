package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"repairshop-backend/internal/converter"
	"repairshop-backend/internal/delivery/dto"
	"repairshop-backend/internal/domain/entity"
	"repairshop-backend/internal/domain/repository"
	"repairshop-backend/internal/service"
	"repairshop-backend/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidProviderToken = errors.New("invalid identity provider token")
	ErrUserNotFound         = errors.New("user not found")
)

type AuthUsecase interface {
	ExchangeToken(ctx context.Context, req *dto.ExchangeTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	Logout(ctx context.Context, userID, tokenID string) error
}

type authUsecase struct {
	log         *logrus.Logger
	userRepo    repository.UserRepository
	verifier    service.IdentityVerifier
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	verifier service.IdentityVerifier,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		userRepo:    userRepo,
		verifier:    verifier,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// ExchangeToken verifies an identity-provider token, lazily creates the user
// on first sight of the uid, and mints a session token. The admin flag in
// the claims always comes from the stored record.
func (u *authUsecase) ExchangeToken(ctx context.Context, req *dto.ExchangeTokenRequest) (*dto.TokenResponse, error) {
	identity, err := u.verifier.Verify(ctx, req.Token)
	if err != nil {
		u.log.Warnf("Identity token verification failed: %+v", err)
		return nil, ErrInvalidProviderToken
	}

	user, err := u.userRepo.FindByID(ctx, identity.UID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", identity.UID, err)
		return nil, err
	}

	if user == nil {
		name := identity.Name
		if name == "" {
			name = strings.SplitN(identity.Email, "@", 2)[0]
		}
		user = &entity.User{
			ID:    identity.UID,
			Email: identity.Email,
			Name:  name,
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			u.log.Warnf("Failed to create user %s: %+v", identity.UID, err)
			return nil, err
		}
		u.log.Infof("Created new user: %s", user.ID)
	}

	token, tokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	sessionKey := fmt.Sprintf("session:%s:%s", user.ID, tokenID)
	if err := u.redisClient.Set(ctx, sessionKey, "1", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store session token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		Token: token,
		User:  *converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Logout(ctx context.Context, userID, tokenID string) error {
	sessionKey := fmt.Sprintf("session:%s:%s", userID, tokenID)
	if err := u.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		u.log.Warnf("Failed to revoke session token: %+v", err)
		return err
	}
	return nil
}
