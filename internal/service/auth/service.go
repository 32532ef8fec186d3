package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbexpress/hris-backend-go/internal/domain/activitylog"
	"github.com/sbexpress/hris-backend-go/internal/domain/auth"
	"github.com/sbexpress/hris-backend-go/internal/domain/user"
	"github.com/sbexpress/hris-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	activityService activitylog.ActivityLogService
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, activityService activitylog.ActivityLogService) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:  userRepository,
		Service:         jwtService,
		activityService: activityService,
	}
}

// HashPassword returns the bcrypt hash stored in users.password_hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByUsername(ctx, loginReq.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			a.recordLogin(ctx, nil, loginReq.Username, activitylog.OutcomeFailed, sessionTrackReq)
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		a.recordLogin(ctx, &userData.ID, userData.Username, activitylog.OutcomeFailed, sessionTrackReq)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	a.recordLogin(ctx, &userData.ID, userData.Username, activitylog.OutcomeSuccess, sessionTrackReq)

	return auth.TokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
		Role:                 string(userData.Role),
	}, nil
}

func (a *AuthServiceImpl) recordLogin(ctx context.Context, userID *int64, username string, outcome activitylog.Outcome, session auth.SessionTrackingRequest) {
	description := fmt.Sprintf("User %s logged in", username)
	if outcome == activitylog.OutcomeFailed {
		description = fmt.Sprintf("Failed login attempt for %s", username)
	}

	entry := activitylog.Entry{
		UserID:       userID,
		ActivityType: activitylog.TypeLogin,
		Description:  description,
		Status:       outcome,
	}
	if session.IPAddress != "" {
		entry.IPAddress = &session.IPAddress
	}
	if session.UserAgent != "" {
		entry.UserAgent = &session.UserAgent
	}
	a.activityService.Record(ctx, entry)
}
