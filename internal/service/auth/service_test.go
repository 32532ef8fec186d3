package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/sbexpress/hris-backend-go/internal/domain/activitylog"
	"github.com/sbexpress/hris-backend-go/internal/domain/auth"
	"github.com/sbexpress/hris-backend-go/internal/domain/user"
	"github.com/sbexpress/hris-backend-go/internal/pkg/jwt"
	"github.com/sbexpress/hris-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
)

type fakeUserRepo struct {
	users map[string]user.User
	err   error
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	u, ok := f.users[username]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type fakeActivity struct {
	entries []activitylog.Entry
}

func (f *fakeActivity) Record(ctx context.Context, e activitylog.Entry) {
	f.entries = append(f.entries, e)
}

func newTestService(t *testing.T) (auth.AuthService, *fakeActivity, jwt.Service) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	employeeID := int64(12)
	repo := &fakeUserRepo{users: map[string]user.User{
		"hrd.siti": {ID: 5, Username: "hrd.siti", PasswordHash: hash, Role: user.RoleHRD, EmployeeID: &employeeID},
	}}
	activity := &fakeActivity{}
	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	return NewAuthService(repo, jwtService, activity), activity, jwtService
}

// Test Login with valid credentials
func TestAuthService_Login_Success(t *testing.T) {
	svc, activity, jwtService := newTestService(t)

	session := auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "Mozilla/5.0"}
	response, err := svc.Login(context.Background(), auth.LoginRequest{Username: "hrd.siti", Password: "password123"}, session)
	require.NoError(t, err)

	assert.NotEmpty(t, response.AccessToken)
	assert.Greater(t, response.AccessTokenExpiresIn, int64(0))
	assert.Equal(t, "hrd", response.Role)

	token, err := jwtService.JWTAuth().Decode(response.AccessToken)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	id, ok := jwt.UserIDFromClaims(claims)
	require.True(t, ok)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, "access", claims["type"])

	require.Len(t, activity.entries, 1)
	entry := activity.entries[0]
	assert.Equal(t, activitylog.TypeLogin, entry.ActivityType)
	assert.Equal(t, activitylog.OutcomeSuccess, entry.Status)
	require.NotNil(t, entry.IPAddress)
	assert.Equal(t, "127.0.0.1", *entry.IPAddress)
}

// Test Login with invalid password
func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, activity, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "hrd.siti", Password: "wrong"}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	require.Len(t, activity.entries, 1)
	assert.Equal(t, activitylog.OutcomeFailed, activity.entries[0].Status)
	assert.NotNil(t, activity.entries[0].UserID)
}

// Test Login with unknown user
func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, activity, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "nobody", Password: "password123"}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	require.Len(t, activity.entries, 1)
	assert.Nil(t, activity.entries[0].UserID)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{}, auth.SessionTrackingRequest{})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	storeErr := errors.New("db down")
	svc := NewAuthService(&fakeUserRepo{err: storeErr}, jwt.NewJWTService(testSecret, testAccessExp), &fakeActivity{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "a", Password: "b"}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, storeErr)
}
