package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/config"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/jwt"
)

// ── Test helpers ──

func setupTestAuthService() (AuthService, *mockRepos, *jwt.Manager) {
	repo, mocks := newMockRepository()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "unit-test-secret-key-0123456789",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, mocks, jwtMgr
}

func seedAccount(mocks *mockRepos, userID, email, password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{
		UserID:       userID,
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Status:       model.StatusAuthenticated,
		Role:         model.RoleGeneralMember,
	}
	mocks.user.put(user)
	return user
}

// ── Register ──

func TestAuthService_Register_Success(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Grace Hopper",
		Email:    "grace@nexus.dev",
		Password: "S3curePass!",
	})
	if err != nil {
		t.Fatalf("Register should succeed: %v", err)
	}
	if resp.Email != "grace@nexus.dev" {
		t.Errorf("unexpected email %s", resp.Email)
	}
	if resp.Status != model.StatusAuthenticated {
		t.Errorf("new accounts start AUTHENTICATED, got %s", resp.Status)
	}

	stored, err := mocks.user.GetByEmail(context.Background(), "grace@nexus.dev")
	if err != nil {
		t.Fatal("user should be persisted")
	}
	if stored.PasswordHash == "S3curePass!" {
		t.Error("password must be stored hashed")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedAccount(mocks, "user-1", "grace@nexus.dev", "oldpass123")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Impostor",
		Email:    "grace@nexus.dev",
		Password: "whatever123",
	})
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}
}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, mocks, jwtMgr := setupTestAuthService()
	seedAccount(mocks, "user-1", "grace@nexus.dev", "S3curePass!")

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "grace@nexus.dev",
		Password: "S3curePass!",
	})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("both tokens should be issued")
	}

	claims, err := jwtMgr.ParseToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("access token should parse: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected user-1 in claims, got %s", claims.UserID)
	}
	if claims.TokenType != "access" {
		t.Errorf("expected access token type, got %s", claims.TokenType)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedAccount(mocks, "user-1", "grace@nexus.dev", "S3curePass!")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "grace@nexus.dev",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@nexus.dev",
		Password: "whatever",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ── Refresh ──

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedAccount(mocks, "user-1", "grace@nexus.dev", "S3curePass!")

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "grace@nexus.dev",
		Password: "S3curePass!",
	})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}

	rotated, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken should succeed: %v", err)
	}
	if rotated.AccessToken == "" || rotated.RefreshToken == "" {
		t.Fatal("rotation should issue a full new pair")
	}
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedAccount(mocks, "user-1", "grace@nexus.dev", "S3curePass!")

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "grace@nexus.dev",
		Password: "S3curePass!",
	})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}

	_, err = svc.RefreshToken(context.Background(), tokens.AccessToken)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("an access token must not refresh, got %v", err)
	}
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

// ── ChangePassword ──

func TestAuthService_ChangePassword_Success(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedAccount(mocks, "user-1", "grace@nexus.dev", "OldPass123!")

	err := svc.ChangePassword(context.Background(), "user-1", &dto.ChangePasswordRequest{
		OldPassword: "OldPass123!",
		NewPassword: "NewPass456!",
	})
	if err != nil {
		t.Fatalf("ChangePassword should succeed: %v", err)
	}

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "grace@nexus.dev",
		Password: "NewPass456!",
	}); err != nil {
		t.Errorf("login with the new password should succeed: %v", err)
	}
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "grace@nexus.dev",
		Password: "OldPass123!",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("old password should stop working")
	}
}

func TestAuthService_ChangePassword_WrongOld(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedAccount(mocks, "user-1", "grace@nexus.dev", "OldPass123!")

	err := svc.ChangePassword(context.Background(), "user-1", &dto.ChangePasswordRequest{
		OldPassword: "nope",
		NewPassword: "NewPass456!",
	})
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}

// ── GetCurrentUser ──

func TestAuthService_GetCurrentUser(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	user := seedAccount(mocks, "user-1", "grace@nexus.dev", "S3curePass!")
	mid := "042"
	user.MembershipID = &mid

	resp, err := svc.GetCurrentUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetCurrentUser should succeed: %v", err)
	}
	if resp.MembershipID != "042" {
		t.Errorf("expected membership ID 042, got %s", resp.MembershipID)
	}
}
