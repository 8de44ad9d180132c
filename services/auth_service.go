package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/exclusiveng/360urban-backendmysql/configs"
	"github.com/exclusiveng/360urban-backendmysql/entity"
	"github.com/exclusiveng/360urban-backendmysql/pkg/apperr"
	"github.com/exclusiveng/360urban-backendmysql/repository"
	"github.com/exclusiveng/360urban-backendmysql/utils"
)

// AuthService owns registration, login and the refresh-token lifecycle.
// Only one refresh token is active per user: login and register overwrite
// the stored one, which invalidates whatever was issued before.
type AuthService struct {
	userRepo *repository.UserRepository
	cfg      *configs.Config
}

func NewAuthService(repo *repository.UserRepository, cfg *configs.Config) *AuthService {
	return &AuthService{userRepo: repo, cfg: cfg}
}

type AuthResult struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	User         map[string]any `json:"user"`
}

func (s *AuthService) issueTokens(user *entity.User) (access, refresh string, err error) {
	access, err = utils.GenerateToken(user.ID, user.Email, string(user.Role), s.cfg.JWTSecret, s.cfg.AccessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = utils.GenerateToken(user.ID, user.Email, string(user.Role), s.cfg.JWTRefreshSecret, s.cfg.RefreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *AuthService) Register(email, password, firstName, lastName, phone string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !utils.ValidateEmail(email) {
		return nil, apperr.BadRequest("Invalid email format")
	}

	if policyErrs := utils.ValidatePasswordStrength(password); len(policyErrs) > 0 {
		return nil, apperr.BadRequest("Password does not meet requirements").
			WithFields(map[string][]string{"password": policyErrs})
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("Email already registered")
	}

	hash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:     email,
		Password:  hash,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Phone:     strings.TrimSpace(phone),
		Role:      entity.RoleAgent,
	}

	if err := s.userRepo.Create(user); err != nil {
		// the unique index is the real guard; a concurrent insert lands here
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already registered")
		}
		return nil, err
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SetRefreshToken(user.ID, &refresh); err != nil {
		return nil, err
	}

	return &AuthResult{AccessToken: access, RefreshToken: refresh, User: user.Public()}, nil
}

// Login never reveals whether the email exists.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("Invalid email or password")
		}
		return nil, err
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SetRefreshToken(user.ID, &refresh); err != nil {
		return nil, err
	}

	return &AuthResult{AccessToken: access, RefreshToken: refresh, User: user.Public()}, nil
}

// RefreshAccessToken accepts only the refresh token currently on record.
// A superseded token (overwritten by a later login) is rejected even if its
// signature is still valid.
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	claims := utils.VerifyToken(refreshToken, s.cfg.JWTRefreshSecret)
	if claims == nil {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.Unauthorized("Refresh token mismatch")
		}
		return "", err
	}
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return "", apperr.Unauthorized("Refresh token mismatch")
	}

	return utils.GenerateToken(user.ID, user.Email, string(user.Role), s.cfg.JWTSecret, s.cfg.AccessTokenTTL)
}

// Logout clears the stored refresh token. No-op for unknown users.
func (s *AuthService) Logout(userID string) error {
	return s.userRepo.SetRefreshToken(userID, nil)
}

func (s *AuthService) ChangePassword(userID, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found")
		}
		return err
	}

	if !utils.VerifyPassword(oldPassword, user.Password) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	if policyErrs := utils.ValidatePasswordStrength(newPassword); len(policyErrs) > 0 {
		return apperr.BadRequest("New password does not meet requirements").
			WithFields(map[string][]string{"newPassword": policyErrs})
	}

	hash, err := utils.HashPassword(newPassword, s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	return s.userRepo.SetPassword(userID, hash)
}
