package service

import (
	"errors"
	"strings"
	"time"

	"github.com/VeyselCerav/kelime/internal/config"
	"github.com/VeyselCerav/kelime/internal/model"
	"github.com/VeyselCerav/kelime/internal/repository"
	"github.com/VeyselCerav/kelime/internal/util"
	"github.com/VeyselCerav/kelime/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	verificationTokenTTL = 24 * time.Hour
	resetTokenTTL        = time.Hour
)

// AuthService 注册、登录与邮箱验证/密码重置
type AuthService struct {
	UserRepo *repository.UserRepository
	Mailer   Mailer
	JWT      config.JWTConfig
}

func NewAuthService(userRepo *repository.UserRepository, mailer Mailer, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Mailer:   mailer,
		JWT:      jwtCfg,
	}
}

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *AuthService) Register(input RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.UserRepo.FindByUsernameOrEmail(username, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, util.ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:          username,
		Email:             email,
		Password:          string(hashed),
		Role:              model.Member,
		VerificationToken: model.GenerateToken(),
		TokenExpiry:       time.Now().Add(verificationTokenTTL),
		LastLogin:         time.Now(),
	}

	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	if err := s.Mailer.SendVerificationEmail(user.Email, user.VerificationToken); err != nil {
		// 邮件失败不回滚注册，令牌仍可重发
		logger.Log.Error("failed to send verification email",
			zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return user, nil
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginOutput struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *AuthService) Login(input LoginInput) (*LoginOutput, error) {
	// 邮箱侧按注册时的归一化方式查找
	login := strings.TrimSpace(input.Username)
	user, err := s.UserRepo.FindByUsernameOrEmail(login, strings.ToLower(login))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, util.ErrEmailNotVerified
	}

	token, err := util.GenerateJWT(user, s.JWT.Secret, s.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Log.Warn("failed to update last login", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return &LoginOutput{Token: token, User: user}, nil
}

// VerifyEmail 校验令牌并标记邮箱已验证，令牌单次有效
func (s *AuthService) VerifyEmail(token string) error {
	if token == "" {
		return util.ErrInvalidToken
	}

	user, err := s.UserRepo.FindByVerificationToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrInvalidToken
		}
		return err
	}

	if time.Now().After(user.TokenExpiry) {
		return util.ErrInvalidToken
	}

	user.EmailVerified = true
	user.VerificationToken = ""
	return s.UserRepo.Update(user)
}

// RequestPasswordReset 对不存在的邮箱静默成功，避免账号枚举
func (s *AuthService) RequestPasswordReset(email string) error {
	user, err := s.UserRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	user.VerificationToken = model.GenerateToken()
	user.TokenExpiry = time.Now().Add(resetTokenTTL)
	if err := s.UserRepo.Update(user); err != nil {
		return err
	}

	if err := s.Mailer.SendPasswordResetEmail(user.Email, user.VerificationToken); err != nil {
		logger.Log.Error("failed to send password reset email",
			zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return nil
}

func (s *AuthService) ConfirmPasswordReset(token, newPassword string) error {
	if token == "" {
		return util.ErrInvalidToken
	}

	user, err := s.UserRepo.FindByVerificationToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrInvalidToken
		}
		return err
	}

	if time.Now().After(user.TokenExpiry) {
		return util.ErrInvalidToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	user.VerificationToken = ""
	user.EmailVerified = true
	return s.UserRepo.Update(user)
}

func (s *AuthService) GetCurrentUser(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
