package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/VeyselCerav/kelime/internal/config"
	"github.com/VeyselCerav/kelime/internal/model"
	"github.com/VeyselCerav/kelime/internal/repository"
	"github.com/VeyselCerav/kelime/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubMailer 测试里吞掉外发邮件
type stubMailer struct {
	lastToken string
}

func (m *stubMailer) SendVerificationEmail(_, token string) error {
	m.lastToken = token
	return nil
}

func (m *stubMailer) SendPasswordResetEmail(_, token string) error {
	m.lastToken = token
	return nil
}

func authTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db
}

func newAuthService(t *testing.T) (*AuthService, *stubMailer, *repository.UserRepository) {
	t.Helper()

	users := repository.NewUserRepository(authTestDB(t))
	mailer := &stubMailer{}
	jwtCfg := config.JWTConfig{Secret: "auth-test-secret", ExpireTime: time.Hour}
	return NewAuthService(users, mailer, jwtCfg), mailer, users
}

func registerVerified(t *testing.T, s *AuthService, users *repository.UserRepository, username, email, password string) *model.User {
	t.Helper()

	user, err := s.Register(RegisterInput{Username: username, Email: email, Password: password})
	require.NoError(t, err)

	user.EmailVerified = true
	require.NoError(t, users.Update(user))
	return user
}

func TestRegister_NormalizesEmail(t *testing.T) {
	t.Parallel()

	s, mailer, _ := newAuthService(t)

	user, err := s.Register(RegisterInput{
		Username: "ayse",
		Email:    "  Ayse@Example.COM ",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "ayse@example.com", user.Email)
	assert.NotEmpty(t, mailer.lastToken)
}

func TestRegister_DuplicateRejected(t *testing.T) {
	t.Parallel()

	s, _, _ := newAuthService(t)

	_, err := s.Register(RegisterInput{Username: "ali", Email: "ali@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = s.Register(RegisterInput{Username: "ali", Email: "other@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, util.ErrUserExists)
}

func TestLogin_WithUsernameAndEmail(t *testing.T) {
	t.Parallel()

	s, _, users := newAuthService(t)
	registerVerified(t, s, users, "ali", "ali@example.com", "secret123")

	tests := []struct {
		name  string
		login string
	}{
		{name: "username", login: "ali"},
		{name: "email", login: "ali@example.com"},
		{name: "mixed-case email", login: "ALI@Example.COM"},
		{name: "padded email", login: "  Ali@example.com  "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			out, err := s.Login(LoginInput{Username: tt.login, Password: "secret123"})
			require.NoError(t, err)
			assert.NotEmpty(t, out.Token)
			assert.Equal(t, "ali", out.User.Username)
		})
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	s, _, users := newAuthService(t)
	registerVerified(t, s, users, "ali", "ali@example.com", "secret123")

	_, err := s.Login(LoginInput{Username: "ali", Password: "wrong"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLogin_UnverifiedEmail(t *testing.T) {
	t.Parallel()

	s, _, _ := newAuthService(t)

	_, err := s.Register(RegisterInput{Username: "ali", Email: "ali@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = s.Login(LoginInput{Username: "ali", Password: "secret123"})
	assert.ErrorIs(t, err, util.ErrEmailNotVerified)
}

func TestVerifyEmail(t *testing.T) {
	t.Parallel()

	s, mailer, _ := newAuthService(t)

	_, err := s.Register(RegisterInput{Username: "ali", Email: "ali@example.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, s.VerifyEmail(mailer.lastToken))

	// 令牌单次有效
	assert.ErrorIs(t, s.VerifyEmail(mailer.lastToken), util.ErrInvalidToken)

	out, err := s.Login(LoginInput{Username: "ali", Password: "secret123"})
	require.NoError(t, err)
	assert.True(t, out.User.EmailVerified)
}

func TestPasswordReset_RoundTrip(t *testing.T) {
	t.Parallel()

	s, mailer, users := newAuthService(t)
	registerVerified(t, s, users, "ali", "ali@example.com", "secret123")

	require.NoError(t, s.RequestPasswordReset("Ali@Example.com"))
	require.NotEmpty(t, mailer.lastToken)

	require.NoError(t, s.ConfirmPasswordReset(mailer.lastToken, "newpass456"))

	_, err := s.Login(LoginInput{Username: "ali", Password: "secret123"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	out, err := s.Login(LoginInput{Username: "ali", Password: "newpass456"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestPasswordReset_UnknownEmailSilent(t *testing.T) {
	t.Parallel()

	s, mailer, _ := newAuthService(t)

	require.NoError(t, s.RequestPasswordReset("nobody@example.com"))
	assert.Empty(t, mailer.lastToken)
}
