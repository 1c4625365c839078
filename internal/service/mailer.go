package service

import (
	"github.com/VeyselCerav/kelime/pkg/logger"

	"go.uber.org/zap"
)

// Mailer 投递验证与重置邮件的出口
type Mailer interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
}

// LogMailer 未配置 SMTP 时的兜底，只记日志
type LogMailer struct {
	BaseURL string
}

func NewLogMailer(baseURL string) *LogMailer {
	return &LogMailer{BaseURL: baseURL}
}

func (m *LogMailer) SendVerificationEmail(to, token string) error {
	logger.Log.Info("verification email",
		zap.String("to", to),
		zap.String("link", m.BaseURL+"/api/auth/verify?token="+token),
	)
	return nil
}

func (m *LogMailer) SendPasswordResetEmail(to, token string) error {
	logger.Log.Info("password reset email",
		zap.String("to", to),
		zap.String("link", m.BaseURL+"/reset-password?token="+token),
	)
	return nil
}
