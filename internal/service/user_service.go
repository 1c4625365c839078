package service

import (
	"errors"
	"time"

	"github.com/VeyselCerav/kelime/internal/model"
	"github.com/VeyselCerav/kelime/internal/repository"
	"github.com/VeyselCerav/kelime/internal/util"
	"github.com/VeyselCerav/kelime/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService 管理端的用户操作
type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) ListUsers() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

// DeleteUser 管理员不能删除自己，删除连带清理学习数据
func (s *UserService) DeleteUser(targetID, actorID uint) error {
	if targetID == actorID {
		return util.ErrSelfDelete
	}

	if _, err := s.UserRepo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	return s.UserRepo.DeleteCascade(targetID)
}

// PurgeExpiredTokens 由 gocron 定时触发
func (s *UserService) PurgeExpiredTokens() {
	purged, err := s.UserRepo.PurgeExpiredTokens(time.Now())
	if err != nil {
		logger.Log.Error("token purge failed", zap.Error(err))
		return
	}
	if purged > 0 {
		logger.Log.Info("purged expired tokens", zap.Int64("count", purged))
	}
}
