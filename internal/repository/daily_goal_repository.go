package repository

import (
	"time"

	"github.com/VeyselCerav/kelime/internal/model"

	"gorm.io/gorm"
)

type DailyGoalRepository struct {
	DB *gorm.DB
}

func NewDailyGoalRepository(db *gorm.DB) *DailyGoalRepository {
	return &DailyGoalRepository{DB: db}
}

func (r *DailyGoalRepository) Create(goal *model.DailyGoal) error {
	return r.DB.Create(goal).Error
}

func (r *DailyGoalRepository) Update(goal *model.DailyGoal) error {
	return r.DB.Save(goal).Error
}

// FindByUserAndDate date 会被截断到当天零点
func (r *DailyGoalRepository) FindByUserAndDate(userID uint, date time.Time) (*model.DailyGoal, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var goal model.DailyGoal
	err := r.DB.Where("user_id = ? AND date >= ? AND date < ?", userID, startOfDay, endOfDay).
		First(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *DailyGoalRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.DailyGoal{}).Count(&count).Error
	return count, err
}
