package service

import (
	"errors"
	"time"

	"github.com/VeyselCerav/kelime/internal/model"

	"gorm.io/gorm"
)

type DailyGoalRI interface {
	FindByUserAndDate(userID uint, date time.Time) (*model.DailyGoal, error)
	Create(goal *model.DailyGoal) error
	Update(goal *model.DailyGoal) error
}

// DailyGoalService 每用户每天一条目标记录，首次访问惰性创建
// completed 始终由 achieved >= target 推导
type DailyGoalService struct {
	repo          DailyGoalRI
	defaultTarget int
}

func NewDailyGoalService(repo DailyGoalRI, defaultTarget int) *DailyGoalService {
	return &DailyGoalService{
		repo:          repo,
		defaultTarget: defaultTarget,
	}
}

func (s *DailyGoalService) Today(userID uint, now time.Time) (*model.DailyGoal, error) {
	goal, err := s.repo.FindByUserAndDate(userID, now)
	if err == nil {
		return goal, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	goal = &model.DailyGoal{
		UserID: userID,
		Date:   truncateDay(now),
		Target: s.defaultTarget,
	}
	if err := s.repo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Update PUT 语义：nil 字段保持原值
func (s *DailyGoalService) Update(userID uint, now time.Time, target, achieved *int) (*model.DailyGoal, error) {
	goal, err := s.Today(userID, now)
	if err != nil {
		return nil, err
	}

	if target != nil {
		goal.Target = *target
	}
	if achieved != nil {
		goal.Achieved = *achieved
	}
	goal.Completed = goal.Achieved >= goal.Target

	if err := s.repo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// RecordAnswer 实现 GoalTrackerI：答对计入当日进度
func (s *DailyGoalService) RecordAnswer(userID uint, isCorrect bool) error {
	goal, err := s.Today(userID, time.Now())
	if err != nil {
		return err
	}

	if isCorrect {
		goal.Achieved++
	}
	goal.Completed = goal.Achieved >= goal.Target

	return s.repo.Update(goal)
}
