package service

import (
	"time"

	"github.com/VeyselCerav/kelime/internal/model"
	"github.com/VeyselCerav/kelime/internal/util"
	"github.com/VeyselCerav/kelime/pkg/monitoring"
)

type LearnedWordRI interface {
	Upsert(userID, wordID uint, isLearned bool) error
	CountLearned(userID uint) (int64, error)
	LearnedDays(userID uint) ([]time.Time, error)
	DailyLearnedCounts(userID uint, from, to time.Time) (map[string]int, error)
}

type UnlearnedWordRI interface {
	Upsert(userID, wordID uint) error
	Delete(userID, wordID uint) error
	FindByUser(userID uint) ([]model.UnlearnedWord, error)
}

type GoalTrackerI interface {
	RecordAnswer(userID uint, isCorrect bool) error
}

// ProgressService 维护用户的学习状态、连续天数和徽章
type ProgressService struct {
	learned   LearnedWordRI
	unlearned UnlearnedWordRI
	goals     GoalTrackerI
}

func NewProgressService(learned LearnedWordRI, unlearned UnlearnedWordRI, goals GoalTrackerI) *ProgressService {
	return &ProgressService{
		learned:   learned,
		unlearned: unlearned,
		goals:     goals,
	}
}

// RecordAnswer 答对：标记学会并从难词表移除；答错：标记未学会并加入难词表
// 两张表都按 (user, word) 做 upsert，不会产生重复行
func (s *ProgressService) RecordAnswer(userID, wordID uint, isCorrect bool) error {
	if isCorrect {
		if err := s.learned.Upsert(userID, wordID, true); err != nil {
			return err
		}
		if err := s.unlearned.Delete(userID, wordID); err != nil {
			return err
		}
		monitoring.WordsLearned.Inc()
	} else {
		if err := s.learned.Upsert(userID, wordID, false); err != nil {
			return err
		}
		if err := s.unlearned.Upsert(userID, wordID); err != nil {
			return err
		}
	}

	return s.goals.RecordAnswer(userID, isCorrect)
}

// MarkLearned 手动标记学会，不计入当日目标
func (s *ProgressService) MarkLearned(userID, wordID uint) error {
	if err := s.learned.Upsert(userID, wordID, true); err != nil {
		return err
	}
	if err := s.unlearned.Delete(userID, wordID); err != nil {
		return err
	}
	monitoring.WordsLearned.Inc()
	return nil
}

// MarkUnlearned 手动把单词标进难词表，同时将学习状态置为未学会
func (s *ProgressService) MarkUnlearned(userID, wordID uint) error {
	if err := s.unlearned.Upsert(userID, wordID); err != nil {
		return err
	}
	return s.learned.Upsert(userID, wordID, false)
}

// RemoveUnlearned 只从难词表移除，不改动学习状态
func (s *ProgressService) RemoveUnlearned(userID, wordID uint) error {
	return s.unlearned.Delete(userID, wordID)
}

// UnlearnedList 用户难词表，按加入时间倒序
func (s *ProgressService) UnlearnedList(userID uint) ([]model.UnlearnedWord, error) {
	return s.unlearned.FindByUser(userID)
}

// Streak 逐天回溯统计连续学习天数
// 最近一次学习早于昨天时直接归零；锚点取今天或昨天
func (s *ProgressService) Streak(userID uint, now time.Time) (int, error) {
	days, err := s.learned.LearnedDays(userID)
	if err != nil {
		return 0, err
	}
	if len(days) == 0 {
		return 0, nil
	}

	today := truncateDay(now)
	yesterday := today.AddDate(0, 0, -1)

	anchor := truncateDay(days[0])
	if anchor.Before(yesterday) {
		return 0, nil
	}

	streak := 0
	expected := anchor
	for _, d := range days {
		d = truncateDay(d)
		if d.Equal(expected) {
			streak++
			expected = expected.AddDate(0, 0, -1)
			continue
		}
		// 出现空档，连续中断
		break
	}

	return streak, nil
}

// Badges 阈值为固定产品表：单词量 10/50/100，连续天数 3/7/14
func (s *ProgressService) Badges(learnedCount int64, streak int) []model.Badge {
	return []model.Badge{
		{Name: "Başlangıç", Description: "10 kelime öğren", Achieved: learnedCount >= 10},
		{Name: "Çalışkan Öğrenci", Description: "50 kelime öğren", Achieved: learnedCount >= 50},
		{Name: "Kelime Ustası", Description: "100 kelime öğren", Achieved: learnedCount >= 100},
		{Name: "Azimli", Description: "3 gün üst üste çalış", Achieved: streak >= 3},
		{Name: "Kararlı", Description: "7 gün üst üste çalış", Achieved: streak >= 7},
		{Name: "Vazgeçmez", Description: "14 gün üst üste çalış", Achieved: streak >= 14},
	}
}

// WeeklyHistogram 截至 today 的最近 7 天每日学会条数，最旧的一天在前
func (s *ProgressService) WeeklyHistogram(userID uint, today time.Time) ([]int, error) {
	start := truncateDay(today).AddDate(0, 0, -6)
	end := truncateDay(today).Add(24 * time.Hour)

	counts, err := s.learned.DailyLearnedCounts(userID, start, end)
	if err != nil {
		return nil, err
	}

	data := make([]int, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i).Format(util.DateFormat)
		data[i] = counts[day]
	}
	return data, nil
}

// ProgressOverview GET /progress 的响应体
// swagger:model ProgressOverview
type ProgressOverview struct {
	TotalWords int64         `json:"totalWords"`
	Streak     int           `json:"streak"`
	Badges     []model.Badge `json:"badges"`
	WeeklyData []int         `json:"weeklyData"`
}

func (s *ProgressService) Overview(userID uint, now time.Time) (*ProgressOverview, error) {
	learnedCount, err := s.learned.CountLearned(userID)
	if err != nil {
		return nil, err
	}

	streak, err := s.Streak(userID, now)
	if err != nil {
		return nil, err
	}

	weekly, err := s.WeeklyHistogram(userID, now)
	if err != nil {
		return nil, err
	}

	return &ProgressOverview{
		TotalWords: learnedCount,
		Streak:     streak,
		Badges:     s.Badges(learnedCount, streak),
		WeeklyData: weekly,
	}, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
