package service

import (
	"time"

	"github.com/VeyselCerav/kelime/internal/repository"
)

// StatsService 管理端统计面板
type StatsService struct {
	UserRepo      *repository.UserRepository
	WordRepo      *repository.WordRepository
	LearnedRepo   *repository.LearnedWordRepository
	UnlearnedRepo *repository.UnlearnedWordRepository
	GoalRepo      *repository.DailyGoalRepository
}

func NewStatsService(
	userRepo *repository.UserRepository,
	wordRepo *repository.WordRepository,
	learnedRepo *repository.LearnedWordRepository,
	unlearnedRepo *repository.UnlearnedWordRepository,
	goalRepo *repository.DailyGoalRepository,
) *StatsService {
	return &StatsService{
		UserRepo:      userRepo,
		WordRepo:      wordRepo,
		LearnedRepo:   learnedRepo,
		UnlearnedRepo: unlearnedRepo,
		GoalRepo:      goalRepo,
	}
}

// swagger:model AdminStatistics
type AdminStatistics struct {
	TotalUsers       int64                  `json:"totalUsers"`
	TotalWords       int64                  `json:"totalWords"`
	TotalLearned     int64                  `json:"totalLearned"`
	TotalUnlearned   int64                  `json:"totalUnlearned"`
	TotalDailyGoals  int64                  `json:"totalDailyGoals"`
	WordsByWeek      []repository.WeekCount `json:"wordsByWeek"`
	LearnedLast7Days int64                  `json:"learnedLast7Days"`
}

func (s *StatsService) Statistics(now time.Time) (*AdminStatistics, error) {
	totalUsers, err := s.UserRepo.Count()
	if err != nil {
		return nil, err
	}

	totalWords, err := s.WordRepo.Count()
	if err != nil {
		return nil, err
	}

	totalLearned, err := s.LearnedRepo.Count()
	if err != nil {
		return nil, err
	}

	totalUnlearned, err := s.UnlearnedRepo.Count()
	if err != nil {
		return nil, err
	}

	totalGoals, err := s.GoalRepo.Count()
	if err != nil {
		return nil, err
	}

	byWeek, err := s.WordRepo.CountByWeek()
	if err != nil {
		return nil, err
	}

	since := truncateDay(now).AddDate(0, 0, -6)
	learned, err := s.LearnedRepo.CountLearnedSince(since)
	if err != nil {
		return nil, err
	}

	return &AdminStatistics{
		TotalUsers:       totalUsers,
		TotalWords:       totalWords,
		TotalLearned:     totalLearned,
		TotalUnlearned:   totalUnlearned,
		TotalDailyGoals:  totalGoals,
		WordsByWeek:      byWeek,
		LearnedLast7Days: learned,
	}, nil
}
