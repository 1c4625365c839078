package repository

import (
	"time"

	"github.com/VeyselCerav/kelime/internal/model"
	"github.com/VeyselCerav/kelime/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LearnedWordRepository struct {
	DB *gorm.DB
}

func NewLearnedWordRepository(db *gorm.DB) *LearnedWordRepository {
	return &LearnedWordRepository{DB: db}
}

// Upsert 每个 (user, word) 只保留一行，重复提交只更新状态
func (r *LearnedWordRepository) Upsert(userID, wordID uint, isLearned bool) error {
	row := model.LearnedWord{
		UserID:    userID,
		WordID:    wordID,
		IsLearned: isLearned,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "word_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"is_learned": isLearned, "updated_at": time.Now()}),
	}).Create(&row).Error
}

func (r *LearnedWordRepository) Find(userID, wordID uint) (*model.LearnedWord, error) {
	var row model.LearnedWord
	err := r.DB.Where("user_id = ? AND word_id = ?", userID, wordID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *LearnedWordRepository) CountLearned(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LearnedWord{}).
		Where("user_id = ? AND is_learned = ?", userID, true).
		Count(&count).Error
	return count, err
}

// LearnedDays 用户有学会记录的所有日期，去重后按日期倒序
func (r *LearnedWordRepository) LearnedDays(userID uint) ([]time.Time, error) {
	var raw []string
	err := r.DB.Model(&model.LearnedWord{}).
		Where("user_id = ? AND is_learned = ?", userID, true).
		Select("DATE(updated_at) as day").
		Group("day").
		Order("day DESC").
		Pluck("day", &raw).Error
	if err != nil {
		return nil, err
	}

	days := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		// MySQL DATE() 可能带时间部分序列化，只取日期前缀
		if len(s) > len(util.DateFormat) {
			s = s[:len(util.DateFormat)]
		}
		d, err := time.ParseInLocation(util.DateFormat, s, time.Local)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// DailyLearnedCounts 指定区间内每天的学会条数，key 为 util.DateFormat
func (r *LearnedWordRepository) DailyLearnedCounts(userID uint, from, to time.Time) (map[string]int, error) {
	type dayCount struct {
		Day   string
		Count int
	}
	var rows []dayCount
	err := r.DB.Model(&model.LearnedWord{}).
		Where("user_id = ? AND is_learned = ? AND updated_at >= ? AND updated_at < ?", userID, true, from, to).
		Select("DATE(updated_at) as day, COUNT(id) as count").
		Group("day").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		day := row.Day
		if len(day) > len(util.DateFormat) {
			day = day[:len(util.DateFormat)]
		}
		counts[day] = row.Count
	}
	return counts, nil
}

func (r *LearnedWordRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.LearnedWord{}).Count(&count).Error
	return count, err
}

func (r *LearnedWordRepository) CountLearnedSince(since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LearnedWord{}).
		Where("is_learned = ? AND updated_at >= ?", true, since).
		Count(&count).Error
	return count, err
}
