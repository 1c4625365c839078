package repository

import (
	"github.com/VeyselCerav/kelime/internal/model"

	"gorm.io/gorm"
)

type WordRepository struct {
	DB *gorm.DB
}

func NewWordRepository(db *gorm.DB) *WordRepository {
	return &WordRepository{DB: db}
}

func (r *WordRepository) Create(word *model.Word) error {
	return r.DB.Create(word).Error
}

func (r *WordRepository) FindByID(id uint) (*model.Word, error) {
	var word model.Word
	err := r.DB.First(&word, id).Error
	if err != nil {
		return nil, err
	}
	return &word, nil
}

func (r *WordRepository) FindAll() ([]model.Word, error) {
	var words []model.Word
	err := r.DB.Order("created_at DESC").Find(&words).Error
	return words, err
}

func (r *WordRepository) FindByWeek(week int) ([]model.Word, error) {
	var words []model.Word
	err := r.DB.Where("week = ?", week).Order("created_at DESC").Find(&words).Error
	return words, err
}

func (r *WordRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.Word{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WordRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Word{}).Count(&count).Error
	return count, err
}

// WeekCount 每周词条数，按周升序
type WeekCount struct {
	Week  int   `json:"week"`
	Count int64 `json:"wordCount"`
}

func (r *WordRepository) CountByWeek() ([]WeekCount, error) {
	var counts []WeekCount
	err := r.DB.Model(&model.Word{}).
		Select("week, COUNT(id) as count").
		Group("week").
		Order("week ASC").
		Scan(&counts).Error
	return counts, err
}
