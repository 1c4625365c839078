package repository

import (
	"time"

	"github.com/VeyselCerav/kelime/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UnlearnedWordRepository struct {
	DB *gorm.DB
}

func NewUnlearnedWordRepository(db *gorm.DB) *UnlearnedWordRepository {
	return &UnlearnedWordRepository{DB: db}
}

// Upsert 与软删除的旧行冲突时复活该行，保证答错总能重新入表
func (r *UnlearnedWordRepository) Upsert(userID, wordID uint) error {
	row := model.UnlearnedWord{
		UserID: userID,
		WordID: wordID,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "word_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"deleted_at": nil, "updated_at": time.Now()}),
	}).Create(&row).Error
}

// Delete 物理删除，软删除会占住 (user_id, word_id) 唯一索引
// 行不存在时也视为成功
func (r *UnlearnedWordRepository) Delete(userID, wordID uint) error {
	return r.DB.Unscoped().
		Where("user_id = ? AND word_id = ?", userID, wordID).
		Delete(&model.UnlearnedWord{}).Error
}

func (r *UnlearnedWordRepository) FindByUser(userID uint) ([]model.UnlearnedWord, error) {
	var rows []model.UnlearnedWord
	err := r.DB.Where("user_id = ?", userID).
		Preload("Word").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *UnlearnedWordRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.UnlearnedWord{}).Count(&count).Error
	return count, err
}
