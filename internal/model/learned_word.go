package model

// LearnedWord 记录用户对单个单词的学习状态，(user_id, word_id) 唯一
type LearnedWord struct {
	BaseModel
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_word_learned" json:"userId"`
	WordID    uint `gorm:"not null;uniqueIndex:idx_user_word_learned" json:"wordId"`
	IsLearned bool `gorm:"not null;default:false" json:"isLearned"`
	Word      Word `gorm:"foreignKey:WordID" json:"word,omitempty"`
}

func (LearnedWord) TableName() string {
	return "learned_words"
}
