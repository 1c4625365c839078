package model

// UnlearnedWord 用户标记为记不住的单词，(user_id, word_id) 唯一
// 答对后删除，答错或手动标记时插入
type UnlearnedWord struct {
	BaseModel
	UserID uint `gorm:"not null;uniqueIndex:idx_user_word_unlearned" json:"userId"`
	WordID uint `gorm:"not null;uniqueIndex:idx_user_word_unlearned" json:"wordId"`
	Word   Word `gorm:"foreignKey:WordID" json:"word,omitempty"`
}

func (UnlearnedWord) TableName() string {
	return "unlearned_words"
}
