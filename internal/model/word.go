package model

// Word 词库中的一条单词记录，按周分组
// swagger:model Word
type Word struct {
	BaseModel
	English string `gorm:"size:100;not null" json:"english"`
	Turkish string `gorm:"size:100;not null" json:"turkish"`
	Week    int    `gorm:"not null;index" json:"week"`
}

func (Word) TableName() string {
	return "words"
}
