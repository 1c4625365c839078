package model

import "time"

// DailyGoal 每个用户每天一条，首次访问时惰性创建
// swagger:model DailyGoal
type DailyGoal struct {
	BaseModel
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_goal_date" json:"userId"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_goal_date" json:"date"`
	Target    int       `gorm:"not null;default:10" json:"target"`
	Achieved  int       `gorm:"not null;default:0" json:"achieved"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
}

func (DailyGoal) TableName() string {
	return "daily_goals"
}
