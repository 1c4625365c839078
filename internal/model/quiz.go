package model

// Question 由词库派生的选择题，不持久化
// swagger:model Question
type Question struct {
	ID       uint     `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	WordID   uint     `json:"wordId"`
}

// QuizResult 单次测验的成绩汇总
// swagger:model QuizResult
type QuizResult struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
	Score   int `json:"score"`
}

// Badge 达到单词量或连续学习天数阈值后点亮的徽章
// swagger:model Badge
type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Achieved    bool   `json:"achieved"`
}
