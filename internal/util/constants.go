package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	// DefaultDailyTarget 默认每日单词目标
	DefaultDailyTarget = 10
	// DefaultQuizLimit 一次测验默认题目数
	DefaultQuizLimit = 10
	// MinQuizPoolSize 生成选择题所需的最小词库大小
	MinQuizPoolSize = 4
	// QuizOptionCount 每道题的选项数
	QuizOptionCount = 4
)

// 密码重置限流：15 分钟内每 IP 最多 3 次
const (
	ResetPasswordMaxAttempts = 3
	ResetPasswordWindowMin   = 15
)
