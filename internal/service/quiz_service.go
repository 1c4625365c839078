package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/VeyselCerav/kelime/internal/model"
	"github.com/VeyselCerav/kelime/internal/util"

	"gorm.io/gorm"
)

type WordSourceI interface {
	FindAll() ([]model.Word, error)
	FindByWeek(week int) ([]model.Word, error)
	FindByID(id uint) (*model.Word, error)
}

type AnswerRecorderI interface {
	RecordAnswer(userID, wordID uint, isCorrect bool) error
}

// QuizService 从词库生成选择题并批改提交的答案
type QuizService struct {
	words    WordSourceI
	progress AnswerRecorderI

	mu  sync.Mutex
	rng *rand.Rand
}

func NewQuizService(words WordSourceI, progress AnswerRecorderI, rng *rand.Rand) *QuizService {
	return &QuizService{
		words:    words,
		progress: progress,
		rng:      rng,
	}
}

// Questions week 为 0 时使用全部词库
func (s *QuizService) Questions(week, limit int) ([]model.Question, error) {
	var (
		pool []model.Word
		err  error
	)
	if week > 0 {
		pool, err = s.words.FindByWeek(week)
	} else {
		pool, err = s.words.FindAll()
	}
	if err != nil {
		return nil, err
	}

	all := pool
	if week > 0 {
		all, err = s.words.FindAll()
		if err != nil {
			return nil, err
		}
	}

	return s.GenerateQuestions(pool, all, limit)
}

// GenerateQuestions 把 ≥4 个单词的词池变成乱序选择题
// 干扰项从 all 中不放回抽取；如果词库本身有重复译文，选项允许重复文本
func (s *QuizService) GenerateQuestions(pool, all []model.Word, limit int) ([]model.Question, error) {
	if len(pool) < util.MinQuizPoolSize {
		return nil, util.ErrInsufficientWords
	}
	if limit <= 0 {
		limit = util.DefaultQuizLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shuffled := make([]model.Word, len(pool))
	copy(shuffled, pool)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if limit < len(shuffled) {
		shuffled = shuffled[:limit]
	}

	questions := make([]model.Question, 0, len(shuffled))
	for _, w := range shuffled {
		others := make([]model.Word, 0, len(all))
		for _, o := range all {
			if o.ID != w.ID {
				others = append(others, o)
			}
		}
		if len(others) < util.QuizOptionCount-1 {
			return nil, util.ErrInsufficientWords
		}

		s.rng.Shuffle(len(others), func(i, j int) {
			others[i], others[j] = others[j], others[i]
		})

		options := make([]string, 0, util.QuizOptionCount)
		for _, o := range others[:util.QuizOptionCount-1] {
			options = append(options, o.Turkish)
		}

		// 正确答案插入随机位置
		pos := s.rng.Intn(util.QuizOptionCount)
		options = append(options, "")
		copy(options[pos+1:], options[pos:])
		options[pos] = w.Turkish

		questions = append(questions, model.Question{
			ID:       w.ID,
			Question: fmt.Sprintf("\"%s\" kelimesinin Türkçe anlamı nedir?", w.English),
			Options:  options,
			Answer:   w.Turkish,
			WordID:   w.ID,
		})
	}

	return questions, nil
}

// QuizAnswer 客户端提交的单题答案
type QuizAnswer struct {
	WordID uint   `json:"wordId" binding:"required"`
	Answer string `json:"answer" binding:"required"`
}

// Submit 批改答卷，逐题写入学习进度，返回成绩汇总
func (s *QuizService) Submit(userID uint, answers []QuizAnswer) (*model.QuizResult, error) {
	if len(answers) == 0 {
		return nil, util.ErrEmptyQuizSubmission
	}

	result := &model.QuizResult{Total: len(answers)}
	for _, a := range answers {
		word, err := s.words.FindByID(a.WordID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrWordNotFound
			}
			return nil, err
		}

		isCorrect := a.Answer == word.Turkish
		if isCorrect {
			result.Correct++
		} else {
			result.Wrong++
		}

		if err := s.progress.RecordAnswer(userID, a.WordID, isCorrect); err != nil {
			return nil, err
		}
	}

	result.Score = result.Correct * 100 / result.Total
	return result, nil
}
