package service

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/VeyselCerav/kelime/internal/model"
	mock_service "github.com/VeyselCerav/kelime/internal/service/mock"
	"github.com/VeyselCerav/kelime/internal/util"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testWords(n int) []model.Word {
	words := make([]model.Word, 0, n)
	for i := 1; i <= n; i++ {
		w := model.Word{
			English: fmt.Sprintf("english-%d", i),
			Turkish: fmt.Sprintf("turkish-%d", i),
			Week:    1 + (i-1)/10,
		}
		w.ID = uint(i)
		words = append(words, w)
	}
	return words
}

func TestGenerateQuestions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		poolSize  int
		limit     int
		wantCount int
		wantErr   error
	}{
		{
			name:      "pool larger than limit",
			poolSize:  20,
			limit:     10,
			wantCount: 10,
		},
		{
			name:      "pool smaller than limit",
			poolSize:  6,
			limit:     10,
			wantCount: 6,
		},
		{
			name:      "limit zero falls back to default",
			poolSize:  15,
			limit:     0,
			wantCount: util.DefaultQuizLimit,
		},
		{
			name:      "exactly four words",
			poolSize:  4,
			limit:     10,
			wantCount: 4,
		},
		{
			name:     "too few words",
			poolSize: 3,
			limit:    10,
			wantErr:  util.ErrInsufficientWords,
		},
		{
			name:     "empty pool",
			poolSize: 0,
			limit:    10,
			wantErr:  util.ErrInsufficientWords,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			words := testWords(tt.poolSize)
			s := NewQuizService(nil, nil, rand.New(rand.NewSource(42)))

			questions, err := s.GenerateQuestions(words, words, tt.limit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, questions, tt.wantCount)

			for _, q := range questions {
				assert.Len(t, q.Options, util.QuizOptionCount)
				assert.Contains(t, q.Options, q.Answer)
				assert.NotZero(t, q.WordID)
				assert.Contains(t, q.Question, "kelimesinin")
			}
		})
	}
}

func TestGenerateQuestions_FourWordPool(t *testing.T) {
	t.Parallel()

	words := []model.Word{
		{English: "cat", Turkish: "kedi"},
		{English: "dog", Turkish: "köpek"},
		{English: "bird", Turkish: "kuş"},
		{English: "fish", Turkish: "balık"},
	}
	for i := range words {
		words[i].ID = uint(i + 1)
	}

	s := NewQuizService(nil, nil, rand.New(rand.NewSource(11)))

	questions, err := s.GenerateQuestions(words, words, 4)
	require.NoError(t, err)
	require.Len(t, questions, 4)

	seen := make(map[uint]bool)
	for _, q := range questions {
		seen[q.WordID] = true
		assert.Len(t, q.Options, 4)
		assert.Contains(t, q.Options, q.Answer)
	}
	assert.Len(t, seen, 4, "each word appears exactly once")
}

func TestGenerateQuestions_DistractorsExcludeAnswerWord(t *testing.T) {
	t.Parallel()

	words := testWords(10)
	s := NewQuizService(nil, nil, rand.New(rand.NewSource(7)))

	questions, err := s.GenerateQuestions(words, words, 10)
	require.NoError(t, err)

	byID := make(map[uint]model.Word, len(words))
	for _, w := range words {
		byID[w.ID] = w
	}

	for _, q := range questions {
		correct := byID[q.WordID].Turkish
		assert.Equal(t, correct, q.Answer)

		// 正确答案只出现一次，干扰项不会重复抽到本题单词
		seen := 0
		for _, opt := range q.Options {
			if opt == correct {
				seen++
			}
		}
		assert.Equal(t, 1, seen)
	}
}

func TestGenerateQuestions_ShufflesPool(t *testing.T) {
	t.Parallel()

	words := testWords(50)
	s := NewQuizService(nil, nil, rand.New(rand.NewSource(1)))

	questions, err := s.GenerateQuestions(words, words, 50)
	require.NoError(t, err)
	require.Len(t, questions, 50)

	inOrder := true
	for i, q := range questions {
		if q.WordID != uint(i+1) {
			inOrder = false
			break
		}
	}
	assert.False(t, inOrder, "expected shuffled question order")
}

func TestQuestions_WeekFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	all := testWords(20)
	weekTwo := all[10:20]

	source := mock_service.NewMockWordSourceI(ctrl)
	source.EXPECT().FindByWeek(2).Return(weekTwo, nil)
	source.EXPECT().FindAll().Return(all, nil)

	s := NewQuizService(source, nil, rand.New(rand.NewSource(3)))

	questions, err := s.Questions(2, 10)
	require.NoError(t, err)
	require.Len(t, questions, 10)

	// 题目只来自指定周次，干扰项可来自整个词库
	for _, q := range questions {
		assert.GreaterOrEqual(t, q.WordID, uint(11))
	}
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	words := testWords(4)

	source := mock_service.NewMockWordSourceI(ctrl)
	recorder := mock_service.NewMockAnswerRecorderI(ctrl)

	for i := range words {
		w := words[i]
		source.EXPECT().FindByID(w.ID).Return(&w, nil)
	}

	// 前三题答对，最后一题答错
	recorder.EXPECT().RecordAnswer(uint(9), uint(1), true).Return(nil)
	recorder.EXPECT().RecordAnswer(uint(9), uint(2), true).Return(nil)
	recorder.EXPECT().RecordAnswer(uint(9), uint(3), true).Return(nil)
	recorder.EXPECT().RecordAnswer(uint(9), uint(4), false).Return(nil)

	s := NewQuizService(source, recorder, rand.New(rand.NewSource(5)))

	answers := []QuizAnswer{
		{WordID: 1, Answer: "turkish-1"},
		{WordID: 2, Answer: "turkish-2"},
		{WordID: 3, Answer: "turkish-3"},
		{WordID: 4, Answer: "wrong"},
	}

	result, err := s.Submit(9, answers)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 3, result.Correct)
	assert.Equal(t, 1, result.Wrong)
	assert.Equal(t, 75, result.Score)
}

func TestSubmit_Empty(t *testing.T) {
	t.Parallel()

	s := NewQuizService(nil, nil, rand.New(rand.NewSource(1)))

	_, err := s.Submit(1, nil)
	assert.ErrorIs(t, err, util.ErrEmptyQuizSubmission)
}

func TestSubmit_UnknownWord(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_service.NewMockWordSourceI(ctrl)
	source.EXPECT().FindByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	s := NewQuizService(source, nil, rand.New(rand.NewSource(1)))

	_, err := s.Submit(1, []QuizAnswer{{WordID: 99, Answer: "x"}})
	assert.ErrorIs(t, err, util.ErrWordNotFound)
}

func TestSubmit_SourceFailurePropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbErr := fmt.Errorf("connection reset")

	source := mock_service.NewMockWordSourceI(ctrl)
	source.EXPECT().FindByID(uint(1)).Return(nil, dbErr)

	s := NewQuizService(source, nil, rand.New(rand.NewSource(1)))

	// 临时故障不能伪装成 404
	_, err := s.Submit(1, []QuizAnswer{{WordID: 1, Answer: "x"}})
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, util.ErrWordNotFound)
}
