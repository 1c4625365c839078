package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/VeyselCerav/kelime/internal/model"
	"github.com/VeyselCerav/kelime/internal/repository"
	"github.com/VeyselCerav/kelime/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	wordCacheTTL     = 5 * time.Minute
	wordCacheKeyAll  = "words:all"
	wordCacheKeyWeek = "words:week:%d"
)

// WordService 词库的查询与管理，列表走 Redis 缓存
type WordService struct {
	WordRepo *repository.WordRepository
	Redis    *redis.Client
}

func NewWordService(wordRepo *repository.WordRepository, rdb *redis.Client) *WordService {
	return &WordService{
		WordRepo: wordRepo,
		Redis:    rdb,
	}
}

// List week 为 0 时返回全部
func (s *WordService) List(ctx context.Context, week int) ([]model.Word, error) {
	key := wordCacheKeyAll
	if week > 0 {
		key = fmt.Sprintf(wordCacheKeyWeek, week)
	}

	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, key).Result()
		if err == nil {
			var words []model.Word
			if jsonErr := json.Unmarshal([]byte(val), &words); jsonErr == nil {
				return words, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("word cache read failed", zap.Error(err))
		}
	}

	var (
		words []model.Word
		err   error
	)
	if week > 0 {
		words, err = s.WordRepo.FindByWeek(week)
	} else {
		words, err = s.WordRepo.FindAll()
	}
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, jsonErr := json.Marshal(words); jsonErr == nil {
			if err := s.Redis.Set(ctx, key, data, wordCacheTTL).Err(); err != nil {
				logger.Log.Warn("word cache write failed", zap.Error(err))
			}
		}
	}

	return words, nil
}

func (s *WordService) Create(ctx context.Context, english, turkish string, week int) (*model.Word, error) {
	word := &model.Word{
		English: strings.TrimSpace(english),
		Turkish: strings.TrimSpace(turkish),
		Week:    week,
	}
	if err := s.WordRepo.Create(word); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, word.Week)
	return word, nil
}

func (s *WordService) Delete(ctx context.Context, id uint) error {
	word, err := s.WordRepo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.WordRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateCache(ctx, word.Week)
	return nil
}

// ImportResult xlsx 批量导入的统计
// swagger:model ImportResult
type ImportResult struct {
	TotalProcessed int      `json:"totalProcessed"`
	Created        int      `json:"created"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors,omitempty"`
}

// ImportXLSX 第一个工作表，跳过表头，列依次为 english / turkish / week
func (s *WordService) ImportXLSX(ctx context.Context, reader io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	weeks := make(map[int]bool)

	for i, row := range rows {
		if i == 0 {
			// 表头
			continue
		}
		result.TotalProcessed++

		if len(row) < 3 {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: expected 3 columns", i+1))
			continue
		}

		english := strings.TrimSpace(row[0])
		turkish := strings.TrimSpace(row[1])
		week, convErr := strconv.Atoi(strings.TrimSpace(row[2]))
		if english == "" || turkish == "" || convErr != nil || week <= 0 {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid values", i+1))
			continue
		}

		word := &model.Word{English: english, Turkish: turkish, Week: week}
		if err := s.WordRepo.Create(word); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		result.Created++
		weeks[week] = true
	}

	for week := range weeks {
		s.invalidateCache(ctx, week)
	}
	if len(weeks) == 0 {
		s.invalidateCache(ctx, 0)
	}

	return result, nil
}

func (s *WordService) invalidateCache(ctx context.Context, week int) {
	if s.Redis == nil {
		return
	}
	keys := []string{wordCacheKeyAll}
	if week > 0 {
		keys = append(keys, fmt.Sprintf(wordCacheKeyWeek, week))
	}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("word cache invalidation failed", zap.Error(err))
	}
}
