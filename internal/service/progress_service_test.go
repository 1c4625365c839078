package service

import (
	"testing"
	"time"

	mock_service "github.com/VeyselCerav/kelime/internal/service/mock"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRecordAnswer_Correct(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	learned := mock_service.NewMockLearnedWordRI(ctrl)
	unlearned := mock_service.NewMockUnlearnedWordRI(ctrl)
	goals := mock_service.NewMockGoalTrackerI(ctrl)

	learned.EXPECT().Upsert(uint(1), uint(5), true).Return(nil)
	unlearned.EXPECT().Delete(uint(1), uint(5)).Return(nil)
	goals.EXPECT().RecordAnswer(uint(1), true).Return(nil)

	s := NewProgressService(learned, unlearned, goals)
	require.NoError(t, s.RecordAnswer(1, 5, true))
}

func TestRecordAnswer_Wrong(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	learned := mock_service.NewMockLearnedWordRI(ctrl)
	unlearned := mock_service.NewMockUnlearnedWordRI(ctrl)
	goals := mock_service.NewMockGoalTrackerI(ctrl)

	learned.EXPECT().Upsert(uint(1), uint(5), false).Return(nil)
	unlearned.EXPECT().Upsert(uint(1), uint(5)).Return(nil)
	goals.EXPECT().RecordAnswer(uint(1), false).Return(nil)

	s := NewProgressService(learned, unlearned, goals)
	require.NoError(t, s.RecordAnswer(1, 5, false))
}

func TestMarkLearned_ClearsUnlearned(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	learned := mock_service.NewMockLearnedWordRI(ctrl)
	unlearned := mock_service.NewMockUnlearnedWordRI(ctrl)

	learned.EXPECT().Upsert(uint(2), uint(8), true).Return(nil)
	unlearned.EXPECT().Delete(uint(2), uint(8)).Return(nil)

	s := NewProgressService(learned, unlearned, nil)
	require.NoError(t, s.MarkLearned(2, 8))
}

func TestMarkUnlearned(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	learned := mock_service.NewMockLearnedWordRI(ctrl)
	unlearned := mock_service.NewMockUnlearnedWordRI(ctrl)

	unlearned.EXPECT().Upsert(uint(2), uint(8)).Return(nil)
	learned.EXPECT().Upsert(uint(2), uint(8), false).Return(nil)

	s := NewProgressService(learned, unlearned, nil)
	require.NoError(t, s.MarkUnlearned(2, 8))
}

func TestStreak(t *testing.T) {
	t.Parallel()

	now := day("2025-03-10").Add(15 * time.Hour)

	tests := []struct {
		name string
		days []time.Time
		want int
	}{
		{
			name: "no learned days",
			days: nil,
			want: 0,
		},
		{
			name: "only today",
			days: []time.Time{day("2025-03-10")},
			want: 1,
		},
		{
			name: "anchored yesterday",
			days: []time.Time{day("2025-03-09"), day("2025-03-08")},
			want: 2,
		},
		{
			name: "last activity before yesterday",
			days: []time.Time{day("2025-03-07"), day("2025-03-06")},
			want: 0,
		},
		{
			name: "five consecutive days",
			days: []time.Time{
				day("2025-03-10"), day("2025-03-09"), day("2025-03-08"),
				day("2025-03-07"), day("2025-03-06"),
			},
			want: 5,
		},
		{
			name: "gap breaks the streak",
			days: []time.Time{
				day("2025-03-10"), day("2025-03-09"),
				// 03-08 缺席
				day("2025-03-07"), day("2025-03-06"),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			learned := mock_service.NewMockLearnedWordRI(ctrl)
			learned.EXPECT().LearnedDays(uint(1)).Return(tt.days, nil)

			s := NewProgressService(learned, nil, nil)

			streak, err := s.Streak(1, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, streak)
		})
	}
}

func TestBadges(t *testing.T) {
	t.Parallel()

	s := NewProgressService(nil, nil, nil)

	badges := s.Badges(55, 7)
	require.Len(t, badges, 6)

	achieved := make(map[string]bool, len(badges))
	for _, b := range badges {
		achieved[b.Name] = b.Achieved
	}

	assert.True(t, achieved["Başlangıç"])
	assert.True(t, achieved["Çalışkan Öğrenci"])
	assert.False(t, achieved["Kelime Ustası"])
	assert.True(t, achieved["Azimli"])
	assert.True(t, achieved["Kararlı"])
	assert.False(t, achieved["Vazgeçmez"])
}

func TestBadges_NothingAchieved(t *testing.T) {
	t.Parallel()

	s := NewProgressService(nil, nil, nil)

	for _, b := range s.Badges(0, 0) {
		assert.False(t, b.Achieved, b.Name)
	}
}

func TestWeeklyHistogram(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	today := day("2025-03-10")

	counts := map[string]int{
		"2025-03-04": 3,
		"2025-03-07": 1,
		"2025-03-10": 8,
	}

	learned := mock_service.NewMockLearnedWordRI(ctrl)
	learned.EXPECT().
		DailyLearnedCounts(uint(1), day("2025-03-04"), day("2025-03-11")).
		Return(counts, nil)

	s := NewProgressService(learned, nil, nil)

	data, err := s.WeeklyHistogram(1, today)
	require.NoError(t, err)

	// 最旧的一天在前
	assert.Equal(t, []int{3, 0, 0, 1, 0, 0, 8}, data)
}

func TestOverview(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := day("2025-03-10").Add(9 * time.Hour)

	learned := mock_service.NewMockLearnedWordRI(ctrl)
	learned.EXPECT().CountLearned(uint(1)).Return(int64(12), nil)
	learned.EXPECT().LearnedDays(uint(1)).Return([]time.Time{
		day("2025-03-10"), day("2025-03-09"), day("2025-03-08"),
	}, nil)
	learned.EXPECT().
		DailyLearnedCounts(uint(1), gomock.Any(), gomock.Any()).
		Return(map[string]int{"2025-03-10": 4}, nil)

	s := NewProgressService(learned, nil, nil)

	overview, err := s.Overview(1, now)
	require.NoError(t, err)

	assert.Equal(t, int64(12), overview.TotalWords)
	assert.Equal(t, 3, overview.Streak)
	assert.Len(t, overview.Badges, 6)
	assert.Len(t, overview.WeeklyData, 7)
	assert.Equal(t, 4, overview.WeeklyData[6])
}
