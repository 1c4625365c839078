package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/VeyselCerav/kelime/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestUser(username, email string) *model.User {
	return &model.User{
		Username:  username,
		Email:     email,
		Password:  "hashed",
		Role:      model.Member,
		LastLogin: time.Now(),
	}
}

func TestDeleteCascade_RemovesLearningData(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	users := NewUserRepository(db)
	learned := NewLearnedWordRepository(db)
	unlearned := NewUnlearnedWordRepository(db)
	goals := NewDailyGoalRepository(db)

	user := newTestUser("ali", "ali@example.com")
	require.NoError(t, users.Create(user))

	require.NoError(t, learned.Upsert(user.ID, 1, true))
	require.NoError(t, unlearned.Upsert(user.ID, 2))
	require.NoError(t, goals.Create(&model.DailyGoal{UserID: user.ID, Date: time.Now(), Target: 10}))

	require.NoError(t, users.DeleteCascade(user.ID))

	_, err := users.FindByID(user.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	count, err := learned.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	rows, err := unlearned.FindByUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	goalCount, err := goals.Count()
	require.NoError(t, err)
	assert.Zero(t, goalCount)
}

func TestDeleteCascade_FreesUniqueColumns(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	users := NewUserRepository(db)

	first := newTestUser("ali", "ali@example.com")
	require.NoError(t, users.Create(first))
	require.NoError(t, users.DeleteCascade(first.ID))

	// 删除后同名同邮箱必须可以重新注册
	second := newTestUser("ali", "ali@example.com")
	require.NoError(t, users.Create(second))

	found, err := users.FindByUsername("ali")
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
}
