package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlearnedUpsert_Idempotent(t *testing.T) {
	t.Parallel()

	repo := NewUnlearnedWordRepository(testDB(t))

	require.NoError(t, repo.Upsert(1, 5))
	require.NoError(t, repo.Upsert(1, 5))

	rows, err := repo.FindByUser(1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestUnlearnedUpsert_AfterDelete(t *testing.T) {
	t.Parallel()

	repo := NewUnlearnedWordRepository(testDB(t))

	// 答错入表 → 答对移除 → 再次答错必须重新入表
	require.NoError(t, repo.Upsert(1, 5))
	require.NoError(t, repo.Delete(1, 5))

	rows, err := repo.FindByUser(1)
	require.NoError(t, err)
	require.Empty(t, rows)

	require.NoError(t, repo.Upsert(1, 5))

	rows, err = repo.FindByUser(1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, uint(5), rows[0].WordID)
}

func TestUnlearnedDelete_MissingRow(t *testing.T) {
	t.Parallel()

	repo := NewUnlearnedWordRepository(testDB(t))

	assert.NoError(t, repo.Delete(1, 99))
}

func TestUnlearnedFindByUser_ScopedToUser(t *testing.T) {
	t.Parallel()

	repo := NewUnlearnedWordRepository(testDB(t))

	require.NoError(t, repo.Upsert(1, 5))
	require.NoError(t, repo.Upsert(2, 5))
	require.NoError(t, repo.Upsert(2, 6))

	rows, err := repo.FindByUser(2)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
