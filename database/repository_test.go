package database

import (
	"context"
	"testing"

	"notes-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetNote(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateNote(ctx, "first note")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Positive(t, created.ID)
	assert.Equal(t, "first note", created.Text)

	found, err := repo.GetNote(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, *created, *found)
}

func TestCreateNote_EmptyTextAllowed(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateNote(ctx, "")
	require.NoError(t, err)

	found, err := repo.GetNote(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "", found.Text)
}

func TestCreateNote_AssignsDistinctIDs(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	a, err := repo.CreateNote(ctx, "a")
	require.NoError(t, err)
	b, err := repo.CreateNote(ctx, "a")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestListNotes(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	t.Run("Empty table returns empty slice", func(t *testing.T) {
		notes, err := repo.ListNotes(ctx)
		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
	})

	t.Run("Contains every created note", func(t *testing.T) {
		var created []models.Note
		for _, text := range []string{"one", "two", "three"} {
			note, err := repo.CreateNote(ctx, text)
			require.NoError(t, err)
			created = append(created, *note)
		}

		notes, err := repo.ListNotes(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(notes), len(created))
		for _, note := range created {
			assert.Contains(t, notes, note)
		}
	})
}

func TestUpdateNote(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	t.Run("Replaces text and keeps id", func(t *testing.T) {
		created, err := repo.CreateNote(ctx, "before")
		require.NoError(t, err)

		updated, err := repo.UpdateNote(ctx, created.ID, "after")
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "after", updated.Text)

		found, err := repo.GetNote(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "after", found.Text)
	})

	t.Run("Unknown id is absent and creates nothing", func(t *testing.T) {
		before, err := repo.ListNotes(ctx)
		require.NoError(t, err)

		updated, err := repo.UpdateNote(ctx, 999999, "ghost")
		require.NoError(t, err)
		assert.Nil(t, updated)

		after, err := repo.ListNotes(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})
}

func TestDeleteNote(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateNote(ctx, "to delete")
	require.NoError(t, err)

	deleted, err := repo.DeleteNote(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	t.Run("Get after delete is absent", func(t *testing.T) {
		found, err := repo.GetNote(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Update after delete is absent", func(t *testing.T) {
		updated, err := repo.UpdateNote(ctx, created.ID, "revived")
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("Second delete is absent", func(t *testing.T) {
		deleted, err := repo.DeleteNote(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestGetNote_Missing(t *testing.T) {
	repo := setupTestRepo(t)

	found, err := repo.GetNote(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, found)
}
