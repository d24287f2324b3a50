package services

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"notes-api/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==================== MOCKS ====================

// MockRepository is a mock implementation of NoteRepository interface
type MockRepository struct {
	mock.Mock
}

// Ensure MockRepository implements NoteRepository interface
var _ NoteRepository = (*MockRepository)(nil)

func (m *MockRepository) CreateNote(ctx context.Context, text string) (*models.Note, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockRepository) ListNotes(ctx context.Context) ([]models.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockRepository) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockRepository) UpdateNote(ctx context.Context, id int64, text string) (*models.Note, error) {
	args := m.Called(ctx, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockRepository) DeleteNote(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// ==================== TESTS ====================

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CreateNote", ctx, "hello").Return(&models.Note{ID: 1, Text: "hello"}, nil)

		note, err := NewNoteService(repo).Create(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, &models.Note{ID: 1, Text: "hello"}, note)
		repo.AssertExpectations(t)
	})

	t.Run("Storage error propagates", func(t *testing.T) {
		repo := new(MockRepository)
		storageErr := errors.New("disk full")
		repo.On("CreateNote", ctx, "hello").Return(nil, storageErr)

		note, err := NewNoteService(repo).Create(ctx, "hello")
		assert.Nil(t, note)
		assert.ErrorIs(t, err, storageErr)
		assert.NotErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestNoteService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil from repository becomes empty slice", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListNotes", ctx).Return([]models.Note(nil), nil)

		notes, err := NewNoteService(repo).List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
	})

	t.Run("Returns repository notes", func(t *testing.T) {
		repo := new(MockRepository)
		expected := []models.Note{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}
		repo.On("ListNotes", ctx).Return(expected, nil)

		notes, err := NewNoteService(repo).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected, notes)
	})
}

func TestNoteService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		id            int64
		mockSetup     func(*MockRepository)
		expectedNote  *models.Note
		expectedError error
	}{
		{
			name: "Success - Note exists",
			id:   7,
			mockSetup: func(repo *MockRepository) {
				repo.On("GetNote", ctx, int64(7)).Return(&models.Note{ID: 7, Text: "seven"}, nil)
			},
			expectedNote: &models.Note{ID: 7, Text: "seven"},
		},
		{
			name: "Absent - Not found",
			id:   8,
			mockSetup: func(repo *MockRepository) {
				repo.On("GetNote", ctx, int64(8)).Return(nil, nil)
			},
			expectedError: ErrNoteNotFound,
		},
		{
			name: "Connection failure - Unavailable",
			id:   9,
			mockSetup: func(repo *MockRepository) {
				repo.On("GetNote", ctx, int64(9)).Return(nil, fmt.Errorf("get note 9: %w", driver.ErrBadConn))
			},
			expectedError: ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.mockSetup(repo)

			note, err := NewNoteService(repo).Get(ctx, tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, note)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedNote, note)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestNoteService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UpdateNote", ctx, int64(1), "new").Return(&models.Note{ID: 1, Text: "new"}, nil)

		note, err := NewNoteService(repo).Update(ctx, 1, "new")
		require.NoError(t, err)
		assert.Equal(t, int64(1), note.ID)
		assert.Equal(t, "new", note.Text)
	})

	t.Run("Absent - Not found", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UpdateNote", ctx, int64(2), "new").Return(nil, nil)

		note, err := NewNoteService(repo).Update(ctx, 2, "new")
		assert.ErrorIs(t, err, ErrNoteNotFound)
		assert.Nil(t, note)
		repo.AssertNotCalled(t, "CreateNote", mock.Anything, mock.Anything)
	})
}

func TestNoteService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("DeleteNote", ctx, int64(3)).Return(true, nil)

		assert.NoError(t, NewNoteService(repo).Delete(ctx, 3))
	})

	t.Run("Absent - Not found", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("DeleteNote", ctx, int64(4)).Return(false, nil)

		assert.ErrorIs(t, NewNoteService(repo).Delete(ctx, 4), ErrNoteNotFound)
	})

	t.Run("Storage error is not reported as not found", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("DeleteNote", ctx, int64(5)).Return(false, errors.New("constraint"))

		err := NewNoteService(repo).Delete(ctx, 5)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoteNotFound)
	})
}
