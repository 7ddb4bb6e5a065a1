package services

import (
	"action-notes/extract"
	"action-notes/models"
	"action-notes/validator"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func itemsFor(descs []string, noteID *int64) []models.ActionItem {
	items := make([]models.ActionItem, len(descs))
	for i, d := range descs {
		items[i] = models.ActionItem{ID: int64(i + 1), Description: d, NoteID: noteID}
	}
	return items
}

func TestExtractionService_Extract(t *testing.T) {
	text := "Weekly sync\n- Set up database\n- set up database\n- Write docs"

	tests := []struct {
		name       string
		req        models.ExtractRequest
		mockSetup  func(*MockExtractionRepository, *MockExtractor)
		wantItems  []string
		wantNoteID *int64
	}{
		{
			name: "Success - Items deduplicated, not saved as note",
			req:  models.ExtractRequest{Text: text},
			mockSetup: func(repo *MockExtractionRepository, ext *MockExtractor) {
				ext.On("Extract", mock.Anything, text).
					Return([]string{"Set up database", "set up database", "  ", " Write docs "}, nil)
				repo.On("CreateActionItems", mock.Anything, []string{"Set up database", "Write docs"}, (*int64)(nil)).
					Return(itemsFor([]string{"Set up database", "Write docs"}, nil), nil)
			},
			wantItems: []string{"Set up database", "Write docs"},
		},
		{
			name: "Success - Saved as note",
			req:  models.ExtractRequest{Text: "\n  Weekly sync  \nTODO: ship it", SaveNote: true},
			mockSetup: func(repo *MockExtractionRepository, ext *MockExtractor) {
				ext.On("Extract", mock.Anything, "Weekly sync  \nTODO: ship it").Return([]string{"ship it"}, nil)
				repo.On("CreateNoteWithActionItems", mock.Anything, "Weekly sync", "Weekly sync  \nTODO: ship it", []string{"ship it"}).
					Return(&models.Note{ID: 7}, itemsFor([]string{"ship it"}, int64Ptr(7)), nil)
			},
			wantItems:  []string{"ship it"},
			wantNoteID: int64Ptr(7),
		},
		{
			name: "Success - Nothing found",
			req:  models.ExtractRequest{Text: "just a thought"},
			mockSetup: func(repo *MockExtractionRepository, ext *MockExtractor) {
				ext.On("Extract", mock.Anything, "just a thought").Return([]string{}, nil)
			},
			wantItems: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockExtractionRepository)
			mockExt := new(MockExtractor)
			tt.mockSetup(mockRepo, mockExt)

			service := NewExtractionService(mockRepo, mockExt, validator.New(), nil)
			result, err := service.Extract(context.Background(), tt.req)
			require.NoError(t, err)

			got := make([]string, 0, len(result.Items))
			for _, item := range result.Items {
				got = append(got, item.Description)
			}
			assert.Equal(t, tt.wantItems, got)
			assert.Equal(t, tt.wantNoteID, result.NoteID)
			assert.NotNil(t, result.Items)

			mockRepo.AssertExpectations(t)
			mockExt.AssertExpectations(t)
		})
	}
}

func TestExtractionService_ExtractorFailure(t *testing.T) {
	failures := []error{
		errors.New("connection refused"),
		extract.ErrMalformedResponse,
		context.DeadlineExceeded,
	}

	for _, cause := range failures {
		t.Run(cause.Error(), func(t *testing.T) {
			mockRepo := new(MockExtractionRepository)
			mockExt := new(MockExtractor)
			mockExt.On("Extract", mock.Anything, "text").Return(nil, cause)

			service := NewExtractionService(mockRepo, mockExt, validator.New(), nil)
			result, err := service.Extract(context.Background(), models.ExtractRequest{Text: "text", SaveNote: true})

			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrExtractionFailed)
			assert.ErrorIs(t, err, cause)
			mockRepo.AssertNotCalled(t, "CreateNoteWithActionItems", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestExtractionService_BlankText(t *testing.T) {
	mockExt := new(MockExtractor)
	service := NewExtractionService(new(MockExtractionRepository), mockExt, validator.New(), nil)

	_, err := service.Extract(context.Background(), models.ExtractRequest{Text: " \n\t "})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "text", verrs[0].Field)
	mockExt.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestExtractionService_TextLength(t *testing.T) {
	t.Run("Over the note content limit", func(t *testing.T) {
		mockExt := new(MockExtractor)
		mockRepo := new(MockExtractionRepository)
		service := NewExtractionService(mockRepo, mockExt, validator.New(), nil)

		_, err := service.Extract(context.Background(), models.ExtractRequest{
			Text:     "Title\n" + strings.Repeat("x", 12000),
			SaveNote: true,
		})

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "text", verrs[0].Field)
		assert.Equal(t, "max", verrs[0].Tag)
		mockExt.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "CreateNoteWithActionItems", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Limit applies after trimming", func(t *testing.T) {
		text := strings.Repeat("y", 10000)
		mockExt := new(MockExtractor)
		mockExt.On("Extract", mock.Anything, text).Return([]string{}, nil)
		mockRepo := new(MockExtractionRepository)
		mockRepo.On("CreateNoteWithActionItems", mock.Anything, mock.Anything, text, []string{}).
			Return(&models.Note{ID: 1}, []models.ActionItem{}, nil)

		service := NewExtractionService(mockRepo, mockExt, validator.New(), nil)
		result, err := service.Extract(context.Background(), models.ExtractRequest{Text: "  " + text + "\n\n", SaveNote: true})

		require.NoError(t, err)
		assert.Equal(t, int64Ptr(1), result.NoteID)
		mockRepo.AssertExpectations(t)
	})
}

func TestNoteTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "First line", text: "Title\nbody", want: "Title"},
		{name: "Skips blank lines", text: "\n   \n  Real title  \nbody", want: "Real title"},
		{name: "Truncated", text: strings.Repeat("t", 250), want: strings.Repeat("t", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, noteTitle(tt.text))
		})
	}
}
