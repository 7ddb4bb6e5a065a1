package services

import (
	"action-notes/extract"
	"action-notes/models"
	"context"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockNoteRepository is a mock implementation of NoteRepository interface
type MockNoteRepository struct {
	mock.Mock
}

// Ensure MockNoteRepository implements NoteRepository interface
var _ NoteRepository = (*MockNoteRepository)(nil)

func (m *MockNoteRepository) CreateNote(ctx context.Context, title, content string) (*models.Note, error) {
	args := m.Called(ctx, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) ListNotes(ctx context.Context, q models.NoteQuery) ([]models.Note, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteRepository) CountNotes(ctx context.Context, query string) (int, error) {
	args := m.Called(ctx, query)
	return args.Int(0), args.Error(1)
}

func (m *MockNoteRepository) UpdateNote(ctx context.Context, id int64, patch models.NotePatch) (*models.Note, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) DeleteNote(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockActionItemRepository is a mock implementation of ActionItemRepository interface
type MockActionItemRepository struct {
	mock.Mock
}

// Ensure MockActionItemRepository implements ActionItemRepository interface
var _ ActionItemRepository = (*MockActionItemRepository)(nil)

func (m *MockActionItemRepository) CreateActionItem(ctx context.Context, description string, noteID *int64) (*models.ActionItem, error) {
	args := m.Called(ctx, description, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActionItem), args.Error(1)
}

func (m *MockActionItemRepository) GetActionItem(ctx context.Context, id int64) (*models.ActionItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActionItem), args.Error(1)
}

func (m *MockActionItemRepository) ListActionItems(ctx context.Context, q models.ActionItemQuery) ([]models.ActionItem, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActionItem), args.Error(1)
}

func (m *MockActionItemRepository) CountActionItems(ctx context.Context, completed *bool, noteID *int64) (int, error) {
	args := m.Called(ctx, completed, noteID)
	return args.Int(0), args.Error(1)
}

func (m *MockActionItemRepository) UpdateActionItem(ctx context.Context, id int64, patch models.ActionItemPatch) (*models.ActionItem, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActionItem), args.Error(1)
}

func (m *MockActionItemRepository) SetActionItemCompleted(ctx context.Context, id int64, completed bool) (*models.ActionItem, error) {
	args := m.Called(ctx, id, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActionItem), args.Error(1)
}

func (m *MockActionItemRepository) DeleteActionItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockExtractionRepository is a mock implementation of ExtractionRepository interface
type MockExtractionRepository struct {
	mock.Mock
}

// Ensure MockExtractionRepository implements ExtractionRepository interface
var _ ExtractionRepository = (*MockExtractionRepository)(nil)

func (m *MockExtractionRepository) CreateActionItems(ctx context.Context, descriptions []string, noteID *int64) ([]models.ActionItem, error) {
	args := m.Called(ctx, descriptions, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActionItem), args.Error(1)
}

func (m *MockExtractionRepository) CreateNoteWithActionItems(ctx context.Context, title, content string, descriptions []string) (*models.Note, []models.ActionItem, error) {
	args := m.Called(ctx, title, content, descriptions)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Note), args.Get(1).([]models.ActionItem), args.Error(2)
}

// MockExtractor is a mock implementation of extract.Extractor interface
type MockExtractor struct {
	mock.Mock
}

// Ensure MockExtractor implements extract.Extractor interface
var _ extract.Extractor = (*MockExtractor)(nil)

func (m *MockExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockExtractor) Name() string {
	return "mock"
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool { return &b }
func int64Ptr(i int64) *int64 { return &i }
