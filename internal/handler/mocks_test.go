package handler_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taskcherry/internal/model"
	"taskcherry/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error) {
	args := m.Called(ctx, ownerID)
	boards := args.Get(0)
	if boards == nil {
		return nil, args.Error(1)
	}
	return boards.([]model.Board), args.Error(1)
}

func (m *MockBoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	args := m.Called(ctx, id)
	board := args.Get(0)
	if board == nil {
		return nil, args.Error(1)
	}
	return board.(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) GetMaxOrder(ctx context.Context, ownerID uuid.UUID) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Reorder(ctx context.Context, updates []repository.OrderUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockColumnRepository struct {
	mock.Mock
}

func (m *MockColumnRepository) Create(ctx context.Context, column *model.Column) error {
	args := m.Called(ctx, column)
	return args.Error(0)
}

func (m *MockColumnRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error) {
	args := m.Called(ctx, id)
	column := args.Get(0)
	if column == nil {
		return nil, args.Error(1)
	}
	return column.(*model.Column), args.Error(1)
}

func (m *MockColumnRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Column, error) {
	args := m.Called(ctx, boardID)
	columns := args.Get(0)
	if columns == nil {
		return nil, args.Error(1)
	}
	return columns.([]model.Column), args.Error(1)
}

func (m *MockColumnRepository) GetMaxOrder(ctx context.Context, boardID uuid.UUID) (int, error) {
	args := m.Called(ctx, boardID)
	return args.Int(0), args.Error(1)
}

func (m *MockColumnRepository) Update(ctx context.Context, column *model.Column) error {
	args := m.Called(ctx, column)
	return args.Error(0)
}

func (m *MockColumnRepository) Reorder(ctx context.Context, updates []repository.OrderUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

func (m *MockColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	args := m.Called(ctx, id)
	card := args.Get(0)
	if card == nil {
		return nil, args.Error(1)
	}
	return card.(*model.Card), args.Error(1)
}

func (m *MockCardRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Card, error) {
	args := m.Called(ctx, boardID)
	cards := args.Get(0)
	if cards == nil {
		return nil, args.Error(1)
	}
	return cards.([]model.Card), args.Error(1)
}

func (m *MockCardRepository) GetByColumnID(ctx context.Context, columnID uuid.UUID) ([]model.Card, error) {
	args := m.Called(ctx, columnID)
	cards := args.Get(0)
	if cards == nil {
		return nil, args.Error(1)
	}
	return cards.([]model.Card), args.Error(1)
}

func (m *MockCardRepository) CountByColumnID(ctx context.Context, columnID uuid.UUID) (int64, error) {
	args := m.Called(ctx, columnID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCardRepository) GetMaxOrder(ctx context.Context, columnID uuid.UUID) (int, error) {
	args := m.Called(ctx, columnID)
	return args.Int(0), args.Error(1)
}

func (m *MockCardRepository) Update(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) Move(ctx context.Context, cardID, columnID uuid.UUID, order int) error {
	args := m.Called(ctx, cardID, columnID, order)
	return args.Error(0)
}

func (m *MockCardRepository) Reorder(ctx context.Context, updates []repository.OrderUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWidgetRepository struct {
	mock.Mock
}

func (m *MockWidgetRepository) Create(ctx context.Context, widget *model.Widget) error {
	args := m.Called(ctx, widget)
	return args.Error(0)
}

func (m *MockWidgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Widget, error) {
	args := m.Called(ctx, id)
	widget := args.Get(0)
	if widget == nil {
		return nil, args.Error(1)
	}
	return widget.(*model.Widget), args.Error(1)
}

func (m *MockWidgetRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Widget, error) {
	args := m.Called(ctx, boardID)
	widgets := args.Get(0)
	if widgets == nil {
		return nil, args.Error(1)
	}
	return widgets.([]model.Widget), args.Error(1)
}

func (m *MockWidgetRepository) GetMaxOrder(ctx context.Context, boardID uuid.UUID) (int, error) {
	args := m.Called(ctx, boardID)
	return args.Int(0), args.Error(1)
}

func (m *MockWidgetRepository) Update(ctx context.Context, widget *model.Widget) error {
	args := m.Called(ctx, widget)
	return args.Error(0)
}

func (m *MockWidgetRepository) Reorder(ctx context.Context, updates []repository.OrderUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

func (m *MockWidgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context, userID uuid.UUID) (*model.UserSettings, error) {
	args := m.Called(ctx, userID)
	settings := args.Get(0)
	if settings == nil {
		return nil, args.Error(1)
	}
	return settings.(*model.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, settings *model.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *model.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	args := m.Called(ctx, id)
	report := args.Get(0)
	if report == nil {
		return nil, args.Error(1)
	}
	return report.(*model.Report), args.Error(1)
}

func (m *MockReportRepository) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Report, error) {
	args := m.Called(ctx, ownerID)
	reports := args.Get(0)
	if reports == nil {
		return nil, args.Error(1)
	}
	return reports.([]model.Report), args.Error(1)
}

func (m *MockReportRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Report, error) {
	args := m.Called(ctx, boardID)
	reports := args.Get(0)
	if reports == nil {
		return nil, args.Error(1)
	}
	return reports.([]model.Report), args.Error(1)
}

func (m *MockReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
