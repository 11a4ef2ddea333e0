package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/repository"
)

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockItemRepo) List(ctx context.Context, filter repository.ItemFilter) ([]domain.Item, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Item), args.Error(1)
}

// MockCategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
func (m *MockCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
func (m *MockCategoryRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Ensure(ctx context.Context, id, email string) (*domain.User, error) {
	args := m.Called(ctx, id, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateCart(ctx context.Context, userID string, cart []domain.CartLine) error {
	args := m.Called(ctx, userID, cart)
	return args.Error(0)
}
func (m *MockUserRepo) SetRentalDueDate(ctx context.Context, userID, itemID string, date, dueDate time.Time) error {
	args := m.Called(ctx, userID, itemID, date, dueDate)
	return args.Error(0)
}

// MockReceiptRepo
type MockReceiptRepo struct {
	mock.Mock
}

func (m *MockReceiptRepo) Create(ctx context.Context, receipt *domain.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}
func (m *MockReceiptRepo) ListByUser(ctx context.Context, userID string) ([]domain.Receipt, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) Create(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
func (m *MockReportRepo) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}
func (m *MockReportRepo) Update(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
func (m *MockReportRepo) List(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Report), args.Error(1)
}
func (m *MockReportRepo) ListByUser(ctx context.Context, userID string) ([]domain.Report, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Report), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Confirm(ctx context.Context, userID string, now time.Time) (*repository.ConfirmOutcome, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ConfirmOutcome), args.Error(1)
}
func (m *MockRentalRepo) Return(ctx context.Context, userID, itemID string, date, now time.Time) (*repository.ReturnOutcome, error) {
	args := m.Called(ctx, userID, itemID, date, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ReturnOutcome), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOverdueReminder(ctx context.Context, email string, rentals []domain.Rental) error {
	args := m.Called(ctx, email, rentals)
	return args.Error(0)
}
func (m *MockEmailService) SendReportResolved(ctx context.Context, email string, report *domain.Report) error {
	args := m.Called(ctx, email, report)
	return args.Error(0)
}

// MockBroadcaster
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Publish(event Event) {
	m.Called(event)
}

var _ repository.ItemRepository = (*MockItemRepo)(nil)
var _ repository.CategoryRepository = (*MockCategoryRepo)(nil)
var _ repository.UserRepository = (*MockUserRepo)(nil)
var _ repository.ReceiptRepository = (*MockReceiptRepo)(nil)
var _ repository.ReportRepository = (*MockReportRepo)(nil)
var _ repository.RentalRepository = (*MockRentalRepo)(nil)
var _ EmailService = (*MockEmailService)(nil)
var _ Broadcaster = (*MockBroadcaster)(nil)
