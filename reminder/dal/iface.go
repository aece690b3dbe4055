package dal

import (
	"context"
	"time"

	"github.com/haulflow/backoffice/reminder/domain"
)

//go:generate mockery --name Reminders --output ./mocks --case=underscore
type Reminders interface {
	CreateReminder(ctx context.Context, reminder *domain.Reminder) (string, error)
	SetReminder(ctx context.Context, id string, reminder *domain.Reminder) error
	GetDueReminders(
		ctx context.Context,
		kind domain.Kind,
		companyID string,
		asOf time.Time,
	) ([]*domain.Reminder, error)
	ClaimReminder(ctx context.Context, id string, sentAt time.Time) (bool, error)
	ReleaseReminder(ctx context.Context, id string) error
	DeleteRemindersBySource(ctx context.Context, companyID, sourceEntityID string) (int, error)
}

//go:generate mockery --name Metrics --output ./mocks --case=underscore
type Metrics interface {
	EnsureDailyMetrics(ctx context.Context, companyID, day string) error
	IncrementDailyCounter(ctx context.Context, companyID, day, counterField string) error
	GetDailyMetrics(ctx context.Context, companyID, day string) (*domain.DailyMetrics, error)
}

//go:generate mockery --name Companies --output ./mocks --case=underscore
type Companies interface {
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]*domain.Company, error)
}
