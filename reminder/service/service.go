package service

import (
	"context"
	"time"

	"github.com/haulflow/backoffice/common"
	"github.com/haulflow/backoffice/framework/connection"
	"github.com/haulflow/backoffice/logger"
	"github.com/haulflow/backoffice/mailer"
	"github.com/haulflow/backoffice/reminder/dal"
	"github.com/haulflow/backoffice/reminder/domain"
)

//go:generate mockery --name ReminderService --output=./mocks
type ReminderService interface {
	GenerateBusinessCaseReminder(ctx context.Context, input *BusinessCaseReminderInput) (string, error)
	GenerateTransportReminders(ctx context.Context, input *TransportReminderInput) ([]string, error)
	DeleteTransportReminders(ctx context.Context, companyID, transportID string) (int, error)
	RunDueReminders(ctx context.Context) error
	DispatchDueReminders(ctx context.Context, kind domain.Kind, asOf time.Time) error
	EnsureTodayCounters(ctx context.Context) error
	GetDailyMetrics(ctx context.Context, companyID, day string) (*domain.DailyMetrics, error)
}

type Service struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	reminderDAL    dal.Reminders
	metricsDAL     dal.Metrics
	companyDAL     dal.Companies
	mailer         mailer.IMailer
	now            func() time.Time
}

func NewReminderService(log logger.Provider, conn *connection.Connection) *Service {
	return &Service{
		loggerProvider: log,
		conn:           conn,
		reminderDAL:    dal.NewReminderFirestoreWithClient(conn.Firestore),
		metricsDAL:     dal.NewMetricsFirestoreWithClient(conn.Firestore),
		companyDAL:     dal.NewCompanyFirestoreWithClient(conn.Firestore),
		mailer:         newMailer(),
		now:            time.Now,
	}
}

func newMailer() mailer.IMailer {
	if common.IsLocalhost {
		return mailer.CowardMailer{}
	}

	return mailer.NewMailer()
}
