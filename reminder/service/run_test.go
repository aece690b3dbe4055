package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/haulflow/backoffice/logger"
	loggerMocks "github.com/haulflow/backoffice/logger/mocks"
	dalMocks "github.com/haulflow/backoffice/reminder/dal/mocks"
	"github.com/haulflow/backoffice/reminder/domain"
)

func TestReminderService_RunDueReminders(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 27, 10, 0, 30, 0, time.UTC)

	newService := func(reminderDAL *dalMocks.Reminders) *Service {
		return &Service{
			loggerProvider: func(ctx context.Context) logger.ILogger {
				return &loggerMocks.ILogger{}
			},
			reminderDAL: reminderDAL,
			metricsDAL:  &dalMocks.Metrics{},
			companyDAL:  &dalMocks.Companies{},
			now:         func() time.Time { return now },
		}
	}

	t.Run("dispatches every kind against a single captured instant", func(t *testing.T) {
		reminderDAL := dalMocks.Reminders{}

		for _, kind := range domain.Kinds() {
			reminderDAL.On("GetDueReminders", ctx, kind, "", now).Return(nil, nil)
		}

		s := newService(&reminderDAL)

		assert.NoError(t, s.RunDueReminders(ctx))
		reminderDAL.AssertNumberOfCalls(t, "GetDueReminders", len(domain.Kinds()))
	})

	t.Run("a failing kind does not stop the remaining kinds", func(t *testing.T) {
		reminderDAL := dalMocks.Reminders{}

		reminderDAL.On("GetDueReminders", ctx, domain.KindBusinessCase, "", now).
			Return(nil, errors.New("deadline exceeded"))
		reminderDAL.On("GetDueReminders", ctx, domain.KindTransportLoading, "", now).Return(nil, nil)
		reminderDAL.On("GetDueReminders", ctx, domain.KindTransportUnloading, "", now).Return(nil, nil)

		s := newService(&reminderDAL)

		err := s.RunDueReminders(ctx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "BUSINESS_CASE")
		reminderDAL.AssertNumberOfCalls(t, "GetDueReminders", 3)
	})
}
