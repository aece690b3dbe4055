package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/haulflow/backoffice/logger"
	loggerMocks "github.com/haulflow/backoffice/logger/mocks"
	mailerMocks "github.com/haulflow/backoffice/mailer/mocks"
	dalMocks "github.com/haulflow/backoffice/reminder/dal/mocks"
	"github.com/haulflow/backoffice/reminder/domain"
)

func TestReminderService_DispatchDueReminders(t *testing.T) {
	type fields struct {
		loggerMock  loggerMocks.ILogger
		reminderDAL dalMocks.Reminders
		metricsDAL  dalMocks.Metrics
		companyDAL  dalMocks.Companies
		mailer      mailerMocks.IMailer
	}

	ctx := context.Background()
	asOf := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	var (
		companyID = "company-1"
		recipient = "dispatcher@haulflow.io"
		sendErr   = errors.New("sendgrid unavailable")
	)

	company := &domain.Company{ID: companyID, Name: "Haulflow GmbH", TimeZone: "Europe/Berlin"}

	businessCaseReminder := func() *domain.Reminder {
		return &domain.Reminder{
			ID:             "bc-1",
			Kind:           domain.KindBusinessCase,
			CompanyID:      companyID,
			TargetFireTime: asOf.Add(-time.Minute),
			SourceEntityID: "case-9",
			RecipientEmail: recipient,
			Context: domain.Context{
				CompanyName: "Acme Logistics",
				ContactName: "J. Miller",
				Note:        "call about the Q4 frame contract",
			},
		}
	}

	loadingReminder := func() *domain.Reminder {
		return &domain.Reminder{
			ID:             "t-7-loading",
			Kind:           domain.KindTransportLoading,
			CompanyID:      companyID,
			TargetFireTime: asOf.Add(-time.Minute),
			SourceEntityID: "t-7",
			RecipientEmail: recipient,
			Context: domain.Context{
				CompanyName: "Acme Logistics",
				OrderNumber: "ORD-2026-113",
				Address:     "Hafenstr. 12, Hamburg",
				EventTime:   map[string]interface{}{"seconds": int64(1787830200), "nanoseconds": int64(0)},
				LeadMinutes: 90,
			},
		}
	}

	tests := []struct {
		name    string
		kind    domain.Kind
		wantErr error
		on      func(*fields)
		assert  func(*testing.T, *fields)
	}{
		{
			name: "due business case reminder is sent, consumed and counted",
			kind: domain.KindBusinessCase,
			on: func(f *fields) {
				f.reminderDAL.On("GetDueReminders", ctx, domain.KindBusinessCase, "", asOf).
					Return([]*domain.Reminder{businessCaseReminder()}, nil)
				f.companyDAL.On("GetCompany", ctx, companyID).Return(company, nil)
				f.reminderDAL.On("ClaimReminder", ctx, "bc-1", asOf).Return(true, nil)
				f.mailer.On("SendNotification", mock.AnythingOfType("*mailer.SimpleNotification"), recipient).Return(nil)
				f.metricsDAL.On("IncrementDailyCounter", ctx, companyID, "2026-08-27", domain.FieldBusinessCaseReminders).Return(nil)
			},
			assert: func(t *testing.T, f *fields) {
				f.mailer.AssertExpectations(t)
				f.metricsDAL.AssertExpectations(t)
			},
		},
		{
			name: "due transport reminder normalizes the stored event time",
			kind: domain.KindTransportLoading,
			on: func(f *fields) {
				f.reminderDAL.On("GetDueReminders", ctx, domain.KindTransportLoading, "", asOf).
					Return([]*domain.Reminder{loadingReminder()}, nil)
				f.companyDAL.On("GetCompany", ctx, companyID).Return(company, nil)
				f.reminderDAL.On("ClaimReminder", ctx, "t-7-loading", asOf).Return(true, nil)
				f.mailer.On("SendNotification", mock.AnythingOfType("*mailer.SimpleNotification"), recipient).Return(nil)
				f.metricsDAL.On("IncrementDailyCounter", ctx, companyID, "2026-08-27", domain.FieldTransportNotifications).Return(nil)
			},
			assert: func(t *testing.T, f *fields) {
				f.mailer.AssertExpectations(t)
			},
		},
		{
			name: "invalid recipient is skipped without touching the record",
			kind: domain.KindBusinessCase,
			on: func(f *fields) {
				reminder := businessCaseReminder()
				reminder.RecipientEmail = "not-an-address"

				f.reminderDAL.On("GetDueReminders", ctx, domain.KindBusinessCase, "", asOf).
					Return([]*domain.Reminder{reminder}, nil)
				f.companyDAL.On("GetCompany", ctx, companyID).Return(company, nil)
				f.loggerMock.On("Warningf", mock.Anything, mock.Anything, mock.Anything).Return()
			},
			assert: func(t *testing.T, f *fields) {
				f.reminderDAL.AssertNotCalled(t, "ClaimReminder", mock.Anything, mock.Anything, mock.Anything)
				f.mailer.AssertNotCalled(t, "SendNotification", mock.Anything, mock.Anything)
			},
		},
		{
			name: "unparseable event time is skipped",
			kind: domain.KindTransportLoading,
			on: func(f *fields) {
				reminder := loadingReminder()
				reminder.Context.EventTime = "next tuesday-ish"

				f.reminderDAL.On("GetDueReminders", ctx, domain.KindTransportLoading, "", asOf).
					Return([]*domain.Reminder{reminder}, nil)
				f.companyDAL.On("GetCompany", ctx, companyID).Return(company, nil)
				f.loggerMock.On("Warningf", mock.Anything, mock.Anything, mock.Anything).Return()
			},
			assert: func(t *testing.T, f *fields) {
				f.reminderDAL.AssertNotCalled(t, "ClaimReminder", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "lost claim does not invoke the mailer",
			kind: domain.KindBusinessCase,
			on: func(f *fields) {
				f.reminderDAL.On("GetDueReminders", ctx, domain.KindBusinessCase, "", asOf).
					Return([]*domain.Reminder{businessCaseReminder()}, nil)
				f.companyDAL.On("GetCompany", ctx, companyID).Return(company, nil)
				f.reminderDAL.On("ClaimReminder", ctx, "bc-1", asOf).Return(false, nil)
			},
			assert: func(t *testing.T, f *fields) {
				f.mailer.AssertNotCalled(t, "SendNotification", mock.Anything, mock.Anything)
				f.metricsDAL.AssertNotCalled(t, "IncrementDailyCounter", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "failed send releases the claim and is retried next tick",
			kind: domain.KindBusinessCase,
			on: func(f *fields) {
				f.reminderDAL.On("GetDueReminders", ctx, domain.KindBusinessCase, "", asOf).
					Return([]*domain.Reminder{businessCaseReminder()}, nil)
				f.companyDAL.On("GetCompany", ctx, companyID).Return(company, nil)
				f.reminderDAL.On("ClaimReminder", ctx, "bc-1", asOf).Return(true, nil)
				f.mailer.On("SendNotification", mock.AnythingOfType("*mailer.SimpleNotification"), recipient).Return(sendErr)
				f.reminderDAL.On("ReleaseReminder", ctx, "bc-1").Return(nil)
				f.loggerMock.On("Errorf", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
			},
			assert: func(t *testing.T, f *fields) {
				f.reminderDAL.AssertCalled(t, "ReleaseReminder", ctx, "bc-1")
				f.metricsDAL.AssertNotCalled(t, "IncrementDailyCounter", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "metrics failure never rolls back a delivered notification",
			kind: domain.KindBusinessCase,
			on: func(f *fields) {
				f.reminderDAL.On("GetDueReminders", ctx, domain.KindBusinessCase, "", asOf).
					Return([]*domain.Reminder{businessCaseReminder()}, nil)
				f.companyDAL.On("GetCompany", ctx, companyID).Return(company, nil)
				f.reminderDAL.On("ClaimReminder", ctx, "bc-1", asOf).Return(true, nil)
				f.mailer.On("SendNotification", mock.AnythingOfType("*mailer.SimpleNotification"), recipient).Return(nil)
				f.metricsDAL.On("IncrementDailyCounter", ctx, companyID, "2026-08-27", domain.FieldBusinessCaseReminders).
					Return(errors.New("unavailable"))
				f.loggerMock.On("Errorf", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
			},
			assert: func(t *testing.T, f *fields) {
				f.reminderDAL.AssertNotCalled(t, "ReleaseReminder", mock.Anything, mock.Anything)
			},
		},
		{
			name: "one bad record does not abort the batch",
			kind: domain.KindBusinessCase,
			on: func(f *fields) {
				bad := businessCaseReminder()
				bad.ID = "bc-bad"
				bad.Context.CompanyName = ""

				good := businessCaseReminder()

				f.reminderDAL.On("GetDueReminders", ctx, domain.KindBusinessCase, "", asOf).
					Return([]*domain.Reminder{bad, good}, nil)
				f.companyDAL.On("GetCompany", ctx, companyID).Return(company, nil)
				f.loggerMock.On("Warningf", mock.Anything, mock.Anything, mock.Anything).Return()
				f.reminderDAL.On("ClaimReminder", ctx, "bc-1", asOf).Return(true, nil)
				f.mailer.On("SendNotification", mock.AnythingOfType("*mailer.SimpleNotification"), recipient).Return(nil)
				f.metricsDAL.On("IncrementDailyCounter", ctx, companyID, "2026-08-27", domain.FieldBusinessCaseReminders).Return(nil)
			},
			assert: func(t *testing.T, f *fields) {
				f.mailer.AssertNumberOfCalls(t, "SendNotification", 1)
				f.companyDAL.AssertNumberOfCalls(t, "GetCompany", 1)
			},
		},
		{
			name: "unknown tenant time zone falls back to UTC",
			kind: domain.KindBusinessCase,
			on: func(f *fields) {
				f.reminderDAL.On("GetDueReminders", ctx, domain.KindBusinessCase, "", asOf).
					Return([]*domain.Reminder{businessCaseReminder()}, nil)
				f.companyDAL.On("GetCompany", ctx, companyID).Return(nil, errors.New("not found"))
				f.loggerMock.On("Warningf", mock.Anything, mock.Anything, mock.Anything).Return()
				f.reminderDAL.On("ClaimReminder", ctx, "bc-1", asOf).Return(true, nil)
				f.mailer.On("SendNotification", mock.AnythingOfType("*mailer.SimpleNotification"), recipient).Return(nil)
				f.metricsDAL.On("IncrementDailyCounter", ctx, companyID, "2026-08-27", domain.FieldBusinessCaseReminders).Return(nil)
			},
			assert: func(t *testing.T, f *fields) {
				f.metricsDAL.AssertExpectations(t)
			},
		},
		{
			name:    "selector failure surfaces to the trigger",
			kind:    domain.KindBusinessCase,
			wantErr: errors.New("deadline exceeded"),
			on: func(f *fields) {
				f.reminderDAL.On("GetDueReminders", ctx, domain.KindBusinessCase, "", asOf).
					Return(nil, errors.New("deadline exceeded"))
			},
		},
	}

	for i := 0; i < len(tests); i++ {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			f := fields{}

			s := &Service{
				loggerProvider: func(ctx context.Context) logger.ILogger {
					return &f.loggerMock
				},
				reminderDAL: &f.reminderDAL,
				metricsDAL:  &f.metricsDAL,
				companyDAL:  &f.companyDAL,
				mailer:      &f.mailer,
				now:         func() time.Time { return asOf },
			}

			if tt.on != nil {
				tt.on(&f)
			}

			err := s.DispatchDueReminders(ctx, tt.kind, asOf)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}

			if tt.assert != nil {
				tt.assert(t, &f)
			}
		})
	}
}

func TestBuildNotification_TransportSubjectAndBody(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}

	reminder := &domain.Reminder{
		ID:             "t-3-unloading",
		Kind:           domain.KindTransportUnloading,
		CompanyID:      "company-1",
		RecipientEmail: "ops@haulflow.io",
		Context: domain.Context{
			CompanyName: "Acme Logistics",
			OrderNumber: "ORD-2026-113",
			Address:     "Industriepark 4, Leipzig",
			EventTime:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			LeadMinutes: 60,
		},
	}

	sn, err := buildNotification(reminder, loc)

	assert.NoError(t, err)
	assert.Equal(t, "Unloading at 01.09.2026 14:00, order ORD-2026-113", sn.Subject)
	assert.Contains(t, sn.Body, "Industriepark 4, Leipzig")
	assert.Contains(t, sn.Body, "60 minutes")
	assert.Contains(t, sn.Categories, "transport-reminders")
}
