package dal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/haulflow/backoffice/reminder/domain"
)

func TestTransportReminderID(t *testing.T) {
	assert.Equal(t, "t-7-loading", TransportReminderID("t-7", domain.KindTransportLoading))
	assert.Equal(t, "t-7-unloading", TransportReminderID("t-7", domain.KindTransportUnloading))
}

func TestDailyMetricsID(t *testing.T) {
	assert.Equal(t, "company-1-2026-08-27", DailyMetricsID("company-1", "2026-08-27"))
}

func TestReminderFirestore_InputValidation(t *testing.T) {
	ctx := context.Background()
	d := NewReminderFirestoreWithClient(nil)

	_, err := d.CreateReminder(ctx, &domain.Reminder{Kind: "WEEKLY_DIGEST"})
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = d.CreateReminder(ctx, &domain.Reminder{Kind: domain.KindBusinessCase})
	assert.ErrorIs(t, err, ErrUndefinedCompanyID)

	err = d.SetReminder(ctx, "", &domain.Reminder{Kind: domain.KindTransportLoading, CompanyID: "company-1"})
	assert.ErrorIs(t, err, ErrUndefinedReminderID)

	_, err = d.GetDueReminders(ctx, "WEEKLY_DIGEST", "", time.Now())
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = d.ClaimReminder(ctx, "", time.Now())
	assert.ErrorIs(t, err, ErrUndefinedReminderID)

	_, err = d.DeleteRemindersBySource(ctx, "", "t-7")
	assert.ErrorIs(t, err, ErrUndefinedCompanyID)

	_, err = d.DeleteRemindersBySource(ctx, "company-1", "")
	assert.ErrorIs(t, err, ErrUndefinedSourceID)
}

func TestMetricsFirestore_InputValidation(t *testing.T) {
	ctx := context.Background()
	d := NewMetricsFirestoreWithClient(nil)

	err := d.EnsureDailyMetrics(ctx, "", "2026-08-27")
	assert.ErrorIs(t, err, ErrUndefinedCompanyID)

	err = d.IncrementDailyCounter(ctx, "company-1", "", domain.FieldTransportNotifications)
	assert.ErrorIs(t, err, ErrUndefinedDay)

	err = d.IncrementDailyCounter(ctx, "company-1", "2026-08-27", "")
	assert.ErrorIs(t, err, ErrUndefinedCounterField)
}
