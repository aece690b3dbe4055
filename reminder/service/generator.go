package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/haulflow/backoffice/common"
	"github.com/haulflow/backoffice/reminder/dal"
	"github.com/haulflow/backoffice/reminder/domain"
)

// BusinessCaseReminderInput carries everything needed to schedule a free-form
// follow-up reminder on a business case.
type BusinessCaseReminderInput struct {
	CompanyID        string
	BusinessCaseID   string
	RecipientEmail   string
	ReminderDateTime time.Time
	CompanyName      string
	ContactName      string
	Note             string
}

// TransportReminderInput carries the fields a tracked transport contributes to
// its loading and unloading reminders. Each event has its own lead time.
type TransportReminderInput struct {
	CompanyID              string
	TransportID            string
	RecipientEmail         string
	LoadingTime            time.Time
	LoadingOffsetMinutes   int
	UnloadingTime          time.Time
	UnloadingOffsetMinutes int
	CompanyName            string
	OrderNumber            string
	LoadingAddress         string
	UnloadingAddress       string
	Note                   string
}

// GenerateBusinessCaseReminder writes a single reminder firing verbatim at the
// requested date and time. Every call creates a fresh record; editing a
// reminder on the client side schedules a new one without retiring the old.
func (s *Service) GenerateBusinessCaseReminder(ctx context.Context, input *BusinessCaseReminderInput) (string, error) {
	if !common.ValidEmail(input.RecipientEmail) {
		return "", ErrInvalidRecipient
	}

	reminder := &domain.Reminder{
		Kind:           domain.KindBusinessCase,
		CompanyID:      input.CompanyID,
		TargetFireTime: input.ReminderDateTime.UTC(),
		SourceEntityID: input.BusinessCaseID,
		RecipientEmail: input.RecipientEmail,
		Context: domain.Context{
			CompanyName: input.CompanyName,
			ContactName: input.ContactName,
			Note:        input.Note,
		},
	}

	return s.reminderDAL.CreateReminder(ctx, reminder)
}

// GenerateTransportReminders derives the loading and unloading reminders of a
// transport, each firing its own offset minutes before its event time.
// Deterministic document ids make the operation idempotent: re-running after a
// partial failure overwrites the records already written instead of
// duplicating them.
func (s *Service) GenerateTransportReminders(ctx context.Context, input *TransportReminderInput) ([]string, error) {
	if !common.ValidEmail(input.RecipientEmail) {
		return nil, ErrInvalidRecipient
	}

	if input.LoadingOffsetMinutes < 0 || input.UnloadingOffsetMinutes < 0 {
		return nil, ErrInvalidOffset
	}

	loadingOffset := time.Duration(input.LoadingOffsetMinutes) * time.Minute
	unloadingOffset := time.Duration(input.UnloadingOffsetMinutes) * time.Minute

	reminders := []*domain.Reminder{
		{
			Kind:           domain.KindTransportLoading,
			CompanyID:      input.CompanyID,
			TargetFireTime: input.LoadingTime.UTC().Add(-loadingOffset),
			SourceEntityID: input.TransportID,
			RecipientEmail: input.RecipientEmail,
			Context: domain.Context{
				CompanyName: input.CompanyName,
				OrderNumber: input.OrderNumber,
				Address:     input.LoadingAddress,
				Note:        input.Note,
				EventTime:   input.LoadingTime.UTC(),
				LeadMinutes: input.LoadingOffsetMinutes,
			},
		},
		{
			Kind:           domain.KindTransportUnloading,
			CompanyID:      input.CompanyID,
			TargetFireTime: input.UnloadingTime.UTC().Add(-unloadingOffset),
			SourceEntityID: input.TransportID,
			RecipientEmail: input.RecipientEmail,
			Context: domain.Context{
				CompanyName: input.CompanyName,
				OrderNumber: input.OrderNumber,
				Address:     input.UnloadingAddress,
				Note:        input.Note,
				EventTime:   input.UnloadingTime.UTC(),
				LeadMinutes: input.UnloadingOffsetMinutes,
			},
		},
	}

	var (
		ids    []string
		result error
	)

	for _, reminder := range reminders {
		id := dal.TransportReminderID(input.TransportID, reminder.Kind)

		if err := s.reminderDAL.SetReminder(ctx, id, reminder); err != nil {
			result = multierror.Append(result, fmt.Errorf("writing %s reminder %s: %w", reminder.Kind, id, err))
			continue
		}

		ids = append(ids, id)
	}

	return ids, result
}

// DeleteTransportReminders removes every reminder generated from the given
// transport. Called from the transport deletion hook.
func (s *Service) DeleteTransportReminders(ctx context.Context, companyID, transportID string) (int, error) {
	return s.reminderDAL.DeleteRemindersBySource(ctx, companyID, transportID)
}
