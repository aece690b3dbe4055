package service

import (
	"context"
	"fmt"
	"time"

	"github.com/haulflow/backoffice/common"
	"github.com/haulflow/backoffice/logger"
	"github.com/haulflow/backoffice/mailer"
	"github.com/haulflow/backoffice/reminder/domain"
	"github.com/haulflow/backoffice/times"
)

// DispatchDueReminders sends the notification of every due reminder of the
// given kind, across all tenants. The asOf instant is captured once by the
// caller so that every due comparison and sentAt stamp of one run agree.
//
// A malformed or failing record is logged and skipped; it never aborts the
// batch. A reminder is marked consumed before its mail goes out; if the send
// fails the claim is rolled back so the next tick retries it.
func (s *Service) DispatchDueReminders(ctx context.Context, kind domain.Kind, asOf time.Time) error {
	log := s.loggerProvider(ctx)

	reminders, err := s.reminderDAL.GetDueReminders(ctx, kind, "", asOf)
	if err != nil {
		return err
	}

	locations := make(map[string]*time.Location)

	for _, reminder := range reminders {
		loc := s.companyLocation(ctx, log, locations, reminder.CompanyID)
		s.dispatchReminder(ctx, log, reminder, asOf, loc)
	}

	return nil
}

func (s *Service) dispatchReminder(
	ctx context.Context,
	log logger.ILogger,
	reminder *domain.Reminder,
	asOf time.Time,
	loc *time.Location,
) {
	notification, err := buildNotification(reminder, loc)
	if err != nil {
		log.Warningf("skipping reminder %s: %s", reminder.ID, err)
		return
	}

	claimed, err := s.reminderDAL.ClaimReminder(ctx, reminder.ID, asOf)
	if err != nil {
		log.Errorf("claiming reminder %s: %s", reminder.ID, err)
		return
	}

	if !claimed {
		// An overlapping run owns this record.
		return
	}

	if err := s.mailer.SendNotification(notification, reminder.RecipientEmail); err != nil {
		log.Errorf("sending reminder %s to %s: %s", reminder.ID, reminder.RecipientEmail, err)

		if releaseErr := s.reminderDAL.ReleaseReminder(ctx, reminder.ID); releaseErr != nil {
			log.Errorf("releasing reminder %s after failed send: %s", reminder.ID, releaseErr)
		}

		return
	}

	day := times.DayKey(asOf, loc)

	if err := s.metricsDAL.IncrementDailyCounter(ctx, reminder.CompanyID, day, domain.CounterField(reminder.Kind)); err != nil {
		// The notification is already out; counters are best effort.
		log.Errorf("incrementing %s counter for company %s: %s", domain.CounterField(reminder.Kind), reminder.CompanyID, err)
	}
}

// companyLocation resolves the tenant's configured time zone, memoized per
// batch. Lookup failures fall back to UTC instead of blocking dispatch.
func (s *Service) companyLocation(
	ctx context.Context,
	log logger.ILogger,
	cache map[string]*time.Location,
	companyID string,
) *time.Location {
	if loc, ok := cache[companyID]; ok {
		return loc
	}

	company, err := s.companyDAL.GetCompany(ctx, companyID)
	if err != nil {
		log.Warningf("resolving time zone of company %s: %s", companyID, err)

		cache[companyID] = time.UTC

		return time.UTC
	}

	loc := company.Location()
	cache[companyID] = loc

	return loc
}

// buildNotification renders the kind-specific subject and body of a reminder.
// New reminder kinds plug in here without touching the selector or trigger.
func buildNotification(reminder *domain.Reminder, loc *time.Location) (*mailer.SimpleNotification, error) {
	if !common.ValidEmail(reminder.RecipientEmail) {
		return nil, ErrInvalidRecipient
	}

	switch reminder.Kind {
	case domain.KindBusinessCase:
		return buildBusinessCaseNotification(reminder)
	case domain.KindTransportLoading:
		return buildTransportNotification(reminder, loc, "Loading")
	case domain.KindTransportUnloading:
		return buildTransportNotification(reminder, loc, "Unloading")
	default:
		return nil, fmt.Errorf("%w: unknown kind %s", ErrMissingContextField, reminder.Kind)
	}
}

func buildBusinessCaseNotification(reminder *domain.Reminder) (*mailer.SimpleNotification, error) {
	c := reminder.Context

	if c.CompanyName == "" {
		return nil, fmt.Errorf("%w: companyName", ErrMissingContextField)
	}

	body := fmt.Sprintf("<p>Follow up with <strong>%s</strong>", c.CompanyName)
	if c.ContactName != "" {
		body += fmt.Sprintf(" (%s)", c.ContactName)
	}

	body += ".</p>"

	if c.Note != "" {
		body += fmt.Sprintf("<p>%s</p>", c.Note)
	}

	return &mailer.SimpleNotification{
		Subject:    fmt.Sprintf("Reminder: %s", c.CompanyName),
		Preheader:  fmt.Sprintf("Business case follow-up for %s", c.CompanyName),
		Body:       body,
		Categories: []string{mailer.CategoryBusinessCaseReminders},
	}, nil
}

func buildTransportNotification(reminder *domain.Reminder, loc *time.Location, event string) (*mailer.SimpleNotification, error) {
	c := reminder.Context

	if c.Address == "" {
		return nil, fmt.Errorf("%w: address", ErrMissingContextField)
	}

	eventTime, err := times.Normalize(c.EventTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEventTime, err)
	}

	scheduled := times.FormatInLocation(eventTime, loc, times.PatternDateTime)

	subject := fmt.Sprintf("%s at %s", event, scheduled)
	if c.OrderNumber != "" {
		subject = fmt.Sprintf("%s, order %s", subject, c.OrderNumber)
	}

	body := fmt.Sprintf("<p>%s scheduled for <strong>%s</strong> at %s.</p>", event, scheduled, c.Address)

	if c.CompanyName != "" {
		body += fmt.Sprintf("<p>Customer: %s</p>", c.CompanyName)
	}

	if c.LeadMinutes > 0 {
		body += fmt.Sprintf("<p>This reminder fires %d minutes ahead of the scheduled time.</p>", c.LeadMinutes)
	}

	if c.Note != "" {
		body += fmt.Sprintf("<p>%s</p>", c.Note)
	}

	return &mailer.SimpleNotification{
		Subject:    subject,
		Preheader:  fmt.Sprintf("%s at %s", event, c.Address),
		Body:       body,
		Categories: []string{mailer.CategoryTransportReminders},
	}, nil
}
