package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/haulflow/backoffice/reminder/domain"
	"github.com/haulflow/backoffice/times"
)

// EnsureTodayCounters lazily creates today's zeroed metrics document for every
// tenant, keyed by the tenant's local calendar day. Runs hourly; racing with
// dispatcher increments is safe because creation is conditional and increments
// merge.
func (s *Service) EnsureTodayCounters(ctx context.Context) error {
	log := s.loggerProvider(ctx)

	companies, err := s.companyDAL.ListCompanies(ctx)
	if err != nil {
		return err
	}

	now := s.now().UTC()

	var result error

	for _, company := range companies {
		day := times.DayKey(now, company.Location())

		if err := s.metricsDAL.EnsureDailyMetrics(ctx, company.ID, day); err != nil {
			log.Errorf("ensuring daily metrics %s for company %s: %s", day, company.ID, err)
			result = multierror.Append(result, fmt.Errorf("company %s: %w", company.ID, err))
		}
	}

	return result
}

// GetDailyMetrics returns a tenant's delivery counters for a day. An empty
// day resolves to today in the tenant's configured time zone.
func (s *Service) GetDailyMetrics(ctx context.Context, companyID, day string) (*domain.DailyMetrics, error) {
	if day == "" {
		company, err := s.companyDAL.GetCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}

		day = times.DayKey(s.now().UTC(), company.Location())
	}

	return s.metricsDAL.GetDailyMetrics(ctx, companyID, day)
}
