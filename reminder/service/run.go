package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/haulflow/backoffice/reminder/domain"
)

// RunDueReminders is the scheduled trigger: it captures the run instant once
// and dispatches every reminder kind against it in turn. A selector failure of
// one kind is recorded and the remaining kinds still run; per-record failures
// stay inside the dispatcher and never surface here. The trigger keeps no
// state between invocations.
func (s *Service) RunDueReminders(ctx context.Context) error {
	asOf := s.now().UTC()

	var result error

	for _, kind := range domain.Kinds() {
		if err := s.DispatchDueReminders(ctx, kind, asOf); err != nil {
			result = multierror.Append(result, fmt.Errorf("dispatching %s reminders: %w", kind, err))
		}
	}

	return result
}
