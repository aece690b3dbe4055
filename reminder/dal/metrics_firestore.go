package dal

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/haulflow/backoffice/common"
	"github.com/haulflow/backoffice/framework/connection"
	"github.com/haulflow/backoffice/reminder/domain"
)

const (
	dateField = "date"
)

// MetricsFirestore is used to interact with the daily delivery counters
// stored on Firestore.
type MetricsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewMetricsFirestoreWithClient returns a new MetricsFirestore using given client.
func NewMetricsFirestoreWithClient(fun connection.FirestoreFromContextFun) *MetricsFirestore {
	return &MetricsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *MetricsFirestore) metricsCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(common.CollectionDailyMetrics)
}

// DailyMetricsID derives the document id of a tenant's counter document for a day.
func DailyMetricsID(companyID, day string) string {
	return fmt.Sprintf("%s-%s", companyID, day)
}

// EnsureDailyMetrics creates a zeroed counter document for the given tenant
// and day if it does not exist yet. The conditional create never clobbers
// counters an overlapping increment already wrote, which keeps the rollup
// safe to race with the dispatcher.
func (d *MetricsFirestore) EnsureDailyMetrics(ctx context.Context, companyID, day string) error {
	if companyID == "" {
		return ErrUndefinedCompanyID
	}

	if day == "" {
		return ErrUndefinedDay
	}

	ref := d.metricsCollection(ctx).Doc(DailyMetricsID(companyID, day))

	_, err := ref.Create(ctx, &domain.DailyMetrics{
		CompanyID: companyID,
		Date:      day,
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return err
	}

	return nil
}

// IncrementDailyCounter adds one to a per-kind counter of the given tenant
// and day. The merge write creates the document when the rollup has not run
// yet, so initialization and increment commute.
func (d *MetricsFirestore) IncrementDailyCounter(ctx context.Context, companyID, day, counterField string) error {
	if companyID == "" {
		return ErrUndefinedCompanyID
	}

	if day == "" {
		return ErrUndefinedDay
	}

	if counterField == "" {
		return ErrUndefinedCounterField
	}

	ref := d.metricsCollection(ctx).Doc(DailyMetricsID(companyID, day))

	_, err := ref.Set(ctx, map[string]interface{}{
		companyIDField: companyID,
		dateField:      day,
		counterField:   firestore.Increment(1),
	}, firestore.MergeAll)

	return err
}

// GetDailyMetrics fetches a tenant's counter document for a day.
func (d *MetricsFirestore) GetDailyMetrics(ctx context.Context, companyID, day string) (*domain.DailyMetrics, error) {
	if companyID == "" {
		return nil, ErrUndefinedCompanyID
	}

	if day == "" {
		return nil, ErrUndefinedDay
	}

	docSnap, err := d.metricsCollection(ctx).Doc(DailyMetricsID(companyID, day)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrMetricsNotFound
		}

		return nil, err
	}

	var metrics domain.DailyMetrics
	if err := docSnap.DataTo(&metrics); err != nil {
		return nil, err
	}

	return &metrics, nil
}
