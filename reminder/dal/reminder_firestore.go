package dal

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/haulflow/backoffice/common"
	"github.com/haulflow/backoffice/framework/connection"
	"github.com/haulflow/backoffice/reminder/domain"
)

const (
	kindField           = "kind"
	companyIDField      = "companyID"
	targetFireTimeField = "targetFireTime"
	sentField           = "sent"
	sentAtField         = "sentAt"
	sourceEntityIDField = "sourceEntityID"
)

// ReminderFirestore is used to interact with reminders stored on Firestore.
type ReminderFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewReminderFirestore returns a new ReminderFirestore instance with given project id.
func NewReminderFirestore(ctx context.Context, projectID string) (*ReminderFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewReminderFirestoreWithClient(
		func(_ context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewReminderFirestoreWithClient returns a new ReminderFirestore using given client.
func NewReminderFirestoreWithClient(fun connection.FirestoreFromContextFun) *ReminderFirestore {
	return &ReminderFirestore{
		firestoreClientFun: fun,
	}
}

func (d *ReminderFirestore) remindersCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(common.CollectionReminders)
}

// TransportReminderID derives the deterministic document id of a transport
// reminder. Re-running generation after a partial failure overwrites the same
// documents instead of duplicating them.
func TransportReminderID(transportID string, kind domain.Kind) string {
	suffix := "loading"
	if kind == domain.KindTransportUnloading {
		suffix = "unloading"
	}

	return fmt.Sprintf("%s-%s", transportID, suffix)
}

// CreateReminder writes a reminder under a new random document id and
// returns the id. Used for business case reminders, where every set/edit
// creates a fresh record.
func (d *ReminderFirestore) CreateReminder(ctx context.Context, reminder *domain.Reminder) (string, error) {
	if !reminder.Kind.Valid() {
		return "", ErrInvalidKind
	}

	if reminder.CompanyID == "" {
		return "", ErrUndefinedCompanyID
	}

	ref, _, err := d.remindersCollection(ctx).Add(ctx, reminder)
	if err != nil {
		return "", err
	}

	return ref.ID, nil
}

// SetReminder writes a reminder under the given document id, overwriting any
// existing document. Used for transport reminders with deterministic ids.
func (d *ReminderFirestore) SetReminder(ctx context.Context, id string, reminder *domain.Reminder) error {
	if id == "" {
		return ErrUndefinedReminderID
	}

	if !reminder.Kind.Valid() {
		return ErrInvalidKind
	}

	if reminder.CompanyID == "" {
		return ErrUndefinedCompanyID
	}

	_, err := d.remindersCollection(ctx).Doc(id).Set(ctx, reminder)

	return err
}

// GetDueReminders returns the unconsumed reminders of the given kind whose
// target fire time has passed as of the given instant. companyID narrows the
// scan to a single tenant; empty scans all tenants. The asOf instant must be
// captured once per job invocation so that all due comparisons of one run are
// consistent.
func (d *ReminderFirestore) GetDueReminders(ctx context.Context, kind domain.Kind, companyID string, asOf time.Time) ([]*domain.Reminder, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	query := d.remindersCollection(ctx).
		Where(kindField, "==", string(kind)).
		Where(sentField, "==", false).
		Where(targetFireTimeField, "<=", asOf)

	if companyID != "" {
		query = query.Where(companyIDField, "==", companyID)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var reminders []*domain.Reminder

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		reminder, err := snapToReminder(docSnap)
		if err != nil {
			return nil, err
		}

		// Firestore allows a single inequality field per query, so the
		// source entity filter for transport kinds is applied here.
		if kind.IsTransport() && reminder.SourceEntityID == "" {
			continue
		}

		reminders = append(reminders, reminder)
	}

	return reminders, nil
}

// ClaimReminder performs the pending to consumed transition with a
// transactional compare-and-set. It reports true only when this caller won
// the claim; overlapping runs that lose the race get false and must not
// dispatch.
func (d *ReminderFirestore) ClaimReminder(ctx context.Context, id string, sentAt time.Time) (bool, error) {
	if id == "" {
		return false, ErrUndefinedReminderID
	}

	fs := d.firestoreClientFun(ctx)
	ref := fs.Collection(common.CollectionReminders).Doc(id)

	claimed := false

	err := fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(ref)
		if err != nil {
			return err
		}

		sent, err := docSnap.DataAt(sentField)
		if err != nil {
			return err
		}

		if sent == true {
			claimed = false
			return nil
		}

		if err := tx.Update(ref, []firestore.Update{
			{Path: sentField, Value: true},
			{Path: sentAtField, Value: sentAt},
		}); err != nil {
			return err
		}

		claimed = true

		return nil
	}, firestore.MaxAttempts(5))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, ErrReminderNotFound
		}

		return false, err
	}

	return claimed, nil
}

// ReleaseReminder rolls a claim back after a failed send so the record
// returns to pending and is retried on the next scheduled tick.
func (d *ReminderFirestore) ReleaseReminder(ctx context.Context, id string) error {
	if id == "" {
		return ErrUndefinedReminderID
	}

	_, err := d.remindersCollection(ctx).Doc(id).Update(ctx, []firestore.Update{
		{Path: sentField, Value: false},
		{Path: sentAtField, Value: firestore.Delete},
	})

	return err
}

// DeleteRemindersBySource removes every reminder generated from the given
// source entity. Invoked when a tracked transport is deleted.
func (d *ReminderFirestore) DeleteRemindersBySource(ctx context.Context, companyID, sourceEntityID string) (int, error) {
	if companyID == "" {
		return 0, ErrUndefinedCompanyID
	}

	if sourceEntityID == "" {
		return 0, ErrUndefinedSourceID
	}

	docSnaps, err := d.remindersCollection(ctx).
		Where(companyIDField, "==", companyID).
		Where(sourceEntityIDField, "==", sourceEntityID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return 0, err
	}

	deleted := 0

	for _, docSnap := range docSnaps {
		if _, err := docSnap.Ref.Delete(ctx); err != nil {
			return deleted, err
		}

		deleted++
	}

	return deleted, nil
}

func snapToReminder(docSnap *firestore.DocumentSnapshot) (*domain.Reminder, error) {
	var reminder domain.Reminder
	if err := docSnap.DataTo(&reminder); err != nil {
		return nil, err
	}

	reminder.ID = docSnap.Ref.ID

	return &reminder, nil
}
