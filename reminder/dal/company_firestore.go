package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/haulflow/backoffice/common"
	"github.com/haulflow/backoffice/framework/connection"
	"github.com/haulflow/backoffice/reminder/domain"
)

// CompanyFirestore reads tenant documents. The dispatch engine only needs
// the tenant list and the configured time zone per tenant.
type CompanyFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewCompanyFirestoreWithClient returns a new CompanyFirestore using given client.
func NewCompanyFirestoreWithClient(fun connection.FirestoreFromContextFun) *CompanyFirestore {
	return &CompanyFirestore{
		firestoreClientFun: fun,
	}
}

func (d *CompanyFirestore) companiesCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(common.CollectionCompanies)
}

// GetCompany fetches a single tenant by id.
func (d *CompanyFirestore) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	if id == "" {
		return nil, ErrUndefinedCompanyID
	}

	docSnap, err := d.companiesCollection(ctx).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrCompanyNotFound
		}

		return nil, err
	}

	var company domain.Company
	if err := docSnap.DataTo(&company); err != nil {
		return nil, err
	}

	company.ID = docSnap.Ref.ID

	return &company, nil
}

// ListCompanies returns every tenant of the back office.
func (d *CompanyFirestore) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	iter := d.companiesCollection(ctx).Documents(ctx)
	defer iter.Stop()

	var companies []*domain.Company

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var company domain.Company
		if err := docSnap.DataTo(&company); err != nil {
			return nil, err
		}

		company.ID = docSnap.Ref.ID

		companies = append(companies, &company)
	}

	return companies, nil
}
