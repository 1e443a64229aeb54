package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/salesdesk/qbo-bridge/internal/credentials"
	"github.com/salesdesk/qbo-bridge/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/accounting.go -package=mocks

// oauthState is the opaque state value carried through the OAuth redirect.
// Single-user flow; the callback rejects anything else.
const oauthState = "qbo-bridge"

// Accounting is the upstream API surface the service depends on.
type Accounting interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (entity.Credentials, error)
	QueryItems(ctx context.Context, creds entity.Credentials) ([]entity.Item, error)
	QueryCustomers(ctx context.Context, creds entity.Credentials) ([]entity.Customer, error)
	CreateInvoice(ctx context.Context, creds entity.Credentials, doc entity.SalesDocument) (entity.CreatedDocument, error)
	CreateEstimate(ctx context.Context, creds entity.Credentials, doc entity.SalesDocument) (entity.CreatedDocument, error)
}

type Service struct {
	store      credentials.Store
	accounting Accounting
	realmID    string // configured fallback when the callback omits realmId
}

func New(store credentials.Store, accounting Accounting, realmID string) *Service {
	return &Service{
		store:      store,
		accounting: accounting,
		realmID:    realmID,
	}
}

// ConnectURL builds the provider authorization URL for the connect redirect.
func (s *Service) ConnectURL() string {
	return s.accounting.AuthCodeURL(oauthState)
}

// CompleteAuth exchanges the callback code for tokens and stores them. The
// realm id from the callback wins; the configured value is the fallback.
func (s *Service) CompleteAuth(ctx context.Context, code, state, realmID string) error {
	if code == "" {
		return fmt.Errorf("%w: missing authorization code", entity.ErrInvalidArgument)
	}

	if state != oauthState {
		return fmt.Errorf("%w: state mismatch", entity.ErrInvalidArgument)
	}

	creds, err := s.accounting.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange code: %w", err)
	}

	creds.RealmID = realmID
	if creds.RealmID == "" {
		creds.RealmID = s.realmID
	}

	s.store.Put(ctx, creds)

	slog.InfoContext(ctx, "connected to QuickBooks", "realm_id", creds.RealmID)

	return nil
}

// SearchItems lists the first page of active items and filters it by name.
// The page cap applies before the filter, so matches past the cap are not
// returned.
func (s *Service) SearchItems(ctx context.Context, q string) ([]entity.Item, error) {
	creds, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.accounting.QueryItems(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	filtered := make([]entity.Item, 0, len(items))

	for _, item := range items {
		if entity.MatchesName(item.Name, q) {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}

// SearchCustomers lists the first page of customers and filters it by name.
func (s *Service) SearchCustomers(ctx context.Context, q string) ([]entity.Customer, error) {
	creds, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := s.accounting.QueryCustomers(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}

	filtered := make([]entity.Customer, 0, len(customers))

	for _, customer := range customers {
		if entity.MatchesName(customer.Name, q) {
			filtered = append(filtered, customer)
		}
	}

	return filtered, nil
}

// CreateInvoice validates the document and creates an unsent invoice.
func (s *Service) CreateInvoice(ctx context.Context, doc entity.SalesDocument) (entity.CreatedDocument, error) {
	return s.createDocument(ctx, entity.DocumentKindInvoice, doc)
}

// CreateEstimate validates the document and creates an estimate.
func (s *Service) CreateEstimate(ctx context.Context, doc entity.SalesDocument) (entity.CreatedDocument, error) {
	return s.createDocument(ctx, entity.DocumentKindEstimate, doc)
}

func (s *Service) createDocument(ctx context.Context, kind entity.DocumentKind, doc entity.SalesDocument) (entity.CreatedDocument, error) {
	err := doc.Validate()
	if err != nil {
		return entity.CreatedDocument{}, err
	}

	creds, err := s.store.Get(ctx)
	if err != nil {
		return entity.CreatedDocument{}, err
	}

	create := s.accounting.CreateInvoice
	if kind == entity.DocumentKindEstimate {
		create = s.accounting.CreateEstimate
	}

	created, err := create(ctx, creds, doc)
	if err != nil {
		return entity.CreatedDocument{}, fmt.Errorf("create %s: %w", kind, err)
	}

	slog.InfoContext(ctx, "created sales document",
		"kind", string(kind),
		"id", created.ID,
		"doc_number", created.DocNumber,
		"total", created.TotalAmount.String(),
		"customer_id", doc.CustomerID,
	)

	return created, nil
}
