package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/salesdesk/qbo-bridge/internal/credentials"
	"github.com/salesdesk/qbo-bridge/internal/entity"
	"github.com/salesdesk/qbo-bridge/internal/mocks"
	"github.com/salesdesk/qbo-bridge/internal/service"
)

func connectedStore(t *testing.T) (*credentials.Memory, entity.Credentials) {
	t.Helper()

	store := credentials.NewMemory()
	creds := entity.Credentials{
		AccessToken:  "at",
		RefreshToken: "rt",
		RealmID:      "123",
	}
	store.Put(context.Background(), creds)

	return store, creds
}

func TestService_CompleteAuth(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	accounting := mocks.NewMockAccounting(ctrl)
	store := credentials.NewMemory()

	accounting.EXPECT().Exchange(gomock.Any(), "the-code").
		Return(entity.Credentials{AccessToken: "at", RefreshToken: "rt"}, nil)

	s := service.New(store, accounting, "")

	err := s.CompleteAuth(context.Background(), "the-code", "qbo-bridge", "456")
	require.NoError(t, err)

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "at", got.AccessToken)
	require.Equal(t, "456", got.RealmID)
}

func TestService_CompleteAuth_RealmFallback(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	accounting := mocks.NewMockAccounting(ctrl)
	store := credentials.NewMemory()

	accounting.EXPECT().Exchange(gomock.Any(), "the-code").
		Return(entity.Credentials{AccessToken: "at"}, nil)

	// Callback carried no realmId; the configured value fills in.
	s := service.New(store, accounting, "configured-realm")

	err := s.CompleteAuth(context.Background(), "the-code", "qbo-bridge", "")
	require.NoError(t, err)

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "configured-realm", got.RealmID)
}

func TestService_CompleteAuth_StateMismatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	accounting := mocks.NewMockAccounting(ctrl)
	store := credentials.NewMemory()

	s := service.New(store, accounting, "")

	err := s.CompleteAuth(context.Background(), "the-code", "forged-state", "")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = store.Get(context.Background())
	require.ErrorIs(t, err, entity.ErrNotConnected)
}

func TestService_CompleteAuth_MissingCode(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	accounting := mocks.NewMockAccounting(ctrl)

	s := service.New(credentials.NewMemory(), accounting, "")

	err := s.CompleteAuth(context.Background(), "", "qbo-bridge", "")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_SearchItems_NotConnected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	accounting := mocks.NewMockAccounting(ctrl)

	// No upstream call may happen before the connection check.
	s := service.New(credentials.NewMemory(), accounting, "")

	_, err := s.SearchItems(context.Background(), "wid")
	require.ErrorIs(t, err, entity.ErrNotConnected)
}

func TestService_SearchItems_Filter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	accounting := mocks.NewMockAccounting(ctrl)
	store, creds := connectedStore(t)

	accounting.EXPECT().QueryItems(gomock.Any(), creds).Return([]entity.Item{
		{ID: "11", Name: "Widget"},
		{ID: "12", Name: "Gadget"},
	}, nil)

	s := service.New(store, accounting, "")

	items, err := s.SearchItems(context.Background(), "wid")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Widget", items[0].Name)
}

func TestService_SearchItems_EmptyQueryMatchesAll(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	accounting := mocks.NewMockAccounting(ctrl)
	store, creds := connectedStore(t)

	accounting.EXPECT().QueryItems(gomock.Any(), creds).Return([]entity.Item{
		{ID: "11", Name: "Widget"},
		{ID: "12", Name: "Gadget"},
	}, nil)

	s := service.New(store, accounting, "")

	items, err := s.SearchItems(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestService_SearchCustomers_Filter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	accounting := mocks.NewMockAccounting(ctrl)
	store, creds := connectedStore(t)

	accounting.EXPECT().QueryCustomers(gomock.Any(), creds).Return([]entity.Customer{
		{ID: "21", Name: "Acme Corp"},
		{ID: "22", Name: "Jordan Lee"},
	}, nil)

	s := service.New(store, accounting, "")

	customers, err := s.SearchCustomers(context.Background(), "ACME")
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, "21", customers[0].ID)
}

func TestService_CreateInvoice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	accounting := mocks.NewMockAccounting(ctrl)
	store, creds := connectedStore(t)

	doc := entity.SalesDocument{
		CustomerID: "21",
		Lines:      []entity.LineItem{{ItemID: "11"}},
	}

	want := entity.CreatedDocument{ID: "187", DocNumber: "1045"}

	accounting.EXPECT().CreateInvoice(gomock.Any(), creds, doc).Return(want, nil)

	s := service.New(store, accounting, "")

	created, err := s.CreateInvoice(context.Background(), doc)
	require.NoError(t, err)
	require.Equal(t, want, created)
}

func TestService_CreateEstimate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	accounting := mocks.NewMockAccounting(ctrl)
	store, creds := connectedStore(t)

	doc := entity.SalesDocument{
		CustomerID: "22",
		Lines:      []entity.LineItem{{ItemID: "12"}},
	}

	want := entity.CreatedDocument{ID: "93", DocNumber: "E-12"}

	accounting.EXPECT().CreateEstimate(gomock.Any(), creds, doc).Return(want, nil)

	s := service.New(store, accounting, "")

	created, err := s.CreateEstimate(context.Background(), doc)
	require.NoError(t, err)
	require.Equal(t, want, created)
}

func TestService_CreateInvoice_ValidationStopsUpstream(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	accounting := mocks.NewMockAccounting(ctrl)
	store, _ := connectedStore(t)

	s := service.New(store, accounting, "")

	for _, tt := range []struct {
		name string
		doc  entity.SalesDocument
	}{
		{
			name: "missing customer",
			doc:  entity.SalesDocument{Lines: []entity.LineItem{{ItemID: "11"}}},
		},
		{
			name: "empty lines",
			doc:  entity.SalesDocument{CustomerID: "21", Lines: []entity.LineItem{}},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateInvoice(context.Background(), tt.doc)
			require.ErrorIs(t, err, entity.ErrInvalidArgument)

			_, err = s.CreateEstimate(context.Background(), tt.doc)
			require.ErrorIs(t, err, entity.ErrInvalidArgument)
		})
	}
}

func TestService_CreateInvoice_NotConnected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	accounting := mocks.NewMockAccounting(ctrl)

	s := service.New(credentials.NewMemory(), accounting, "")

	doc := entity.SalesDocument{
		CustomerID: "21",
		Lines:      []entity.LineItem{{ItemID: "11"}},
	}

	_, err := s.CreateInvoice(context.Background(), doc)
	require.ErrorIs(t, err, entity.ErrNotConnected)
}
