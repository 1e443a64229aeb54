package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/salesdesk/qbo-bridge/internal/api"
	"github.com/salesdesk/qbo-bridge/internal/entity"
	"github.com/salesdesk/qbo-bridge/internal/mocks"
)

type testAPI struct {
	server  *httptest.Server
	service *mocks.MockService
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockService(ctrl)

	server := httptest.NewServer(api.NewRouter(api.NewHandler(serviceMock)))
	t.Cleanup(server.Close)

	return testAPI{
		server:  server,
		service: serviceMock,
	}
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHandler_Connect(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.service.EXPECT().ConnectURL().
		Return("https://appcenter.intuit.com/connect/oauth2?client_id=x&state=qbo-bridge")

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Get(a.server.URL + "/auth/connect")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t,
		"https://appcenter.intuit.com/connect/oauth2?client_id=x&state=qbo-bridge",
		resp.Header.Get("Location"))
}

func TestHandler_Callback(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.service.EXPECT().CompleteAuth(gomock.Any(), "the-code", "qbo-bridge", "123").Return(nil)

	resp, err := http.Get(a.server.URL + "/auth/callback?code=the-code&state=qbo-bridge&realmId=123")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestHandler_Callback_ExchangeFailed(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.service.EXPECT().CompleteAuth(gomock.Any(), "bad-code", "qbo-bridge", "").
		Return(fmt.Errorf("exchange code: %w", entity.ErrUpstream))

	resp, err := http.Get(a.server.URL + "/auth/callback?code=bad-code&state=qbo-bridge")
	require.NoError(t, err)

	var body api.ErrorResponse
	decodeBody(t, resp, &body)

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "OAuth exchange failed", body.Message)
}

func TestHandler_Items(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	qty := decimal.NewFromInt(42)

	a.service.EXPECT().SearchItems(gomock.Any(), "wid").Return([]entity.Item{
		{ID: "11", Name: "Widget", SKU: "W-1", UnitPrice: decimal.RequireFromString("9.99"), QtyOnHand: &qty},
		{ID: "13", Name: "Widget Service", UnitPrice: decimal.NewFromInt(150)},
	}, nil)

	resp, err := http.Get(a.server.URL + "/api/items?q=wid")
	require.NoError(t, err)

	var body api.ItemsResponse
	decodeBody(t, resp, &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body.Items, 2)

	require.Equal(t, "11", body.Items[0].ID)
	require.Equal(t, "Widget", body.Items[0].Name)
	require.Equal(t, "W-1", body.Items[0].SKU)
	require.InEpsilon(t, 9.99, body.Items[0].UnitPrice, 1e-9)
	require.NotNil(t, body.Items[0].QtyOnHand)
	require.InEpsilon(t, 42.0, *body.Items[0].QtyOnHand, 1e-9)

	require.Nil(t, body.Items[1].QtyOnHand)
}

func TestHandler_Items_NotConnected(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.service.EXPECT().SearchItems(gomock.Any(), "").Return(nil, entity.ErrNotConnected)

	resp, err := http.Get(a.server.URL + "/api/items")
	require.NoError(t, err)

	var body api.ErrorResponse
	decodeBody(t, resp, &body)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "not connected to QuickBooks", body.Message)
}

func TestHandler_Customers(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	email := "billing@acme.example"

	a.service.EXPECT().SearchCustomers(gomock.Any(), "acme").Return([]entity.Customer{
		{ID: "21", Name: "Acme Corp", Email: &email},
		{ID: "22", Name: "Acme West"},
	}, nil)

	resp, err := http.Get(a.server.URL + "/api/customers?q=acme")
	require.NoError(t, err)

	var body api.CustomersResponse
	decodeBody(t, resp, &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body.Customers, 2)
	require.Equal(t, "Acme Corp", body.Customers[0].Name)
	require.NotNil(t, body.Customers[0].Email)
	require.Equal(t, email, *body.Customers[0].Email)
	require.Nil(t, body.Customers[1].Email)
}

func TestHandler_CreateInvoice(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	want := entity.SalesDocument{
		CustomerID: "21",
		Notes:      "rush order",
		AgentName:  "Alice",
		Lines: []entity.LineItem{
			{
				ItemID:      "11",
				Description: "Widgets",
				Qty:         entity.NewNumber(decimal.NewFromInt(6)),
				UnitPrice:   entity.NewNumber(decimal.RequireFromString("9.99")),
			},
		},
	}

	a.service.EXPECT().CreateInvoice(gomock.Any(), want).
		Return(entity.CreatedDocument{
			ID:          "187",
			DocNumber:   "1045",
			TotalAmount: decimal.RequireFromString("59.94"),
		}, nil)

	payload := `{
		"customerId": "21",
		"notes": "rush order",
		"agentName": "Alice",
		"lines": [{"itemId": "11", "description": "Widgets", "qty": 6, "unitPrice": "9.99"}]
	}`

	resp, err := http.Post(a.server.URL+"/api/invoice", "application/json", strings.NewReader(payload))
	require.NoError(t, err)

	var body api.CreateInvoiceResponse
	decodeBody(t, resp, &body)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, body.OK)
	require.Equal(t, "187", body.Invoice.ID)
	require.Equal(t, "1045", body.Invoice.DocNumber)
	require.InEpsilon(t, 59.94, body.Invoice.TotalAmount, 1e-9)
}

func TestHandler_CreateInvoice_InvalidJSON(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp, err := http.Post(a.server.URL+"/api/invoice", "application/json", strings.NewReader("{"))
	require.NoError(t, err)

	var body api.ErrorResponse
	decodeBody(t, resp, &body)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "invalid JSON", body.Message)
}

func TestHandler_CreateInvoice_ValidationError(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.service.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		Return(entity.CreatedDocument{}, fmt.Errorf("%w: customerId is required", entity.ErrInvalidArgument))

	resp, err := http.Post(a.server.URL+"/api/invoice", "application/json",
		strings.NewReader(`{"lines":[{"itemId":"11"}]}`))
	require.NoError(t, err)

	var body api.ErrorResponse
	decodeBody(t, resp, &body)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body.Message, "customerId")
}

func TestHandler_CreateEstimate(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.service.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).
		Return(entity.CreatedDocument{
			ID:          "93",
			DocNumber:   "E-12",
			TotalAmount: decimal.NewFromInt(150),
		}, nil)

	resp, err := http.Post(a.server.URL+"/api/estimate", "application/json",
		strings.NewReader(`{"customerId":"22","lines":[{"itemId":"12","qty":1,"unitPrice":150}]}`))
	require.NoError(t, err)

	var body api.CreateEstimateResponse
	decodeBody(t, resp, &body)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, body.OK)
	require.Equal(t, "93", body.Estimate.ID)
}

func TestHandler_CreateEstimate_UpstreamFault(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.service.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).
		Return(entity.CreatedDocument{},
			fmt.Errorf("create estimate: %w: ValidationFault 610: Object Not Found", entity.ErrUpstream))

	resp, err := http.Post(a.server.URL+"/api/estimate", "application/json",
		strings.NewReader(`{"customerId":"999","lines":[{"itemId":"12"}]}`))
	require.NoError(t, err)

	var body api.ErrorResponse
	decodeBody(t, resp, &body)

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "failed to create estimate", body.Message)
	require.Contains(t, body.Description, "Object Not Found")
}

func TestHandler_StaticFallback(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	for _, path := range []string{"/", "/ingest", "/no/such/page"} {
		resp, err := http.Get(a.server.URL + path)
		require.NoError(t, err)

		resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		require.Contains(t, resp.Header.Get("Content-Type"), "text/html", path)
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp, err := http.Get(a.server.URL + "/api/health")
	require.NoError(t, err)

	resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}
