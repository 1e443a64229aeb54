package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/salesdesk/qbo-bridge/internal/entity"
	"github.com/salesdesk/qbo-bridge/web"
)

// @title QuickBooks Bridge API
// @version 1.0
// @description Brokers OAuth-authorized QuickBooks calls for the sales ingest form
// @BasePath /

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/service.go -package=mocks

type Service interface {
	ConnectURL() string
	CompleteAuth(ctx context.Context, code, state, realmID string) error
	SearchItems(ctx context.Context, q string) ([]entity.Item, error)
	SearchCustomers(ctx context.Context, q string) ([]entity.Customer, error)
	CreateInvoice(ctx context.Context, doc entity.SalesDocument) (entity.CreatedDocument, error)
	CreateEstimate(ctx context.Context, doc entity.SalesDocument) (entity.CreatedDocument, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

// Health godoc
// @Summary Service health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("ok\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "health check failed")
	}
}

// Connect godoc
// @Summary Start the QuickBooks OAuth flow
// @Description Redirects the browser to the provider authorization page
// @Tags auth
// @Success 302
// @Router /auth/connect [get]
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.s.ConnectURL(), http.StatusFound)
}

// Callback godoc
// @Summary Complete the QuickBooks OAuth flow
// @Description Exchanges the authorization code for tokens and stores them
// @Tags auth
// @Produce html
// @Param code query string true "Authorization code"
// @Param state query string true "Opaque state value"
// @Param realmId query string false "Company (realm) id"
// @Success 200 {string} string "Confirmation page"
// @Failure 400 {object} ErrorResponse "Missing code or state mismatch"
// @Failure 500 {object} ErrorResponse "Code exchange failed"
// @Router /auth/callback [get]
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	err := h.s.CompleteAuth(ctx, q.Get("code"), q.Get("state"), q.Get("realmId"))
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid OAuth callback")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "OAuth exchange failed")
		}

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprint(w, `<!doctype html>
<html><body>
<h1>Connected to QuickBooks</h1>
<p><a href="/ingest">Continue to the ingest form</a></p>
</body></html>
`)
}

type ItemResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	SKU       string   `json:"sku"`
	UnitPrice float64  `json:"unitPrice"`
	QtyOnHand *float64 `json:"qtyOnHand"`
}

type ItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// Items godoc
// @Summary Search items
// @Description Lists the first page of active items filtered by name substring
// @Tags catalog
// @Produce json
// @Param q query string false "Name filter, case-insensitive substring"
// @Success 200 {object} ItemsResponse
// @Failure 400 {object} ErrorResponse "Not connected"
// @Failure 500 {object} ErrorResponse "Upstream query failed"
// @Router /api/items [get]
func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.s.SearchItems(ctx, r.URL.Query().Get("q"))
	if err != nil {
		sendQueryErr(ctx, w, err, "failed to query items")
		return
	}

	resp := ItemsResponse{Items: make([]ItemResponse, 0, len(items))}

	for _, item := range items {
		out := ItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			SKU:       item.SKU,
			UnitPrice: item.UnitPrice.InexactFloat64(),
		}

		if item.QtyOnHand != nil {
			qty := item.QtyOnHand.InexactFloat64()
			out.QtyOnHand = &qty
		}

		resp.Items = append(resp.Items, out)
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type CustomerResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

type CustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// Customers godoc
// @Summary Search customers
// @Description Lists the first page of customers filtered by name substring
// @Tags catalog
// @Produce json
// @Param q query string false "Name filter, case-insensitive substring"
// @Success 200 {object} CustomersResponse
// @Failure 400 {object} ErrorResponse "Not connected"
// @Failure 500 {object} ErrorResponse "Upstream query failed"
// @Router /api/customers [get]
func (h *Handler) Customers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customers, err := h.s.SearchCustomers(ctx, r.URL.Query().Get("q"))
	if err != nil {
		sendQueryErr(ctx, w, err, "failed to query customers")
		return
	}

	resp := CustomersResponse{Customers: make([]CustomerResponse, 0, len(customers))}

	for _, customer := range customers {
		resp.Customers = append(resp.Customers, CustomerResponse{
			ID:    customer.ID,
			Name:  customer.Name,
			Email: customer.Email,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type CreatedDocumentResponse struct {
	ID          string  `json:"id"`
	DocNumber   string  `json:"docNumber"`
	TotalAmount float64 `json:"totalAmount"`
}

type CreateInvoiceResponse struct {
	OK      bool                    `json:"ok"`
	Invoice CreatedDocumentResponse `json:"invoice"`
}

// CreateInvoice godoc
// @Summary Create an invoice
// @Description Creates an unsent invoice from the ingest form payload
// @Tags documents
// @Accept json
// @Produce json
// @Param SalesDocument body entity.SalesDocument true "Invoice payload"
// @Success 201 {object} CreateInvoiceResponse
// @Failure 400 {object} ErrorResponse "Validation failed or not connected"
// @Failure 500 {object} ErrorResponse "Upstream create failed"
// @Router /api/invoice [post]
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, ok := decodeDocument(ctx, w, r)
	if !ok {
		return
	}

	created, err := h.s.CreateInvoice(ctx, doc)
	if err != nil {
		sendCreateErr(ctx, w, err, "failed to create invoice")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, CreateInvoiceResponse{
		OK:      true,
		Invoice: createdDocumentResponse(created),
	})
}

type CreateEstimateResponse struct {
	OK       bool                    `json:"ok"`
	Estimate CreatedDocumentResponse `json:"estimate"`
}

// CreateEstimate godoc
// @Summary Create an estimate
// @Description Creates an estimate from the ingest form payload
// @Tags documents
// @Accept json
// @Produce json
// @Param SalesDocument body entity.SalesDocument true "Estimate payload"
// @Success 201 {object} CreateEstimateResponse
// @Failure 400 {object} ErrorResponse "Validation failed or not connected"
// @Failure 500 {object} ErrorResponse "Upstream create failed"
// @Router /api/estimate [post]
func (h *Handler) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, ok := decodeDocument(ctx, w, r)
	if !ok {
		return
	}

	created, err := h.s.CreateEstimate(ctx, doc)
	if err != nil {
		sendCreateErr(ctx, w, err, "failed to create estimate")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, CreateEstimateResponse{
		OK:       true,
		Estimate: createdDocumentResponse(created),
	})
}

// Index serves the embedded ingest form. It is also the NotFound fallback.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(web.Index)
}

func decodeDocument(ctx context.Context, w http.ResponseWriter, r *http.Request) (entity.SalesDocument, bool) {
	var doc entity.SalesDocument

	err := json.NewDecoder(r.Body).Decode(&doc)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return entity.SalesDocument{}, false
	}

	return doc, true
}

func createdDocumentResponse(created entity.CreatedDocument) CreatedDocumentResponse {
	return CreatedDocumentResponse{
		ID:          created.ID,
		DocNumber:   created.DocNumber,
		TotalAmount: created.TotalAmount.InexactFloat64(),
	}
}

func sendQueryErr(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entity.ErrNotConnected):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "not connected to QuickBooks")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, msg)
	}
}

func sendCreateErr(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, err.Error())
	case errors.Is(err, entity.ErrNotConnected):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "not connected to QuickBooks")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, msg)
	}
}
