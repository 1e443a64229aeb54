package quickbooks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"

	"github.com/salesdesk/qbo-bridge/internal/entity"
	"github.com/salesdesk/qbo-bridge/pkg/config"
	"github.com/salesdesk/qbo-bridge/pkg/transport"
)

const (
	authURL  = "https://appcenter.intuit.com/connect/oauth2"
	tokenURL = "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer"

	sandboxAPIURL    = "https://sandbox-quickbooks.api.intuit.com"
	productionAPIURL = "https://quickbooks.api.intuit.com"

	scopeAccounting = "com.intuit.quickbooks.accounting"

	// minorVersion pins the API revision the response shapes below were
	// written against.
	minorVersion = "65"

	// queryLimit caps every list query. The name filter runs on the
	// returned page, so records past the cap never reach the caller.
	queryLimit = 20

	// agentFieldDefinitionID is the custom field slot that records the
	// originating agent on a sales document.
	agentFieldDefinitionID = "1"

	emailStatusNotSet = "NotSet"
)

type Client struct {
	oauth   oauth2.Config
	baseURL string
	c       *http.Client
}

func NewClient(cfg config.QuickBooks) *Client {
	const timeout = 10 * time.Second

	baseURL := sandboxAPIURL
	if cfg.Environment == "production" {
		baseURL = productionAPIURL
	}

	return &Client{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{scopeAccounting},
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		baseURL: baseURL,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

// AuthCodeURL builds the provider authorization URL the browser is sent to.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange trades an authorization code for a token pair. The realm id is
// not part of the token response; it arrives as a callback query parameter
// and is filled in by the caller.
func (c *Client) Exchange(ctx context.Context, code string) (entity.Credentials, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.c)

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return entity.Credentials{}, fmt.Errorf("exchange authorization code: %w", err)
	}

	return entity.Credentials{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

type queryResponse struct {
	QueryResponse struct {
		Item     []itemRecord     `json:"Item"`
		Customer []customerRecord `json:"Customer"`
	} `json:"QueryResponse"`
}

type itemRecord struct {
	ID             string          `json:"Id"`
	Name           string          `json:"Name"`
	SKU            string          `json:"Sku"`
	UnitPrice      decimal.Decimal `json:"UnitPrice"`
	TrackQtyOnHand bool            `json:"TrackQtyOnHand"`
	QtyOnHand      decimal.Decimal `json:"QtyOnHand"`
}

type customerRecord struct {
	ID               string `json:"Id"`
	DisplayName      string `json:"DisplayName"`
	GivenName        string `json:"GivenName"`
	FamilyName       string `json:"FamilyName"`
	PrimaryEmailAddr *struct {
		Address string `json:"Address"`
	} `json:"PrimaryEmailAddr"`
}

// QueryItems lists the first page of active items.
func (c *Client) QueryItems(ctx context.Context, creds entity.Credentials) ([]entity.Item, error) {
	q := fmt.Sprintf("SELECT * FROM Item WHERE Active = true MAXRESULTS %d", queryLimit)

	var data queryResponse

	err := c.query(ctx, creds, q, &data)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	items := make([]entity.Item, 0, len(data.QueryResponse.Item))

	for _, rec := range data.QueryResponse.Item {
		item := entity.Item{
			ID:        rec.ID,
			Name:      rec.Name,
			SKU:       rec.SKU,
			UnitPrice: rec.UnitPrice,
		}

		if rec.TrackQtyOnHand {
			qty := rec.QtyOnHand
			item.QtyOnHand = &qty
		}

		items = append(items, item)
	}

	return items, nil
}

// QueryCustomers lists the first page of customers.
func (c *Client) QueryCustomers(ctx context.Context, creds entity.Credentials) ([]entity.Customer, error) {
	q := fmt.Sprintf("SELECT * FROM Customer MAXRESULTS %d", queryLimit)

	var data queryResponse

	err := c.query(ctx, creds, q, &data)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}

	customers := make([]entity.Customer, 0, len(data.QueryResponse.Customer))

	for _, rec := range data.QueryResponse.Customer {
		name := rec.DisplayName
		if name == "" {
			name = strings.TrimSpace(rec.GivenName + " " + rec.FamilyName)
		}

		customer := entity.Customer{
			ID:   rec.ID,
			Name: name,
		}

		if rec.PrimaryEmailAddr != nil && rec.PrimaryEmailAddr.Address != "" {
			email := rec.PrimaryEmailAddr.Address
			customer.Email = &email
		}

		customers = append(customers, customer)
	}

	return customers, nil
}

func (c *Client) query(ctx context.Context, creds entity.Credentials, q string, out any) error {
	reqURL := fmt.Sprintf("%s/v3/company/%s/query?query=%s&minorversion=%s",
		c.baseURL, url.PathEscape(creds.RealmID), url.QueryEscape(q), minorVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)

	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return faultError(resp.StatusCode, body)
	}

	err = json.Unmarshal(body, out)
	if err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

type ref struct {
	Value string `json:"value"`
}

type salesItemLineDetail struct {
	ItemRef   ref             `json:"ItemRef"`
	Qty       decimal.Decimal `json:"Qty"`
	UnitPrice decimal.Decimal `json:"UnitPrice"`
}

type salesLine struct {
	DetailType          string              `json:"DetailType"`
	Amount              decimal.Decimal     `json:"Amount"`
	Description         string              `json:"Description"`
	SalesItemLineDetail salesItemLineDetail `json:"SalesItemLineDetail"`
}

type customField struct {
	DefinitionID string `json:"DefinitionId"`
	Name         string `json:"Name"`
	Type         string `json:"Type"`
	StringValue  string `json:"StringValue"`
}

type createDocumentRequest struct {
	CustomerRef ref           `json:"CustomerRef"`
	PrivateNote string        `json:"PrivateNote,omitempty"`
	Line        []salesLine   `json:"Line"`
	CustomField []customField `json:"CustomField,omitempty"`
	EmailStatus string        `json:"EmailStatus,omitempty"`
}

type documentRecord struct {
	ID        string          `json:"Id"`
	DocNumber string          `json:"DocNumber"`
	TotalAmt  decimal.Decimal `json:"TotalAmt"`
}

type createDocumentResponse struct {
	Invoice  *documentRecord `json:"Invoice"`
	Estimate *documentRecord `json:"Estimate"`
}

// CreateInvoice creates an invoice without sending it: the email status is
// always NotSet.
func (c *Client) CreateInvoice(ctx context.Context, creds entity.Credentials, doc entity.SalesDocument) (entity.CreatedDocument, error) {
	reqData := buildDocument(doc)
	reqData.EmailStatus = emailStatusNotSet

	respData, err := c.createDocument(ctx, creds, "invoice", reqData)
	if err != nil {
		return entity.CreatedDocument{}, fmt.Errorf("create invoice: %w", err)
	}

	if respData.Invoice == nil {
		return entity.CreatedDocument{}, fmt.Errorf("%w: response has no invoice", entity.ErrUpstream)
	}

	return createdDocument(respData.Invoice), nil
}

// CreateEstimate creates an estimate. Estimates carry no email status; the
// field does not apply to that document type.
func (c *Client) CreateEstimate(ctx context.Context, creds entity.Credentials, doc entity.SalesDocument) (entity.CreatedDocument, error) {
	reqData := buildDocument(doc)

	respData, err := c.createDocument(ctx, creds, "estimate", reqData)
	if err != nil {
		return entity.CreatedDocument{}, fmt.Errorf("create estimate: %w", err)
	}

	if respData.Estimate == nil {
		return entity.CreatedDocument{}, fmt.Errorf("%w: response has no estimate", entity.ErrUpstream)
	}

	return createdDocument(respData.Estimate), nil
}

func buildDocument(doc entity.SalesDocument) createDocumentRequest {
	lines := doc.NormalizedLines()
	outLines := make([]salesLine, 0, len(lines))

	for _, l := range lines {
		outLines = append(outLines, salesLine{
			DetailType:  "SalesItemLineDetail",
			Amount:      l.Amount,
			Description: l.Description,
			SalesItemLineDetail: salesItemLineDetail{
				ItemRef:   ref{Value: l.ItemID},
				Qty:       l.Qty,
				UnitPrice: l.UnitPrice,
			},
		})
	}

	reqData := createDocumentRequest{
		CustomerRef: ref{Value: doc.CustomerID},
		PrivateNote: doc.PrivateNote(),
		Line:        outLines,
	}

	if doc.AgentName != "" {
		reqData.CustomField = []customField{{
			DefinitionID: agentFieldDefinitionID,
			Name:         "Agent",
			Type:         "StringType",
			StringValue:  doc.AgentName,
		}}
	}

	return reqData
}

func createdDocument(rec *documentRecord) entity.CreatedDocument {
	return entity.CreatedDocument{
		ID:          rec.ID,
		DocNumber:   rec.DocNumber,
		TotalAmount: rec.TotalAmt,
	}
}

func (c *Client) createDocument(ctx context.Context, creds entity.Credentials, kind string, reqData createDocumentRequest) (createDocumentResponse, error) {
	b, err := json.Marshal(reqData)
	if err != nil {
		return createDocumentResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v3/company/%s/%s?minorversion=%s",
		c.baseURL, url.PathEscape(creds.RealmID), kind, minorVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(b))
	if err != nil {
		return createDocumentResponse{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)

	resp, err := c.c.Do(req)
	if err != nil {
		return createDocumentResponse{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return createDocumentResponse{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return createDocumentResponse{}, faultError(resp.StatusCode, body)
	}

	var respData createDocumentResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return createDocumentResponse{}, fmt.Errorf("unmarshal response: %w", err)
	}

	return respData, nil
}

type faultEnvelope struct {
	Fault struct {
		Type  string `json:"type"`
		Error []struct {
			Message string `json:"Message"`
			Detail  string `json:"Detail"`
			Code    string `json:"code"`
		} `json:"Error"`
	} `json:"Fault"`
}

// faultError turns a non-2xx QuickBooks response into an error carrying the
// fault detail verbatim.
func faultError(status int, body []byte) error {
	var env faultEnvelope

	err := json.Unmarshal(body, &env)
	if err == nil && len(env.Fault.Error) > 0 {
		f := env.Fault.Error[0]
		return fmt.Errorf("%w: %s fault %s: %s: %s", entity.ErrUpstream, env.Fault.Type, f.Code, f.Message, f.Detail)
	}

	return fmt.Errorf("%w: bad response status %d: %s", entity.ErrUpstream, status, body)
}
