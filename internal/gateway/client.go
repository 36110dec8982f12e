package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/contract-console/internal/model"
)

// ErrGateway wraps every transport failure and non-success response. The
// console does not distinguish failure classes: any call that did not
// succeed is surfaced to the operator the same way.
var ErrGateway = errors.New("gateway error")

type ContractInput struct {
	ContractName string `json:"contract_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

type PointInput struct {
	ContractID uuid.UUID `json:"contract_id"`
	Point      string    `json:"point"`
	Value      string    `json:"value"`
}

// Client is the typed REST client for the contract gateway. One Client
// serves one operator session; SetToken installs the session token issued
// at login.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
}

// Login exchanges operator credentials for a session token and installs it
// on the client.
func (c *Client) Login(ctx context.Context, id, password string) error {
	var resp loginResponse
	body := map[string]string{"id": id, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return err
	}
	c.token = resp.AccessToken
	return nil
}

func (c *Client) ListContracts(ctx context.Context) ([]model.Contract, error) {
	var contracts []model.Contract
	if err := c.do(ctx, http.MethodGet, "/contracts", nil, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

func (c *Client) ListContractSummaries(ctx context.Context) ([]model.ContractSummary, error) {
	var summaries []model.ContractSummary
	if err := c.do(ctx, http.MethodGet, "/contracts_with_points", nil, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (c *Client) CreateContract(ctx context.Context, input ContractInput) (*model.Contract, error) {
	var created model.Contract
	if err := c.do(ctx, http.MethodPost, "/add_contract", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateContract(ctx context.Context, id uuid.UUID, input ContractInput) (*model.Contract, error) {
	var updated model.Contract
	if err := c.do(ctx, http.MethodPut, "/update_contract/"+id.String(), input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteContract(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/delete_contract/"+id.String(), nil, nil)
}

func (c *Client) ListPoints(ctx context.Context, contractID uuid.UUID) ([]model.Point, error) {
	var points []model.Point
	if err := c.do(ctx, http.MethodGet, "/get_points/"+contractID.String(), nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (c *Client) CreatePoint(ctx context.Context, input PointInput) (*model.Point, error) {
	var created model.Point
	if err := c.do(ctx, http.MethodPost, "/add_point", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePoint(ctx context.Context, id uuid.UUID, input PointInput) (*model.Point, error) {
	var updated model.Point
	if err := c.do(ctx, http.MethodPut, "/update_point/"+id.String(), input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePoint(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/delete_point/"+id.String(), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrGateway, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGateway, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %s %s: status %d: %s", ErrGateway, method, path, resp.StatusCode, bytes.TrimSpace(payload))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrGateway, err)
	}
	return nil
}
