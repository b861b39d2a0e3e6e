package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	contractx "github.com/tanpawarit/bank-front-desk/agent/contract"
)

const maxResponseSizeBytes = 2 << 20

// RemoteConfig points the tool layer at a separately hosted record store.
type RemoteConfig struct {
	URL     string        `envconfig:"URL" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// RemoteOption customizes a RemoteStore.
type RemoteOption func(*RemoteStore)

func WithHTTPClient(client *http.Client) RemoteOption {
	return func(s *RemoteStore) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// RemoteStore implements Store against the record-store HTTP service.
// Transport failures and unexpected statuses wrap ErrUpstreamUnavailable so
// the dispatcher can degrade instead of hanging or leaking detail.
type RemoteStore struct {
	baseURL    string
	httpClient *http.Client
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

func NewRemoteStore(cfg RemoteConfig, opts ...RemoteOption) (*RemoteStore, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errors.New("record store url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid record store url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	s := &RemoteStore{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

func (s *RemoteStore) GetAccount(ctx context.Context, id string) (Account, error) {
	var a Account
	if err := s.get(ctx, "/account/"+url.PathEscape(id), &a); err != nil {
		return Account{}, err
	}
	if a.ID == "" {
		a.ID = id
	}
	return a, nil
}

func (s *RemoteStore) GetLoanProduct(ctx context.Context, code string) (LoanProduct, error) {
	var l LoanProduct
	if err := s.get(ctx, "/loan/"+url.PathEscape(code), &l); err != nil {
		return LoanProduct{}, err
	}
	if l.Code == "" {
		l.Code = code
	}
	return l, nil
}

func (s *RemoteStore) CreateAppointment(ctx context.Context, accountID, date, timeOfDay string) (Appointment, error) {
	payload, err := json.Marshal(map[string]string{
		"account_id": accountID,
		"date":       date,
		"time":       timeOfDay,
	})
	if err != nil {
		return Appointment{}, fmt.Errorf("marshal appointment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/appointment", bytes.NewReader(payload))
	if err != nil {
		return Appointment{}, fmt.Errorf("build appointment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var appt Appointment
	if err := s.do(req, &appt); err != nil {
		return Appointment{}, err
	}
	return appt, nil
}

func (s *RemoteStore) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build record store request: %w", err)
	}
	return s.do(req, out)
}

func (s *RemoteStore) do(req *http.Request, out any) error {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", contractx.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", contractx.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: record store status=%d", contractx.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: decode response: %v", contractx.ErrUpstreamUnavailable, err)
	}
	if env.Status != "success" {
		msg := strings.TrimSpace(env.Message)
		if msg == "" {
			msg = "record store reported an error"
		}
		return fmt.Errorf("%w: %s", contractx.ErrNotFound, msg)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: decode data: %v", contractx.ErrUpstreamUnavailable, err)
		}
	}
	return nil
}
