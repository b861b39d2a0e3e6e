package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	classifierx "github.com/tanpawarit/bank-front-desk/agent/classifier"
	dispatcherx "github.com/tanpawarit/bank-front-desk/agent/dispatcher"
	storex "github.com/tanpawarit/bank-front-desk/agent/store"
	toolx "github.com/tanpawarit/bank-front-desk/agent/tool"
)

type cannedGenerator struct {
	reply string
}

func (g cannedGenerator) Generate(context.Context, string) (string, error) {
	return g.reply, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := storex.NewMemoryStore()
	registry := toolx.NewFrontDesk(st)
	d, err := dispatcherx.New(classifierx.NewKeyword(), registry, cannedGenerator{reply: "I can help with accounts, loans, and appointments."})
	if err != nil {
		t.Fatalf("build dispatcher: %v", err)
	}

	srv, err := New(d, st, registry, Config{RequestTimeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("build server: %v", err)
	}

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func getJSON(t *testing.T, url string) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestQueryEndpointAccountBalance(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/query", `{"text":"account balance for 123456"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	body := decode[queryResponse](t, resp)
	for _, want := range []string{"123456", "5000", "John Doe"} {
		if !strings.Contains(body.Response, want) {
			t.Fatalf("response %q missing %q", body.Response, want)
		}
	}
}

func TestQueryEndpointFallback(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/query", `{"text":"hello, how are you"}`)
	body := decode[queryResponse](t, resp)
	if body.Response != "I can help with accounts, loans, and appointments." {
		t.Fatalf("unexpected response: %q", body.Response)
	}
}

func TestQueryEndpointBadBody(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/query", `{not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestAccountEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := getJSON(t, ts.URL+"/account/789012")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	body := decode[struct {
		Status string         `json:"status"`
		Data   storex.Account `json:"data"`
	}](t, resp)
	if body.Status != "success" {
		t.Fatalf("unexpected envelope status: %s", body.Status)
	}
	if body.Data.HolderName != "Jane Smith" || body.Data.Balance != 15000.00 {
		t.Fatalf("unexpected account: %+v", body.Data)
	}
}

func TestAccountEndpointNotFound(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := getJSON(t, ts.URL+"/account/000000")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("business miss keeps HTTP 200, got %d", resp.StatusCode)
	}

	body := decode[storeEnvelope](t, resp)
	if body.Status != "error" || body.Message != "Account not found" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestLoanEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := getJSON(t, ts.URL+"/loan/home_loan")
	body := decode[struct {
		Status string             `json:"status"`
		Data   storex.LoanProduct `json:"data"`
	}](t, resp)
	if body.Status != "success" {
		t.Fatalf("unexpected envelope status: %s", body.Status)
	}
	if body.Data.InterestRate != 5.5 || body.Data.MaxAmount != 1000000 || body.Data.TenureYears != 20 {
		t.Fatalf("unexpected loan: %+v", body.Data)
	}
}

func TestAppointmentEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/appointment", `{"account_id":"123456","date":"2025-07-10","time":"10:00 AM"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	body := decode[struct {
		Status string             `json:"status"`
		Data   storex.Appointment `json:"data"`
	}](t, resp)
	if body.Status != "success" {
		t.Fatalf("unexpected envelope status: %s", body.Status)
	}
	if body.Data.Confirmation != "APPT-1" {
		t.Fatalf("unexpected confirmation: %s", body.Data.Confirmation)
	}
}

func TestToolEndpointAccountBalance(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/tools/account_balance", `{"account_id":"123456"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	body := decode[toolResult](t, resp)
	if !strings.Contains(body.Result, "John Doe") {
		t.Fatalf("unexpected result: %q", body.Result)
	}
}

func TestToolEndpointLoanNotFound(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/tools/loan_details", `{"loan_type":"car_loan"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	body := decode[errorDetail](t, resp)
	if body.Detail != "Loan type not found" {
		t.Fatalf("unexpected detail: %q", body.Detail)
	}
}

func TestToolEndpointScheduleAppointment(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/tools/schedule_appointment", `{"account_id":"789012","date":"2025-08-01","time":"2:00 PM"}`)
	body := decode[toolResult](t, resp)
	for _, want := range []string{"789012", "2025-08-01", "2:00 PM", "APPT-1"} {
		if !strings.Contains(body.Result, want) {
			t.Fatalf("result %q missing %q", body.Result, want)
		}
	}
}

func TestToolEndpointUnknownTool(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/tools/transfer_funds", `{}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}
