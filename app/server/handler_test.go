package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/samber/do"
	"github.com/sejalchopra/dental-ai-chatbot/app/config"
	"github.com/sejalchopra/dental-ai-chatbot/app/service/proposal"
	"github.com/sejalchopra/dental-ai-chatbot/app/service/resolver"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	di := do.New()
	t.Cleanup(func() { _ = di.Shutdown() })

	do.ProvideValue(di, &config.Config{
		Server: config.Server{Addr: ":0"},
	})
	do.Provide(di, proposal.New)
	do.Provide(di, resolver.New)

	srv, err := New(di)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return srv
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("got status %d", resp.StatusCode)
	}

	var body struct {
		Status  string `json:"status"`
		Service string `json:"service"`
		UseLLM  bool   `json:"use_llm"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Status != "ok" || body.Service != "dental-ai-chatbot" {
		t.Fatalf("got %+v", body)
	}
	if body.UseLLM {
		t.Fatal("use_llm must be false for the test config")
	}
}

func simulate(t *testing.T, srv *Server, payload string) resolver.Result {
	t.Helper()

	req := httptest.NewRequest("POST", "/simulate", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("got status %d: %s", resp.StatusCode, raw)
	}

	var result resolver.Result
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	return result
}

func TestHandleSimulateFallback(t *testing.T) {
	srv := newTestServer(t)

	result := simulate(t, srv, `{"message":"hello","user_id":"u1"}`)
	if result.Intent != resolver.IntentChat {
		t.Fatalf("got intent %q, want chat", result.Intent)
	}
	if result.UserID != "u1" {
		t.Fatalf("got user_id %q", result.UserID)
	}
	if result.Input != "hello" {
		t.Fatalf("got input %q", result.Input)
	}
}

func TestHandleSimulateProposeConfirm(t *testing.T) {
	srv := newTestServer(t)

	proposed := simulate(t, srv, `{"message":"can I come friday at 2pm?","session_id":"s1"}`)
	if proposed.Intent != resolver.IntentPropose {
		t.Fatalf("got intent %q, want propose", proposed.Intent)
	}
	if proposed.AppointmentCandidate == nil {
		t.Fatal("expected a candidate")
	}
	if !proposed.NeedsConfirmation {
		t.Fatal("propose must need confirmation")
	}

	confirmed := simulate(t, srv, `{"message":"yes","session_id":"s1"}`)
	if confirmed.Intent != resolver.IntentConfirm {
		t.Fatalf("got intent %q, want confirm", confirmed.Intent)
	}
	if confirmed.AppointmentCandidate == nil ||
		*confirmed.AppointmentCandidate != *proposed.AppointmentCandidate {
		t.Fatalf("confirm candidate = %v, want %v",
			confirmed.AppointmentCandidate, proposed.AppointmentCandidate)
	}
}

func TestHandleSimulateMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("POST", "/simulate", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 400 {
		t.Fatalf("got status %d, want 400", resp.StatusCode)
	}
}
