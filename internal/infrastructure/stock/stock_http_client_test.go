package stock

import (
	"context"
	"encoding/json"
	"errors"
	"mecanica_xpto/internal/usecase/interfaces"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewHTTPClient(srv.URL, time.Second, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return c
}

func TestNewHTTPClient(t *testing.T) {
	if _, err := NewHTTPClient("", time.Second, false, zerolog.Nop()); !errors.Is(err, ErrMissingStockServiceURL) {
		t.Fatalf("expected ErrMissingStockServiceURL, got %v", err)
	}
	if _, err := NewHTTPClient("not a url", time.Second, false, zerolog.Nop()); err == nil {
		t.Fatalf("expected invalid url error")
	}
	c, err := NewHTTPClient("", time.Second, true, zerolog.Nop())
	if err != nil || !c.mockMode {
		t.Fatalf("expected mock client, got %+v %v", c, err)
	}
}

func TestHTTPClient_MockMode(t *testing.T) {
	c, _ := NewHTTPClient("", time.Second, true, zerolog.Nop())

	ok, err := c.CheckAvailability(context.Background(), "item-1", 3)
	if err != nil || !ok {
		t.Fatalf("expected available, got %v %v", ok, err)
	}
	ack, err := c.DeductQuantity(context.Background(), "os-1", "att-1", "item-1", 3)
	if err != nil || !ack.Confirmed || ack.RequestID == "" {
		t.Fatalf("expected confirmed mock ack, got %+v %v", ack, err)
	}
}

func TestHTTPClient_CheckAvailability(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || r.URL.Path != "/estoque/itens/item-1/disponibilidade" || r.URL.Query().Get("quantidade") != "3" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL)
			}
			_, _ = w.Write([]byte(`{"item_id":"item-1","disponivel":true,"quantidade_solicitada":3,"quantidade_em_estoque":10}`))
		})
		ok, err := c.CheckAvailability(context.Background(), "item-1", 3)
		if err != nil || !ok {
			t.Fatalf("expected available, got %v %v", ok, err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, err := c.CheckAvailability(context.Background(), "item-9", 1)
		if !errors.Is(err, interfaces.ErrStockRejected) {
			t.Fatalf("expected ErrStockRejected, got %v", err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		})
		_, err := c.CheckAvailability(context.Background(), "item-1", 1)
		if err == nil || errors.Is(err, interfaces.ErrStockRejected) {
			t.Fatalf("expected transient error, got %v", err)
		}
	})
}

func TestHTTPClient_DeductQuantity(t *testing.T) {
	t.Run("confirmed synchronously", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/estoque/itens/item-1/baixas" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL)
			}
			if r.Header.Get("Idempotency-Key") != "att-1:item-1" {
				t.Errorf("unexpected idempotency key %q", r.Header.Get("Idempotency-Key"))
			}
			var body deductionRequest
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ServiceOrderID != "os-1" || body.AttemptID != "att-1" || body.Quantity != 2 {
				t.Errorf("unexpected body %+v %v", body, err)
			}
			_, _ = w.Write([]byte(`{"request_id":"req-1","status":"confirmada"}`))
		})
		ack, err := c.DeductQuantity(context.Background(), "os-1", "att-1", "item-1", 2)
		if err != nil || !ack.Confirmed || ack.RequestID != "req-1" {
			t.Fatalf("unexpected ack %+v %v", ack, err)
		}
	})

	t.Run("accepted for later", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`{"request_id":"req-2","status":"pendente"}`))
		})
		ack, err := c.DeductQuantity(context.Background(), "os-1", "att-1", "item-1", 2)
		if err != nil || ack.Confirmed || ack.RequestID != "req-2" {
			t.Fatalf("unexpected ack %+v %v", ack, err)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"erro":"saldo insuficiente"}`, http.StatusConflict)
		})
		_, err := c.DeductQuantity(context.Background(), "os-1", "att-1", "item-1", 2)
		if !errors.Is(err, interfaces.ErrStockRejected) {
			t.Fatalf("expected ErrStockRejected, got %v", err)
		}
	})

	t.Run("without attempt the key falls back to the order", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Idempotency-Key") != "os-1:item-1" {
				t.Errorf("unexpected idempotency key %q", r.Header.Get("Idempotency-Key"))
			}
			_, _ = w.Write([]byte(`{"request_id":"req-3","status":"confirmada"}`))
		})
		if _, err := c.DeductQuantity(context.Background(), "os-1", "", "item-1", 1); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	})

	t.Run("garbage body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})
		if _, err := c.DeductQuantity(context.Background(), "os-1", "att-1", "item-1", 2); err == nil {
			t.Fatalf("expected decode error")
		}
	})
}
