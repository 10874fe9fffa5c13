package gsi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientPrediction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gsi/prediction" {
			t.Errorf("path = %q, want /gsi/prediction", r.URL.Path)
		}
		if zip := r.URL.Query().Get("zip"); zip != "20257" {
			t.Errorf("zip = %q, want 20257", zip)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"support": "info@example.com",
			"forecast": [
				{"epochtime": 1756382400, "eevalue": 62, "gsi": 62.5, "timeStamp": 1756382400000, "co2_g_standard": 380, "co2_g_oekostrom": 23}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	pred, err := c.Prediction(context.Background(), "20257")
	if err != nil {
		t.Fatalf("Prediction: %v", err)
	}
	if len(pred.Forecast) != 1 {
		t.Fatalf("forecast length = %d, want 1", len(pred.Forecast))
	}
	if pred.Forecast[0].GSI != 62.5 {
		t.Errorf("gsi = %v, want 62.5", pred.Forecast[0].GSI)
	}
	if pred.Support != "info@example.com" {
		t.Errorf("support = %q", pred.Support)
	}
}

func TestClientPredictionUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Prediction(context.Background(), "10405"); err == nil {
		t.Fatal("want error on non-200 upstream status")
	}
}

func TestClientPredictionEscapesZip(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("zip")
		_, _ = w.Write([]byte(`{"forecast":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Prediction(context.Background(), "20 257&x=y"); err != nil {
		t.Fatalf("Prediction: %v", err)
	}
	if gotQuery != "20 257&x=y" {
		t.Errorf("zip reached upstream as %q, want it escaped and round-tripped intact", gotQuery)
	}
}
