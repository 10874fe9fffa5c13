package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hausenergie/energymon/internal/config"
	"github.com/hausenergie/energymon/internal/utils"
)

const authTestSecret = "handler-test-secret"

func newContext(t *testing.T, method, target, body, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBearerUserID(t *testing.T) {
	at, err := utils.NewAccessToken(authTestSecret, 42, "lukas21", 60)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	foreign, err := utils.NewAccessToken("some-other-secret", 42, "lukas21", 60)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   uint64
	}{
		{"valid bearer", "Bearer " + at.Token, 42},
		{"missing header", "", 0},
		{"wrong scheme", "Basic abc", 0},
		{"garbage token", "Bearer not.a.jwt", 0},
		{"foreign secret", "Bearer " + foreign.Token, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newContext(t, http.MethodPost, "/logout", "", tc.header)
			if got := bearerUserID(c, authTestSecret); got != tc.want {
				t.Errorf("bearerUserID = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLogoutWithoutAnyCredential(t *testing.T) {
	h := NewAuthHandler(config.Config{JWTSecret: authTestSecret}, nil, nil)

	// No refresh token and no bearer: nothing identifies a session.
	c, rec := newContext(t, http.MethodPost, "/logout", `{}`, "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLogoutInvalidBearerWithoutRefresh(t *testing.T) {
	h := NewAuthHandler(config.Config{JWTSecret: authTestSecret}, nil, nil)

	// A bearer that fails verification must not select the revoke-all path.
	c, rec := newContext(t, http.MethodPost, "/logout", "", "Bearer bogus")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
