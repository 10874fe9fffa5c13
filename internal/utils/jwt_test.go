package utils

import "testing"

func TestAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"

	at, err := NewAccessToken(secret, 42, "lukas21", 60)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if at.Token == "" {
		t.Fatal("empty token string")
	}

	claims, err := ParseAccessToken(secret, at.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "lukas21" {
		t.Errorf("Username = %q, want lukas21", claims.Username)
	}
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	at, err := NewAccessToken("secret-a", 7, "sofiaM2", 60)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := ParseAccessToken("secret-b", at.Token); err == nil {
		t.Fatal("want error for token signed with a different secret")
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	at, err := NewAccessToken("secret", 7, "sofiaM2", -1)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := ParseAccessToken("secret", at.Token); err == nil {
		t.Fatal("want error for expired token")
	}
}

func TestParseAccessTokenGarbage(t *testing.T) {
	if _, err := ParseAccessToken("secret", "not.a.jwt"); err == nil {
		t.Fatal("want error for malformed token")
	}
}

func TestNewRefreshToken(t *testing.T) {
	a, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	b, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if len(a.Raw) != 96 {
		t.Errorf("raw token length = %d, want 96 hex chars", len(a.Raw))
	}
	if a.Raw == b.Raw {
		t.Error("two refresh tokens are identical")
	}
	if HashRefreshRaw(a.Raw) == HashRefreshRaw(b.Raw) {
		t.Error("distinct tokens hash to the same value")
	}
	if len(HashRefreshRaw(a.Raw)) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(HashRefreshRaw(a.Raw)))
	}
}
