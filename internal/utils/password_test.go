package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash equals the plain password")
	}
	if !VerifyPassword(hash, "password123") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "Password123") {
		t.Error("wrong password accepted")
	}
	if VerifyPassword("", "password123") {
		t.Error("empty hash accepted")
	}
}
