package utils

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("chug-chug")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "chug-chug" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPasswordHash("chug-chug", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestGenerateRandomTokenLength(t *testing.T) {
	tok := GenerateRandomToken(6)
	if len(tok) != 6 {
		t.Fatalf("expected 6 chars, got %d", len(tok))
	}
	if tok == GenerateRandomToken(6) {
		t.Log("tokens collided; possible but suspicious")
	}
}
