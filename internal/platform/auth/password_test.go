package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("metacore@admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "metacore@admin123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "metacore@admin123") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected mismatched password to fail")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same")
	if err != nil {
		t.Fatal(err)
	}
	b, err := HashPassword("same")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("expected distinct salts to produce distinct hashes")
	}
}
