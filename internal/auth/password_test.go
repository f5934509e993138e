package auth

import "testing"

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	h1, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password must differ (salt)")
	}
	if !CheckPassword(h1, "correct horse battery staple") {
		t.Fatal("hash does not verify against its password")
	}
	if !CheckPassword(h2, "correct horse battery staple") {
		t.Fatal("second hash does not verify against its password")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password verified")
	}
	if CheckPassword(hash, "") {
		t.Fatal("empty password verified")
	}
	if CheckPassword("not-a-bcrypt-hash", "s3cret") {
		t.Fatal("malformed hash verified")
	}
	if CheckPassword("", "s3cret") {
		t.Fatal("empty hash verified")
	}
}
