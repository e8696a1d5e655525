package encrypter_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"ai-task-planner/pkg/encrypter"
)

func TestEncrypter(t *testing.T) {
	enc := encrypter.New(bcrypt.MinCost)

	hash, err := enc.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("expected hash to differ from password")
	}
	if !enc.CheckPasswordHash("correct horse", hash) {
		t.Error("expected password to match its hash")
	}
	if enc.CheckPasswordHash("wrong horse", hash) {
		t.Error("expected wrong password to be rejected")
	}
	if enc.CheckPasswordHash("correct horse", "not-a-hash") {
		t.Error("expected malformed hash to be rejected")
	}
}
