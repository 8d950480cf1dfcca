package crypto

import (
	"strings"
	"testing"
)

// cheapParams keeps the tests fast; the encoding is the same.
var cheapParams = HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestHashPasswordFormat(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("HashPassword() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("HashPassword() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("HashPassword() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("HashPassword() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := cheapParams.Hash("my-secure-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	tests := []struct {
		password string
		want     bool
	}{
		{"my-secure-password", true},
		{"wrong-password", false},
		{"", false},
	}
	for _, tt := range tests {
		got, err := VerifyPassword(tt.password, hash)
		if err != nil {
			t.Fatalf("VerifyPassword(%q) unexpected error: %v", tt.password, err)
		}
		if got != tt.want {
			t.Errorf("VerifyPassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestHashSaltsDiffer(t *testing.T) {
	a, err := cheapParams.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	b, err := cheapParams.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	if a == b {
		t.Error("Hash() produced identical hashes for same password")
	}
}

func TestVerifyPasswordInvalidHash(t *testing.T) {
	tests := []struct {
		hash    string
		wantErr error
	}{
		{"invalid-hash-format", ErrInvalidHashFormat},
		{"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5", ErrInvalidHashFormat},
		{"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$a2V5", ErrIncompatibleVersion},
		{"$argon2id$v=19$m=1,t=1,p=1$!!!$a2V5", ErrInvalidHashFormat},
	}
	for _, tt := range tests {
		if _, err := VerifyPassword("password", tt.hash); err != tt.wantErr {
			t.Errorf("VerifyPassword(%q) error = %v, want %v", tt.hash, err, tt.wantErr)
		}
	}
}
