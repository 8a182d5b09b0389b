package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple", "hunter2"},
		{"long", strings.Repeat("correct horse battery staple ", 8)},
		{"unicode", "pässwörd-§ß"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if !strings.HasPrefix(hash, "$argon2id$") {
				t.Errorf("Hash() = %q, want argon2id PHC prefix", hash)
			}
			if err := Verify(hash, tt.password); err != nil {
				t.Errorf("Verify() error = %v, want nil", err)
			}
			if err := Verify(hash, tt.password+"x"); err != ErrMismatch {
				t.Errorf("Verify() with wrong password error = %v, want ErrMismatch", err)
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("same-password")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := Hash("same-password")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salt is not random")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want error
	}{
		{"empty", "", ErrInvalidHash},
		{"not a hash", "plaintext", ErrInvalidHash},
		{"wrong algorithm", "$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA", ErrInvalidHash},
		{"bad version", "$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA", ErrIncompatibleVersion},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA", ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Verify(tt.hash, "whatever"); err != tt.want {
				t.Errorf("Verify() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestHashWithParams(t *testing.T) {
	p := LowMemoryParams()
	hash, err := HashWithParams("secret", p)
	if err != nil {
		t.Fatalf("HashWithParams() error = %v", err)
	}
	if !strings.Contains(hash, "m=32768,t=4,p=2") {
		t.Errorf("encoded hash %q does not carry the requested parameters", hash)
	}
	if !Match(hash, "secret") {
		t.Error("Match() = false, want true")
	}
}
