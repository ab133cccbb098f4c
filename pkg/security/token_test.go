package security

import (
	"strings"
	"testing"

	"github.com/vanari-rv/caravan-configurator/pkg/config"
)

func testConfig() config.ResetTokenConfig {
	return config.ResetTokenConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func TestHashAndVerifyToken(t *testing.T) {
	token, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	encoded, err := HashToken(token, testConfig())
	if err != nil {
		t.Fatalf("hash token: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("unexpected hash format %q", encoded)
	}

	ok, err := VerifyToken(token, encoded)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if !ok {
		t.Fatal("expected token to verify")
	}

	ok, err = VerifyToken("wrong-token", encoded)
	if err != nil {
		t.Fatalf("verify wrong token: %v", err)
	}
	if ok {
		t.Fatal("wrong token must not verify")
	}
}

func TestHashTokenRejectsEmpty(t *testing.T) {
	if _, err := HashToken("", testConfig()); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestVerifyTokenMalformedHash(t *testing.T) {
	if _, err := VerifyToken("token", "not-a-hash"); err != ErrInvalidHash {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
}

func TestGenerateResetTokenUnique(t *testing.T) {
	a, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct tokens")
	}
}
