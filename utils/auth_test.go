package utils

import (
	"testing"

	"cleaning-service-server/config"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
		},
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "Sup3rSecret" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPasswordHash("Sup3rSecret", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	setupTestConfig(t)

	token, err := GenerateToken(42, "customer")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "customer" {
		t.Errorf("Role = %q, want customer", claims.Role)
	}
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	setupTestConfig(t)

	token, err := GenerateToken(42, "admin")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := VerifyToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
	if _, err := VerifyToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}

	// Token signed with a different secret must fail
	config.AppConfig.JWT.Secret = "rotated-secret"
	if _, err := VerifyToken(token); err == nil {
		t.Error("token accepted after secret rotation")
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"strong", "Abcdef12", false},
		{"too short", "Ab1", true},
		{"no uppercase", "abcdef12", true},
		{"no lowercase", "ABCDEF12", true},
		{"no digit", "Abcdefgh", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePasswordStrength(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}
