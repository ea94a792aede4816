package auth

import (
	"testing"
	"time"
)

func TestMakeJWTHandlerRejectsShortSecret(t *testing.T) {
	if _, err := MakeJWTHandler([]byte("short"), time.Hour); err == nil {
		t.Fatalf("expected error for short secret")
	}
}

func TestGenerateAndValidate(t *testing.T) {
	h, err := MakeJWTHandler([]byte("0123456789abcdef"), time.Hour)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}

	token, err := h.Generate("user-uuid", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := h.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if claims.UserUUID != "user-uuid" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	signer, _ := MakeJWTHandler([]byte("0123456789abcdef"), time.Hour)
	verifier, _ := MakeJWTHandler([]byte("fedcba9876543210"), time.Hour)

	token, err := signer.Generate("user-uuid", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.Validate(token); err == nil {
		t.Fatalf("expected token signed with a different secret to fail")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	h, _ := MakeJWTHandler([]byte("0123456789abcdef"), -time.Minute)

	token, err := h.Generate("user-uuid", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := h.Validate(token); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}
