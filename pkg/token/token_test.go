package token

import (
	"strings"
	"testing"
)

func TestSessionTokenRoundtrip(t *testing.T) {
	GenerateSecretKey()

	tokenStr, err := IssueSessionToken(42)
	if err != nil {
		t.Fatalf("IssueSessionToken returned error: %v", err)
	}

	payload, ok := ValidateSessionToken(tokenStr)
	if !ok {
		t.Fatal("expected freshly issued token to validate")
	}
	if payload.UserID != 42 {
		t.Errorf("UserID = %d, want 42", payload.UserID)
	}
	if payload.SessionID == "" {
		t.Error("SessionID should not be empty")
	}
}

func TestSessionTokenUniqueSessionIDs(t *testing.T) {
	GenerateSecretKey()

	a, err := IssueSessionToken(1)
	if err != nil {
		t.Fatalf("IssueSessionToken returned error: %v", err)
	}
	b, err := IssueSessionToken(1)
	if err != nil {
		t.Fatalf("IssueSessionToken returned error: %v", err)
	}

	pa, _ := ValidateSessionToken(a)
	pb, _ := ValidateSessionToken(b)
	if pa.SessionID == pb.SessionID {
		t.Error("two issued tokens share the same session ID")
	}
}

func TestValidateSessionTokenRejectsTampering(t *testing.T) {
	GenerateSecretKey()

	tokenStr, err := IssueSessionToken(7)
	if err != nil {
		t.Fatalf("IssueSessionToken returned error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"missing separator", strings.ReplaceAll(tokenStr, ".", "")},
		{"truncated signature", tokenStr[:len(tokenStr)-4]},
		{"swapped payload", "eyJzIjoieCIsInUiOjk5LCJ0IjowfQ." + strings.SplitN(tokenStr, ".", 2)[1]},
		{"empty", ""},
		{"garbage", "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ValidateSessionToken(tt.token); ok {
				t.Errorf("token %q should not validate", tt.token)
			}
		})
	}
}

func TestValidateRejectsTokenFromDifferentKey(t *testing.T) {
	GenerateSecretKey()
	tokenStr, err := IssueSessionToken(3)
	if err != nil {
		t.Fatalf("IssueSessionToken returned error: %v", err)
	}

	// 重新生成密钥后，旧令牌必须全部失效
	GenerateSecretKey()
	if _, ok := ValidateSessionToken(tokenStr); ok {
		t.Error("token issued under the old key should not validate after key rotation")
	}
}
