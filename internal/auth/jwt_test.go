package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("super-secret", time.Minute, time.Hour)
	pair, err := m.IssuePair(42)
	if err != nil {
		t.Fatalf("IssuePair error: %v", err)
	}

	claims, err := m.Parse(pair.Access, AccessToken)
	if err != nil {
		t.Fatalf("Parse access error: %v", err)
	}
	id, err := claims.UserID()
	if err != nil || id != 42 {
		t.Fatalf("UserID mismatch: got %d, %v", id, err)
	}
	if claims.ID == "" {
		t.Fatal("expected jti to be set")
	}

	if _, err := m.Parse(pair.Refresh, RefreshToken); err != nil {
		t.Fatalf("Parse refresh error: %v", err)
	}
}

func TestParse_WrongType(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret", time.Minute, time.Hour)
	pair, err := m.IssuePair(1)
	if err != nil {
		t.Fatalf("IssuePair error: %v", err)
	}

	_, err = m.Parse(pair.Refresh, AccessToken)
	if !errors.Is(err, ErrInvalidToken) || !errors.Is(err, ErrWrongTokenType) {
		t.Fatalf("refresh accepted as access: %v", err)
	}
	_, err = m.Parse(pair.Access, RefreshToken)
	if !errors.Is(err, ErrWrongTokenType) {
		t.Fatalf("access accepted as refresh: %v", err)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret", time.Minute, time.Hour)
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }
	tok, err := m.IssueAccess(1)
	if err != nil {
		t.Fatalf("IssueAccess error: %v", err)
	}

	m.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	if _, err := m.Parse(tok, AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right", time.Minute, time.Hour).IssueAccess(1)
	if err != nil {
		t.Fatalf("IssueAccess error: %v", err)
	}
	if _, err := NewTokenManager("wrong", time.Minute, time.Hour).Parse(tok, AccessToken); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		TokenType: AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tok, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := NewTokenManager("k", time.Minute, time.Hour).Parse(tok, AccessToken); err == nil {
		t.Fatal("expected alg=none token to be rejected")
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenManager("k", time.Minute, time.Hour).Parse("not.a.jwt", AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestClaimsUserID_BadSubject(t *testing.T) {
	t.Parallel()

	c := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "abc"}}
	if _, err := c.UserID(); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
