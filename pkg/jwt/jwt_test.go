package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"hospital-records/config"

	"github.com/golang-jwt/jwt/v5"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret-key-for-unit-tests-only",
		Issuer:        "hospital-records-test",
		QRTokenExpiry: 30 * 24 * time.Hour,
	})
}

func TestAppointmentToken_RoundTrip(t *testing.T) {
	svc := newTestService()

	for _, id := range []int64{1, 42, 9_000_000_001} {
		token, err := svc.GenerateAppointmentToken(id)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		claims, err := svc.ValidateAppointmentToken(token)
		if err != nil {
			t.Fatalf("validate token: %v", err)
		}
		if claims.PatientID != id {
			t.Errorf("expected patient id %d, got %d", id, claims.PatientID)
		}
		if claims.ID == "" {
			t.Error("expected token id to be set")
		}
	}
}

func TestAppointmentToken_ExpiresAfterTTL(t *testing.T) {
	svc := newTestService()
	issuedAt := time.Now().Add(-31 * 24 * time.Hour)

	token, err := svc.WithClock(func() time.Time { return issuedAt }).GenerateAppointmentToken(7)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, err = svc.ValidateAppointmentToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if errors.Is(err, ErrTokenInvalid) {
		t.Fatal("expired token must not be reported as invalid")
	}
}

func TestAppointmentToken_ValidJustBeforeExpiry(t *testing.T) {
	svc := newTestService()
	issuedAt := time.Now()

	token, err := svc.WithClock(func() time.Time { return issuedAt }).GenerateAppointmentToken(7)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	almostExpired := svc.WithClock(func() time.Time { return issuedAt.Add(svc.GetQRTokenExpiry() - time.Minute) })
	if _, err := almostExpired.ValidateAppointmentToken(token); err != nil {
		t.Fatalf("expected token to be valid before expiry, got %v", err)
	}

	expired := svc.WithClock(func() time.Time { return issuedAt.Add(svc.GetQRTokenExpiry() + time.Second) })
	if _, err := expired.ValidateAppointmentToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired after TTL, got %v", err)
	}
}

func TestAppointmentToken_TamperedBytesAreInvalid(t *testing.T) {
	svc := newTestService()
	token, err := svc.GenerateAppointmentToken(99)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	for i := 0; i < len(token); i++ {
		replacement := byte('A')
		if token[i] == 'A' {
			replacement = 'B'
		}
		if token[i] == '.' {
			replacement = alphabet[i%len(alphabet)]
		}

		tampered := token[:i] + string(replacement) + token[i+1:]
		_, err := svc.ValidateAppointmentToken(tampered)
		if !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("byte %d: expected ErrTokenInvalid, got %v", i, err)
		}
	}
}

func TestAppointmentToken_ExpiredAndTamperedIsInvalid(t *testing.T) {
	svc := newTestService()
	past := svc.WithClock(func() time.Time { return time.Now().Add(-60 * 24 * time.Hour) })
	token, err := past.GenerateAppointmentToken(3)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	last := token[len(token)-1]
	replacement := "A"
	if last == 'A' {
		replacement = "Q"
	}
	tampered := token[:len(token)-1] + replacement

	if _, err := svc.ValidateAppointmentToken(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateAppointmentToken_Rejects(t *testing.T) {
	svc := newTestService()

	otherSecret := NewJWTService(config.JWTConfig{
		Secret:        "another-secret",
		Issuer:        "hospital-records-test",
		QRTokenExpiry: time.Hour,
	})
	foreign, err := otherSecret.GenerateAppointmentToken(1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	otherIssuer := NewJWTService(config.JWTConfig{
		Secret:        "test-secret-key-for-unit-tests-only",
		Issuer:        "someone-else",
		QRTokenExpiry: time.Hour,
	})
	wrongIssuer, err := otherIssuer.GenerateAppointmentToken(1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, AppointmentClaims{PatientID: 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two segments", "abc.def"},
		{"different secret", foreign},
		{"different issuer", wrongIssuer},
		{"alg none", noneToken},
		{"trailing whitespace", foreign + " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAppointmentToken(tt.token)
			if !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("expected ErrTokenInvalid, got %v", err)
			}
		})
	}
}

func TestValidateAppointmentToken_RequiresExpiry(t *testing.T) {
	svc := newTestService()
	claims := AppointmentClaims{
		PatientID:        5,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "hospital-records-test"},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret-key-for-unit-tests-only"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ValidateAppointmentToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for token without exp, got %v", err)
	}
	if !strings.Contains(token, ".") {
		t.Fatal("expected a compact serialized token")
	}
}
