package auth

import (
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	if _, ok := GetClaims(ctx); ok {
		t.Fatal("empty context must not contain claims")
	}

	claims := &TokenClaims{Email: "alice@x.com"}
	ctx = WithClaims(ctx, claims)
	ctx = WithBearerToken(ctx, "tok-1")
	ctx = WithRequestID(ctx, "req-1")

	if got, ok := GetClaims(ctx); !ok || got != claims {
		t.Fatalf("claims round trip failed: %v %v", got, ok)
	}
	if got, ok := GetBearerToken(ctx); !ok || got != "tok-1" {
		t.Fatalf("token round trip failed: %q %v", got, ok)
	}
	if got, ok := GetRequestID(ctx); !ok || got != "req-1" {
		t.Fatalf("request id round trip failed: %q %v", got, ok)
	}
}
