package pkglog

import (
	"context"
	"testing"
)

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	if got := GetCorrelationID(ctx); got != "" {
		t.Fatalf("expected empty correlation id, got %q", got)
	}

	ctx = SetCorrelationID(ctx, "cid-123")
	if got := GetCorrelationID(ctx); got != "cid-123" {
		t.Fatalf("expected cid-123, got %q", got)
	}
}

func TestSubject(t *testing.T) {
	ctx := SetCorrelationID(context.Background(), "cid-1")
	if got := GetSubject(ctx); got != "" {
		t.Fatalf("expected empty subject, got %q", got)
	}

	ctx = SetSubject(ctx, "johndoe")
	if got := GetSubject(ctx); got != "johndoe" {
		t.Fatalf("expected johndoe, got %q", got)
	}
	if got := GetCorrelationID(ctx); got != "cid-1" {
		t.Fatalf("subject must not hide the correlation id, got %q", got)
	}
}
