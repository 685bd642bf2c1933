package logger

import (
	"testing"
)

func TestBuildRID(t *testing.T) {
	rid := BuildRID(42, -100123, 7)
	if rid != "42:-100123:7" {
		t.Fatalf("unexpected rid: %s", rid)
	}
}

func TestRIDRoundTrip(t *testing.T) {
	ctx := WithRID(Background(), "rid-123")
	if got := RIDFrom(ctx); got != "rid-123" {
		t.Fatalf("rid = %s, want rid-123", got)
	}
	if got := RIDFrom(Background()); got != "" {
		t.Fatalf("expected empty rid, got %s", got)
	}
}

func TestUpdateMetaRoundTrip(t *testing.T) {
	ctx := WithUpdateMeta(Background(), 11, 22, 33)
	if got := UpdateIDFrom(ctx); got != 11 {
		t.Fatalf("update id = %d", got)
	}
	if got := UserIDFrom(ctx); got != 22 {
		t.Fatalf("user id = %d", got)
	}
	if got := ChatIDFrom(ctx); got != 33 {
		t.Fatalf("chat id = %d", got)
	}
}

func TestSanitizeLimit(t *testing.T) {
	in := "hi\x00there\x7f 😀 very long tail"
	out := SanitizeLimit(in, 11)
	if out != "hithere 😀 v" {
		t.Fatalf("unexpected sanitized output: %q", out)
	}
	if SanitizeLimit("anything", 0) != "" {
		t.Fatal("limit 0 must yield empty string")
	}
}
