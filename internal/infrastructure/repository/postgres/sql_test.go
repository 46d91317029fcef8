package postgres

import (
	"database/sql"
	"errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected true for sql.ErrNoRows")
	}
	if isNotFound(errors.New("pq: connection refused")) {
		t.Fatal("expected false for unrelated error")
	}
}

func TestNullStringToString(t *testing.T) {
	if got := nullStringToString(sql.NullString{String: "zico", Valid: true}); got != "zico" {
		t.Fatalf("got %q", got)
	}
	if got := nullStringToString(sql.NullString{}); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
