package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorMapsNoRows(t *testing.T) {
	de := ToDomainError(pgx.ErrNoRows)
	if de.Code != "NOT_FOUND" || de.HTTPStatus != http.StatusNotFound {
		t.Fatalf("got %q/%d, want NOT_FOUND/404", de.Code, de.HTTPStatus)
	}
}

func TestToDomainErrorPassesThrough(t *testing.T) {
	orig := NewConflict("slot already booked", map[string]any{"amenityName": "Gymnasium"})
	de := ToDomainError(orig)
	if de.Code != "CONFLICT" || de.HTTPStatus != http.StatusConflict {
		t.Fatalf("got %q/%d, want CONFLICT/409", de.Code, de.HTTPStatus)
	}
	if de.Details["amenityName"] != "Gymnasium" {
		t.Errorf("details lost in mapping")
	}
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	de := ToDomainError(errors.New("connection reset"))
	if de.Code != "INTERNAL_ERROR" || de.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("got %q/%d, want INTERNAL_ERROR/500", de.Code, de.HTTPStatus)
	}
}

func TestUnavailableStatus(t *testing.T) {
	de := ToDomainError(NewUnavailable("notification", errors.New("dial tcp: refused")))
	if de.Code != "UNAVAILABLE" || de.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("got %q/%d, want UNAVAILABLE/503", de.Code, de.HTTPStatus)
	}
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("boom")
	de := ToDomainError(NewInternalError(inner))
	if !errors.Is(de, inner) {
		t.Errorf("wrapped error not reachable via errors.Is")
	}
}
