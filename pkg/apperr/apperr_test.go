package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Auth("not your project"), http.StatusForbidden},
		{Unauthorized("missing token"), http.StatusUnauthorized},
		{NotFound("no such project"), http.StatusNotFound},
		{API("figma error", "rate limited", 429), 429},
		{API("figma error", "server blew up", 500), http.StatusBadGateway},
		{API("figma error", "connection refused", 0), http.StatusBadGateway},
		{Internal("boom", errors.New("cause")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := tc.err.HTTPStatus(); got != tc.want {
			t.Errorf("%s: expected status %d, got %d", tc.err.Code, tc.want, got)
		}
	}
}

func TestEnsureDoesNotRewrap(t *testing.T) {
	classified := NotFound("project not found")

	got := Ensure(classified, "error fetching projects")
	if got != classified {
		t.Errorf("expected the classified error back unchanged, got %v", got)
	}

	// Still holds when the classified error is buried in a wrap chain.
	wrapped := fmt.Errorf("outer layer: %w", classified)
	got = Ensure(wrapped, "error fetching projects")
	if got.Code != CodeNotFound {
		t.Errorf("expected NOT_FOUND through the wrap chain, got %s", got.Code)
	}
}

func TestEnsureClassifiesUnknown(t *testing.T) {
	got := Ensure(errors.New("pq: connection reset"), "error fetching projects")
	if got.Code != CodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if got.Message != "error fetching projects" {
		t.Errorf("unexpected message %q", got.Message)
	}
	if got.Detail != "pq: connection reset" {
		t.Errorf("expected original message as detail, got %q", got.Detail)
	}
}

func TestFrom(t *testing.T) {
	if From(errors.New("plain")) != nil {
		t.Error("expected nil for an unclassified error")
	}
	if From(nil) != nil {
		t.Error("expected nil for nil")
	}
	e := Unauthorized("expired")
	if From(e) != e {
		t.Error("expected the same *Error back")
	}
}
