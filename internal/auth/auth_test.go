package auth

import (
	"net/http"
	"strings"
	"testing"
)

func TestValid(t *testing.T) {
	good := strings.Repeat("abcd1234ef", 4)
	if len(good) != 40 {
		t.Fatalf("fixture must be 40 chars, got %d", len(good))
	}
	if !Valid(good) {
		t.Fatalf("expected %q to be valid", good)
	}

	if Valid("abcdef") {
		t.Fatalf("short credential accepted")
	}
	if Valid(strings.Repeat("A", 1) + good[1:]) {
		t.Fatalf("uppercase credential accepted")
	}
	if Valid(good + "a") {
		t.Fatalf("41-char credential accepted")
	}
	if Valid("") {
		t.Fatalf("empty credential accepted")
	}
}

func TestFromHeader(t *testing.T) {
	r, _ := http.NewRequest(http.MethodGet, "/v1/planning/day", nil)
	if _, ok := FromHeader(r); ok {
		t.Fatalf("expected absent header")
	}

	r.Header.Set(Header, "sometoken")
	cred, ok := FromHeader(r)
	if !ok || cred != "sometoken" {
		t.Fatalf("got %q, %v", cred, ok)
	}
}
