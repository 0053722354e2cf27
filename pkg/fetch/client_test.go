package fetch

import (
	"strings"
	"testing"
)

func TestPageURL(t *testing.T) {
	url := PageURL(3)
	want := "https://www.metacritic.com/browse/game/?releaseYearMin=1958&releaseYearMax=2025&page=3"
	if url != want {
		t.Errorf("PageURL(3) = %q, want %q", url, want)
	}
}

func TestDecodeBody_UTF8Passthrough(t *testing.T) {
	body := []byte("<html>héllo</html>")

	decoded, err := DecodeBody(body, "text/html; charset=utf-8")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if decoded != string(body) {
		t.Errorf("utf-8 body should pass through unchanged")
	}
}

func TestDecodeBody_Latin1(t *testing.T) {
	// "café" with é encoded as ISO-8859-1 0xE9
	body := []byte{'c', 'a', 'f', 0xE9}

	decoded, err := DecodeBody(body, "text/html; charset=iso-8859-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if decoded != "café" {
		t.Errorf("expected decoded latin-1 text %q, got %q", "café", decoded)
	}
}

func TestDecodeBody_UnknownCharset(t *testing.T) {
	body := []byte("plain text")

	decoded, err := DecodeBody(body, "text/html; charset=not-a-charset")
	if err != nil {
		t.Fatalf("expected no error for unknown charset, got: %v", err)
	}
	if decoded != "plain text" {
		t.Errorf("unknown charset should pass body through, got %q", decoded)
	}
}

func TestDecodeBody_NoContentType(t *testing.T) {
	decoded, err := DecodeBody([]byte("body"), "")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if decoded != "body" {
		t.Errorf("missing content type should pass body through, got %q", decoded)
	}
}

func TestPageURL_DistinctPages(t *testing.T) {
	if PageURL(1) == PageURL(2) {
		t.Error("different pages must build different URLs")
	}
	if !strings.Contains(PageURL(16), "page=16") {
		t.Errorf("expected page number in URL, got %q", PageURL(16))
	}
}
