package security

import "testing"

func TestHashSessionToken(t *testing.T) {
	t.Parallel()

	hash := HashSessionToken("abc")
	if len(hash) != 64 {
		t.Fatalf("HashSessionToken len = %d, want 64", len(hash))
	}
	if HashSessionToken("  abc\n") != hash {
		t.Fatal("expected surrounding whitespace to be ignored")
	}
	if HashSessionToken("abd") == hash {
		t.Fatal("expected different tokens to hash differently")
	}
	if hash == "abc" {
		t.Fatal("expected token to be hashed")
	}
}

func TestHashSessionTokenKnownVector(t *testing.T) {
	t.Parallel()

	// BLAKE2b-256 of the empty input.
	const want = "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"
	if got := HashSessionToken(""); got != want {
		t.Fatalf("HashSessionToken(\"\") = %s, want %s", got, want)
	}
}
