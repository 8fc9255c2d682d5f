package validate_test

import (
	"strings"
	"testing"

	"harvesthub/internal/validate"
)

func TestDateAcceptsISOIncludingPast(t *testing.T) {
	// Past dates parse fine; only the shape is checked here.
	for _, s := range []string{"2026-04-15", "2020-01-01", " 2026-12-31 "} {
		if _, okD := validate.Date(s); !okD {
			t.Fatalf("Date(%q) rejected", s)
		}
	}
	for _, s := range []string{"", "15/04/2026", "2026-13-01", "2026-04-15T10:00", "soon"} {
		if _, okD := validate.Date(s); okD {
			t.Fatalf("Date(%q) accepted", s)
		}
	}
}

func TestIDParsing(t *testing.T) {
	if id, okID := validate.ID("42"); !okID || id != 42 {
		t.Fatalf("ID(42) = %d %v", id, okID)
	}
	for _, s := range []string{"0", "-1", "abc", "", "1.5"} {
		if _, okID := validate.ID(s); okID {
			t.Fatalf("ID(%q) accepted", s)
		}
	}
}

func TestUsernameAndEmail(t *testing.T) {
	if _, okU := validate.Username("ayodya_99"); !okU {
		t.Fatal("valid username rejected")
	}
	for _, s := range []string{"ab", "has space", strings.Repeat("x", 31)} {
		if _, okU := validate.Username(s); okU {
			t.Fatalf("Username(%q) accepted", s)
		}
	}
	if _, okE := validate.Email("a@b.co"); !okE {
		t.Fatal("valid email rejected")
	}
	if _, okE := validate.Email("not-an-email"); okE {
		t.Fatal("invalid email accepted")
	}
}

func TestTextStripsAngleBracketsAndClamps(t *testing.T) {
	if got := validate.Text("  <script>hi</script>  "); got != "scripthi/script" {
		t.Fatalf("Text stripped to %q", got)
	}
	long := strings.Repeat("a", 6000)
	if got := validate.Text(long); len(got) != 5000 {
		t.Fatalf("Text clamp = %d chars", len(got))
	}
}

func TestFrequency(t *testing.T) {
	if f, okF := validate.Frequency(" Weekly "); !okF || f != "weekly" {
		t.Fatalf("Frequency normalize: %q %v", f, okF)
	}
	if _, okF := validate.Frequency("daily"); okF {
		t.Fatal("unknown frequency accepted")
	}
}
