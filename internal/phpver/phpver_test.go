// Where: cli/internal/phpver/phpver_test.go
// What: Tests for PHP version validation and tag derivation.
// Why: The image tag contract must stay stable for every supported version.
package phpver

import "testing"

func TestImageTagStripsSeparators(t *testing.T) {
	expected := map[string]string{
		"7.4": "php74",
		"8.0": "php80",
		"8.1": "php81",
		"8.2": "php82",
	}
	for _, v := range Supported {
		want, ok := expected[v]
		if !ok {
			t.Fatalf("missing expectation for supported version %s", v)
		}
		if got := ImageTag(v); got != want {
			t.Fatalf("ImageTag(%s) = %s, want %s", v, got, want)
		}
	}
}

func TestValidateAcceptsSupported(t *testing.T) {
	for _, v := range Supported {
		if err := Validate(v); err != nil {
			t.Fatalf("expected %s to validate, got %v", v, err)
		}
	}
}

func TestValidateRejectsUnknown(t *testing.T) {
	for _, v := range []string{"5.6", "8.9", "", "latest"} {
		if err := Validate(v); err == nil {
			t.Fatalf("expected %q to be rejected", v)
		}
	}
}

func TestDefaultIsLowestSupported(t *testing.T) {
	if Default != Supported[0] {
		t.Fatalf("default %s is not the lowest supported version %s", Default, Supported[0])
	}
}
