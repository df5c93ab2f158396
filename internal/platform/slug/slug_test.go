package slug_test

import (
	"testing"

	"hangul/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Default":          "default",
		"  Night Owl  ":    "night-owl",
		"kim_ji-woo 2":     "kim-ji-woo-2",
		"---":              "learner",
		"Evening/Practice": "evening-practice",
	}
	for in, want := range cases {
		if got := slug.Make(in); got != want {
			t.Fatalf("expected %q for %q, got %q", want, in, got)
		}
	}
	if got := slug.Make("한글"); got != "learner" {
		t.Fatalf("expected fallback for hangul-only input, got %q", got)
	}
	if got := slug.MakeOr("", "untitled"); got != "untitled" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
