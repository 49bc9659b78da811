package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Adventure", "adventure"},
		{"multi word", "Cultural Tours", "cultural-tours"},
		{"ampersand stripped before hyphenation", "Beach & Island Getaways", "beach-island-getaways"},
		{"punctuation removed", "Trek: Everest, Base Camp!", "trek-everest-base-camp"},
		{"existing hyphens kept", "fixed-departure specials", "fixed-departure-specials"},
		{"leading and trailing space", "  Nepal  ", "nepal"},
		{"tabs and runs collapse", "Wild\t \tSafari", "wild-safari"},
		{"digits survive", "Top 10 Treks 2026", "top-10-treks-2026"},
		{"symbols only", "!!!", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
