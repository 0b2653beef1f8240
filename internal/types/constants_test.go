package types

import "testing"

func TestAllowedDifficulties(t *testing.T) {
	cases := []struct {
		level string
		want  []string
	}{
		{DifficultyBeginner, []string{DifficultyBeginner, DifficultyIntermediate}},
		{DifficultyIntermediate, []string{DifficultyIntermediate, DifficultyAdvanced}},
		{DifficultyAdvanced, []string{DifficultyAdvanced}},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			got := AllowedDifficulties(tc.level)
			if len(got) != len(tc.want) {
				t.Fatalf("AllowedDifficulties(%q)=%v, want %v", tc.level, got, tc.want)
			}
			for _, d := range tc.want {
				if !got[d] {
					t.Errorf("AllowedDifficulties(%q) missing %q", tc.level, d)
				}
			}
		})
	}
}

func TestOrganMapComplete(t *testing.T) {
	want := map[string]string{
		"I":    "i-theoria",
		"II":   "ii-poiesis",
		"III":  "iii-ergon",
		"IV":   "iv-taxis",
		"V":    "v-logos",
		"VI":   "vi-koinonia",
		"VII":  "vii-kerygma",
		"VIII": "viii-meta",
	}
	if len(OrganMap) != len(want) {
		t.Fatalf("OrganMap has %d organs, want %d", len(OrganMap), len(want))
	}
	for code, slug := range want {
		if OrganMap[code] != slug {
			t.Errorf("OrganMap[%q]=%q, want %q", code, OrganMap[code], slug)
		}
	}
}

func TestDifficultyRank(t *testing.T) {
	cases := []struct {
		difficulty string
		want       int
	}{
		{DifficultyBeginner, 0},
		{DifficultyIntermediate, 1},
		{DifficultyAdvanced, 2},
		{"", 1},
		{"unknown", 1},
	}
	for _, tc := range cases {
		if got := DifficultyRank(tc.difficulty); got != tc.want {
			t.Errorf("DifficultyRank(%q)=%d, want %d", tc.difficulty, got, tc.want)
		}
	}
}

func TestValidLevel(t *testing.T) {
	for _, level := range []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced} {
		if !ValidLevel(level) {
			t.Errorf("ValidLevel(%q)=false, want true", level)
		}
	}
	for _, level := range []string{"", "expert", "Beginner"} {
		if ValidLevel(level) {
			t.Errorf("ValidLevel(%q)=true, want false", level)
		}
	}
}
