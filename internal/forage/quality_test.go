package forage

import "testing"

func TestClassifyQuality(t *testing.T) {
	cases := []struct {
		label string
		want  QualityTier
	}{
		{"Perfect conditions for foraging!", TierPerfect},
		{"Good conditions", TierGood},
		{"Average conditions, keep expectations low", TierAverage},
		{"Too dry for mushrooms", TierPoor},
		{"", TierPoor},

		// Priority: earlier rules win even when several keywords appear.
		{"Good, borderline Perfect", TierPerfect},
		{"Average at best, Good at a push", TierGood},

		// Matching is case-sensitive.
		{"perfect conditions", TierPoor},
		{"GOOD conditions", TierPoor},
	}

	for _, tc := range cases {
		if got := ClassifyQuality(tc.label); got != tc.want {
			t.Errorf("ClassifyQuality(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}
