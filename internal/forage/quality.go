package forage

import "strings"

// QualityTier is the normalized classification of a foraging_quality label.
type QualityTier string

const (
	TierPerfect QualityTier = "perfect"
	TierGood    QualityTier = "good"
	TierAverage QualityTier = "average"
	TierPoor    QualityTier = "poor"
)

type qualityRule struct {
	keyword string
	tier    QualityTier
}

// qualityRules is evaluated top-down; the first keyword found in the label
// wins. Matching is case-sensitive: the backend emits these exact forms.
var qualityRules = []qualityRule{
	{"Perfect", TierPerfect},
	{"Good", TierGood},
	{"Average", TierAverage},
}

// ClassifyQuality maps a free-text foraging_quality label onto a tier.
// Labels matching no rule fall through to TierPoor.
func ClassifyQuality(label string) QualityTier {
	for _, r := range qualityRules {
		if strings.Contains(label, r.keyword) {
			return r.tier
		}
	}
	return TierPoor
}
