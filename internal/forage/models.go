package forage

import (
	"context"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Suburb is an opaque identifier for a supported foraging location
// (lowercase, underscore-separated, e.g. "kzn_midlands").
type Suburb string

// suburbs is the fixed set of supported locations, in display order.
var suburbs = []Suburb{
	"newlands",
	"tokai",
	"cecilia",
	"constantia_nek",
	"kirstenbosch",
	"silvermine",
	"hout_bay",
	"stellenbosch",
	"jonkershoek",
	"franschhoek",
	"grabouw",
	"knysna",
	"hogsback",
	"kzn_midlands",
}

// Suburbs returns the supported locations in display order.
func Suburbs() []Suburb {
	out := make([]Suburb, len(suburbs))
	copy(out, suburbs)
	return out
}

// IsSupported reports whether s is one of the supported locations.
func IsSupported(s Suburb) bool {
	for _, known := range suburbs {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable form of the suburb identifier.
func (s Suburb) Label() string {
	return DisplayName(string(s))
}

// DisplayName converts a snake_case identifier into its display form:
// underscores become spaces and only the first character is capitalized.
func DisplayName(id string) string {
	name := strings.ReplaceAll(id, "_", " ")
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// ConditionsReport is the payload returned by the upstream foraging backend
// for a single suburb. A new report replaces the previous one entirely;
// nothing is merged or accumulated.
type ConditionsReport struct {
	AvgTemperature       float64  `json:"avg_temperature"`
	AvgHumidity          float64  `json:"avg_humidity"`
	AvgPrecipitation     float64  `json:"avg_precipitation"`
	AvgWindSpeed         float64  `json:"avg_wind_speed"`
	Season               string   `json:"season"`
	ForagingQuality      string   `json:"foraging_quality"`
	RecommendedMushrooms []string `json:"recommended_mushrooms"`
}

// Checker abstracts the upstream conditions endpoint.
type Checker interface {
	Check(ctx context.Context, suburb Suburb) (ConditionsReport, error)
}

// Store is the contract the in-memory cache (and any future persistent
// cache) must satisfy. GetFresh returns an error for both a miss and a
// stale entry; callers treat any error as a miss.
type Store interface {
	SaveReport(suburb Suburb, report ConditionsReport)
	GetFresh(suburb Suburb) (ConditionsReport, time.Time, error)
}
