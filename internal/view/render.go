// Package view maps a conditions report onto the UI tree the page renders.
// Rendering is a pure transform so the whole display contract is testable
// without a browser or a network.
package view

import (
	"strconv"

	"github.com/capefungi/forager/internal/forage"
)

// EmptyGalleryMessage is shown when the backend recommends nothing.
const EmptyGalleryMessage = "No mushrooms recommended for the current conditions."

// Summary is the textual weather summary block.
type Summary struct {
	Temperature   string             `json:"temperature"`
	Humidity      string             `json:"humidity"`
	Precipitation string             `json:"precipitation"`
	WindSpeed     string             `json:"wind_speed"`
	Season        string             `json:"season"`
	Quality       string             `json:"quality"`
	QualityTier   forage.QualityTier `json:"quality_tier"`
}

// Card is one gallery entry for a recommended species. ImageURL is empty
// when the species is not in the catalog; the card still renders with its
// derived display name.
type Card struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Gallery is either a single informational message (no recommendations) or
// an ordered list of cards.
type Gallery struct {
	Message string `json:"message,omitempty"`
	Cards   []Card `json:"cards"`
}

// ReportView is the full rendered state for one conditions report.
type ReportView struct {
	Summary Summary `json:"summary"`
	Gallery Gallery `json:"gallery"`
}

// Render produces the view for a report, resolving species images through
// the given catalog.
func Render(report forage.ConditionsReport, catalog forage.SpeciesCatalog) ReportView {
	v := ReportView{
		Summary: Summary{
			Temperature:   formatNumber(report.AvgTemperature) + "°C",
			Humidity:      formatNumber(report.AvgHumidity) + "%",
			Precipitation: formatNumber(report.AvgPrecipitation) + " mm",
			WindSpeed:     formatNumber(report.AvgWindSpeed) + " km/h",
			Season:        report.Season,
			Quality:       report.ForagingQuality,
			QualityTier:   forage.ClassifyQuality(report.ForagingQuality),
		},
	}

	if len(report.RecommendedMushrooms) == 0 {
		v.Gallery.Message = EmptyGalleryMessage
		return v
	}

	v.Gallery.Cards = make([]Card, 0, len(report.RecommendedMushrooms))
	for _, id := range report.RecommendedMushrooms {
		v.Gallery.Cards = append(v.Gallery.Cards, Card{
			ID:       id,
			Name:     forage.DisplayName(id),
			ImageURL: catalog.ImageURL(id),
		})
	}

	return v
}

// formatNumber renders a reading without a trailing ".0" for whole values.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
