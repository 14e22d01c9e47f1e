package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/capefungi/forager/internal/forage"
	"github.com/capefungi/forager/internal/view"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *forage.Service, catalog forage.SpeciesCatalog) {
	v1 := app.Group("/api/v1")

	v1.Get("/locations", func(c *fiber.Ctx) error {
		locs := forage.Suburbs()
		options := make([]locationOption, 0, len(locs))
		for _, s := range locs {
			options = append(options, locationOption{
				Value: string(s),
				Label: s.Label(),
			})
		}
		return c.JSON(options)
	})

	v1.Get("/conditions", func(c *fiber.Ctx) error {
		req, err := parseConditionsQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		suburb := forage.Suburb(req.Suburb)
		if !forage.IsSupported(suburb) {
			return fiber.NewError(fiber.StatusBadRequest, "unsupported suburb")
		}

		result, err := service.CheckConditions(c.Context(), suburb)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "conditions service unavailable")
		}

		return c.JSON(conditionsResponse{
			Token:  result.Token,
			Cached: result.Cached,
			View:   view.Render(result.Report, catalog),
		})
	})
}

// locationOption is one entry for the page's selection control.
type locationOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// conditionsQuery holds query parameters for the conditions endpoint.
type conditionsQuery struct {
	Suburb string `validate:"required"`
}

func parseConditionsQuery(c *fiber.Ctx) (conditionsQuery, error) {
	var q conditionsQuery

	q.Suburb = c.Query("suburb")

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

// conditionsResponse is the wire shape consumed by the page script.
type conditionsResponse struct {
	Token  string          `json:"token"`
	Cached bool            `json:"cached"`
	View   view.ReportView `json:"view"`
}
