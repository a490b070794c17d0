package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fishcast/internal/store"
	"fishcast/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/outlook", func(c *fiber.Ctx) error {
		spotReq, err := parseSpotQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		outlook, err := service.Refresh(c.UserContext(), spotReq.toSpot())
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch weather data")
		}

		return c.JSON(outlook)
	})

	v1.Get("/outlook/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		spot := req.Spot.toSpot()
		outlooks, err := service.GetRange(spot, req.From, req.To)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no outlooks for requested range")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch outlook history")
		}

		return c.JSON(fiber.Map{
			"spot":     spot,
			"from":     req.From,
			"to":       req.To,
			"outlooks": outlooks,
		})
	})

	v1.Get("/solunar", func(c *fiber.Ctx) error {
		spotReq, err := parseSpotQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		at := time.Now().UTC()
		if tStr := c.Query("t"); tStr != "" {
			at, err = parseTime(tStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}

		return c.JSON(service.Solunar(at, spotReq.Lat, spotReq.Lon))
	})
}

// spotQuery holds query parameters identifying a geographic point.
type spotQuery struct {
	Lat  float64 `validate:"gte=-90,lte=90"`
	Lon  float64 `validate:"gte=-180,lte=180"`
	Name string
}

func (q spotQuery) toSpot() weather.Spot {
	return weather.Spot{
		Name:      q.Name,
		Latitude:  q.Lat,
		Longitude: q.Lon,
	}
}

func parseSpotQuery(c *fiber.Ctx) (spotQuery, error) {
	var q spotQuery

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return q, errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return q, errors.New("invalid lat")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return q, errors.New("invalid lon")
	}

	q.Lat = lat
	q.Lon = lon
	q.Name = c.Query("name")

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	Spot spotQuery
	From time.Time `validate:"required"`
	To   time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	spot, err := parseSpotQuery(c)
	if err != nil {
		return err
	}
	h.Spot = spot

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return err
	}
	to, err := parseTime(toStr)
	if err != nil {
		return err
	}

	h.From = from
	h.To = to
	return nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC(), nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
