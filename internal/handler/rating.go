package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/transport-ticketing/internal/repository"
	"github.com/iliyamo/transport-ticketing/internal/service"
)

// RatingHandler exposes the three rating endpoints.
type RatingHandler struct {
	Ratings service.RatingService
	Users   repository.UserRepository
}

func NewRatingHandler(ratings service.RatingService, users repository.UserRepository) *RatingHandler {
	return &RatingHandler{Ratings: ratings, Users: users}
}

type rateReq struct {
	Rating float64 `json:"rating"`
}

func (h *RatingHandler) rate(c echo.Context, apply func(rating float64) (interface{}, error)) error {
	var req rateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	out, err := apply(req.Rating)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RatingHandler) RateCompany(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	return h.rate(c, func(r float64) (interface{}, error) {
		return h.Ratings.RateCompany(actor, c.Param("id"), r)
	})
}

func (h *RatingHandler) RateDistributor(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	return h.rate(c, func(r float64) (interface{}, error) {
		return h.Ratings.RateDistributor(actor, c.Param("id"), r)
	})
}

func (h *RatingHandler) RateCashier(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	return h.rate(c, func(r float64) (interface{}, error) {
		return h.Ratings.RateCashier(actor, c.Param("id"), r)
	})
}
