package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wattwise/energy-system/internal/core/ports"
)

// DashboardHandler serves the aggregated dashboard metrics.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary returns the KPI cards for the caller's account.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Summary
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /data/summary [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Trend returns the consumption series for a time range.
//
// @Summary      Consumption trend
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        range  query     string  false  "24h, week or month"  default(24h)
// @Success      200    {array}   ports.ChartPoint
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Router       /data/consumption/trend [get]
func (h *DashboardHandler) Trend(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	rng := c.QueryParam("range")
	if rng == "" {
		rng = "24h"
	}

	points, err := h.service.Trend(c.Request().Context(), user.ID, rng)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, points)
}

// Factors returns the consumption influence breakdown.
//
// @Summary      Consumption factors
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Factors
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /data/consumption/factors [get]
func (h *DashboardHandler) Factors(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	factors, err := h.service.Factors(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, factors)
}

// Weather returns current (mock) weather conditions.
//
// @Summary      Current weather
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Weather
// @Failure      401  {object}  errorResponse
// @Router       /data/weather [get]
func (h *DashboardHandler) Weather(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.Weather())
}

// CurrentRate returns the tariff band in effect right now.
//
// @Summary      Current electricity rate
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Rate
// @Failure      401  {object}  errorResponse
// @Router       /data/electricity-rate [get]
func (h *DashboardHandler) CurrentRate(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.CurrentRate())
}
