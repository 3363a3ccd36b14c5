package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wattwise/energy-system/internal/api/metrics"
	"github.com/wattwise/energy-system/internal/core/ports"
)

// ApplianceHandler handles HTTP requests for the appliance registry.
type ApplianceHandler struct {
	service ports.ApplianceService
}

func NewApplianceHandler(service ports.ApplianceService) *ApplianceHandler {
	return &ApplianceHandler{service: service}
}

// Create registers an appliance under the caller's account.
//
// @Summary      Add an appliance
// @Tags         appliances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApplianceRequest  true  "Appliance details"
// @Success      201   {object}  domain.Appliance
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /appliances [post]
func (h *ApplianceHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createApplianceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	appliance, err := h.service.Create(c.Request().Context(), user.ID, ports.CreateApplianceInput{
		Name:          req.Name,
		Type:          req.Type,
		PowerRatingKW: req.PowerRatingKW,
	})
	if err != nil {
		return err
	}

	metrics.AppliancesCreatedTotal.WithLabelValues(string(appliance.Type)).Inc()
	return c.JSON(http.StatusCreated, appliance)
}

// List returns all appliances under the caller's account.
//
// @Summary      List appliances
// @Tags         appliances
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Appliance
// @Failure      401  {object}  errorResponse
// @Router       /appliances [get]
func (h *ApplianceHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	appliances, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appliances)
}

// Control toggles an appliance on or off.
//
// @Summary      Turn an appliance on or off
// @Tags         appliances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Appliance id"
// @Param        body  body      controlApplianceRequest  true  "Control action (ON or OFF)"
// @Success      200   {object}  controlApplianceResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /appliances/{id}/control [post]
func (h *ApplianceHandler) Control(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	applianceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appliance id")
	}

	var req controlApplianceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.Control(c.Request().Context(), user.ID, applianceID, req.Action)
	if err != nil {
		return err
	}

	metrics.ApplianceTogglesTotal.WithLabelValues(strings.ToUpper(req.Action)).Inc()
	return c.JSON(http.StatusOK, controlApplianceResponse{
		Success:     true,
		ApplianceID: result.ApplianceID,
		NewStatus:   result.NewStatus,
		AIMessage:   result.AIMessage,
	})
}
