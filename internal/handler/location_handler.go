package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "proplist/internal/errors"
	"proplist/internal/service"
)

// LocationHandler handles location registry endpoints.
type LocationHandler struct {
	locationService service.LocationService
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(locationService service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// CreateLocationRequest represents a new location. All fields are required.
type CreateLocationRequest struct {
	Province    string `json:"province" validate:"required"`
	City        string `json:"city" validate:"required"`
	Suburb      string `json:"suburb" validate:"required"`
	Coordinates string `json:"coordinates" validate:"required"`
}

// UpdateLocationRequest represents a partial update; absent fields stay unchanged.
type UpdateLocationRequest struct {
	Province    *string `json:"province"`
	City        *string `json:"city"`
	Suburb      *string `json:"suburb"`
	Coordinates *string `json:"coordinates"`
}

// Create godoc
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Param request body CreateLocationRequest true "Location data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /locations [post]
func (h *LocationHandler) Create(c echo.Context) error {
	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	location, err := h.locationService.Create(c.Request().Context(), service.CreateLocationInput{
		Province:    req.Province,
		City:        req.City,
		Suburb:      req.Suburb,
		Coordinates: req.Coordinates,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, echo.Map{"location": location})
}

// List godoc
// @Summary List all locations
// @Tags locations
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /locations [get]
func (h *LocationHandler) List(c echo.Context) error {
	locations, err := h.locationService.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"locations": locations})
}

// Get godoc
// @Summary Get a location
// @Tags locations
// @Produce json
// @Param id path string true "Location id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /locations/{id} [get]
func (h *LocationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid location id",
			Code:  "INVALID_ID",
		})
	}

	location, err := h.locationService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"location": location})
}

// Update godoc
// @Summary Partially update a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location id"
// @Param request body UpdateLocationRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /locations/{id} [put]
func (h *LocationHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid location id",
			Code:  "INVALID_ID",
		})
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	location, err := h.locationService.Update(c.Request().Context(), id, service.UpdateLocationInput{
		Province:    req.Province,
		City:        req.City,
		Suburb:      req.Suburb,
		Coordinates: req.Coordinates,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"location": location})
}

// Delete godoc
// @Summary Delete a location
// @Tags locations
// @Produce json
// @Param id path string true "Location id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /locations/{id} [delete]
func (h *LocationHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid location id",
			Code:  "INVALID_ID",
		})
	}

	if err := h.locationService.Delete(c.Request().Context(), id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Location deleted successfully"})
}
