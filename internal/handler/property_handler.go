package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "proplist/internal/errors"
	"proplist/internal/middleware"
	"proplist/internal/service"
	"proplist/internal/storage"
)

// maxImages caps how many files a single listing request may carry.
const maxImages = 5

// PropertyHandler handles property listing endpoints.
type PropertyHandler struct {
	propertyService service.PropertyService
	uploader        storage.Uploader
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(propertyService service.PropertyService, uploader storage.Uploader) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		uploader:        uploader,
	}
}

// CreatePropertyRequest represents the multipart form fields of a new listing.
// Images travel alongside as file parts under the "images" key.
type CreatePropertyRequest struct {
	Title           string  `form:"title" validate:"required"`
	Description     string  `form:"description" validate:"required"`
	PropertyType    string  `form:"property_type" validate:"required"`
	TransactionType string  `form:"transaction_type" validate:"required"`
	Price           float64 `form:"price" validate:"required,gt=0"`
	LocationID      string  `form:"location_id" validate:"required"`
}

// UpdatePropertyRequest represents a partial update. Absent form fields stay
// nil and leave the stored value unchanged.
type UpdatePropertyRequest struct {
	Title           *string  `form:"title"`
	Description     *string  `form:"description"`
	PropertyType    *string  `form:"property_type"`
	TransactionType *string  `form:"transaction_type"`
	Price           *float64 `form:"price" validate:"omitempty,gt=0"`
	LocationID      *string  `form:"location_id"`
}

// Create godoc
// @Summary Create a property listing
// @Tags properties
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param property_type formData string true "Property type"
// @Param transaction_type formData string true "Transaction type"
// @Param price formData number true "Price"
// @Param location_id formData string true "Location id"
// @Param images formData file true "Images (up to 5)"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	ownerID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token"})
	}

	var req CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	files, err := formImages(c)
	if err != nil {
		return err
	}

	urls, err := h.uploadImages(c, files)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to upload images",
			Code:  "UPLOAD_FAILED",
		})
	}

	property, err := h.propertyService.Create(c.Request().Context(), service.CreatePropertyInput{
		Title:           req.Title,
		Description:     req.Description,
		PropertyType:    req.PropertyType,
		TransactionType: req.TransactionType,
		Price:           req.Price,
		LocationID:      req.LocationID,
		ImageURLs:       urls,
		OwnerID:         ownerID,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, echo.Map{"property": property})
}

// Update godoc
// @Summary Partially update a property listing
// @Tags properties
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid property id",
			Code:  "INVALID_ID",
		})
	}

	var req UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	files, err := formImages(c)
	if err != nil {
		return err
	}

	urls, err := h.uploadImages(c, files)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to upload images",
			Code:  "UPLOAD_FAILED",
		})
	}

	property, err := h.propertyService.Update(c.Request().Context(), id, service.UpdatePropertyInput{
		Title:           req.Title,
		Description:     req.Description,
		PropertyType:    req.PropertyType,
		TransactionType: req.TransactionType,
		Price:           req.Price,
		LocationID:      req.LocationID,
		ImageURLs:       urls,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"property": property})
}

// Get godoc
// @Summary Get a property with its owner resolved
// @Tags properties
// @Produce json
// @Param id path string true "Property id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid property id",
			Code:  "INVALID_ID",
		})
	}

	property, err := h.propertyService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"property": property})
}

// List godoc
// @Summary List all properties
// @Tags properties
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	properties, err := h.propertyService.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"properties": properties})
}

// Delete godoc
// @Summary Delete a property
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid property id",
			Code:  "INVALID_ID",
		})
	}

	if err := h.propertyService.Delete(c.Request().Context(), id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

// formImages extracts the uploaded image parts, enforcing the per-request cap.
// A request without a multipart body simply has no images.
func formImages(c echo.Context) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	files := form.File["images"]
	if len(files) > maxImages {
		return nil, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "a maximum of 5 images is allowed",
			Code:  "TOO_MANY_IMAGES",
		})
	}
	return files, nil
}

func (h *PropertyHandler) uploadImages(c echo.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	return h.uploader.Upload(c.Request().Context(), files)
}
