package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/saraccmululo/auction-platform-app/internal/auth"
	"github.com/saraccmululo/auction-platform-app/internal/errors"
	"github.com/saraccmululo/auction-platform-app/internal/service"
)

// ListingHandler handles listing endpoints.
type ListingHandler struct {
	listingService service.ListingService
	jwtService     *auth.JWTService
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(listingService service.ListingService, jwtService *auth.JWTService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		jwtService:     jwtService,
	}
}

// CreateListingRequest represents a listing creation request. StartBid is a
// raw string; the auction engine owns numeric validation so bad input comes
// back as an accumulated violation list, not a bind failure.
type CreateListingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	StartBid    string `json:"start_bid"`
	CategoryID  string `json:"category_id"`
}

// CloseListingResponse represents the outcome of closing a listing.
type CloseListingResponse struct {
	ListingID string  `json:"listing_id"`
	IsActive  bool    `json:"is_active"`
	WinnerID  *string `json:"winner_id"`
	Message   string  `json:"message"`
}

// CreateListing godoc
// @Summary Create a new listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateListingRequest true "Listing data"
// @Success 201 {object} model.Listing
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings [post]
func (h *ListingHandler) CreateListing(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	input := service.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		StartBid:    req.StartBid,
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid category_id")
		}
		input.CategoryID = &categoryID
	}

	listing, err := h.listingService.CreateListing(c.Request().Context(), claims.UserID, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, listing)
}

// ListActive godoc
// @Summary List active listings
// @Tags listings
// @Produce json
// @Success 200 {array} model.Listing
// @Router /listings [get]
func (h *ListingHandler) ListActive(c echo.Context) error {
	listings, err := h.listingService.ListActive(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, listings)
}

// GetListing godoc
// @Summary Get a listing with price, comments, and watchlist state
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} service.ListingDetail
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings/{id} [get]
func (h *ListingHandler) GetListing(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	viewerID := optionalViewer(c, h.jwtService)
	detail, err := h.listingService.GetListingDetail(c.Request().Context(), id, viewerID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, detail)
}

// CloseListing godoc
// @Summary Close a listing and determine the winner
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} CloseListingResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings/{id}/close [post]
func (h *ListingHandler) CloseListing(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	listing, err := h.listingService.CloseListing(c.Request().Context(), id, claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := CloseListingResponse{
		ListingID: listing.ID.String(),
		IsActive:  listing.IsActive,
		Message:   "listing closed",
	}
	if listing.WinnerID != nil {
		winner := listing.WinnerID.String()
		resp.WinnerID = &winner
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteListing godoc
// @Summary Delete an owned listing
// @Tags listings
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings/{id} [delete]
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.listingService.DeleteListing(c.Request().Context(), id, claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
