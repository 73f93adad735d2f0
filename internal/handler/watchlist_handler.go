package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saraccmululo/auction-platform-app/internal/errors"
	"github.com/saraccmululo/auction-platform-app/internal/service"
)

// WatchlistHandler handles watchlist endpoints.
type WatchlistHandler struct {
	watchlistService service.WatchlistService
}

// NewWatchlistHandler creates a new watchlist handler.
func NewWatchlistHandler(watchlistService service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService}
}

// ToggleWatchlistResponse carries the new membership state so the UI can pick
// between "Add to watchlist" and "Remove from watchlist".
type ToggleWatchlistResponse struct {
	ListingID string `json:"listing_id"`
	Watching  bool   `json:"watching"`
}

// Toggle godoc
// @Summary Toggle a listing on the caller's watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} ToggleWatchlistResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings/{id}/watchlist [post]
func (h *WatchlistHandler) Toggle(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	watching, err := h.watchlistService.Toggle(c.Request().Context(), claims.UserID, listingID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ToggleWatchlistResponse{
		ListingID: listingID.String(),
		Watching:  watching,
	})
}

// List godoc
// @Summary List the caller's watched listings
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Listing
// @Router /watchlist [get]
func (h *WatchlistHandler) List(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}

	listings, err := h.watchlistService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, listings)
}
