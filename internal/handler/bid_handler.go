package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saraccmululo/auction-platform-app/internal/errors"
	"github.com/saraccmululo/auction-platform-app/internal/service"
)

// BidHandler handles bid ledger endpoints.
type BidHandler struct {
	bidService service.BidService
}

// NewBidHandler creates a new bid handler.
func NewBidHandler(bidService service.BidService) *BidHandler {
	return &BidHandler{bidService: bidService}
}

// PlaceBidRequest represents a bid placement request. Amount stays a string
// so blank and non-numeric input reach the engine's own validation.
type PlaceBidRequest struct {
	Amount string `json:"amount"`
}

// PlaceBidResponse represents an accepted bid.
type PlaceBidResponse struct {
	BidID   string `json:"bid_id"`
	Amount  string `json:"amount"`
	Message string `json:"message"`
}

// CurrentPriceResponse represents a listing's current price.
type CurrentPriceResponse struct {
	ListingID string `json:"listing_id"`
	Amount    string `json:"amount"`
}

// PlaceBid godoc
// @Summary Place a bid on a listing
// @Tags bids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body PlaceBidRequest true "Bid data"
// @Success 201 {object} PlaceBidResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings/{id}/bids [post]
func (h *BidHandler) PlaceBid(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req PlaceBidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	bid, err := h.bidService.PlaceBid(c.Request().Context(), listingID, claims.UserID, req.Amount)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, PlaceBidResponse{
		BidID:   bid.ID.String(),
		Amount:  bid.Amount.StringFixed(2),
		Message: "bid placed successfully",
	})
}

// ListBids godoc
// @Summary List bids for a listing, highest first
// @Tags bids
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {array} model.Bid
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings/{id}/bids [get]
func (h *BidHandler) ListBids(c echo.Context) error {
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	bids, err := h.bidService.ListBids(c.Request().Context(), listingID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, bids)
}

// CurrentPrice godoc
// @Summary Get the current price of a listing
// @Tags bids
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} CurrentPriceResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings/{id}/price [get]
func (h *BidHandler) CurrentPrice(c echo.Context) error {
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	price, err := h.bidService.CurrentPrice(c.Request().Context(), listingID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, CurrentPriceResponse{
		ListingID: listingID.String(),
		Amount:    price.StringFixed(2),
	})
}
