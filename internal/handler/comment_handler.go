package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saraccmululo/auction-platform-app/internal/errors"
	"github.com/saraccmululo/auction-platform-app/internal/service"
)

// CommentHandler handles comment log endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// AddCommentRequest represents a comment creation request.
type AddCommentRequest struct {
	Text string `json:"text"`
}

// AddComment godoc
// @Summary Comment on a listing
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body AddCommentRequest true "Comment data"
// @Success 201 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings/{id}/comments [post]
func (h *CommentHandler) AddComment(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	comment, err := h.commentService.AddComment(c.Request().Context(), listingID, claims.UserID, req.Text)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, comment)
}

// ListComments godoc
// @Summary List comments for a listing, newest first
// @Tags comments
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {array} model.Comment
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings/{id}/comments [get]
func (h *CommentHandler) ListComments(c echo.Context) error {
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.commentService.ListComments(c.Request().Context(), listingID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, comments)
}
