package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/saraccmululo/auction-platform-app/internal/errors"
	"github.com/saraccmululo/auction-platform-app/internal/model"
	"github.com/saraccmululo/auction-platform-app/internal/repository"
)

// CommentService manages the per-listing append-only comment log.
type CommentService interface {
	// AddComment trims text and appends a comment. An empty trimmed comment
	// is rejected outright and nothing is written.
	AddComment(ctx context.Context, listingID, authorID uuid.UUID, text string) (*model.Comment, error)
	ListComments(ctx context.Context, listingID uuid.UUID) ([]model.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	listingRepo repository.ListingRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository, listingRepo repository.ListingRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		listingRepo: listingRepo,
	}
}

// AddComment appends a non-empty comment to the listing's log.
func (s *commentService) AddComment(ctx context.Context, listingID, authorID uuid.UUID, text string) (*model.Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, apperrors.NewValidationError("text", "empty comment")
	}

	if _, err := s.listingRepo.FindByID(ctx, listingID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("listing")
		}
		return nil, fmt.Errorf("load listing: %w", err)
	}

	comment := &model.Comment{
		ListingID: listingID,
		UserID:    authorID,
		Text:      trimmed,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// ListComments returns the listing's comments, newest first.
func (s *commentService) ListComments(ctx context.Context, listingID uuid.UUID) ([]model.Comment, error) {
	if _, err := s.listingRepo.FindByID(ctx, listingID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("listing")
		}
		return nil, fmt.Errorf("load listing: %w", err)
	}
	comments, err := s.commentRepo.ListByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
