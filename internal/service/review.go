package service

import (
	"fmt"
	"strings"
	"time"

	"toolrent/internal/domain"
	"toolrent/internal/repository"

	"go.uber.org/zap"
)

// ErrEmptyReview is returned when the review text is empty after trimming.
var ErrEmptyReview = fmt.Errorf("review text cannot be empty")

// ReviewService handles review submission and listing.
type ReviewService struct {
	repo   repository.ReviewRepository
	logger *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(repo repository.ReviewRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{repo: repo, logger: logger}
}

// Submit stores a review. userName may be empty; the anonymous fallback
// is applied on display, not on write.
func (s *ReviewService) Submit(userID int64, userName, text string) (*domain.Review, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyReview
	}

	createdAt := time.Now().UTC()

	id, err := s.repo.Create(userID, userName, text, createdAt)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.Info("Review saved",
		zap.Int64("review_id", id),
		zap.Int64("user_id", userID),
	)

	return &domain.Review{
		ID:        id,
		UserID:    userID,
		UserName:  userName,
		Text:      text,
		CreatedAt: createdAt,
	}, nil
}

// Recent returns up to limit reviews, most recent first.
// A non-positive limit yields an empty listing.
func (s *ReviewService) Recent(limit int) ([]domain.Review, error) {
	if limit < 1 {
		return nil, nil
	}
	return s.repo.ListRecent(limit)
}
