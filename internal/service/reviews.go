package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopview/dashboard/internal/api"
	"github.com/shopview/dashboard/internal/domain"
	apperrors "github.com/shopview/dashboard/pkg/errors"
	"github.com/shopview/dashboard/pkg/validator"
)

// ReviewAPI is the slice of the commerce API the review service consumes.
type ReviewAPI interface {
	ReviewsByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	UpsertReview(ctx context.Context, productID string, rating int, comment string) (*domain.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
	Authenticated() bool
	Identity() (*api.Identity, error)
}

// ProductReviews is the review state for a single product detail view.
// Own is the current customer's review when one exists; it seeds the editable
// form so that submitting becomes an update rather than a duplicate create.
type ProductReviews struct {
	Reviews []domain.Review    `json:"reviews"`
	Stats   domain.ReviewStats `json:"stats"`
	Own     *domain.Review     `json:"own,omitempty"`
}

// SubmitReviewInput holds the parameters for submitting a review.
type SubmitReviewInput struct {
	ProductID string `validate:"required"`
	Rating    int    `validate:"required,gte=1,lte=5"`
	Comment   string `validate:"max=2000"`
}

// ReviewService loads review lists, derives their aggregate stats, and
// submits the customer's own review as an upsert.
type ReviewService struct {
	api    ReviewAPI
	logger *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reviewAPI ReviewAPI, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		api:    reviewAPI,
		logger: logger,
	}
}

// OwnReview returns the review authored by the given customer, or nil.
func OwnReview(reviews []domain.Review, customerID string) *domain.Review {
	if customerID == "" {
		return nil
	}
	for i := range reviews {
		if reviews[i].CustomerID == customerID {
			return &reviews[i]
		}
	}
	return nil
}

// LoadForProduct fetches a product's reviews and derives the view state:
// aggregate stats plus the signed-in customer's own review when present.
func (s *ReviewService) LoadForProduct(ctx context.Context, productID string) (*ProductReviews, error) {
	reviews, err := s.api.ReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	result := &ProductReviews{
		Reviews: reviews,
		Stats:   domain.AggregateReviews(reviews),
	}

	if s.api.Authenticated() {
		if identity, err := s.api.Identity(); err == nil {
			result.Own = OwnReview(reviews, identity.CustomerID)
		}
	}

	return result, nil
}

// StatsForProducts computes review stats for every given product. Failures
// are isolated per product: a product whose reviews cannot be fetched reports
// empty stats instead of aborting the batch.
func (s *ReviewService) StatsForProducts(ctx context.Context, productIDs []string) map[string]domain.ReviewStats {
	stats := make(map[string]domain.ReviewStats, len(productIDs))
	for _, id := range productIDs {
		reviews, err := s.api.ReviewsByProduct(ctx, id)
		if err != nil {
			s.logger.WarnContext(ctx, "review stats fetch failed, using empty stats",
				slog.String("product_id", id),
				slog.String("error", err.Error()),
			)
			stats[id] = domain.EmptyReviewStats()
			continue
		}
		stats[id] = domain.AggregateReviews(reviews)
	}
	return stats
}

// Submit validates and submits the customer's review for a product. The
// server upserts by (product, customer), so resubmitting replaces the
// existing review.
func (s *ReviewService) Submit(ctx context.Context, input SubmitReviewInput) (*domain.Review, error) {
	if !s.api.Authenticated() {
		return nil, apperrors.Unauthenticated("sign in to review products")
	}
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	review, err := s.api.UpsertReview(ctx, input.ProductID, input.Rating, input.Comment)
	if err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}

	s.logger.InfoContext(ctx, "review submitted",
		slog.String("review_id", review.ID),
		slog.String("product_id", review.ProductID),
		slog.Int("rating", review.Rating),
	)
	return review, nil
}

// Delete removes the customer's review.
func (s *ReviewService) Delete(ctx context.Context, reviewID string) error {
	if !s.api.Authenticated() {
		return apperrors.Unauthenticated("sign in to manage reviews")
	}
	if err := s.api.DeleteReview(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
