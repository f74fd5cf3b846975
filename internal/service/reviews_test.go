package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopview/dashboard/internal/api"
	"github.com/shopview/dashboard/internal/domain"
	apperrors "github.com/shopview/dashboard/pkg/errors"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Mock review API ---

type mockReviewAPI struct {
	mock.Mock
}

func (m *mockReviewAPI) ReviewsByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewAPI) UpsertReview(ctx context.Context, productID string, rating int, comment string) (*domain.Review, error) {
	args := m.Called(ctx, productID, rating, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewAPI) DeleteReview(ctx context.Context, reviewID string) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

func (m *mockReviewAPI) Authenticated() bool {
	return m.Called().Bool(0)
}

func (m *mockReviewAPI) Identity() (*api.Identity, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Identity), args.Error(1)
}

// --- Tests ---

func TestStatsForProducts_IsolatesFailures(t *testing.T) {
	reviewAPI := new(mockReviewAPI)
	svc := NewReviewService(reviewAPI, newTestLogger())
	ctx := context.Background()

	reviewAPI.On("ReviewsByProduct", ctx, "p1").Return([]domain.Review{{Rating: 5}, {Rating: 3}}, nil)
	reviewAPI.On("ReviewsByProduct", ctx, "p2").Return(nil, errors.New("boom"))
	reviewAPI.On("ReviewsByProduct", ctx, "p3").Return([]domain.Review{}, nil)

	stats := svc.StatsForProducts(ctx, []string{"p1", "p2", "p3"})

	require.Len(t, stats, 3)
	assert.Equal(t, 4.0, stats["p1"].Average)
	assert.Equal(t, 2, stats["p1"].Count)

	// Failed fetch yields empty stats, not an aborted batch.
	assert.Equal(t, domain.EmptyReviewStats(), stats["p2"])
	assert.Equal(t, "0.0", stats["p2"].FormattedAverage())

	assert.Equal(t, 0, stats["p3"].Count)

	reviewAPI.AssertExpectations(t)
}

func TestLoadForProduct_FindsOwnReview(t *testing.T) {
	reviewAPI := new(mockReviewAPI)
	svc := NewReviewService(reviewAPI, newTestLogger())
	ctx := context.Background()

	reviews := []domain.Review{
		{ID: "r1", CustomerID: "cust-1", Rating: 5},
		{ID: "r2", CustomerID: "cust-2", Rating: 2, Comment: "meh"},
	}
	reviewAPI.On("ReviewsByProduct", ctx, "p1").Return(reviews, nil)
	reviewAPI.On("Authenticated").Return(true)
	reviewAPI.On("Identity").Return(&api.Identity{CustomerID: "cust-2"}, nil)

	result, err := svc.LoadForProduct(ctx, "p1")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.Count)
	assert.Equal(t, 3.5, result.Stats.Average)
	require.NotNil(t, result.Own)
	assert.Equal(t, "r2", result.Own.ID)
	assert.Equal(t, "meh", result.Own.Comment)
}

func TestLoadForProduct_SignedOutHasNoOwnReview(t *testing.T) {
	reviewAPI := new(mockReviewAPI)
	svc := NewReviewService(reviewAPI, newTestLogger())
	ctx := context.Background()

	reviewAPI.On("ReviewsByProduct", ctx, "p1").Return([]domain.Review{{CustomerID: "cust-1", Rating: 4}}, nil)
	reviewAPI.On("Authenticated").Return(false)

	result, err := svc.LoadForProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, result.Own)
}

func TestOwnReview(t *testing.T) {
	reviews := []domain.Review{
		{ID: "r1", CustomerID: "a"},
		{ID: "r2", CustomerID: "b"},
	}

	own := OwnReview(reviews, "b")
	require.NotNil(t, own)
	assert.Equal(t, "r2", own.ID)

	assert.Nil(t, OwnReview(reviews, "c"))
	assert.Nil(t, OwnReview(reviews, ""))
	assert.Nil(t, OwnReview(nil, "a"))
}

func TestSubmit_RequiresAuthentication(t *testing.T) {
	reviewAPI := new(mockReviewAPI)
	svc := NewReviewService(reviewAPI, newTestLogger())

	reviewAPI.On("Authenticated").Return(false)

	_, err := svc.Submit(context.Background(), SubmitReviewInput{ProductID: "p1", Rating: 4})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthenticated))

	reviewAPI.AssertNotCalled(t, "UpsertReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_ZeroRatingRejectedBeforeNetwork(t *testing.T) {
	reviewAPI := new(mockReviewAPI)
	svc := NewReviewService(reviewAPI, newTestLogger())

	reviewAPI.On("Authenticated").Return(true)

	_, err := svc.Submit(context.Background(), SubmitReviewInput{ProductID: "p1", Rating: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	reviewAPI.AssertNotCalled(t, "UpsertReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_Upserts(t *testing.T) {
	reviewAPI := new(mockReviewAPI)
	svc := NewReviewService(reviewAPI, newTestLogger())
	ctx := context.Background()

	want := &domain.Review{ID: "r1", ProductID: "p1", Rating: 4, Comment: "good"}
	reviewAPI.On("Authenticated").Return(true)
	reviewAPI.On("UpsertReview", ctx, "p1", 4, "good").Return(want, nil)

	got, err := svc.Submit(ctx, SubmitReviewInput{ProductID: "p1", Rating: 4, Comment: "good"})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	reviewAPI.AssertExpectations(t)
}

func TestDeleteReview_RequiresAuthentication(t *testing.T) {
	reviewAPI := new(mockReviewAPI)
	svc := NewReviewService(reviewAPI, newTestLogger())

	reviewAPI.On("Authenticated").Return(false)

	err := svc.Delete(context.Background(), "r1")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthenticated))
	reviewAPI.AssertNotCalled(t, "DeleteReview", mock.Anything, mock.Anything)
}
