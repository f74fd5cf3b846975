package domain

import (
	"fmt"
	"math"
	"time"
)

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review represents a product review submitted by a customer. The server
// enforces at most one review per (product, customer) pair.
type Review struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	CustomerID   string    `json:"customerId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
	CustomerName string    `json:"customerName"`
	ProfilePic   string    `json:"profilePic,omitempty"`
}

// ReviewStats contains aggregate review statistics for a product, derived
// client-side from the raw review list and recomputed whenever it changes.
type ReviewStats struct {
	Average      float64     `json:"average"`
	Count        int         `json:"count"`
	Distribution map[int]int `json:"distribution"`
}

// EmptyReviewStats returns the stats for a product with no reviews: zero
// average, zero count, and an explicit zero entry for every star value.
func EmptyReviewStats() ReviewStats {
	return ReviewStats{
		Average:      0,
		Count:        0,
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
}

// AggregateReviews computes the average rating (rounded to one decimal) and
// the per-star distribution for the given reviews. An empty list yields
// EmptyReviewStats; there is no division by zero.
func AggregateReviews(reviews []Review) ReviewStats {
	stats := EmptyReviewStats()
	if len(reviews) == 0 {
		return stats
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
		if r.Rating >= MinRating && r.Rating <= MaxRating {
			stats.Distribution[r.Rating]++
		}
	}

	stats.Count = len(reviews)
	stats.Average = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	return stats
}

// FormattedAverage renders the average with one fraction digit, "0.0" when
// there are no reviews.
func (s ReviewStats) FormattedAverage() string {
	return fmt.Sprintf("%.1f", s.Average)
}
