// internal/ratings/ratings.go

// Package ratings computes the client-side join between products and
// recommendations. The backend serves the two collections independently and
// never pre-joins them.
package ratings

import (
	"math"

	"github.com/appdevg6/boost-web/internal/models"
)

// Aggregate groups reviews by product and returns the average rating per
// product id, rounded to one decimal. Reviews without a resolvable product id
// are skipped. Products absent from the map have no reviews and display the
// zero sentinel.
func Aggregate(reviews []models.Recommendation) map[int]float64 {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, r := range reviews {
		pid := r.ProductID()
		if pid == 0 {
			continue
		}
		sums[pid] += float64(r.Rating)
		counts[pid]++
	}

	averages := make(map[int]float64, len(counts))
	for pid, count := range counts {
		averages[pid] = math.Round(sums[pid]/float64(count)*10) / 10
	}
	return averages
}

// For returns the aggregate rating for a product, 0 when it has no reviews.
func For(averages map[int]float64, productID int) float64 {
	return averages[productID]
}
