// internal/ratings/ratings_test.go
package ratings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appdevg6/boost-web/internal/models"
)

func review(productID, rating int) models.Recommendation {
	return models.Recommendation{
		Product: &models.Product{ProductID: productID},
		Rating:  rating,
	}
}

func TestAggregateAveragesPerProduct(t *testing.T) {
	reviews := []models.Recommendation{
		review(1, 5),
		review(1, 4),
		review(2, 3),
	}

	averages := Aggregate(reviews)

	assert.Equal(t, 4.5, averages[1])
	assert.Equal(t, 3.0, averages[2])
}

func TestAggregateRoundsToOneDecimal(t *testing.T) {
	// 5+4+4 = 13 / 3 = 4.333... -> 4.3
	averages := Aggregate([]models.Recommendation{
		review(7, 5),
		review(7, 4),
		review(7, 4),
	})
	assert.Equal(t, 4.3, averages[7])

	// 1+2 = 3 / 2 = 1.5 stays exact
	averages = Aggregate([]models.Recommendation{
		review(8, 1),
		review(8, 2),
	})
	assert.Equal(t, 1.5, averages[8])
}

func TestAggregateZeroSentinelForUnreviewedProduct(t *testing.T) {
	averages := Aggregate([]models.Recommendation{review(1, 5)})

	// A product with no reviews reads as 0, never NaN or a missing field.
	assert.Equal(t, 0.0, For(averages, 99))
	assert.Equal(t, 5.0, For(averages, 1))
}

func TestAggregateSkipsReviewsWithoutProduct(t *testing.T) {
	reviews := []models.Recommendation{
		{Rating: 5}, // no product reference
		review(3, 2),
	}

	averages := Aggregate(reviews)

	assert.Len(t, averages, 1)
	assert.Equal(t, 2.0, averages[3])
}

func TestAggregateEmptyInput(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}
