// internal/utils/validator_test.go
package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appdevg6/boost-web/internal/models"
)

func validPayload() *models.ProductPayload {
	return &models.ProductPayload{
		ProductName:   "Desk Lamp",
		ProductPrice:  150,
		ProductStatus: models.ProductStatusAvailable,
	}
}

func TestValidProductPayloadPasses(t *testing.T) {
	assert.NoError(t, ValidateStruct(validPayload()))
}

func TestPriceMustBePositive(t *testing.T) {
	payload := validPayload()
	payload.ProductPrice = 0
	assert.Error(t, ValidateStruct(payload))

	payload.ProductPrice = -5
	err := ValidateStruct(payload)
	assert.Error(t, err)
}

func TestProductStatusEnum(t *testing.T) {
	payload := validPayload()
	payload.ProductStatus = "Archived"

	err := ValidateStruct(payload)

	assert.Error(t, err)
	assert.Equal(t, "Status must be Available, Sold, or Reserved", FirstValidationMessage(err))
}

func TestProductImageAcceptsDataURIAndURL(t *testing.T) {
	payload := validPayload()

	payload.ProductImage = "data:image/png;base64,iVBORw0KGgo="
	assert.NoError(t, ValidateStruct(payload))

	payload.ProductImage = "https://example.com/lamp.png"
	assert.NoError(t, ValidateStruct(payload))

	payload.ProductImage = ""
	assert.NoError(t, ValidateStruct(payload))
}

func TestProductImageRejectsNonImageDataURI(t *testing.T) {
	payload := validPayload()
	payload.ProductImage = "data:text/html;base64,PGh0bWw+"

	assert.Error(t, ValidateStruct(payload))
}

func TestProductImageRejectsOversizedDataURI(t *testing.T) {
	payload := validPayload()
	payload.ProductImage = "data:image/png;base64," + strings.Repeat("A", maxImageBytes*2)

	assert.Error(t, ValidateStruct(payload))
}

func TestRecommendationRatingBounds(t *testing.T) {
	payload := &models.RecommendationPayload{
		UserID:    1,
		ProductID: 2,
		Message:   "Great product",
		Rating:    5,
	}
	assert.NoError(t, ValidateStruct(payload))

	payload.Rating = 6
	assert.Error(t, ValidateStruct(payload))

	payload.Rating = 0
	assert.Error(t, ValidateStruct(payload))
}

func TestUserEmailMustBeEduDomain(t *testing.T) {
	user := &models.User{Email: "ana@cit.edu"}
	assert.NoError(t, ValidateStruct(user))

	user.Email = "ana@CIT.EDU"
	assert.NoError(t, ValidateStruct(user))

	user.Email = "ana@gmail.com"
	err := ValidateStruct(user)
	assert.Error(t, err)
	assert.Equal(t, "Please use a .edu student email", FirstValidationMessage(err))
}
