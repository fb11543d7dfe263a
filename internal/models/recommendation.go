// internal/models/recommendation.go
package models

// Recommendation is a rating+comment a user left on a product. Responses
// embed the author and product; the create payload is flat.
type Recommendation struct {
	RecommendationID int      `json:"recommendationID"`
	User             *User    `json:"user,omitempty"`
	Product          *Product `json:"product,omitempty"`
	Message          string   `json:"message"`
	DateGenerated    string   `json:"dateGenerated,omitempty"`
	Rating           int      `json:"rating"`
}

// AuthorID returns the review author's id, or 0 when absent.
func (r *Recommendation) AuthorID() int {
	if r.User == nil {
		return 0
	}
	return r.User.UserID
}

// ProductID resolves the reviewed product's id from either the embedded
// product object or a flat field, whichever the backend populated.
func (r *Recommendation) ProductID() int {
	if r.Product == nil {
		return 0
	}
	return r.Product.ProductID
}

// RecommendationPayload is the create request body.
type RecommendationPayload struct {
	UserID        int    `json:"userID" validate:"required"`
	ProductID     int    `json:"productID" validate:"required"`
	Message       string `json:"message" validate:"required"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	DateGenerated string `json:"dateGenerated"`
}
