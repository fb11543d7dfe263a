// internal/models/product.go
package models

// Product is the backend's product entity. The owning seller comes back
// embedded as a full user object on list/detail responses.
type Product struct {
	ProductID          int           `json:"productID"`
	ProductName        string        `json:"productName"`
	ProductDescription string        `json:"productDescription"`
	ProductPrice       float64       `json:"productPrice"`
	ProductImage       string        `json:"productImage,omitempty"`
	ProductCategory    string        `json:"productCategory"`
	ProductStatus      ProductStatus `json:"productStatus"`
	ProductDate        string        `json:"productDate,omitempty"`
	User               *User         `json:"user,omitempty"`
}

// OwnerID returns the owning seller's id, or 0 when the backend returned a
// product with no attached user.
func (p *Product) OwnerID() int {
	if p.User == nil {
		return 0
	}
	return p.User.UserID
}

// ProductPayload is the create/update request body. Ownership travels as a
// bare userID reference, not a full user object.
type ProductPayload struct {
	ProductName        string        `json:"productName" validate:"required"`
	ProductDescription string        `json:"productDescription"`
	ProductPrice       float64       `json:"productPrice" validate:"required,gt=0"`
	ProductImage       string        `json:"productImage,omitempty" validate:"omitempty,product_image"`
	ProductCategory    string        `json:"productCategory"`
	ProductStatus      ProductStatus `json:"productStatus" validate:"required,product_status"`
	ProductDate        string        `json:"productDate"`
	User               *UserRef      `json:"user,omitempty"`
}
