// internal/models/common.go
package models

// Enums mirroring the backend's string columns.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleSeller  Role = "SELLER"
	RoleAdmin   Role = "ADMIN"
)

type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "Available"
	ProductStatusSold      ProductStatus = "Sold"
	ProductStatusReserved  ProductStatus = "Reserved"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusAvailable, ProductStatusSold, ProductStatusReserved:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusApproved ApplicationStatus = "Approved"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

// DateLayout is the wire format the backend uses for LocalDate fields.
const DateLayout = "2006-01-02"
