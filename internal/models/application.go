// internal/models/application.go
package models

// SellerApplication is a student's request for seller privileges. Pending
// until an admin approves or rejects it; approval promotes the applicant's
// role on the backend side.
type SellerApplication struct {
	ApplicationID     int               `json:"applicationID"`
	ApplicationStatus ApplicationStatus `json:"applicationStatus"`
	ApplicationDate   string            `json:"applicationDate"`
	User              *User             `json:"user,omitempty"`
}

// ApplicationPayload is the create request body.
type ApplicationPayload struct {
	ApplicationStatus ApplicationStatus `json:"applicationStatus"`
	ApplicationDate   string            `json:"applicationDate"`
	User              *UserRef          `json:"user"`
}
