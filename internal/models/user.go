// internal/models/user.go
package models

import "strings"

// User is the backend's user entity. Password is only ever populated on the
// register payload; the backend strips it from every response.
type User struct {
	UserID     int    `json:"userID"`
	Username   string `json:"username,omitempty"`
	Password   string `json:"password,omitempty"`
	Email      string `json:"email" validate:"required,email,edu_email"`
	Phone      string `json:"phone,omitempty"`
	Firstname  string `json:"firstname"`
	Middlename string `json:"middlename,omitempty"`
	Lastname   string `json:"lastname"`
	Role       Role   `json:"role"`
}

// FullName renders "First M. Last" the way the product cards display sellers.
func (u *User) FullName() string {
	parts := make([]string, 0, 3)
	if u.Firstname != "" {
		parts = append(parts, u.Firstname)
	}
	if u.Middlename != "" {
		parts = append(parts, u.Middlename+".")
	}
	if u.Lastname != "" {
		parts = append(parts, u.Lastname)
	}
	if len(parts) == 0 {
		return "Unknown Seller"
	}
	return strings.Join(parts, " ")
}

// UserRef is the nested owner reference mutation payloads carry.
type UserRef struct {
	UserID int `json:"userID"`
}
