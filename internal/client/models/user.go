// Package models defines the wire and view models exchanged with the
// Photoshare service, together with the validation rules the client enforces
// before any network call.
package models

import (
	"errors"
	"strings"
)

// User is a full user profile as returned by the service.
// The identity is immutable; profile fields are mutable by the owner only.
type User struct {
	ID          string `json:"_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Occupation  string `json:"occupation"`
}

// FullName returns "First Last" as shown in the directory.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Ref returns the lightweight reference embedded in comments.
func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}

// UserRef is the lightweight user embed carried inside comments.
type UserRef struct {
	ID        string `json:"_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	LoginName string `json:"login_name"`
	Password  string `json:"password"`
}

// RegisterRequest is the body of POST /api/user.
type RegisterRequest struct {
	LoginName   string `json:"login_name"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Occupation  string `json:"occupation"`
}

// Validate checks the required fields before the request goes on the wire.
func (r RegisterRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.LoginName) == "":
		return ErrLoginNameRequired
	case strings.TrimSpace(r.Password) == "":
		return ErrPasswordRequired
	case strings.TrimSpace(r.FirstName) == "":
		return ErrFirstNameRequired
	case strings.TrimSpace(r.LastName) == "":
		return ErrLastNameRequired
	}
	return nil
}

// ChangePasswordRequest is the body of POST /api/admin/change-password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UpdateProfileRequest is the body of POST /api/admin/update-profile.
type UpdateProfileRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Occupation  string `json:"occupation"`
}

// MinPasswordLength applies to new passwords on registration and change.
const MinPasswordLength = 6

var (
	ErrLoginNameRequired = errors.New("login name is required")
	ErrPasswordRequired  = errors.New("password is required")
	ErrFirstNameRequired = errors.New("first name is required")
	ErrLastNameRequired  = errors.New("last name is required")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrPasswordTooShort  = errors.New("password is too short")
)
