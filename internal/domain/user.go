package domain

import "encoding/json"

// Every enumerated field below is a backend-owned code paired with its
// display label (Type/TypeValue, Status/StatusValue). Only labels are shown.

// AuthUser is the account returned by the login endpoint.
type AuthUser struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Surname         string    `json:"surname"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Type            int       `json:"type"`
	TypeValue       string    `json:"type_value"`
	Status          int       `json:"status"`
	PhoneVerifiedAt *UnixTime `json:"phone_verified_at"`
	EmailVerifiedAt *UnixTime `json:"email_verified_at"`
	CreatedAt       UnixTime  `json:"created_at"`
	UpdatedAt       UnixTime  `json:"updated_at"`
}

func (u AuthUser) FullName() string { return joinName(u.Name, u.Surname) }

// Session is the result of a successful login.
type Session struct {
	User  AuthUser
	Token string
}

// User is the person record embedded in shipments (creators, drivers, confirmers).
type User struct {
	ID              int             `json:"id"`
	TCKN            *string         `json:"tckn,omitempty"`
	Name            string          `json:"name"`
	Surname         string          `json:"surname"`
	Email           *string         `json:"email"`
	Phone           *string         `json:"phone"`
	Type            int             `json:"type"`
	TypeValue       string          `json:"type_value"`
	Status          int             `json:"status"`
	StatusValue     string          `json:"status_value"`
	PhoneVerifiedAt *UnixTime       `json:"phone_verified_at"`
	EmailVerifiedAt *UnixTime       `json:"email_verified_at"`
	Avatar          *string         `json:"avatar"`
	Creator         json.RawMessage `json:"creator,omitempty"`
	CreatedAt       UnixTime        `json:"created_at"`
	UpdatedAt       UnixTime        `json:"updated_at"`
}

func (u User) FullName() string { return joinName(u.Name, u.Surname) }

// PersonRef is the short user form used inside price records.
type PersonRef struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

func joinName(name, surname string) string {
	switch {
	case name == "":
		return surname
	case surname == "":
		return name
	}
	return name + " " + surname
}
