package domain

import "github.com/shopspring/decimal"

// User is the account holder presented on the profile page.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Profile holds the editable contact fields on the profile page.
type Profile struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// PastOrder is one line of the profile page's order history.
type PastOrder struct {
	ID     int             `json:"id"`
	Date   string          `json:"date"`
	Items  int             `json:"items"`
	Total  decimal.Decimal `json:"total"`
	Status string          `json:"status"`
}

// Activity is one entry of the profile page's activity log.
type Activity struct {
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

// Settings holds the account preference toggles and locale choices.
type Settings struct {
	Notifications      bool   `json:"notifications"`
	Newsletter         bool   `json:"newsletter"`
	DarkMode           bool   `json:"dark_mode"`
	EmailNotifications bool   `json:"email_notifications"`
	SMSNotifications   bool   `json:"sms_notifications"`
	Promotions         bool   `json:"promotions"`
	TwoFactor          bool   `json:"two_factor"`
	Language           string `json:"language" validate:"oneof=English Spanish French German"`
	Currency           string `json:"currency" validate:"oneof=USD EUR GBP"`
	TimeZone           string `json:"time_zone" validate:"required"`
}
