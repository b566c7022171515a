package entities

import "time"

type Customer struct {
	ID             string
	Name           string
	Phone          string
	WhatsAppNumber string
	Email          string
	IDNumber       string
	Address        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContactPhone is the number WhatsApp messages go to.
func (c Customer) ContactPhone() string {
	if c.WhatsAppNumber != "" {
		return c.WhatsAppNumber
	}
	return c.Phone
}

type CustomerModify struct {
	ID             *string
	Name           *string
	Phone          *string
	WhatsAppNumber *string
	Email          *string
	IDNumber       *string
	Address        *string
}

// CustomerProfile is a customer together with the values derived from their
// packages.
type CustomerProfile struct {
	Customer
	PackageCount int64
	FirstPackage bool
}
