package customer

import "time"

type CustomerDB struct {
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

type CustomerModifyDB struct {
	ID             *string
	Name           *string
	Phone          *string
	WhatsAppNumber *string
	Email          *string
	IDNumber       *string
	Address        *string
}
