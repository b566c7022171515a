// Package dto holds the JSON bodies of the REST API.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type Error struct {
	Error string `json:"error"`
}

type ID struct {
	ID string `json:"id"`
}

type Customer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	WhatsAppNumber string    `json:"whatsapp_number,omitempty"`
	Email          string    `json:"email,omitempty"`
	IDNumber       string    `json:"id_number,omitempty"`
	Address        string    `json:"address,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CustomerProfile struct {
	Customer
	PackageCount int64 `json:"package_count"`
	FirstPackage bool  `json:"first_package"`
}

type CustomerCreate struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	WhatsAppNumber *string `json:"whatsapp_number"`
	Email          *string `json:"email"`
	IDNumber       *string `json:"id_number"`
	Address        *string `json:"address"`
}

type CustomerUpdate struct {
	ID *string `json:"id"`
	CustomerCreate
}

type Indicator struct {
	CustomerID string  `json:"customer_id"`
	Indicator  *string `json:"indicator"`
	Priority   *int    `json:"priority"`
}

type Trip struct {
	ID           string    `json:"id"`
	TripDate     string    `json:"trip_date"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	FlightNumber *string   `json:"flight_number"`
	TravelerID   *string   `json:"traveler_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type TripCreate struct {
	TripDate     *string `json:"trip_date"`
	Origin       *string `json:"origin"`
	Destination  *string `json:"destination"`
	FlightNumber *string `json:"flight_number"`
	TravelerID   *string `json:"traveler_id"`
	Status       *string `json:"status"`
}

type Package struct {
	ID              string           `json:"id"`
	TrackingNumber  string           `json:"tracking_number"`
	CustomerID      string           `json:"customer_id"`
	CustomerName    string           `json:"customer_name,omitempty"`
	TripID          *string          `json:"trip_id"`
	Origin          string           `json:"origin"`
	Destination     string           `json:"destination"`
	Description     string           `json:"description"`
	Weight          decimal.Decimal  `json:"weight"`
	Freight         decimal.Decimal  `json:"freight"`
	AmountToCollect *decimal.Decimal `json:"amount_to_collect"`
	Currency        string           `json:"currency"`
	Status          string           `json:"status"`
	DeliveredAt     *time.Time       `json:"delivered_at"`
	DeliveredBy     *string          `json:"delivered_by"`
	DeletedAt       *time.Time       `json:"deleted_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type PackageDetails struct {
	Package
	Payments      []Payment       `json:"payments"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
}

type PackageCreate struct {
	TrackingNumber  *string          `json:"tracking_number"`
	CustomerID      *string          `json:"customer_id"`
	TripID          *string          `json:"trip_id"`
	Origin          *string          `json:"origin"`
	Destination     *string          `json:"destination"`
	Description     *string          `json:"description"`
	Weight          *decimal.Decimal `json:"weight"`
	Freight         *decimal.Decimal `json:"freight"`
	AmountToCollect *decimal.Decimal `json:"amount_to_collect"`
	Currency        *string          `json:"currency"`
}

type StatusUpdate struct {
	Status   string `json:"status"`
	Location string `json:"location"`
}

type Payment struct {
	ID            string          `json:"id"`
	PackageID     string          `json:"package_id"`
	CustomerID    string          `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   time.Time       `json:"payment_date"`
	Notes         string          `json:"notes,omitempty"`
	CreatedBy     string          `json:"created_by,omitempty"`
}

type PaymentCreate struct {
	PackageID     string          `json:"package_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   *time.Time      `json:"payment_date"`
	Notes         string          `json:"notes"`
	CreatedBy     string          `json:"created_by"`
}

type Delivery struct {
	DeliveredBy string          `json:"delivered_by"`
	Payments    []PaymentCreate `json:"payments"`
}

type DebtItem struct {
	PackageID      string          `json:"package_id"`
	TrackingNumber string          `json:"tracking_number"`
	CustomerID     string          `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	TravelerID     *string         `json:"traveler_id"`
	Currency       string          `json:"currency"`
	Amount         decimal.Decimal `json:"amount"`
	Paid           decimal.Decimal `json:"paid"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
}

// Amounts maps a currency code to a total.
type Amounts map[string]decimal.Decimal

type DebtReport struct {
	Items      []DebtItem         `json:"items"`
	ByCustomer map[string]Amounts `json:"by_customer"`
	ByTraveler map[string]Amounts `json:"by_traveler"`
}

type Dispatch struct {
	ID                   string          `json:"id"`
	DispatchDate         string          `json:"dispatch_date"`
	TotalPackages        int             `json:"total_packages"`
	TotalWeight          decimal.Decimal `json:"total_weight"`
	TotalFreight         decimal.Decimal `json:"total_freight"`
	TotalAmountToCollect decimal.Decimal `json:"total_amount_to_collect"`
	Status               string          `json:"status"`
	Notes                string          `json:"notes"`
	CreatedAt            time.Time       `json:"created_at"`
}

type DispatchDetails struct {
	Dispatch
	Packages []Package `json:"packages"`
}

type DispatchCreate struct {
	DispatchDate string   `json:"dispatch_date"`
	PackageIDs   []string `json:"package_ids"`
	Notes        string   `json:"notes"`
}

type DispatchNumber struct {
	DispatchNumber  int `json:"dispatch_number"`
	TotalDispatches int `json:"total_dispatches"`
}

type MessageSend struct {
	CustomerID *string `json:"customer_id"`
	Phone      string  `json:"phone"`
	Body       string  `json:"body"`
}

type Notification struct {
	ID                string    `json:"id"`
	CustomerID        *string   `json:"customer_id"`
	Phone             string    `json:"phone"`
	Status            string    `json:"status"`
	ProviderMessageID string    `json:"provider_message_id,omitempty"`
	Error             string    `json:"error,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type Campaign struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Message   string     `json:"message"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	SentAt    *time.Time `json:"sent_at"`
}

type CampaignCreate struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type CampaignResult struct {
	CampaignID string `json:"campaign_id"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
}

type Ping struct {
	Message string `json:"message"`
	Service string `json:"service"`
}
