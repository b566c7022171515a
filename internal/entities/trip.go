package entities

import "time"

type TripStatus string

const (
	TripScheduled  TripStatus = "programado"
	TripInProgress TripStatus = "en_curso"
	TripCompleted  TripStatus = "completado"
)

func (s TripStatus) String() string {
	return string(s)
}

type Trip struct {
	ID           string
	TripDate     time.Time
	Origin       string
	Destination  string
	FlightNumber *string
	TravelerID   *string
	Status       TripStatus
	CreatedAt    time.Time
}

type TripModify struct {
	TripDate     *time.Time
	Origin       *string
	Destination  *string
	FlightNumber *string
	TravelerID   *string
	Status       *TripStatus
}

type Traveler struct {
	ID    string
	Name  string
	Phone string
}
