package trip

import "time"

type TripDB struct {
	ID           string
	TripDate     time.Time
	Origin       string
	Destination  string
	FlightNumber *string
	TravelerID   *string
	Status       string
	CreatedAt    time.Time
}

type TripModifyDB struct {
	TripDate     *time.Time
	Origin       *string
	Destination  *string
	FlightNumber *string
	TravelerID   *string
	Status       *string
}
