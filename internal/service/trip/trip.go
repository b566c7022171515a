package trip

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"
	"ojitos/internal/entities"
)

type Trip struct {
	repository Repository
}

func New(repository Repository) *Trip {
	return &Trip{
		repository: repository,
	}
}

// CreateTrip registers a trip. A flight number may be used once per date;
// the repository reports a second registration as entities.ErrDuplicateFlight.
func (s *Trip) CreateTrip(ctx context.Context, tripModify entities.TripModify) (string, error) {
	if tripModify.TripDate == nil || tripModify.TripDate.IsZero() ||
		tripModify.Origin == nil || strings.TrimSpace(*tripModify.Origin) == "" ||
		tripModify.Destination == nil || strings.TrimSpace(*tripModify.Destination) == "" {
		return "", ErrMissingRequiredFields
	}

	origin := strings.TrimSpace(*tripModify.Origin)
	destination := strings.TrimSpace(*tripModify.Destination)
	if strings.EqualFold(origin, destination) {
		return "", ErrInvalidRoute
	}
	tripModify.Origin = &origin
	tripModify.Destination = &destination

	if tripModify.FlightNumber != nil {
		flight := normalizeFlightNumber(*tripModify.FlightNumber)
		if flight == "" {
			tripModify.FlightNumber = nil
		} else {
			tripModify.FlightNumber = &flight
		}
	}

	if tripModify.TravelerID != nil && !isValidID(*tripModify.TravelerID) {
		return "", ErrInvalidTravelerID
	}

	if tripModify.Status == nil {
		tripModify.Status = pointer.To(entities.TripScheduled)
	} else if !isValidStatus(*tripModify.Status) {
		return "", ErrInvalidStatus
	}

	id, err := s.repository.Create(ctx, tripModify)
	if err != nil {
		return "", fmt.Errorf("create trip: %w", err)
	}

	return id, nil
}

func (s *Trip) GetTrips(ctx context.Context) ([]entities.Trip, error) {
	trips, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get trips: %w", err)
	}

	return trips, nil
}
