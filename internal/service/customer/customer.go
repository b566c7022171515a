package customer

import (
	"context"
	"fmt"
	"strings"

	"ojitos/internal/entities"
	"ojitos/internal/pkg/phone"
	"ojitos/internal/service/lifecycle"
	"ojitos/internal/service/payment"
)

type Customer struct {
	repository Repository
	packages   PackageReader
	payments   PaymentReader
}

func New(repository Repository, packages PackageReader, payments PaymentReader) *Customer {
	return &Customer{
		repository: repository,
		packages:   packages,
		payments:   payments,
	}
}

func (s *Customer) CreateCustomer(ctx context.Context, customerModify entities.CustomerModify) (string, error) {
	if customerModify.Name == nil || customerModify.Phone == nil {
		return "", ErrMissingRequiredFields
	}

	normalized, err := normalize(customerModify)
	if err != nil {
		return "", err
	}

	id, err := s.repository.Create(ctx, normalized)
	if err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}

	return id, nil
}

func (s *Customer) UpdateCustomer(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	if customerModify.ID == nil || !isValidID(*customerModify.ID) {
		return nil, ErrInvalidCustomerID
	}
	if customerModify.Name == nil &&
		customerModify.Phone == nil &&
		customerModify.WhatsAppNumber == nil &&
		customerModify.Email == nil &&
		customerModify.IDNumber == nil &&
		customerModify.Address == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	normalized, err := normalize(customerModify)
	if err != nil {
		return nil, err
	}

	customer, err := s.repository.Update(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

// GetCustomer returns the customer with the package count the "first
// package" badge is derived from.
func (s *Customer) GetCustomer(ctx context.Context, id string) (*entities.CustomerProfile, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCustomerID
	}

	customer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	count, err := s.repository.CountPackages(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count packages: %w", err)
	}

	return &entities.CustomerProfile{
		Customer:     *customer,
		PackageCount: count,
		FirstPackage: count == 1,
	}, nil
}

func (s *Customer) GetCustomers(ctx context.Context) ([]entities.Customer, error) {
	customers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return customers, nil
}

// GetIndicator returns the most critical chat indicator across the
// customer's packages, or nil when none applies.
func (s *Customer) GetIndicator(ctx context.Context, id string) (*entities.ChatIndicator, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCustomerID
	}

	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	packages, err := s.packages.ListByCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	if len(packages) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(packages))
	for _, pkg := range packages {
		ids = append(ids, pkg.ID)
	}

	payments, err := s.payments.ListByPackageIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	indicator, ok := lifecycle.CustomerIndicator(packages, payment.GroupByPackage(payments))
	if !ok {
		return nil, nil
	}
	return &indicator, nil
}

func normalize(customerModify entities.CustomerModify) (entities.CustomerModify, error) {
	if customerModify.Name != nil {
		name := strings.TrimSpace(*customerModify.Name)
		if !isValidName(name) {
			return entities.CustomerModify{}, ErrInvalidName
		}
		customerModify.Name = &name
	}
	if customerModify.Phone != nil {
		normalized := phone.Normalize(*customerModify.Phone)
		if !isValidPhone(normalized) {
			return entities.CustomerModify{}, ErrInvalidPhone
		}
		customerModify.Phone = &normalized
	}
	if customerModify.WhatsAppNumber != nil && strings.TrimSpace(*customerModify.WhatsAppNumber) != "" {
		normalized := phone.Normalize(*customerModify.WhatsAppNumber)
		if !isValidPhone(normalized) {
			return entities.CustomerModify{}, ErrInvalidPhone
		}
		customerModify.WhatsAppNumber = &normalized
	}
	if customerModify.Email != nil && strings.TrimSpace(*customerModify.Email) != "" {
		email := strings.TrimSpace(*customerModify.Email)
		if !isValidEmail(email) {
			return entities.CustomerModify{}, ErrInvalidEmail
		}
		customerModify.Email = &email
	}
	return customerModify, nil
}
