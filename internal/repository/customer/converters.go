package customer

import (
	"ojitos/internal/entities"
)

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}

	return &entities.Customer{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		WhatsAppNumber: c.WhatsAppNumber,
		Email:          c.Email,
		IDNumber:       c.IDNumber,
		Address:        c.Address,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func FromDomainModify(customerModify *entities.CustomerModify) *CustomerModifyDB {
	if customerModify == nil {
		return nil
	}

	return &CustomerModifyDB{
		ID:             customerModify.ID,
		Name:           customerModify.Name,
		Phone:          customerModify.Phone,
		WhatsAppNumber: customerModify.WhatsAppNumber,
		Email:          customerModify.Email,
		IDNumber:       customerModify.IDNumber,
		Address:        customerModify.Address,
	}
}

func ToDomainList(customersDB []CustomerDB) []entities.Customer {
	if len(customersDB) == 0 {
		return []entities.Customer{}
	}

	result := make([]entities.Customer, len(customersDB))
	for i, customerDB := range customersDB {
		result[i] = *ToDomain(&customerDB)
	}
	return result
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
