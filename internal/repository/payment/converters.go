package payment

import (
	"ojitos/internal/entities"
)

func ToDomain(p *CustomerPaymentDB) *entities.CustomerPayment {
	if p == nil {
		return nil
	}

	return &entities.CustomerPayment{
		ID:            p.ID,
		PackageID:     p.PackageID,
		CustomerID:    p.CustomerID,
		Amount:        p.Amount,
		Currency:      entities.Currency(p.Currency),
		PaymentMethod: entities.PaymentMethod(p.PaymentMethod),
		PaymentDate:   p.PaymentDate,
		Notes:         p.Notes,
		CreatedBy:     p.CreatedBy,
	}
}

func FromDomain(p *entities.CustomerPayment) *CustomerPaymentDB {
	if p == nil {
		return nil
	}

	return &CustomerPaymentDB{
		ID:            p.ID,
		PackageID:     p.PackageID,
		CustomerID:    p.CustomerID,
		Amount:        p.Amount,
		Currency:      p.Currency.String(),
		PaymentMethod: p.PaymentMethod.String(),
		PaymentDate:   p.PaymentDate,
		Notes:         p.Notes,
		CreatedBy:     p.CreatedBy,
	}
}

func ToDomainList(paymentsDB []CustomerPaymentDB) []entities.CustomerPayment {
	if len(paymentsDB) == 0 {
		return []entities.CustomerPayment{}
	}

	result := make([]entities.CustomerPayment, len(paymentsDB))
	for i, paymentDB := range paymentsDB {
		result[i] = *ToDomain(&paymentDB)
	}
	return result
}

func toProcedurePayments(payments []entities.CustomerPayment) []procedurePaymentDB {
	result := make([]procedurePaymentDB, 0, len(payments))
	for _, p := range payments {
		result = append(result, procedurePaymentDB{
			Amount:        p.Amount,
			Currency:      p.Currency.String(),
			PaymentMethod: p.PaymentMethod.String(),
			PaymentDate:   p.PaymentDate,
			Notes:         p.Notes,
			CreatedBy:     p.CreatedBy,
		})
	}
	return result
}

func debtFromDomain(d *entities.PackageDebt) *PackageDebtDB {
	return &PackageDebtDB{
		PackageID:     d.PackageID,
		CustomerID:    d.CustomerID,
		Amount:        d.Amount,
		Currency:      d.Currency.String(),
		PendingAmount: d.PendingAmount,
		Status:        d.Status.String(),
	}
}
