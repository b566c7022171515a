package dto

import (
	"strconv"
	"time"

	"ojitos/internal/entities"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

func FromCustomer(c entities.Customer) Customer {
	return Customer{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		WhatsAppNumber: c.WhatsAppNumber,
		Email:          c.Email,
		IDNumber:       c.IDNumber,
		Address:        c.Address,
		CreatedAt:      c.CreatedAt,
	}
}

func FromCustomers(customers []entities.Customer) []Customer {
	out := make([]Customer, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}

func FromCustomerProfile(p entities.CustomerProfile) CustomerProfile {
	return CustomerProfile{
		Customer:     FromCustomer(p.Customer),
		PackageCount: p.PackageCount,
		FirstPackage: p.FirstPackage,
	}
}

func (c CustomerCreate) ToModify() entities.CustomerModify {
	return entities.CustomerModify{
		Name:           c.Name,
		Phone:          c.Phone,
		WhatsAppNumber: c.WhatsAppNumber,
		Email:          c.Email,
		IDNumber:       c.IDNumber,
		Address:        c.Address,
	}
}

func (c CustomerUpdate) ToModify() entities.CustomerModify {
	modify := c.CustomerCreate.ToModify()
	modify.ID = c.ID
	return modify
}

func FromIndicator(customerID string, indicator *entities.ChatIndicator) Indicator {
	out := Indicator{CustomerID: customerID}
	if indicator != nil {
		name := indicator.String()
		priority := indicator.Priority()
		out.Indicator = &name
		out.Priority = &priority
	}
	return out
}

func FromTrip(t entities.Trip) Trip {
	return Trip{
		ID:           t.ID,
		TripDate:     t.TripDate.Format(DateLayout),
		Origin:       t.Origin,
		Destination:  t.Destination,
		FlightNumber: t.FlightNumber,
		TravelerID:   t.TravelerID,
		Status:       t.Status.String(),
		CreatedAt:    t.CreatedAt,
	}
}

func FromTrips(trips []entities.Trip) []Trip {
	out := make([]Trip, 0, len(trips))
	for _, t := range trips {
		out = append(out, FromTrip(t))
	}
	return out
}

// ToModify parses the trip date. A malformed date is returned as an error.
func (t TripCreate) ToModify() (entities.TripModify, error) {
	modify := entities.TripModify{
		Origin:       t.Origin,
		Destination:  t.Destination,
		FlightNumber: t.FlightNumber,
		TravelerID:   t.TravelerID,
	}
	if t.TripDate != nil {
		date, err := time.Parse(DateLayout, *t.TripDate)
		if err != nil {
			return entities.TripModify{}, err
		}
		modify.TripDate = &date
	}
	if t.Status != nil {
		status := entities.TripStatus(*t.Status)
		modify.Status = &status
	}
	return modify, nil
}

func FromPackage(p entities.Package) Package {
	return Package{
		ID:              p.ID,
		TrackingNumber:  p.TrackingNumber,
		CustomerID:      p.CustomerID,
		CustomerName:    p.CustomerName,
		TripID:          p.TripID,
		Origin:          p.Origin,
		Destination:     p.Destination,
		Description:     p.Description,
		Weight:          p.Weight,
		Freight:         p.Freight,
		AmountToCollect: p.AmountToCollect,
		Currency:        p.Currency.String(),
		Status:          p.Status.String(),
		DeliveredAt:     p.DeliveredAt,
		DeliveredBy:     p.DeliveredBy,
		DeletedAt:       p.DeletedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromPackages(packages []entities.Package) []Package {
	out := make([]Package, 0, len(packages))
	for _, p := range packages {
		out = append(out, FromPackage(p))
	}
	return out
}

func FromPackageDetails(d entities.PackageDetails) PackageDetails {
	return PackageDetails{
		Package:       FromPackage(d.Package),
		Payments:      FromPayments(d.Payments),
		PendingAmount: d.PendingAmount,
	}
}

func (p PackageCreate) ToModify() entities.PackageModify {
	modify := entities.PackageModify{
		TrackingNumber:  p.TrackingNumber,
		CustomerID:      p.CustomerID,
		TripID:          p.TripID,
		Origin:          p.Origin,
		Destination:     p.Destination,
		Description:     p.Description,
		Weight:          p.Weight,
		Freight:         p.Freight,
		AmountToCollect: p.AmountToCollect,
	}
	if p.Currency != nil {
		currency := entities.Currency(*p.Currency)
		modify.Currency = &currency
	}
	return modify
}

func FromPayment(p entities.CustomerPayment) Payment {
	return Payment{
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

func FromPayments(payments []entities.CustomerPayment) []Payment {
	out := make([]Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

func (p PaymentCreate) ToDomain() entities.CustomerPayment {
	payment := entities.CustomerPayment{
		PackageID:     p.PackageID,
		Amount:        p.Amount,
		Currency:      entities.Currency(p.Currency),
		PaymentMethod: entities.PaymentMethod(p.PaymentMethod),
		Notes:         p.Notes,
		CreatedBy:     p.CreatedBy,
	}
	if p.PaymentDate != nil {
		payment.PaymentDate = *p.PaymentDate
	}
	return payment
}

func (d Delivery) ToDomainPayments(packageID string) []entities.CustomerPayment {
	payments := make([]entities.CustomerPayment, 0, len(d.Payments))
	for _, p := range d.Payments {
		payment := p.ToDomain()
		payment.PackageID = packageID
		payments = append(payments, payment)
	}
	return payments
}

func fromAmounts(in map[string]entities.Amounts) map[string]Amounts {
	out := make(map[string]Amounts, len(in))
	for key, amounts := range in {
		converted := make(Amounts, len(amounts))
		for currency, amount := range amounts {
			converted[currency.String()] = amount
		}
		out[key] = converted
	}
	return out
}

func FromDebtReport(r entities.DebtReport) DebtReport {
	items := make([]DebtItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, DebtItem{
			PackageID:      item.PackageID,
			TrackingNumber: item.TrackingNumber,
			CustomerID:     item.CustomerID,
			CustomerName:   item.CustomerName,
			TravelerID:     item.TravelerID,
			Currency:       item.Currency.String(),
			Amount:         item.Amount,
			Paid:           item.Paid,
			PendingAmount:  item.PendingAmount,
		})
	}
	return DebtReport{
		Items:      items,
		ByCustomer: fromAmounts(r.ByCustomer),
		ByTraveler: fromAmounts(r.ByTraveler),
	}
}

func FromDispatch(d entities.DispatchRelation) Dispatch {
	return Dispatch{
		ID:                   d.ID,
		DispatchDate:         d.DispatchDate.Format(DateLayout),
		TotalPackages:        d.TotalPackages,
		TotalWeight:          d.TotalWeight,
		TotalFreight:         d.TotalFreight,
		TotalAmountToCollect: d.TotalAmountToCollect,
		Status:               d.Status.String(),
		Notes:                d.Notes,
		CreatedAt:            d.CreatedAt,
	}
}

func FromDispatches(dispatches []entities.DispatchRelation) []Dispatch {
	out := make([]Dispatch, 0, len(dispatches))
	for _, d := range dispatches {
		out = append(out, FromDispatch(d))
	}
	return out
}

func FromDispatchDetails(d entities.DispatchDetails) DispatchDetails {
	return DispatchDetails{
		Dispatch: FromDispatch(d.DispatchRelation),
		Packages: FromPackages(d.Packages),
	}
}

// ToDomain parses the dispatch date. An empty date means today.
func (d DispatchCreate) ToDomain(now time.Time) (entities.DispatchCreate, error) {
	date := now
	if d.DispatchDate != "" {
		parsed, err := time.Parse(DateLayout, d.DispatchDate)
		if err != nil {
			return entities.DispatchCreate{}, err
		}
		date = parsed
	}
	return entities.DispatchCreate{
		DispatchDate: date,
		PackageIDs:   d.PackageIDs,
		Notes:        d.Notes,
	}, nil
}

func FromNotification(n entities.NotificationLog) Notification {
	return Notification{
		ID:                n.ID,
		CustomerID:        n.CustomerID,
		Phone:             n.Phone,
		Status:            string(n.Status),
		ProviderMessageID: n.ProviderMessageID,
		Error:             n.Error,
		CreatedAt:         n.CreatedAt,
	}
}

func FromCampaign(c entities.Campaign) Campaign {
	return Campaign{
		ID:        c.ID,
		Name:      c.Name,
		Message:   c.Message,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		SentAt:    c.SentAt,
	}
}

func FromCampaigns(campaigns []entities.Campaign) []Campaign {
	out := make([]Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, FromCampaign(c))
	}
	return out
}

func FromCampaignResult(r entities.CampaignResult) CampaignResult {
	return CampaignResult{
		CampaignID: r.CampaignID,
		Sent:       r.Sent,
		Failed:     r.Failed,
	}
}

// InboundMessages extracts the text messages of a webhook notification.
// Other message types are skipped.
func (p WebhookPayload) InboundMessages() []entities.InboundMessage {
	var messages []entities.InboundMessage
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Type != "text" || msg.Text == nil {
					continue
				}
				inbound := entities.InboundMessage{
					From:              msg.From,
					Body:              msg.Text.Body,
					ProviderMessageID: msg.ID,
				}
				if seconds, err := strconv.ParseInt(msg.Timestamp, 10, 64); err == nil {
					inbound.ReceivedAt = time.Unix(seconds, 0).UTC()
				}
				messages = append(messages, inbound)
			}
		}
	}
	return messages
}
