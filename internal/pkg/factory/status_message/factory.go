package status_message

import (
	"fmt"

	"ojitos/internal/entities"
	"ojitos/internal/service/messaging"
)

type TemplateFactory struct{}

func NewTemplateFactory() *TemplateFactory {
	return &TemplateFactory{}
}

// GetTemplate returns the customer message for a package status. Internal
// warehouse steps have no message.
func (f *TemplateFactory) GetTemplate(status entities.PackageStatus) (messaging.TemplateFn, error) {
	switch status {
	case entities.StatusReceived:
		return f.receivedTemplate, nil
	case entities.StatusDispatched, entities.StatusTransit, entities.StatusInTransit:
		return f.inTransitTemplate, nil
	case entities.StatusDestination:
		return f.destinationTemplate, nil
	case entities.StatusDelivered:
		return f.deliveredTemplate, nil
	default:
		return nil, fmt.Errorf("%w: %s", messaging.ErrUndefinedStatus, status)
	}
}

func (f *TemplateFactory) receivedTemplate(pkg entities.Package) string {
	return fmt.Sprintf(
		"Hola %s, recibimos tu paquete con guía %s en %s. Te avisaremos cuando salga hacia %s.",
		greetingName(pkg), pkg.TrackingNumber, pkg.Origin, pkg.Destination,
	)
}

func (f *TemplateFactory) inTransitTemplate(pkg entities.Package) string {
	return fmt.Sprintf(
		"Hola %s, tu paquete %s va en camino a %s.",
		greetingName(pkg), pkg.TrackingNumber, pkg.Destination,
	)
}

func (f *TemplateFactory) destinationTemplate(pkg entities.Package) string {
	msg := fmt.Sprintf(
		"Hola %s, tu paquete %s ya está en %s y listo para entrega.",
		greetingName(pkg), pkg.TrackingNumber, pkg.Destination,
	)
	if amount := pkg.CollectAmount(); amount.IsPositive() {
		msg += fmt.Sprintf(" Valor a pagar: %s %s.", amount.StringFixed(0), pkg.Currency)
	}
	return msg
}

func (f *TemplateFactory) deliveredTemplate(pkg entities.Package) string {
	return fmt.Sprintf(
		"Hola %s, tu paquete %s fue entregado. ¡Gracias por confiar en Envíos Ojitos!",
		greetingName(pkg), pkg.TrackingNumber,
	)
}

func greetingName(pkg entities.Package) string {
	if pkg.CustomerName == "" {
		return "cliente"
	}
	return pkg.CustomerName
}
