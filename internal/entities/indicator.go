package entities

// ChatIndicator is the badge shown next to a customer in the chat view.
type ChatIndicator string

const (
	IndicatorPendingPickupPayment    ChatIndicator = "pending_pickup_payment"
	IndicatorDeliveredPendingPayment ChatIndicator = "delivered_pending_payment"
	IndicatorPendingDelivery         ChatIndicator = "pending_delivery"
	IndicatorInTransit               ChatIndicator = "in_transit"
	IndicatorProcessing              ChatIndicator = "processing"
	IndicatorReceived                ChatIndicator = "received"
	IndicatorDelivered               ChatIndicator = "delivered"
)

func (i ChatIndicator) String() string {
	return string(i)
}

// Priority orders indicators; 1 is the most critical.
func (i ChatIndicator) Priority() int {
	switch i {
	case IndicatorPendingPickupPayment:
		return 1
	case IndicatorDeliveredPendingPayment:
		return 2
	case IndicatorPendingDelivery:
		return 3
	case IndicatorInTransit:
		return 4
	case IndicatorProcessing:
		return 5
	case IndicatorReceived:
		return 6
	case IndicatorDelivered:
		return 7
	default:
		return 0
	}
}
