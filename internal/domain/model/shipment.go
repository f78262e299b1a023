package model

// ShipmentRequest carries the courier booking payload for one order.
type ShipmentRequest struct {
	Invoice       string
	RecipientName string
	Phone         string
	Address       string
	CODAmount     int
}

// ShipmentConfirmation is the courier's synchronous booking result.
type ShipmentConfirmation struct {
	TrackingCode string
	Status       string
}
