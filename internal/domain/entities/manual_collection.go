package entities

import "time"

type CollectionStatus string

const (
	CollectionStatusPendiente CollectionStatus = "Pendiente"
	CollectionStatusPagado    CollectionStatus = "Pagado"
)

const (
	PaymentMethodCash        = "efectivo"
	PaymentMethodMercadoPago = "mercadopago"
)

// ManualCollection is a payment registered by municipal staff: cash collections
// at the counter, manual patente payments and payment plans.
//
// Discount is a percentage applied to Subtotal; Amount is the final charge.
// When paid online the record is created Pendiente and flipped to Pagado by the
// webhook, matched by payer email and amount.
type ManualCollection struct {
	ID               string
	Kind             ManualKind
	Date             string
	Name             string
	DNI              string
	Email            string
	Subtotal         float64
	Discount         float64
	Amount           float64
	Status           CollectionStatus
	Method           string
	Transfer         string
	Operator         string
	Concepts         map[string]float64
	Notes            map[string]string
	Domain           string
	Installment      string
	GatewayPaymentID string
	CreatedAt        time.Time
}
