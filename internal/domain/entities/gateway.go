package entities

// Gateway payment statuses as reported by Mercado Pago.
const (
	GatewayStatusApproved = "approved"
	GatewayStatusPending  = "pending"
	GatewayStatusRejected = "rejected"
)

// GatewayPayment is the payment state fetched from the gateway by id.
type GatewayPayment struct {
	ID                string
	Status            string
	StatusDetail      string
	Amount            float64
	ExternalReference string
	PayerEmail        string
}

func (p GatewayPayment) Approved() bool {
	return p.Status == GatewayStatusApproved
}

// PreferenceRequest describes a hosted checkout to be created.
type PreferenceRequest struct {
	Title             string
	UnitPrice         float64
	ExternalReference string
	PayerEmail        string
	SuccessURL        string
	FailureURL        string
	PendingURL        string
	NotificationURL   string
}

// Preference is the hosted checkout returned by the gateway.
type Preference struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}

// PaymentLinkRequest describes a legacy gateway (Payway) payment link.
type PaymentLinkRequest struct {
	Description       string
	Amount            float64
	ExternalReference string
	PayerEmail        string
	CallbackURL       string
	SuccessURL        string
	FailureURL        string
}

type PaymentLink struct {
	ID  string
	URL string
}
