package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PaymentContextVersion is the current schema version of the context blob.
const PaymentContextVersion = 1

var ErrInvalidPaymentContext = errors.New("invalid payment context")

// ManualKind is the discriminator of administrative collection flows.
type ManualKind string

const (
	ManualKindRecaudacion   ManualKind = "recaudacion"
	ManualKindPatenteManual ManualKind = "patente_manual"
	ManualKindPlanPago      ManualKind = "plan_pago"
)

func (k ManualKind) Valid() bool {
	switch k {
	case ManualKindRecaudacion, ManualKindPatenteManual, ManualKindPlanPago:
		return true
	}
	return false
}

// PaymentContext is the purchase intent that travels through the gateway's
// external_reference and comes back in the webhook.
//
// It is a tagged union:
//   - standard payment: RecordID + ItemType (lote, vehiculo, deuda_general)
//   - manual collection: Type (recaudacion, patente_manual, plan_pago)
//
// JSON keys match the ones the web client already sends.
type PaymentContext struct {
	Version int `json:"v,omitempty" validate:"gte=0,lte=1"`

	Type ManualKind `json:"type,omitempty" validate:"omitempty,oneof=recaudacion patente_manual plan_pago"`

	RecordID     string             `json:"record_id,omitempty" validate:"required_without=Type"`
	ItemType     ItemType           `json:"item_type,omitempty" validate:"required_without=Type,omitempty,oneof=lote vehiculo deuda_general"`
	DNI          string             `json:"dni,omitempty"`
	TaxpayerName string             `json:"nombre_contribuyente,omitempty"`
	Email        string             `json:"email,omitempty"`
	TotalAmount  float64            `json:"total_amount,omitempty" validate:"gte=0"`
	Debt         bool               `json:"deuda,omitempty"`
	DebtAmount   float64            `json:"deuda_monto,omitempty" validate:"gte=0"`
	Months       map[string]bool    `json:"meses,omitempty"`
	MonthAmounts map[string]float64 `json:"meses_montos,omitempty"`

	Amount      float64 `json:"monto,omitempty" validate:"gte=0"`
	Name        string  `json:"nombre,omitempty"`
	Domain      string  `json:"dominio,omitempty"`
	Installment string  `json:"cuota,omitempty"`
}

var contextValidator = validator.New()

// IsManual reports whether the context belongs to an administrative flow.
func (c PaymentContext) IsManual() bool {
	return c.Type != ""
}

// SelectedMonths returns the months flagged for payment, in calendar order.
func (c PaymentContext) SelectedMonths() []string {
	selected := make([]string, 0, len(c.Months))
	for _, m := range Months {
		if c.Months[m] {
			selected = append(selected, m)
		}
	}
	return selected
}

// Identifier is the human-facing reference of the context, used in audit details.
func (c PaymentContext) Identifier() string {
	switch {
	case c.IsManual() && c.Domain != "":
		return c.Domain
	case c.IsManual() && c.Name != "":
		return c.Name
	case c.DNI != "":
		return "DNI " + c.DNI
	case c.TaxpayerName != "":
		return c.TaxpayerName
	case c.RecordID != "":
		return c.RecordID
	}
	return c.Email
}

// Label is the discriminator value (item type or manual kind).
func (c PaymentContext) Label() string {
	if c.IsManual() {
		return string(c.Type)
	}
	return string(c.ItemType)
}

// Validate checks the boundary rules of the union.
func (c PaymentContext) Validate() error {
	if err := contextValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPaymentContext, err)
	}
	for m := range c.Months {
		if !IsMonth(m) {
			return fmt.Errorf("%w: unknown month %q", ErrInvalidPaymentContext, m)
		}
	}
	for m, amount := range c.MonthAmounts {
		if !IsMonth(m) {
			return fmt.Errorf("%w: unknown month %q", ErrInvalidPaymentContext, m)
		}
		if amount < 0 {
			return fmt.Errorf("%w: negative amount for %q", ErrInvalidPaymentContext, m)
		}
	}
	return nil
}

// Encode serializes the context for the gateway's external reference.
func (c PaymentContext) Encode() (string, error) {
	c = c.normalized()
	if c.Version == 0 {
		c.Version = PaymentContextVersion
	}
	if err := c.Validate(); err != nil {
		return "", err
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParsePaymentContext decodes and validates the blob recovered from the gateway.
func ParsePaymentContext(raw string) (PaymentContext, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PaymentContext{}, fmt.Errorf("%w: empty external reference", ErrInvalidPaymentContext)
	}
	var c PaymentContext
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return PaymentContext{}, fmt.Errorf("%w: %v", ErrInvalidPaymentContext, err)
	}
	c = c.normalized()
	if err := c.Validate(); err != nil {
		return PaymentContext{}, err
	}
	if c.Version == 0 {
		c.Version = PaymentContextVersion
	}
	return c, nil
}

func (c PaymentContext) normalized() PaymentContext {
	c.RecordID = strings.TrimSpace(c.RecordID)
	c.Email = strings.TrimSpace(c.Email)
	c.ItemType = ItemType(strings.ToLower(strings.TrimSpace(string(c.ItemType))))
	c.Type = ManualKind(strings.ToLower(strings.TrimSpace(string(c.Type))))
	if len(c.Months) > 0 {
		months := make(map[string]bool, len(c.Months))
		for k, v := range c.Months {
			months[strings.ToLower(strings.TrimSpace(k))] = v
		}
		c.Months = months
	}
	if len(c.MonthAmounts) > 0 {
		amounts := make(map[string]float64, len(c.MonthAmounts))
		for k, v := range c.MonthAmounts {
			amounts[strings.ToLower(strings.TrimSpace(k))] = v
		}
		c.MonthAmounts = amounts
	}
	return c
}
