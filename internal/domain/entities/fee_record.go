package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnsupportedItemType = errors.New("unsupported item type")

// ItemType identifies which fee table a payment targets.
type ItemType string

const (
	ItemTypeLote         ItemType = "lote"
	ItemTypeVehiculo     ItemType = "vehiculo"
	ItemTypeDeudaGeneral ItemType = "deuda_general"
)

// Months are the billing periods, in calendar order, as sent by the web client.
var Months = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// IsMonth reports whether m (lowercase) is a billing period name.
func IsMonth(m string) bool {
	for _, month := range Months {
		if month == m {
			return true
		}
	}
	return false
}

// FeeLayout describes how a fee table names its fields.
//
// Layouts:
//   - lote: "deuda" + lowercase month fields ("enero")
//   - vehiculo: "Deuda patente" + capitalized month fields ("Enero"); text columns, zeroed with "0"
//   - deuda_general: "monto total deuda", no periods
type FeeLayout struct {
	DebtField         string
	DebtLabel         string
	PeriodLabel       string
	HasPeriods        bool
	CapitalizedMonths bool
	ZeroValue         any
	SearchField       string
	IdentifyingField  string
}

var feeLayouts = map[ItemType]FeeLayout{
	ItemTypeLote: {
		DebtField:        "deuda",
		DebtLabel:        "Deuda acumulada (Tasas)",
		PeriodLabel:      "Tasa",
		HasPeriods:       true,
		ZeroValue:        0,
		SearchField:      "dni",
		IdentifyingField: "lote",
	},
	ItemTypeVehiculo: {
		DebtField:         "Deuda patente",
		DebtLabel:         "Deuda acumulada (Patente)",
		PeriodLabel:       "Patente",
		HasPeriods:        true,
		CapitalizedMonths: true,
		ZeroValue:         "0",
		SearchField:       "dni",
		IdentifyingField:  "patente",
	},
	ItemTypeDeudaGeneral: {
		DebtField:        "monto total deuda",
		DebtLabel:        "Deuda general",
		ZeroValue:        0,
		SearchField:      "nombre y apellido",
		IdentifyingField: "nombre y apellido",
	},
}

// Layout returns the field layout for the item type.
func (t ItemType) Layout() (FeeLayout, bool) {
	l, ok := feeLayouts[t]
	return l, ok
}

func (t ItemType) Valid() bool {
	_, ok := feeLayouts[t]
	return ok
}

// PeriodDescription is the receipt line of a paid month, e.g. "Tasa Enero".
func (l FeeLayout) PeriodDescription(month string) string {
	month = strings.ToLower(strings.TrimSpace(month))
	if month == "" {
		return l.PeriodLabel
	}
	return l.PeriodLabel + " " + strings.ToUpper(month[:1]) + month[1:]
}

// PeriodField maps a lowercase month to the column name used by the table.
func (l FeeLayout) PeriodField(month string) string {
	month = strings.ToLower(strings.TrimSpace(month))
	if l.CapitalizedMonths && month != "" {
		return strings.ToUpper(month[:1]) + month[1:]
	}
	return month
}

// FeeRecord is a row of one of the fee tables.
type FeeRecord struct {
	ID          string
	Type        ItemType
	CreatedTime string
	Fields      map[string]any
}

func (r FeeRecord) String(key string) string {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		if len(t) > 0 {
			return strings.TrimSpace(fmt.Sprintf("%v", t[0]))
		}
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

// Amount parses a money column. Empty or unparseable values count as zero.
func (r FeeRecord) Amount(key string) decimal.Decimal {
	return ParseAmount(r.Fields[key])
}

func (r FeeRecord) DNI() string {
	return r.String("dni")
}

// Holder returns the taxpayer name, whichever column the table uses.
func (r FeeRecord) Holder() string {
	for _, key := range []string{"titular", "contribuyente", "nombre y apellido"} {
		if v := r.String(key); v != "" {
			return v
		}
	}
	return ""
}

// Reference returns the identifying value shown on receipts (lot, plate, name).
func (r FeeRecord) Reference() string {
	if l, ok := r.Type.Layout(); ok {
		if v := r.String(l.IdentifyingField); v != "" {
			return v
		}
	}
	return r.DNI()
}

func (r FeeRecord) Debt() decimal.Decimal {
	l, ok := r.Type.Layout()
	if !ok {
		return decimal.Zero
	}
	return r.Amount(l.DebtField)
}

func (r FeeRecord) Period(month string) decimal.Decimal {
	l, ok := r.Type.Layout()
	if !ok || !l.HasPeriods {
		return decimal.Zero
	}
	return r.Amount(l.PeriodField(month))
}

// ParseAmount converts the loosely typed values found in store columns.
// Accepts numbers and strings such as "1500", "1.500,50" or "$ 1500.50".
func ParseAmount(v any) decimal.Decimal {
	switch t := v.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(t)
	case float32:
		return decimal.NewFromFloat32(t)
	case int:
		return decimal.NewFromInt(int64(t))
	case int64:
		return decimal.NewFromInt(t)
	case decimal.Decimal:
		return t
	case string:
		return parseAmountString(t)
	default:
		return parseAmountString(fmt.Sprintf("%v", t))
	}
}

func parseAmountString(s string) decimal.Decimal {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.ReplaceAll(clean, " ", "")
	if clean == "" {
		return decimal.Zero
	}
	// "1.500,50" uses dot thousands and comma decimals.
	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return d
}
