package request

import (
	"encoding/json"
	"testing"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{in: `1500`, want: 1500},
		{in: `"1500"`, want: 1500},
		{in: `"1.500,50"`, want: 1500.5},
		{in: `""`, want: 0},
		{in: `null`, want: 0},
	}
	for _, tc := range cases {
		var a Amount
		if err := json.Unmarshal([]byte(tc.in), &a); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if a.Float() != tc.want {
			t.Fatalf("%s: got %v want %v", tc.in, a, tc.want)
		}
	}
}

func TestWebhookNotification_Resolve(t *testing.T) {
	noQuery := func(string) string { return "" }

	var body WebhookNotification
	if err := json.Unmarshal([]byte(`{"type":"payment","data":{"id":141870342175}}`), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if typ, id := body.Resolve(noQuery); typ != "payment" || id != "141870342175" {
		t.Fatalf("unexpected resolve: %s %s", typ, id)
	}

	query := map[string]string{"topic": "payment", "id": "77"}
	typ, id := WebhookNotification{}.Resolve(func(k string) string { return query[k] })
	if typ != "payment" || id != "77" {
		t.Fatalf("unexpected query resolve: %s %s", typ, id)
	}

	var action WebhookNotification
	_ = json.Unmarshal([]byte(`{"action":"payment.updated","data":{"id":"9"}}`), &action)
	if typ, id := action.Resolve(noQuery); typ != "payment" || id != "9" {
		t.Fatalf("unexpected action resolve: %s %s", typ, id)
	}
}

func TestManualCollectionRequest_ToInput(t *testing.T) {
	var r ManualCollectionRequest
	raw := `{"nombre":"Juan","email":"a@b.com","monto":"","monto_total":"2500","descuento":"10",
		"administrativo":"Ana","patente":"ab123cd","marca":"Ford","cuota_plan":"2","importes":{"Tasa":"100"}}`
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput()
	if in.Amount != 2500 || in.Discount != 10 || in.Operator != "Ana" || in.Installment != "2" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Concepts["Tasa"] != 100 || in.Notes["marca"] != "Ford" || in.Domain != "ab123cd" {
		t.Fatalf("unexpected concepts/notes: %+v", in)
	}
}
