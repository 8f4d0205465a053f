package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"traful_pagos/internal/domain/entities"

	"github.com/mehanizm/airtable"
)

func newTestAirtable(t *testing.T, handler http.HandlerFunc) *airtable.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := airtable.NewClient("pat_test")
	if err := client.SetBaseURL(srv.URL); err != nil {
		t.Fatalf("set base url: %v", err)
	}
	return client
}

func TestEscapeFormulaValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"perez", "perez"},
		{"o'brien", `o\'brien`},
		{`a\b`, `a\\b`},
	}
	for _, tt := range tests {
		if got := escapeFormulaValue(tt.in); got != tt.want {
			t.Errorf("escapeFormulaValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormulaHelpers(t *testing.T) {
	if got := formulaContainsFold("nombre y apellido", "Pérez"); got != "SEARCH('pérez', LOWER({nombre y apellido}))" {
		t.Fatalf("unexpected formula: %s", got)
	}
	if got := formulaAnd(formulaEquals("Email", "a@b.c"), formulaEquals("Estado", "Pendiente")); got != "AND({Email}='a@b.c',{Estado}='Pendiente')" {
		t.Fatalf("unexpected formula: %s", got)
	}
}

func TestFeeRecordAirtableRepository_SearchByDNI(t *testing.T) {
	var gotFormula, gotPath string
	client := newTestAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFormula = r.URL.Query().Get("filterByFormula")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"records":[{"id":"rec1","createdTime":"2025-01-01T00:00:00.000Z","fields":{"dni":"123","deuda":1500,"enero":"200"}}]}`))
	})

	repo := NewFeeRecordAirtableRepository(client, "appBase", map[entities.ItemType]string{entities.ItemTypeLote: "Contributivos"})
	recs, err := repo.SearchByDNI(context.Background(), entities.ItemTypeLote, "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(gotPath, "/appBase/Contributivos") {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotFormula != "{dni}='123'" {
		t.Fatalf("unexpected formula: %s", gotFormula)
	}
	if len(recs) != 1 || recs[0].ID != "rec1" || recs[0].Type != entities.ItemTypeLote {
		t.Fatalf("unexpected records: %+v", recs)
	}
	if !recs[0].Debt().Equal(entities.ParseAmount(1500)) {
		t.Fatalf("unexpected debt: %s", recs[0].Debt())
	}
}

func TestFeeRecordAirtableRepository_UnknownItemType(t *testing.T) {
	repo := NewFeeRecordAirtableRepository(airtable.NewClient("pat"), "appBase", map[entities.ItemType]string{})
	if _, err := repo.SearchByDNI(context.Background(), entities.ItemTypeVehiculo, "1"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestPaymentHistoryAirtableRepository_Create(t *testing.T) {
	var body struct {
		Records []struct {
			Fields map[string]any `json:"fields"`
		} `json:"records"`
	}
	client := newTestAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"records":[{"id":"recH","createdTime":"2025-01-01T00:00:00.000Z","fields":{"Estado":"Fallido","Monto":1500,"Detalle":"Procesando","Items_Pagados_JSON":"[]"}}]}`))
	})

	repo := NewPaymentHistoryAirtableRepository(client, "appBase", "Historial")
	h, err := repo.Create(context.Background(), entities.PaymentHistory{
		Status: entities.HistoryStatusFallido,
		Amount: 1500,
		Detail: "Procesando",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.ID != "recH" || h.Status != entities.HistoryStatusFallido || h.Amount != 1500 {
		t.Fatalf("unexpected history: %+v", h)
	}
	if len(body.Records) != 1 || body.Records[0].Fields["Estado"] != "Fallido" || body.Records[0].Fields["Timestamp"] == nil {
		t.Fatalf("unexpected request body: %+v", body)
	}
}

func TestPaymentHistoryAirtableRepository_GetByID_NotFound(t *testing.T) {
	client := newTestAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"records":[]}`))
	})

	repo := NewPaymentHistoryAirtableRepository(client, "appBase", "Historial")
	h, err := repo.GetByID(context.Background(), "recX")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.ID != "" {
		t.Fatalf("expected zero value, got %+v", h)
	}
}

func TestManualCollectionAirtableRepository_ListPendingByEmail(t *testing.T) {
	var gotFormula, gotPath string
	client := newTestAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFormula = r.URL.Query().Get("filterByFormula")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"records":[{"id":"recM","createdTime":"2025-01-01T00:00:00.000Z","fields":{"Email":"Ana@Example.com","Estado":"Pendiente","Total":1500}}]}`))
	})

	repo := NewManualCollectionAirtableRepository(client, "appBase", map[entities.ManualKind]string{entities.ManualKindRecaudacion: "Recaudacion"})
	got, err := repo.ListPendingByEmail(context.Background(), entities.ManualKindRecaudacion, " ANA@example.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(gotPath, "/appBase/Recaudacion") {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotFormula != "AND(LOWER(TRIM({Email}))='ana@example.com',{Estado}='Pendiente')" {
		t.Fatalf("unexpected formula: %s", gotFormula)
	}
	if len(got) != 1 || got[0].ID != "recM" {
		t.Fatalf("unexpected collections: %+v", got)
	}
}

func TestFromCollectionRecord(t *testing.T) {
	m := fromCollectionRecord(entities.ManualKindRecaudacion, &airtable.Record{
		ID: "recM",
		Fields: map[string]any{
			"Contribuyente": "Ana",
			"Email":         "ana@example.com",
			"Total":         "1.500,00",
			"Estado":        "Pendiente",
			"Detalle":       `{"aranceles":1500}`,
		},
	})
	if m.Amount != 1500 || m.Status != entities.CollectionStatusPendiente || m.Concepts["aranceles"] != 1500 {
		t.Fatalf("unexpected collection: %+v", m)
	}
}
