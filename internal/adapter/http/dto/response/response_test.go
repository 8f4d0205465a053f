package response

import (
	"encoding/base64"
	"testing"
	"time"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase"
)

func TestFromHistory(t *testing.T) {
	created := time.Date(2026, time.March, 1, 12, 30, 0, 0, time.UTC)
	res := FromHistory(entities.PaymentHistory{
		ID:               "recH",
		Status:           entities.HistoryStatusExitoso,
		Amount:           1500,
		GatewayPaymentID: "123",
		Items:            []entities.ReceiptItem{{Description: "Tasa Enero", Amount: 1500}},
		CreatedAt:        created,
	})
	if res.ID != "recH" || res.Fields["Estado"] != "Exitoso" || res.Fields["MP_Payment_ID"] != "123" {
		t.Fatalf("unexpected history response: %+v", res)
	}
	if res.Fields["Items_Pagados_JSON"] != `[{"description":"Tasa Enero","amount":1500}]` {
		t.Fatalf("unexpected items: %v", res.Fields["Items_Pagados_JSON"])
	}
	if res.Fields["Timestamp"] != "2026-03-01T12:30:00Z" {
		t.Fatalf("unexpected timestamp: %v", res.Fields["Timestamp"])
	}
}

func TestFromFeeRecords(t *testing.T) {
	res := FromFeeRecords([]entities.FeeRecord{{ID: "rec1", CreatedTime: "2025-01-01T00:00:00.000Z"}})
	if len(res) != 1 || res[0].ID != "rec1" || res[0].Fields == nil {
		t.Fatalf("unexpected fee records: %+v", res)
	}
	if out := FromFeeRecords(nil); out == nil || len(out) != 0 {
		t.Fatalf("expected empty non nil slice, got %#v", out)
	}
}

func TestFromManualCollectionResult(t *testing.T) {
	res := FromManualCollectionResult(usecase.ManualCollectionResult{
		RecordID:     "recM",
		Status:       entities.CollectionStatusPagado,
		Total:        1350,
		PDF:          []byte("%PDF"),
		PDFGenerated: true,
	})
	if res.PDFBase64 != base64.StdEncoding.EncodeToString([]byte("%PDF")) || res.Status != "Pagado" || res.Message != "Cobro registrado" {
		t.Fatalf("unexpected response: %+v", res)
	}

	online := FromManualCollectionResult(usecase.ManualCollectionResult{PaymentLink: "https://mp/link"})
	if online.PaymentLink != "https://mp/link" || online.PDFBase64 != "" || online.Message != "Link de pago generado" {
		t.Fatalf("unexpected online response: %+v", online)
	}
}

func TestFromPage(t *testing.T) {
	p := usecase.Paginate([]entities.LogEntry{{ID: "l1", Level: entities.LogLevelError}, {ID: "l2"}}, 1, 1)
	res := FromPage(p, FromLogEntry)
	if len(res.Records) != 1 || res.Records[0].Level != "ERROR" || res.TotalPages != 2 || res.PerPage != 1 {
		t.Fatalf("unexpected page: %+v", res)
	}
}

func TestFromAccessLogPage(t *testing.T) {
	ts := time.Date(2026, time.April, 2, 9, 15, 0, 0, time.UTC)
	p := usecase.Paginate([]entities.AccessLog{{ID: "a1", Username: "ana", IP: "10.0.0.1", Timestamp: ts}}, 1, 20)
	res := FromAccessLogPage(p)
	if len(res.Logs) != 1 || res.Logs[0].Fecha != "2026-04-02" || res.Logs[0].Hora != "09:15:00" || res.Logs[0].Usuario != "ana" {
		t.Fatalf("unexpected access page: %+v", res)
	}
}

func TestFromManualCollection(t *testing.T) {
	res := FromManualCollection(entities.ManualCollection{
		ID:        "recM",
		Name:      "Juan",
		Amount:    900,
		Subtotal:  1000,
		Discount:  10,
		CreatedAt: time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC),
	})
	if res.Fecha != "2026-05-05" || res.Contribuyente != "Juan" || res.Total != 900 || res.Detalle == nil {
		t.Fatalf("unexpected recaudacion: %+v", res)
	}
}
