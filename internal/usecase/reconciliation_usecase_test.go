package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/infrastructure/logger"
	mock_interfaces "traful_pagos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reconciliationMocks struct {
	gateway *mock_interfaces.MockIPaymentGateway
	fees    *mock_interfaces.MockIFeeRecordRepository
	history *mock_interfaces.MockIPaymentHistoryRepository
	manual  *mock_interfaces.MockIManualCollectionRepository
	ledger  *mock_interfaces.MockIProcessedPaymentRepository
	logs    *mock_interfaces.MockILogRepository
	entries []entities.LogEntry
}

func newReconciliationUseCase(t *testing.T, withLedger bool) (*ReconciliationUseCase, *reconciliationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &reconciliationMocks{
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
		fees:    mock_interfaces.NewMockIFeeRecordRepository(ctrl),
		history: mock_interfaces.NewMockIPaymentHistoryRepository(ctrl),
		manual:  mock_interfaces.NewMockIManualCollectionRepository(ctrl),
		ledger:  mock_interfaces.NewMockIProcessedPaymentRepository(ctrl),
		logs:    mock_interfaces.NewMockILogRepository(ctrl),
	}
	m.logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.LogEntry) error {
		m.entries = append(m.entries, e)
		return nil
	}).AnyTimes()

	deps := ReconciliationDeps{
		Gateway:    m.gateway,
		Fees:       m.fees,
		History:    m.history,
		Manual:     m.manual,
		Audit:      NewAuditLogger(m.logs, logger.Discard()),
		Logger:     logger.Discard(),
		BackendURL: "http://backend",
	}
	if withLedger {
		deps.Ledger = m.ledger
	}
	return NewReconciliationUseCase(deps), m
}

func (m *reconciliationMocks) hasEntry(level entities.LogLevel, message string) bool {
	for _, e := range m.entries {
		if e.Level == level && strings.Contains(e.Message, message) {
			return true
		}
	}
	return false
}

const loteContext = `{"item_type":"lote","record_id":"recXXX","deuda":true,"deuda_monto":1500,"meses":{}}`

func TestReconciliationUseCase_HandleNotification_ApprovedLote(t *testing.T) {
	uc, m := newReconciliationUseCase(t, false)
	ctx := context.Background()

	m.gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(entities.GatewayPayment{
		ID:                "123",
		Status:            "approved",
		Amount:            1500,
		ExternalReference: loteContext,
	}, nil)
	m.history.EXPECT().FindByGatewayPaymentID(gomock.Any(), "123").Return(entities.PaymentHistory{}, nil)
	m.history.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
		if h.Status != entities.HistoryStatusFallido {
			t.Fatalf("expected provisional Fallido, got %s", h.Status)
		}
		h.ID = "recH"
		return h, nil
	})
	m.fees.EXPECT().Update(gomock.Any(), entities.ItemTypeLote, "recXXX", map[string]any{"deuda": 0}).Return(entities.FeeRecord{ID: "recXXX"}, nil).Times(1)
	m.history.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
		if h.Status != entities.HistoryStatusExitoso || h.Amount != 1500 {
			t.Fatalf("unexpected final history: %+v", h)
		}
		if len(h.Items) != 1 || h.Items[0].Amount != 1500 {
			t.Fatalf("unexpected items: %+v", h.Items)
		}
		if h.ReceiptURL != "http://backend/api/receipt/recH" {
			t.Fatalf("unexpected receipt url: %s", h.ReceiptURL)
		}
		return h, nil
	})

	res, err := uc.HandleNotification(ctx, "payment", "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != ReconciliationProcessed || res.Outcome != entities.HistoryStatusExitoso || res.HistoryID != "recH" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestReconciliationUseCase_HandleNotification_Rejected(t *testing.T) {
	uc, m := newReconciliationUseCase(t, false)

	m.gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(entities.GatewayPayment{
		ID:                "123",
		Status:            "rejected",
		Amount:            1500,
		ExternalReference: loteContext,
	}, nil)
	m.history.EXPECT().FindByGatewayPaymentID(gomock.Any(), "123").Return(entities.PaymentHistory{}, nil)
	m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentHistory{ID: "recH", Status: entities.HistoryStatusFallido}, nil).Times(1)
	m.fees.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.history.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
		if h.Status != entities.HistoryStatusFallido {
			t.Fatalf("expected Fallido, got %s", h.Status)
		}
		if !strings.HasPrefix(h.Detail, "Pago rejected - lote") {
			t.Fatalf("unexpected detail: %s", h.Detail)
		}
		return h, nil
	})

	res, err := uc.HandleNotification(context.Background(), "payment", "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != entities.HistoryStatusFallido {
		t.Fatalf("unexpected outcome: %s", res.Outcome)
	}
}

func TestReconciliationUseCase_HandleNotification_IgnoresOtherEvents(t *testing.T) {
	uc, _ := newReconciliationUseCase(t, false)

	res, err := uc.HandleNotification(context.Background(), "merchant_order", "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != ReconciliationIgnored {
		t.Fatalf("expected ignored, got %s", res.Status)
	}
}

func TestReconciliationUseCase_HandleNotification_GatewayFailure(t *testing.T) {
	uc, m := newReconciliationUseCase(t, false)
	m.gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(entities.GatewayPayment{}, errors.New("timeout"))

	_, err := uc.HandleNotification(context.Background(), "payment", "123")
	if !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}

func TestReconciliationUseCase_HandleNotification_Duplicate(t *testing.T) {
	uc, m := newReconciliationUseCase(t, true)
	payment := entities.GatewayPayment{ID: "123", Status: "approved", Amount: 1500, ExternalReference: loteContext}

	m.gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(payment, nil).Times(2)

	gomock.InOrder(
		m.ledger.EXPECT().Get(gomock.Any(), "123").Return(entities.ProcessedPayment{}, nil),
		m.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.ProcessedPayment) error {
			if p.GatewayPaymentID != "123" || p.HistoryID != "recH" {
				t.Fatalf("unexpected ledger entry: %+v", p)
			}
			return nil
		}),
		m.ledger.EXPECT().Get(gomock.Any(), "123").Return(entities.ProcessedPayment{GatewayPaymentID: "123", HistoryID: "recH"}, nil),
	)
	m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentHistory{ID: "recH"}, nil).Times(1)
	m.fees.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.FeeRecord{}, nil).Times(1)
	m.history.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
		return h, nil
	}).Times(1)

	first, err := uc.HandleNotification(context.Background(), "payment", "123")
	if err != nil || first.Status != ReconciliationProcessed {
		t.Fatalf("unexpected first result: %+v err=%v", first, err)
	}
	second, err := uc.HandleNotification(context.Background(), "payment", "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Status != ReconciliationDuplicate {
		t.Fatalf("expected duplicate, got %s", second.Status)
	}
}

func TestReconciliationUseCase_HandleNotification_DuplicateWithoutLedger(t *testing.T) {
	uc, m := newReconciliationUseCase(t, false)
	payment := entities.GatewayPayment{ID: "123", Status: "approved", Amount: 1500, ExternalReference: loteContext}

	m.gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(payment, nil).Times(2)
	gomock.InOrder(
		m.history.EXPECT().FindByGatewayPaymentID(gomock.Any(), "123").Return(entities.PaymentHistory{}, nil),
		m.history.EXPECT().FindByGatewayPaymentID(gomock.Any(), "123").Return(entities.PaymentHistory{
			ID:               "recH",
			Status:           entities.HistoryStatusExitoso,
			GatewayPaymentID: "123",
		}, nil),
	)
	m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentHistory{ID: "recH"}, nil).Times(1)
	m.fees.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.FeeRecord{}, nil).Times(1)
	m.history.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
		return h, nil
	}).Times(1)

	first, err := uc.HandleNotification(context.Background(), "payment", "123")
	if err != nil || first.Status != ReconciliationProcessed {
		t.Fatalf("unexpected first result: %+v err=%v", first, err)
	}
	second, err := uc.HandleNotification(context.Background(), "payment", "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Status != ReconciliationDuplicate {
		t.Fatalf("expected duplicate, got %s", second.Status)
	}
}

func TestReconciliationUseCase_HandleNotification_LedgerDownFallsBackToHistory(t *testing.T) {
	uc, m := newReconciliationUseCase(t, true)

	m.gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(entities.GatewayPayment{
		ID:                "123",
		Status:            "approved",
		Amount:            1500,
		ExternalReference: loteContext,
	}, nil)
	m.ledger.EXPECT().Get(gomock.Any(), "123").Return(entities.ProcessedPayment{}, errors.New("throttled"))
	m.history.EXPECT().FindByGatewayPaymentID(gomock.Any(), "123").Return(entities.PaymentHistory{ID: "recH", Status: entities.HistoryStatusExitoso}, nil)
	m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	m.fees.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := uc.HandleNotification(context.Background(), "payment", "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != ReconciliationDuplicate {
		t.Fatalf("expected duplicate, got %s", res.Status)
	}
}

func TestReconciliationUseCase_HandleNotification_FailedAttemptIsRetried(t *testing.T) {
	uc, m := newReconciliationUseCase(t, false)

	m.gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(entities.GatewayPayment{
		ID:                "123",
		Status:            "approved",
		Amount:            1500,
		ExternalReference: loteContext,
	}, nil)
	m.history.EXPECT().FindByGatewayPaymentID(gomock.Any(), "123").Return(entities.PaymentHistory{ID: "recOld", Status: entities.HistoryStatusFallido}, nil)
	m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentHistory{ID: "recH"}, nil).Times(1)
	m.fees.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.FeeRecord{}, nil).Times(1)
	m.history.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
		return h, nil
	})

	res, err := uc.HandleNotification(context.Background(), "payment", "123")
	if err != nil || res.Status != ReconciliationProcessed {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}
}

func TestReconciliationUseCase_Process_MalformedContext(t *testing.T) {
	uc, m := newReconciliationUseCase(t, false)

	m.history.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
		if h.Status != entities.HistoryStatusFallido {
			t.Fatalf("expected Fallido, got %s", h.Status)
		}
		h.ID = "recH"
		return h, nil
	})
	m.fees.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := uc.process(context.Background(), entities.GatewayPayment{
		ID:                "123",
		Status:            "approved",
		Amount:            10,
		ExternalReference: "{not json",
	}, SourcePaymentWebhook)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != ReconciliationContextError || res.HistoryID != "recH" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !m.hasEntry(entities.LogLevelError, "Contexto de pago inválido") {
		t.Fatalf("expected an ERROR audit entry, got %+v", m.entries)
	}
}

func TestReconciliationUseCase_Process_VehicleMonths(t *testing.T) {
	uc, m := newReconciliationUseCase(t, false)
	ref := `{"item_type":"vehiculo","record_id":"recV","dni":"30111222","meses":{"enero":true,"marzo":true,"febrero":false},"meses_montos":{"enero":700}}`

	m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentHistory{ID: "recH"}, nil)
	m.fees.EXPECT().GetByID(gomock.Any(), entities.ItemTypeVehiculo, "recV").Return(entities.FeeRecord{
		ID:     "recV",
		Type:   entities.ItemTypeVehiculo,
		Fields: map[string]any{"Marzo": "800"},
	}, nil).Times(1)
	m.fees.EXPECT().Update(gomock.Any(), entities.ItemTypeVehiculo, "recV", map[string]any{"Enero": "0", "Marzo": "0"}).Return(entities.FeeRecord{}, nil)
	m.history.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
		return h, nil
	})

	res, err := uc.process(context.Background(), entities.GatewayPayment{ID: "9", Status: "approved", Amount: 1500, ExternalReference: ref}, SourcePaymentWebhook)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []entities.ReceiptItem{{Description: "Patente Enero", Amount: 700}, {Description: "Patente Marzo", Amount: 800}}
	if len(res.Items) != len(want) {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	for i := range want {
		if res.Items[i] != want[i] {
			t.Fatalf("item %d: got %+v want %+v", i, res.Items[i], want[i])
		}
	}
}

func TestReconciliationUseCase_Process_StoreFailureKeepsAudit(t *testing.T) {
	uc, m := newReconciliationUseCase(t, true)

	m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentHistory{ID: "recH"}, nil)
	m.fees.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.FeeRecord{}, errors.New("airtable 503"))
	m.history.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
		if !strings.Contains(h.Detail, "actualización pendiente") {
			t.Fatalf("unexpected detail: %s", h.Detail)
		}
		return h, nil
	})
	m.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	res, err := uc.process(context.Background(), entities.GatewayPayment{ID: "1", Status: "approved", Amount: 1500, ExternalReference: loteContext}, SourcePaymentWebhook)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != entities.HistoryStatusExitoso {
		t.Fatalf("unexpected outcome: %s", res.Outcome)
	}
	if !m.hasEntry(entities.LogLevelError, "Error actualizando registros") {
		t.Fatalf("expected ERROR audit entry")
	}
}

func TestReconciliationUseCase_Process_ManualCollection(t *testing.T) {
	uc, m := newReconciliationUseCase(t, false)
	ref := `{"type":"patente_manual","email":"vecino@example.com","monto":5000,"dominio":"AB123CD"}`

	m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentHistory{ID: "recH"}, nil)
	m.manual.EXPECT().ListPendingByEmail(gomock.Any(), entities.ManualKindPatenteManual, "vecino@example.com").Return([]entities.ManualCollection{
		{ID: "recOther", Kind: entities.ManualKindPatenteManual, Domain: "ZZ999ZZ", Amount: 5000},
		{ID: "recFar", Kind: entities.ManualKindPatenteManual, Domain: "AB123CD", Amount: 4000},
		{ID: "recMatch", Kind: entities.ManualKindPatenteManual, Domain: "ab123cd", Amount: 5000.5},
	}, nil)
	m.manual.EXPECT().MarkPaid(gomock.Any(), entities.ManualKindPatenteManual, "recMatch", "77").Return(nil).Times(1)
	m.history.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
		return h, nil
	})

	res, err := uc.process(context.Background(), entities.GatewayPayment{ID: "77", Status: "approved", Amount: 5000, ExternalReference: ref}, SourcePaymentWebhook)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != entities.HistoryStatusExitoso || len(res.Items) != 1 || res.Items[0].Description != "Patente" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestReconciliationUseCase_Process_ManualNoMatch(t *testing.T) {
	uc, m := newReconciliationUseCase(t, false)
	ref := `{"type":"recaudacion","email":"vecino@example.com","monto":100}`

	m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentHistory{ID: "recH"}, nil)
	m.manual.EXPECT().ListPendingByEmail(gomock.Any(), entities.ManualKindRecaudacion, "vecino@example.com").Return(nil, nil)
	m.manual.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.history.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
		return h, nil
	})

	res, err := uc.process(context.Background(), entities.GatewayPayment{ID: "5", Status: "approved", Amount: 100, ExternalReference: ref}, SourcePaymentWebhook)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != entities.HistoryStatusExitoso {
		t.Fatalf("unexpected outcome: %s", res.Outcome)
	}
	if !m.hasEntry(entities.LogLevelWarning, "No se encontró cobro pendiente") {
		t.Fatalf("expected WARNING audit entry")
	}
}

func TestReconciliationUseCase_Simulate(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		uc, _ := newReconciliationUseCase(t, false)
		_, err := uc.Simulate(context.Background(), entities.PaymentContext{}, 10, "")
		if !errors.Is(err, ErrDebugDisabled) {
			t.Fatalf("expected ErrDebugDisabled, got %v", err)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		uc, m := newReconciliationUseCase(t, false)
		uc.deps.DebugEnabled = true

		m.history.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
			if !strings.HasPrefix(h.GatewayPaymentID, "SIM_") {
				t.Fatalf("expected simulated id, got %s", h.GatewayPaymentID)
			}
			h.ID = "recH"
			return h, nil
		})
		m.fees.EXPECT().Update(gomock.Any(), entities.ItemTypeDeudaGeneral, "recD", map[string]any{"monto total deuda": 0}).Return(entities.FeeRecord{}, nil)
		m.history.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
			return h, nil
		})

		res, err := uc.Simulate(context.Background(), entities.PaymentContext{
			RecordID:    "recD",
			ItemType:    entities.ItemTypeDeudaGeneral,
			TotalAmount: 2500,
			DebtAmount:  2500,
		}, 0, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != entities.HistoryStatusExitoso || res.Items[0].Amount != 2500 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestReconciliationUseCase_RecordLegacyCallback(t *testing.T) {
	uc, m := newReconciliationUseCase(t, false)

	if !uc.RecordLegacyCallback(context.Background(), map[string]string{"status": "approved", "site_transaction_id": "tx1"}) {
		t.Fatalf("expected approved")
	}
	if uc.RecordLegacyCallback(context.Background(), map[string]string{"status": "rejected"}) {
		t.Fatalf("expected not approved")
	}
	if !m.hasEntry(entities.LogLevelInfo, "Callback de Payway") {
		t.Fatalf("expected INFO audit entry")
	}
}
