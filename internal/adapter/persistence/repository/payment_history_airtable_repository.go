package repository

import (
	"context"
	"errors"
	"sort"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/mehanizm/airtable"
)

const (
	historyFieldStatus      = "Estado"
	historyFieldAmount      = "Monto"
	historyFieldDetail      = "Detalle"
	historyFieldPaymentID   = "MP_Payment_ID"
	historyFieldItems       = "Items_Pagados_JSON"
	historyFieldReceiptURL  = "Comprobante_URL"
	historyFieldEmail       = "Email"
	historyFieldPaymentType = "Payment_Type"
	historyFieldTimestamp   = "Timestamp"
)

var errEmptyAirtableResponse = errors.New("airtable returned no records")

// PaymentHistoryAirtableRepository persists the payment audit trail.
type PaymentHistoryAirtableRepository struct {
	table *airtable.Table
}

var _ interfaces.IPaymentHistoryRepository = (*PaymentHistoryAirtableRepository)(nil)

func NewPaymentHistoryAirtableRepository(client *airtable.Client, baseID, tableName string) *PaymentHistoryAirtableRepository {
	return &PaymentHistoryAirtableRepository{table: client.GetTable(baseID, tableName)}
}

func (r *PaymentHistoryAirtableRepository) Create(ctx context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentHistory{}, err
	}
	out, err := r.table.AddRecords(&airtable.Records{
		Records: []*airtable.Record{{Fields: toHistoryFields(h, true)}},
	})
	if err != nil {
		return entities.PaymentHistory{}, err
	}
	if out == nil || len(out.Records) == 0 {
		return entities.PaymentHistory{}, errEmptyAirtableResponse
	}
	return fromHistoryRecord(out.Records[0]), nil
}

func (r *PaymentHistoryAirtableRepository) Update(ctx context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentHistory{}, err
	}
	out, err := r.table.UpdateRecordsPartial(&airtable.Records{
		Records: []*airtable.Record{{ID: h.ID, Fields: toHistoryFields(h, false)}},
	})
	if err != nil {
		return entities.PaymentHistory{}, err
	}
	if out == nil || len(out.Records) == 0 {
		return h, nil
	}
	return fromHistoryRecord(out.Records[0]), nil
}

func (r *PaymentHistoryAirtableRepository) GetByID(ctx context.Context, id string) (entities.PaymentHistory, error) {
	return r.first(ctx, formulaRecordID(id))
}

func (r *PaymentHistoryAirtableRepository) FindByGatewayPaymentID(ctx context.Context, paymentID string) (entities.PaymentHistory, error) {
	return r.first(ctx, formulaEquals(historyFieldPaymentID, paymentID))
}

// ListAll returns every history record, newest first.
func (r *PaymentHistoryAirtableRepository) ListAll(ctx context.Context) ([]entities.PaymentHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	recs, err := listRecords(r.table, "")
	if err != nil {
		return nil, err
	}
	out := make([]entities.PaymentHistory, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromHistoryRecord(rec))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *PaymentHistoryAirtableRepository) first(ctx context.Context, formula string) (entities.PaymentHistory, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentHistory{}, err
	}
	recs, err := listRecords(r.table, formula)
	if err != nil {
		return entities.PaymentHistory{}, err
	}
	if len(recs) == 0 {
		return entities.PaymentHistory{}, nil
	}
	return fromHistoryRecord(recs[0]), nil
}

func toHistoryFields(h entities.PaymentHistory, withTimestamp bool) map[string]any {
	fields := map[string]any{
		historyFieldStatus: string(h.Status),
		historyFieldAmount: h.Amount,
		historyFieldDetail: h.Detail,
		historyFieldItems:  entities.EncodeItems(h.Items),
	}
	if h.GatewayPaymentID != "" {
		fields[historyFieldPaymentID] = h.GatewayPaymentID
	}
	if h.ReceiptURL != "" {
		fields[historyFieldReceiptURL] = h.ReceiptURL
	}
	if h.Email != "" {
		fields[historyFieldEmail] = h.Email
	}
	if h.PaymentType != "" {
		fields[historyFieldPaymentType] = h.PaymentType
	}
	if withTimestamp {
		fields[historyFieldTimestamp] = formatTime(h.CreatedAt)
	}
	return fields
}

func fromHistoryRecord(rec *airtable.Record) entities.PaymentHistory {
	f := rec.Fields
	return entities.PaymentHistory{
		ID:               rec.ID,
		Status:           entities.HistoryStatus(fieldString(f, historyFieldStatus)),
		Amount:           fieldFloat(f, historyFieldAmount),
		Detail:           fieldString(f, historyFieldDetail),
		GatewayPaymentID: fieldString(f, historyFieldPaymentID),
		Items:            entities.DecodeItems(fieldString(f, historyFieldItems)),
		ReceiptURL:       fieldString(f, historyFieldReceiptURL),
		Email:            fieldString(f, historyFieldEmail),
		PaymentType:      fieldString(f, historyFieldPaymentType),
		CreatedAt:        fieldTime(f, historyFieldTimestamp, rec.CreatedTime),
	}
}
