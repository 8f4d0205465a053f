package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/mehanizm/airtable"
)

const (
	collectionFieldDate        = "Fecha"
	collectionFieldName        = "Contribuyente"
	collectionFieldDNI         = "DNI"
	collectionFieldEmail       = "Email"
	collectionFieldSubtotal    = "Subtotal"
	collectionFieldDiscount    = "Descuento"
	collectionFieldTotal       = "Total"
	collectionFieldStatus      = "Estado"
	collectionFieldMethod      = "Medio_Pago"
	collectionFieldTransfer    = "Transferencia"
	collectionFieldOperator    = "Operador"
	collectionFieldConcepts    = "Detalle"
	collectionFieldNotes       = "Notas"
	collectionFieldDomain      = "Dominio"
	collectionFieldInstallment = "Cuota"
	collectionFieldPaymentID   = "MP_Payment_ID"
	collectionFieldTimestamp   = "Timestamp"
)

// ManualCollectionAirtableRepository stores staff-registered collections,
// one table per kind (recaudacion, patente_manual, plan_pago).
type ManualCollectionAirtableRepository struct {
	client *airtable.Client
	baseID string
	tables map[entities.ManualKind]string
}

var _ interfaces.IManualCollectionRepository = (*ManualCollectionAirtableRepository)(nil)

func NewManualCollectionAirtableRepository(client *airtable.Client, baseID string, tables map[entities.ManualKind]string) *ManualCollectionAirtableRepository {
	return &ManualCollectionAirtableRepository{client: client, baseID: baseID, tables: tables}
}

func (r *ManualCollectionAirtableRepository) Create(ctx context.Context, m entities.ManualCollection) (entities.ManualCollection, error) {
	table, err := r.table(m.Kind)
	if err != nil {
		return entities.ManualCollection{}, err
	}
	if err := ctx.Err(); err != nil {
		return entities.ManualCollection{}, err
	}
	out, err := table.AddRecords(&airtable.Records{
		Records: []*airtable.Record{{Fields: toCollectionFields(m)}},
	})
	if err != nil {
		return entities.ManualCollection{}, err
	}
	if out == nil || len(out.Records) == 0 {
		return entities.ManualCollection{}, errEmptyAirtableResponse
	}
	return fromCollectionRecord(m.Kind, out.Records[0]), nil
}

func (r *ManualCollectionAirtableRepository) ListPendingByEmail(ctx context.Context, kind entities.ManualKind, email string) ([]entities.ManualCollection, error) {
	formula := formulaAnd(
		formulaEqualsFold(collectionFieldEmail, email),
		formulaEquals(collectionFieldStatus, string(entities.CollectionStatusPendiente)),
	)
	return r.list(ctx, kind, formula)
}

func (r *ManualCollectionAirtableRepository) MarkPaid(ctx context.Context, kind entities.ManualKind, id string, gatewayPaymentID string) error {
	table, err := r.table(kind)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err = table.UpdateRecordsPartial(&airtable.Records{
		Records: []*airtable.Record{{ID: id, Fields: map[string]any{
			collectionFieldStatus:    string(entities.CollectionStatusPagado),
			collectionFieldPaymentID: gatewayPaymentID,
		}}},
	})
	return err
}

// ListAll returns every record of the kind, newest first.
func (r *ManualCollectionAirtableRepository) ListAll(ctx context.Context, kind entities.ManualKind) ([]entities.ManualCollection, error) {
	out, err := r.list(ctx, kind, "")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ManualCollectionAirtableRepository) list(ctx context.Context, kind entities.ManualKind, formula string) ([]entities.ManualCollection, error) {
	table, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	recs, err := listRecords(table, formula)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ManualCollection, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromCollectionRecord(kind, rec))
	}
	return out, nil
}

func (r *ManualCollectionAirtableRepository) table(kind entities.ManualKind) (*airtable.Table, error) {
	name, ok := r.tables[kind]
	if !ok || name == "" {
		return nil, fmt.Errorf("unknown collection kind %q", kind)
	}
	return r.client.GetTable(r.baseID, name), nil
}

func toCollectionFields(m entities.ManualCollection) map[string]any {
	fields := map[string]any{
		collectionFieldDate:      m.Date,
		collectionFieldName:      m.Name,
		collectionFieldEmail:     m.Email,
		collectionFieldSubtotal:  m.Subtotal,
		collectionFieldDiscount:  m.Discount,
		collectionFieldTotal:     m.Amount,
		collectionFieldStatus:    string(m.Status),
		collectionFieldMethod:    m.Method,
		collectionFieldTimestamp: formatTime(m.CreatedAt),
	}
	optional := map[string]string{
		collectionFieldDNI:         m.DNI,
		collectionFieldTransfer:    m.Transfer,
		collectionFieldOperator:    m.Operator,
		collectionFieldDomain:      m.Domain,
		collectionFieldInstallment: m.Installment,
		collectionFieldPaymentID:   m.GatewayPaymentID,
	}
	for k, v := range optional {
		if v != "" {
			fields[k] = v
		}
	}
	if len(m.Concepts) > 0 {
		b, _ := json.Marshal(m.Concepts)
		fields[collectionFieldConcepts] = string(b)
	}
	if len(m.Notes) > 0 {
		b, _ := json.Marshal(m.Notes)
		fields[collectionFieldNotes] = string(b)
	}
	return fields
}

func fromCollectionRecord(kind entities.ManualKind, rec *airtable.Record) entities.ManualCollection {
	f := rec.Fields
	m := entities.ManualCollection{
		ID:               rec.ID,
		Kind:             kind,
		Date:             fieldString(f, collectionFieldDate),
		Name:             fieldString(f, collectionFieldName),
		DNI:              fieldString(f, collectionFieldDNI),
		Email:            fieldString(f, collectionFieldEmail),
		Subtotal:         fieldFloat(f, collectionFieldSubtotal),
		Discount:         fieldFloat(f, collectionFieldDiscount),
		Amount:           fieldFloat(f, collectionFieldTotal),
		Status:           entities.CollectionStatus(fieldString(f, collectionFieldStatus)),
		Method:           fieldString(f, collectionFieldMethod),
		Transfer:         fieldString(f, collectionFieldTransfer),
		Operator:         fieldString(f, collectionFieldOperator),
		Domain:           fieldString(f, collectionFieldDomain),
		Installment:      fieldString(f, collectionFieldInstallment),
		GatewayPaymentID: fieldString(f, collectionFieldPaymentID),
		CreatedAt:        fieldTime(f, collectionFieldTimestamp, rec.CreatedTime),
	}
	if raw := fieldString(f, collectionFieldConcepts); raw != "" {
		_ = json.Unmarshal([]byte(raw), &m.Concepts)
	}
	if raw := fieldString(f, collectionFieldNotes); raw != "" {
		_ = json.Unmarshal([]byte(raw), &m.Notes)
	}
	return m
}
