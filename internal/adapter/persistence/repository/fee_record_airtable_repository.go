package repository

import (
	"context"
	"fmt"
	"strings"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/mehanizm/airtable"
)

// FeeRecordAirtableRepository reads and updates the fee tables.
//
// Table per item type:
//   - lote: contributivos
//   - vehiculo: patente
//   - deuda_general: deudas
type FeeRecordAirtableRepository struct {
	client *airtable.Client
	baseID string
	tables map[entities.ItemType]string
}

var _ interfaces.IFeeRecordRepository = (*FeeRecordAirtableRepository)(nil)

func NewFeeRecordAirtableRepository(client *airtable.Client, baseID string, tables map[entities.ItemType]string) *FeeRecordAirtableRepository {
	return &FeeRecordAirtableRepository{client: client, baseID: baseID, tables: tables}
}

func (r *FeeRecordAirtableRepository) SearchByDNI(ctx context.Context, itemType entities.ItemType, dni string) ([]entities.FeeRecord, error) {
	return r.search(ctx, itemType, formulaEquals("dni", strings.TrimSpace(dni)))
}

func (r *FeeRecordAirtableRepository) SearchByName(ctx context.Context, itemType entities.ItemType, name string) ([]entities.FeeRecord, error) {
	layout, ok := itemType.Layout()
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrUnsupportedItemType, itemType)
	}
	return r.search(ctx, itemType, formulaContainsFold(layout.SearchField, strings.TrimSpace(name)))
}

func (r *FeeRecordAirtableRepository) GetByID(ctx context.Context, itemType entities.ItemType, id string) (entities.FeeRecord, error) {
	table, err := r.table(itemType)
	if err != nil {
		return entities.FeeRecord{}, err
	}
	if err := ctx.Err(); err != nil {
		return entities.FeeRecord{}, err
	}
	rec, err := table.GetRecord(id)
	if err != nil {
		return entities.FeeRecord{}, err
	}
	return toFeeRecord(itemType, rec), nil
}

// Update writes only the given fields; the rest of the row is untouched.
func (r *FeeRecordAirtableRepository) Update(ctx context.Context, itemType entities.ItemType, id string, fields map[string]any) (entities.FeeRecord, error) {
	table, err := r.table(itemType)
	if err != nil {
		return entities.FeeRecord{}, err
	}
	if err := ctx.Err(); err != nil {
		return entities.FeeRecord{}, err
	}
	out, err := table.UpdateRecordsPartial(&airtable.Records{
		Records: []*airtable.Record{{ID: id, Fields: fields}},
	})
	if err != nil {
		return entities.FeeRecord{}, err
	}
	if out == nil || len(out.Records) == 0 {
		return entities.FeeRecord{ID: id, Type: itemType, Fields: fields}, nil
	}
	return toFeeRecord(itemType, out.Records[0]), nil
}

func (r *FeeRecordAirtableRepository) search(ctx context.Context, itemType entities.ItemType, formula string) ([]entities.FeeRecord, error) {
	table, err := r.table(itemType)
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
	out := make([]entities.FeeRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toFeeRecord(itemType, rec))
	}
	return out, nil
}

func (r *FeeRecordAirtableRepository) table(itemType entities.ItemType) (*airtable.Table, error) {
	name, ok := r.tables[itemType]
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: %s", entities.ErrUnsupportedItemType, itemType)
	}
	return r.client.GetTable(r.baseID, name), nil
}

func toFeeRecord(itemType entities.ItemType, rec *airtable.Record) entities.FeeRecord {
	fields := rec.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	return entities.FeeRecord{ID: rec.ID, Type: itemType, CreatedTime: rec.CreatedTime, Fields: fields}
}
