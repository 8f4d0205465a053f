package repository

import (
	"context"
	"sort"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/mehanizm/airtable"
)

// LogAirtableRepository keeps the operational audit log.
type LogAirtableRepository struct {
	table *airtable.Table
}

var _ interfaces.ILogRepository = (*LogAirtableRepository)(nil)

func NewLogAirtableRepository(client *airtable.Client, baseID, tableName string) *LogAirtableRepository {
	return &LogAirtableRepository{table: client.GetTable(baseID, tableName)}
}

func (r *LogAirtableRepository) Create(ctx context.Context, e entities.LogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fields := map[string]any{
		"Timestamp": formatTime(e.Timestamp),
		"Level":     string(e.Level),
		"Source":    e.Source,
		"Message":   e.Message,
	}
	if e.RelatedID != "" {
		fields["Related_ID"] = e.RelatedID
	}
	if e.Details != "" {
		fields["Details"] = e.Details
	}
	_, err := r.table.AddRecords(&airtable.Records{Records: []*airtable.Record{{Fields: fields}}})
	return err
}

// ListAll returns every log entry, newest first.
func (r *LogAirtableRepository) ListAll(ctx context.Context) ([]entities.LogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	recs, err := listRecords(r.table, "")
	if err != nil {
		return nil, err
	}
	out := make([]entities.LogEntry, 0, len(recs))
	for _, rec := range recs {
		f := rec.Fields
		out = append(out, entities.LogEntry{
			ID:        rec.ID,
			Timestamp: fieldTime(f, "Timestamp", rec.CreatedTime),
			Level:     entities.LogLevel(fieldString(f, "Level")),
			Source:    fieldString(f, "Source"),
			Message:   fieldString(f, "Message"),
			RelatedID: fieldString(f, "Related_ID"),
			Details:   fieldString(f, "Details"),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

// AccessLogAirtableRepository records staff sign-ins.
type AccessLogAirtableRepository struct {
	table *airtable.Table
}

var _ interfaces.IAccessLogRepository = (*AccessLogAirtableRepository)(nil)

func NewAccessLogAirtableRepository(client *airtable.Client, baseID, tableName string) *AccessLogAirtableRepository {
	return &AccessLogAirtableRepository{table: client.GetTable(baseID, tableName)}
}

func (r *AccessLogAirtableRepository) Create(ctx context.Context, a entities.AccessLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := r.table.AddRecords(&airtable.Records{Records: []*airtable.Record{{Fields: map[string]any{
		"Usuario":   a.Username,
		"IP":        a.IP,
		"Timestamp": formatTime(a.Timestamp),
	}}}})
	return err
}

func (r *AccessLogAirtableRepository) ListAll(ctx context.Context) ([]entities.AccessLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	recs, err := listRecords(r.table, "")
	if err != nil {
		return nil, err
	}
	out := make([]entities.AccessLog, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entities.AccessLog{
			ID:        rec.ID,
			Username:  fieldString(rec.Fields, "Usuario"),
			IP:        fieldString(rec.Fields, "IP"),
			Timestamp: fieldTime(rec.Fields, "Timestamp", rec.CreatedTime),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}
