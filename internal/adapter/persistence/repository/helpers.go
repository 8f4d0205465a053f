package repository

import (
	"fmt"
	"strings"
	"time"

	"traful_pagos/internal/domain/entities"

	"github.com/mehanizm/airtable"
)

// escapeFormulaValue makes user input safe inside a single-quoted formula string.
func escapeFormulaValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}

func formulaEquals(field, value string) string {
	return fmt.Sprintf("{%s}='%s'", field, escapeFormulaValue(value))
}

// formulaEqualsFold matches ignoring case and surrounding spaces.
func formulaEqualsFold(field, value string) string {
	return fmt.Sprintf("LOWER(TRIM({%s}))='%s'", field, escapeFormulaValue(strings.ToLower(strings.TrimSpace(value))))
}

func formulaContainsFold(field, value string) string {
	return fmt.Sprintf("SEARCH('%s', LOWER({%s}))", escapeFormulaValue(strings.ToLower(value)), field)
}

func formulaRecordID(id string) string {
	return fmt.Sprintf("RECORD_ID()='%s'", escapeFormulaValue(id))
}

func formulaAnd(parts ...string) string {
	if len(parts) == 1 {
		return parts[0]
	}
	return "AND(" + strings.Join(parts, ",") + ")"
}

// listRecords walks every page of the table, optionally filtered by formula.
func listRecords(table *airtable.Table, formula string) ([]*airtable.Record, error) {
	var out []*airtable.Record
	offset := ""
	for {
		q := table.GetRecords()
		if formula != "" {
			q = q.WithFilterFormula(formula)
		}
		if offset != "" {
			q = q.WithOffset(offset)
		}
		page, err := q.Do()
		if err != nil {
			return nil, err
		}
		out = append(out, page.Records...)
		if page.Offset == "" {
			return out, nil
		}
		offset = page.Offset
	}
}

func fieldString(fields map[string]any, key string) string {
	return entities.FeeRecord{Fields: fields}.String(key)
}

func fieldFloat(fields map[string]any, key string) float64 {
	f, _ := entities.ParseAmount(fields[key]).Float64()
	return f
}

// fieldTime parses a stored timestamp, falling back to the record creation time.
func fieldTime(fields map[string]any, key, createdTime string) time.Time {
	for _, v := range []string{fieldString(fields, key), createdTime} {
		if v == "" {
			continue
		}
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000Z", "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339)
}
