package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotConfigured = errors.New("admin password not configured")
	ErrInvalidUsername    = errors.New("invalid username")
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100

	exportSheet = "Pagos"
	dailyWindow = 30
)

var monthShortNames = []string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// Page is a window over a fully loaded list.
type Page[T any] struct {
	Records      []T
	Page         int
	PerPage      int
	TotalRecords int
	TotalPages   int
}

// Paginate slices items with start=(page-1)*perPage. Out of range pages are empty.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	total := len(items)
	out := Page[T]{
		Records:      []T{},
		Page:         page,
		PerPage:      perPage,
		TotalRecords: total,
		TotalPages:   (total + perPage - 1) / perPage,
	}
	start := (page - 1) * perPage
	if start >= total {
		return out
	}
	end := start + perPage
	if end > total {
		end = total
	}
	out.Records = items[start:end]
	return out
}

// StatsCategories groups amounts or counts by payment category.
type StatsCategories struct {
	Deudas        float64 `json:"deudas"`
	Contributivos float64 `json:"contributivos"`
	Recaudacion   float64 `json:"recaudacion"`
	Patente       float64 `json:"patente"`
}

type StatsCounts struct {
	Total         int `json:"total"`
	Fallidos      int `json:"fallidos"`
	Deudas        int `json:"deudas"`
	Contributivos int `json:"contributivos"`
	Recaudacion   int `json:"recaudacion"`
	Patente       int `json:"patente"`
}

type StatsSummary struct {
	TotalYear  float64         `json:"total_anual"`
	Counts     StatsCounts     `json:"cantidad_operaciones"`
	ByCategory StatsCategories `json:"totales_categoria"`
}

type DailyPoint struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type MonthlyPoint struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// Stats is the collection dashboard of the current year.
type Stats struct {
	Summary StatsSummary   `json:"summary"`
	Daily   []DailyPoint   `json:"daily_chart"`
	Monthly []MonthlyPoint `json:"monthly_chart"`
}

// AdminCredentials are the configured shared passwords, plain or bcrypt hashes.
type AdminCredentials struct {
	AdminPassword string
	StatsPassword string
}

// IAdminUseCase backs the staff and reporting pages.
type IAdminUseCase interface {
	Login(ctx context.Context, password string) error
	StatsLogin(ctx context.Context, password string) error
	ListPayments(ctx context.Context, page int, perPage int) (Page[entities.PaymentHistory], error)
	ListLogs(ctx context.Context, page int, perPage int) (Page[entities.LogEntry], error)
	ListRecaudacion(ctx context.Context, page int, perPage int) (Page[entities.ManualCollection], error)
	ListAccessLogs(ctx context.Context, page int, perPage int) (Page[entities.AccessLog], error)
	Stats(ctx context.Context) (Stats, error)
	ExportPayments(ctx context.Context) ([]byte, error)
	RegisterStaffAccess(ctx context.Context, username string, ip string) error
}

type AdminUseCase struct {
	history     interfaces.IPaymentHistoryRepository
	logs        interfaces.ILogRepository
	collections interfaces.IManualCollectionRepository
	access      interfaces.IAccessLogRepository
	audit       *AuditLogger
	creds       AdminCredentials
	logg        *logrus.Logger
	now         func() time.Time
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(
	history interfaces.IPaymentHistoryRepository,
	logs interfaces.ILogRepository,
	collections interfaces.IManualCollectionRepository,
	access interfaces.IAccessLogRepository,
	audit *AuditLogger,
	creds AdminCredentials,
	logg *logrus.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		history:     history,
		logs:        logs,
		collections: collections,
		access:      access,
		audit:       audit,
		creds:       creds,
		logg:        logg,
		now:         time.Now,
	}
}

func (u *AdminUseCase) Login(ctx context.Context, password string) error {
	if err := checkPassword(u.creds.AdminPassword, password); err != nil {
		u.logg.WithError(err).Warn("[admin][usecase] login rejected")
		return err
	}
	return nil
}

func (u *AdminUseCase) StatsLogin(ctx context.Context, password string) error {
	configured := u.creds.StatsPassword
	if configured == "" {
		configured = u.creds.AdminPassword
	}
	if err := checkPassword(configured, password); err != nil {
		u.logg.WithError(err).Warn("[admin][usecase] stats login rejected")
		return err
	}
	return nil
}

func (u *AdminUseCase) ListPayments(ctx context.Context, page int, perPage int) (Page[entities.PaymentHistory], error) {
	if u.history == nil {
		return Page[entities.PaymentHistory]{}, ErrStoreNotConfigured
	}
	all, err := u.history.ListAll(ctx)
	if err != nil {
		return Page[entities.PaymentHistory]{}, err
	}
	return Paginate(all, page, perPage), nil
}

func (u *AdminUseCase) ListLogs(ctx context.Context, page int, perPage int) (Page[entities.LogEntry], error) {
	if u.logs == nil {
		return Page[entities.LogEntry]{}, ErrStoreNotConfigured
	}
	all, err := u.logs.ListAll(ctx)
	if err != nil {
		return Page[entities.LogEntry]{}, err
	}
	return Paginate(all, page, perPage), nil
}

func (u *AdminUseCase) ListRecaudacion(ctx context.Context, page int, perPage int) (Page[entities.ManualCollection], error) {
	if u.collections == nil {
		return Page[entities.ManualCollection]{}, ErrStoreNotConfigured
	}
	all, err := u.collections.ListAll(ctx, entities.ManualKindRecaudacion)
	if err != nil {
		return Page[entities.ManualCollection]{}, err
	}
	return Paginate(all, page, perPage), nil
}

func (u *AdminUseCase) ListAccessLogs(ctx context.Context, page int, perPage int) (Page[entities.AccessLog], error) {
	if u.access == nil {
		return Page[entities.AccessLog]{}, ErrStoreNotConfigured
	}
	all, err := u.access.ListAll(ctx)
	if err != nil {
		return Page[entities.AccessLog]{}, err
	}
	return Paginate(all, page, perPage), nil
}

// Stats aggregates the successful payments of the current year.
func (u *AdminUseCase) Stats(ctx context.Context) (Stats, error) {
	if u.history == nil {
		return Stats{}, ErrStoreNotConfigured
	}
	all, err := u.history.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}

	now := u.now().UTC()
	year := now.Year()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	firstDay := today.AddDate(0, 0, -(dailyWindow - 1))

	var (
		yearTotal  = decimal.Zero
		byCategory = map[string]decimal.Decimal{}
		daily      = map[string]decimal.Decimal{}
		monthly    = make([]decimal.Decimal, 12)
		counts     StatsCounts
	)
	for _, h := range all {
		if h.CreatedAt.UTC().Year() != year {
			continue
		}
		if h.Status != entities.HistoryStatusExitoso {
			counts.Fallidos++
			continue
		}
		amount := decimal.NewFromFloat(h.Amount)
		created := h.CreatedAt.UTC()

		counts.Total++
		yearTotal = yearTotal.Add(amount)
		monthly[created.Month()-1] = monthly[created.Month()-1].Add(amount)
		if !created.Before(firstDay) {
			key := created.Format("2006-01-02")
			daily[key] = daily[key].Add(amount)
		}

		category := paymentCategory(h.PaymentType)
		byCategory[category] = byCategory[category].Add(amount)
		switch category {
		case categoryDeudas:
			counts.Deudas++
		case categoryContributivos:
			counts.Contributivos++
		case categoryPatente:
			counts.Patente++
		default:
			counts.Recaudacion++
		}
	}

	out := Stats{
		Summary: StatsSummary{
			TotalYear: toFloat(yearTotal),
			Counts:    counts,
			ByCategory: StatsCategories{
				Deudas:        toFloat(byCategory[categoryDeudas]),
				Contributivos: toFloat(byCategory[categoryContributivos]),
				Recaudacion:   toFloat(byCategory[categoryRecaudacion]),
				Patente:       toFloat(byCategory[categoryPatente]),
			},
		},
		Daily:   make([]DailyPoint, 0, dailyWindow),
		Monthly: make([]MonthlyPoint, 0, 12),
	}
	for d := firstDay; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		out.Daily = append(out.Daily, DailyPoint{Date: key, Total: toFloat(daily[key])})
	}
	for i, total := range monthly {
		out.Monthly = append(out.Monthly, MonthlyPoint{Month: monthShortNames[i], Total: toFloat(total)})
	}
	return out, nil
}

// ExportPayments renders the whole payment history as an XLSX workbook.
func (u *AdminUseCase) ExportPayments(ctx context.Context) ([]byte, error) {
	if u.history == nil {
		return nil, ErrStoreNotConfigured
	}
	all, err := u.history.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	header := []any{"Fecha", "Estado", "Tipo", "Detalle", "Conceptos", "MP_Payment_ID", "Email", "Monto"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, h := range all {
		descriptions := make([]string, 0, len(h.Items))
		for _, it := range h.Items {
			descriptions = append(descriptions, it.Description)
		}
		row := []any{
			h.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			string(h.Status),
			h.PaymentType,
			h.Detail,
			strings.Join(descriptions, ", "),
			h.GatewayPaymentID,
			h.Email,
			h.Amount,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	u.logg.WithField("rows", len(all)).Info("[admin][usecase] payments exported")
	return buf.Bytes(), nil
}

func (u *AdminUseCase) RegisterStaffAccess(ctx context.Context, username string, ip string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrInvalidUsername
	}
	if u.access == nil {
		return ErrStoreNotConfigured
	}
	err := u.access.Create(ctx, entities.AccessLog{Username: username, IP: ip, Timestamp: u.now().UTC()})
	if err != nil {
		u.audit.Error(ctx, SourceAdmin, "Error registrando acceso de personal", username, map[string]any{"error": err.Error()})
		return err
	}
	u.audit.Info(ctx, SourceAdmin, "Acceso de personal", username, map[string]any{"ip": ip})
	return nil
}

const (
	categoryDeudas        = "deudas"
	categoryContributivos = "contributivos"
	categoryRecaudacion   = "recaudacion"
	categoryPatente       = "patente"
)

func paymentCategory(paymentType string) string {
	switch strings.ToLower(strings.TrimSpace(paymentType)) {
	case string(entities.ItemTypeDeudaGeneral):
		return categoryDeudas
	case string(entities.ItemTypeLote):
		return categoryContributivos
	case string(entities.ItemTypeVehiculo), string(entities.ManualKindPatenteManual):
		return categoryPatente
	}
	return categoryRecaudacion
}

// checkPassword accepts a bcrypt hash or a plain value as the configured password.
func checkPassword(configured, given string) error {
	if configured == "" {
		return ErrAdminNotConfigured
	}
	if given == "" {
		return ErrInvalidCredentials
	}
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") || strings.HasPrefix(configured, "$2y$") {
		if err := bcrypt.CompareHashAndPassword([]byte(configured), []byte(given)); err != nil {
			return ErrInvalidCredentials
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(configured), []byte(given)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
