package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort              = 10000
	defaultFrontendURL       = "http://localhost:5176"
	defaultBackendURL        = "http://localhost:10000"
	defaultAdminLoginRate    = "10-M"
	defaultPaywayBaseURL     = "https://live.decidir.com/api/v2"
	defaultPaywayTimeout     = 15 * time.Second
	defaultEmailFrom         = "Municipalidad <pagos@resend.dev>"
	defaultProcessedPayments = "processed_payments"
	defaultAWSRegion         = "us-east-1"
	defaultLockTTL           = 30 * time.Second
)

// AirtableTables holds the table ids (or names) of every table the service touches.
type AirtableTables struct {
	Contributivos string
	Patente       string
	Deudas        string
	Historial     string
	Logs          string
	Recaudacion   string
	PatenteManual string
	PlanPago      string
	AccessLogs    string
}

// DynamoDBSettings locate the processed-payments ledger. An empty Endpoint
// means the regional AWS endpoint.
type DynamoDBSettings struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// Config holds runtime configuration read from environment variables.
type Config struct {
	Port        int
	FrontendURL string
	BackendURL  string
	LogLevel    string

	AirtablePAT    string
	AirtableBaseID string
	AirtableURL    string
	Tables         AirtableTables

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	PaywayBaseURL    string
	PaywayPrivateKey string
	PaywaySiteID     string
	PaywayTimeout    time.Duration

	ResendAPIKey           string
	EmailFrom              string
	AdminNotificationEmail string

	AdminPassword  string
	StatsPassword  string
	AdminLoginRate string

	CORSAllowedOrigins []string

	RedisAddress  string
	RedisPassword string
	LockTTL       time.Duration

	ProcessedPaymentsTable string
	DynamoDB               DynamoDBSettings

	ReceiptTemplatePath   string
	DebugEndpointsEnabled bool
}

// Load reads configuration from environment variables and applies defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:        defaultPort,
		FrontendURL: strings.TrimRight(getenvDefault("FRONTEND_URL", defaultFrontendURL), "/"),
		BackendURL:  strings.TrimRight(firstNonEmpty(os.Getenv("BACKEND_URL"), os.Getenv("RENDER_EXTERNAL_URL"), defaultBackendURL), "/"),
		LogLevel:    getenvDefault("LOG_LEVEL", "info"),

		AirtablePAT:    os.Getenv("AIRTABLE_PAT"),
		AirtableBaseID: os.Getenv("AIRTABLE_BASE_ID"),
		AirtableURL:    os.Getenv("AIRTABLE_API_URL"),
		Tables: AirtableTables{
			Contributivos: getenvDefault("AIRTABLE_CONTRIBUTIVOS_TABLE", "Contributivos"),
			Patente:       getenvDefault("AIRTABLE_PATENTE_TABLE", "Patente"),
			Deudas:        getenvDefault("AIRTABLE_DEUDAS_TABLE", "Deudas"),
			Historial:     getenvDefault("AIRTABLE_HISTORIAL_TABLE", "Historial de Pagos"),
			Logs:          getenvDefault("AIRTABLE_LOGS_TABLE", "Logs"),
			Recaudacion:   getenvDefault("AIRTABLE_RECAUDACION_TABLE", "Recaudacion"),
			PatenteManual: getenvDefault("AIRTABLE_PATENTE_MANUAL_TABLE", "Patente Efectivo"),
			PlanPago:      getenvDefault("AIRTABLE_PLAN_PAGO_TABLE", "Planes de Pago"),
			AccessLogs:    getenvDefault("AIRTABLE_ACCESS_LOGS_TABLE", "Accesos"),
		},

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),

		PaywayBaseURL:    strings.TrimRight(getenvDefault("PAYWAY_BASE_URL", defaultPaywayBaseURL), "/"),
		PaywayPrivateKey: os.Getenv("PAYWAY_PRIVATE_KEY"),
		PaywaySiteID:     os.Getenv("PAYWAY_SITE_ID"),
		PaywayTimeout:    defaultPaywayTimeout,

		ResendAPIKey:           os.Getenv("RESEND_API_KEY"),
		EmailFrom:              getenvDefault("EMAIL_FROM", defaultEmailFrom),
		AdminNotificationEmail: os.Getenv("ADMIN_NOTIFICATION_EMAIL"),

		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		StatsPassword:  os.Getenv("STATS_PASSWORD"),
		AdminLoginRate: getenvDefault("ADMIN_LOGIN_RATE", defaultAdminLoginRate),

		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		LockTTL:       defaultLockTTL,

		ProcessedPaymentsTable: getenvDefault("PROCESSED_PAYMENTS_TABLE", defaultProcessedPayments),
		DynamoDB: DynamoDBSettings{
			Region:          os.Getenv("AWS_REGION"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},

		ReceiptTemplatePath:   os.Getenv("RECEIPT_TEMPLATE_PATH"),
		DebugEndpointsEnabled: isTruthy(os.Getenv("DEBUG_ENDPOINTS_ENABLED")),
	}

	if v, err := readIntEnv("PORT"); err != nil {
		return Config{}, fmt.Errorf("parse PORT: %w", err)
	} else if v != nil {
		cfg.Port = *v
	}

	if v, err := readIntEnv("PAYWAY_TIMEOUT_SECONDS"); err != nil {
		return Config{}, fmt.Errorf("parse PAYWAY_TIMEOUT_SECONDS: %w", err)
	} else if v != nil {
		cfg.PaywayTimeout = time.Duration(*v) * time.Second
	}

	if v, err := readIntEnv("LOCK_TTL_SECONDS"); err != nil {
		return Config{}, fmt.Errorf("parse LOCK_TTL_SECONDS: %w", err)
	} else if v != nil {
		cfg.LockTTL = time.Duration(*v) * time.Second
	}

	return cfg, nil
}

// AirtableConfigured reports whether the store credentials are present.
func (c Config) AirtableConfigured() bool {
	return c.AirtablePAT != "" && c.AirtableBaseID != ""
}

// LedgerConfigured reports whether DynamoDB was explicitly configured.
func (c Config) LedgerConfigured() bool {
	return c.DynamoDB.Region != "" || c.DynamoDB.Endpoint != ""
}

// LedgerRegion is the configured AWS region or us-east-1.
func (c Config) LedgerRegion() string {
	if c.DynamoDB.Region != "" {
		return c.DynamoDB.Region
	}
	return defaultAWSRegion
}

func (c Config) PaywayConfigured() bool {
	return c.PaywayPrivateKey != "" && c.PaywaySiteID != ""
}

func readIntEnv(key string) (*int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
