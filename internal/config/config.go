package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port        string
	CorsOrigins []string
}

type AppConfig struct {
	Environment string
	LogLevel    string
}

type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       uint
	Name       string
	Username   string
	Password   string
	SecretID   string
	SSLDisable bool
	SQLitePath string
}

type AuthConfig struct {
	JWTSecret     string
	CookieSecure  bool
	AdminEmail    string
	AdminPassword string
}

type LeadConfig struct {
	WebhookURL      string
	WebhookMinScore int
}

// CalculadoraConfig traz os padrões opcionais da calculadora, lidos do YAML.
// Percentuais em pontos (15 = 15%).
type CalculadoraConfig struct {
	AssessoriaThreshold       *float64 `yaml:"assessoria_threshold"`
	AssessoriaFeeBelow        *float64 `yaml:"assessoria_fee_below"`
	AssessoriaFeeAbovePercent *float64 `yaml:"assessoria_fee_above_percent"`
	CorretagemPercent         *float64 `yaml:"corretagem_percent"`
	AliquotaIRGCPercent       *float64 `yaml:"aliquota_irgc_percent"`
	ItbiFinanciadoPercent     *float64 `yaml:"itbi_financiado_percent"`
}

type Config struct {
	Server      ServerConfig
	App         AppConfig
	Database    DatabaseConfig
	Auth        AuthConfig
	Lead        LeadConfig
	Calculadora CalculadoraConfig
}

var ErrJWTSecretAusente = errors.New("JWT_SECRET não definida")

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Load lê o .env (se existir), as variáveis de ambiente e o YAML da calculadora.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CorsOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       uint(getEnvInt("DB_PORT", 5432)),
			Name:       os.Getenv("DB_NAME"),
			Username:   os.Getenv("DB_USERNAME"),
			Password:   os.Getenv("DB_PASSWORD"),
			SecretID:   os.Getenv("DB_SECRET_ID"),
			SSLDisable: os.Getenv("DB_SSL_MODE_DISABLE") == "true",
			SQLitePath: getEnv("SQLITE_PATH", "arremate.db"),
		},
		Auth: AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
			AdminEmail:    os.Getenv("ADMIN_EMAIL"),
			AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		},
		Lead: LeadConfig{
			WebhookURL:      os.Getenv("LEAD_WEBHOOK_URL"),
			WebhookMinScore: getEnvInt("LEAD_WEBHOOK_MIN_SCORE", 70),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, ErrJWTSecretAusente
	}

	if path := os.Getenv("VIABILIDADE_CONFIG"); path != "" {
		calc, err := LoadCalculadora(path)
		if err != nil {
			return nil, err
		}
		cfg.Calculadora = *calc
	}
	return cfg, nil
}

// LoadCalculadora lê o arquivo YAML com os padrões da calculadora.
func LoadCalculadora(path string) (*CalculadoraConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lendo %s: %w", path, err)
	}
	var calc CalculadoraConfig
	if err := yaml.Unmarshal(raw, &calc); err != nil {
		return nil, fmt.Errorf("yaml inválido em %s: %w", path, err)
	}
	return &calc, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
