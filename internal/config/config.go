// Package config loads the service settings from the environment (optionally
// seeded from a .env file) and the ledger layout settings from YAML.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"ledger-service/internal/core/grouping"
	"ledger-service/internal/core/parser"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort        = "8084"
	defaultMaxFileMB   = 200
	defaultWorkers     = 4
	defaultCacheSize   = 256
	defaultEnvironment = "local"
)

type Config struct {
	Port string
	Env  string

	// MaxFileSize is the per-file upload limit in bytes.
	MaxFileSize     int64
	Workers         int
	SourceEncoding  string
	ExportEncoding  string
	StrictCodeWidth int
	TagProvenance   bool

	DocumentStoreDSN  string
	DocumentCacheSize int

	Artifact ArtifactConfig
	Ledger   LedgerConfig
}

type ArtifactConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// LedgerConfig is the YAML file named by LEDGER_CONFIG.
type LedgerConfig struct {
	// Grouping maps a parent record code to the child codes grouped under it.
	Grouping   map[string][]string   `yaml:"grouping"`
	Provenance parser.ProvenanceSpec `yaml:"provenance"`
}

// Policy builds the grouping policy described by the file.
func (l LedgerConfig) Policy() (*grouping.Policy, error) {
	return grouping.NewPolicy(l.Grouping)
}

// Load reads .env (when present), the environment and the optional ledger
// YAML file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             strings.TrimSpace(os.Getenv("PORT")),
		Env:              strings.TrimSpace(os.Getenv("APP_ENV")),
		SourceEncoding:   strings.TrimSpace(os.Getenv("SOURCE_ENCODING")),
		ExportEncoding:   strings.TrimSpace(os.Getenv("EXPORT_ENCODING")),
		DocumentStoreDSN: strings.TrimSpace(os.Getenv("DOCUMENT_STORE_PG_DSN")),
		Artifact:         loadArtifactConfig(),
	}

	maxMB, err := intEnv("MAX_FILE_SIZE_MB", defaultMaxFileMB)
	if err != nil {
		return nil, err
	}
	cfg.MaxFileSize = int64(maxMB) << 20
	if cfg.Workers, err = intEnv("PARSE_WORKERS", defaultWorkers); err != nil {
		return nil, err
	}
	if cfg.StrictCodeWidth, err = intEnv("STRICT_CODE_WIDTH", 0); err != nil {
		return nil, err
	}
	if cfg.DocumentCacheSize, err = intEnv("DOCUMENT_CACHE_SIZE", defaultCacheSize); err != nil {
		return nil, err
	}
	if cfg.TagProvenance, err = boolEnv("TAG_PROVENANCE", false); err != nil {
		return nil, err
	}

	if path := strings.TrimSpace(os.Getenv("LEDGER_CONFIG")); path != "" {
		ledger, err := LoadLedgerConfig(path)
		if err != nil {
			return nil, err
		}
		cfg.Ledger = ledger
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLedgerConfig reads a ledger YAML file. Missing sections keep their
// defaults.
func LoadLedgerConfig(path string) (LedgerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LedgerConfig{}, fmt.Errorf("falha ao ler configuração %s: %w", path, err)
	}
	var ledger LedgerConfig
	if err := yaml.Unmarshal(data, &ledger); err != nil {
		return LedgerConfig{}, fmt.Errorf("falha ao interpretar configuração %s: %w", path, err)
	}
	applyLedgerDefaults(&ledger)
	return ledger, nil
}

func loadArtifactConfig() ArtifactConfig {
	endpoint := strings.TrimSpace(os.Getenv("ARTIFACT_S3_ENDPOINT"))
	useSSL := true
	if raw := strings.TrimSpace(os.Getenv("ARTIFACT_S3_USE_SSL")); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			useSSL = v
		}
	}
	return ArtifactConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(os.Getenv("ARTIFACT_S3_REGION"), "us-east-1"),
		AccessKey: firstNonEmpty(os.Getenv("ARTIFACT_S3_ACCESS_KEY"), os.Getenv("MINIO_ROOT_USER")),
		SecretKey: firstNonEmpty(os.Getenv("ARTIFACT_S3_SECRET_KEY"), os.Getenv("MINIO_ROOT_PASSWORD")),
		Bucket:    firstNonEmpty(os.Getenv("ARTIFACT_S3_BUCKET"), "sped-uploads"),
		UseSSL:    useSSL,
	}
}

func applyDefaults(cfg *Config) {
	cfg.Port = strings.TrimPrefix(cfg.Port, ":")
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnvironment
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = defaultMaxFileMB << 20
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	applyLedgerDefaults(&cfg.Ledger)
}

func applyLedgerDefaults(l *LedgerConfig) {
	if len(l.Grouping) == 0 {
		l.Grouping = grouping.DefaultRelations
	}
	d := parser.DefaultProvenanceSpec
	if l.Provenance.Master == "" {
		l.Provenance.Master = d.Master
	}
	if l.Provenance.PeriodStart == "" {
		l.Provenance.PeriodStart = d.PeriodStart
	}
	if l.Provenance.PeriodEnd == "" {
		l.Provenance.PeriodEnd = d.PeriodEnd
	}
	if l.Provenance.TaxpayerID == "" {
		l.Provenance.TaxpayerID = d.TaxpayerID
	}
}

func validate(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return fmt.Errorf("PORT inválida: %q", cfg.Port)
	}
	if cfg.StrictCodeWidth < 0 {
		return fmt.Errorf("STRICT_CODE_WIDTH não pode ser negativo")
	}
	if cfg.DocumentCacheSize < 0 {
		return fmt.Errorf("DOCUMENT_CACHE_SIZE não pode ser negativo")
	}
	if _, err := cfg.Ledger.Policy(); err != nil {
		return fmt.Errorf("política de agrupamento inválida: %w", err)
	}
	return nil
}

func intEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("valor inválido para %s: %q", key, raw)
	}
	return v, nil
}

func boolEnv(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("valor inválido para %s: %q", key, raw)
	}
	return v, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
