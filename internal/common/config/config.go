// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
	Invoice  InvoiceConfig  `mapstructure:"invoice"`
	Handoff  HandoffConfig  `mapstructure:"handoff"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	DebugPort       int `mapstructure:"debug_port"`
	ReadTimeout     int `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // milliseconds
}

// UpstreamConfig points at the ATS backend that owns persistence and the
// authoritative business rules.
type UpstreamConfig struct {
	BaseURL string             `mapstructure:"base_url"`
	Timeout int                `mapstructure:"timeout"` // milliseconds
	Auth    UpstreamAuthConfig `mapstructure:"auth"`
}

type UpstreamAuthConfig struct {
	TokenURL     string `mapstructure:"token_url"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CalendarConfig holds settings for the calendar aggregator.
type CalendarConfig struct {
	CacheTTL       int    `mapstructure:"cache_ttl"` // seconds
	RegistryPath   string `mapstructure:"registry_path"`
	RefreshChannel string `mapstructure:"refresh_channel"`
}

// ScoringConfig holds settings for the scoring engine.
type ScoringConfig struct {
	RegistryPath string `mapstructure:"registry_path"`
}

// InvoiceConfig holds GST jurisdiction settings. HomeState is the fixed
// agency registration state used for the intrastate/interstate split.
type InvoiceConfig struct {
	HomeState     string `mapstructure:"home_state"`
	CGSTBasisPts  int    `mapstructure:"cgst_basis_points"`
	SGSTBasisPts  int    `mapstructure:"sgst_basis_points"`
	IGSTBasisPts  int    `mapstructure:"igst_basis_points"`
}

// HandoffConfig holds settings for the drill-down payload store.
type HandoffConfig struct {
	TTL int `mapstructure:"ttl"` // seconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Addr returns the listen address for the API server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// DebugAddr returns the listen address for the metrics/pprof server.
func (s ServerConfig) DebugAddr() string {
	return fmt.Sprintf(":%d", s.DebugPort)
}
