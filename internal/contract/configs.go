package contract

import (
	"fmt"
	"strings"

	"github.com/farmtech/memscope/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxPrecision     = 2
	DefaultReportDir = "."
)

// DefaultCompareCandidates are the two conventional filenames tried when
// compare mode is invoked without explicit paths.
var DefaultCompareCandidates = []string{
	"firmware_original.ino",
	"firmware_optimized.ino",
}

// Config holds the final, validated runtime configuration.
type Config struct {
	// Analysis targets. SourcePath is set in score mode; OriginalPath and
	// OptimizedPath in compare mode.
	SourcePath    string
	OriginalPath  string
	OptimizedPath string

	Output     schema.OutputMode
	OutputFile string
	ReportDir  string // Directory for the structured report artifact
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	CompareCandidates []string

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Output            string   `mapstructure:"output"`
	OutputFile        string   `mapstructure:"output-file"`
	ReportDir         string   `mapstructure:"report-dir"`
	Precision         int      `mapstructure:"precision"`
	Width             int      `mapstructure:"width"`
	Emoji             string   `mapstructure:"emoji"`
	Color             string   `mapstructure:"color"`
	HistoryBackend    string   `mapstructure:"history-backend"`
	HistoryDBConnect  string   `mapstructure:"history-db-connect"`
	CompareCandidates []string `mapstructure:"compare-candidates"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.CompareCandidates != nil {
		clone.CompareCandidates = make([]string, len(c.CompareCandidates))
		copy(clone.CompareCandidates, c.CompareCandidates)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- Output mode ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- Report directory ---
	cfg.ReportDir = input.ReportDir
	if cfg.ReportDir == "" {
		cfg.ReportDir = DefaultReportDir
	}

	// --- Precision ---
	cfg.Precision = input.Precision
	if cfg.Precision < DefaultPrecision {
		cfg.Precision = DefaultPrecision
	}
	if cfg.Precision > MaxPrecision {
		cfg.Precision = MaxPrecision
	}

	cfg.Width = input.Width

	// --- History backend ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	// --- Compare candidates ---
	cfg.CompareCandidates = input.CompareCandidates
	if len(cfg.CompareCandidates) == 0 {
		cfg.CompareCandidates = DefaultCompareCandidates
	}
	if len(cfg.CompareCandidates) != 2 {
		return fmt.Errorf("compare-candidates must list exactly two files, got %d", len(cfg.CompareCandidates))
	}

	// --- Emoji / color toggles ---
	if input.Emoji != "" {
		useEmojis, err := ParseBoolString(input.Emoji)
		if err != nil {
			return fmt.Errorf("invalid emoji setting: %w", err)
		}
		cfg.UseEmojis = useEmojis
	}
	if input.Color != "" {
		useColors, err := ParseBoolString(input.Color)
		if err != nil {
			return fmt.Errorf("invalid color setting: %w", err)
		}
		cfg.UseColors = useColors
	}

	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' or use the postgres:// URL form")
		}
	}
	return nil
}
