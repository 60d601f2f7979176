package platform

import (
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/registro/pkg/adapters/fs"
)

// Environment variables read by FromEnv.
const (
	EnvAddr       = "REGISTRO_ADDR"
	EnvData       = "REGISTRO_DATA"
	EnvLogFormat  = "REGISTRO_LOG_FORMAT"
	EnvExportYAML = "REGISTRO_EXPORT_YAML"
)

// DefaultAddr keeps the API on the loopback interface unless told otherwise.
const DefaultAddr = "127.0.0.1:5000"

// Config captures process level configuration. Command-line flags override
// these values.
type Config struct {
	Addr       string
	DataFile   string
	LogFormat  string // "text" or "json"
	ExportYAML bool
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:       os.Getenv(EnvAddr),
		DataFile:   os.Getenv(EnvData),
		LogFormat:  strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogFormat))),
		ExportYAML: true,
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.DataFile == "" {
		cfg.DataFile = fs.DefaultFileName
	}
	if cfg.LogFormat != "json" {
		cfg.LogFormat = "text"
	}
	if v, ok := os.LookupEnv(EnvExportYAML); ok {
		if enabled, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.ExportYAML = enabled
		}
	}
	return cfg
}
