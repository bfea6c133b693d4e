package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DatabaseURL           string
	NetworkID             string
	VaultContract         string
	TokenContract         string
	TokenSymbol           string
	TokenDecimals         uint8
	DisplayFractionDigits uint8
	// Transfer fee rate as base-10 integer strings, validated by fee.NewRate.
	TransferFeeNumerator   string
	TransferFeeDenominator string
	GoogleSpreadsheetID    string
	GoogleCredentialsJSON  string
	ExportInterval         time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	network := envOrDefault("NETWORK_ID", "testnet")
	return Config{
		DatabaseURL:            envOrDefaultWarn("DATABASE_URL", ""),
		NetworkID:              network,
		VaultContract:          envOrDefault("VAULT_CONTRACT", "vault."+network),
		TokenContract:          envOrDefault("TOKEN_CONTRACT", "usdt."+network),
		TokenSymbol:            envOrDefault("TOKEN_SYMBOL", "USDT"),
		TokenDecimals:          envOrDefaultUint8("TOKEN_DECIMALS", 24),
		DisplayFractionDigits:  envOrDefaultUint8("DISPLAY_FRACTION_DIGITS", 6),
		TransferFeeNumerator:   envOrDefault("TRANSFER_FEE_NUMERATOR", "1"),
		TransferFeeDenominator: envOrDefault("TRANSFER_FEE_DENOMINATOR", "100"),
		GoogleSpreadsheetID:    envOrDefault("GOOGLE_SPREADSHEET_ID", ""),
		GoogleCredentialsJSON:  envOrDefault("GOOGLE_CREDENTIALS_JSON", ""),
		ExportInterval:         envOrDefaultDuration("EXPORT_INTERVAL", 24*time.Hour),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultWarn(key, defaultVal string) string {
	v := envOrDefault(key, defaultVal)
	if v == "" {
		slog.Warn("required env var not set", "key", key)
	}
	return v
}

func envOrDefaultUint8(key string, defaultVal uint8) uint8 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			slog.Warn("invalid uint8 env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return uint8(n)
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
