package config

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultDotEnvFile = ".env"

	DefaultHTTPAddress      = "0.0.0.0:5000"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultTokenDuration    = 24 * time.Hour
	DefaultTokenIssuer      = "go-address-book"
	DefaultTokenAlgorithm   = "HS256"
	DefaultUsername         = "admin"
	DefaultPassword         = "admin"
	DefaultDSN              = "addressbook.db"
	DefaultAdapterAddress   = "http://localhost:5000"
	DefaultClientSessionDir = ".address-book"

	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenAlgorithm:   DefaultTokenAlgorithm,
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
			DefaultUsername:  DefaultUsername,
			DefaultPassword:  DefaultPassword,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			CORSAllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// resolveDriver returns the explicit driver, or infers it from the DSN
// scheme: postgres:// and postgresql:// select pgx, anything else sqlite3.
func resolveDriver(db DB) string {
	if db.Driver != "" {
		return db.Driver
	}

	dsn := strings.ToLower(db.DSN)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}

	return DriverSQLite
}
