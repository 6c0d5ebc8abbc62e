package cliparse

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/comparely/models"
)

// DefaultDatabaseURL is the local sqlite file used when nothing is configured.
const DefaultDatabaseURL = "file:comparely.db"

type Config struct {
	DatabaseURL  string
	DatabaseType string
}

// Resolve builds the runtime configuration. Explicit values (CLI flags) win,
// then environment variables, then a .env file in the working directory, then
// defaults. A missing .env is not an error.
func Resolve(databaseURL, databaseType string) (Config, error) {
	// godotenv never overrides variables that are already set, which is what
	// keeps the env > .env precedence.
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:  databaseURL,
		DatabaseType: databaseType,
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = DefaultDatabaseURL
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = models.DatabaseSQLite
	}

	if cfg.DatabaseType != models.DatabaseSQLite && cfg.DatabaseType != models.DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q (expected %s or %s)",
			cfg.DatabaseType, models.DatabaseSQLite, models.DatabasePostgres)
	}

	return cfg, nil
}
