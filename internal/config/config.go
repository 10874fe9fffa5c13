package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Database settings fall back to the defaults the
// docker-compose setup ships with; the JWT secret has no default on purpose
// and the process refuses to start without one.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBUser       string // database username
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name
	JWTSecret    string // secret used to sign JWTs (never a literal in code)
	AccessTTLMin int    // access token time-to-live in minutes
	RefreshDays  int    // refresh token time-to-live in days
	BcryptCost   int    // bcrypt cost for password hashing
	GSIBaseURL   string // base URL of the Grünstromindex API
}

// Load reads configuration values from environment variables and returns a
// Config.  JWT_SECRET is enforced by must(); everything else carries a
// default so the server comes up against the stock compose services.
func Load() Config {
	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "3001"),
		DBUser:       getenv("DB_USER", "appuser"),
		DBPass:       os.Getenv("DB_PASS"), // empty allowed
		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       getenv("DB_PORT", "3306"),
		DBName:       getenv("DB_NAME", "energy"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: atoi(getenv("ACCESS_TOKEN_TTL_MIN", "60")),
		RefreshDays:  atoi(getenv("REFRESH_TOKEN_TTL_DAYS", "30")),
		BcryptCost:   atoi(getenv("BCRYPT_COST", "10")),
		GSIBaseURL:   getenv("GSI_BASE_URL", "https://api.corrently.io/v2.0"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
