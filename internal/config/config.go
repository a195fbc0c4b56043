package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses the backend call timeout
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The local MySQL database stores only
// users and refresh tokens; buses, routes, bookings and payments live
// behind the external REST backend addressed by BackendBaseURL.
type Config struct {
	Env               string        // application environment (e.g. "dev", "prod")
	Port              string        // HTTP port to listen on
	DBUser            string        // database username
	DBPass            string        // database password (optional)
	DBHost            string        // database host address
	DBPort            string        // database port number
	DBName            string        // database name
	JWTSecret         string        // secret used to sign JWTs
	AccessTTLMin      int           // access token time-to-live in minutes
	RefreshTTLDays    int           // refresh token time-to-live in days
	BcryptCost        int           // bcrypt cost for password hashing
	BackendBaseURL    string        // base URL of the inventory/booking/payment API, e.g. "http://localhost:8080/api"
	BackendTimeout    time.Duration // per-call timeout for backend requests
	PaymentMethod     string        // payment method tag stored on booking records (e.g. "STRIPE")
	PaymentGatewayTag string        // tag the payment processor expects (e.g. "stripe")
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Backend timeout
// and payment method fall back to sensible defaults.
func Load() Config {
	return Config{
		Env:               must("APP_ENV"),
		Port:              must("APP_PORT"),
		DBUser:            must("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"), // empty allowed
		DBHost:            must("DB_HOST"),
		DBPort:            must("DB_PORT"),
		DBName:            must("DB_NAME"),
		JWTSecret:         must("JWT_SECRET"),
		AccessTTLMin:      mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays:    mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:        mustInt("BCRYPT_COST"),
		BackendBaseURL:    must("BACKEND_BASE_URL"),
		BackendTimeout:    parseDur(getenv("BACKEND_TIMEOUT", "10s")),
		PaymentMethod:     getenv("PAYMENT_METHOD", "STRIPE"),
		PaymentGatewayTag: getenv("PAYMENT_GATEWAY_TAG", "stripe"),
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

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
