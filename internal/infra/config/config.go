// internal/infra/config/config.go
package config

import "os"

// Store selects a persistence backend.
const (
	StoreMemory    = "memory"
	StorePostgres  = "postgres"
	StoreFirestore = "firestore"
)

// Config holds env-resolved application settings.
type Config struct {
	Port string

	// Store picks the catalog/order backend: memory (default) or postgres.
	Store string

	// CartStore picks the cart backend: memory (default) or firestore.
	CartStore string

	// Postgres (STORE=postgres)
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	// Firestore (CART_STORE=firestore)
	FirestoreProjectID       string
	FirestoreCredentialsFile string

	// SendGrid order confirmations (empty key disables mailing)
	SendGridAPIKey string
	SendGridFrom   string

	// Seed demo catalog/users into the memory store at boot.
	SeedDemoData bool
}

// Load reads environment variables into a Config.
func Load() *Config {
	return &Config{
		Port:      getenvDefault("PORT", "8080"),
		Store:     getenvDefault("STORE", StoreMemory),
		CartStore: getenvDefault("CART_STORE", StoreMemory),

		PGHost:     getenvDefault("PG_HOST", "localhost"),
		PGPort:     getenvDefault("PG_PORT", "5432"),
		PGUser:     getenvDefault("PG_USER", "postgres"),
		PGPassword: os.Getenv("PG_PASSWORD"),
		PGDatabase: getenvDefault("PG_DATABASE", "storefront"),

		FirestoreProjectID:       os.Getenv("FIRESTORE_PROJECT_ID"),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		SendGridFrom:   os.Getenv("SENDGRID_FROM"),

		SeedDemoData: getenvDefault("SEED_DEMO_DATA", "true") == "true",
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
