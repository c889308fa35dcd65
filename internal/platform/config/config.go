package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Remote document backend (GitHub contents API).
	GithubToken  string
	GithubOwner  string
	GithubRepo   string
	GithubBranch string

	// Optimistic concurrency retry tuning.
	StoreMaxConflictRetries int
	StoreRetryBackoff       time.Duration

	DefaultAdminPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "sahakari-backend")
	viper.SetDefault("GITHUB_TOKEN", "")
	viper.SetDefault("GITHUB_OWNER", "")
	viper.SetDefault("GITHUB_REPO", "")
	viper.SetDefault("GITHUB_BRANCH", "main")
	viper.SetDefault("STORE_MAX_CONFLICT_RETRIES", 1)
	viper.SetDefault("STORE_RETRY_BACKOFF", "150ms")
	viper.SetDefault("DEFAULT_ADMIN_PASSWORD", "admin")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GithubToken = viper.GetString("GITHUB_TOKEN")
	cfg.GithubOwner = viper.GetString("GITHUB_OWNER")
	cfg.GithubRepo = viper.GetString("GITHUB_REPO")
	cfg.GithubBranch = viper.GetString("GITHUB_BRANCH")
	if cfg.GithubToken == "" || cfg.GithubOwner == "" || cfg.GithubRepo == "" {
		log.Println("Warning: GITHUB_TOKEN, GITHUB_OWNER or GITHUB_REPO not set. Falling back to the in-memory backend; data will not survive a restart.")
	}

	cfg.StoreMaxConflictRetries = viper.GetInt("STORE_MAX_CONFLICT_RETRIES")
	if cfg.StoreMaxConflictRetries < 0 {
		cfg.StoreMaxConflictRetries = 0
	}

	backoffStr := viper.GetString("STORE_RETRY_BACKOFF")
	backoff, err := time.ParseDuration(backoffStr)
	if err != nil {
		backoff = 150 * time.Millisecond
		log.Printf("Warning: Invalid value for STORE_RETRY_BACKOFF ('%s'). Defaulting to %s.\n", backoffStr, backoff.String())
	}
	cfg.StoreRetryBackoff = backoff

	cfg.DefaultAdminPassword = viper.GetString("DEFAULT_ADMIN_PASSWORD")
	if cfg.DefaultAdminPassword == "admin" {
		log.Println("Warning: DEFAULT_ADMIN_PASSWORD not set. The seeded admin uses the default password.")
	}

	return cfg, nil
}

// UseRemoteBackend reports whether the GitHub backend is fully configured.
func (c *Config) UseRemoteBackend() bool {
	return c.GithubToken != "" && c.GithubOwner != "" && c.GithubRepo != ""
}
