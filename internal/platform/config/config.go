package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/shopbooks/chartops/internal/apperrors"
)

// maxStoreBatchOps is the store's hard per-transaction operation ceiling.
// The configured chunk size must stay at or below it.
const maxStoreBatchOps = 500

// Config holds application configuration.
type Config struct {
	ProjectID       string
	CredentialsFile string
	IdentityAPIKey  string
	AdminEmail      string
	AdminPassword   string

	ChunkSize          int
	ChunkCommitTimeout time.Duration
	ConsistencyWait    time.Duration
	BackupDir          string
	LogJSON            bool
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Absence of a required variable is a startup failure, not a
// runtime one.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("FIRESTORE_PROJECT_ID", "")
	viper.SetDefault("FIRESTORE_CREDENTIALS_FILE", "")
	viper.SetDefault("IDENTITY_API_KEY", "")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("CHUNK_SIZE", 450)
	viper.SetDefault("CHUNK_COMMIT_TIMEOUT", "30s")
	viper.SetDefault("CONSISTENCY_WAIT", "2s")
	viper.SetDefault("BACKUP_DIR", "backups")
	viper.SetDefault("LOG_JSON", false)

	viper.AutomaticEnv()

	cfg := &Config{
		ProjectID:       viper.GetString("FIRESTORE_PROJECT_ID"),
		CredentialsFile: viper.GetString("FIRESTORE_CREDENTIALS_FILE"),
		IdentityAPIKey:  viper.GetString("IDENTITY_API_KEY"),
		AdminEmail:      viper.GetString("ADMIN_EMAIL"),
		AdminPassword:   viper.GetString("ADMIN_PASSWORD"),
		ChunkSize:       viper.GetInt("CHUNK_SIZE"),
		BackupDir:       viper.GetString("BACKUP_DIR"),
		LogJSON:         viper.GetBool("LOG_JSON"),
	}

	for name, value := range map[string]string{
		"FIRESTORE_PROJECT_ID": cfg.ProjectID,
		"IDENTITY_API_KEY":     cfg.IdentityAPIKey,
		"ADMIN_EMAIL":          cfg.AdminEmail,
		"ADMIN_PASSWORD":       cfg.AdminPassword,
	} {
		if value == "" {
			return nil, fmt.Errorf("%w: %s is not set", apperrors.ErrMissingConfig, name)
		}
	}

	if cfg.ChunkSize < 1 || cfg.ChunkSize > maxStoreBatchOps {
		return nil, fmt.Errorf("%w: CHUNK_SIZE must be between 1 and %d, got %d",
			apperrors.ErrMissingConfig, maxStoreBatchOps, cfg.ChunkSize)
	}

	commitTimeout, err := time.ParseDuration(viper.GetString("CHUNK_COMMIT_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid CHUNK_COMMIT_TIMEOUT: %v", apperrors.ErrMissingConfig, err)
	}
	cfg.ChunkCommitTimeout = commitTimeout

	consistencyWait, err := time.ParseDuration(viper.GetString("CONSISTENCY_WAIT"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid CONSISTENCY_WAIT: %v", apperrors.ErrMissingConfig, err)
	}
	cfg.ConsistencyWait = consistencyWait

	return cfg, nil
}
