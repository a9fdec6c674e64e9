package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"mozdelivery/internal/adapters/out/storage"
	"mozdelivery/internal/core/application/session"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/services"
	"mozdelivery/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// DefaultDriverID is the identity the driver view acts as.
const DefaultDriverID = "joao_123"

type Config struct {
	HTTPPort string

	DBDialect  string
	DBDSN      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DefaultDeliveryFee int
	ToastTTL           time.Duration
	CodeSeed           uint64
	InitialRole        kernel.Role
	DriverID           string
	SeedReferenceData  bool
	LogLevel           slog.Level
}

// LoadConfig reads envFiles (missing files are skipped) and then the process
// environment. Variables already set in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	config := Config{
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		DBDialect:  getEnv("DB_DIALECT", storage.DialectSQLite),
		DBDSN:      getEnv("DB_DSN", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", ""),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),
		DriverID:   getEnv("DRIVER_ID", DefaultDriverID),
	}

	var problems []error
	var err error

	if config.DefaultDeliveryFee, err = strconv.Atoi(getEnv("DEFAULT_DELIVERY_FEE", strconv.Itoa(services.DefaultDeliveryFee))); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("DEFAULT_DELIVERY_FEE", err))
	} else if config.DefaultDeliveryFee < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("DEFAULT_DELIVERY_FEE", config.DefaultDeliveryFee, 0, "any"))
	}

	if config.ToastTTL, err = time.ParseDuration(getEnv("TOAST_TTL", session.DefaultToastTTL.String())); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("TOAST_TTL", err))
	}

	if config.CodeSeed, err = strconv.ParseUint(getEnv("CODE_SEED", "0"), 10, 64); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("CODE_SEED", err))
	}

	if config.InitialRole, err = kernel.RoleFromString(getEnv("INITIAL_ROLE", kernel.Owner.String())); err != nil {
		problems = append(problems, fmt.Errorf("INITIAL_ROLE: %w", err))
	}

	if config.SeedReferenceData, err = strconv.ParseBool(getEnv("SEED_REFERENCE_DATA", "true")); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("SEED_REFERENCE_DATA", err))
	}

	if err = config.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}

	if err = errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DSN returns DB_DSN when set. Otherwise postgres gets a DSN assembled from the DB_*
// parts and sqlite runs in memory.
func (c Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	if strings.EqualFold(c.DBDialect, storage.DialectPostgres) {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
	}
	return storage.InMemoryDSN
}

func getEnv(key string, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
