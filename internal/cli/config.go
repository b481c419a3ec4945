package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mcoot/connectfour-go/internal/factory"
	"github.com/mcoot/connectfour-go/internal/model"
	redisstorage "github.com/mcoot/connectfour-go/internal/storage/redis"
)

// Game modes offered by the setup menu
const (
	ModeTwoPlayers = "1"
	ModeVsComputer = "2"
)

// Config holds CLI configuration
type Config struct {
	// Setup answers; empty means ask interactively
	Player1 string
	Player2 string
	Mode    string

	BotStrategy string
	StorageType string
	RedisURL    string
	Seed        string
	LogLevel    string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		BotStrategy: getEnvOrDefault("CONNECTFOUR_BOT_STRATEGY", model.BotStrategyRandom),
		StorageType: getEnvOrDefault("CONNECTFOUR_STORAGE", factory.StorageTypeMemory),
		RedisURL:    getEnvOrDefault("CONNECTFOUR_REDIS_URL", redisstorage.DefaultConfig().URL),
		Seed:        os.Getenv("CONNECTFOUR_SEED"),
		LogLevel:    getEnvOrDefault("CONNECTFOUR_LOG_LEVEL", "warn"),
		Verbose:     false,
	}
}

// Validate checks values that cannot be fixed by reprompting
func (c *Config) Validate() error {
	if c.Mode != "" && c.Mode != ModeTwoPlayers && c.Mode != ModeVsComputer {
		return fmt.Errorf("invalid mode %q: must be %s or %s", c.Mode, ModeTwoPlayers, ModeVsComputer)
	}
	if !model.IsValidBotStrategy(c.BotStrategy) {
		return fmt.Errorf("invalid bot strategy %q: must be one of %v", c.BotStrategy, model.ValidBotStrategies())
	}
	if c.StorageType != factory.StorageTypeMemory && c.StorageType != factory.StorageTypeRedis {
		return fmt.Errorf("invalid storage %q: must be %s or %s", c.StorageType, factory.StorageTypeMemory, factory.StorageTypeRedis)
	}
	if _, err := c.ParseSeed(); err != nil {
		return err
	}
	return nil
}

// ParseSeed returns the configured seed, or nil when none is set
func (c *Config) ParseSeed() (*uint64, error) {
	if c.Seed == "" {
		return nil, nil
	}
	seed, err := strconv.ParseUint(c.Seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: %w", c.Seed, err)
	}
	return &seed, nil
}

// FactoryConfig translates the CLI settings into application wiring
func (c *Config) FactoryConfig() (factory.Config, error) {
	seed, err := c.ParseSeed()
	if err != nil {
		return factory.Config{}, err
	}

	fc := factory.Config{
		StorageType: c.StorageType,
		Seed:        seed,
		BotStrategy: c.BotStrategy,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc, nil
}

// loadEnvFile populates unset environment variables from a dotenv file.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
