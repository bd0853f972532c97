package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the application reads.
const EnvPrefix = "DELIVERY"

type Config struct {
	LogLevel       string `mapstructure:"log_level"       validate:"required,oneof=debug info warn error"`
	Timezone       string `mapstructure:"timezone"        validate:"required,timezone"`
	DeliverySlot   string `mapstructure:"delivery_slot"   validate:"required,cronspec"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
}

// LoadConfig reads configuration from env files, the environment and any
// flags already bound to v, in that order of increasing precedence.
// Env files default to ".env"; missing files are skipped.
func LoadConfig(v *viper.Viper, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("delivery_slot", "0 10 * * *")
	v.SetDefault("metrics_enabled", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal error: %w", err)
	}

	validate, err := newValidator()
	if err != nil {
		return Config{}, err
	}
	if err := validate.Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("validation failed: %w", err)
	}

	return cfg, nil
}

func newValidator() (*validator.Validate, error) {
	validate := validator.New()
	err := validate.RegisterValidation("cronspec", func(fl validator.FieldLevel) bool {
		_, err := cron.ParseStandard(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("register cronspec validation: %w", err)
	}
	return validate, nil
}
