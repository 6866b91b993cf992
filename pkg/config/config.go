package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/42tools/ft-otp/pkg/seal"
)

// ErrParsing is returned when environment variables cannot be parsed into
// the config struct.
var ErrParsing = errors.New("failed to parse environment configuration")

var dotenvOnce sync.Once

// Config carries the runtime settings of the tool. All fields default to
// the historical values of the key file format and enrollment labels.
type Config struct {
	KeyFile     string `env:"FT_OTP_KEY_FILE" envDefault:"ft_otp.key"`
	Issuer      string `env:"FT_OTP_ISSUER" envDefault:"ft_otp"`
	AccountName string `env:"FT_OTP_ACCOUNT" envDefault:"exemple@gmail.com"`
	Passphrase  string `env:"FT_OTP_PASSPHRASE"`
}

// Load reads the configuration from the environment. The default .env file
// is loaded once per process; a missing .env is not an error.
func Load() (Config, error) {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsing, err)
	}
	return cfg, nil
}

// Deriver returns the sealing key deriver selected by the configuration:
// the fixed compiled-in derivation unless a passphrase is set.
func (c Config) Deriver() seal.KeyDeriver {
	if c.Passphrase != "" {
		return seal.Passphrase{Passphrase: c.Passphrase}
	}
	return seal.Fixed{}
}
