package tellerxgo

import (
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Branch         string `yaml:"branch"`
	CurrencySymbol string `yaml:"currency_symbol"`
	NodeID         int64  `yaml:"node_id"`
	Checking       struct {
		WithdrawalLimit decimal.Decimal `yaml:"withdrawal_limit"`
		MaxWithdrawals  int             `yaml:"max_withdrawals"`
	} `yaml:"checking"`
	DailyTransactionLimit int `yaml:"daily_transaction_limit"`
	Audit                 struct {
		Path string `yaml:"path"`
	} `yaml:"audit"`
	Statement struct {
		PDFDir string `yaml:"pdf_dir"`
	} `yaml:"statement"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// DefaultConfig returns the settings the teller runs with when no config file is given.
func DefaultConfig() *Config {
	cfg := &Config{
		Branch:                "0001",
		CurrencySymbol:        "R$",
		NodeID:                1,
		DailyTransactionLimit: 2,
	}
	cfg.Checking.WithdrawalLimit = decimal.NewFromInt(500)
	cfg.Checking.MaxWithdrawals = 3
	cfg.Audit.Path = "log.txt"
	cfg.Log.Level = "info"
	return cfg
}

// LoadConfig decodes the YAML file at path over the defaults. A missing file is not
// an error; the defaults are returned as is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	fl, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	defer fl.Close()

	if err = yaml.NewDecoder(fl).Decode(cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	fields := map[string]string{}
	if c.Branch == "" {
		fields["branch"] = "required"
	}
	if !c.Checking.WithdrawalLimit.IsPositive() {
		fields["checking.withdrawal_limit"] = "must be positive"
	}
	if c.Checking.MaxWithdrawals <= 0 {
		fields["checking.max_withdrawals"] = "must be positive"
	}
	if c.DailyTransactionLimit <= 0 {
		fields["daily_transaction_limit"] = "must be positive"
	}
	if c.Audit.Path == "" {
		fields["audit.path"] = "required"
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		fields["log.level"] = "unknown level"
	}
	if len(fields) > 0 {
		return ErrBadRequest{Fields: fields}
	}
	return nil
}

// CheckingRules is the rule set the account factory gives new checking accounts.
func (c *Config) CheckingRules() AccountRules {
	return AccountRules{
		WithdrawalLimit: c.Checking.WithdrawalLimit,
		MaxWithdrawals:  c.Checking.MaxWithdrawals,
	}
}
