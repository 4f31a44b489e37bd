package configs

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	Seed struct {
		Path string `koanf:"path"`
	} `koanf:"seed"`

	Reports struct {
		BestsellersK      int `koanf:"bestsellers_k"`
		TopCustomersK     int `koanf:"top_customers_k"`
		LowStockThreshold int `koanf:"low_stock_threshold"`
		CacheSize         int `koanf:"cache_size"`
	} `koanf:"reports"`

	Parallel struct {
		BatchSize int `koanf:"batch_size"`
	} `koanf:"parallel"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env override (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix SHOPAN_, nested with __)
	// e.g. SHOPAN_SEED__PATH, SHOPAN_REPORTS__CACHE_SIZE
	if err := k.Load(env.Provider("SHOPAN_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "SHOPAN_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Seed.Path == "" {
		return fmt.Errorf("seed.path required")
	}
	if c.Reports.CacheSize <= 0 {
		return fmt.Errorf("reports.cache_size must be positive")
	}
	return nil
}
