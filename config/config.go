package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	ServiceName string           `yaml:"service_name"`
	LogLevel    string           `yaml:"log_level"`
	Benchmark   *BenchmarkConfig `yaml:"benchmark"`
}

// BenchmarkConfig shapes the workload cmd/benchmark runs against the cache.
type BenchmarkConfig struct {
	Orders     int    `yaml:"orders"`
	Securities int    `yaml:"securities"`
	Users      int    `yaml:"users"`
	Companies  int    `yaml:"companies"`
	MaxQty     uint64 `yaml:"max_qty"`
	Workers    int    `yaml:"workers"`
	Iterations int    `yaml:"iterations"`
}

// Load load config from file and environment variables.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	sugar := zap.S().With("func", "config.Load", "filePath", filePath)
	sugar.Debug("Load config...")

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := &AppConfig{}

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}
