// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

const (
	DefaultSize         = 64
	DefaultSeedA        = 123
	DefaultSeedB        = 456
	DefaultWarmupRounds = 1
)

// Config is the configuration for matbench.
type Config struct {
	Benchmark BenchmarkConfig `mapstructure:"benchmark"`
}

// BenchmarkConfig is the configuration for the matrix benchmark.
type BenchmarkConfig struct {
	Size         int   `mapstructure:"size" validate:"gte=0"`
	SeedA        int64 `mapstructure:"seed_a"`
	SeedB        int64 `mapstructure:"seed_b"`
	WarmupRounds int   `mapstructure:"warmup_rounds" validate:"gte=0"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Benchmark: BenchmarkConfig{
			Size:         DefaultSize,
			SeedA:        DefaultSeedA,
			SeedB:        DefaultSeedB,
			WarmupRounds: DefaultWarmupRounds,
		},
	}
}

func setDefault(v *viper.Viper) {
	defaultConfig := GetDefaultConfig()
	// [benchmark]
	v.SetDefault("benchmark.size", defaultConfig.Benchmark.Size)
	v.SetDefault("benchmark.seed_a", defaultConfig.Benchmark.SeedA)
	v.SetDefault("benchmark.seed_b", defaultConfig.Benchmark.SeedB)
	v.SetDefault("benchmark.warmup_rounds", defaultConfig.Benchmark.WarmupRounds)
}

// LoadConfig loads configuration from a TOML, YAML or JSON file. Missing keys
// take default values.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefault(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Annotatef(err, "failed to read config file %s", path)
	}
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}

func (config *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return errors.NewNotValid(err, "invalid config")
	}
	return nil
}
