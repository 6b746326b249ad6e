package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Thresholds drive the health scorer. They are supplied externally;
// the scorer itself hard-codes nothing.
type Thresholds struct {
	CPUTempWarning  float64 `mapstructure:"cpu_temp_warning"`
	CPUTempCritical float64 `mapstructure:"cpu_temp_critical"`

	DiskTempWarning  float64 `mapstructure:"disk_temp_warning"`
	DiskTempCritical float64 `mapstructure:"disk_temp_critical"`

	RAMUsageWarning  float64 `mapstructure:"ram_usage_warning"`
	RAMUsageCritical float64 `mapstructure:"ram_usage_critical"`

	DiskUsageWarning  float64 `mapstructure:"disk_usage_warning"`
	DiskUsageCritical float64 `mapstructure:"disk_usage_critical"`

	BatteryHealthGood float64 `mapstructure:"battery_health_good"`
	BatteryHealthFair float64 `mapstructure:"battery_health_fair"`
}

// Benchmarks holds micro-benchmark sizing.
type Benchmarks struct {
	CPUDuration  time.Duration `mapstructure:"cpu_duration"`
	DiskSizeMB   int           `mapstructure:"disk_size_mb"`
	MemorySizeMB int           `mapstructure:"memory_size_mb"`
}

// Server holds serve-mode settings. An empty AuthSecret disables
// token authentication.
type Server struct {
	Address      string        `mapstructure:"address"`
	AuthSecret   string        `mapstructure:"auth_secret"`
	PushInterval time.Duration `mapstructure:"push_interval"`
}

// Config is the full runtime configuration.
type Config struct {
	OutputDir   string     `mapstructure:"output_dir"`
	ReportTitle string     `mapstructure:"report_title"`
	Thresholds  Thresholds `mapstructure:"thresholds"`
	Benchmarks  Benchmarks `mapstructure:"benchmarks"`
	Server      Server     `mapstructure:"server"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", "./output")
	v.SetDefault("report_title", "PC Hardware Analysis Report")

	v.SetDefault("thresholds.cpu_temp_warning", 75.0)
	v.SetDefault("thresholds.cpu_temp_critical", 90.0)
	v.SetDefault("thresholds.disk_temp_warning", 50.0)
	v.SetDefault("thresholds.disk_temp_critical", 60.0)
	v.SetDefault("thresholds.ram_usage_warning", 75.0)
	v.SetDefault("thresholds.ram_usage_critical", 90.0)
	v.SetDefault("thresholds.disk_usage_warning", 80.0)
	v.SetDefault("thresholds.disk_usage_critical", 95.0)
	v.SetDefault("thresholds.battery_health_good", 80.0)
	v.SetDefault("thresholds.battery_health_fair", 60.0)

	v.SetDefault("benchmarks.cpu_duration", 10*time.Second)
	v.SetDefault("benchmarks.disk_size_mb", 256)
	v.SetDefault("benchmarks.memory_size_mb", 512)

	v.SetDefault("server.address", "localhost:8080")
	v.SetDefault("server.auth_secret", "")
	v.SetDefault("server.push_interval", time.Second)
}

// Load reads hwdoctor.yaml from path (empty means cwd then
// ~/.hwdoctor) with HWDOCTOR_* environment overrides. A missing config
// file is fine; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("HWDOCTOR")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("hwdoctor")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".hwdoctor"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Thresholds.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects threshold orderings the scorer cannot reason about.
// This is a contract violation, not a degradable probe failure.
func (t Thresholds) validate() error {
	if t.CPUTempCritical < t.CPUTempWarning {
		return fmt.Errorf("cpu_temp_critical (%v) below cpu_temp_warning (%v)", t.CPUTempCritical, t.CPUTempWarning)
	}
	if t.RAMUsageCritical < t.RAMUsageWarning {
		return fmt.Errorf("ram_usage_critical (%v) below ram_usage_warning (%v)", t.RAMUsageCritical, t.RAMUsageWarning)
	}
	if t.DiskUsageCritical < t.DiskUsageWarning {
		return fmt.Errorf("disk_usage_critical (%v) below disk_usage_warning (%v)", t.DiskUsageCritical, t.DiskUsageWarning)
	}
	return nil
}
