package config

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const envPrefix = "NANIKIRU"

type Config struct {
	AppName    string     `mapstructure:"appName"`
	Log        LogConf    `mapstructure:"log"`
	HttpPort   int        `mapstructure:"httpPort"`
	MetricPort int        `mapstructure:"metricPort"`
	Engine     EngineConf `mapstructure:"engine"`
	Cache      CacheConf  `mapstructure:"cache"`
	Drill      DrillConf  `mapstructure:"drill"`
	RateLimit  RateConf   `mapstructure:"rateLimit"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

// EngineConf 试打并行度与严格模式
type EngineConf struct {
	Workers int  `mapstructure:"workers"`
	Strict  bool `mapstructure:"strict"`
}

// CacheConf 向听数本地缓存
type CacheConf struct {
	Enabled    bool  `mapstructure:"enabled"`
	MaxCost    int64 `mapstructure:"maxCost"`
	TTLSeconds int   `mapstructure:"ttlSeconds"`
}

// RateConf 分析接口按 IP 限流，rps 为 0 时不限流
type RateConf struct {
	RPS   int `mapstructure:"rps"`
	Burst int `mapstructure:"burst"`
}

type DrillConf struct {
	Seed uint64 `mapstructure:"seed"` // 0 表示按时间随机
}

var (
	current atomic.Pointer[Config]
	hooksMu sync.Mutex
	hooks   []func(*Config)
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("appName", "nanikiru")
	v.SetDefault("log.level", "info")
	v.SetDefault("httpPort", 8080)
	v.SetDefault("metricPort", 0)
	v.SetDefault("engine.workers", 1)
	v.SetDefault("engine.strict", true)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.maxCost", 1<<16)
	v.SetDefault("cache.ttlSeconds", 600)
	v.SetDefault("drill.seed", 0)
	v.SetDefault("rateLimit.rps", 0)
	v.SetDefault("rateLimit.burst", 10)
}

func newViper(configFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件出错: %w", err)
	}
	if cfg.Engine.Workers < 1 {
		cfg.Engine.Workers = 1
	}
	return cfg, nil
}

// Load 读取配置，不监听变化；configFile 为空时只用默认值和环境变量
func Load(configFile string) (*Config, error) {
	v := newViper(configFile)
	if configFile != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件出错: %w", err)
		}
	}
	return unmarshal(v)
}

// InitConfig 读取配置并监听文件，修改后重新解析并通知 OnChange 注册的回调
func InitConfig(configFile string) error {
	v := newViper(configFile)
	if configFile == "" {
		cfg, err := unmarshal(v)
		if err != nil {
			return err
		}
		current.Store(cfg)
		return nil
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("读取配置文件出错: %w", err)
	}
	cfg, err := unmarshal(v)
	if err != nil {
		return err
	}
	current.Store(cfg)

	v.OnConfigChange(func(in fsnotify.Event) {
		cfg, err := unmarshal(v)
		if err != nil {
			// 保留旧配置
			return
		}
		current.Store(cfg)
		notify(cfg)
	})
	v.WatchConfig()
	return nil
}

// Get 当前配置，未初始化时返回默认值
func Get() *Config {
	if cfg := current.Load(); cfg != nil {
		return cfg
	}
	cfg, err := unmarshal(newViper(""))
	if err != nil {
		panic(err)
	}
	current.CompareAndSwap(nil, cfg)
	return current.Load()
}

// OnChange 注册配置热更新回调
func OnChange(fn func(*Config)) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	hooks = append(hooks, fn)
}

func notify(cfg *Config) {
	hooksMu.Lock()
	fns := append(([]func(*Config))(nil), hooks...)
	hooksMu.Unlock()
	for _, fn := range fns {
		fn(cfg)
	}
}
