package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hullviz/pkg/api"
	"github.com/matzehuels/hullviz/pkg/pipeline"
)

// configFile is the config file name searched for by LoadConfig.
const configFile = appName + ".toml"

// Config is the contents of hullviz.toml.
//
//	[layout]
//	radius_increment = 0.3
//	seed = 42
//
//	[cache]
//	dir = "/var/cache/hullviz"
//	redis_addr = "localhost:6379"
//	ttl = "72h"
//
//	[server]
//	addr = ":8080"
type Config struct {
	Layout pipeline.Options `toml:"layout"`
	Cache  CacheConfig      `toml:"cache"`
	Server ServerConfig     `toml:"server"`
}

// CacheConfig selects and tunes the layout cache.
type CacheConfig struct {
	Dir       string        `toml:"dir"`
	RedisAddr string        `toml:"redis_addr"`
	TTL       time.Duration `toml:"ttl"`
	Prefix    string        `toml:"prefix"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() Config {
	return Config{Server: ServerConfig{Addr: api.DefaultAddr}}
}

// LoadConfig reads the config file at path. An empty path searches the
// working directory and then the XDG config directory; finding nothing
// yields DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = findConfig()
		if path == "" {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Cache.TTL < 0 {
		return Config{}, fmt.Errorf("config %s: cache.ttl must not be negative", path)
	}

	check := cfg.Layout
	check.SetDefaults()
	if err := check.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// findConfig returns the first existing candidate config path, or "".
func findConfig() string {
	candidates := []string{configFile}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, appName, configFile))
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
