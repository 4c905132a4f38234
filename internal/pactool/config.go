package pactool

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
)

// Config struct
type Config struct {
	Values    map[string]string
	CacheKeep uint16 // default for "versions to keep"
	LogDays   uint16 // default for "days to keep"
}

// Load /etc/pactool.conf and apply env overrides. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{Values: make(map[string]string)}

	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			key := strings.TrimSpace(parts[0])
			val := strings.TrimSpace(parts[1])
			val = strings.Trim(val, `"'`)
			cfg.Values[key] = val
		}
		if err := scanner.Err(); err != nil {
			return cfg, err
		}
	}

	mergeEnvOverrides(cfg)
	return cfg, nil
}

// Merge PACTOOL_* env overrides
func mergeEnvOverrides(cfg *Config) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PACTOOL_") {
			parts := strings.SplitN(env, "=", 2)
			if len(parts) == 2 {
				cfg.Values[parts[0]] = parts[1]
			}
		}
	}
}

func initConfig(cfg *Config) {
	rootDir = cfg.Values["PACTOOL_ROOT"]
	if rootDir == "" {
		rootDir = "/"
	}

	Debug = cfg.Values["PACTOOL_DEBUG"] == "1"

	cfg.CacheKeep = retentionValue(cfg, "PACTOOL_CACHE_KEEP", defaultCacheKeep)
	cfg.LogDays = retentionValue(cfg, "PACTOOL_LOG_DAYS", defaultLogDays)
}

// retentionValue reads a u16 setting, falling back to def when unset or invalid.
func retentionValue(cfg *Config, key string, def uint16) uint16 {
	raw, ok := cfg.Values[key]
	if !ok || raw == "" {
		return def
	}
	n, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		log.Printf("Warning: %s=%q is not a valid number, using %d", key, raw, def)
		return def
	}
	return uint16(n)
}
