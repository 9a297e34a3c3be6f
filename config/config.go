package config

import (
	"encoding/json"
	"os"
	"sync"
)

type Config struct {
	DatabasePath string `json:"databasePath"`
	ListenAddr   string `json:"listenAddr"`
	ShopName     string `json:"shopName"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./sorveteria_config.json"

func applyDefaults(c *Config) {
	if c.DatabasePath == "" {
		c.DatabasePath = "./sorveteria.db"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.ShopName == "" {
		c.ShopName = "Sorveteria"
	}
}

func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&cfg)
			return cfg, nil
		}
		applyDefaults(&cfg)
		return cfg, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		applyDefaults(&cfg)
		return cfg, err
	}
	applyDefaults(&tempCfg)
	cfg = tempCfg

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	applyDefaults(&newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}
