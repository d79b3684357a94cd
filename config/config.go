package config

import (
	"encoding/json"
	"os"

	"github.com/adrg/xdg"
	"github.com/ratel-online/uno/consts"
)

var cfgFile = "uno/config.json"

// Config stores table preferences between runs. It holds launcher
// settings only, never the state of a running game.
type Config struct {
	Name    string `json:"name"`
	Bots    int    `json:"bots"`
	NoMercy bool   `json:"no_mercy"`
	Seed    int64  `json:"seed"`
}

func Default() Config {
	return Config{
		Name:    "You",
		Bots:    1,
		NoMercy: true,
		Seed:    0,
	}
}

// Load merges the saved preference file, if one exists, over the defaults.
func Load() (Config, error) {
	config := Default()
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		return config, nil
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return config, nil
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return Default(), consts.ErrorsConfigInvalid
	}
	if err := config.Validate(); err != nil {
		return Default(), err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return consts.ErrorsConfigInvalid
	}
	if c.Bots < consts.MinPlayers-1 || c.Bots > consts.MaxPlayers-1 {
		return consts.ErrorsConfigInvalid
	}
	return nil
}

func (c Config) Save() error {
	if err := c.Validate(); err != nil {
		return err
	}
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(absPath, data, 0664)
}
