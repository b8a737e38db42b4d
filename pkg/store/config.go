package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
	WeatherAPIKey() string
}

func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.moodlog.db")
	viper.SetConfigName(".moodlog") // .yaml is implicit
	viper.SetEnvPrefix("MOODLOG")
	viper.AutomaticEnv()
	_ = viper.BindEnv("weather_api_key")

	if override := os.Getenv("MOODLOG_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("error expanding journal path: %w", err)
	}

	return &fileConfig{
		Path:       path,
		WeatherKey: viper.GetString("weather_api_key"),
	}, nil
}

type fileConfig struct {
	Path       string `json:"path"`
	WeatherKey string `json:"weatherApiKey"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) WeatherAPIKey() string {
	return f.WeatherKey
}
