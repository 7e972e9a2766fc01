package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode   string `mapstructure:"mode"`
	Server struct {
		HTTPPort    string        `mapstructure:"HTTPPort"`
		MetricsPort string        `mapstructure:"metricsPort"`
		Timeout     time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
	Gemini struct {
		Model           string        `mapstructure:"model"`
		ListTimeout     time.Duration `mapstructure:"listTimeout"`
		GenerateTimeout time.Duration `mapstructure:"generateTimeout"`
	} `mapstructure:"gemini"`
	Unsplash struct {
		BaseURL string        `mapstructure:"baseURL"`
		PerPage int           `mapstructure:"perPage"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"unsplash"`

	// Secrets come from the environment, never from the YAML file.
	GeminiAPIKey   string
	UnsplashAPIKey string
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	// Unmarshal the config into the Config struct
	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}

	// Both providers are hard requirements: the planner cannot produce a
	// useful page without at least attempting them, so refuse to start
	// instead of failing on the first request.
	config.GeminiAPIKey = os.Getenv("GOOGLE_GEMINI_API_KEY")
	if config.GeminiAPIKey == "" {
		return Config{}, fmt.Errorf("GOOGLE_GEMINI_API_KEY environment variable is not set")
	}
	config.UnsplashAPIKey = os.Getenv("UNSPLASH_ACCESS_KEY")
	if config.UnsplashAPIKey == "" {
		return Config{}, fmt.Errorf("UNSPLASH_ACCESS_KEY environment variable is not set")
	}

	fmt.Println("Successfully loaded app configs...")
	return config, nil
}
