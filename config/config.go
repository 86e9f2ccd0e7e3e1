package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectDir   string `json:"project_dir"`
	DataDir      string `json:"data_dir"`
	DataCacheDir string `json:"data_cache_dir"`
	LogFilePath  string `json:"log_file_path"`

	// Generation service
	GeminiAPIKey   string   `json:"gemini_api_key"`
	DeepSeekAPIKey string   `json:"deepseek_api_key"`
	GeminiModels   []string `json:"gemini_models"`
	MaxGenAttempts int      `json:"max_gen_attempts"`
	BackoffSeconds int      `json:"backoff_seconds"`

	// Telegram delivery
	TelegramBotToken  string `json:"telegram_bot_token"`
	TelegramChannelID string `json:"telegram_channel_id"`

	// News aggregation
	ArticlesPerQuery int `json:"articles_per_query"`
	ArticleMaxChars  int `json:"article_max_chars"`

	// Market data
	MarketSource        string `json:"market_source"` // yahoo | longport
	LongportAppKey      string `json:"longport_app_key"`
	LongportAppSecret   string `json:"longport_app_secret"`
	LongportAccessToken string `json:"longport_access_token"`

	CacheEnabled bool `json:"cache_enabled"`
	Debug        bool `json:"debug"`
}

func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()

	cfg := &Config{
		ProjectDir:   currentDir,
		DataDir:      filepath.Join(currentDir, "data"),
		DataCacheDir: filepath.Join(currentDir, "data", "cache"),
		LogFilePath:  filepath.Join(currentDir, "latest_run.log"),

		GeminiModels:   []string{"gemini-2.5-pro", "gemini-2.5-flash", "gemini-2.0-flash"},
		MaxGenAttempts: 3,
		BackoffSeconds: 30,

		ArticlesPerQuery: 1,
		ArticleMaxChars:  800,

		MarketSource: "yahoo",
		CacheEnabled: true,
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("PROJECT_DIR"); val != "" {
		c.ProjectDir = val
	}
	if val := os.Getenv("DATA_DIR"); val != "" {
		c.DataDir = val
	}
	if val := os.Getenv("DATA_CACHE_DIR"); val != "" {
		c.DataCacheDir = val
	}
	if val := os.Getenv("LOG_FILE_PATH"); val != "" {
		c.LogFilePath = val
	}

	if val := os.Getenv("GEMINI_API_KEY"); val != "" {
		c.GeminiAPIKey = val
	}
	if val := os.Getenv("DEEPSEEK_API_KEY"); val != "" {
		c.DeepSeekAPIKey = val
	}
	if val := os.Getenv("GEMINI_MODELS"); val != "" {
		var models []string
		for _, m := range strings.Split(val, ",") {
			if m = strings.TrimSpace(m); m != "" {
				models = append(models, m)
			}
		}
		if len(models) > 0 {
			c.GeminiModels = models
		}
	}
	if val := os.Getenv("MAX_GEN_ATTEMPTS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			c.MaxGenAttempts = v
		}
	}
	if val := os.Getenv("BACKOFF_SECONDS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			c.BackoffSeconds = v
		}
	}

	if val := os.Getenv("TELEGRAM_BOT_TOKEN"); val != "" {
		c.TelegramBotToken = val
	}
	if val := os.Getenv("TELEGRAM_CHANNEL_ID"); val != "" {
		c.TelegramChannelID = val
	}

	if val := os.Getenv("ARTICLES_PER_QUERY"); val != "" {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			c.ArticlesPerQuery = v
		}
	}
	if val := os.Getenv("ARTICLE_MAX_CHARS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			c.ArticleMaxChars = v
		}
	}

	if val := os.Getenv("MARKET_SOURCE"); val != "" {
		c.MarketSource = strings.ToLower(strings.TrimSpace(val))
	}
	if val := os.Getenv("LONGPORT_APP_KEY"); val != "" {
		c.LongportAppKey = val
	}
	if val := os.Getenv("LONGPORT_APP_SECRET"); val != "" {
		c.LongportAppSecret = val
	}
	if val := os.Getenv("LONGPORT_ACCESS_TOKEN"); val != "" {
		c.LongportAccessToken = val
	}

	if val := os.Getenv("CACHE_ENABLED"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.CacheEnabled = enabled
		}
	}
	if val := os.Getenv("BRIEFINGGO_DEBUG"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.Debug = enabled
		}
	}
}

func (c *Config) EnsureDirectories() error {
	dirs := []string{c.ProjectDir, c.DataDir, c.DataCacheDir}
	for _, dir := range dirs {
		path := strings.TrimSpace(dir)
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", path, err)
		}
	}
	return nil
}
