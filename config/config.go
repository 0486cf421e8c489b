package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys shared by the server, farmctl flags and the environment. Viper maps
// each key to its upper-cased environment variable.
const (
	KeyPort             = "port"
	KeyDatabaseURL      = "database_url"
	KeyAPIPrefix        = "api_prefix"
	KeyCORSOrigins      = "cors_origins"
	KeyRequireAuth      = "require_auth"
	KeyAPIToken         = "api_token"
	KeyAutoCreateTables = "auto_create_tables"
	KeyLogLevel         = "log_level"

	KeyAPIURL     = "api_url"
	KeyAPITimeout = "api_timeout"
	KeyTokenPath  = "token_path"
	KeyLocale     = "locale"
)

type ServerConfig struct {
	Port             string
	DatabaseURL      string
	APIPrefix        string
	CORSOrigins      []string
	RequireAuth      bool
	APIToken         string
	AutoCreateTables bool
	LogLevel         string
}

func (c ServerConfig) String() string {
	token := ""
	if c.APIToken != "" {
		token = "***"
	}
	return fmt.Sprintf("{Port:%s DatabaseURL:%s APIPrefix:%s CORSOrigins:%v RequireAuth:%t APIToken:%s AutoCreateTables:%t LogLevel:%s}",
		c.Port, c.DatabaseURL, c.APIPrefix, c.CORSOrigins, c.RequireAuth, token, c.AutoCreateTables, c.LogLevel)
}

type ClientConfig struct {
	APIURL    string
	Timeout   time.Duration
	TokenPath string
	LogLevel  string
	Locale    string
}

// New loads .env (if present) into the process environment and returns a
// viper instance with every default registered.
func New() (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(KeyPort, "8000")
	v.SetDefault(KeyDatabaseURL, "dalu.db")
	v.SetDefault(KeyAPIPrefix, "/api/v1")
	v.SetDefault(KeyCORSOrigins, "http://localhost:5173")
	v.SetDefault(KeyRequireAuth, false)
	v.SetDefault(KeyAPIToken, "")
	v.SetDefault(KeyAutoCreateTables, true)

	v.SetDefault(KeyAPIURL, "http://localhost:8000/api/v1")
	v.SetDefault(KeyAPITimeout, 10*time.Second)
	v.SetDefault(KeyTokenPath, defaultTokenPath())
	v.SetDefault(KeyLocale, "en")
	return v, nil
}

func Server(v *viper.Viper) ServerConfig {
	return ServerConfig{
		Port:             v.GetString(KeyPort),
		DatabaseURL:      v.GetString(KeyDatabaseURL),
		APIPrefix:        "/" + strings.Trim(v.GetString(KeyAPIPrefix), "/"),
		CORSOrigins:      splitList(v.GetString(KeyCORSOrigins)),
		RequireAuth:      v.GetBool(KeyRequireAuth),
		APIToken:         v.GetString(KeyAPIToken),
		AutoCreateTables: v.GetBool(KeyAutoCreateTables),
		LogLevel:         orDefault(v.GetString(KeyLogLevel), "info"),
	}
}

func Client(v *viper.Viper) ClientConfig {
	return ClientConfig{
		APIURL:    strings.TrimRight(v.GetString(KeyAPIURL), "/"),
		Timeout:   v.GetDuration(KeyAPITimeout),
		TokenPath: v.GetString(KeyTokenPath),
		LogLevel:  orDefault(v.GetString(KeyLogLevel), "warn"),
		Locale:    v.GetString(KeyLocale),
	}
}

// LoadServer is New followed by Server.
func LoadServer() (ServerConfig, error) {
	v, err := New()
	if err != nil {
		return ServerConfig{}, err
	}
	cfg := Server(v)
	if cfg.RequireAuth && cfg.APIToken == "" {
		return cfg, errors.New("REQUIRE_AUTH is set but API_TOKEN is empty")
	}
	return cfg, nil
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".dalu", "token")
	}
	return filepath.Join(home, ".dalu", "token")
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
