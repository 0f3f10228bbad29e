package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultQueryTimeout = 5 * time.Second

var loadDotEnvOnce sync.Once

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr       string
	Port             string
	GinMode          string
	DatabaseDriver   string
	DatabaseDSN      string
	DatabaseUser     string
	DatabasePassword string
	DatabaseLogLevel string
	QueryTimeout     time.Duration
	TemplateDir      string
	StaticDir        string
	SiteName         string
	AboutName        string
	TrustedProxies   []string
	SSL              bool
}

// LoadDotEnv 在 .env 存在时只读取一次。
func LoadDotEnv() {
	loadDotEnvOnce.Do(func() {
		if _, err := os.Stat(".env"); err != nil {
			return
		}
		if err := godotenv.Load(); err != nil {
			log.Printf("dotenv: failed to load .env: %v", err)
		}
	})
}

// Load 依次读取 .env、config.yaml、config/database.yaml 和环境变量，并为缺失项提供默认值。
// 环境变量优先级最高，键名中的 '.' 对应 '_'，例如 database.dsn -> DATABASE_DSN。
func Load() (AppConfig, error) {
	LoadDotEnv()
	return load(viper.New(), ".", "./config")
}

func load(v *viper.Viper, paths ...string) (AppConfig, error) {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := mergeOptionalFile(v, "config", paths); err != nil {
		return AppConfig{}, err
	}
	if err := mergeOptionalFile(v, "database", paths); err != nil {
		return AppConfig{}, err
	}

	port := strings.TrimSpace(v.GetString("port"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(v.GetString("listen_addr"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	queryTimeout := v.GetDuration("database.query_timeout")
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}

	aboutName := strings.TrimSpace(v.GetString("site.about_name"))
	if aboutName == "" {
		aboutName = "Bohdan"
	}

	siteName := strings.TrimSpace(v.GetString("site.name"))
	if siteName == "" {
		siteName = "Blog"
	}

	return AppConfig{
		ListenAddr:       listenAddr,
		Port:             port,
		GinMode:          strings.TrimSpace(v.GetString("gin_mode")),
		DatabaseDriver:   strings.ToLower(strings.TrimSpace(v.GetString("database.driver"))),
		DatabaseDSN:      strings.TrimSpace(v.GetString("database.dsn")),
		DatabaseUser:     strings.TrimSpace(v.GetString("database.username")),
		DatabasePassword: v.GetString("database.password"),
		DatabaseLogLevel: strings.ToLower(strings.TrimSpace(v.GetString("database.log_level"))),
		QueryTimeout:     queryTimeout,
		TemplateDir:      strings.TrimSpace(v.GetString("template_dir")),
		StaticDir:        strings.TrimSpace(v.GetString("static_dir")),
		SiteName:         siteName,
		AboutName:        aboutName,
		TrustedProxies:   splitList(v.GetString("trusted_proxies")),
		SSL:              v.GetBool("ssl"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("listen_addr", "")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "blog.db")
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.query_timeout", defaultQueryTimeout.String())
	v.SetDefault("template_dir", "")
	v.SetDefault("static_dir", "")
	v.SetDefault("site.name", "Blog")
	v.SetDefault("site.about_name", "Bohdan")
	v.SetDefault("trusted_proxies", "127.0.0.1,::1")
	v.SetDefault("ssl", false)
}

// mergeOptionalFile 合并名为 name 的 yaml 配置；文件不存在时跳过，解析失败时返回错误。
func mergeOptionalFile(v *viper.Viper, name string, paths []string) error {
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("load %s config: %w", name, err)
	}
	log.Printf("config: merged %s", v.ConfigFileUsed())
	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
