package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bloglite/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnsupportedDriver 表示配置中的数据库驱动无法识别。
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Open 根据配置建立数据库连接，校验连通性并执行自动迁移。
// 返回的连接池可安全地被多个请求并发使用。
func Open(cfg config.AppConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger(cfg.DatabaseLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DatabaseDriver, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.DatabaseDriver, err)
	}
	if cfg.DatabaseDriver == "postgres" {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	// 仅保证表结构存在，不修改已有数据
	if err := gdb.AutoMigrate(&Post{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return gdb, nil
}

func dialectorFor(cfg config.AppConfig) (gorm.Dialector, error) {
	switch cfg.DatabaseDriver {
	case "", "sqlite":
		path := strings.TrimSpace(cfg.DatabaseDSN)
		if path == "" {
			path = "blog.db"
		}
		if err := ensureParentDir(path); err != nil {
			return nil, err
		}
		return sqlite.Open(path), nil
	case "postgres":
		connConfig, err := postgresConfig(cfg.DatabaseDSN, cfg.DatabaseUser, cfg.DatabasePassword)
		if err != nil {
			return nil, err
		}
		return postgres.New(postgres.Config{Conn: stdlib.OpenDB(*connConfig)}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DatabaseDriver)
	}
}

// postgresConfig 解析 keyword 或 URL 形式的 DSN；单独配置的用户名与密码覆盖 DSN 中的值。
func postgresConfig(dsn, user, password string) (*pgx.ConnConfig, error) {
	connConfig, err := pgx.ParseConfig(strings.TrimSpace(dsn))
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if user != "" {
		connConfig.User = user
	}
	if password != "" {
		connConfig.Password = password
	}
	return connConfig, nil
}

func newLogger(level string) logger.Interface {
	mode := logger.Warn
	switch level {
	case "silent":
		mode = logger.Silent
	case "error":
		mode = logger.Error
	case "info":
		mode = logger.Info
	}

	return logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  mode,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") || path == ":memory:" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
