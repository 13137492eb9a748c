package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string // mysql or sqlite
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string // sqlite file, ":memory:" allowed
}

type Redis struct {
	Addr string // empty means in-process store
	Pass string
	DB   int
}

type Session struct {
	TTLHours int
}

type Auth struct {
	Scheme        string // sha256 (legacy-compatible) or bcrypt
	AdminUser     string
	AdminPassword string
}

type Upload struct {
	MaxBytes int64
}

type Config struct {
	HTTP    HTTP
	DB      DB
	Redis   Redis
	Session Session
	Auth    Auth
	Upload  Upload
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 9400)
	v.SetDefault("server.db.driver", "mysql")
	v.SetDefault("server.db.host", "127.0.0.1")
	v.SetDefault("server.db.port", 3306)
	v.SetDefault("server.db.user", "root")
	v.SetDefault("server.db.pass", "")
	v.SetDefault("server.db.name", "points_ledger")
	v.SetDefault("server.db.path", "points_ledger.db")
	v.SetDefault("server.redis.addr", "")
	v.SetDefault("server.redis.pass", "")
	v.SetDefault("server.redis.db", 0)
	v.SetDefault("server.session.ttl_hours", 24)
	v.SetDefault("server.auth.scheme", "sha256")
	v.SetDefault("server.auth.admin_user", "admin")
	v.SetDefault("server.auth.admin_password", "admin123")
	v.SetDefault("server.upload.max_bytes", 10<<20)
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("server.db.driver"),
			Host:   v.GetString("server.db.host"),
			Port:   v.GetInt("server.db.port"),
			User:   v.GetString("server.db.user"),
			Pass:   v.GetString("server.db.pass"),
			Name:   v.GetString("server.db.name"),
			Path:   v.GetString("server.db.path"),
		},
		Redis: Redis{
			Addr: v.GetString("server.redis.addr"),
			Pass: v.GetString("server.redis.pass"),
			DB:   v.GetInt("server.redis.db"),
		},
		Session: Session{TTLHours: v.GetInt("server.session.ttl_hours")},
		Auth: Auth{
			Scheme:        v.GetString("server.auth.scheme"),
			AdminUser:     v.GetString("server.auth.admin_user"),
			AdminPassword: v.GetString("server.auth.admin_password"),
		},
		Upload: Upload{MaxBytes: v.GetInt64("server.upload.max_bytes")},
	}
	if cfg.Session.TTLHours <= 0 {
		cfg.Session.TTLHours = 24
	}
	if cfg.Auth.Scheme == "" {
		cfg.Auth.Scheme = "sha256"
	}
	return cfg
}
