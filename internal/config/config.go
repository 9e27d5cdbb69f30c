package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

var (
	// ErrReadConfig возвращается при ошибке чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Auth     Auth     `toml:"auth"`
	Slots    Slots    `toml:"slots"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int     `toml:"http_port"`
	ReadTimeout     int     `toml:"read_timeout"`
	WriteTimeout    int     `toml:"write_timeout"`
	IdleTimeout     int     `toml:"idle_timeout"`
	ShutdownTimeout int     `toml:"shutdown_timeout"`
	RateLimitRPS    float64 `toml:"rate_limit_rps"`   // 0 = без ограничения
	RateLimitBurst  int     `toml:"rate_limit_burst"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Auth настройки выпуска токенов
type Auth struct {
	TokenSecret     string `toml:"token_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// Slots конфигурация дневного шаблона слотов.
// Шаблон - данные конфигурации, а не логика: вместимость и набор слотов
// можно менять, не трогая правила допуска бронирований.
type Slots struct {
	SeatsPerSlot int            `toml:"seats_per_slot"`
	Template     []TemplateSlot `toml:"template"`
}

// TemplateSlot одна запись дневного шаблона
type TemplateSlot struct {
	Time  string `toml:"time"`
	Type  string `toml:"type"`
	Price int64  `toml:"price"`
}

// Load читает конфигурацию из TOML файла.
// Секреты (пароль БД, секрет токенов) можно переопределить через переменные
// окружения DB_PASSWORD и AUTH_TOKEN_SECRET; .env подхватывается, если есть.
func Load(path string) (*Config, error) {
	// .env опционален, отсутствие файла не ошибка
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("AUTH_TOKEN_SECRET"); v != "" {
		cfg.Auth.TokenSecret = v
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Slots.SeatsPerSlot == 0 {
		c.Slots.SeatsPerSlot = domain.DefaultSeatsPerSlot
	}
	if len(c.Slots.Template) == 0 {
		for _, e := range domain.DefaultTemplate {
			c.Slots.Template = append(c.Slots.Template, TemplateSlot{
				Time:  e.Time,
				Type:  string(e.Type),
				Price: e.Price,
			})
		}
	}
	if c.Auth.TokenTTLMinutes == 0 {
		c.Auth.TokenTTLMinutes = 24 * 60
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("%w: auth.token_secret is required", ErrInvalidConfig)
	}
	if c.Slots.SeatsPerSlot <= 0 {
		return fmt.Errorf("%w: slots.seats_per_slot must be positive", ErrInvalidConfig)
	}

	for i, entry := range c.Slots.Template {
		if entry.Time == "" {
			return fmt.Errorf("%w: slots.template[%d].time is required", ErrInvalidConfig, i)
		}
		if !domain.SlotType(entry.Type).IsValid() {
			return fmt.Errorf("%w: slots.template[%d].type must be individual or group", ErrInvalidConfig, i)
		}
		if entry.Price < 0 {
			return fmt.Errorf("%w: slots.template[%d].price must not be negative", ErrInvalidConfig, i)
		}
	}

	return nil
}

// SlotTemplate конвертирует шаблон из конфигурации в domain-модель
func (c *Config) SlotTemplate() []domain.TemplateEntry {
	template := make([]domain.TemplateEntry, 0, len(c.Slots.Template))
	for _, entry := range c.Slots.Template {
		template = append(template, domain.TemplateEntry{
			Time:  entry.Time,
			Type:  domain.SlotType(entry.Type),
			Price: entry.Price,
		})
	}
	return template
}
