package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env, archivo y flags).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Log  LogConfig
	KPI  KPIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host         string
	Port         int
	AllowOrigins string // CORS, separado por comas; "*" = cualquiera
	Docs         bool // Swagger UI en /docs
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel del logger: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// KPIConfig semilla del generador de series; 0 = no determinista.
type KPIConfig struct {
	Seed int64
}

// Load lee la configuración. Prioridad: flags > env vars > archivo (.env / config.env) > defaults.
// Nombres esperados: APP_ENV, HTTP_PORT, LOG_LEVEL, etc.; flags: --host, --port, --log-level.
func Load(args []string) (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	flags := pflag.NewFlagSet("api", pflag.ContinueOnError)
	flags.String("host", "", "host de escucha (HTTP_HOST)")
	flags.Int("port", 0, "puerto de escucha (HTTP_PORT)")
	flags.String("log-level", "", "nivel de log (LOG_LEVEL)")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	bindFlag(v, flags, "HTTP_HOST", "host")
	bindFlag(v, flags, "HTTP_PORT", "port")
	bindFlag(v, flags, "LOG_LEVEL", "log-level")

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventory-dashboard"),
		},
		HTTP: HTTPConfig{
			Host:         getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:         getInt(v, "HTTP_PORT", 4000),
			AllowOrigins: getString(v, "CORS_ALLOW_ORIGINS", "*"),
			Docs:         getBool(v, "SWAGGER_ENABLED", true),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		KPI: KPIConfig{
			Seed: int64(getInt(v, "KPI_SEED", 0)),
		},
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("HTTP_PORT inválido: %d", cfg.HTTP.Port)
	}
	return cfg, nil
}

// bindFlag solo enlaza el flag si fue indicado, para no pisar env vars con el default vacío.
func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, name string) {
	if f := flags.Lookup(name); f != nil && f.Changed {
		_ = v.BindPFlag(key, f)
	}
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
