package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Catalog CatalogConfig
	Stub    StubConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del cliente HTTP hacia la plataforma remota.
type APIConfig struct {
	BaseURL        string // ej: https://api.tienda.example.com
	TimeoutSeconds int
}

// Timeout devuelve el timeout de red del cliente HTTP.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CatalogConfig configuración de los listados del catálogo.
type CatalogConfig struct {
	PageSize int // productos por página en los listados
}

// StubConfig configuración del stub local de la API remota (solo desarrollo).
type StubConfig struct {
	Host      string
	Port      int
	JWTSecret string // secreto HMAC con el que el stub emite y valida tokens
}

// Addr devuelve la dirección de escucha del stub (host:port).
func (c StubConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, STUB_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "storefront"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:8080/api"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
		},
		Catalog: CatalogConfig{
			PageSize: getInt(v, "CATALOG_PAGE_SIZE", 12),
		},
		Stub: StubConfig{
			Host:      getString(v, "STUB_HOST", "0.0.0.0"),
			Port:      getInt(v, "STUB_PORT", 8080),
			JWTSecret: getString(v, "STUB_JWT_SECRET", "dev-secret"),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL no puede estar vacío")
	}
	if cfg.Catalog.PageSize <= 0 {
		cfg.Catalog.PageSize = 12
	}

	return cfg, nil
}

// getString lee una clave con valor por defecto.
func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := v.GetString(key); s != "" {
			return s
		}
	}
	return def
}

// getInt lee una clave entera con valor por defecto.
func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		if n := v.GetInt(key); n != 0 {
			return n
		}
	}
	return def
}
