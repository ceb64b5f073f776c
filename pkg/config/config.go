package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App   AppConfig
	Store StoreConfig
	AI    AIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// StoreConfig configuración del almacén local.
type StoreConfig struct {
	Path string // archivo SQLite; se crea si no existe
}

// AIConfig configuración del generador de borradores con IA.
type AIConfig struct {
	APIKey string // obligatorio; sin él la aplicación no arranca
	Model  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env). Las env vars tienen prioridad. La credencial GEMINI_API_KEY
// es obligatoria: su ausencia es un error fatal de arranque.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "facturia"),
		},
		Store: StoreConfig{
			Path: getString(v, "DB_PATH", "facturia.db"),
		},
		AI: AIConfig{
			APIKey: getString(v, "GEMINI_API_KEY", ""),
			Model:  getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
		},
	}

	if cfg.AI.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY no configurado: la aplicación no puede arrancar sin la credencial del servicio de IA")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
