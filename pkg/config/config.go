package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Todos los valores tienen default: sin configuración se ejecuta la corrida fija sobre el directorio actual.
type Config struct {
	App   AppConfig
	Audit AuditConfig
	HTTP  HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// AuditConfig rutas de las tablas planas del pipeline.
// El umbral de la regla no es configurable.
type AuditConfig struct {
	InventoryPath string
	SalesPath     string
	ReportPath    string
	XLSXPath      string // vacío = no exportar
	PDFPath       string // vacío = no exportar
	InputEncoding string // utf-8 | iso-8859-1
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// configFiles archivos opcionales, en orden de carga.
var configFiles = []string{".env", "config.env"}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Precedencia, de mayor a menor: env vars, ./config/config.env, ./config/.env,
// ./config.env, ./.env, defaults. Nombres esperados: APP_ENV, AUDIT_INVENTORY_PATH, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()
	if err := mergeFiles(v, ".", "./config"); err != nil {
		return nil, err
	}
	return fromViper(v)
}

// mergeFiles fusiona los archivos existentes de cada directorio; un archivo posterior
// sobrescribe solo las claves que define.
func mergeFiles(v *viper.Viper, dirs ...string) error {
	v.SetConfigType("env")
	for _, dir := range dirs {
		for _, name := range configFiles {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue // opcional
			}
			v.SetConfigFile(path)
			if err := v.MergeInConfig(); err != nil {
				return fmt.Errorf("config: leer %s: %w", path, err)
			}
		}
	}
	return nil
}

// fromViper construye la configuración a partir de una instancia ya cargada.
func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port, err := getInt(v, "HTTP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ghost-audit"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Audit: AuditConfig{
			InventoryPath: getString(v, "AUDIT_INVENTORY_PATH", "inventory.csv"),
			SalesPath:     getString(v, "AUDIT_SALES_PATH", "sales_transactions.csv"),
			ReportPath:    getString(v, "AUDIT_REPORT_PATH", "final_audit_report.csv"),
			XLSXPath:      getString(v, "AUDIT_XLSX_PATH", ""),
			PDFPath:       getString(v, "AUDIT_PDF_PATH", ""),
			InputEncoding: getString(v, "AUDIT_INPUT_ENCODING", "utf-8"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: port,
		},
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) (int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return 0, fmt.Errorf("config: %s inválido: %w", key, err)
		}
		return n, nil
	default:
		return v.GetInt(key), nil
	}
}
