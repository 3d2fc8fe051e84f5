package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	Source   SourceConfig
	Planning PlanningConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// JWTConfig configuración de JWT y de la cuenta del operador.
// El tablero es una herramienta interna: una sola cuenta definida por entorno.
type JWTConfig struct {
	Secret       string
	Expiration   int // minutos
	Issuer       string
	Username     string // usuario del operador
	PasswordHash string // hash bcrypt de la contraseña del operador
}

// SourceConfig ubicación del libro de datos y nombres de las hojas.
// Los nombres de hoja se comparan sin distinguir mayúsculas al abrir el libro.
type SourceConfig struct {
	WorkbookPath     string
	RMSheet          string
	FGSheet          string
	ForecastSheet    string
	ConsumptionSheet string
	GRNSheet         string
}

// PlanningConfig constantes de planificación y listas de ubicaciones.
// Cada despliegue ajusta aquí sus bodegas y umbrales sin tocar código.
type PlanningConfig struct {
	// CyclesPerYear divide el forecast del ciclo para obtener el requerimiento
	// diario. La convención del negocio es 26 ciclos por año.
	CyclesPerYear int64

	// PlanningLocation es la única ubicación cuyas filas de forecast
	// representan la demanda de toda la organización.
	PlanningLocation string

	// ValidLocations son las ubicaciones operativas válidas del inventario RM;
	// filas de cualquier otra ubicación se descartan al cargar.
	ValidLocations []string

	// SOHLocations es el subconjunto de ValidLocations que cuenta como
	// stock-on-hand: solo bodegas de almacenamiento, sin líneas de producción.
	SOHLocations []string

	// Umbrales de días de stock. La vista de forecast clasifica con
	// CriticalDays/LowDays; el planificador de reposición dispara con
	// ReplenishmentTriggerDays. Son cortes distintos por diseño.
	CriticalDays             int
	LowDays                  int
	ReplenishmentTriggerDays int

	// Rango permitido del horizonte objetivo de reposición.
	TargetDaysMin     int
	TargetDaysMax     int
	TargetDaysDefault int
}

// Listas de referencia del despliegue Sproutlife. Valor por defecto cuando las
// env vars INVENTORY_LOCATIONS / SOH_LOCATIONS no definen otra cosa
// (formato: valores separados por "|", los nombres de bodega llevan comas).
var (
	defaultValidLocations = []string{
		"Central",
		"Central Production -Bar Line",
		"Central Production - Oats Line",
		"Central Production - Peanut Line",
		"Central Production - Muesli Line",
		"RM Warehouse Tumkur",
		"Central Production -Dry Fruits Line",
		"Central Warehouse - Cold Storage RM",
		"Tumkur Warehouse",
		"Central Production -Packing",
		"Tumkur New Warehouse",
		"HF Factory FG Warehouse",
		"Sproutlife Foods Private Ltd (SNOWMAN)",
	}

	defaultSOHLocations = []string{
		"Central",
		"RM Warehouse Tumkur",
		"Central Warehouse - Cold Storage RM",
		"Tumkur Warehouse",
		"Tumkur New Warehouse",
		"HF Factory FG Warehouse",
		"Sproutlife Foods Private Ltd (SNOWMAN)",
	}
)

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, WORKBOOK_PATH, JWT_SECRET, etc.
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

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventory-insights"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:       getString(v, "JWT_SECRET", ""),
			Expiration:   getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:       getString(v, "JWT_ISSUER", "inventory-insights"),
			Username:     getString(v, "AUTH_USERNAME", "operator"),
			PasswordHash: getString(v, "AUTH_PASSWORD_HASH", ""),
		},
		Source: SourceConfig{
			WorkbookPath:     getString(v, "WORKBOOK_PATH", "Sproutlife Inventory.xlsx"),
			RMSheet:          getString(v, "SHEET_RM", "RM-Inventory"),
			FGSheet:          getString(v, "SHEET_FG", "FG-Inventory"),
			ForecastSheet:    getString(v, "SHEET_FORECAST", "forecast"),
			ConsumptionSheet: getString(v, "SHEET_CONSUMPTION", "Consumption"),
			GRNSheet:         getString(v, "SHEET_GRN", "GRN"),
		},
		Planning: PlanningConfig{
			CyclesPerYear:            int64(getInt(v, "PLANNING_CYCLES_PER_YEAR", 26)),
			PlanningLocation:         getString(v, "PLANNING_LOCATION", "plant"),
			ValidLocations:           getList(v, "INVENTORY_LOCATIONS", defaultValidLocations),
			SOHLocations:             getList(v, "SOH_LOCATIONS", defaultSOHLocations),
			CriticalDays:             getInt(v, "DOS_CRITICAL_DAYS", 7),
			LowDays:                  getInt(v, "DOS_LOW_DAYS", 14),
			ReplenishmentTriggerDays: getInt(v, "REPLENISHMENT_TRIGGER_DAYS", 10),
			TargetDaysMin:            getInt(v, "TARGET_DAYS_MIN", 10),
			TargetDaysMax:            getInt(v, "TARGET_DAYS_MAX", 90),
			TargetDaysDefault:        getInt(v, "TARGET_DAYS_DEFAULT", 30),
		},
	}

	if cfg.Planning.CyclesPerYear <= 0 {
		return nil, fmt.Errorf("config: PLANNING_CYCLES_PER_YEAR debe ser positivo")
	}

	return cfg, nil
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getList(v *viper.Viper, key string, def []string) []string {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.Split(v.GetString(key), "|")
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
