package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
	Spreadsheet     Spreadsheet     `mapstructure:",squash"`
	SpreadsheetSync SpreadsheetSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Auth guarda o segredo HS256 do provedor de identidade que emite os tokens
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Spreadsheet configura o download da planilha.
// FetchTimeout zero mantém o timeout padrão do transporte.
type Spreadsheet struct {
	FetchTimeoutSeconds int   `mapstructure:"spreadsheet_fetch_timeout_seconds"`
	MaxBytes            int64 `mapstructure:"spreadsheet_max_bytes"`
}

func (s Spreadsheet) FetchTimeout() time.Duration {
	return time.Duration(s.FetchTimeoutSeconds) * time.Second
}

type SpreadsheetSync struct {
	CronSchedule        string `mapstructure:"spreadsheet_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"spreadsheet_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"spreadsheet_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaigns?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("SPREADSHEET_FETCH_TIMEOUT_SECONDS", 0)      // 0 = timeout padrão do transporte
	viper.SetDefault("SPREADSHEET_MAX_BYTES", 10*1024*1024)       // 10 MiB por planilha
	viper.SetDefault("SPREADSHEET_SYNC_CRON", "0 2 * * *")        // Todos os dias às 2h da manhã
	viper.SetDefault("SPREADSHEET_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre campanhas
	viper.SetDefault("SPREADSHEET_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Spreadsheet.FetchTimeoutSeconds < 0 {
		return nil, fmt.Errorf("config: SPREADSHEET_FETCH_TIMEOUT_SECONDS inválido: %d", config.Spreadsheet.FetchTimeoutSeconds)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
