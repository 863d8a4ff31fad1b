package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Workbook      Workbook      `mapstructure:",squash"`
	PriceChange   PriceChange   `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Workbook define o arquivo de entrada e os nomes de abas e colunas esperados
type Workbook struct {
	Path                  string `mapstructure:"workbook_path"`
	SalesSheet            string `mapstructure:"sales_sheet"`
	PlanPricesSheet       string `mapstructure:"plan_prices_sheet"`
	BusinessChannelColumn string `mapstructure:"business_channel_column"`
	PlanTypeColumn        string `mapstructure:"plan_type_column"`
	OriginalPriceColumn   string `mapstructure:"original_price_column"`
	SalesColumn           string `mapstructure:"sales_column"`
	ElasticityColumn      string `mapstructure:"elasticity_column"`
}

// PriceChange define os limites do controle deslizante de variação de preço
type PriceChange struct {
	Min     float64 `mapstructure:"price_change_min"`
	Max     float64 `mapstructure:"price_change_max"`
	Step    float64 `mapstructure:"price_change_step"`
	Default float64 `mapstructure:"price_change_default"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("WORKBOOK_PATH", "Jr Data Scientist Project - Data Set.xlsx")
	viper.SetDefault("SALES_SHEET", "Sales Data")
	viper.SetDefault("PLAN_PRICES_SHEET", "Plan Prices")
	viper.SetDefault("BUSINESS_CHANNEL_COLUMN", "Business Channel")
	viper.SetDefault("PLAN_TYPE_COLUMN", "Plan Type")
	viper.SetDefault("ORIGINAL_PRICE_COLUMN", "Original Price")
	viper.SetDefault("SALES_COLUMN", "Sales")
	viper.SetDefault("ELASTICITY_COLUMN", "% change in sales for every $ change from original price")

	viper.SetDefault("PRICE_CHANGE_MIN", -20.0)
	viper.SetDefault("PRICE_CHANGE_MAX", 20.0)
	viper.SetDefault("PRICE_CHANGE_STEP", 0.5)
	viper.SetDefault("PRICE_CHANGE_DEFAULT", 5.0)

	viper.SetDefault("DATASET_RELOAD_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)

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

	if err := config.PriceChange.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate garante que os limites do controle deslizante são coerentes
func (p PriceChange) Validate() error {
	if p.Min > p.Max {
		return fmt.Errorf("config: PRICE_CHANGE_MIN (%v) maior que PRICE_CHANGE_MAX (%v)", p.Min, p.Max)
	}
	if p.Step <= 0 {
		return fmt.Errorf("config: PRICE_CHANGE_STEP deve ser positivo, recebido %v", p.Step)
	}
	if !p.Contains(p.Default) {
		return fmt.Errorf("config: PRICE_CHANGE_DEFAULT (%v) fora do intervalo [%v, %v]", p.Default, p.Min, p.Max)
	}
	return nil
}

// Contains indica se a variação está dentro do intervalo permitido
func (p PriceChange) Contains(value float64) bool {
	return value >= p.Min && value <= p.Max
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
