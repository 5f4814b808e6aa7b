package config

import (
	"log"
	"os"
	"strconv"
)

// Config guarda todos os parâmetros de configuração da aplicação.
type Config struct {
	// Banco de dados
	DBHost     string
	DBPort     uint
	DBUser     string
	DBPassword string
	DBName     string

	// Autenticação
	JWTSecret string

	// Notificações
	WebhookURL       string
	TelegramToken    string
	TelegramChatID   int64
	TelefoneContato  string

	// LLM (API compatível com OpenAI)
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Presença de colaboradores
	RedisURL string

	// Armazenamento de documentos
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	Porta string
}

// Load carrega a configuração a partir das variáveis de ambiente.
func Load() *Config {
	cfg := &Config{
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "contexto_contabil"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		WebhookURL:      os.Getenv("NOTIFICACAO_WEBHOOK_URL"),
		TelegramToken:   os.Getenv("TELEGRAM_APITOKEN"),
		TelefoneContato: getEnv("TELEFONE_CONTATO", "(11) 99999-9999"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		RedisURL:        os.Getenv("REDIS_URL"),
		MinioEndpoint:   os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:  os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:  os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:     getEnv("MINIO_BUCKET", "documentos-clientes"),
		MinioUseSSL:     os.Getenv("MINIO_USE_SSL") == "true",
		Porta:           getEnv("PORT", "8080"),
	}

	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432
	}
	cfg.DBPort = uint(port)

	cfg.TelegramChatID, err = strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
	if err != nil && os.Getenv("TELEGRAM_APITOKEN") != "" {
		log.Printf("Aviso: não foi possível ler TELEGRAM_CHAT_ID: %v. Notificações por Telegram desativadas.", err)
	}

	if cfg.JWTSecret == "" {
		log.Println("Aviso: JWT_SECRET não definida; autenticação não funcionará.")
	}

	return cfg
}

func getEnv(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}
