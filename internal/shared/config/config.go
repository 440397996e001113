package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	ctopics "github.com/radieske/gallo-bet-platform/pkg/contracts/topics"
)

// Config centraliza variáveis de ambiente e parâmetros de execução dos serviços
// Inclui conexões, tópicos, URLs, portas e o vault de sessão
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string // ex: "gallo-app", "backend-simulator", ...

	BackendURL   string // base da API REST do backend (simulado ou real)
	RedisAddr    string
	KafkaBrokers string // "a:9092,b:9092"

	// Tópicos
	TopicBetPlaced       string
	TopicBetConfirmed    string
	TopicBetPlacedDLQ    string
	TopicBetConfirmedDLQ string

	// Vault de sessão (registro durável do usuário autenticado)
	SessionStore string // "file" | "redis"
	SessionFile  string
	SessionKey   string

	// Latência artificial do simulador
	SimulatorLatency time.Duration

	// Portas do serviço atual
	HTTPPort    string // Porta pública (ex.: API REST)
	MetricsPort string // Porta exclusiva para /metrics e /healthz
}

// Load carrega variáveis de ambiente e define defaults para cada serviço
// Um arquivo .env local é lido se existir; resolve portas conforme o SERVICE_NAME
func Load() Config {
	_ = godotenv.Load()

	svc := getEnv("SERVICE_NAME", "")
	env := getEnv("ENV", "local")

	cfg := Config{
		Env:         env,
		ServiceName: svc,

		BackendURL:   getEnv("BACKEND_URL", "http://localhost:8091"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),

		TopicBetPlaced:       getEnv("KAFKA_TOPIC_BET_PLACED", ctopics.BetPlaced),
		TopicBetConfirmed:    getEnv("KAFKA_TOPIC_BET_CONFIRMED", ctopics.BetConfirmed),
		TopicBetPlacedDLQ:    getEnv("KAFKA_TOPIC_BET_PLACED_DLQ", ctopics.BetPlacedDLQ),
		TopicBetConfirmedDLQ: getEnv("KAFKA_TOPIC_BET_CONFIRMED_DLQ", ctopics.BetConfirmedDLQ),

		SessionStore: getEnv("SESSION_STORE", "file"),
		SessionFile:  getEnv("SESSION_FILE", "gallo_session.json"),
		SessionKey:   getEnv("SESSION_KEY", "gallo:session:user"),

		SimulatorLatency: getDuration("SIMULATOR_LATENCY", time.Second),
	}

	// Define portas padrão para cada serviço
	switch svc {
	case "gallo-app":
		cfg.HTTPPort = getEnv("HTTP_PORT_APP", "8090")
		cfg.MetricsPort = getEnv("METRICS_PORT_APP", "9090")
	case "backend-simulator":
		cfg.HTTPPort = getEnv("HTTP_PORT_SIMULATOR", "8091")
		cfg.MetricsPort = getEnv("METRICS_PORT_SIMULATOR", "9091")
	case "bet-confirmation-worker":
		cfg.HTTPPort = getEnv("HTTP_PORT_WORKER", "") // worker não expõe HTTP público
		cfg.MetricsPort = getEnv("METRICS_PORT_WORKER", "9092")
	default:
		cfg.HTTPPort = getEnv("HTTP_PORT", "8090")
		cfg.MetricsPort = getEnv("METRICS_PORT", "9090")
	}

	return cfg
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// getDuration faz parse de uma duração (ex: "500ms") ou retorna o default
func getDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
