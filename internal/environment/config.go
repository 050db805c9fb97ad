package environment

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults match the checked-in trivial-CLI baseline.
const (
	DefaultExamplesDir = "examples"
	DefaultTraceDir    = "golden_traces"
	DefaultTimeBudget  = 2 * time.Millisecond
	DefaultCallBudget  = 100
	DefaultTolerance   = 10
	DefaultNatsSubject = "conform.reports"
)

type EnvConfig struct {
	ExamplesDir string
	TraceDir    string
	TracerPath  string

	TimeBudget time.Duration
	CallBudget int
	Tolerance  int

	NatsUrl     string
	NatsSubject string
	SqsQueueUrl string
	AwsRegion   string
}

// ReadEnvConfig loads configuration from the process environment, with an
// optional .env file on top.
func ReadEnvConfig() (*EnvConfig, error) {
	_ = godotenv.Load() // a missing .env file is fine

	result := &EnvConfig{
		ExamplesDir: getEnvDefault("CONFORM_EXAMPLES_DIR", DefaultExamplesDir),
		TraceDir:    getEnvDefault("CONFORM_TRACE_DIR", DefaultTraceDir),
		TracerPath:  os.Getenv("CONFORM_TRACER"),
		NatsUrl:     os.Getenv("NATS_URL"),
		NatsSubject: getEnvDefault("NATS_SUBJECT", DefaultNatsSubject),
		SqsQueueUrl: os.Getenv("SQS_QUEUE_URL"),
		AwsRegion:   getEnvDefault("AWS_REGION", "eu-central-1"),
	}

	timeBudgetMs, err := getEnvInt("CONFORM_TIME_BUDGET_MS", int(DefaultTimeBudget/time.Millisecond))
	if err != nil {
		return nil, err
	}
	result.TimeBudget = time.Duration(timeBudgetMs) * time.Millisecond

	result.CallBudget, err = getEnvInt("CONFORM_CALL_BUDGET", DefaultCallBudget)
	if err != nil {
		return nil, err
	}

	result.Tolerance, err = getEnvInt("CONFORM_TOLERANCE", DefaultTolerance)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not an integer", key, v)
	}
	return n, nil
}
