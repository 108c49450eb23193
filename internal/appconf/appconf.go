package appconf

import "github.com/caarlos0/env/v11"

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// Config holds all the configuration settings for the application: the
// network port the server listens on, the operating environment, and the set
// of valid API keys.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int
}

// EnvFlagToEnvironment converts the value of the `env` command line flag
// to an Environment value. Unknown values are treated as Development.
func EnvFlagToEnvironment(envFlag string) Environment {
	switch envFlag {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}

// EnvConfig carries the settings that can be supplied through environment
// variables. Command line flags in cmd/api use these values as defaults, so
// flags always win when both are set.
type EnvConfig struct {
	Port        int      `env:"CHURNBOARD_PORT" envDefault:"4000"`
	Env         string   `env:"CHURNBOARD_ENV" envDefault:"development"`
	ApiKeys     []string `env:"CHURNBOARD_API_KEYS" envSeparator:"," envDefault:"test"`
	RateLimit   int      `env:"CHURNBOARD_RATE_LIMIT" envDefault:"100"`
	DatasetPath string   `env:"CHURNBOARD_DATASET" envDefault:"data/bank_churn_data.csv"`
	DBPath      string   `env:"CHURNBOARD_DB_PATH" envDefault:":memory:"`
	Verbose     bool     `env:"CHURNBOARD_VERBOSE" envDefault:"false"`
}

// LoadEnvConfig reads configuration from CHURNBOARD_* environment variables.
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}
