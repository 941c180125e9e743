package config

import (
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string         `yaml:"env"`      // Env is the current environment: local, development, production.
	Postgres PostgresConfig `yaml:"postgres"` // Postgres holds the database configuration
	HTTP     HTTPConfig     `yaml:"http"`     // HTTP holds the API server configuration
	Seed     SeedConfig     `yaml:"seed"`     // Seed holds the demo data configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`     // Host is the database server address.
	Port     string `yaml:"port"`     // Port is the database server port.
	User     string `yaml:"user"`     // User is the database user.
	Password string `yaml:"password"` // Password is the database user's password.
	Dbname   string `yaml:"db_name"`  // Dbname is the name of the database.
}

// HTTPConfig struct holds the configuration of the employee API server.
type HTTPConfig struct {
	Port         int           `yaml:"port"`          // Port is the listening port.
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // ReadTimeout bounds reading a whole request.
	WriteTimeout time.Duration `yaml:"write_timeout"` // WriteTimeout bounds writing a response.
}

// SeedConfig struct holds the configuration of the demo data seeder.
type SeedConfig struct {
	Count int `yaml:"count"` // Count is the number of demo employees inserted into an empty table.
}

// MustLoad builds the configuration from an optional YAML file pointed to by CONFIG_PATH
// and from environment variables, which take precedence over the file.
// It panics when the file is unreadable or a value cannot be parsed.
func MustLoad() *Config {
	vpr := viper.New()

	vpr.SetDefault("env", "local")
	vpr.SetDefault("postgres.port", "5432")
	vpr.SetDefault("http.port", "8080")
	vpr.SetDefault("http.read_timeout", "10s")
	vpr.SetDefault("http.write_timeout", "15s")
	vpr.SetDefault("seed.count", "10")

	bindings := map[string]string{
		"env":                "REGISTRY_ENV",
		"postgres.host":      "DB_HOST",
		"postgres.port":      "DB_PORT",
		"postgres.user":      "DB_USERNAME",
		"postgres.password":  "DB_PASSWORD",
		"postgres.db_name":   "DB_NAME",
		"http.port":          "HTTP_PORT",
		"http.read_timeout":  "HTTP_READ_TIMEOUT",
		"http.write_timeout": "HTTP_WRITE_TIMEOUT",
		"seed.count":         "SEED_COUNT",
	}
	for key, env := range bindings {
		if err := vpr.BindEnv(key, env); err != nil {
			panic("config error: " + err.Error())
		}
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		vpr.SetConfigFile(configPath)
		vpr.SetConfigType("yaml")
		if err := vpr.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	httpPort, err := strconv.Atoi(vpr.GetString("http.port"))
	if err != nil {
		panic("failed to parse http port from configuration")
	}

	readTimeout, err := time.ParseDuration(vpr.GetString("http.read_timeout"))
	if err != nil {
		panic("failed to parse read timeout from configuration")
	}

	writeTimeout, err := time.ParseDuration(vpr.GetString("http.write_timeout"))
	if err != nil {
		panic("failed to parse write timeout from configuration")
	}

	seedCount, err := strconv.Atoi(vpr.GetString("seed.count"))
	if err != nil {
		panic("failed to parse seed count from configuration")
	}

	return &Config{
		Env: vpr.GetString("env"),
		Postgres: PostgresConfig{
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
		},
		HTTP: HTTPConfig{
			Port:         httpPort,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Seed: SeedConfig{
			Count: seedCount,
		},
	}
}
