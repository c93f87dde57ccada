package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (default), TEST, QA, PROD
		Build    string

		AppName          string
		SecretKey        string
		WorkDir          string
		DefaultFromEmail string
		SendgridApiKey   string
		RollbarToken     string

		Server   ServerConfig
		Database DatabaseConfig
		Client   ClientConfig
	}

	ServerConfig struct {
		Host            string
		Port            string
		ShutdownTimeout time.Duration
	}

	DatabaseConfig struct {
		Engine        string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Host          string
		Port          string
		DisableTLS    bool
	}

	// ClientConfig configures the persistence gateway and session context.
	ClientConfig struct {
		// APIBaseURL is the remote API attempted first on every gateway call.
		APIBaseURL string
		// DataDir holds the durable fallback store. Empty means in-memory only.
		DataDir string
		// Timeout bounds each remote attempt before falling back.
		Timeout time.Duration
		// LoginDelay and AdminLoginDelay mimic remote latency on the local
		// auth path so callers treat auth as asynchronous either way.
		LoginDelay      time.Duration
		AdminLoginDelay time.Duration
		// SignSessions persists the session record as a signed token and
		// verifies it on restore. Off by default: the stock behavior is
		// trust-on-read.
		SignSessions bool
	}
)

func (c DatabaseConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c Config) FromEmailAddress() mail.Address {
	addr, err := mail.ParseAddress(c.DefaultFromEmail)
	if err != nil {
		return mail.Address{Address: c.DefaultFromEmail}
	}
	return *addr
}

func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Elimu")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "w#e4z&k)1mn$+p7=dz!uoxh2(h9x)q*c2(#yg4h^$cegm2emy")
	v.SetDefault("defaultFromEmail", "noreply@localhost")

	v.SetDefault("serverHost", "0.0.0.0")
	v.SetDefault("serverPort", "4000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)

	v.SetDefault("databaseEngine", "postgres")
	v.SetDefault("databaseName", "elimu")
	v.SetDefault("databaseUser", "elimu")
	v.SetDefault("databasePassword", "elimu")
	v.SetDefault("databaseHost", "localhost")
	v.SetDefault("databasePort", "5432")
	v.SetDefault("databaseDisableTLS", true)

	v.SetDefault("apiBaseUrl", "http://localhost:4000")
	v.SetDefault("clientDataDir", "")
	v.SetDefault("clientTimeout", 10*time.Second)
	v.SetDefault("loginDelay", 700*time.Millisecond)
	v.SetDefault("adminLoginDelay", 500*time.Millisecond)
	v.SetDefault("signSessions", false)

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		Debug:            v.GetBool("debug"),
		TestMode:         env == "TEST",
		Env:              env,
		Build:            v.GetString("build"),
		AppName:          v.GetString("appName"),
		SecretKey:        v.GetString("secretKey"),
		WorkDir:          Getwd(),
		DefaultFromEmail: v.GetString("defaultFromEmail"),
		SendgridApiKey:   v.GetString("sendgridApiKey"),
		RollbarToken:     v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            v.GetString("serverHost"),
			Port:            v.GetString("serverPort"),
			ShutdownTimeout: v.GetDuration("serverShutdownTimeout"),
		},
		Database: DatabaseConfig{
			Engine:        v.GetString("databaseEngine"),
			Name:          v.GetString("databaseName"),
			User:          v.GetString("databaseUser"),
			Password:      v.GetString("databasePassword"),
			AdminUser:     v.GetString("databaseAdminUser"),
			AdminPassword: v.GetString("databaseAdminPassword"),
			Host:          v.GetString("databaseHost"),
			Port:          v.GetString("databasePort"),
			DisableTLS:    v.GetBool("databaseDisableTLS"),
		},
		Client: ClientConfig{
			APIBaseURL:      v.GetString("apiBaseUrl"),
			DataDir:         v.GetString("clientDataDir"),
			Timeout:         v.GetDuration("clientTimeout"),
			LoginDelay:      v.GetDuration("loginDelay"),
			AdminLoginDelay: v.GetDuration("adminLoginDelay"),
			SignSessions:    v.GetBool("signSessions"),
		},
	}
}
