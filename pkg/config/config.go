package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "PROGAS"

type Config struct {
	App      AppConfig
	DB       DBConfig
	Admin    AdminConfig
	Line     LineConfig
	Evidence EvidenceConfig
	GPS      GPSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Port     string `envconfig:"PROGAS_APP_PORT" default:"3000"`
	LogLevel string `envconfig:"PROGAS_LOG_LEVEL" default:"info"`
}

type DBConfig struct {
	// Driver selects the persistence backend: "sqlite" keeps the three
	// stores in a local file, "postgres" in remote tables.
	Driver string `envconfig:"PROGAS_DB_DRIVER" default:"sqlite"`

	DSN        string `envconfig:"PROGAS_DATABASE_URL"`
	SQLitePath string `envconfig:"PROGAS_SQLITE_PATH" default:"progas.db"`

	Host     string `envconfig:"PROGAS_DB_HOST"`
	Port     string `envconfig:"PROGAS_DB_PORT" default:"5432"`
	User     string `envconfig:"PROGAS_DB_USER"`
	Password string `envconfig:"PROGAS_DB_PASSWORD"`
	Name     string `envconfig:"PROGAS_DB_NAME"`
}

type AdminConfig struct {
	// PIN is compared in plaintext. It gates the owner dashboard only and
	// is not a security boundary.
	PIN       string `envconfig:"PROGAS_ADMIN_PIN" default:"00000"`
	JWTSecret string `envconfig:"PROGAS_JWT_SECRET" default:"progas-dev-secret-change-me"`
}

type LineConfig struct {
	ChannelToken string `envconfig:"PROGAS_LINE_CHANNEL_TOKEN"`
	GroupID      string `envconfig:"PROGAS_LINE_GROUP_ID"`
	PushURL      string `envconfig:"PROGAS_LINE_PUSH_URL" default:"https://api.line.me/v2/bot/message/push"`
}

// Configured reports whether the LINE credentials are present. Missing
// credentials disable the sink without failing any flow.
func (l LineConfig) Configured() bool {
	return l.ChannelToken != "" && l.GroupID != ""
}

type EvidenceConfig struct {
	PhotoMaxDimension int `envconfig:"PROGAS_PHOTO_MAX_DIMENSION" default:"800"`
	PhotoJPEGQuality  int `envconfig:"PROGAS_PHOTO_JPEG_QUALITY" default:"70"`
}

type GPSConfig struct {
	// Fallback coordinates used when a delivery arrives without a fix.
	FallbackLat float64 `envconfig:"PROGAS_GPS_FALLBACK_LAT" default:"13.7563"`
	FallbackLng float64 `envconfig:"PROGAS_GPS_FALLBACK_LNG" default:"100.5018"`
}
