package config

type Config struct {
	Database       DatabaseConfig       `mapstructure:"database"`
	CasbinDatabase DatabaseConfig       `mapstructure:"casbin_database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Server         ServerConfig         `mapstructure:"server"`
	Authentication AuthenticationConfig `mapstructure:"authentication"`
	Authorization  AuthorizationConfig  `mapstructure:"authorization"`
	Password       PasswordConfig       `mapstructure:"password"`
	Storage        StorageConfig        `mapstructure:"storage"`
	Observability  ObservabilityConfig  `mapstructure:"observability"`
	Logging        LoggingConfig        `mapstructure:"logging"`
}

type DatabaseConfig struct {
	Host       string                  `mapstructure:"host"`
	Port       int                     `mapstructure:"port"`
	User       string                  `mapstructure:"user"`
	Password   string                  `mapstructure:"password"`
	DBName     string                  `mapstructure:"dbname"`
	SSLMode    string                  `mapstructure:"sslmode"`
	Pool       DatabasePoolConfig      `mapstructure:"pool"`
	Migrations DatabaseMigrationConfig `mapstructure:"migrations"`
}

type DatabasePoolConfig struct {
	MaxOpenConns       int `mapstructure:"max_open_conns"`
	MaxIdleConns       int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMin int `mapstructure:"conn_max_lifetime_minutes"`
}

type DatabaseMigrationConfig struct {
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Environment    string     `mapstructure:"environment"` // development | production
	Domain         string     `mapstructure:"domain"`
	Databases      []string   `mapstructure:"databases"`
	CORS           CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAgeSeconds    int      `mapstructure:"max_age_seconds"`
}

type AuthenticationConfig struct {
	Paseto            PasetoConfig `mapstructure:"paseto"`
	SessionTTLMinutes int          `mapstructure:"session_ttl_minutes"`
	// RememberTTLDays is the extended session lifetime used when a login
	// asks to be remembered.
	RememberTTLDays int `mapstructure:"remember_ttl_days"`
}

type PasetoConfig struct {
	Mode             string `mapstructure:"mode"`
	LocalKeyHex      string `mapstructure:"local_key_hex"`
	SecretKeyHex     string `mapstructure:"secret_key_hex"`
	PublicKeyHex     string `mapstructure:"public_key_hex"`
	Issuer           string `mapstructure:"issuer"`
	Audience         string `mapstructure:"audience"`
	AccessTTLMinutes int    `mapstructure:"access_ttl_minutes"`
	RefreshTTLDays   int    `mapstructure:"refresh_ttl_days"`
}

type AuthorizationConfig struct {
	CasbinModelPath string `mapstructure:"casbin_model_path"`
	EnableAudit     bool   `mapstructure:"enable_audit"`
}

type PasswordConfig struct {
	MemoryKiB     uint32 `mapstructure:"memory_kib"`
	Iterations    uint32 `mapstructure:"iterations"`
	Parallelism   uint8  `mapstructure:"parallelism"`
	SaltLength    uint32 `mapstructure:"salt_length"`
	KeyLength     uint32 `mapstructure:"key_length"`
	LowMemoryMode bool   `mapstructure:"low_memory_mode"`
	MinLength     int    `mapstructure:"min_length"`
}

type StorageConfig struct {
	// Backend selects where uploaded documents live: "local" (directory
	// under the working dir, created on first use) or "s3".
	Backend string        `mapstructure:"backend"`
	Local   LocalFSConfig `mapstructure:"local"`
	S3      S3Config      `mapstructure:"s3"`
}

type LocalFSConfig struct {
	Root string `mapstructure:"root"` // default "uploads"
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Bucket          string `mapstructure:"bucket"`
	PresignTTLSec   int    `mapstructure:"presign_ttl_sec"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

func (c *Config) Validate() error {
	return nil
}
