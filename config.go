package httpexec

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Protocol selects the transport variant behind the Executor contract.
const (
	// ProtocolHTTP1 issues one request per borrowed *http.Client handle.
	ProtocolHTTP1 = "http/1.1"
	// ProtocolH2 opens one stream per call on a long-lived HTTP/2 session.
	ProtocolH2 = "h2"
)

const defaultTimeout = 30 * time.Second

// Config configures an Executor.
type Config struct {
	// Name identifies this executor in logs and components.
	Name string `yaml:"name" mapstructure:"name"`

	// Scheme is "http" or "https". Defaults to "http".
	Scheme string `yaml:"scheme" mapstructure:"scheme"`

	// Host is the remote host, without port.
	Host string `yaml:"host" mapstructure:"host"`

	// Port is the remote port. Defaults to 80 or 443 by scheme.
	Port int `yaml:"port" mapstructure:"port"`

	// PathPrefix is prepended to every request path.
	PathPrefix string `yaml:"path_prefix" mapstructure:"path_prefix"`

	// Protocol selects the transport variant. Defaults to ProtocolHTTP1.
	Protocol string `yaml:"protocol" mapstructure:"protocol"`

	// Timeout bounds the full round-trip of one call. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Auth configures default authentication applied to all requests.
	// Individual requests can override this.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// TLS configures TLS settings for the transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// WriteCharset fixes the outgoing body encoding by name. Empty means
	// resolve from the finalized request headers with UTF-8 fallback.
	WriteCharset string `yaml:"write_charset" mapstructure:"write_charset"`

	// ReadCharset fixes the incoming body encoding by name. Empty means
	// resolve from the response headers with UTF-8 fallback.
	ReadCharset string `yaml:"read_charset" mapstructure:"read_charset"`

	// AllowProtoKeys keeps "__proto__" properties in decoded response
	// payloads instead of stripping them.
	AllowProtoKeys bool `yaml:"allow_proto_keys" mapstructure:"allow_proto_keys"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Scheme == "" {
		c.Scheme = "http"
	}
	if c.Port == 0 {
		if c.Scheme == "https" {
			c.Port = 443
		} else {
			c.Port = 80
		}
	}
	if c.Protocol == "" {
		c.Protocol = ProtocolHTTP1
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("httpexec: host is required")
	}
	if c.Scheme != "http" && c.Scheme != "https" {
		return fmt.Errorf("httpexec: scheme must be http or https (got: %s)", c.Scheme)
	}
	if c.Protocol != ProtocolHTTP1 && c.Protocol != ProtocolH2 {
		return fmt.Errorf("httpexec: protocol must be %q or %q (got: %s)", ProtocolHTTP1, ProtocolH2, c.Protocol)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("httpexec: timeout must be positive")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Address returns the host:port dial target.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// BaseURL returns the scheme://host:port origin, omitting default ports.
func (c *Config) BaseURL() string {
	if (c.Scheme == "http" && c.Port == 80) || (c.Scheme == "https" && c.Port == 443) {
		return c.Scheme + "://" + c.Host
	}
	return c.Scheme + "://" + c.Address()
}

// LoadConfig reads an executor config from a YAML file, layering
// HTTPEXEC_-prefixed environment variables on top. An optional .env file
// next to the config file is loaded first when present.
func LoadConfig(path string) (Config, error) {
	if envFile := siblingEnvFile(path); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("httpexec: load env file: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("HTTPEXEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("httpexec: read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("httpexec: unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// siblingEnvFile returns the .env path next to the config file, or "".
func siblingEnvFile(configPath string) string {
	dir := "."
	if i := strings.LastIndexByte(configPath, '/'); i >= 0 {
		dir = configPath[:i]
	}
	envFile := dir + "/.env"
	if _, err := os.Stat(envFile); err != nil {
		return ""
	}
	return envFile
}
