package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// desktopUserAgent is sent on every outbound page fetch, rendered or static.
const desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Config is the root configuration for pitchforge.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  yaml:"server"`
	Fetcher FetcherConfig `mapstructure:"fetcher" yaml:"fetcher"`
	Browser BrowserConfig `mapstructure:"browser" yaml:"browser"`
	Bridge  BridgeConfig  `mapstructure:"bridge"  yaml:"bridge"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig controls the inbound HTTP API.
type ServerConfig struct {
	Port              int           `mapstructure:"port"                yaml:"port"`
	AllowedOrigins    []string      `mapstructure:"allowed_origins"     yaml:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	DocsEnabled       bool          `mapstructure:"docs_enabled"        yaml:"docs_enabled"`
	SpecDir           string        `mapstructure:"spec_dir"            yaml:"spec_dir"`
}

// FetcherConfig controls the static page fetcher.
type FetcherConfig struct {
	UserAgent       string        `mapstructure:"user_agent"        yaml:"user_agent"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"   yaml:"request_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"     yaml:"max_body_size"`
	FollowRedirects bool          `mapstructure:"follow_redirects"  yaml:"follow_redirects"`
	MaxRedirects    int           `mapstructure:"max_redirects"     yaml:"max_redirects"`
	TLSInsecure     bool          `mapstructure:"tls_insecure"      yaml:"tls_insecure"`
	IdleConnTimeout time.Duration `mapstructure:"idle_conn_timeout" yaml:"idle_conn_timeout"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    yaml:"max_idle_conns"`
}

// BrowserConfig controls the headless-browser renderer.
type BrowserConfig struct {
	NavigationTimeout time.Duration `mapstructure:"navigation_timeout" yaml:"navigation_timeout"`
	StableWait        time.Duration `mapstructure:"stable_wait"        yaml:"stable_wait"`
	Headless          bool          `mapstructure:"headless"           yaml:"headless"`
	Stealth           bool          `mapstructure:"stealth"            yaml:"stealth"`
	UserAgent         string        `mapstructure:"user_agent"         yaml:"user_agent"`
}

// BridgeConfig controls the external Python scraper subprocess.
type BridgeConfig struct {
	Enabled       bool          `mapstructure:"enabled"        yaml:"enabled"`
	PythonBin     string        `mapstructure:"python_bin"     yaml:"python_bin"`
	ScriptDir     string        `mapstructure:"script_dir"     yaml:"script_dir"`
	ProbeTimeout  time.Duration `mapstructure:"probe_timeout"  yaml:"probe_timeout"`
	InvokeTimeout time.Duration `mapstructure:"invoke_timeout" yaml:"invoke_timeout"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	Output string `mapstructure:"output" yaml:"output"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              3001,
			AllowedOrigins:    []string{"*"},
			ReadHeaderTimeout: 15 * time.Second,
			DocsEnabled:       true,
			SpecDir:           "./api",
		},
		Fetcher: FetcherConfig{
			UserAgent:       desktopUserAgent,
			RequestTimeout:  10 * time.Second,
			MaxBodySize:     10 * 1024 * 1024, // 10MB
			FollowRedirects: true,
			MaxRedirects:    10,
			IdleConnTimeout: 90 * time.Second,
			MaxIdleConns:    100,
		},
		Browser: BrowserConfig{
			NavigationTimeout: 30 * time.Second,
			StableWait:        300 * time.Millisecond,
			Headless:          true,
			Stealth:           false,
			UserAgent:         desktopUserAgent,
		},
		Bridge: BridgeConfig{
			Enabled:       true,
			PythonBin:     "python",
			ScriptDir:     "./scrapers",
			ProbeTimeout:  5 * time.Second,
			InvokeTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}
