package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchforge/pitchforge/internal/types"
)

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }},
		{name: "port too high", mutate: func(c *Config) { c.Server.Port = 70000 }},
		{name: "zero request timeout", mutate: func(c *Config) { c.Fetcher.RequestTimeout = 0 }},
		{name: "zero body size", mutate: func(c *Config) { c.Fetcher.MaxBodySize = 0 }},
		{name: "negative redirects", mutate: func(c *Config) { c.Fetcher.MaxRedirects = -1 }},
		{name: "zero navigation timeout", mutate: func(c *Config) { c.Browser.NavigationTimeout = 0 }},
		{name: "empty python binary", mutate: func(c *Config) { c.Bridge.PythonBin = "" }},
		{name: "empty script dir", mutate: func(c *Config) { c.Bridge.ScriptDir = "" }},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "trace" }},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestValidate_BridgeFieldsIgnoredWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bridge.Enabled = false
	cfg.Bridge.PythonBin = ""
	cfg.Bridge.ScriptDir = ""

	assert.NoError(t, Validate(cfg))
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https", url: "https://www.aliexpress.com/item/1.html", wantErr: false},
		{name: "http", url: "http://shop.example.com/p/1", wantErr: false},
		{name: "missing scheme", url: "www.example.com/p/1", wantErr: true},
		{name: "ftp scheme", url: "ftp://example.com/p/1", wantErr: true},
		{name: "scheme only", url: "https://", wantErr: true},
		{name: "garbage", url: "not a url", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, types.ErrInvalidURL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
