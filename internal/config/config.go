package config

import (
	"os"
	"sync"
)

// Environment variables read by the connection cache.
const (
	EnvURL      = "GEOSERVER_URL"
	EnvUser     = "GEOSERVER_USER"
	EnvPassword = "GEOSERVER_PASSWORD"
)

// Defaults applied when the corresponding value is absent everywhere.
const (
	DefaultURL      = "http://localhost:8080/geoserver"
	DefaultUser     = "admin"
	DefaultPassword = "geoserver"
)

// Connection holds the GeoServer connection parameters. Immutable once
// resolved; shared by reference with every client build.
type Connection struct {
	URL      string
	User     string
	Password string
}

// CredentialSource supplies a password from somewhere other than the
// environment (e.g. an encrypted secret file). Consulted only when
// GEOSERVER_PASSWORD is unset.
type CredentialSource interface {
	Password() (string, bool)
}

// Cache resolves the GeoServer connection parameters at most once per
// process. Connection identity is a process-level fact: a changed
// environment value only takes effect after restart. Concurrent first
// calls to Resolve observe the same Connection.
type Cache struct {
	once   sync.Once
	conn   Connection
	lookup func(string) string
	file   *FileConfig
	creds  CredentialSource
}

// Option configures a Cache before first resolution.
type Option func(*Cache)

// WithLookup overrides the environment lookup function. Tests use this
// to isolate resolution from the real process environment.
func WithLookup(fn func(string) string) Option {
	return func(c *Cache) { c.lookup = fn }
}

// WithFileConfig supplies file-level fallback values, consulted after
// the environment and before the built-in defaults.
func WithFileConfig(fc *FileConfig) Option {
	return func(c *Cache) { c.file = fc }
}

// WithCredentialSource supplies an out-of-band password source,
// consulted after the environment and file config.
func WithCredentialSource(cs CredentialSource) Option {
	return func(c *Cache) { c.creds = cs }
}

// NewCache creates an unresolved connection cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{lookup: os.Getenv}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Resolve returns the connection parameters, reading external state on
// the first call only. sync.Once guarantees single-flight resolution
// under concurrent first access.
func (c *Cache) Resolve() Connection {
	c.once.Do(func() {
		c.conn = Connection{
			URL:      c.resolveValue(EnvURL, c.fileURL(), DefaultURL),
			User:     c.resolveValue(EnvUser, c.fileUser(), DefaultUser),
			Password: c.resolvePassword(),
		}
	})
	return c.conn
}

func (c *Cache) resolveValue(env, fileVal, def string) string {
	if v := c.lookup(env); v != "" {
		return v
	}
	if fileVal != "" {
		return fileVal
	}
	return def
}

func (c *Cache) resolvePassword() string {
	if v := c.lookup(EnvPassword); v != "" {
		return v
	}
	if c.file != nil && c.file.Password != "" {
		return c.file.Password
	}
	if c.creds != nil {
		if v, ok := c.creds.Password(); ok {
			return v
		}
	}
	return DefaultPassword
}

func (c *Cache) fileURL() string {
	if c.file == nil {
		return ""
	}
	return c.file.URL
}

func (c *Cache) fileUser() string {
	if c.file == nil {
		return ""
	}
	return c.file.User
}
