package config

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestCache_Defaults(t *testing.T) {
	c := NewCache(WithLookup(func(string) string { return "" }))

	conn := c.Resolve()
	if conn.URL != DefaultURL {
		t.Errorf("URL = %q, want %q", conn.URL, DefaultURL)
	}
	if conn.User != DefaultUser {
		t.Errorf("User = %q, want %q", conn.User, DefaultUser)
	}
	if conn.Password != DefaultPassword {
		t.Errorf("Password = %q, want %q", conn.Password, DefaultPassword)
	}
}

func TestCache_EnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvURL:      "https://gis.example.com/geoserver",
		EnvUser:     "operator",
		EnvPassword: "s3cret",
	}
	c := NewCache(WithLookup(func(k string) string { return env[k] }))

	conn := c.Resolve()
	if conn.URL != env[EnvURL] || conn.User != env[EnvUser] || conn.Password != env[EnvPassword] {
		t.Errorf("Resolve() = %+v, want values from env", conn)
	}
}

func TestCache_MemoizesFirstResolution(t *testing.T) {
	var calls int32
	c := NewCache(WithLookup(func(k string) string {
		atomic.AddInt32(&calls, 1)
		return ""
	}))

	first := c.Resolve()
	second := c.Resolve()
	if first != second {
		t.Fatalf("Resolve() returned divergent configs: %+v vs %+v", first, second)
	}
	// Three variables read once each, never re-read.
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("lookup called %d times, want 3", n)
	}
}

func TestCache_ConcurrentFirstResolutionIsSingleFlight(t *testing.T) {
	var calls int32
	c := NewCache(WithLookup(func(k string) string {
		atomic.AddInt32(&calls, 1)
		if k == EnvURL {
			return "http://race.example.com/geoserver"
		}
		return ""
	}))

	const n = 64
	results := make([]Connection, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Resolve()
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if results[i] != results[0] {
			t.Fatalf("goroutine %d observed %+v, goroutine 0 observed %+v", i, results[i], results[0])
		}
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("lookup called %d times under concurrency, want 3", got)
	}
}

type staticCreds struct{ pw string }

func (s staticCreds) Password() (string, bool) { return s.pw, s.pw != "" }

func TestCache_CredentialSourceOrder(t *testing.T) {
	// Env wins over the credential source.
	c := NewCache(
		WithLookup(func(k string) string {
			if k == EnvPassword {
				return "from-env"
			}
			return ""
		}),
		WithCredentialSource(staticCreds{pw: "from-secret"}),
	)
	if pw := c.Resolve().Password; pw != "from-env" {
		t.Errorf("Password = %q, want from-env", pw)
	}

	// Credential source wins over the default.
	c = NewCache(
		WithLookup(func(string) string { return "" }),
		WithCredentialSource(staticCreds{pw: "from-secret"}),
	)
	if pw := c.Resolve().Password; pw != "from-secret" {
		t.Errorf("Password = %q, want from-secret", pw)
	}
}

func TestCache_FileConfigFallback(t *testing.T) {
	fc := &FileConfig{URL: "http://file.example.com/geoserver", User: "fileuser"}
	c := NewCache(
		WithLookup(func(k string) string {
			if k == EnvUser {
				return "envuser"
			}
			return ""
		}),
		WithFileConfig(fc),
	)

	conn := c.Resolve()
	if conn.URL != fc.URL {
		t.Errorf("URL = %q, want file value %q", conn.URL, fc.URL)
	}
	if conn.User != "envuser" {
		t.Errorf("User = %q, want env to win over file", conn.User)
	}
}

func TestParse_Validation(t *testing.T) {
	if _, err := Parse([]byte("url: not-a-url")); err == nil {
		t.Error("expected error for relative url")
	}
	if _, err := Parse([]byte("log_level: loud")); err == nil {
		t.Error("expected error for unknown log level")
	}
	if _, err := Parse([]byte("capabilities_ttl_sec: -5")); err == nil {
		t.Error("expected error for negative TTL")
	}

	cfg, err := Parse([]byte("url: http://gs.example.com/geoserver\nuser: admin\nlog_level: debug\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.URL != "http://gs.example.com/geoserver" || cfg.LogLevel != "debug" {
		t.Errorf("Parse = %+v", cfg)
	}
}
