package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](time.Minute)

	_, ok := c.Get("a")
	if ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set("a", 42)
	v, ok := c.Get("a")
	if !ok || v != 42 {
		t.Fatalf("Get(a) = %d, %v; want 42, true", v, ok)
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New[string, int](10 * time.Millisecond)
	c.Set("a", 1)

	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected hit before TTL")
	}

	time.Sleep(15 * time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss after TTL expiry")
	}
}

func TestCache_ZeroTTLDisables(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1)
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss with caching disabled")
	}
}

func TestCache_LoadSingleflight(t *testing.T) {
	c := New[string, string](time.Minute)

	var loads int32
	started := make(chan struct{})
	release := make(chan struct{})
	loader := func() (string, error) {
		atomic.AddInt32(&loads, 1)
		close(started)
		<-release
		return "doc", nil
	}

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Load("caps", loader)
			if err != nil {
				t.Errorf("Load: %v", err)
			}
			results[i] = v
		}(i)
	}

	<-started
	close(release)
	wg.Wait()

	if n := atomic.LoadInt32(&loads); n != 1 {
		t.Errorf("loader ran %d times, want 1", n)
	}
	for i, v := range results {
		if v != "doc" {
			t.Errorf("result[%d] = %q, want doc", i, v)
		}
	}
}

func TestCache_LoadErrorNotCached(t *testing.T) {
	c := New[string, string](time.Minute)

	boom := errors.New("boom")
	if _, err := c.Load("k", func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("Load err = %v, want boom", err)
	}

	v, err := c.Load("k", func() (string, error) { return "ok", nil })
	if err != nil || v != "ok" {
		t.Fatalf("Load after error = %q, %v; want ok, nil", v, err)
	}
}

func TestCache_Stats(t *testing.T) {
	c := New[string, int](time.Minute)
	c.Get("a")
	c.Set("a", 1)
	c.Get("a")

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("Stats = %+v, want 1 hit 1 miss", s)
	}
}
