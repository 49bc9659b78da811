package config

import (
	"testing"
	"time"
)

func TestParseMethods(t *testing.T) {
	cases := []struct {
		in   string
		want []string
		size int
	}{
		{"GET", []string{"GET"}, 1},
		{"get, head", []string{"GET", "HEAD"}, 2},
		{" get ,,head, ", []string{"GET", "HEAD"}, 2},
		{"", nil, 0},
	}
	for _, tc := range cases {
		m := parseMethods(tc.in)
		if len(m) != tc.size {
			t.Errorf("parseMethods(%q) has %d entries, want %d", tc.in, len(m), tc.size)
		}
		for _, k := range tc.want {
			if !m[k] {
				t.Errorf("parseMethods(%q) missing %q", tc.in, k)
			}
		}
	}
}

func TestParseDur(t *testing.T) {
	if d := parseDur("90s"); d != 90*time.Second {
		t.Errorf("parseDur(90s) = %v", d)
	}
	if d := parseDur("garbage"); d != time.Second {
		t.Errorf("parseDur fallback = %v, want 1s", d)
	}
}

func TestGetenvDefault(t *testing.T) {
	t.Setenv("CACHE_TEST_KEY", "set")
	if v := getenv("CACHE_TEST_KEY", "def"); v != "set" {
		t.Errorf("getenv returned %q, want set", v)
	}
	if v := getenv("CACHE_TEST_MISSING_KEY", "def"); v != "def" {
		t.Errorf("getenv default = %q, want def", v)
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	for _, k := range []string{"CACHE_ENABLED", "CACHE_METHODS", "CACHE_TTL", "CACHE_KEY_STRATEGY", "CACHE_PREFIX"} {
		t.Setenv(k, "")
	}
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Error("cache should default to enabled")
	}
	if !cfg.Methods["GET"] {
		t.Error("GET should be cached by default")
	}
	if cfg.TTL != 60*time.Second {
		t.Errorf("TTL = %v, want 60s", cfg.TTL)
	}
	if cfg.KeyStrategy != "route_query" || cfg.Prefix != "cache" {
		t.Errorf("strategy/prefix = %q/%q", cfg.KeyStrategy, cfg.Prefix)
	}
}
