package config

import (
	"testing"

	kit "handoff/internal/platform/testkit"
)

func TestPrefixComposesKeys(t *testing.T) {
	pg := New().Prefix("SERVICE_PGSQL_")
	if got := pg.key("DBURL"); got != "SERVICE_PGSQL_DBURL" {
		t.Fatalf("key() = %q", got)
	}
	nested := pg.Prefix("POOL_")
	if got := nested.key("MAX"); got != "SERVICE_PGSQL_POOL_MAX" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMustStringTrimsAndPanics(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  handoff ")
	if got := c.MustString("NAME"); got != "handoff" {
		t.Fatalf("MustString = %q", got)
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })

	t.Setenv("APP_BLANK", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("BLANK") })
}

func TestMayStringDefault(t *testing.T) {
	c := New().Prefix("API_")
	if got := c.MayString("PORT", ":4000"); got != ":4000" {
		t.Fatalf("missing key = %q, want default", got)
	}
	t.Setenv("API_PORT", ":9999")
	if got := c.MayString("PORT", ":4000"); got != ":9999" {
		t.Fatalf("set key = %q", got)
	}
}

func TestMayIntFallsBackOnGarbage(t *testing.T) {
	c := New().Prefix("SCAN_")
	if got := c.MayInt("WORKERS", 4); got != 4 {
		t.Fatalf("missing = %d", got)
	}
	t.Setenv("SCAN_WORKERS", "8")
	if got := c.MayInt("WORKERS", 4); got != 8 {
		t.Fatalf("set = %d", got)
	}
	t.Setenv("SCAN_WORKERS", "eight")
	if got := c.MayInt("WORKERS", 4); got != 4 {
		t.Fatalf("garbage = %d, want default", got)
	}
}

func TestMayBoolFallsBackOnGarbage(t *testing.T) {
	c := New().Prefix("PG_")
	if c.MayBool("LOG_SQL", false) {
		t.Fatal("missing should use default false")
	}
	t.Setenv("PG_LOG_SQL", "true")
	if !c.MayBool("LOG_SQL", false) {
		t.Fatal("set true not read")
	}
	t.Setenv("PG_LOG_SQL", "maybe")
	if c.MayBool("LOG_SQL", false) {
		t.Fatal("garbage should use default")
	}
}
