package cache

import (
	"errors"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	tests := []struct {
		op   string
		args []any
		want string
	}{
		{"drivers", nil, "drivers"},
		{"races", []any{2024}, "races:2024"},
		{"race-results", []any{2024, 16}, "race-results:2024:16"},
		{"driver-info", []any{"alonso"}, "driver-info:alonso"},
	}
	for _, tt := range tests {
		if got := Key(tt.op, tt.args...); got != tt.want {
			t.Errorf("Key(%q, %v) = %q, want %q", tt.op, tt.args, got, tt.want)
		}
	}
}

func TestGetSetWithinTTL(t *testing.T) {
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(time.Hour, func() time.Time { return now })

	c.Set("races:2024", "calendar")

	v, ok := c.Get("races:2024")
	if !ok || v != "calendar" {
		t.Errorf("Get = %v, %v", v, ok)
	}

	now = now.Add(59 * time.Minute)
	if _, ok := c.Get("races:2024"); !ok {
		t.Error("entry should survive within the TTL")
	}
}

func TestGetAfterExpiry(t *testing.T) {
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(time.Hour, func() time.Time { return now })

	c.Set("races:2024", "calendar")
	now = now.Add(time.Hour + time.Second)

	if _, ok := c.Get("races:2024"); ok {
		t.Error("entry should expire after the TTL")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, expired entries should be dropped", c.Len())
	}
}

func TestGetMiss(t *testing.T) {
	c := New(time.Hour)
	if _, ok := c.Get("missing"); ok {
		t.Error("miss should report not found")
	}
}

func TestLookupMemoizes(t *testing.T) {
	c := New(time.Hour)
	calls := 0
	fetch := func() ([]string, error) {
		calls++
		return []string{"verstappen", "norris"}, nil
	}

	for i := 0; i < 3; i++ {
		v, err := Lookup(c, "drivers", fetch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(v) != 2 {
			t.Fatalf("len(v) = %d", len(v))
		}
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestLookupDoesNotCacheErrors(t *testing.T) {
	c := New(time.Hour)
	calls := 0
	fetch := func() (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("upstream down")
		}
		return 42, nil
	}

	if _, err := Lookup(c, "answer", fetch); err == nil {
		t.Fatal("first lookup should fail")
	}
	v, err := Lookup(c, "answer", fetch)
	if err != nil {
		t.Fatalf("second lookup should refetch: %v", err)
	}
	if v != 42 {
		t.Errorf("v = %d, want 42", v)
	}
	if calls != 2 {
		t.Errorf("fetch called %d times, want 2", calls)
	}
}

func TestLookupRefetchesAfterExpiry(t *testing.T) {
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(time.Minute, func() time.Time { return now })
	calls := 0
	fetch := func() (string, error) {
		calls++
		return "payload", nil
	}

	if _, err := Lookup(c, "k", fetch); err != nil {
		t.Fatal(err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := Lookup(c, "k", fetch); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("fetch called %d times, want refetch after expiry", calls)
	}
}
