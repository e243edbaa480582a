package cache_test

import (
	"testing"
	"time"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/infra/cache"
)

func TestCache_SetAndGet(t *testing.T) {
	c := cache.New[*domain.GoldRateSnapshot](5 * time.Minute)

	c.Set("gold_rates", &domain.GoldRateSnapshot{Gold22K: "₹68,400 / 10g", Location: "Mumbai"})
	val, ok := c.Get("gold_rates")
	if !ok {
		t.Fatal("expected key to exist")
	}
	if val.Location != "Mumbai" {
		t.Errorf("expected location 'Mumbai', got '%s'", val.Location)
	}
}

func TestCache_GetMiss(t *testing.T) {
	c := cache.New[string](5 * time.Minute)

	_, ok := c.Get("nonexistent")
	if ok {
		t.Fatal("expected cache miss for nonexistent key")
	}
}

func TestCache_Expiration(t *testing.T) {
	c := cache.New[string](50 * time.Millisecond)

	c.Set("key1", "value1")
	time.Sleep(100 * time.Millisecond)

	_, ok := c.Get("key1")
	if ok {
		t.Fatal("expected cache entry to be expired")
	}
}

func TestCache_Delete(t *testing.T) {
	c := cache.New[string](5 * time.Minute)

	c.Set("key1", "value1")
	c.Delete("key1")

	_, ok := c.Get("key1")
	if ok {
		t.Fatal("expected key to be deleted")
	}
}
