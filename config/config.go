package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// SeedEnv optionally fixes the base seed so runs can be reproduced.
const SeedEnv = "ANALYZER_SEED"

// Input sizes every algorithm is measured at, in order.
var Sizes = []int{100, 500, 1000}

type Config struct {
	Sizes []int
	Seed  int64
	// Seeded is true when Seed came from the environment.
	Seeded bool
}

func Default() *Config {
	sizes := make([]int, len(Sizes))
	copy(sizes, Sizes)
	return &Config{
		Sizes: sizes,
		Seed:  time.Now().UnixNano(),
	}
}

// Load never fails: a malformed seed is reported and the clock seed kept.
func Load() *Config {
	cfg := Default()

	raw, ok := os.LookupEnv(SeedEnv)
	if !ok || raw == "" {
		return cfg
	}

	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", SeedEnv, raw, err)
		return cfg
	}
	cfg.Seed = seed
	cfg.Seeded = true

	return cfg
}
