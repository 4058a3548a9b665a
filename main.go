package main

import (
	"log"
	"os"

	"bradfield/csi/algorithms/analyzer/bench"
	"bradfield/csi/algorithms/analyzer/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("analyzer: ")

	cfg := config.Load()
	if !cfg.Seeded {
		log.Printf("seed %d (set %s to reproduce)", cfg.Seed, config.SeedEnv)
	}

	if err := bench.NewRunner(cfg, os.Stdout).Run(); err != nil {
		log.Fatalln(err)
	}
}
