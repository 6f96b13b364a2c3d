// salonhub-stub runs the development stand-in for the salon platform
// API so the dashboard CLI can be used without the real backend.
package main

import (
	"flag"
	"log"

	"salonhub/internal/config"
	"salonhub/internal/stub"
)

func main() {
	seed := flag.Bool("seed", false, "seed demo data into an empty database")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := stub.Open(cfg.StubDSN)
	if err != nil {
		log.Fatal(err)
	}

	server, err := stub.New(db, cfg.StubJWTSecret)
	if err != nil {
		log.Fatal(err)
	}

	if *seed {
		if err := stub.Seed(db); err != nil {
			log.Fatal(err)
		}
		log.Println("seeded demo data (admin@salonhub.dev / owner@salonhub.dev)")
	}

	log.Printf("stub API listening on %s", cfg.StubAddr)
	if err := server.Router().Run(cfg.StubAddr); err != nil {
		log.Fatal(err)
	}
}
