package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"proplist/internal/config"
	"proplist/internal/db"
	"proplist/internal/model"
	"proplist/internal/repository"
)

// SeedLocationData is the on-disk shape of a location seed entry.
type SeedLocationData struct {
	Province    string `json:"province"`
	City        string `json:"city"`
	Suburb      string `json:"suburb"`
	Coordinates string `json:"coordinates"`
}

// defaultLocations is used when no seed file is given.
var defaultLocations = []SeedLocationData{
	{Province: "Gauteng", City: "Johannesburg", Suburb: "Sandton", Coordinates: "-26.1076, 28.0567"},
	{Province: "Gauteng", City: "Pretoria", Suburb: "Hatfield", Coordinates: "-25.7487, 28.2380"},
	{Province: "Western Cape", City: "Cape Town", Suburb: "Sea Point", Coordinates: "-33.9180, 18.3898"},
	{Province: "KwaZulu-Natal", City: "Durban", Suburb: "Umhlanga", Coordinates: "-29.7266, 31.0826"},
}

func main() {
	seedFile := flag.String("file", "", "JSON file with locations to seed (defaults to a built-in set)")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Location{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	entries := defaultLocations
	if *seedFile != "" {
		data, err := os.ReadFile(*seedFile)
		if err != nil {
			log.Fatalf("Failed to read seed file: %v", err)
		}
		entries = nil
		if err := json.Unmarshal(data, &entries); err != nil {
			log.Fatalf("Failed to parse seed file: %v", err)
		}
	}

	locationRepo := repository.NewLocationRepository(gormDB)

	ctx := context.Background()
	created := 0
	for _, entry := range entries {
		if entry.Province == "" || entry.City == "" || entry.Suburb == "" || entry.Coordinates == "" {
			log.Printf("Skipping incomplete location entry: %+v", entry)
			continue
		}
		location := &model.Location{
			Province:    entry.Province,
			City:        entry.City,
			Suburb:      entry.Suburb,
			Coordinates: entry.Coordinates,
		}
		if err := locationRepo.Create(ctx, location); err != nil {
			log.Printf("Failed to create location %s/%s: %v", entry.City, entry.Suburb, err)
			continue
		}
		created++
	}

	log.Printf("Seed complete: %d locations created", created)
}
