// Command importer seeds the jobs table from the flat CSV file, so a
// Postgres deployment serves the same records the csv source would.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/artem13815/jobboard/pkg/config"
	"github.com/artem13815/jobboard/pkg/job"
	pgrepo "github.com/artem13815/jobboard/pkg/repository/postgres"
	csvsource "github.com/artem13815/jobboard/pkg/source/csv"
	"github.com/artem13815/jobboard/pkg/storage/postgres"
)

func main() {
	cfg := config.Load()
	csvPath := flag.String("csv", cfg.JobsCSVPath, "path to the jobs CSV file")
	dsn := flag.String("dsn", cfg.DatabaseURL, "PostgreSQL connection string")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("database DSN required: pass -dsn or set DATABASE_URL")
	}

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, *dsn)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()

	repo, err := pgrepo.NewJobRepository(pool)
	if err != nil {
		log.Fatalf("init job repo: %v", err)
	}

	source := csvsource.NewSource(*csvPath)
	jobs, err := source.List(ctx, job.Query{Limit: -1})
	if err != nil {
		log.Fatalf("load %s: %v", *csvPath, err)
	}

	for _, j := range jobs {
		if err := repo.Upsert(ctx, j); err != nil {
			log.Fatalf("upsert %s: %v", j.ID, err)
		}
	}
	log.Printf("imported %d jobs from %s", len(jobs), *csvPath)
}
