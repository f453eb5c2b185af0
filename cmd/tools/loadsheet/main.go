package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/akeane/grantsheet/internal/ai"
	"github.com/akeane/grantsheet/internal/db"
	"github.com/akeane/grantsheet/internal/enrich"
)

func main() {
	input := flag.String("input", "grants_enriched.csv", "Path to the enriched grants CSV")
	embed := flag.Bool("embed", false, "Generate embeddings after loading")
	flag.Parse()

	sheet, err := enrich.ReadSheet(*input)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *input, err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	store := db.NewStore(pool)
	loaded := 0
	for _, row := range sheet.Rows {
		if _, err := store.UpsertGrant(ctx, enrich.ToGrant(row)); err != nil {
			log.Fatalf("Failed to upsert %q: %v", row[enrich.ColGrantName], err)
		}
		loaded++
	}
	log.Printf("Loaded %d grants from %s", loaded, *input)

	if !*embed {
		return
	}

	client := ai.NewOllamaClient(os.Getenv("OLLAMA_HOST"), "", "")
	pending, err := store.GrantsWithoutEmbedding(ctx, len(sheet.Rows))
	if err != nil {
		log.Fatalf("Failed to list unembedded grants: %v", err)
	}

	embedded := 0
	for id, text := range pending {
		vec, err := client.GenerateEmbedding(ctx, text)
		if err != nil {
			log.Printf("Embedding failed for %s: %v", id, err)
			continue
		}
		if err := store.UpdateEmbedding(ctx, id, vec); err != nil {
			log.Fatalf("Failed to store embedding for %s: %v", id, err)
		}
		embedded++
	}
	log.Printf("Embedded %d of %d pending grants", embedded, len(pending))
}
