package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/binhbb2204/Translation-Hub/internal/rating"
	"github.com/binhbb2204/Translation-Hub/pkg/database"
	"github.com/binhbb2204/Translation-Hub/pkg/modelcatalog"
	"github.com/binhbb2204/Translation-Hub/pkg/models"
)

type sample struct {
	source, translated, from, to string
}

var samples = []sample{
	{"Hello", "Bonjour", "en", "fr"},
	{"Good morning", "Buenos días", "en", "es"},
	{"Thank you very much", "Vielen Dank", "en", "de"},
	{"Where is the station?", "駅はどこですか？", "en", "ja"},
	{"Merci beaucoup", "Thank you very much", "fr", "en"},
}

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/translation_ratings.db"
	}
	if err := database.InitDatabase(dbPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	repo := rating.NewDBRepository(database.DB)
	modelIDs := []string{
		modelcatalog.FoundationModels[0].ID,
		modelcatalog.FoundationModels[1].ID,
		modelcatalog.InferenceProfiles[3].ID,
	}

	// Spread across the stats window, a few hours apart, with a mild upward trend.
	now := time.Now().UTC()
	inserted := 0
	for i := 0; i < 40; i++ {
		s := samples[i%len(samples)]
		score := models.MinRating + (i*7+i/8)%models.MaxRating
		if i > 30 && score < 3 {
			score = 4
		}
		_, err := repo.AddRating(context.Background(), &models.Rating{
			SourceText:     s.source,
			TranslatedText: s.translated,
			SourceLanguage: s.from,
			TargetLanguage: s.to,
			ModelID:        modelIDs[i%len(modelIDs)],
			Rating:         score,
			Timestamp:      now.Add(-time.Duration(40-i) * 4 * time.Hour),
		})
		if err != nil {
			log.Fatalf("Failed to insert rating: %v", err)
		}
		inserted++
	}

	log.Printf("Inserted %d rating(s) into %s", inserted, dbPath)
}
