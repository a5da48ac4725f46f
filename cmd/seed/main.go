package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"eco-restaurants/pkg/container"
	"eco-restaurants/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	yes := flag.Bool("yes", false, "wipe existing restaurants without asking")
	file := flag.String("file", "", "JSON file with restaurants to load instead of the built-in sample")
	flag.Parse()

	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))

	raw := defaultData
	if *file != "" {
		var err error
		if raw, err = os.ReadFile(*file); err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("❌ Failed to read seed file")
		}
	}
	data, err := loadData(raw)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Invalid seed data")
	}

	appContainer, err := container.NewContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize container")
	}
	defer appContainer.Cleanup()

	s := &seeder{
		store:   appContainer.RestaurantStore,
		service: appContainer.RestaurantService,
		confirm: func(prompt string) bool {
			if *yes {
				return true
			}
			return askYesNo(prompt)
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Info().Int("records", len(data)).Msg("🌱 Seeding restaurants...")
	if _, err := s.run(ctx, data); err != nil {
		logger.Error("❌ Seed failed", err)
		return
	}
}

func askYesNo(prompt string) bool {
	fmt.Print(prompt)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
