package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"coach-planner-backend/internal/config"
	"coach-planner-backend/internal/database"
	"coach-planner-backend/internal/database/models"
	"coach-planner-backend/internal/repository"
	"coach-planner-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that mirror the service requests
type PlayerData struct {
	Name          string `yaml:"name"`
	Position      string `yaml:"position"`
	Control       string `yaml:"control"`
	Passing       string `yaml:"passing"`
	Participation string `yaml:"participation"`
	Attitude      string `yaml:"attitude"`
	Comments      string `yaml:"comments,omitempty"`
}

type MatchData struct {
	Date           string `yaml:"date"`
	Opponent       string `yaml:"opponent"`
	Objective      string `yaml:"objective,omitempty"`
	Observations   string `yaml:"observations,omitempty"`
	Successes      string `yaml:"successes,omitempty"`
	ToCorrect      string `yaml:"to_correct,omitempty"`
	WeeklyProposal string `yaml:"weekly_proposal,omitempty"`
}

type TeamData struct {
	Name     string       `yaml:"name"`
	Category string       `yaml:"category"`
	Age      string       `yaml:"age"`
	Level    string       `yaml:"level"`
	Season   string       `yaml:"season"`
	Players  []PlayerData `yaml:"players,omitempty"`
	Matches  []MatchData  `yaml:"matches,omitempty"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo, err := openRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to open state backend: %v", err)
	}

	stateService := service.NewStateService(repo, cfg.StateKey, nil, nil, nil)

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(context.Background(), stateService, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func openRepository(cfg *config.Config) (repository.StateRepositoryInterface, error) {
	switch cfg.StateBackend {
	case config.BackendFile:
		return repository.NewFileStateRepository(cfg.StateFileDir, cfg.StateMaxBytes)
	case config.BackendPostgres:
		// Connect to database with retry (for dockerized Postgres startup)
		db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
		if err != nil {
			return nil, err
		}
		return repository.NewStateRepository(db), nil
	case config.BackendRedis:
		client, err := repository.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisStateRepository(client), nil
	}
	return nil, fmt.Errorf("backend %q cannot be seeded, its data does not outlive this process", cfg.StateBackend)
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(ctx context.Context, stateService *service.StateService, dataDir string) error {
	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	existing, err := stateService.ListTeams(ctx)
	if err != nil {
		return fmt.Errorf("failed to list teams: %w", err)
	}
	byName := make(map[string]bool, len(existing))
	for _, team := range existing {
		byName[team.Name] = true
	}

	teamCreated, playerCreated, matchCreated := 0, 0, 0
	for _, teamData := range teams {
		// Teams are matched by name so the script can be rerun
		if byName[teamData.Name] {
			continue
		}

		team, err := stateService.CreateTeam(ctx, &service.CreateTeamRequest{
			Name:     teamData.Name,
			Category: models.Category(teamData.Category),
			Age:      teamData.Age,
			Level:    models.Level(teamData.Level),
			Season:   teamData.Season,
		})
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		byName[team.Name] = true
		teamCreated++

		for _, p := range teamData.Players {
			if _, err := stateService.CreatePlayer(ctx, team.ID, &service.PlayerRequest{
				Name:          p.Name,
				Position:      models.Position(p.Position),
				Control:       ratingOrDefault(p.Control),
				Passing:       ratingOrDefault(p.Passing),
				Participation: ratingOrDefault(p.Participation),
				Attitude:      ratingOrDefault(p.Attitude),
				Comments:      p.Comments,
			}); err != nil {
				return fmt.Errorf("failed to create player %s in %s: %w", p.Name, teamData.Name, err)
			}
			playerCreated++
		}

		for _, m := range teamData.Matches {
			if _, err := stateService.CreateMatch(ctx, team.ID, &service.MatchRequest{
				Date:           m.Date,
				Opponent:       m.Opponent,
				Objective:      m.Objective,
				Observations:   m.Observations,
				Successes:      m.Successes,
				ToCorrect:      m.ToCorrect,
				WeeklyProposal: m.WeeklyProposal,
			}); err != nil {
				return fmt.Errorf("failed to create match vs %s in %s: %w", m.Opponent, teamData.Name, err)
			}
			matchCreated++
		}
	}

	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))
	log.Printf("📋 Players: %d created", playerCreated)
	log.Printf("📋 Matches: %d created", matchCreated)
	return nil
}

func ratingOrDefault(r string) models.PlayerRating {
	if r == "" {
		return models.RatingIgual
	}
	return models.PlayerRating(r)
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}
