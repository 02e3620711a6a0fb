package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Isak-k/Sanbitu-FC/internal/config"
	"github.com/Isak-k/Sanbitu-FC/internal/database"
	"github.com/Isak-k/Sanbitu-FC/internal/database/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a demo season: an admin account, a full roster, fixtures with
// results, lineups, match events, announcements. Intended for local
// development only; refuses to run against a non-empty database.

var rosterPlan = []struct {
	position models.PlayerPosition
	count    int
}{
	{models.PositionGoalkeeper, 2},
	{models.PositionDefender, 7},
	{models.PositionMidfielder, 7},
	{models.PositionForward, 4},
}

var opponents = []string{
	"Riverton Rovers", "Eastfield United", "Harbor Athletic", "Oakwood Town",
	"Millbrook FC", "Stonegate Wanderers", "Lakeside City", "Northbridge FC",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		log.Fatalf("Failed to inspect database: %v", err)
	}
	if userCount > 0 {
		log.Fatal("Database already contains users, refusing to seed")
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Demo season seeded. Sign in as admin@sanbitufc.com / changeme123")
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		admin, err := seedAdmin(tx)
		if err != nil {
			return err
		}

		players, err := seedRoster(tx)
		if err != nil {
			return err
		}

		if err := seedSeason(tx, players); err != nil {
			return err
		}

		return seedAnnouncements(tx, admin)
	})
}

func seedAdmin(tx *gorm.DB) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &models.User{
		Email:        "admin@sanbitufc.com",
		PasswordHash: string(hash),
		FirstName:    "Club",
		LastName:     "Admin",
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	if err := tx.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	log.Printf("Created administrator %s", admin.Email)
	return admin, nil
}

func seedRoster(tx *gorm.DB) ([]models.Player, error) {
	var players []models.Player
	number := 1

	for _, plan := range rosterPlan {
		for i := 0; i < plan.count; i++ {
			player := models.Player{
				FirstName:    gofakeit.FirstName(),
				LastName:     gofakeit.LastName(),
				JerseyNumber: number,
				Position:     plan.position,
				IsActive:     true,
			}
			if err := tx.Create(&player).Error; err != nil {
				return nil, fmt.Errorf("failed to create player %d: %w", number, err)
			}
			players = append(players, player)
			number++
		}
	}

	log.Printf("Created %d roster players", len(players))
	return players, nil
}

func seedSeason(tx *gorm.DB, players []models.Player) error {
	now := time.Now()

	for i, opponent := range opponents {
		// First half of the fixtures is in the past and played,
		// the rest is upcoming
		played := i < len(opponents)/2
		kickoff := now.AddDate(0, 0, (i-len(opponents)/2)*14).Truncate(time.Hour)

		venue := models.VenueHome
		if i%2 == 1 {
			venue = models.VenueAway
		}

		match := models.Match{
			Opponent:    opponent,
			KickoffAt:   kickoff,
			Venue:       venue,
			Competition: "League",
			Status:      models.MatchStatusScheduled,
		}
		if played {
			homeGoals := gofakeit.Number(0, 4)
			awayGoals := gofakeit.Number(0, 3)
			match.Status = models.MatchStatusPlayed
			match.HomeGoals = &homeGoals
			match.AwayGoals = &awayGoals
		}
		if err := tx.Create(&match).Error; err != nil {
			return fmt.Errorf("failed to create match vs %s: %w", opponent, err)
		}

		if played {
			if err := seedMatchDetails(tx, &match, players); err != nil {
				return err
			}
		}
	}

	log.Printf("Created %d fixtures", len(opponents))
	return nil
}

func seedMatchDetails(tx *gorm.DB, match *models.Match, players []models.Player) error {
	// Starting eleven plus three substitutes from the front of the roster
	squadSize := 14
	if squadSize > len(players) {
		squadSize = len(players)
	}

	for i := 0; i < squadSize; i++ {
		role := models.LineupRoleStarting
		if i >= 11 {
			role = models.LineupRoleSubstitute
		}
		entry := models.LineupEntry{
			MatchID:     match.ID,
			PlayerID:    players[i].ID,
			Role:        role,
			ShirtNumber: players[i].JerseyNumber,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to create lineup entry: %w", err)
		}
	}

	goals := 0
	if match.HomeGoals != nil {
		goals = *match.HomeGoals
	}
	for g := 0; g < goals; g++ {
		scorer := players[gofakeit.Number(0, 10)]
		event := models.MatchEvent{
			MatchID:  match.ID,
			PlayerID: &scorer.ID,
			Type:     models.EventTypeGoal,
			Minute:   gofakeit.Number(1, 90),
		}
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create match event: %w", err)
		}
	}

	return nil
}

func seedAnnouncements(tx *gorm.DB, author *models.User) error {
	announcements := []models.Announcement{
		{
			Title:       "Welcome to the new club portal",
			Body:        "Fixtures, results, lineups and club news now all live in one place. Sign in with your member account to get started.",
			Pinned:      true,
			AuthorID:    &author.ID,
			PublishedAt: time.Now().AddDate(0, 0, -30),
		},
		{
			Title:       "Season ticket renewals open",
			Body:        "Renewals for the coming season are open until the end of the month. Contact the club office for details.",
			Pinned:      false,
			AuthorID:    &author.ID,
			PublishedAt: time.Now().AddDate(0, 0, -7),
		},
		{
			Title:       "Training moved to the east pitch",
			Body:        "Due to maintenance on the main pitch, all training sessions this week take place on the east pitch.",
			Pinned:      false,
			AuthorID:    &author.ID,
			PublishedAt: time.Now().AddDate(0, 0, -2),
		},
	}

	for i := range announcements {
		if err := tx.Create(&announcements[i]).Error; err != nil {
			return fmt.Errorf("failed to create announcement: %w", err)
		}
	}

	log.Printf("Created %d announcements", len(announcements))
	return nil
}
