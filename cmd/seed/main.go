package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"vocab-builder/cmd/seed/internal/seedmodels"
	"vocab-builder/internal/config"
	"vocab-builder/internal/database"
	"vocab-builder/internal/domain"
	"vocab-builder/internal/logger"
	"vocab-builder/internal/repository"
	"vocab-builder/internal/service"

	"go.uber.org/zap"
)

//go:embed seed_data/initial_data.json
var defaultSeedData []byte

func main() {
	seedFile := flag.String("file", "", "path to a seed JSON file (defaults to the embedded data)")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	data := defaultSeedData
	if *seedFile != "" {
		log.Info("Loading seed data from file", zap.String("path", *seedFile))
		if data, err = os.ReadFile(*seedFile); err != nil {
			log.Fatal("Failed to read seed file", zap.String("path", *seedFile), zap.Error(err))
		}
	}

	var seed seedmodels.SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}

	db, err := database.NewSQLXDB(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(ctx, db, database.Up); err != nil {
			log.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	s := &seeder{
		users:     repository.NewSQLXUserRepository(db),
		words:     repository.NewSQLXVocabularyRepository(db),
		txManager: repository.NewTransactionManagerAdapter(db),
		log:       log,
	}

	log.Info("Starting initial data seeding process...", zap.Int("users", len(seed.Users)))
	for _, su := range seed.Users {
		if err := s.seedUser(ctx, su); err != nil {
			log.Error("Error seeding user, transaction rolled back", zap.String("username", su.Username), zap.Error(err))
		}
	}
	log.Info("Initial data seeding process completed.")
}

type seeder struct {
	users     domain.UserRepository
	words     domain.VocabularyRepository
	txManager domain.TransactionManager
	log       *zap.Logger
}

// seedUser creates the account unless the username or email is taken, then
// adds each word the user does not already have.
func (s *seeder) seedUser(ctx context.Context, su seedmodels.SeedUser) error {
	return s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		user, err := s.findUser(ctx, su)
		if err != nil {
			return err
		}

		if user == nil {
			hash, err := service.HashPassword(su.Password)
			if err != nil {
				return err
			}
			user = domain.NewUser(su.Username, su.Email, hash, su.FirstName, su.LastName)
			if err := user.Validate(); err != nil {
				return err
			}
			if err := s.users.CreateUser(ctx, user); err != nil {
				return fmt.Errorf("failed to create user %s: %w", su.Username, err)
			}
			s.log.Info("Seeded user", zap.String("username", user.Username), zap.String("id", user.ID))
		} else {
			s.log.Info("User already exists", zap.String("username", user.Username))
		}

		added := 0
		for _, sw := range su.Words {
			exists, err := s.words.ExistsByWord(ctx, user.ID, sw.Word)
			if err != nil {
				return err
			}
			if exists {
				s.log.Debug("Word already exists", zap.String("username", user.Username), zap.String("word", sw.Word))
				continue
			}

			entry := domain.NewVocabularyEntry(user.ID, sw.Word, sw.Definition)
			if err := entry.Validate(); err != nil {
				return fmt.Errorf("invalid seed word %q: %w", sw.Word, err)
			}
			if err := s.words.Create(ctx, entry); err != nil {
				return fmt.Errorf("failed to create word %q: %w", sw.Word, err)
			}
			added++
		}
		s.log.Info("Seeded vocabulary", zap.String("username", user.Username), zap.Int("added", added))
		return nil
	})
}

func (s *seeder) findUser(ctx context.Context, su seedmodels.SeedUser) (*domain.User, error) {
	user, err := s.users.GetUserByUsername(ctx, su.Username)
	if err != nil || user != nil {
		return user, err
	}
	return s.users.GetUserByEmail(ctx, su.Email)
}
