// Command seed creates dashboard accounts. Accounts are never
// self-registered through the public API.
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/spec-kit/complaint-service/internal/auth"
	"github.com/spec-kit/complaint-service/internal/config"
	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/observability"
	"github.com/spec-kit/complaint-service/internal/persistence"
	"github.com/spec-kit/complaint-service/internal/repository"
	"github.com/spec-kit/complaint-service/internal/validation"
)

func main() {
	email := flag.String("email", "", "account email (required)")
	password := flag.String("password", "", "account password (required)")
	name := flag.String("name", "", "display name (required)")
	role := flag.String("role", "agent", "account role: admin or agent")
	flag.Parse()

	if *email == "" || *password == "" || *name == "" {
		log.Fatal("email, password, and name are required")
	}

	accountRole := domain.AccountRole(*role)
	if accountRole != domain.RoleAdmin && accountRole != domain.RoleAgent {
		log.Fatalf("invalid role %q: must be admin or agent", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	hash, err := auth.HashPassword(*password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	account := &domain.Account{
		Email:        validation.NormalizeEmail(*email),
		PasswordHash: hash,
		Name:         *name,
		Role:         accountRole,
		IsActive:     true,
	}

	accountRepo := repository.NewAccountRepository(pg.PoolHandle())
	if err := accountRepo.Create(ctx, account); err != nil {
		logger.Fatal("failed to create account", zap.Error(err))
	}

	logger.Info("account created",
		zap.String("id", account.ID),
		zap.String("email", account.Email),
		zap.String("role", string(account.Role)),
	)
}
