package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/keywarden/vaultsync/adapter"
	"github.com/keywarden/vaultsync/config"
	"github.com/keywarden/vaultsync/crypto"
	"github.com/keywarden/vaultsync/logger"
	"github.com/keywarden/vaultsync/service"
	"github.com/keywarden/vaultsync/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// noopEngine is the cryptographic engine of a headless replica maintainer:
// it holds no key material, so organization items stay encrypted at rest.
// Interactive consumers inject their own [crypto.Engine].
type noopEngine struct{}

func (noopEngine) InitOrganizationKeys(context.Context, string, map[string]string) error {
	return nil
}

func (noopEngine) ClearKeys(context.Context, string) error { return nil }

var _ crypto.Engine = noopEngine{}

func main() {
	printBuildInfo()

	log := logger.NewLogger("vaultsync")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	account, err := storages.Accounts.ActiveAccount(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("no active account on this device; log in first")
	}

	token, err := storages.Credentials.AccessToken(ctx, account.UserID)
	if err != nil {
		log.Fatal().Err(err).Msg("load access token")
	}
	serverAdapter.SetToken(token)

	policyCache := service.NewPolicyCache()
	policies := service.NewPolicyService(storages.Vault, policyCache, log)
	timeouts := service.NewVaultTimeoutService(storages.Credentials, policies, log)
	syncSvc := service.NewSyncService(storages, serverAdapter, noopEngine{},
		policies, timeouts, cfg.Sync.MinInterval, log)

	job := service.NewSyncJob(syncSvc)
	job.Start(ctx, cfg.Sync.JobInterval)
	defer job.Stop()

	log.Info().
		Str("user_id", account.UserID).
		Dur("job_interval", cfg.Sync.JobInterval).
		Msg("background sync started")

	<-ctx.Done()
	log.Info().Msg("shutting down")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
