package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "mass_oss/docs"
	"mass_oss/internal/adapter/http/routes"
	"mass_oss/internal/adapter/persistence/repository"
	"mass_oss/internal/config"
	"mass_oss/internal/domain/entities"
	"mass_oss/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// @title           MASS OSS Work Orders API
// @version         1.0
// @description     Work order status workflow for auto repair shops.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "mass-oss",
		Short:         "Work order board API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logging.Configure(loaded.Log.Level, loaded.Log.Format)
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cfg)
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cfg)
		},
	})

	var orgID string
	seed := &cobra.Command{
		Use:   "seed",
		Short: "Write the sample work orders into an org",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return seedOrg(cmd.Context(), cfg, orgID)
		},
	}
	seed.Flags().StringVar(&orgID, "org", "", "organization id to seed")
	_ = seed.MarkFlagRequired("org")
	root.AddCommand(seed)

	return root
}

func serve(cfg *config.Config) error {
	if err := routes.Run(cfg); err != nil {
		log.WithError(err).Error("[main] server stopped")
		return err
	}
	return nil
}

var (
	errSeedOrgRequired = errors.New("--org is required")
	errSeedDemoOrg     = errors.New("demo orgs are kept in process memory and seed themselves on first use")
)

// checkSeedOrg refuses orgs whose data would not outlive the seed process.
func checkSeedOrg(cfg *config.Config, orgID string) error {
	if strings.TrimSpace(orgID) == "" {
		return errSeedOrgRequired
	}
	if repository.NewWorkOrderRoutingRepository(cfg.Storage.DemoOrgPrefix, nil, nil).IsDemo(orgID) {
		return fmt.Errorf("%w: %q has prefix %q", errSeedDemoOrg, orgID, cfg.Storage.DemoOrgPrefix)
	}
	return nil
}

func seedOrg(ctx context.Context, cfg *config.Config, orgID string) error {
	if err := checkSeedOrg(cfg, orgID); err != nil {
		log.WithError(err).WithField("org_id", orgID).Error("[seed] refused")
		return err
	}
	orgID = strings.TrimSpace(orgID)

	repo, err := routes.NewRepository(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("[seed] store unavailable")
		return err
	}

	created, skipped := 0, 0
	for _, wo := range entities.DemoWorkOrders(orgID, time.Now().UTC()) {
		if _, err := repo.Create(ctx, wo); err != nil {
			if errors.Is(err, entities.ErrWorkOrderExists) {
				skipped++
				continue
			}
			log.WithError(err).WithField("id", wo.ID).Error("[seed] create failed")
			return err
		}
		created++
	}
	log.WithFields(log.Fields{"org_id": orgID, "created": created, "skipped": skipped}).Info("[seed] done")
	return nil
}
