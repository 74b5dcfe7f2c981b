package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vivemap/internal/domain"
	"github.com/vivemap/internal/repository/cache"
	"github.com/vivemap/internal/repository/postgres"
)

func newSeedCmd(cc *cliContext) *cobra.Command {
	var skipCache bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Применить миграции и залить каталог в PostgreSQL",
		Long: `seed применяет встроенные миграции, делает upsert всех мест встроенного каталога
и сбрасывает кеш каталога в Redis, чтобы API перечитал места.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := postgres.New(&cc.cfg.Database, cc.log)
			if err != nil {
				return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
			}
			defer db.Close()

			if err := db.Migrate(ctx); err != nil {
				return err
			}

			places, err := cc.catalog.List(ctx)
			if err != nil {
				return err
			}

			n, err := postgres.NewPlaceWriter(db).UpsertPlaces(ctx, places)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d places\n", n)

			if skipCache {
				return nil
			}

			redisClient, err := cache.NewRedis(&cc.cfg.Redis, cc.log)
			if err != nil {
				cc.log.Warn("Redis unavailable, catalog cache not invalidated", zap.Error(err))
				return nil
			}
			defer redisClient.Close()

			if err := cache.NewCacheRepository(redisClient).Delete(ctx, domain.CacheKeyCatalogPlaces); err != nil {
				cc.log.Warn("Failed to invalidate catalog cache", zap.Error(err))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipCache, "skip-cache", false, "не сбрасывать кеш каталога в Redis")
	return cmd
}
