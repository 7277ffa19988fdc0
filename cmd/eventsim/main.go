// Package main provides a command-line driver that resolves geoscape events
// against a fresh campaign and reports what each one did.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/geoscape/internal/config"
	"github.com/cory-johannsen/geoscape/internal/game/campaign"
	"github.com/cory-johannsen/geoscape/internal/game/dice"
	"github.com/cory-johannsen/geoscape/internal/game/geoevent"
	"github.com/cory-johannsen/geoscape/internal/game/i18n"
	"github.com/cory-johannsen/geoscape/internal/game/ruleset"
	"github.com/cory-johannsen/geoscape/internal/observability"
	"github.com/cory-johannsen/geoscape/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	contentDir := flag.String("content", "", "rules content root; overrides content.dir")
	eventID := flag.String("event", "", "event ID to resolve; empty picks a random event each time")
	count := flag.Int("count", 1, "number of events to resolve")
	save := flag.Bool("save", false, "persist HQ storage to the database when done")
	dbTimeout := flag.Duration("db-timeout", postgres.DefaultHealthTimeout, "database health check timeout before saving")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Content.Dir = *contentDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := ruleset.LoadCatalog(cfg.Content.Dir)
	if err != nil {
		logger.Fatal("loading rules", zap.String("dir", cfg.Content.Dir), zap.Error(err))
	}
	for _, w := range catalog.Warnings() {
		logger.Warn("rules warning", zap.String("warning", w))
	}
	items, regions, research, events := catalog.Counts()
	logger.Info("rules loaded",
		zap.Int("items", items),
		zap.Int("regions", regions),
		zap.Int("research", research),
		zap.Int("events", events),
	)

	langPath := filepath.Join(cfg.Content.Dir, "lang", cfg.Content.Language+".yaml")
	lang, err := i18n.LoadLanguage(langPath)
	if err != nil {
		logger.Fatal("loading language", zap.String("path", langPath), zap.Error(err))
	}

	var src dice.Source
	if cfg.Campaign.Seed != 0 {
		src = dice.NewSeededSource(cfg.Campaign.Seed)
	} else {
		src = dice.NewCryptoSource()
	}
	src = dice.NewLoggedSource(src, observability.Component(logger, "dice"))

	camp := newCampaign(catalog, cfg.Campaign, observability.Component(logger, "campaign"))
	resolver := geoevent.NewResolver(catalog, lang, src, observability.Component(logger, "geoevent"))

	outcomes, err := simulate(resolver, camp, catalog, src, *eventID, *count)
	if err != nil {
		logger.Fatal("resolving events", zap.Error(err))
	}
	for i, out := range outcomes {
		fmt.Println(formatOutcome(i+1, out))
	}

	hq := camp.HQ()
	logger.Info("simulation finished",
		zap.Int("events", len(outcomes)),
		zap.Int64("funds", camp.Funds()),
		zap.Int("research_score", camp.ResearchScore()),
		zap.Int("discoveries", len(camp.Discoveries())),
		zap.Int("hq_stock", hq.Storage.Total()),
		zap.Duration("elapsed", time.Since(start)),
	)

	if *save {
		dbLogger := observability.Component(logger, "storage")
		pool, err := postgres.NewPool(ctx, cfg.Database, dbLogger)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()
		if err := pool.Health(ctx, *dbTimeout); err != nil {
			logger.Fatal("database unhealthy", zap.Duration("timeout", *dbTimeout), zap.Error(err))
		}
		if err := postgres.NewStockRepository(pool.DB()).SaveStock(ctx, hq.ID, hq.Storage); err != nil {
			logger.Fatal("saving HQ stock", zap.String("base", hq.ID), zap.Error(err))
		}
		logger.Info("HQ stock saved", zap.String("base", hq.ID))
	}
}

// newCampaign builds a campaign tracking every catalog region with a single HQ.
func newCampaign(catalog *ruleset.Catalog, cfg config.CampaignConfig, logger *zap.Logger) *campaign.Campaign {
	camp := campaign.New(catalog, cfg.StartingFunds, logger)
	for _, r := range catalog.Regions() {
		camp.AddRegion(r)
	}
	camp.AddBase(cfg.HQName)
	return camp
}

// simulate resolves count events. Each outcome's item transfer is delivered
// to HQ before the next event.
func simulate(r *geoevent.Resolver, camp *campaign.Campaign, catalog *ruleset.Catalog, src dice.Source, eventID string, count int) ([]geoevent.Outcome, error) {
	outcomes := make([]geoevent.Outcome, 0, count)
	pool := catalog.Events()
	for i := 0; i < count; i++ {
		id := eventID
		if id == "" {
			rule, ok := dice.Pick(src, pool)
			if !ok {
				return outcomes, fmt.Errorf("no events defined")
			}
			id = rule.ID
		}
		out, err := r.ResolveByID(camp, id)
		if err != nil {
			return outcomes, err
		}
		camp.HQ().AdvanceTransfers(geoevent.TransferHours)
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

func formatOutcome(n int, out geoevent.Outcome) string {
	s := fmt.Sprintf("#%d %s: %s", n, out.Title, out.Message)
	if out.ItemType != "" {
		s += fmt.Sprintf(" [item %s]", out.ItemType)
	}
	if article, ok := out.Article(); ok {
		s += fmt.Sprintf(" [research %s]", article)
	}
	return s
}
