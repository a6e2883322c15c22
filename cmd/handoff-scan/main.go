package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"handoff/internal/modkit"
	"handoff/internal/modkit/repokit"
	"handoff/internal/platform/config"
	"handoff/internal/platform/logger"
	"handoff/internal/platform/store"

	archivedom "handoff/internal/services/archive/domain"
	archivemod "handoff/internal/services/archive/module"
	reportmod "handoff/internal/services/report/module"
	scanmod "handoff/internal/services/scan/module"
)

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func main() {
	var (
		input   = flag.String("input", "output/conversations", "directory with chat exports")
		output  = flag.String("output", "incident_reports", "directory for generated reports")
		workers = flag.Int("workers", 4, "concurrency (>=1)")
		dryRun  = flag.Bool("dry-run", false, "scan and summarize but do not write reports or archive")
	)
	flag.Parse()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	l := logger.Get()

	// both stores are optional for a local scan run
	st, err := store.Open(context.Background(), store.Config{
		AppName: "handoff-scan",
		PG: store.PGConfig{
			Enabled:     pgCfg.MayString("DBURL", "") != "",
			URL:         pgCfg.MayString("DBURL", ""),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
		CH: store.CHConfig{
			Enabled: chCfg.MayString("DBURL", "") != "",
			URL:     chCfg.MayString("DBURL", ""),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast when a configured backend is unreachable; a no-store run
	// guards trivially and keeps working offline
	repokit.MustGuard(context.Background(), st)

	// pass CLI flags into CORE_* so modules can read their own config
	mustSetEnv("CORE_SCAN_WORKERS", strconv.Itoa(*workers))
	mustSetEnv("CORE_REPORT_OUTPUT_DIR", *output)

	deps := modkit.Deps{
		Cfg: root,
		Log: *l,
		PG:  st.PG,
		CH:  st.CH,
	}

	sm := scanmod.New(deps, scanmod.Options{Workers: *workers})
	rm := reportmod.New(deps, reportmod.Options{OutputDir: *output})
	am := archivemod.New(deps)

	scanner := sm.Ports().(scanmod.Ports).Scanner
	writer := rm.Ports().(reportmod.Ports).Writer
	archiver := am.Ports().(archivemod.Ports).Archiver

	runID := uuid.NewString()
	ctx := store.WithRun(context.Background(), runID)

	started := time.Now().UTC()
	matches, stats, err := scanner.Scan(ctx, *input)
	if err != nil {
		l.Fatal().Err(err).Str("input", *input).Msg("scan failed")
	}
	finished := time.Now().UTC()

	writer.Summarize(ctx, matches, stats)

	if *dryRun {
		l.Info().Str("run_id", runID).Msg("dry run, skipping reports and archive")
		return
	}

	if err := writer.WriteAll(ctx, matches); err != nil {
		l.Fatal().Err(err).Str("output", *output).Msg("report write failed")
	}

	run := archivedom.Run{
		ID:                   runID,
		InputRoot:            *input,
		StartedAt:            started,
		FinishedAt:           finished,
		TotalConversations:   stats.TotalConversations,
		MatchedConversations: stats.MatchedConversations,
	}
	if err := archiver.Archive(ctx, run, matches); err != nil {
		l.Fatal().Err(err).Str("run_id", runID).Msg("archive failed")
	}

	l.Info().
		Str("run_id", runID).
		Int("total", stats.TotalConversations).
		Int("matched", stats.MatchedConversations).
		Dur("took", finished.Sub(started)).
		Msg("scan run complete")
}
