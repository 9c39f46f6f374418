// Command server exposes the four generator entry points over HTTP.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/snakeoutgen/generator/internal/api"
	"github.com/snakeoutgen/generator/internal/apierr"
	"github.com/snakeoutgen/generator/internal/cloudlog"
	"github.com/snakeoutgen/generator/internal/config"
	"github.com/snakeoutgen/generator/internal/ids"
	"github.com/snakeoutgen/generator/internal/notify"
	"github.com/snakeoutgen/generator/internal/store"
)

func main() {
	configPath := os.Getenv("SNAKEOUTGEN_CONFIG")
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			slog.Error("failed to load config, using defaults", "error", err.Error())
		} else {
			cfg = loaded
		}
	}

	logWriter := io.Writer(os.Stdout)
	if cfg.LogFilePath != "" {
		logWriter = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFilePath,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
		})
	}
	logger := slog.New(cloudlog.New(logWriter, slog.LevelInfo))
	slog.SetDefault(logger)

	webhook := buildWebhook(context.Background(), cfg)
	webhook.Send("generator server starting up", nil)
	defer webhook.Send("generator server shutting down", nil)

	audit := buildAuditLog(cfg)
	if audit != nil {
		defer audit.Close()
	}
	packs := buildLevelPackStore(cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("/generate", handleGenerate(logger, webhook, audit, packs))
	mux.HandleFunc("/validate", handleValidate)
	mux.HandleFunc("/difficulty", handleDifficulty)
	mux.HandleFunc("/fillgaps", handleFillGaps)
	mux.HandleFunc("/ws/generate", handleGenerateWS(logger))

	slog.Info("starting generator server", "addr", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, mux))
}

// buildWebhook resolves the Discord webhook URL from Secret Manager when a
// resource name is configured, falling back to a no-op webhook (which
// just logs) on any failure so a missing secret never blocks startup.
func buildWebhook(ctx context.Context, cfg config.Config) *notify.Webhook {
	if cfg.DiscordWebhookSecret == "" {
		return notify.NewWebhook("")
	}
	url, err := notify.FetchSecret(ctx, cfg.DiscordWebhookSecret)
	if err != nil {
		slog.Warn("failed to fetch discord webhook secret, alerts will log only", "error", err.Error())
		return notify.NewWebhook("")
	}
	return notify.NewWebhook(url)
}

func handleGenerate(logger *slog.Logger, webhook *notify.Webhook, audit *store.AuditLog, packs *store.LevelPackStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req api.GenerateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		resp, err := api.Generate(req, logger)
		if err == nil && !resp.IsSolvable {
			alertUnsolvable(webhook, req, resp)
		}

		if err == nil {
			requestID := ids.New()
			if audit != nil {
				score := resp.CoveragePercent
				if resp.IsSolvable {
					score += 1000
				}
				if auditErr := audit.Record(r.Context(), requestID, req.Strategy, resp.IsSolvable, resp.CoveragePercent, score); auditErr != nil {
					slog.Warn("failed to record audit row", "error", auditErr.Error())
				}
			}
			if packs != nil {
				if putErr := packs.Put(r.Context(), requestID, resp.LevelJSON); putErr != nil {
					slog.Warn("failed to persist level pack to GCS", "error", putErr.Error())
				}
			}
		}

		writeResult(w, resp, err)
	}
}

// buildAuditLog opens the Postgres audit connection when configured,
// logging a warning and continuing without persistence on failure.
func buildAuditLog(cfg config.Config) *store.AuditLog {
	if cfg.PostgresDSN == "" {
		return nil
	}
	audit, err := store.OpenAuditLog(cfg.PostgresDSN)
	if err != nil {
		slog.Warn("failed to open postgres audit log, continuing without it", "error", err.Error())
		return nil
	}
	return audit
}

// buildLevelPackStore builds a GCS-backed level pack store when a bucket
// is configured.
func buildLevelPackStore(cfg config.Config) *store.LevelPackStore {
	if cfg.GCSBucket == "" {
		return nil
	}
	return store.NewLevelPackStore(cfg.GCSBucket)
}

func alertUnsolvable(webhook *notify.Webhook, req api.GenerateRequest, resp api.GenerateResponse) {
	webhook.Send("generation produced an unsolvable best attempt", []notify.Embed{{
		Title: "Unsolvable best attempt",
		Color: notify.ColorWarn,
		Fields: []notify.EmbedField{
			{Name: "strategy", Value: req.Strategy, Inline: true},
			{Name: "grid", Value: fmt.Sprintf("%dx%d", req.Rows, req.Cols), Inline: true},
			{Name: "stuck_count", Value: fmt.Sprintf("%d", resp.StuckCount), Inline: true},
		},
	}})
}

func handleValidate(w http.ResponseWriter, r *http.Request) {
	var req api.ValidateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := api.Validate(req)
	writeResult(w, resp, err)
}

func handleDifficulty(w http.ResponseWriter, r *http.Request) {
	var req api.DifficultyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := api.Difficulty(req)
	writeResult(w, resp, err)
}

func handleFillGaps(w http.ResponseWriter, r *http.Request) {
	var req api.FillGapsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := api.FillGaps(req)
	writeResult(w, resp, err)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "malformed request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeResult(w http.ResponseWriter, resp interface{}, err error) {
	if err != nil {
		if apierr.IsInvalidInput(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("unexpected generator error", "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err.Error())
	}
}
