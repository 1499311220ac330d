package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/atotto/clipboard"

	"github.com/clipforge/clipforge/internal/action"
	"github.com/clipforge/clipforge/internal/config"
	"github.com/clipforge/clipforge/internal/conversation"
	"github.com/clipforge/clipforge/internal/dispatch"
	"github.com/clipforge/clipforge/internal/history"
	"github.com/clipforge/clipforge/internal/host"
	"github.com/clipforge/clipforge/internal/llm"
	"github.com/clipforge/clipforge/internal/logger"
	"github.com/clipforge/clipforge/internal/prompt"
)

func main() {
	oneShot := flag.String("action", "", "run a single action on the clipboard text and exit")
	text := flag.String("text", "", "selection text for -action (defaults to clipboard contents)")
	app := flag.String("app", "cli", "application identifier for -action")
	shift := flag.Bool("shift", false, "hold the shift modifier for -action")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.L.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)

	// Wire the invocation core: store, catalog, handlers, backend client.
	store := conversation.NewStore(nil)
	registry := action.NewRegistry(cfg, store, prompt.NewCatalog())
	client := llm.NewClient(cfg.API)

	var log *history.Log
	if cfg.History.Enabled {
		log = history.NewLog(cfg.History.DBPath)
	}

	dispatcher := dispatch.New(registry, store, client, log, nil)

	if *oneShot != "" {
		runLocal(dispatcher, *oneShot, *text, *app, *shift)
		return
	}

	// Initialize router
	mux := http.NewServeMux()

	// invocation endpoint: the host-side binding posts one request per user
	// action and performs the returned directive itself.
	mux.HandleFunc("POST /invoke", func(w http.ResponseWriter, r *http.Request) {
		var req action.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.L.Error("decode request error", "error", err)
			http.Error(w, "failed to decode request body", http.StatusBadRequest)
			return
		}

		reply := host.NewReply(req.CanPaste)
		if err := dispatcher.Dispatch(r.Context(), &req, reply); err != nil {
			logger.L.Error("dispatch error", "error", err, "action", req.Action)
			http.Error(w, "failed to dispatch action", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reply); err != nil {
			logger.L.Error("encode reply error", "error", err)
		}
	})

	// Start server
	serverAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.L.Info("starting invocation endpoint", "address", serverAddr)
	if err := http.ListenAndServe(serverAddr, mux); err != nil {
		logger.L.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

// runLocal executes one action against the local clipboard host: the
// selection comes from -text or the clipboard, and the result lands back on
// the clipboard.
func runLocal(dispatcher *dispatch.Dispatcher, actionID, text, appID string, shift bool) {
	if text == "" {
		var err error
		text, err = clipboard.ReadAll()
		if err != nil {
			logger.L.Error("failed to read clipboard", "error", err)
			os.Exit(1)
		}
	}

	req := &action.Request{
		Action:    actionID,
		Text:      text,
		AppID:     appID,
		AppName:   appID,
		Modifiers: action.Modifiers{Shift: shift},
	}
	if err := dispatcher.Dispatch(context.Background(), req, host.NewClipboard()); err != nil {
		logger.L.Error("dispatch error", "error", err, "action", actionID)
		os.Exit(1)
	}
}
