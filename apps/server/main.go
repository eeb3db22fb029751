package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"promptmaster-lite/apps/server/internal/config"
	"promptmaster-lite/apps/server/internal/gateway"
	"promptmaster-lite/apps/server/internal/lab"
	"promptmaster-lite/apps/server/internal/nexus"
	"promptmaster-lite/apps/server/internal/session"
	"promptmaster-lite/content"
	"promptmaster-lite/progression"
	"promptmaster-lite/quest/persona"
)

const version = "0.3.0"

// Starting XP grant for a fresh cadet.
const startingXP = 1200

var configFile string

var rootCmd = &cobra.Command{
	Use:   "promptmaster-server",
	Short: "PromptMaster Nexus game server",
	Long:  "Serves the quest scoring gateway and the AI lab panels for the PromptMaster SPA",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("promptmaster-server %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to YAML configuration file")
}

func serve() error {
	// .env is optional; in production the key comes from the environment.
	_ = godotenv.Load()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	bp := content.DefaultBlueprint()

	catalog := content.NewQuestCatalog()
	catalog.RegisterSectors(bp.Quests)
	if cfg.Content.QuestsFile != "" {
		if err := catalog.LoadFromFile(cfg.Content.QuestsFile); err != nil {
			return fmt.Errorf("load quests: %w", err)
		}
	}

	personas := persona.NewRegistry()
	personas.Register(bp.Characters...)
	if cfg.Content.PersonasFile != "" {
		if err := personas.LoadFromFile(cfg.Content.PersonasFile); err != nil {
			return fmt.Errorf("load personas: %w", err)
		}
	}

	table, err := progression.NewTable(bp.Levels)
	if err != nil {
		return fmt.Errorf("level table: %w", err)
	}

	svc, err := nexus.New(bp.Scoring, catalog, personas, bp.Gear)
	if err != nil {
		return fmt.Errorf("init nexus: %w", err)
	}

	sessions := session.NewManager(table, startingXP)
	sessions.SetTTL(cfg.SessionTTL)
	gw := gateway.New(sessions, svc)

	var labClient *lab.Client
	if cfg.LabEnabled() {
		labClient, err = lab.NewClient(context.Background(), cfg.Gemini)
		if err != nil {
			return fmt.Errorf("init lab: %w", err)
		}
		defer labClient.Close()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", gw.HandleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	lab.NewHandler(labClient).RegisterRoutes(mux)
	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	log.Printf("[Server] Quests loaded: %d, personas: %d", catalog.Count(), personas.Count())
	log.Printf("[Server] Lab enabled: %v", cfg.LabEnabled())
	log.Printf("[Server] Starting on %s", cfg.ListenAddr)
	return http.ListenAndServe(cfg.ListenAddr, mux)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
