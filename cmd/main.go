package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Vovarama1992/qashqai-voice/internal/agents"
	"github.com/Vovarama1992/qashqai-voice/internal/ai"
	"github.com/Vovarama1992/qashqai-voice/internal/chat"
	"github.com/Vovarama1992/qashqai-voice/internal/config"
	"github.com/Vovarama1992/qashqai-voice/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "qashqai-voice",
		Short:        "Multilingual chat pipeline: language detector, cultural guardian, reasoner",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file (default $CONFIG_FILE)")

	root.AddCommand(
		newServeCmd(&configPath),
		newDetectCmd(),
		newChatCmd(&configPath),
	)
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Chat module wiring ---
	chatService := chat.NewService(agents.CulturalGuardian{}, newReasoner(cfg.OpenAI, log), log)
	chatHandler := chat.NewHandler(chatService, log)

	r := server.NewRouter(cfg.Server, chatHandler, log)

	return server.Run(ctx, cfg.Server.Port, r, log)
}

// newReasoner picks the LLM reasoner when an API key is configured.
func newReasoner(cfg config.OpenAI, log *logrus.Logger) agents.Reasoner {
	if !cfg.Enabled() {
		log.Info("reasoner: template")
		return agents.TemplateReasoner{}
	}
	log.WithField("model", cfg.Model).Info("reasoner: openai")
	return agents.NewLLMReasoner(ai.NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, log), log)
}
