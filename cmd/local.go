package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vovarama1992/qashqai-voice/internal/agents"
	"github.com/Vovarama1992/qashqai-voice/internal/chat"
	"github.com/Vovarama1992/qashqai-voice/internal/config"
	"github.com/Vovarama1992/qashqai-voice/internal/langid"
)

// autoLanguage asks for detection, as "auto" does on POST /chat.
const autoLanguage = "auto"

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <text...>",
		Short: "Print the detected language and confidence as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, langid.Detect(strings.Join(args, " ")))
		},
	}
}

func newChatCmd(configPath *string) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "chat [--lang tag] <text...>",
		Short: "Run the full pipeline locally and print the result as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log := cfg.NewLogger()
			log.SetOutput(cmd.ErrOrStderr())

			msg := chat.Message{Text: strings.Join(args, " ")}
			if lang != "" && lang != autoLanguage {
				l, err := langid.ParseLanguage(lang)
				if err != nil {
					return err
				}
				msg.Language = &l
			}

			svc := chat.NewService(agents.CulturalGuardian{}, newReasoner(cfg.OpenAI, log), log)
			return printJSON(cmd, svc.Run(cmd.Context(), msg))
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "language tag (qashqai, fa, tr, en); detected when omitted or auto")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
