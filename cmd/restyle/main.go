package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mikey/restyle/internal/di"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &di.CLIFlags{}

	root := &cobra.Command{
		Use:           "restyle",
		Short:         "Send account notifications and run hairstyle transformations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to config file")
	root.PersistentFlags().StringVar(&flags.EmailProvider, "email-provider", "", "Email provider (resend, mailgun, ses, smtp)")
	root.PersistentFlags().StringVar(&flags.ImageProvider, "image-provider", "", "Image provider (gemini, openai, bedrock)")
	root.PersistentFlags().StringVar(&flags.GeminiModelName, "gemini-model", "", "Gemini model name")
	root.PersistentFlags().StringVar(&flags.OpenAIModelName, "openai-model", "", "OpenAI model name")
	root.PersistentFlags().StringVar(&flags.BedrockModelID, "bedrock-model", "", "Bedrock model ID")
	root.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")

	root.AddCommand(
		newSendVerificationCommand(flags),
		newSendResetCommand(flags),
		newTransformCommand(flags),
	)

	return root
}
