package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sitesmith/config"
	"sitesmith/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "sitesmith",
	Short: "Generate deployable React websites from natural-language prompts",
	Long: `sitesmith turns a short description of a website into a complete
React + Vite + Tailwind project, packaged as a zip archive.

Running sitesmith with no arguments starts the HTTP API server.
Use "sitesmith build" to generate a single site from the command line.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Run: runServe,
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadRuntimeConfig loads environment variables from a .env file in the
// current directory, then resolves the full configuration. It's crucial to
// load .env BEFORE viper reads the environment.
func loadRuntimeConfig() (config.Config, error) {
	err := godotenv.Load()
	if err != nil {
		// It's common for .env to not exist (e.g., in production), so only log a warning
		// if the error is something other than "file not found".
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	return config.LoadConfig(".")
}

// newTextGenerator builds the client for the configured provider. A nil
// generator (with nil error) means no credential is set; callers fall back
// to rule-based specs and static components.
func newTextGenerator(ctx context.Context, cfg config.Config) (llm.TextGenerator, error) {
	key := cfg.Credential()
	if key == "" {
		return nil, nil
	}
	switch cfg.LLMProvider {
	case "gemini":
		gen, err := llm.NewGeminiGenerator(ctx, key, cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case "openai", "":
		return llm.NewOpenAIGenerator(key, cfg.LLMModel), nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q (expected \"openai\" or \"gemini\")", cfg.LLMProvider)
	}
}
