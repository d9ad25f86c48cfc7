package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sitesmith/internal/archive"
	"sitesmith/internal/components"
	"sitesmith/internal/expand"
	"sitesmith/internal/pipeline"
	"sitesmith/internal/spec"
)

var (
	buildPrompt string
	buildOutput string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate a single site zip from a prompt and exit",
	Long: `Build runs the full generation pipeline once, without the HTTP server.

Without an API key the site is assembled from the rule-based spec and
placeholder components, which is handy for previewing project structure.`,
	Run: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildPrompt, "prompt", "p", "", "description of the website to generate (required)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output zip path (default \"<slug>.zip\")")
	buildCmd.MarkFlagRequired("prompt")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) {
	prompt := strings.TrimSpace(buildPrompt)
	if prompt == "" {
		log.Fatalf("Prompt is required")
	}

	cfg, err := loadRuntimeConfig()
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// One budget covers the whole build, same as a single API request.
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.LLMTimeoutSeconds)*time.Second)
	defer cancel()

	gen, err := newTextGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("Cannot initialize text generation client: %v", err)
	}
	if gen == nil {
		log.Println("No API key configured; generating with rule-based spec and placeholder components.")
	}

	builder := pipeline.NewBuilder(gen)
	renderer := components.NewRenderer(gen, cfg.ComponentCacheSize)

	websiteSpec := builder.BuildSpec(ctx, prompt)
	files := expand.Expand(ctx, websiteSpec, renderer)
	slug := spec.Slug(websiteSpec.Project.Name)

	data, err := archive.Build(files, slug)
	if err != nil {
		log.Fatalf("Failed to package site: %v", err)
	}

	out := buildOutput
	if out == "" {
		out = slug + ".zip"
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", out, err)
	}

	fmt.Printf("Wrote %s (%d files under %s/)\n", out, len(files), slug)
}
