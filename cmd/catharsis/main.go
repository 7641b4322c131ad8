// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/catharsis/ai"
	"github.com/poiesic/catharsis/ai/gemini"
	"github.com/poiesic/catharsis/ai/local"
	aiopenai "github.com/poiesic/catharsis/ai/openai"
	"github.com/poiesic/catharsis/analysis"
	"github.com/poiesic/catharsis/core"
	"github.com/poiesic/catharsis/lifecycle"
	"github.com/poiesic/catharsis/respond"
	"github.com/poiesic/catharsis/storage/badger"
	"github.com/poiesic/catharsis/transform"
)

// environment holds provider credentials read from the process
// environment (optionally seeded from a .env file). All fields are
// optional; with nothing set the cascade runs on the local provider.
type environment struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL,default=gemini-1.5-flash"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-3.5-turbo"`
	OpenAIHost   string `env:"OPENAI_HOST"`
}

func main() {
	app := &cli.App{
		Name:  "catharsis",
		Usage: "Emotion analysis and creative content transformation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Analyze the emotional content of a piece of text",
				ArgsUsage: "<text>",
				Action:    analyzeCommand,
			},
			{
				Name:      "transform",
				Usage:     "Transform text into a creative output form",
				ArgsUsage: "<text>",
				Action:    transformCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "form",
						Aliases:  []string{"f"},
						Usage:    "Output form (poem, song, story, motivational, letter, meme, tweet, script)",
						Required: true,
					},
				},
			},
			{
				Name:      "respond",
				Usage:     "Generate a persona-conditioned reply to text",
				ArgsUsage: "<text>",
				Action:    respondCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "persona",
						Aliases:  []string{"p"},
						Usage:    "Reply persona (supportive, humorous, motivational, professional, analytical, empathetic, encouraging, sarcastic)",
						Required: true,
					},
				},
			},
			{
				Name:      "submit",
				Usage:     "Submit text for asynchronous processing",
				ArgsUsage: "<text>",
				Action:    submitCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.Uint64Flag{
						Name:  "owner",
						Usage: "Owner identifier for the submitted content",
						Value: 1,
					},
					&cli.StringFlag{
						Name:  "kind",
						Usage: "Input kind (text, audio-transcript, video-transcript)",
						Value: "text",
					},
				},
			},
			{
				Name:      "process",
				Usage:     "Run emotion analysis for a submitted content unit",
				ArgsUsage: "<id>",
				Action:    processCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:   "reprocess",
				Usage:  "Retry analysis for failed content units",
				Action: reprocessCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent workers",
						Value: 2,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of failed units to retry (0 = all)",
						Value: 0,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts per unit",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List stored content units",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "status",
						Usage: "Filter by status (created, pending, processing, completed, failed); empty lists most recent",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of units to list (0 = unlimited for status listings)",
						Value: 20,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// buildRegistry assembles the provider cascade from the environment:
// gemini first, then an OpenAI-compatible endpoint, then the local
// heuristic provider as the always-available floor.
func buildRegistry() (*ai.Registry, error) {
	_ = godotenv.Load()

	var envCfg environment
	if _, err := env.UnmarshalFromEnviron(&envCfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	aiConfig := ai.NewConfig(
		ai.WithGeminiAPIKey(envCfg.GeminiAPIKey),
		ai.WithGeminiModel(envCfg.GeminiModel),
		ai.WithOpenAIAPIKey(envCfg.OpenAIAPIKey),
		ai.WithOpenAIModel(envCfg.OpenAIModel),
		ai.WithOpenAIHost(envCfg.OpenAIHost),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	providers := []ai.Provider{
		gemini.NewProvider(aiConfig),
		aiopenai.NewProvider(aiConfig),
		local.NewProvider(),
	}

	return ai.NewRegistry(providers,
		ai.WithTimeouts(aiConfig.CallTimeout, aiConfig.OverallTimeout),
	), nil
}

func analyzeCommand(c *cli.Context) error {
	text := c.Args().First()
	if text == "" {
		return fmt.Errorf("text argument is required")
	}

	registry, err := buildRegistry()
	if err != nil {
		return err
	}

	engine, err := analysis.NewEngine(registry)
	if err != nil {
		return fmt.Errorf("failed to create analysis engine: %w", err)
	}

	result, provider, err := engine.Analyze(context.Background(), text)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return printJSON(map[string]any{
		"provider": provider,
		"analysis": result,
	})
}

func transformCommand(c *cli.Context) error {
	text := c.Args().First()
	if text == "" {
		return fmt.Errorf("text argument is required")
	}

	form, err := core.ParseForm(c.String("form"))
	if err != nil {
		return err
	}

	registry, err := buildRegistry()
	if err != nil {
		return err
	}

	engine, err := transform.NewEngine(registry)
	if err != nil {
		return fmt.Errorf("failed to create transform engine: %w", err)
	}

	result, err := engine.Transform(context.Background(), text, form)
	if err != nil {
		return fmt.Errorf("transformation failed: %w", err)
	}

	return printJSON(result)
}

func respondCommand(c *cli.Context) error {
	text := c.Args().First()
	if text == "" {
		return fmt.Errorf("text argument is required")
	}

	persona, err := core.ParsePersona(c.String("persona"))
	if err != nil {
		return err
	}

	registry, err := buildRegistry()
	if err != nil {
		return err
	}

	generator, err := respond.NewGenerator(registry)
	if err != nil {
		return fmt.Errorf("failed to create response generator: %w", err)
	}

	result, err := generator.Respond(context.Background(), text, persona)
	if err != nil {
		return fmt.Errorf("response generation failed: %w", err)
	}

	// Suggested actions follow the detected emotion of the input, not
	// the generated reply.
	emotion := local.AnalyzeText(text).Emotion

	return printJSON(map[string]any{
		"result":  result,
		"actions": respond.SuggestActions(emotion),
	})
}

func submitCommand(c *cli.Context) error {
	text := c.Args().First()
	if text == "" {
		return fmt.Errorf("text argument is required")
	}

	kind := core.InputKind(c.String("kind"))
	switch kind {
	case core.InputText, core.InputAudioTranscript, core.InputVideoTranscript:
	default:
		return fmt.Errorf("unknown input kind %q", c.String("kind"))
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewContentRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	registry, err := buildRegistry()
	if err != nil {
		return err
	}
	engine, err := analysis.NewEngine(registry)
	if err != nil {
		return fmt.Errorf("failed to create analysis engine: %w", err)
	}
	processor, err := lifecycle.NewProcessor(repo, engine)
	if err != nil {
		return fmt.Errorf("failed to create processor: %w", err)
	}

	unit, err := processor.Submit(context.Background(), core.ID(c.Uint64("owner")), text, kind)
	if err != nil {
		return fmt.Errorf("submit failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Submitted unit %d (status %s)\n", unit.Id, unit.Status)
	return printJSON(unit)
}

func processCommand(c *cli.Context) error {
	idArg := c.Args().First()
	if idArg == "" {
		return fmt.Errorf("id argument is required")
	}
	id, err := strconv.ParseUint(idArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", idArg, err)
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewContentRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	registry, err := buildRegistry()
	if err != nil {
		return err
	}
	engine, err := analysis.NewEngine(registry)
	if err != nil {
		return fmt.Errorf("failed to create analysis engine: %w", err)
	}
	processor, err := lifecycle.NewProcessor(repo, engine)
	if err != nil {
		return fmt.Errorf("failed to create processor: %w", err)
	}

	unit, err := processor.Process(context.Background(), core.ID(id))
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	return printJSON(unit)
}

func reprocessCommand(c *cli.Context) error {
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewContentRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	registry, err := buildRegistry()
	if err != nil {
		return err
	}
	engine, err := analysis.NewEngine(registry)
	if err != nil {
		return fmt.Errorf("failed to create analysis engine: %w", err)
	}
	processor, err := lifecycle.NewProcessor(repo, engine)
	if err != nil {
		return fmt.Errorf("failed to create processor: %w", err)
	}

	reprocessor, err := lifecycle.NewReprocessor(repo, processor,
		lifecycle.WithPoolSize(c.Int("pool-size")),
		lifecycle.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")),
	)
	if err != nil {
		return fmt.Errorf("failed to create reprocessor: %w", err)
	}
	defer reprocessor.Release()

	recovered, err := reprocessor.ReprocessFailed(context.Background(), c.Int("limit"))
	if err != nil {
		return fmt.Errorf("reprocessing finished with errors (%d recovered): %w", recovered, err)
	}

	fmt.Fprintf(os.Stderr, "Recovered %d failed units\n", recovered)
	return nil
}

func listCommand(c *cli.Context) error {
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewContentRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	ctx := context.Background()
	limit := c.Int("limit")

	var units []*core.ContentUnit
	if statusArg := c.String("status"); statusArg != "" {
		status, err := parseStatus(statusArg)
		if err != nil {
			return err
		}
		units, err = repo.GetContentUnitsByStatus(ctx, status, limit)
		if err != nil {
			return fmt.Errorf("failed to list units: %w", err)
		}
	} else {
		units, err = repo.GetRecentContentUnits(ctx, limit)
		if err != nil {
			return fmt.Errorf("failed to list units: %w", err)
		}
	}

	return printJSON(units)
}

func parseStatus(name string) (core.Status, error) {
	switch strings.ToLower(name) {
	case "created":
		return core.StatusCreated, nil
	case "pending":
		return core.StatusPending, nil
	case "processing":
		return core.StatusProcessing, nil
	case "completed":
		return core.StatusCompleted, nil
	case "failed":
		return core.StatusFailed, nil
	default:
		return 0, fmt.Errorf("unknown status %q", name)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
