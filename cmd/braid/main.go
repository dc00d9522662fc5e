// Copyright 2025 Synaptiq Labs
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
	"strings"

	"github.com/joho/godotenv"
	"github.com/synaptiq/braid"
	"github.com/synaptiq/braid/ai"
	"github.com/synaptiq/braid/reindex"
	"github.com/urfave/cli/v2"
)

func main() {
	// Optional .env; flags and real env vars win.
	_ = godotenv.Load()

	app := &cli.App{
		Name:   "braid",
		Usage:  "Hybrid semantic + graph retrieval over ingested documents",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Ingest a text document into both indices",
				ArgsUsage: "<file>",
				Action:    ingestCommand,
				Flags:     append(engineFlags(), ingestFlags()...),
			},
			{
				Name:      "query",
				Usage:     "Answer a question over the ingested corpus",
				ArgsUsage: "<question>",
				Action:    queryCommand,
				Flags:     engineFlags(),
			},
			{
				Name:   "reindex",
				Usage:  "Re-embed all stored chunks with the configured embedding model",
				Action: reindexCommand,
				Flags: append(engineFlags(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunks to embed per batch",
						Value: reindex.DefaultConfig().BatchSize,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory",
			EnvVars: []string{"BRAID_DB"},
			Value:   "braid_db",
		},
		&cli.StringFlag{
			Name:    "ai-host",
			Usage:   "OpenAI-compatible service host URL",
			EnvVars: []string{"BRAID_AI_HOST"},
			Value:   "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			EnvVars: []string{"BRAID_EMBEDDING_MODEL"},
			Value:   "embeddinggemma",
		},
		&cli.StringFlag{
			Name:    "generator-model",
			Usage:   "Text generation model name",
			EnvVars: []string{"BRAID_GENERATOR_MODEL"},
			Value:   "qwen2.5:3b",
		},
		&cli.BoolFlag{
			Name:  "no-generator",
			Usage: "Disable text generation and answer from retrieved context only",
		},
		&cli.StringFlag{
			Name:    "routing",
			Usage:   "Routing strategy (keyword, generative)",
			EnvVars: []string{"BRAID_ROUTING"},
			Value:   braid.RoutingKeyword,
		},
	}
}

func ingestFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "chunking",
			Usage:   "Chunking strategy (recursive, structural)",
			EnvVars: []string{"BRAID_CHUNKING"},
			Value:   braid.ChunkingRecursive,
		},
		&cli.StringFlag{
			Name:    "extraction",
			Usage:   "Triple extraction strategy (pattern, generative)",
			EnvVars: []string{"BRAID_EXTRACTION"},
			Value:   braid.ExtractionPattern,
		},
	}
}

func openEngine(c *cli.Context) (*braid.Engine, error) {
	opts := []braid.EngineOption{
		braid.WithAIConfig(ai.NewConfig(
			ai.WithHost(c.String("ai-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
			ai.WithGeneratorModel(c.String("generator-model")),
		)),
		braid.WithRouting(c.String("routing")),
	}
	if c.Bool("no-generator") {
		opts = append(opts, braid.WithoutGenerator())
	}
	if c.IsSet("chunking") || c.Command.Name == "ingest" {
		opts = append(opts,
			braid.WithChunking(c.String("chunking")),
			braid.WithExtraction(c.String("extraction")))
	}

	engine, err := braid.NewEngine(c.String("db"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open engine: %w", err)
	}
	return engine, nil
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one document path")
	}

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	report := engine.Ingest(context.Background(), c.Args().First())
	return printJSON(report)
}

func queryCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one question")
	}

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	response := engine.Query(context.Background(), c.Args().First())
	return printJSON(response)
}

func reindexCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	config := reindex.DefaultConfig()
	config.BatchSize = c.Int("batch-size")

	return engine.Reindex(context.Background(), os.Stderr, config)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
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
