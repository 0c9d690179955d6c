// Copyright 2026 Docsift Authors
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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/docsift/docsift"
	"github.com/docsift/docsift/ai"
	"github.com/docsift/docsift/ai/openai"
	"github.com/docsift/docsift/search"
)

func main() {
	app := &cli.App{
		Name:  "docsift",
		Usage: "Document search and retrieval toolkit",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
				Value:   "./docsift-db",
			},
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
				Name:      "import",
				Usage:     "Import documents from a CSV, XML or JSON file",
				ArgsUsage: "<file>",
				Action:    importCommand,
			},
			{
				Name:      "search",
				Usage:     "Search the document collection",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "engine",
						Aliases: []string{"e"},
						Usage:   "Search engine kind (boolean, ranked, semantic)",
						Value:   "ranked",
					},
					&cli.StringFlag{
						Name:    "user",
						Aliases: []string{"u"},
						Usage:   "User ID to record the search under",
					},
					&cli.StringFlag{
						Name:    "export",
						Aliases: []string{"o"},
						Usage:   "Export results to a file (.json, .csv or .xml)",
					},
					&cli.IntFlag{
						Name:  "page",
						Usage: "Page of results to show (0 disables pagination)",
					},
					&cli.IntFlag{
						Name:  "per-page",
						Usage: "Results per page",
						Value: 10,
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort key for paginated results (score, date)",
						Value: "score",
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum result score for the semantic engine",
						Value: search.DefaultSimilarityThreshold,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL for the semantic engine",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name for the semantic engine",
					},
				},
			},
			{
				Name:      "order",
				Usage:     "Place a food order, items separated by commas",
				ArgsUsage: "<order text>",
				Action:    orderCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "user",
						Aliases:  []string{"u"},
						Usage:    "User ID placing the order",
						Required: true,
					},
				},
			},
			{
				Name:   "report",
				Usage:  "Print engine, document and order statistics",
				Action: reportCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openSystem(c *cli.Context, opts ...docsift.SystemOption) (*docsift.System, error) {
	return docsift.Open(c.String("db"), opts...)
}

func importCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one file argument")
	}

	system, err := openSystem(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer system.Close()

	stats, err := system.ImportFile(context.Background(), c.Args().First())
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d documents (%d duplicates skipped, %d invalid)\n",
		stats.Imported, stats.Skipped, stats.Invalid)
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("expected a query argument")
	}
	query := strings.Join(c.Args().Slice(), " ")

	kind := search.Kind(c.String("engine"))

	var opts []docsift.SystemOption
	if c.IsSet("threshold") {
		opts = append(opts, docsift.WithSimilarityThreshold(c.Float64("threshold")))
	}
	if host, model := c.String("embedding-host"), c.String("embedding-model"); host != "" || model != "" {
		var aiOpts []ai.ConfigOption
		if host != "" {
			aiOpts = append(aiOpts, ai.WithEmbeddingHost(host))
		}
		if model != "" {
			aiOpts = append(aiOpts, ai.WithEmbeddingModel(model))
		}
		aiConfig := ai.NewConfig(aiOpts...)
		if err := aiConfig.Validate(); err != nil {
			return fmt.Errorf("invalid embedding configuration: %w", err)
		}
		embedder, err := openai.NewEmbedder(aiConfig)
		if err != nil {
			return fmt.Errorf("failed to create embedder: %w", err)
		}
		opts = append(opts, docsift.WithEmbedder(embedder))
	}

	system, err := openSystem(c, opts...)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer system.Close()

	ctx := context.Background()

	if page := c.Int("page"); page > 0 {
		pageOpts := search.PageOptions{
			Page:    page,
			PerPage: c.Int("per-page"),
			SortBy:  search.SortKey(c.String("sort")),
		}
		result, err := system.SearchPage(ctx, query, kind, pageOpts)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		fmt.Printf("Page %d/%d (%d results total) for %q\n",
			result.Page, result.TotalPages, result.TotalResults, query)
		for i, item := range result.Items {
			fmt.Printf("%2d. [%.3f] %s  %s\n", i+1, item.Score, item.Document.ID, item.Document.Title)
		}
		return nil
	}

	resp, err := system.Search(ctx, query, kind, c.String("user"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("%d results for %q (%s engine)\n", resp.TotalResults, query, resp.Metadata.StrategyName)
	for i, r := range resp.Results {
		fmt.Printf("%2d. [%.3f] %s  %s\n", i+1, r.Score, r.Document.ID, r.Document.Title)
	}

	if path := c.String("export"); path != "" {
		if err := system.ExportResults(path, resp.Results); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Printf("Exported %d results to %s\n", len(resp.Results), path)
	}
	return nil
}

func orderCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("expected an order argument")
	}
	orderText := strings.Join(c.Args().Slice(), " ")

	system, err := openSystem(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer system.Close()

	order, err := system.PlaceOrder(context.Background(), c.String("user"), orderText)
	if err != nil {
		return fmt.Errorf("order failed: %w", err)
	}

	fmt.Printf("Order #%d placed: %s\n", order.Seq, strings.Join(order.Items, ", "))
	return nil
}

func reportCommand(c *cli.Context) error {
	system, err := openSystem(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer system.Close()

	return system.Report(context.Background(), os.Stdout)
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
