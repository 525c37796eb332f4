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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/relevo"
	"github.com/poiesic/relevo/core"
	"github.com/poiesic/relevo/storage"
	"github.com/poiesic/relevo/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "relevo",
		Usage: "Relevance search over a note workspace",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:     "db",
				Aliases:  []string{"d"},
				Usage:    "Path to BadgerDB note database directory",
				Required: true,
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a note",
				ArgsUsage: "TITLE CONTENT",
				Action:    addCommand,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "tag",
						Usage: "Tag to attach (repeatable)",
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Note category",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search notes by free-text query",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: 10,
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort order: relevance, date, or title",
						Value: "relevance",
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Only return notes in this category",
					},
					&cli.StringSliceFlag{
						Name:  "tag",
						Usage: "Only return notes carrying one of these tags",
					},
				},
			},
			{
				Name:      "similar",
				Usage:     "Find notes similar to the given note ID",
				ArgsUsage: "NOTE_ID",
				Action:    similarCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: 10,
					},
				},
			},
			{
				Name:      "complete",
				Usage:     "Autocomplete a partial query",
				ArgsUsage: "PARTIAL",
				Action:    completeCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of candidates",
						Value: 5,
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Show corpus statistics",
				Action: statsCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

// openRepository opens the note store named by the --db flag.
func openRepository(c *cli.Context) (storage.NoteRepository, *badger.Backend, error) {
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	repo, err := badger.NewNoteRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("failed to create repository: %w", err)
	}
	return repo, backend, nil
}

func addCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: add TITLE [CONTENT]")
	}

	repo, backend, err := openRepository(c)
	if err != nil {
		return err
	}
	defer backend.Close()
	defer repo.Close()

	note := &core.Note{
		Title:    c.Args().Get(0),
		Content:  strings.Join(c.Args().Slice()[1:], " "),
		Tags:     c.StringSlice("tag"),
		Category: c.String("category"),
	}
	if err := core.ValidateNote(note); err != nil {
		return err
	}

	added, err := repo.AddNotes(context.Background(), note)
	if err != nil {
		return err
	}
	fmt.Printf("Added note %d: %q\n", added[0].Id, added[0].Title)
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: search QUERY...")
	}
	query := strings.Join(c.Args().Slice(), " ")

	sortBy, err := parseSortOrder(c.String("sort"))
	if err != nil {
		return err
	}

	repo, backend, err := openRepository(c)
	if err != nil {
		return err
	}
	defer backend.Close()
	defer repo.Close()

	notes, err := repo.GetAllNotes(context.Background())
	if err != nil {
		return err
	}

	engine, err := relevo.NewEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	opts := &core.SearchOptions{
		Limit:  c.Int("limit"),
		SortBy: sortBy,
	}
	if c.String("category") != "" || len(c.StringSlice("tag")) > 0 {
		opts.Filters = &core.Filters{
			Category: c.String("category"),
			Tags:     c.StringSlice("tag"),
		}
	}

	results := engine.Search(query, notes, opts)
	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %q (%d)[%0.3f]\n", i, hit.Note.Title, hit.Note.Id, hit.Score)
		for _, snippet := range hit.Highlights {
			fmt.Printf("   %s\n", snippet)
		}
	}
	return nil
}

func similarCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: similar NOTE_ID")
	}
	var noteID uint64
	if _, err := fmt.Sscanf(c.Args().Get(0), "%d", &noteID); err != nil {
		return fmt.Errorf("invalid note ID %q: %w", c.Args().Get(0), err)
	}

	repo, backend, err := openRepository(c)
	if err != nil {
		return err
	}
	defer backend.Close()
	defer repo.Close()

	notes, err := repo.GetAllNotes(context.Background())
	if err != nil {
		return err
	}

	engine, err := relevo.NewEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	results := engine.FindSimilar(core.ID(noteID), notes, c.Int("limit"))
	fmt.Printf("Found %d similar notes\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %q (%d)[%0.3f]\n", i, hit.Note.Title, hit.Note.Id, hit.Score)
	}
	return nil
}

func completeCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: complete PARTIAL")
	}

	repo, backend, err := openRepository(c)
	if err != nil {
		return err
	}
	defer backend.Close()
	defer repo.Close()

	notes, err := repo.GetAllNotes(context.Background())
	if err != nil {
		return err
	}

	engine, err := relevo.NewEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	for _, candidate := range engine.Autocomplete(c.Args().Get(0), notes, c.Int("limit")) {
		fmt.Println(candidate)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	repo, backend, err := openRepository(c)
	if err != nil {
		return err
	}
	defer backend.Close()
	defer repo.Close()

	notes, err := repo.GetAllNotes(context.Background())
	if err != nil {
		return err
	}

	engine, err := relevo.NewEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	stats := engine.Stats(notes)
	fmt.Printf("Documents:    %d\n", stats.TotalDocuments)
	fmt.Printf("Vocabulary:   %d\n", stats.VocabularySize)
	fmt.Printf("Avg length:   %.1f tokens\n", stats.AverageDocumentLength)
	fmt.Println("Top terms:")
	for _, term := range stats.TopTerms {
		fmt.Printf("  %s (%d)\n", term.Term, term.Count)
	}
	return nil
}

func parseSortOrder(name string) (core.SortOrder, error) {
	switch name {
	case "relevance", "":
		return core.SortByRelevance, nil
	case "date":
		return core.SortByDate, nil
	case "title":
		return core.SortByTitle, nil
	default:
		return core.SortByRelevance, fmt.Errorf("unknown sort order %q", name)
	}
}
