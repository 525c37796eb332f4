package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/relevo/core"
	"github.com/poiesic/relevo/storage/badger"
)

// Sample mixed Japanese/English workspace notes for exercising the engine.
var samples = []core.Note{
	{Title: "Grocery list", Content: "Apples, wheat bread, green tea, and fresh tofu for the week.", Tags: []string{"shopping"}, Category: "personal"},
	{Title: "Meeting notes: roadmap review", Content: "Discussed the search ranking milestone and the autocomplete prototype.", Tags: []string{"work", "meeting"}, Category: "work"},
	{Title: "メモの取り方", Content: "会議中のメモは短い言葉で書く。後で整理する時間を必ず取る。", Tags: []string{"仕事"}, Category: "work"},
	{Title: "Recipe: miso soup", Content: "Dashi stock, miso paste, wakame, and cubed tofu. Simmer gently.", Tags: []string{"cooking", "recipe"}, Category: "personal"},
	{Title: "読書リスト", Content: "情報検索の教科書とベクトル空間モデルの論文を読む。", Tags: []string{"読書", "研究"}, Category: "study"},
	{Title: "Apple pie experiment", Content: "Second attempt with less sugar and a lattice crust. Much better.", Tags: []string{"cooking"}, Category: "personal"},
	{Title: "検索エンジンの設計", Content: "転置インデックスとTF-IDFによるランキングを実装する。日本語の分かち書きが必要。", Tags: []string{"研究", "開発"}, Category: "study"},
	{Title: "Workout plan", Content: "Monday rowing, Wednesday intervals, weekend long run by the river.", Tags: []string{"health"}, Category: "personal"},
	{Title: "旅行の計画", Content: "京都で紅葉を見る。宿は早めに予約すること。", Tags: []string{"旅行"}, Category: "personal"},
	{Title: "Bug triage", Content: "The ranking regression only reproduces with mixed script queries.", Tags: []string{"work", "bug"}, Category: "work"},
}

func main() {
	dbPath := flag.String("db", "./notes_db", "Path to BadgerDB note database directory")
	flag.Parse()

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	backend, err := badger.OpenBackend(*dbPath, false)
	if err != nil {
		slog.Error("failed to open database", "path", *dbPath, "err", err)
		os.Exit(1)
	}
	defer backend.Close()

	repo, err := badger.NewNoteRepository(backend)
	if err != nil {
		slog.Error("failed to create repository", "err", err)
		os.Exit(1)
	}
	defer repo.Close()

	ctx := context.Background()
	notes := make([]*core.Note, 0, len(samples))
	for i := range samples {
		note := samples[i]
		// Deterministic IDs so reseeding overwrites rather than duplicates
		note.Id = core.IDFromContent(note.Title)
		notes = append(notes, &note)
	}

	added, err := repo.AddNotes(ctx, notes...)
	if err != nil {
		slog.Error("failed to seed notes", "err", err)
		os.Exit(1)
	}
	slog.Info("seeded notes", "count", len(added), "path", *dbPath)
}
