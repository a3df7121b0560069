package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	runs := []ScoreEntry{
		{GameID: "recycling", Score: 10, Level: 3},
		{GameID: "recycling", Score: 4, Level: 1, Player: "alice"},
		{GameID: "recycling", Score: 10, Level: 2},
		{GameID: "other", Score: 50, Level: 9},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore(%+v) failed: %v", r, err)
		}
	}

	scores, err := store.TopScores("recycling", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Equal scores are ranked by level reached.
	expected := []struct{ score, level int }{{10, 3}, {10, 2}, {4, 1}}
	for i, e := range expected {
		if scores[i].Score != e.score || scores[i].Level != e.level {
			t.Errorf("scores[%d] = %d/L%d, expected %d/L%d",
				i, scores[i].Score, scores[i].Level, e.score, e.level)
		}
	}
	if scores[2].Player != "alice" {
		t.Errorf("Player not stored, got %q", scores[2].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveDefaults(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveScore(ScoreEntry{Score: 1}); err == nil {
		t.Error("empty game id should be rejected")
	}

	if _, err := store.SaveScore(ScoreEntry{GameID: "recycling", Score: 2}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	scores, _ := store.TopScores("recycling", 1)
	if len(scores) != 1 || scores[0].Level != 1 {
		t.Errorf("level should default to 1, got %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{GameID: "test", Score: (i + 1) * 100, Level: 1})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("recycling")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		store.SaveScore(ScoreEntry{GameID: "recycling", Score: s})
	}

	high, err = store.HighScore("recycling")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore(ScoreEntry{GameID: "recycling", Score: 100})
	store.SaveScore(ScoreEntry{GameID: "recycling", Score: 200})
	store.SaveScore(ScoreEntry{GameID: "other", Score: 300})

	if err := store.ClearScores("recycling"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("recycling", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Errorf("other game should not be affected by clearing recycling")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 20; i++ {
		store.SaveScore(ScoreEntry{GameID: "test", Score: i * 10})
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	stats, err := store.GetGameStats("recycling")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats expected, got %+v", stats)
	}

	store.SaveScore(ScoreEntry{GameID: "recycling", Score: 4, Level: 1})
	store.SaveScore(ScoreEntry{GameID: "recycling", Score: 12, Level: 3})

	stats, err = store.GetGameStats("recycling")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 12 || stats.BestLevel != 3 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.AvgScore != 8 || stats.TotalScore != 16 {
		t.Errorf("unexpected averages %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
