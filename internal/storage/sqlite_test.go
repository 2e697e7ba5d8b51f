package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("marathon", 700); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("marathon"); high != 700 {
		t.Errorf("HighScore() after reopen = %d, expected 700", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("marathon", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("timed", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("marathon", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].Player != DefaultPlayer || scores[i].Difficulty != "normal" {
			t.Errorf("scores[%d] defaults = %q/%q", i, scores[i].Player, scores[i].Difficulty)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
	}

	timed, err := store.TopScores("timed", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(timed) != 1 {
		t.Errorf("Expected 1 timed score, got %d", len(timed))
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(Result{
		Mode:       "marathon",
		Player:     "bedivere",
		Score:      1200,
		Level:      3,
		Clears:     12,
		Difficulty: "hard",
		Ticks:      5400,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	scores, err := store.TopScores("marathon", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	got := scores[0]
	if got.ID != id || got.Player != "bedivere" || got.Level != 3 || got.Clears != 12 ||
		got.Difficulty != "hard" || got.Ticks != 5400 {
		t.Errorf("Round-trip mismatch: %+v", got)
	}

	if _, err := store.SaveResult(Result{Score: 10}); err == nil {
		t.Error("SaveResult() without a mode should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("timed", (i+1)*100)
	}

	scores, err := store.TopScores("timed", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Zero limit falls back to 10.
	store.SaveScore("timed", 1)
	all, _ := store.TopScores("timed", 0)
	if len(all) != 6 {
		t.Errorf("TopScores(0) returned %d, expected 6", len(all))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	store.SaveResult(Result{Mode: "marathon", Player: "first", Score: 300})
	store.SaveResult(Result{Mode: "marathon", Player: "second", Score: 300})

	scores, _ := store.TopScores("marathon", 2)
	if len(scores) != 2 || scores[0].Player != "first" {
		t.Errorf("Earlier score should rank first on ties: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("marathon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveScore("marathon", 100)
	store.SaveScore("marathon", 300)
	store.SaveScore("marathon", 200)

	high, err = store.HighScore("marathon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStorePlayerBest(t *testing.T) {
	store := openTestStore(t)
	store.SaveResult(Result{Mode: "timed", Player: "gawain", Score: 400})
	store.SaveResult(Result{Mode: "timed", Player: "gawain", Score: 900})
	store.SaveResult(Result{Mode: "timed", Player: "kay", Score: 1500})
	store.SaveResult(Result{Mode: "marathon", Player: "gawain", Score: 2000})

	tests := []struct {
		mode, player string
		want         int
	}{
		{"timed", "gawain", 900},
		{"timed", "kay", 1500},
		{"marathon", "gawain", 2000},
		{"marathon", "kay", 0},
	}

	for _, tc := range tests {
		got, err := store.PlayerBest(tc.mode, tc.player)
		if err != nil {
			t.Fatalf("PlayerBest() failed: %v", err)
		}
		if got != tc.want {
			t.Errorf("PlayerBest(%s, %s) = %d, expected %d", tc.mode, tc.player, got, tc.want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("marathon", 100)
	store.SaveScore("marathon", 200)
	store.SaveScore("timed", 300)

	if err := store.ClearScores("marathon"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("marathon", 10); len(scores) != 0 {
		t.Errorf("Expected 0 marathon scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("timed", 10); len(scores) != 1 {
		t.Errorf("Timed scores should not be affected by clearing marathon")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("timed", i*10)
	}

	scores, err := store.AllScores("timed")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("marathon")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Empty stats = %+v", empty)
	}

	store.SaveResult(Result{Mode: "marathon", Score: 100, Level: 2, Clears: 10})
	store.SaveResult(Result{Mode: "marathon", Score: 300, Level: 4, Clears: 30})
	store.SaveResult(Result{Mode: "timed", Score: 50, Clears: 5})

	st, err := store.GetGameStats("marathon")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if st.GamesCount != 2 || st.HighScore != 300 || st.AvgScore != 200 ||
		st.TotalScore != 400 || st.TotalClears != 40 || st.BestLevel != 4 {
		t.Errorf("Marathon stats = %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["timed"] == nil || all["timed"].TotalClears != 5 {
		t.Errorf("All stats = %+v", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.lambdooz/nested/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".lambdooz", "nested", "scores.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under the expanded home directory")
	}
}
