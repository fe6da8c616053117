package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/neon-pong/internal/leaderboard"
	"github.com/vovakirdan/neon-pong/internal/pong"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() }) //nolint:errcheck
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestKV(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}

	if err := store.Put("k", []byte("v1")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put("k", []byte("v2")); err != nil {
		t.Fatalf("Put() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("k")
	if err != nil || !ok || string(v) != "v2" {
		t.Errorf("Get(k) = %q, %v, %v; expected v2", v, ok, err)
	}

	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("key should be gone after Delete")
	}
	if err := store.Delete("k"); err != nil {
		t.Errorf("deleting an absent key should succeed, got %v", err)
	}
}

func TestLeaderboardPersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	board := leaderboard.New(store.Leaderboard(), nil)

	if top := board.Top(leaderboard.DefaultTop); len(top) != 0 {
		t.Fatalf("absent key should be an empty list, got %v", top)
	}

	for _, score := range []int{2, 5, 3} {
		if err := board.Record(leaderboard.Entry{Name: "Razal-Loop", Score: score, Difficulty: "easy"}); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}
	store.Close() //nolint:errcheck

	// Reopen and verify the data persisted
	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	raw, ok, err := store.Get(leaderboard.Key)
	if err != nil || !ok {
		t.Fatalf("leaderboard key missing: %v", err)
	}
	want := `[{"name":"Razal-Loop","score":5,"difficulty":"easy"},` +
		`{"name":"Razal-Loop","score":3,"difficulty":"easy"},` +
		`{"name":"Razal-Loop","score":2,"difficulty":"easy"}]`
	if string(raw) != want {
		t.Errorf("stored blob = %s\nexpected %s", raw, want)
	}

	top := leaderboard.New(store.Leaderboard(), nil).Top(leaderboard.DefaultTop)
	if len(top) != 3 || top[0].Score != 5 {
		t.Errorf("Top() after reopen = %v", top)
	}
}

func TestLeaderboardMalformedBlob(t *testing.T) {
	store := openTestStore(t)
	if err := store.Put(leaderboard.Key, []byte("not json")); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Leaderboard().Load(); err == nil {
		t.Error("Load() should report malformed data")
	}
	board := leaderboard.New(store.Leaderboard(), nil)
	if top := board.Top(leaderboard.DefaultTop); len(top) != 0 {
		t.Errorf("malformed data should degrade to empty, got %v", top)
	}
}

func TestMatchHistory(t *testing.T) {
	store := openTestStore(t)

	results := []pong.Result{
		{Difficulty: "easy", Winner: pong.SidePlayer, PlayerScore: 5, AIScore: 1, Duration: 40 * time.Second, Ticks: 2400},
		{Difficulty: "easy", Winner: pong.SideAI, PlayerScore: 2, AIScore: 5, Duration: 30 * time.Second, Ticks: 1800},
		{Difficulty: "hard", Winner: pong.SideAI, PlayerScore: 0, AIScore: 5, Duration: 20 * time.Second, Ticks: 1200},
		{Difficulty: "easy", Winner: pong.SidePlayer, PlayerScore: 5, AIScore: 4, Duration: 50 * time.Second, Ticks: 3000},
	}
	for _, r := range results {
		if err := store.RecordResult(r); err != nil {
			t.Fatalf("RecordResult() failed: %v", err)
		}
	}

	recent, err := store.RecentMatches(2)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent matches, got %d", len(recent))
	}
	if recent[0].AIScore != 4 || recent[0].Winner != "player" || recent[0].DurationMS != 50000 {
		t.Errorf("newest match = %+v", recent[0])
	}
	if recent[1].Difficulty != "hard" {
		t.Errorf("second newest = %+v", recent[1])
	}

	stats, err := store.StatsByDifficulty()
	if err != nil {
		t.Fatalf("StatsByDifficulty() failed: %v", err)
	}
	easy := stats["easy"]
	if easy.Played != 3 || easy.Wins != 2 || easy.BestMargin != 4 {
		t.Errorf("easy stats = %+v", easy)
	}
	if rate := easy.WinRate(); rate < 0.66 || rate > 0.67 {
		t.Errorf("easy win rate = %v", rate)
	}
	hard := stats["hard"]
	if hard.Played != 1 || hard.Wins != 0 || hard.BestMargin != 0 {
		t.Errorf("hard stats = %+v", hard)
	}

	if err := store.ClearMatches(); err != nil {
		t.Fatal(err)
	}
	if recent, _ := store.RecentMatches(10); len(recent) != 0 {
		t.Errorf("history should be empty after clear, got %d", len(recent))
	}
}

func TestStatsWinRateEmpty(t *testing.T) {
	if (Stats{}).WinRate() != 0 {
		t.Error("empty stats should have zero win rate")
	}
}
