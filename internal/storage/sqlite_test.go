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

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.life/history.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".life", "history.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{
		Pattern:     "glider_106.lif",
		Title:       "Glider",
		Topology:    "torus",
		Rows:        160,
		Cols:        90,
		Generations: 1234,
		Peak:        5,
		Population:  5,
		Duration:    41,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("run ID %q does not look like a uuid", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Pattern != "glider_106.lif" || got.Title != "Glider" || got.Topology != "torus" {
		t.Errorf("identity fields = %q/%q/%q", got.Pattern, got.Title, got.Topology)
	}
	if got.Rows != 160 || got.Cols != 90 || got.Generations != 1234 || got.Peak != 5 || got.Population != 5 || got.Duration != 41 {
		t.Errorf("counters = %+v", got)
	}
}

func TestStoreSaveKeepsGivenRunID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{RunID: "fixed", Pattern: "p", Topology: "hedge", Rows: 1, Cols: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed" {
		t.Errorf("SaveRun() = %q, want fixed", id)
	}
	if _, err := store.SaveRun(RunRecord{RunID: "fixed", Pattern: "p", Topology: "hedge", Rows: 1, Cols: 1}); err == nil {
		t.Error("duplicate run ID should fail")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("RunByID() = %+v, want nil", got)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(RunRecord{Pattern: "p", Topology: "hedge", Rows: 4, Cols: 4, Generations: uint64(i)}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	// Newest first
	if runs[0].Generations != 4 || runs[1].Generations != 3 || runs[2].Generations != 2 {
		t.Errorf("runs not newest first: %d %d %d", runs[0].Generations, runs[1].Generations, runs[2].Generations)
	}
}

func TestStorePatternRuns(t *testing.T) {
	store := openTestStore(t)

	for _, gens := range []uint64{50, 500, 5} {
		store.SaveRun(RunRecord{Pattern: "acorn", Topology: "torus", Rows: 8, Cols: 8, Generations: gens})
	}
	store.SaveRun(RunRecord{Pattern: "glider", Topology: "torus", Rows: 8, Cols: 8, Generations: 9999})

	runs, err := store.PatternRuns("acorn", 10)
	if err != nil {
		t.Fatalf("PatternRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 acorn runs, got %d", len(runs))
	}
	if runs[0].Generations != 500 || runs[1].Generations != 50 || runs[2].Generations != 5 {
		t.Errorf("runs not ordered by generations: %d %d %d", runs[0].Generations, runs[1].Generations, runs[2].Generations)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Pattern: "a", Topology: "hedge", Rows: 1, Cols: 1})
	store.SaveRun(RunRecord{Pattern: "b", Topology: "hedge", Rows: 1, Cols: 1})

	if err := store.ClearRuns("a"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 || runs[0].Pattern != "b" {
		t.Errorf("after clearing a: %+v", runs)
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ = store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clearing all, got %d", len(runs))
	}
}

func TestStoreAllPatternStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Pattern: "acorn", Topology: "torus", Rows: 8, Cols: 8, Generations: 100, Peak: 30})
	store.SaveRun(RunRecord{Pattern: "acorn", Topology: "torus", Rows: 8, Cols: 8, Generations: 700, Peak: 12})
	store.SaveRun(RunRecord{Pattern: "toad", Topology: "hedge", Rows: 8, Cols: 8, Generations: 2, Peak: 6})

	stats, err := store.AllPatternStats()
	if err != nil {
		t.Fatalf("AllPatternStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 patterns, got %d", len(stats))
	}
	acorn := stats["acorn"]
	if acorn == nil {
		t.Fatal("missing acorn stats")
	}
	if acorn.Runs != 2 || acorn.MaxGenerations != 700 || acorn.MaxPeak != 30 {
		t.Errorf("acorn stats = %+v", acorn)
	}
}
