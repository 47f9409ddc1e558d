package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	_, err = store.SaveGame(GameRecord{Score: 27, Turns: 30, ZeroScores: 8, Moyenne: 0.90})
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	_, err = store.SaveGame(GameRecord{Score: 33, Turns: 30, ZeroScores: 5, Moyenne: 1.10})
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	_, err = store.SaveMoyenne(1.25)
	if err != nil {
		t.Fatalf("SaveMoyenne() failed: %v", err)
	}

	records, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	// Newest first
	if records[0].Moyenne != 1.25 {
		t.Errorf("Expected newest moyenne 1.25, got %f", records[0].Moyenne)
	}
	if records[0].Turns != 0 {
		t.Errorf("Manual entry should have zero turns, got %d", records[0].Turns)
	}
	if records[2].Score != 27 {
		t.Errorf("Expected oldest score 27, got %d", records[2].Score)
	}
}

func TestStoreRecentMoyennesOrder(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	values := []float64{0.80, 0.95, 1.10, 1.05}
	for _, v := range values {
		if _, err := store.SaveMoyenne(v); err != nil {
			t.Fatalf("SaveMoyenne() failed: %v", err)
		}
	}

	moyennes, err := store.RecentMoyennes(10)
	if err != nil {
		t.Fatalf("RecentMoyennes() failed: %v", err)
	}

	if len(moyennes) != 4 {
		t.Fatalf("Expected 4 moyennes, got %d", len(moyennes))
	}

	// Chronological order, oldest first
	for i, want := range values {
		if moyennes[i] != want {
			t.Errorf("Moyenne %d: expected %f, got %f", i, want, moyennes[i])
		}
	}
}

func TestStoreRecentMoyennesLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 30; i++ {
		store.SaveMoyenne(float64(i) / 10.0)
	}

	moyennes, err := store.RecentMoyennes(20)
	if err != nil {
		t.Fatalf("RecentMoyennes() failed: %v", err)
	}

	if len(moyennes) != 20 {
		t.Fatalf("Expected 20 moyennes with limit, got %d", len(moyennes))
	}

	// Should be the last 20 (values 1.0 .. 2.9), oldest first
	if moyennes[0] != 1.0 {
		t.Errorf("Expected oldest kept moyenne 1.0, got %f", moyennes[0])
	}
	if moyennes[19] != 2.9 {
		t.Errorf("Expected newest moyenne 2.9, got %f", moyennes[19])
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty log
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.BestMoyenne != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveGame(GameRecord{Score: 30, Turns: 30, ZeroScores: 6, Moyenne: 1.00})
	store.SaveGame(GameRecord{Score: 45, Turns: 30, ZeroScores: 3, Moyenne: 1.50})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.BestMoyenne != 1.50 {
		t.Errorf("Expected best moyenne 1.50, got %f", stats.BestMoyenne)
	}
	if stats.AvgMoyenne != 1.25 {
		t.Errorf("Expected average moyenne 1.25, got %f", stats.AvgMoyenne)
	}
	if stats.TotalZeros != 9 {
		t.Errorf("Expected 9 total zeros, got %d", stats.TotalZeros)
	}
}

func TestStoreClearGames(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveMoyenne(1.0)
	store.SaveMoyenne(1.2)

	if err := store.ClearGames(); err != nil {
		t.Fatalf("ClearGames() failed: %v", err)
	}

	records, _ := store.RecentGames(10)
	if len(records) != 0 {
		t.Errorf("Expected 0 records after clear, got %d", len(records))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Verify nested directories are created as needed
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
