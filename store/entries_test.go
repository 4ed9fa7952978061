// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/danielhkuo/team-mood/testutil"
)

func countEntries(t *testing.T, db *sql.DB, accountID, date string) int {
	t.Helper()
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM entry WHERE account_id = $1 AND entry_date = $2
	`, accountID, date).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count entries: %v", err)
	}
	return count
}

func TestEntryStore_CreateAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	accountID, _ := testutil.CreateTestAccount(t, db, cfg, "alice", nil)
	entries := NewEntryStore(db)

	created, err := entries.Create(accountID, "2026-08-28", 4)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Level != 4 || created.Date != "2026-08-28" {
		t.Errorf("Create() = %+v", created)
	}

	found, err := entries.Find(accountID, "2026-08-28")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if found.Level != 4 {
		t.Errorf("Find() level = %d, want 4", found.Level)
	}

	if _, err := entries.Find(accountID, "2026-08-27"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find() on another date = %v, want ErrNotFound", err)
	}
}

func TestEntryStore_CreateDuplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	accountID, _ := testutil.CreateTestAccount(t, db, cfg, "alice", nil)
	entries := NewEntryStore(db)

	if _, err := entries.Create(accountID, "2026-08-28", 3); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	_, err := entries.Create(accountID, "2026-08-28", 5)
	if !errors.Is(err, ErrDuplicateEntry) {
		t.Errorf("second Create() = %v, want ErrDuplicateEntry", err)
	}

	// The store must contain exactly one row, with the original level
	if n := countEntries(t, db, accountID, "2026-08-28"); n != 1 {
		t.Errorf("entry count = %d, want 1", n)
	}
	found, _ := entries.Find(accountID, "2026-08-28")
	if found.Level != 3 {
		t.Errorf("level after failed duplicate = %d, want 3", found.Level)
	}

	// Same account, different date is fine
	if _, err := entries.Create(accountID, "2026-08-29", 5); err != nil {
		t.Errorf("Create() on another date error = %v", err)
	}
}

func TestEntryStore_CreateInvalidLevel(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	accountID, _ := testutil.CreateTestAccount(t, db, cfg, "alice", nil)
	entries := NewEntryStore(db)

	for _, level := range []int{0, -1, 6, 100} {
		if _, err := entries.Create(accountID, "2026-08-28", level); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("Create(level=%d) = %v, want ErrInvalidLevel", level, err)
		}
	}

	if n := countEntries(t, db, accountID, "2026-08-28"); n != 0 {
		t.Errorf("entry count = %d, want 0 after rejected levels", n)
	}
}

func TestEntryStore_UpdateOrCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	accountID, _ := testutil.CreateTestAccount(t, db, cfg, "alice", nil)
	entries := NewEntryStore(db)

	// Creates when absent
	if _, err := entries.UpdateOrCreate(accountID, "2026-08-28", 2); err != nil {
		t.Fatalf("UpdateOrCreate() create error = %v", err)
	}
	found, _ := entries.Find(accountID, "2026-08-28")
	if found.Level != 2 {
		t.Errorf("level = %d, want 2", found.Level)
	}

	// Replaces when present, without growing the table
	if _, err := entries.UpdateOrCreate(accountID, "2026-08-28", 5); err != nil {
		t.Fatalf("UpdateOrCreate() replace error = %v", err)
	}
	found, _ = entries.Find(accountID, "2026-08-28")
	if found.Level != 5 {
		t.Errorf("level = %d, want 5", found.Level)
	}
	if n := countEntries(t, db, accountID, "2026-08-28"); n != 1 {
		t.Errorf("entry count = %d, want 1", n)
	}
}

func TestEntryStore_PartialUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	accountID, _ := testutil.CreateTestAccount(t, db, cfg, "alice", nil)
	entries := NewEntryStore(db)

	// Never creates
	if _, err := entries.PartialUpdate(accountID, "2026-08-28", 3); !errors.Is(err, ErrNotFound) {
		t.Errorf("PartialUpdate() on absent entry = %v, want ErrNotFound", err)
	}
	if n := countEntries(t, db, accountID, "2026-08-28"); n != 0 {
		t.Errorf("entry count = %d, want 0", n)
	}

	// Updates an existing entry
	testutil.CreateTestEntry(t, db, accountID, "2026-08-28", 1)
	if _, err := entries.PartialUpdate(accountID, "2026-08-28", 4); err != nil {
		t.Fatalf("PartialUpdate() error = %v", err)
	}
	found, _ := entries.Find(accountID, "2026-08-28")
	if found.Level != 4 {
		t.Errorf("level = %d, want 4", found.Level)
	}
}

func TestEntryStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	accountID, _ := testutil.CreateTestAccount(t, db, cfg, "alice", nil)
	entries := NewEntryStore(db)

	if err := entries.Delete(accountID, "2026-08-28"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() on absent entry = %v, want ErrNotFound", err)
	}

	testutil.CreateTestEntry(t, db, accountID, "2026-08-28", 3)
	if err := entries.Delete(accountID, "2026-08-28"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Deleting then re-querying looks as if the entry never existed
	listed, err := entries.ListForDate("2026-08-28", nil)
	if err != nil {
		t.Fatalf("ListForDate() error = %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("ListForDate() returned %d entries after delete, want 0", len(listed))
	}
}

func TestEntryStore_ListForDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	teamA := testutil.CreateTestTeam(t, db, "Team A")
	teamB := testutil.CreateTestTeam(t, db, "Team B")
	user1, _ := testutil.CreateTestAccount(t, db, cfg, "user1", &teamA)
	user2, _ := testutil.CreateTestAccount(t, db, cfg, "user2", &teamA)
	user3, _ := testutil.CreateTestAccount(t, db, cfg, "user3", &teamB)
	loner, _ := testutil.CreateTestAccount(t, db, cfg, "loner", nil)

	testutil.CreateTestEntry(t, db, user1, "2026-08-28", 3)
	testutil.CreateTestEntry(t, db, user2, "2026-08-28", 2)
	testutil.CreateTestEntry(t, db, user3, "2026-08-28", 4)
	testutil.CreateTestEntry(t, db, loner, "2026-08-28", 5)
	testutil.CreateTestEntry(t, db, user1, "2026-08-27", 1)

	entries := NewEntryStore(db)

	t.Run("cross-team view", func(t *testing.T) {
		listed, err := entries.ListForDate("2026-08-28", nil)
		if err != nil {
			t.Fatalf("ListForDate() error = %v", err)
		}
		if len(listed) != 4 {
			t.Errorf("got %d entries, want 4", len(listed))
		}
	})

	t.Run("team-scoped view", func(t *testing.T) {
		listed, err := entries.ListForDate("2026-08-28", &teamA)
		if err != nil {
			t.Fatalf("ListForDate() error = %v", err)
		}
		if len(listed) != 2 {
			t.Errorf("got %d entries, want 2 for team A", len(listed))
		}
		for _, entry := range listed {
			if entry.AccountID != user1 && entry.AccountID != user2 {
				t.Errorf("unexpected account %s in team A view", entry.AccountID)
			}
		}
	})

	t.Run("exact date only", func(t *testing.T) {
		listed, err := entries.ListForDate("2026-08-27", nil)
		if err != nil {
			t.Fatalf("ListForDate() error = %v", err)
		}
		if len(listed) != 1 || listed[0].Level != 1 {
			t.Errorf("got %+v, want the single level-1 entry", listed)
		}
	})

	t.Run("empty date", func(t *testing.T) {
		listed, err := entries.ListForDate("2026-01-01", nil)
		if err != nil {
			t.Fatalf("ListForDate() error = %v", err)
		}
		if len(listed) != 0 {
			t.Errorf("got %d entries, want 0", len(listed))
		}
	})
}
