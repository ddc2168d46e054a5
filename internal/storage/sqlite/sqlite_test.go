package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fatihpirim/PatriotHacks/internal/models"
	"github.com/fatihpirim/PatriotHacks/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "grouppages-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustCreateGroup(t *testing.T, store *SQLiteStore, name string) *models.Group {
	t.Helper()
	group := &models.Group{Name: name}
	if _, err := store.CreateGroup(context.Background(), group); err != nil {
		t.Fatalf("CreateGroup(%q) failed: %v", name, err)
	}
	return group
}

func mustCounts(t *testing.T, store *SQLiteStore) (int, int) {
	t.Helper()
	groups, pages, err := store.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	return groups, pages
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGroup assigns ID and creates default page", func(t *testing.T) {
		group := &models.Group{Name: "Roommates"}
		page, err := store.CreateGroup(ctx, group)
		if err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		if group.ID == 0 {
			t.Error("Expected group ID to be assigned")
		}
		if group.CreatedAt().IsZero() {
			t.Errorf("Expected parseable DateCreated, got %q", group.DateCreated)
		}
		if page.GroupID != group.ID {
			t.Errorf("Default page group mismatch: got %d, want %d", page.GroupID, group.ID)
		}
		if page.Text != "Default page for Roommates" {
			t.Errorf("Unexpected default page text: %q", page.Text)
		}
	})

	t.Run("GetGroup retrieves group", func(t *testing.T) {
		original := mustCreateGroup(t, store, "Work Lunch")

		retrieved, err := store.GetGroup(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if retrieved.Name != original.Name {
			t.Errorf("Name mismatch: got %s, want %s", retrieved.Name, original.Name)
		}
		if retrieved.DateCreated != original.DateCreated {
			t.Errorf("DateCreated mismatch: got %s, want %s", retrieved.DateCreated, original.DateCreated)
		}
	})

	t.Run("GetGroup returns ErrGroupNotFound for nonexistent group", func(t *testing.T) {
		_, err := store.GetGroup(ctx, 999999)
		if !errors.Is(err, storage.ErrGroupNotFound) {
			t.Errorf("Expected ErrGroupNotFound, got %v", err)
		}
	})

	t.Run("CreateGroup rejects duplicate name without mutation", func(t *testing.T) {
		mustCreateGroup(t, store, "Dup")
		groupsBefore, pagesBefore := mustCounts(t, store)

		_, err := store.CreateGroup(ctx, &models.Group{Name: "Dup"})
		if !errors.Is(err, storage.ErrDuplicateGroup) {
			t.Fatalf("Expected ErrDuplicateGroup, got %v", err)
		}

		groupsAfter, pagesAfter := mustCounts(t, store)
		if groupsAfter != groupsBefore || pagesAfter != pagesBefore {
			t.Errorf("Counts changed: groups %d->%d, pages %d->%d",
				groupsBefore, groupsAfter, pagesBefore, pagesAfter)
		}
	})

	t.Run("CreatePage with empty text round-trips", func(t *testing.T) {
		group := mustCreateGroup(t, store, "Empty Text")
		page := &models.Page{GroupID: group.ID, Text: ""}
		if err := store.CreatePage(ctx, page); err != nil {
			t.Fatalf("CreatePage failed: %v", err)
		}
		if page.ID == 0 {
			t.Error("Expected page ID to be assigned")
		}

		rows, err := store.ListGroupsWithPages(ctx)
		if err != nil {
			t.Fatalf("ListGroupsWithPages failed: %v", err)
		}
		found := false
		for _, row := range rows {
			if row.PageID != nil && *row.PageID == page.ID {
				found = true
				if row.Text == nil || *row.Text != "" {
					t.Errorf("Expected empty text, got %v", row.Text)
				}
			}
		}
		if !found {
			t.Errorf("Page %d not found in listing", page.ID)
		}
	})

	t.Run("CreatePage returns ErrGroupNotFound for nonexistent group", func(t *testing.T) {
		groupsBefore, pagesBefore := mustCounts(t, store)

		err := store.CreatePage(ctx, &models.Page{GroupID: 424242, Text: "orphan"})
		if !errors.Is(err, storage.ErrGroupNotFound) {
			t.Fatalf("Expected ErrGroupNotFound, got %v", err)
		}

		groupsAfter, pagesAfter := mustCounts(t, store)
		if groupsAfter != groupsBefore || pagesAfter != pagesBefore {
			t.Error("Expected no mutation after rejected page")
		}
	})

	t.Run("DeleteGroup of nonexistent group is a no-op", func(t *testing.T) {
		groupsBefore, pagesBefore := mustCounts(t, store)
		if err := store.DeleteGroup(ctx, 777777); err != nil {
			t.Fatalf("DeleteGroup failed: %v", err)
		}
		groupsAfter, pagesAfter := mustCounts(t, store)
		if groupsAfter != groupsBefore || pagesAfter != pagesBefore {
			t.Error("Expected no mutation")
		}
	})
}

func TestDeleteGroupCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doomed := mustCreateGroup(t, store, "Doomed")
	kept := mustCreateGroup(t, store, "Kept")
	for _, text := range []string{"one", "two"} {
		if err := store.CreatePage(ctx, &models.Page{GroupID: doomed.ID, Text: text}); err != nil {
			t.Fatalf("CreatePage failed: %v", err)
		}
	}
	if err := store.CreatePage(ctx, &models.Page{GroupID: kept.ID, Text: "stay"}); err != nil {
		t.Fatalf("CreatePage failed: %v", err)
	}

	if err := store.DeleteGroup(ctx, doomed.ID); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}

	groups, pages := mustCounts(t, store)
	if groups != 1 {
		t.Errorf("Expected 1 group, got %d", groups)
	}
	if pages != 2 {
		t.Errorf("Expected 2 pages (kept group's), got %d", pages)
	}

	rows, err := store.ListGroupsWithPages(ctx)
	if err != nil {
		t.Fatalf("ListGroupsWithPages failed: %v", err)
	}
	for _, row := range rows {
		if row.GroupID != kept.ID {
			t.Errorf("Unexpected row for group %d", row.GroupID)
		}
	}
}

func TestListingJoins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alpha := mustCreateGroup(t, store, "Alpha")
	if err := store.CreatePage(ctx, &models.Page{GroupID: alpha.ID, Text: "Hello"}); err != nil {
		t.Fatalf("CreatePage failed: %v", err)
	}

	// A group without pages can only come from outside CreateGroup.
	res, err := store.db.ExecContext(ctx,
		"INSERT INTO groups (name, date_created) VALUES (?, ?)", "Empty", "2024-01-01 00:00:00")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	emptyID, _ := res.LastInsertId()

	t.Run("LEFT JOIN includes page-less group once", func(t *testing.T) {
		rows, err := store.ListGroupsWithPages(ctx)
		if err != nil {
			t.Fatalf("ListGroupsWithPages failed: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("Expected 3 rows, got %d", len(rows))
		}

		if rows[0].GroupID != alpha.ID || rows[1].GroupID != alpha.ID {
			t.Errorf("Expected Alpha rows first, got %+v", rows[:2])
		}
		if *rows[0].PageID >= *rows[1].PageID {
			t.Errorf("Expected pages ordered by ID: %d, %d", *rows[0].PageID, *rows[1].PageID)
		}
		if *rows[0].Text != "Default page for Alpha" || *rows[1].Text != "Hello" {
			t.Errorf("Unexpected page texts: %q, %q", *rows[0].Text, *rows[1].Text)
		}

		last := rows[2]
		if last.GroupID != emptyID || last.Name != "Empty" {
			t.Errorf("Expected Empty group last, got %+v", last)
		}
		if last.PageID != nil || last.Text != nil {
			t.Errorf("Expected absent page fields, got %v %v", last.PageID, last.Text)
		}
	})

	t.Run("INNER JOIN excludes page-less group", func(t *testing.T) {
		rows, err := store.ListPagesWithGroupNames(ctx)
		if err != nil {
			t.Fatalf("ListPagesWithGroupNames failed: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("Expected 2 rows, got %d", len(rows))
		}
		for _, row := range rows {
			if row.GroupName != "Alpha" {
				t.Errorf("Unexpected group in report: %s", row.GroupName)
			}
		}
	})
}

func TestCreateGroupConcurrentDuplicates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const workers = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		created    int
		duplicates int
		others     []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.CreateGroup(ctx, &models.Group{Name: "Race"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, storage.ErrDuplicateGroup):
				duplicates++
			default:
				others = append(others, err)
			}
		}()
	}
	wg.Wait()

	if len(others) > 0 {
		t.Fatalf("Unexpected errors: %v", others)
	}
	if created != 1 || duplicates != workers-1 {
		t.Errorf("Expected 1 created and %d duplicates, got %d and %d", workers-1, created, duplicates)
	}
	groups, pages := mustCounts(t, store)
	if groups != 1 || pages != 1 {
		t.Errorf("Expected 1 group and 1 page, got %d and %d", groups, pages)
	}
}

func TestSeed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	groups, pages := mustCounts(t, store)
	if groups != 2 || pages != 3 {
		t.Errorf("Expected 2 groups and 3 pages, got %d and %d", groups, pages)
	}

	if err := store.Seed(ctx); !errors.Is(err, storage.ErrDuplicateGroup) {
		t.Errorf("Expected ErrDuplicateGroup on second seed, got %v", err)
	}
	groups, pages = mustCounts(t, store)
	if groups != 2 || pages != 3 {
		t.Errorf("Second seed must not mutate, got %d groups and %d pages", groups, pages)
	}
}

func TestDSN(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"data/app.db", "data/app.db?" + dsnParams},
		{"file:app.db?mode=rwc", "file:app.db?mode=rwc&" + dsnParams},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := dsn(tt.path); got != tt.want {
				t.Errorf("dsn(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
