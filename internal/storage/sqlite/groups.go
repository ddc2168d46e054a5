package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fatihpirim/PatriotHacks/internal/models"
	"github.com/fatihpirim/PatriotHacks/internal/storage"
)

// ListGroupsWithPages returns all groups left-joined with their pages,
// ordered by group ID then page ID.
func (s *SQLiteStore) ListGroupsWithPages(ctx context.Context) ([]models.GroupPageRow, error) {
	var result []models.GroupPageRow
	err := s.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT g.group_id, g.name, p.page_id, p.text
			FROM groups g
			LEFT JOIN pages p ON g.group_id = p.group_id
			ORDER BY g.group_id, p.page_id
		`)
		if err != nil {
			return fmt.Errorf("failed to list groups: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				row    models.GroupPageRow
				pageID sql.NullInt64
				text   sql.NullString
			)
			if err := rows.Scan(&row.GroupID, &row.Name, &pageID, &text); err != nil {
				return fmt.Errorf("failed to scan group row: %w", err)
			}
			if pageID.Valid {
				id := pageID.Int64
				row.PageID = &id
				// A page with NULL text still exists; only an absent page
				// leaves both fields nil.
				t := text.String
				row.Text = &t
			}
			result = append(result, row)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate groups: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetGroup retrieves a group by ID.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	group := &models.Group{}
	err := s.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx,
			"SELECT group_id, name, date_created FROM groups WHERE group_id = ?",
			groupID,
		).Scan(&group.ID, &group.Name, &group.DateCreated)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %d", storage.ErrGroupNotFound, groupID)
		}
		if err != nil {
			return fmt.Errorf("failed to get group: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// CreateGroup inserts a group and its default page in a single transaction.
// The name check runs inside the same transaction, so two concurrent
// requests for one name cannot both succeed.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) (*models.Page, error) {
	dateCreated := time.Now().Format(models.DateCreatedLayout)
	var (
		groupID int64
		page    models.Page
	)

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		// Check if the group already exists
		var existing int64
		err := tx.QueryRowContext(ctx,
			"SELECT group_id FROM groups WHERE name = ?",
			group.Name,
		).Scan(&existing)
		if err == nil {
			return fmt.Errorf("%w: %s", storage.ErrDuplicateGroup, group.Name)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to check existing group: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			"INSERT INTO groups (name, date_created) VALUES (?, ?)",
			group.Name, dateCreated,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", storage.ErrDuplicateGroup, group.Name)
			}
			return fmt.Errorf("failed to insert group: %w", err)
		}
		groupID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read group id: %w", err)
		}

		// Every new group starts with one default page
		page = models.Page{GroupID: groupID, Text: models.DefaultPageText(group.Name)}
		res, err = tx.ExecContext(ctx,
			"INSERT INTO pages (group_id, text) VALUES (?, ?)",
			page.GroupID, page.Text,
		)
		if err != nil {
			return fmt.Errorf("failed to insert default page: %w", err)
		}
		page.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read page id: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	group.ID = groupID
	group.DateCreated = dateCreated
	return &page, nil
}

// DeleteGroup removes a group; its pages are removed by the ON DELETE CASCADE
// foreign key. A missing group is not an error.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, groupID int64) error {
	return s.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		if _, err := conn.ExecContext(ctx, "DELETE FROM groups WHERE group_id = ?", groupID); err != nil {
			return fmt.Errorf("failed to delete group: %w", err)
		}
		return nil
	})
}

// Counts returns the number of groups and pages.
func (s *SQLiteStore) Counts(ctx context.Context) (int, int, error) {
	var groups, pages int
	err := s.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx,
			"SELECT (SELECT COUNT(*) FROM groups), (SELECT COUNT(*) FROM pages)",
		).Scan(&groups, &pages)
		if err != nil {
			return fmt.Errorf("failed to count rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return groups, pages, nil
}
