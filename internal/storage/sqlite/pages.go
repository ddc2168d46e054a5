package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fatihpirim/PatriotHacks/internal/models"
	"github.com/fatihpirim/PatriotHacks/internal/storage"
)

// CreatePage inserts a page under page.GroupID. There is no separate
// existence check: the foreign key rejects unknown groups.
func (s *SQLiteStore) CreatePage(ctx context.Context, page *models.Page) error {
	return s.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx,
			"INSERT INTO pages (group_id, text) VALUES (?, ?)",
			page.GroupID, page.Text,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: %d", storage.ErrGroupNotFound, page.GroupID)
			}
			return fmt.Errorf("failed to insert page: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read page id: %w", err)
		}
		page.ID = id
		return nil
	})
}

// ListPagesWithGroupNames returns every page inner-joined with its group name.
func (s *SQLiteStore) ListPagesWithGroupNames(ctx context.Context) ([]models.PageWithGroup, error) {
	var result []models.PageWithGroup
	err := s.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT groups.name, pages.page_id, pages.text
			FROM pages
			INNER JOIN groups ON pages.group_id = groups.group_id
			ORDER BY pages.page_id
		`)
		if err != nil {
			return fmt.Errorf("failed to list pages: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				row  models.PageWithGroup
				text sql.NullString
			)
			if err := rows.Scan(&row.GroupName, &row.PageID, &text); err != nil {
				return fmt.Errorf("failed to scan page: %w", err)
			}
			row.Text = text.String
			result = append(result, row)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate pages: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
