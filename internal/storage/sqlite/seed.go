package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fatihpirim/PatriotHacks/internal/models"
	"github.com/fatihpirim/PatriotHacks/internal/storage"
)

// sampleGroups is the sample data written by Seed. Sample groups do not get
// a default page; their pages are listed explicitly.
var sampleGroups = []struct {
	name  string
	pages []string
}{
	{"Group 1", []string{"This is the first page of Group 1", "This is the second page of Group 1"}},
	{"Group 2", []string{"This is the first page of Group 2"}},
}

// Seed inserts the sample groups and pages in one transaction.
// It fails with storage.ErrDuplicateGroup if a sample group already exists.
func (s *SQLiteStore) Seed(ctx context.Context) error {
	dateCreated := time.Now().Format(models.DateCreatedLayout)

	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, sg := range sampleGroups {
			res, err := tx.ExecContext(ctx,
				"INSERT INTO groups (name, date_created) VALUES (?, ?)",
				sg.name, dateCreated,
			)
			if err != nil {
				if isUniqueViolation(err) {
					return fmt.Errorf("%w: %s", storage.ErrDuplicateGroup, sg.name)
				}
				return fmt.Errorf("failed to insert sample group: %w", err)
			}
			groupID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read group id: %w", err)
			}

			for _, text := range sg.pages {
				_, err = tx.ExecContext(ctx,
					"INSERT INTO pages (group_id, text) VALUES (?, ?)",
					groupID, text,
				)
				if err != nil {
					return fmt.Errorf("failed to insert sample page: %w", err)
				}
			}
		}
		return nil
	})
}
