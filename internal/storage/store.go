// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/fatihpirim/PatriotHacks/internal/models"
)

var (
	// ErrDuplicateGroup is returned when a group with the same name already exists.
	ErrDuplicateGroup = errors.New("group already exists")
	// ErrGroupNotFound is returned when an operation references a group that does not exist.
	ErrGroupNotFound = errors.New("group not found")
)

// Store defines the interface for group and page storage operations.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// ListGroupsWithPages returns one row per (group, page) pair plus one row
	// per group without pages, ordered by group ID then page ID.
	ListGroupsWithPages(ctx context.Context) ([]models.GroupPageRow, error)

	// GetGroup retrieves a group by ID.
	// Returns ErrGroupNotFound if the group does not exist.
	GetGroup(ctx context.Context, groupID int64) (*models.Group, error)

	// CreateGroup persists a new group together with its default page.
	// The group.ID and group.DateCreated fields are populated by the store.
	// Returns ErrDuplicateGroup, without mutating anything, if the name is taken.
	CreateGroup(ctx context.Context, group *models.Group) (*models.Page, error)

	// DeleteGroup removes a group and all of its pages.
	// Deleting a group that does not exist is not an error.
	DeleteGroup(ctx context.Context, groupID int64) error

	// CreatePage persists a new page. The page.ID field is populated by the store.
	// Returns ErrGroupNotFound if page.GroupID does not reference a group.
	CreatePage(ctx context.Context, page *models.Page) error

	// ListPagesWithGroupNames returns every page joined with its group's name.
	// Groups without pages are not included.
	ListPagesWithGroupNames(ctx context.Context) ([]models.PageWithGroup, error)

	// Counts returns the number of groups and pages.
	Counts(ctx context.Context) (groups, pages int, err error)

	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
