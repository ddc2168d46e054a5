// Package service implements the group and page operations on top of a
// storage.Store.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fatihpirim/PatriotHacks/internal/metrics"
	"github.com/fatihpirim/PatriotHacks/internal/models"
	"github.com/fatihpirim/PatriotHacks/internal/storage"
)

// GroupService implements the group and page operations.
type GroupService struct {
	store   storage.Store
	metrics *metrics.Metrics
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, m *metrics.Metrics) *GroupService {
	return &GroupService{store: store, metrics: m}
}

// ListGroups retrieves all groups with their pages, in group ID order.
func (s *GroupService) ListGroups(ctx context.Context) ([]models.GroupListing, error) {
	rows, err := s.store.ListGroupsWithPages(ctx)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, err
	}

	listings := models.GroupRows(rows)
	slog.Debug("ListGroups successful", "groups", len(listings), "rows", len(rows))
	return listings, nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		if !errors.Is(err, storage.ErrGroupNotFound) {
			slog.Error("GetGroup failed", "group_id", groupID, "error", err)
		}
		return nil, err
	}
	return group, nil
}

// CreateGroup creates a new group and its default page.
// Returns storage.ErrDuplicateGroup if the name is already taken.
func (s *GroupService) CreateGroup(ctx context.Context, name string) (*models.Group, error) {
	slog.Info("CreateGroup request received", "name", name)

	group := &models.Group{Name: name}
	page, err := s.store.CreateGroup(ctx, group)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateGroup) {
			s.metrics.DuplicateGroups.Inc()
			slog.Warn("CreateGroup rejected duplicate", "name", name)
			return nil, err
		}
		slog.Error("CreateGroup failed", "name", name, "error", err)
		return nil, err
	}

	s.metrics.GroupsCreated.Inc()
	slog.Info("Group created", "group_id", group.ID, "default_page_id", page.ID)
	return group, nil
}

// DeleteGroup removes a group and its pages. Missing groups are ignored.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID int64) error {
	slog.Info("DeleteGroup request received", "group_id", groupID)

	if err := s.store.DeleteGroup(ctx, groupID); err != nil {
		slog.Error("DeleteGroup failed", "group_id", groupID, "error", err)
		return err
	}

	s.metrics.GroupsDeleted.Inc()
	slog.Info("Group deleted", "group_id", groupID)
	return nil
}

// CreatePage adds a page to a group.
// Returns storage.ErrGroupNotFound if the group does not exist.
func (s *GroupService) CreatePage(ctx context.Context, groupID int64, text string) (*models.Page, error) {
	slog.Info("CreatePage request received", "group_id", groupID, "text_len", len(text))

	page := &models.Page{GroupID: groupID, Text: text}
	if err := s.store.CreatePage(ctx, page); err != nil {
		if errors.Is(err, storage.ErrGroupNotFound) {
			slog.Warn("CreatePage rejected unknown group", "group_id", groupID)
			return nil, err
		}
		slog.Error("CreatePage failed", "group_id", groupID, "error", err)
		return nil, err
	}

	s.metrics.PagesCreated.Inc()
	slog.Info("Page created", "group_id", groupID, "page_id", page.ID)
	return page, nil
}

// PageReport returns every page with its group name. Groups without pages
// do not appear.
func (s *GroupService) PageReport(ctx context.Context) ([]models.PageWithGroup, error) {
	rows, err := s.store.ListPagesWithGroupNames(ctx)
	if err != nil {
		slog.Error("PageReport failed", "error", err)
		return nil, err
	}
	return rows, nil
}
