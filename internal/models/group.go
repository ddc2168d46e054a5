package models

import "time"

// DateCreatedLayout is the layout of Group.DateCreated as stored in the database.
const DateCreatedLayout = "2006-01-02 15:04:05"

// Group is a named collection of pages.
// Deleting a group deletes all of its pages.
type Group struct {
	// ID is the surrogate key assigned by the database.
	ID int64

	// Name is the display name of the group (e.g., "Alpha").
	// Names are unique across groups.
	Name string

	// DateCreated is the local creation time, formatted with DateCreatedLayout.
	DateCreated string
}

// CreatedAt parses DateCreated. The zero time is returned if it cannot be parsed.
func (g *Group) CreatedAt() time.Time {
	t, err := time.ParseInLocation(DateCreatedLayout, g.DateCreated, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// GroupPageRow is one row of the groups-with-pages listing.
// PageID and Text are nil for a group that has no pages.
type GroupPageRow struct {
	GroupID int64
	Name    string
	PageID  *int64
	Text    *string
}

// GroupListing is a group together with its pages, in page ID order.
type GroupListing struct {
	Group Group
	Pages []Page
}

// GroupRows folds listing rows (ordered by group ID, then page ID) into one
// GroupListing per group, preserving order.
func GroupRows(rows []GroupPageRow) []GroupListing {
	var listings []GroupListing
	for _, row := range rows {
		if len(listings) == 0 || listings[len(listings)-1].Group.ID != row.GroupID {
			listings = append(listings, GroupListing{
				Group: Group{ID: row.GroupID, Name: row.Name},
			})
		}
		if row.PageID == nil {
			continue
		}
		page := Page{ID: *row.PageID, GroupID: row.GroupID}
		if row.Text != nil {
			page.Text = *row.Text
		}
		last := &listings[len(listings)-1]
		last.Pages = append(last.Pages, page)
	}
	return listings
}
