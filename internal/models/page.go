package models

import "fmt"

// Page is a block of text owned by exactly one Group.
type Page struct {
	// ID is the surrogate key assigned by the database.
	ID int64

	// GroupID references the owning group.
	GroupID int64

	// Text is the page content. It may be empty.
	Text string
}

// PageWithGroup is one row of the pages report: a page joined with the
// name of its group. Groups without pages never produce a row.
type PageWithGroup struct {
	GroupName string
	PageID    int64
	Text      string
}

// DefaultPageText returns the text of the page created alongside a new group.
func DefaultPageText(groupName string) string {
	return "Default page for " + groupName
}

// String formats the row the way the report command prints it.
func (p PageWithGroup) String() string {
	return fmt.Sprintf("Group: %s, Page ID: %d, Text: %s", p.GroupName, p.PageID, p.Text)
}
