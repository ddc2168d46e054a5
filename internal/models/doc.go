// Package models defines the domain models for groups and pages.
//
// # Models
//
//   - Group: a named collection of pages, created with one default page
//   - Page: text content belonging to exactly one group
//   - GroupPageRow / GroupListing: the main listing, flat and folded
//   - PageWithGroup: a page joined with its group's name, used by the report
//
// # Relationships
//
// A group owns its pages. Pages reference their group by ID and are removed
// when the group is deleted. No other entity references a page.
package models
