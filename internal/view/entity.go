package view

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The admin and teacher dashboards are all the same shape: a titled table
// of one entity type with per-row actions. One parameterized list view
// replaces the near-identical page trees the product used to carry.

// EntityAction is one action offered on a row (or the list header).
type EntityAction struct {
	Label string
	// Target is the link or form action path.
	Target string
	// Post marks form-post actions; everything else renders as a link.
	Post bool
	// Confirm requires an explicit confirmation step before posting.
	// Destructive actions always set it.
	Confirm bool
}

// EntityRow is one rendered table row.
type EntityRow struct {
	Cells   []string
	Actions []EntityAction
}

// EntityPage describes one management list.
type EntityPage struct {
	Title   string
	Columns []string
	Rows    []EntityRow
	// HeaderActions sit above the table (create/add entry points).
	HeaderActions []EntityAction
	// Empty is shown when there are no rows.
	Empty string
}

// renderEntityList renders the shared management table inside whatever
// shell the route resolved.
func renderEntityList(c *gin.Context, p EntityPage) {
	c.HTML(http.StatusOK, "entity_list.html", page(c, p.Title, gin.H{
		"Page": p,
	}))
}
