package middleware

import (
	"github.com/MalithSamaradiwakara/frontend/internal/route"
	"github.com/gin-gonic/gin"
)

// ContextKeyLayout is the Gin context key for the resolved shell layout.
const ContextKeyLayout = "layout"

// SetLayout records the layout the route table resolved for this request.
func SetLayout(c *gin.Context, layout route.Layout) {
	c.Set(ContextKeyLayout, layout)
}

// GetLayout returns the resolved layout, LayoutNone by default.
func GetLayout(c *gin.Context) route.Layout {
	val, exists := c.Get(ContextKeyLayout)
	if !exists {
		return route.LayoutNone
	}
	layout, ok := val.(route.Layout)
	if !ok {
		return route.LayoutNone
	}
	return layout
}
