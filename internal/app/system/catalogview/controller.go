// Package catalogview holds the per-view catalog state machine: which
// category is selected, whether the layout is responsive, and the fetched
// resources partitioned by subcategory.
package catalogview

import (
	"context"
	"fmt"
	"sync"

	"github.com/dalemusser/devcatalog/internal/app/system/notify"
	"github.com/dalemusser/devcatalog/internal/app/system/viewport"
	"github.com/dalemusser/devcatalog/internal/domain/models"
	"go.uber.org/zap"
)

// Alert text published when a category fetch fails.
const (
	FetchFailedTitle   = "Error"
	FetchFailedMessage = "No se pudieron cargar los recursos"
)

// Provider is the slice of the catalog store the controller needs.
type Provider interface {
	Categories() []models.Category
	CategoriesData() []models.CategoryGroup
	SubCategoryName(id string) string
	IndexOf(category string) int
	FetchByCategory(ctx context.Context, category string) ([]models.Resource, error)
}

// Navigator updates the external route after a user-driven selection.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// CategoryPath is the route for a category identifier.
func CategoryPath(category string) string {
	return "/categoria/" + category
}

// Controller is safe for concurrent use. Fetches run without the lock held;
// when two selections race, whichever fetch finishes last wins.
type Controller struct {
	provider Provider
	hub      *notify.Hub
	log      *zap.Logger

	// fixed after New
	categories       []models.Category
	groups           []models.CategoryGroup
	subcategoryNames map[string]string

	mu               sync.Mutex
	state            int
	categorySelected bool
	isMobile         bool
	data             []models.Resource
	filtered         map[string][]models.Resource
	filteredFor      *models.CategoryGroup
}

// New builds a controller in the unselected state. width is the current
// viewport width (0 when unknown).
func New(p Provider, hub *notify.Hub, width int, logger *zap.Logger) *Controller {
	if hub == nil {
		hub = notify.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		provider:   p,
		hub:        hub,
		log:        logger,
		categories: p.Categories(),
		groups:     p.CategoriesData(),
		isMobile:   viewport.IsMobile(width),
		filtered:   map[string][]models.Resource{},
	}
	c.subcategoryNames = c.buildSubcategoryNames()
	return c
}

// Hub returns the view's notification hub.
func (c *Controller) Hub() *notify.Hub { return c.hub }

// CategoryByIndex resolves a 1-based index against the controller's groups.
func (c *Controller) CategoryByIndex(index int) (models.CategoryGroup, bool) {
	if index < 1 || index > len(c.groups) {
		return models.CategoryGroup{}, false
	}
	return c.groups[index-1], true
}

// ApplyRoute preselects the category named by the route parameter without
// touching the route. Unknown or empty identifiers are ignored.
func (c *Controller) ApplyRoute(ctx context.Context, categoria string) error {
	if categoria == "" {
		return nil
	}
	if index := c.provider.IndexOf(categoria); index > 0 {
		return c.UpdateState(ctx, index, nil)
	}
	return nil
}

// UpdateState selects index, fetches that category and partitions the
// result. When nav is non-nil the route is updated after the fetch resolves.
//
// An index with no group marks the selection active and does nothing else.
// A failed fetch leaves the previous data in place, publishes an alert on
// the hub and returns the error.
func (c *Controller) UpdateState(ctx context.Context, index int, nav Navigator) error {
	c.mu.Lock()
	c.categorySelected = true
	c.state = index
	c.mu.Unlock()

	group, ok := c.CategoryByIndex(index)
	if !ok {
		return nil
	}

	data, err := c.provider.FetchByCategory(ctx, group.Category)
	if err != nil {
		c.log.Warn("catalog fetch failed",
			zap.String("category", group.Category),
			zap.Int("index", index),
			zap.Error(err))
		c.hub.ShowAlert(FetchFailedMessage, FetchFailedTitle)
		return fmt.Errorf("select category %q: %w", group.Category, err)
	}

	filtered := Partition(data, group.Subcategories)

	c.mu.Lock()
	c.data = data
	c.filtered = filtered
	c.filteredFor = &group
	c.mu.Unlock()

	if nav != nil {
		nav.Navigate(CategoryPath(group.Category))
	}
	return nil
}

// Resize recomputes the responsive flag from a new viewport width.
func (c *Controller) Resize(width int) {
	c.mu.Lock()
	c.isMobile = viewport.IsMobile(width)
	c.mu.Unlock()
}

// State returns the selected index (0 when nothing is selected).
func (c *Controller) State() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsMobile reports the responsive flag.
func (c *Controller) IsMobile() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isMobile
}

// Bucket is one subcategory's resources, in display order.
type Bucket struct {
	ID        string
	Name      string
	Resources []models.Resource
}

// View is a point-in-time copy of the controller state for rendering.
type View struct {
	SelectedIndex    int
	CategorySelected bool
	IsMobile         bool

	Categories       []models.Category
	Groups           []models.CategoryGroup
	SubcategoryNames map[string]string

	// Group the buckets were built for; nil before the first successful fetch.
	Group *models.CategoryGroup
	Data  []models.Resource

	Filtered map[string][]models.Resource
	Buckets  []Bucket
}

// Snapshot copies the current state.
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		SelectedIndex:    c.state,
		CategorySelected: c.categorySelected,
		IsMobile:         c.isMobile,
		Categories:       c.categories,
		Groups:           c.groups,
		SubcategoryNames: c.subcategoryNames,
		Data:             append([]models.Resource(nil), c.data...),
		Filtered:         make(map[string][]models.Resource, len(c.filtered)),
	}
	for k, rs := range c.filtered {
		v.Filtered[k] = append([]models.Resource(nil), rs...)
	}
	if c.filteredFor != nil {
		g := *c.filteredFor
		v.Group = &g
		for _, s := range g.Subcategories {
			v.Buckets = append(v.Buckets, Bucket{
				ID:        s,
				Name:      c.subcategoryNames[s],
				Resources: v.Filtered[s],
			})
		}
	}
	return v
}

func (c *Controller) buildSubcategoryNames() map[string]string {
	names := map[string]string{}
	for _, g := range c.groups {
		for _, s := range g.Subcategories {
			if name := c.provider.SubCategoryName(s); name != "" {
				names[s] = name
			}
		}
	}
	return names
}
