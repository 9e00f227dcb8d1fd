package catalog

import (
	"html/template"
	"net/url"

	catalogstore "github.com/dalemusser/devcatalog/internal/app/store/catalog"
	"github.com/dalemusser/devcatalog/internal/app/system/catalogview"
	"github.com/dalemusser/devcatalog/internal/app/system/htmlsanitize"
	"github.com/dalemusser/devcatalog/internal/app/system/viewdata"
	"github.com/dalemusser/devcatalog/internal/app/system/viewsession"
	"github.com/dalemusser/devcatalog/internal/domain/models"
)

// catalogPageData backs catalog_page and the catalog_panel snippet.
type catalogPageData struct {
	viewdata.BaseVM

	ViewToken string
	View      catalogview.View

	Menu     []menuItem
	Category string // display name of the selected category
	Panels   []panel
}

type menuItem struct {
	Index    int
	Name     string
	ID       string
	Selected bool
}

type panel struct {
	ID    string
	Name  string
	Items []resourceItem
}

type resourceItem struct {
	Name        string
	URL         string
	Image       string
	DetailURL   string
	Description template.HTML
}

// resourcePageData backs resource_page.
type resourcePageData struct {
	viewdata.BaseVM

	ViewToken   string
	Resource    resourceItem
	Category    string
	CategoryURL string
	Subcategory string
	Related     []resourceItem
}

// alertData backs the alert_banner snippet.
type alertData struct {
	viewdata.BaseVM
	ViewToken string
}

func newCatalogPageData(base viewdata.BaseVM, token string, v catalogview.View) catalogPageData {
	data := catalogPageData{
		BaseVM:    base,
		ViewToken: token,
		View:      v,
	}
	for i, c := range v.Categories {
		item := menuItem{Index: c.ID, Name: c.Name, Selected: c.ID == v.SelectedIndex}
		if i < len(v.Groups) {
			item.ID = v.Groups[i].Category
		}
		data.Menu = append(data.Menu, item)
	}
	if v.Group != nil {
		data.Category = catalogstore.MapCategory(v.Group.Category)
	}
	for _, b := range v.Buckets {
		p := panel{ID: b.ID, Name: b.Name}
		for _, r := range b.Resources {
			p.Items = append(p.Items, newResourceItem(r, token))
		}
		data.Panels = append(data.Panels, p)
	}
	return data
}

func newResourceItem(r models.Resource, token string) resourceItem {
	return resourceItem{
		Name:        r.Name,
		URL:         r.URL,
		Image:       r.Image,
		DetailURL:   detailURL(r.Name, token),
		Description: htmlsanitize.PrepareForDisplay(r.Description),
	}
}

// detailURL links to a resource's page within the same view.
func detailURL(name, token string) string {
	u := "/recurso/" + url.PathEscape(name)
	if token != "" {
		u += "?" + url.Values{viewsession.TokenField: {token}}.Encode()
	}
	return u
}
