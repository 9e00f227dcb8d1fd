package testutil

import (
	"context"
	"net/http"
	"sync"

	catalogstore "github.com/dalemusser/devcatalog/internal/app/store/catalog"
	"github.com/dalemusser/devcatalog/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// SampleResources is a small catalog spanning two categories. It includes
// one design record with a subcategory that design does not list.
func SampleResources() []models.Resource {
	return []models.Resource{
		{Name: "Coolors", Category: "design", Subcategory: "colors", URL: "https://coolors.co"},
		{Name: "Google Fonts", Category: "design", Subcategory: "fonts", URL: "https://fonts.google.com"},
		{Name: "Adobe Color", Category: "design", Subcategory: "colors", URL: "https://color.adobe.com"},
		{Name: "Unsplash", Category: "design", Subcategory: "images", URL: "https://unsplash.com"},
		{Name: "Stray", Category: "design", Subcategory: "apis"},
		{Name: "VisuAlgo", Category: "backend", Subcategory: "learningTools", URL: "https://visualgo.net"},
		{Name: "Replit", Category: "backend", Subcategory: "onlineCompilers", URL: "https://replit.com"},
		{Name: "Exercism", Category: "backend", Subcategory: "exercisesChallenges", URL: "https://exercism.org"},
	}
}

// FakeSource is an in-memory catalogstore.Source that filters by category
// and records every request. Set Err to make fetches fail.
type FakeSource struct {
	mu       sync.Mutex
	Data     []models.Resource
	Err      error
	requests []string
}

// NewFakeSource returns a source over SampleResources.
func NewFakeSource() *FakeSource {
	return &FakeSource{Data: SampleResources()}
}

// Fetch implements catalogstore.Source.
func (f *FakeSource) Fetch(ctx context.Context, category string) ([]models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, category)
	if f.Err != nil {
		return nil, f.Err
	}
	var out []models.Resource
	for _, r := range f.Data {
		if category == "" || r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

// SetErr swaps the failure returned by Fetch.
func (f *FakeSource) SetErr(err error) {
	f.mu.Lock()
	f.Err = err
	f.mu.Unlock()
}

// Requests returns the category of each Fetch call, in order.
func (f *FakeSource) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

// NewStore returns a catalog store over src.
func NewStore(src catalogstore.Source) *catalogstore.Store {
	return catalogstore.New(src)
}
