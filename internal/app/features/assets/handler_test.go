package assets_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/dalemusser/devcatalog/internal/app/features/assets"
	catalogstore "github.com/dalemusser/devcatalog/internal/app/store/catalog"
	"github.com/dalemusser/devcatalog/internal/domain/models"
	"github.com/dalemusser/devcatalog/internal/testutil"
	"go.uber.org/zap"
)

func newRouter(t *testing.T, src catalogstore.Source) http.Handler {
	t.Helper()
	return assets.Routes(assets.NewHandler(src, zap.NewNop()))
}

func assetFS(t *testing.T) fstest.MapFS {
	t.Helper()
	raw, err := json.Marshal(testutil.SampleResources())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return fstest.MapFS{"assets/data.json": {Data: raw}}
}

func decode(t *testing.T, rec *testutil.ResponseRecorder) []models.Resource {
	t.Helper()
	var out []models.Resource
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestServeData_All(t *testing.T) {
	router := newRouter(t, catalogstore.NewAssetSource(assetFS(t), "/assets/data.json"))

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/data.json"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertHeader(t, "Content-Type", "application/json; charset=utf-8")
	if got := decode(t, rec); len(got) != len(testutil.SampleResources()) {
		t.Errorf("got %d resources, want %d", len(got), len(testutil.SampleResources()))
	}
}

func TestServeData_FiltersByCategory(t *testing.T) {
	router := newRouter(t, catalogstore.NewAssetSource(assetFS(t), "assets/data.json"))

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/data.json?category=backend"))

	got := decode(t, rec)
	if len(got) != 3 {
		t.Fatalf("got %d backend resources, want 3", len(got))
	}
	for _, r := range got {
		if r.Category != "backend" {
			t.Errorf("unexpected category %q", r.Category)
		}
	}
}

func TestServeData_UnknownCategoryIsEmptyArray(t *testing.T) {
	router := newRouter(t, catalogstore.NewAssetSource(assetFS(t), "assets/data.json"))

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/data.json?category=cooking"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "[]")
}

func TestServeData_SourceError(t *testing.T) {
	src := testutil.NewFakeSource()
	src.SetErr(errors.New("disk gone"))
	router := newRouter(t, src)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/data.json"))

	rec.AssertStatus(t, http.StatusInternalServerError)
}
