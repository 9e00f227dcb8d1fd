// internal/app/store/catalog/source.go
package catalogstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/devcatalog/internal/domain/models"
)

// ErrSourceUnavailable wraps every failure to reach or read the data asset.
var ErrSourceUnavailable = errors.New("catalog data source unavailable")

// CategoryParam is the query parameter the data asset filters on.
const CategoryParam = "category"

// maxAssetBytes bounds how much of a remote asset is decoded.
const maxAssetBytes = 8 << 20

// Source produces resource records. An empty category means "all records";
// otherwise the source is trusted to return only that category.
type Source interface {
	Fetch(ctx context.Context, category string) ([]models.Resource, error)
}

/*─────────────────────────────────────────────────────────────────────────────*
| HTTP source                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// HTTPSource fetches the JSON asset over HTTP GET.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource returns a source for the asset at rawURL. A nil client gets
// a default one with a conservative timeout.
func NewHTTPSource(rawURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPSource{URL: rawURL, Client: client}
}

// Fetch issues a single GET, adding ?category= when category is non-empty.
func (s *HTTPSource) Fetch(ctx context.Context, category string) ([]models.Resource, error) {
	u, err := url.Parse(s.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse url: %v", ErrSourceUnavailable, err)
	}
	if category != "" {
		q := u.Query()
		q.Set(CategoryParam, category)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrSourceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrSourceUnavailable, u.Redacted(), resp.StatusCode)
	}

	return decode(io.LimitReader(resp.Body, maxAssetBytes))
}

/*─────────────────────────────────────────────────────────────────────────────*
| Asset source (embedded or on-disk JSON)                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// AssetSource reads the JSON asset from a filesystem and does the category
// filtering itself. It backs the /assets/data.json endpoint.
type AssetSource struct {
	FS   fs.FS
	Path string
}

// NewAssetSource returns a source reading path from fsys.
func NewAssetSource(fsys fs.FS, path string) *AssetSource {
	return &AssetSource{FS: fsys, Path: strings.TrimPrefix(path, "/")}
}

// Fetch decodes the asset and keeps records whose category matches. The
// asset is re-read on every call.
func (s *AssetSource) Fetch(ctx context.Context, category string) ([]models.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.FS.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, s.Path, err)
	}
	defer f.Close()

	all, err := decode(f)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return all, nil
	}
	out := make([]models.Resource, 0, len(all))
	for _, r := range all {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

func decode(r io.Reader) ([]models.Resource, error) {
	var out []models.Resource
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrSourceUnavailable, err)
	}
	if out == nil {
		out = []models.Resource{}
	}
	return out, nil
}
