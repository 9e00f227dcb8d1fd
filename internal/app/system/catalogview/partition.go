package catalogview

import "github.com/dalemusser/devcatalog/internal/domain/models"

// Partition buckets data by subcategory. Every listed subcategory gets a
// bucket (possibly empty); each bucket keeps input order. Records whose
// subcategory is not listed are dropped.
func Partition(data []models.Resource, subcategories []string) map[string][]models.Resource {
	out := make(map[string][]models.Resource, len(subcategories))
	for _, s := range subcategories {
		out[s] = []models.Resource{}
	}
	for _, r := range data {
		if bucket, ok := out[r.Subcategory]; ok {
			out[r.Subcategory] = append(bucket, r)
		}
	}
	return out
}
