package aecdm

import (
	"context"

	"category-audit-backend/internal/models"
)

type usedCategoriesResponse struct {
	DistinctPropertyValuesInElementGroupByName struct {
		Results []struct {
			Values []struct {
				Value string `json:"value"`
				Count int    `json:"count"`
			} `json:"values"`
		} `json:"results"`
	} `json:"distinctPropertyValuesInElementGroupByName"`
}

// FetchCategoryCounts returns every distinct Category value used by instance
// elements in the element group, with the number of elements per category.
// Entries with an empty value are dropped.
func (c *Client) FetchCategoryCounts(ctx context.Context, elementGroupID string, limit int) (models.CategoryCounts, error) {
	vars := map[string]any{
		"elementGroupId": elementGroupID,
		"limit":          limit,
	}

	var resp usedCategoriesResponse
	if err := c.Execute(ctx, "UsedCategories", usedCategoriesQuery, vars, &resp); err != nil {
		return nil, err
	}

	counts := make(models.CategoryCounts)
	for _, r := range resp.DistinctPropertyValuesInElementGroupByName.Results {
		for _, v := range r.Values {
			if v.Value != "" {
				counts[v.Value] = v.Count
			}
		}
	}
	return counts, nil
}
