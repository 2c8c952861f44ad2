package audit

import (
	"context"

	"category-audit-backend/internal/aecdm"
	"category-audit-backend/internal/errors"
	"category-audit-backend/internal/logging"
	"category-audit-backend/internal/models"
)

// Service runs the audit views against the AEC Data Model API. It holds no
// state between calls; every view is rebuilt from live query results.
type Service struct {
	client        *aecdm.Client
	pageLimit     int
	distinctLimit int
}

// NewService creates the audit service. pageLimit bounds element pages,
// distinctLimit bounds the category count query.
func NewService(client *aecdm.Client, pageLimit, distinctLimit int) *Service {
	return &Service{
		client:        client,
		pageLimit:     pageLimit,
		distinctLimit: distinctLimit,
	}
}

// WithRegion returns a copy of the service querying a different region.
func (s *Service) WithRegion(region string) *Service {
	out := *s
	out.client = s.client.WithRegion(region)
	return &out
}

// Client exposes the underlying API client, used by the viewer to obtain the
// access token for the browser.
func (s *Service) Client() *aecdm.Client {
	return s.client
}

// FamilyInstances lists the family instances of the given categories. An
// empty category list falls back to the default instance categories;
// categories outside the master list are rejected before any query runs.
func (s *Service) FamilyInstances(ctx context.Context, elementGroupID string, categories []string) ([]models.ElementRecord, error) {
	if len(categories) == 0 {
		categories = models.InstanceCategories()
	}
	for _, category := range categories {
		if !models.IsKnownCategory(category) {
			return nil, errors.NewValidationError("category", "unknown category: "+category)
		}
	}
	return s.client.FetchFamilyInstances(ctx, elementGroupID, categories, s.pageLimit)
}

// CategoryCounts returns the element counts per category used in the model.
func (s *Service) CategoryCounts(ctx context.Context, elementGroupID string) (models.CategoryCounts, error) {
	return s.client.FetchCategoryCounts(ctx, elementGroupID, s.distinctLimit)
}

// Summarize cross-checks the master category list against the contract and
// the model.
func (s *Service) Summarize(ctx context.Context, elementGroupID string, contract *models.Contract) (*Summary, error) {
	counts, err := s.CategoryCounts(ctx, elementGroupID)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Rows:  BuildRows(contract, counts),
		Stats: BuildStats(contract, counts),
	}, nil
}

// DataSummary groups the master list categories by classification.
func (s *Service) DataSummary(ctx context.Context, elementGroupID string, contract *models.Contract) (*DataSummary, error) {
	counts, err := s.CategoryCounts(ctx, elementGroupID)
	if err != nil {
		return nil, err
	}
	return BuildDataSummary(contract, counts), nil
}

// ColoredCategory pairs one contract entry with the external IDs of its
// elements in the model.
type ColoredCategory struct {
	Category    string
	Color       models.Color
	ExternalIDs []string
}

// ColoredCategories fetches the external element IDs for every contract
// entry. A category whose fetch fails is logged and skipped so the viewer
// still renders the rest.
func (s *Service) ColoredCategories(ctx context.Context, elementGroupID string, contract *models.Contract) []ColoredCategory {
	out := make([]ColoredCategory, 0, len(contract.Required))

	for _, req := range contract.Required {
		ids, err := s.client.FetchExternalElementIDs(ctx, elementGroupID, req.Category, s.pageLimit)
		if err != nil {
			logging.Warn().
				Err(err).
				Str("category", req.Category).
				Msg("could not fetch elements for category")
			continue
		}
		out = append(out, ColoredCategory{
			Category:    req.Category,
			Color:       req.Color.OrDefault(),
			ExternalIDs: ids,
		})
	}
	return out
}
