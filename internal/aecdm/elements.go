package aecdm

import (
	"context"
	"fmt"

	"category-audit-backend/internal/logging"
	"category-audit-backend/internal/models"
)

// unknownValue substitutes for element properties the model does not carry.
const unknownValue = "Unknown"

// Response structures for element queries.
type elementsResponse struct {
	ElementsByElementGroup struct {
		Pagination struct {
			Cursor   string `json:"cursor"`
			PageSize int    `json:"pageSize"`
		} `json:"pagination"`
		Results []elementResult `json:"results"`
	} `json:"elementsByElementGroup"`
}

type elementResult struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Properties struct {
		Results []propertyResult `json:"results"`
	} `json:"properties"`
	AlternativeIdentifiers struct {
		ExternalElementID string `json:"externalElementId"`
	} `json:"alternativeIdentifiers"`
}

type propertyResult struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// FetchFamilyInstances returns one record per instance element of the given
// categories, in category order. Family, type, and element names missing
// from the model come back as "Unknown".
func (c *Client) FetchFamilyInstances(ctx context.Context, elementGroupID string, categories []string, limit int) ([]models.ElementRecord, error) {
	var records []models.ElementRecord

	for _, category := range categories {
		logging.Info().Str("category", category).Msg("Fetching instances")

		vars := map[string]any{
			"elementGroupId": elementGroupID,
			"rsqlFilter":     instanceFilter(category),
		}

		err := forEachPage(ctx, limit, func(ctx context.Context, pagination map[string]any) (string, int, error) {
			vars["pagination"] = pagination

			var resp elementsResponse
			if err := c.Execute(ctx, "FamilyInstances", familyInstancesQuery, vars, &resp); err != nil {
				return "", 0, err
			}

			block := resp.ElementsByElementGroup
			for _, el := range block.Results {
				records = append(records, models.ElementRecord{
					Category:    category,
					FamilyName:  propertyValue(el.Properties.Results, "Family Name"),
					TypeName:    propertyValue(el.Properties.Results, "Type Name"),
					ElementName: orUnknown(el.Name),
				})
			}
			return block.Pagination.Cursor, len(block.Results), nil
		})
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}

// FetchExternalElementIDs returns the external element IDs of the category's
// instance elements. Elements without an external ID are skipped.
func (c *Client) FetchExternalElementIDs(ctx context.Context, elementGroupID, category string, limit int) ([]string, error) {
	logging.Info().Str("category", category).Msg("Fetching elements")

	var ids []string

	vars := map[string]any{
		"elementGroupId": elementGroupID,
		"rsqlFilter":     instanceFilter(category),
	}

	err := forEachPage(ctx, limit, func(ctx context.Context, pagination map[string]any) (string, int, error) {
		vars["pagination"] = pagination

		var resp elementsResponse
		if err := c.Execute(ctx, "CategoryElements", categoryElementsQuery, vars, &resp); err != nil {
			return "", 0, err
		}

		block := resp.ElementsByElementGroup
		for _, el := range block.Results {
			if extID := el.AlternativeIdentifiers.ExternalElementID; extID != "" {
				ids = append(ids, extID)
			}
		}
		return block.Pagination.Cursor, len(block.Results), nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// propertyValue pulls a named property out of an element's property results.
func propertyValue(props []propertyResult, name string) string {
	for _, p := range props {
		if p.Name == name {
			return orUnknown(asString(p.Value))
		}
	}
	return unknownValue
}

// asString renders a property value, which the API may type as string or
// number depending on the parameter.
func asString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return unknownValue
	}
	return s
}
