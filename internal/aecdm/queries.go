package aecdm

import "fmt"

// Query texts for the AEC Data Model API. Element queries are scoped to
// instance elements through an RSQL filter so type and symbol definitions
// stay out of the results.

const familyInstancesQuery = `
query FamilyInstances($elementGroupId: ID!, $rsqlFilter: String!, $pagination: PaginationInput) {
  elementsByElementGroup(
    elementGroupId: $elementGroupId,
    filter: { query: $rsqlFilter },
    pagination: $pagination
  ) {
    pagination { cursor pageSize }
    results {
      id
      name
      properties(filter: { names: ["Family Name", "Type Name"] }) {
        results {
          name
          value
        }
      }
    }
  }
}`

const categoryElementsQuery = `
query CategoryElements($elementGroupId: ID!, $rsqlFilter: String!, $pagination: PaginationInput) {
  elementsByElementGroup(
    elementGroupId: $elementGroupId,
    filter: { query: $rsqlFilter },
    pagination: $pagination
  ) {
    pagination { cursor pageSize }
    results {
      id
      name
      alternativeIdentifiers {
        externalElementId
      }
    }
  }
}`

const usedCategoriesQuery = `
query UsedCategories($elementGroupId: ID!, $limit: Int!) {
  distinctPropertyValuesInElementGroupByName(
    elementGroupId: $elementGroupId
    name: "Category"
    filter: { query: "'property.name.Element Context'==Instance" }
  ) {
    results {
      values(limit: $limit) {
        value
        count
      }
    }
  }
}`

// instanceFilter builds the RSQL filter selecting instance elements of one
// category.
func instanceFilter(category string) string {
	return fmt.Sprintf("property.name.category=='%s' and 'property.name.Element Context'==Instance", category)
}
