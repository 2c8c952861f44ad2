package models

// CategoryCounts maps a category name to the number of elements the model
// contains for it. Categories absent from the map have no elements.
type CategoryCounts map[string]int

// InModel reports whether the model has at least one element of the category.
func (c CategoryCounts) InModel(category string) bool {
	return c[category] > 0
}

// Row is one line of the category summary: a category from the master list
// cross-checked between the contract and the model.
type Row struct {
	Category     string `json:"category"`
	InContract   bool   `json:"in_contract"`
	InModel      bool   `json:"in_model"`
	Status       Status `json:"status"`
	Symbol       string `json:"symbol"`
	ElementCount int    `json:"element_count"`
	Description  string `json:"description"`
}
