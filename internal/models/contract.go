package models

import (
	"github.com/goccy/go-yaml"

	"category-audit-backend/internal/errors"
)

// RequiredCategory is one contract entry: a category that should be present
// in the model, plus the color used to highlight it in the viewer.
type RequiredCategory struct {
	Category string `json:"category" yaml:"category"`
	Color    Color  `json:"color" yaml:"color"`
}

// Contract is the list of categories a model is expected to contain.
type Contract struct {
	Required []RequiredCategory `json:"required_categories" yaml:"required_categories"`
}

// DefaultContract returns the contract used when the caller supplies none.
func DefaultContract() *Contract {
	return &Contract{
		Required: []RequiredCategory{
			{Category: "Structural Framing", Color: "#FF0000"},
			{Category: "Structural Columns", Color: "#0000FF"},
			{Category: "Walls", Color: "#00FF00"},
		},
	}
}

// ParseContractYAML parses a YAML contract document.
func ParseContractYAML(data []byte) (*Contract, error) {
	var c Contract
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Normalize fills in DefaultColor for entries without a color. Non-empty
// colors are left untouched.
func (c *Contract) Normalize() {
	for i := range c.Required {
		if c.Required[i].Color == "" {
			c.Required[i].Color = DefaultColor
		}
	}
}

// Validate checks that every entry names a known category and a well-formed
// color.
func (c *Contract) Validate() error {
	for _, req := range c.Required {
		if req.Category == "" {
			return errors.NewValidationError("category", "category must not be empty")
		}
		if !IsKnownCategory(req.Category) {
			return errors.NewValidationError("category", "unknown category: "+req.Category)
		}
		if req.Color != "" && !req.Color.Valid() {
			return errors.NewValidationError("color", "invalid color "+string(req.Color)+" for "+req.Category+`: expected "#RRGGBB"`)
		}
	}
	return nil
}

// Categories returns the contract's category names with duplicates removed,
// preserving first-seen order.
func (c *Contract) Categories() []string {
	seen := make(map[string]bool, len(c.Required))
	out := make([]string, 0, len(c.Required))
	for _, req := range c.Required {
		if seen[req.Category] {
			continue
		}
		seen[req.Category] = true
		out = append(out, req.Category)
	}
	return out
}

// CategorySet returns the contract's categories as a lookup set.
func (c *Contract) CategorySet() map[string]bool {
	set := make(map[string]bool, len(c.Required))
	for _, req := range c.Required {
		set[req.Category] = true
	}
	return set
}

// Colors returns the highlight color for each category. When a category
// appears more than once the last entry wins.
func (c *Contract) Colors() map[string]Color {
	colors := make(map[string]Color, len(c.Required))
	for _, req := range c.Required {
		colors[req.Category] = req.Color.OrDefault()
	}
	return colors
}
