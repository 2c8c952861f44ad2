package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"category-audit-backend/internal/models"
)

func testContract() *models.Contract {
	return &models.Contract{Required: []models.RequiredCategory{
		{Category: "Structural Framing", Color: "#FF0000"},
		{Category: "Structural Columns", Color: "#0000FF"},
		{Category: "Walls", Color: "#00FF00"},
	}}
}

func TestBuildRows(t *testing.T) {
	counts := models.CategoryCounts{
		"Structural Framing": 120, // in contract, in model
		"Doors":              14,  // not in contract, in model
	}

	rows := BuildRows(testContract(), counts)
	require.Len(t, rows, 20)

	byCategory := make(map[string]models.Row, len(rows))
	for _, row := range rows {
		byCategory[row.Category] = row
	}

	framing := byCategory["Structural Framing"]
	assert.Equal(t, models.StatusPresent, framing.Status)
	assert.True(t, framing.InContract)
	assert.True(t, framing.InModel)
	assert.Equal(t, "✓", framing.Symbol)
	assert.Equal(t, 120, framing.ElementCount)
	assert.Equal(t, "Present in contract and model", framing.Description)

	walls := byCategory["Walls"]
	assert.Equal(t, models.StatusMissingFromModel, walls.Status)
	assert.True(t, walls.InContract)
	assert.False(t, walls.InModel)
	assert.Equal(t, "✗", walls.Symbol)
	assert.Equal(t, 0, walls.ElementCount)
	assert.Equal(t, "In contract but not in model", walls.Description)

	doors := byCategory["Doors"]
	assert.Equal(t, models.StatusMissingFromContract, doors.Status)
	assert.False(t, doors.InContract)
	assert.True(t, doors.InModel)
	assert.Equal(t, 14, doors.ElementCount)
	assert.Equal(t, "Missing in the contract", doors.Description)

	pipes := byCategory["Pipes"]
	assert.Equal(t, models.StatusNotApplicable, pipes.Status)
	assert.False(t, pipes.InContract)
	assert.False(t, pipes.InModel)
	assert.Equal(t, "Not in contract, not in model", pipes.Description)

	// rows follow master list order
	assert.Equal(t, "Structural Framing", rows[0].Category)
	assert.Equal(t, "Pipes", rows[19].Category)
}

func TestBuildStats(t *testing.T) {
	t.Run("all contract categories found", func(t *testing.T) {
		counts := models.CategoryCounts{
			"Structural Framing": 10,
			"Structural Columns": 5,
			"Walls":              30,
			"Doors":              14,
		}

		stats := BuildStats(testContract(), counts)
		assert.Equal(t, 20, stats.TotalCategories)
		assert.Equal(t, 4, stats.CategoriesInModel)
		assert.Equal(t, 3, stats.CategoriesInContract)
		assert.Equal(t, 3, stats.ContractCategoriesFound)
		assert.Equal(t, DataSuccess, stats.Status)
	})

	t.Run("contract category missing", func(t *testing.T) {
		counts := models.CategoryCounts{"Structural Framing": 10}

		stats := BuildStats(testContract(), counts)
		assert.Equal(t, 1, stats.CategoriesInModel)
		assert.Equal(t, 1, stats.ContractCategoriesFound)
		assert.Equal(t, DataWarning, stats.Status)
	})

	t.Run("duplicate contract entries count once", func(t *testing.T) {
		contract := &models.Contract{Required: []models.RequiredCategory{
			{Category: "Walls", Color: "#FF0000"},
			{Category: "Walls", Color: "#00FF00"},
		}}
		counts := models.CategoryCounts{"Walls": 3}

		stats := BuildStats(contract, counts)
		assert.Equal(t, 1, stats.CategoriesInContract)
		assert.Equal(t, 1, stats.ContractCategoriesFound)
		assert.Equal(t, DataSuccess, stats.Status)
	})

	t.Run("zero count does not put category in model", func(t *testing.T) {
		counts := models.CategoryCounts{"Walls": 0}

		stats := BuildStats(testContract(), counts)
		assert.Equal(t, 0, stats.CategoriesInModel)
		assert.Equal(t, 0, stats.ContractCategoriesFound)
	})
}

func TestBuildDataSummary(t *testing.T) {
	counts := models.CategoryCounts{
		"Structural Framing": 120,
		"Doors":              14,
	}

	summary := BuildDataSummary(testContract(), counts)

	require.Len(t, summary.Groups, 4)
	assert.Equal(t, "✓ Present (Contract & Model)", summary.Groups[0].Label)
	assert.Equal(t, "✗ Missing from Model", summary.Groups[1].Label)
	assert.Equal(t, "⚠ Missing from Contract", summary.Groups[2].Label)
	assert.Equal(t, "○ Not Applicable", summary.Groups[3].Label)

	present := summary.Groups[0].Items
	require.Len(t, present, 1)
	assert.Equal(t, DataItem{
		Label:         "Structural Framing",
		Count:         120,
		Suffix:        "elements",
		Status:        DataSuccess,
		StatusMessage: "✓ Present in contract and model",
	}, present[0])

	missingFromModel := summary.Groups[1].Items
	require.Len(t, missingFromModel, 2) // Structural Columns, Walls
	assert.Equal(t, DataError, missingFromModel[0].Status)
	assert.Equal(t, 0, missingFromModel[0].Count)
	assert.Equal(t, "✗ In contract but not in model", missingFromModel[0].StatusMessage)

	missingFromContract := summary.Groups[2].Items
	require.Len(t, missingFromContract, 1)
	assert.Equal(t, "Doors", missingFromContract[0].Label)
	assert.Equal(t, DataWarning, missingFromContract[0].Status)
	assert.Equal(t, "✗ Missing in the contract", missingFromContract[0].StatusMessage)

	notApplicable := summary.Groups[3].Items
	assert.Len(t, notApplicable, 16)
	assert.Equal(t, DataInfo, notApplicable[0].Status)
	assert.Equal(t, "Not in contract, not in model", notApplicable[0].StatusMessage)

	assert.Equal(t, DataWarning, summary.Stats.Status)
}

func TestBuildDataSummaryOmitsEmptyGroups(t *testing.T) {
	contract := &models.Contract{Required: []models.RequiredCategory{}}
	for _, category := range models.AllCategories() {
		contract.Required = append(contract.Required, models.RequiredCategory{Category: category, Color: "#00FF00"})
	}

	counts := models.CategoryCounts{}
	for _, category := range models.AllCategories() {
		counts[category] = 1
	}

	summary := BuildDataSummary(contract, counts)

	// everything present: only one group remains
	require.Len(t, summary.Groups, 1)
	assert.Equal(t, "✓ Present (Contract & Model)", summary.Groups[0].Label)
	assert.Len(t, summary.Groups[0].Items, 20)
	assert.Equal(t, DataSuccess, summary.Stats.Status)
}
