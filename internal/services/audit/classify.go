package audit

import (
	"category-audit-backend/internal/models"
)

// Severity levels for data summary items.
const (
	DataSuccess = "SUCCESS"
	DataError   = "ERROR"
	DataWarning = "WARNING"
	DataInfo    = "INFO"
)

// Group headings for the data summary, in display order.
const (
	groupPresent             = "✓ Present (Contract & Model)"
	groupMissingFromModel    = "✗ Missing from Model"
	groupMissingFromContract = "⚠ Missing from Contract"
	groupNotApplicable       = "○ Not Applicable"
)

// Stats aggregates one audit run.
type Stats struct {
	TotalCategories         int    `json:"total_categories"`
	CategoriesInModel       int    `json:"categories_in_model"`
	CategoriesInContract    int    `json:"categories_in_contract"`
	ContractCategoriesFound int    `json:"contract_categories_found"`
	Status                  string `json:"status"`
}

// Summary is the category summary view: every master list category
// cross-checked between the contract and the model.
type Summary struct {
	Rows  []models.Row `json:"rows"`
	Stats Stats        `json:"stats"`
}

// DataItem is one category entry in the data summary.
type DataItem struct {
	Label         string `json:"label"`
	Count         int    `json:"count"`
	Suffix        string `json:"suffix"`
	Status        string `json:"status"`
	StatusMessage string `json:"status_message"`
}

// DataGroup collects the categories sharing one classification.
type DataGroup struct {
	Label string     `json:"label"`
	Items []DataItem `json:"items"`
}

// DataSummary is the grouped variant of the category summary.
type DataSummary struct {
	Stats  Stats       `json:"stats"`
	Groups []DataGroup `json:"groups"`
}

// BuildRows classifies every category of the master list against the
// contract and the model counts.
func BuildRows(contract *models.Contract, counts models.CategoryCounts) []models.Row {
	required := contract.CategorySet()

	rows := make([]models.Row, 0, len(models.AllCategories()))
	for _, category := range models.AllCategories() {
		inContract := required[category]
		inModel := counts.InModel(category)
		status := models.Classify(inContract, inModel)
		rows = append(rows, models.Row{
			Category:     category,
			InContract:   inContract,
			InModel:      inModel,
			Status:       status,
			Symbol:       status.Symbol(),
			ElementCount: counts[category],
			Description:  status.Description(),
		})
	}
	return rows
}

// BuildStats computes the aggregate counters for one audit run. The overall
// status is SUCCESS only when every contract category was found in the model.
func BuildStats(contract *models.Contract, counts models.CategoryCounts) Stats {
	required := contract.Categories()

	inModel := 0
	for _, category := range models.AllCategories() {
		if counts.InModel(category) {
			inModel++
		}
	}

	found := 0
	for _, category := range required {
		if counts.InModel(category) {
			found++
		}
	}

	status := DataWarning
	if found == len(required) {
		status = DataSuccess
	}

	return Stats{
		TotalCategories:         len(models.AllCategories()),
		CategoriesInModel:       inModel,
		CategoriesInContract:    len(required),
		ContractCategoriesFound: found,
		Status:                  status,
	}
}

// BuildDataSummary groups the master list categories by classification.
// Groups without members are omitted.
func BuildDataSummary(contract *models.Contract, counts models.CategoryCounts) *DataSummary {
	required := contract.CategorySet()

	var present, missingFromModel, missingFromContract, notApplicable []DataItem

	for _, category := range models.AllCategories() {
		count := counts[category]

		switch models.Classify(required[category], counts.InModel(category)) {
		case models.StatusPresent:
			present = append(present, DataItem{
				Label:         category,
				Count:         count,
				Suffix:        "elements",
				Status:        DataSuccess,
				StatusMessage: "✓ Present in contract and model",
			})
		case models.StatusMissingFromModel:
			missingFromModel = append(missingFromModel, DataItem{
				Label:         category,
				Suffix:        "elements",
				Status:        DataError,
				StatusMessage: "✗ In contract but not in model",
			})
		case models.StatusMissingFromContract:
			missingFromContract = append(missingFromContract, DataItem{
				Label:         category,
				Count:         count,
				Suffix:        "elements",
				Status:        DataWarning,
				StatusMessage: "✗ Missing in the contract",
			})
		default:
			notApplicable = append(notApplicable, DataItem{
				Label:         category,
				Suffix:        "elements",
				Status:        DataInfo,
				StatusMessage: "Not in contract, not in model",
			})
		}
	}

	summary := &DataSummary{Stats: BuildStats(contract, counts)}
	for _, group := range []DataGroup{
		{Label: groupPresent, Items: present},
		{Label: groupMissingFromModel, Items: missingFromModel},
		{Label: groupMissingFromContract, Items: missingFromContract},
		{Label: groupNotApplicable, Items: notApplicable},
	} {
		if len(group.Items) > 0 {
			summary.Groups = append(summary.Groups, group)
		}
	}
	return summary
}
