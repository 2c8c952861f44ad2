package models

// allCategories is the master list of Revit categories the audit checks,
// in presentation order. It matches the category options offered to users
// when building a contract.
var allCategories = []string{
	"Structural Framing",
	"Structural Columns",
	"Structural Foundations",
	"Walls",
	"Floors",
	"Roofs",
	"Ceilings",
	"Doors",
	"Windows",
	"Stairs",
	"Railings",
	"Curtain Panels",
	"Curtain Wall Mullions",
	"Furniture",
	"Mechanical Equipment",
	"Plumbing Fixtures",
	"Lighting Fixtures",
	"Electrical Equipment",
	"Ducts",
	"Pipes",
}

// instanceCategories are the categories shown in the family instances view.
var instanceCategories = []string{
	"Structural Framing",
	"Structural Columns",
	"Walls",
	"Floors",
	"Doors",
	"Windows",
}

// AllCategories returns a copy of the master category list.
func AllCategories() []string {
	out := make([]string, len(allCategories))
	copy(out, allCategories)
	return out
}

// InstanceCategories returns a copy of the default family instance categories.
func InstanceCategories() []string {
	out := make([]string, len(instanceCategories))
	copy(out, instanceCategories)
	return out
}

// IsKnownCategory reports whether name appears in the master category list.
// Category names are case sensitive.
func IsKnownCategory(name string) bool {
	for _, c := range allCategories {
		if c == name {
			return true
		}
	}
	return false
}
