package models

// ElementRecord is one design element pulled from the model. The family
// instances view fills the name fields, the viewer overlay only needs
// Category and ExternalID.
type ElementRecord struct {
	Category    string `json:"category"`
	FamilyName  string `json:"family_name,omitempty"`
	TypeName    string `json:"type_name,omitempty"`
	ElementName string `json:"element_name,omitempty"`
	ExternalID  string `json:"external_id,omitempty"`
}
