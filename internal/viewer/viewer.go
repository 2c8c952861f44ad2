// Package viewer renders a self-contained APS Viewer page that isolates
// and colors model elements by their external IDs.
package viewer

import (
	_ "embed"
	"html/template"
	"io"

	"category-audit-backend/internal/errors"
)

//go:embed viewer.html
var pageSource string

var pageTemplate = template.Must(template.New("viewer").Parse(pageSource))

type pageData struct {
	Token   string
	URN     string
	Overlay template.JS
}

// RenderPage writes the viewer HTML for one model version. The token is
// a viewables:read capable access token, versionURN the raw (unencoded)
// version URN, and overlay the element color assignments.
func RenderPage(w io.Writer, token, versionURN string, overlay Overlay) error {
	if token == "" {
		return errors.NewValidationError("token", "access token is required")
	}
	if versionURN == "" {
		return errors.NewValidationError("urn", "version URN is required")
	}
	payload, err := overlay.MarshalJS()
	if err != nil {
		return err
	}
	return pageTemplate.Execute(w, pageData{
		Token:   token,
		URN:     EncodeURN(versionURN),
		Overlay: template.JS(payload),
	})
}
