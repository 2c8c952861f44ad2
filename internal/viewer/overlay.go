package viewer

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"category-audit-backend/internal/services/audit"
)

// Overlay is the wire form consumed by the viewer page: one single-key
// object per element, mapping its external ID to a "#rrggbb" color.
type Overlay []map[string]string

// BuildOverlay flattens colored category results into the overlay list.
// Element order follows the input so repeated renders stay stable.
func BuildOverlay(colored []audit.ColoredCategory) Overlay {
	overlay := Overlay{}
	for _, cc := range colored {
		color := string(cc.Color.OrDefault())
		for _, extID := range cc.ExternalIDs {
			if extID == "" {
				continue
			}
			overlay = append(overlay, map[string]string{extID: color})
		}
	}
	return overlay
}

// MarshalJS renders the overlay as a JSON array for script injection.
func (o Overlay) MarshalJS() (string, error) {
	if o == nil {
		o = Overlay{}
	}
	raw, err := json.Marshal(o)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// EncodeURN converts a version URN to the URL-safe base64 form the
// Model Derivative service expects, with padding stripped.
func EncodeURN(versionURN string) string {
	encoded := base64.URLEncoding.EncodeToString([]byte(versionURN))
	return strings.TrimRight(encoded, "=")
}
