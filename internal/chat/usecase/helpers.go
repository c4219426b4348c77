package usecase

import "strings"

// disclaimer is appended to every reply that doesn't already carry one.
// Replies are educational material, not investment advice.
const disclaimer = "Información solo con fines informativos. No constituye recomendación de inversión."

// disclaimerMarker is the phrase checked before appending; canned replies
// and many model replies already include it.
const disclaimerMarker = "solo con fines informativos"

func ensureDisclaimer(content string) string {
	if strings.Contains(content, disclaimerMarker) {
		return content
	}
	return content + "\n\n" + disclaimer
}
