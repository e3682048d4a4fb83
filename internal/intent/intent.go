// Package intent classifies free text into coarse handling categories via
// keyword matching. Deliberately simple: the keyword tables are content,
// not algorithm, and can be swapped without touching callers.
package intent

import "strings"

// Intent is a coarse category for an inbound text.
type Intent string

const (
	Appointment Intent = "APPOINTMENT"
	Info        Intent = "INFO"
	Marketing   Intent = "MARKETING"
	Unknown     Intent = "UNKNOWN"
)

// Keyword tables, checked in priority order. German domain terms.
var (
	appointmentTerms = []string{"termin", "vereinbaren", "buchen", "reservieren", "probetraining"}
	infoTerms        = []string{"info", "preis", "kosten", "öffnungszeit", "kurs", "frage"}
	marketingTerms   = []string{"newsletter", "rabatt", "aktion", "gutschein", "werbung"}
)

// Classify maps text to an intent. Case-insensitive substring match; first
// matching category in the order APPOINTMENT → INFO → MARKETING wins.
func Classify(text string) Intent {
	lower := strings.ToLower(text)

	for _, term := range appointmentTerms {
		if strings.Contains(lower, term) {
			return Appointment
		}
	}
	for _, term := range infoTerms {
		if strings.Contains(lower, term) {
			return Info
		}
	}
	for _, term := range marketingTerms {
		if strings.Contains(lower, term) {
			return Marketing
		}
	}
	return Unknown
}
