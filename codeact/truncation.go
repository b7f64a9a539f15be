package codeact

// DefaultMaxObservationChars bounds the size of a single observation inserted
// into the prompt.
const DefaultMaxObservationChars = 10000

// observationTruncationMarker replaces the removed middle of an observation.
const observationTruncationMarker = "\n[... Observation truncated due to length ...]\n"

// TruncateObservation keeps the first and last maxChars/2 characters of text,
// joined by a marker line. Text within the limit is returned unchanged.
func TruncateObservation(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}
	half := maxChars / 2
	return text[:half] + observationTruncationMarker + text[len(text)-half:]
}
