package learner

import "strings"

// NormalizeTopic folds a raw topic name into its canonical map key, so
// "Markov Process", "markov process" and "markov-process" all resolve to
// "markov_process".
func NormalizeTopic(topic string) string {
	t := strings.ToLower(strings.TrimSpace(topic))
	t = strings.ReplaceAll(t, " ", "_")
	t = strings.ReplaceAll(t, "-", "_")
	return t
}
