package classifier

import (
	"math"
)

// ClassStats holds token statistics for one class of training documents.
type ClassStats struct {
	Docs        int            `json:"docs"`
	TotalTokens int            `json:"total_tokens"`
	TokenCounts map[string]int `json:"token_counts"`
}

// Model is a multinomial naive Bayes classifier over cleaned, stopword-free
// tokens. The positive class is "good match", the negative class "poor
// match". Inference is fully deterministic.
type Model struct {
	Domain   string     `json:"domain"`
	Positive ClassStats `json:"positive"`
	Negative ClassStats `json:"negative"`
}

// NewModel creates an empty model for a domain.
func NewModel(domain string) *Model {
	return &Model{
		Domain:   domain,
		Positive: ClassStats{TokenCounts: make(map[string]int)},
		Negative: ClassStats{TokenCounts: make(map[string]int)},
	}
}

// AddDocument folds one training document into the model. match marks the
// document as a positive ("good match") example.
func (m *Model) AddDocument(text string, match bool) {
	stats := &m.Negative
	if match {
		stats = &m.Positive
	}

	stats.Docs++
	for _, token := range Tokenize(text) {
		stats.TokenCounts[token]++
		stats.TotalTokens++
	}
}

// Trained reports whether the model has at least one document per class.
func (m *Model) Trained() bool {
	return m.Positive.Docs > 0 && m.Negative.Docs > 0
}

// PredictMatchProbability returns the probability that text belongs to the
// positive class. Untrained models and empty texts yield 0.0.
func (m *Model) PredictMatchProbability(text string) float64 {
	if !m.Trained() {
		return 0.0
	}

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return 0.0
	}

	vocabSize := m.vocabularySize()
	totalDocs := float64(m.Positive.Docs + m.Negative.Docs)

	logPos := math.Log(float64(m.Positive.Docs) / totalDocs)
	logNeg := math.Log(float64(m.Negative.Docs) / totalDocs)
	for _, token := range tokens {
		logPos += tokenLogLikelihood(&m.Positive, token, vocabSize)
		logNeg += tokenLogLikelihood(&m.Negative, token, vocabSize)
	}

	// Convert the two log scores to a probability without overflow.
	return 1.0 / (1.0 + math.Exp(logNeg-logPos))
}

// tokenLogLikelihood computes the Laplace-smoothed log likelihood of a token
// under one class.
func tokenLogLikelihood(stats *ClassStats, token string, vocabSize int) float64 {
	count := stats.TokenCounts[token]
	return math.Log(float64(count+1) / float64(stats.TotalTokens+vocabSize))
}

// vocabularySize returns the number of distinct tokens seen across both
// classes, minimum 1 so smoothing never divides by zero.
func (m *Model) vocabularySize() int {
	vocab := make(map[string]bool, len(m.Positive.TokenCounts)+len(m.Negative.TokenCounts))
	for token := range m.Positive.TokenCounts {
		vocab[token] = true
	}
	for token := range m.Negative.TokenCounts {
		vocab[token] = true
	}
	if len(vocab) == 0 {
		return 1
	}
	return len(vocab)
}
