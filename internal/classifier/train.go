package classifier

import (
	"fmt"
	"math/rand"
	"strings"
)

// TrainOptions controls synthetic training-data generation.
type TrainOptions struct {
	// Samples is the number of positive and negative examples each.
	Samples int
	// NoiseMin and NoiseMax bound the fraction of words dropped per sample.
	NoiseMin float64
	NoiseMax float64
	// Seed makes generation reproducible.
	Seed int64
}

// DefaultTrainOptions mirror the original training setup.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		Samples:  50,
		NoiseMin: 0.1,
		NoiseMax: 0.4,
		Seed:     42,
	}
}

// Train builds a classifier for domain from its job description and the job
// descriptions of the other domains. Positive examples are noisy word-drop
// perturbations of the target JD, negatives are perturbations of the others.
// otherJDs must be in a stable order for reproducible training.
func Train(domain, jdText string, otherJDs []string, opts TrainOptions) (*Model, error) {
	if strings.TrimSpace(jdText) == "" {
		return nil, fmt.Errorf("empty job description for domain %q", domain)
	}
	if len(otherJDs) == 0 {
		return nil, fmt.Errorf("no contrasting job descriptions for domain %q", domain)
	}
	if opts.Samples <= 0 {
		opts = DefaultTrainOptions()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	model := NewModel(domain)

	for i := 0; i < opts.Samples; i++ {
		noise := opts.NoiseMin + rng.Float64()*(opts.NoiseMax-opts.NoiseMin)
		model.AddDocument(perturb(jdText, noise, rng), true)
	}
	for i := 0; i < opts.Samples; i++ {
		other := otherJDs[rng.Intn(len(otherJDs))]
		noise := opts.NoiseMin + rng.Float64()*(opts.NoiseMax-opts.NoiseMin)
		model.AddDocument(perturb(other, noise, rng), false)
	}

	return model, nil
}

// perturb drops a random fraction of words so a sample reads like an
// imperfect resume rather than a copied job description.
func perturb(text string, noise float64, rng *rand.Rand) string {
	words := strings.Fields(text)
	keep := int(float64(len(words)) * (1 - noise))
	if keep < 1 {
		keep = 1
	}

	indexes := rng.Perm(len(words))[:keep]
	selected := make([]string, 0, keep)
	for _, idx := range indexes {
		selected = append(selected, words[idx])
	}
	return strings.Join(selected, " ")
}
