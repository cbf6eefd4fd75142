package classifier

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedModel(t *testing.T) *Model {
	t.Helper()

	m := NewModel("data_scientist")
	positives := []string{
		"python machine learning pandas numpy statistics models",
		"machine learning pipelines feature engineering python sql",
		"deep learning pytorch model training experiments",
	}
	negatives := []string{
		"recruiting onboarding payroll employee relations",
		"sales pipeline quota outreach negotiation closing deals",
		"content marketing campaigns branding social media",
	}
	for _, text := range positives {
		m.AddDocument(text, true)
	}
	for _, text := range negatives {
		m.AddDocument(text, false)
	}
	return m
}

func TestPredictMatchProbability_SeparatesClasses(t *testing.T) {
	m := trainedModel(t)

	matchProb := m.PredictMatchProbability("experienced in python and machine learning with pandas")
	mismatchProb := m.PredictMatchProbability("payroll onboarding and employee relations specialist")

	assert.Greater(t, matchProb, 0.5)
	assert.Less(t, mismatchProb, 0.5)
	assert.Greater(t, matchProb, mismatchProb)
}

func TestPredictMatchProbability_InRange(t *testing.T) {
	m := trainedModel(t)

	for _, text := range []string{"python", "payroll", "completely unrelated gibberish zzz"} {
		p := m.PredictMatchProbability(text)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestPredictMatchProbability_EmptyTextIsZero(t *testing.T) {
	m := trainedModel(t)

	assert.Equal(t, 0.0, m.PredictMatchProbability(""))
	assert.Equal(t, 0.0, m.PredictMatchProbability("   \n\t"))
}

func TestPredictMatchProbability_UntrainedModelIsZero(t *testing.T) {
	m := NewModel("empty")

	assert.Equal(t, 0.0, m.PredictMatchProbability("python"))
}

func TestPredictMatchProbability_Deterministic(t *testing.T) {
	m := trainedModel(t)

	first := m.PredictMatchProbability("python machine learning")
	second := m.PredictMatchProbability("python machine learning")

	assert.Equal(t, first, second)
}

func TestModel_SerializationPreservesPredictions(t *testing.T) {
	m := trainedModel(t)
	text := "python and sql with machine learning"
	want := m.PredictMatchProbability(text)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var restored Model
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, want, restored.PredictMatchProbability(text))
	assert.Equal(t, "data_scientist", restored.Domain)
}

func TestTrain_ProducesUsableModel(t *testing.T) {
	target := "data scientist python machine learning statistics pandas sql modeling experiments analytics"
	others := []string{
		"hr manager recruiting onboarding payroll benefits employee relations hiring",
		"sales executive quota outreach negotiation pipeline closing enterprise deals",
	}

	m, err := Train("data_scientist", target, others, DefaultTrainOptions())
	require.NoError(t, err)
	require.True(t, m.Trained())

	matchProb := m.PredictMatchProbability("python machine learning pandas sql")
	mismatchProb := m.PredictMatchProbability("recruiting payroll benefits hiring")
	assert.Greater(t, matchProb, mismatchProb)
}

func TestTrain_Reproducible(t *testing.T) {
	target := "golang backend microservices kubernetes grpc postgres"
	others := []string{"graphic design branding typography illustration portfolios"}

	first, err := Train("backend", target, others, DefaultTrainOptions())
	require.NoError(t, err)
	second, err := Train("backend", target, others, DefaultTrainOptions())
	require.NoError(t, err)

	text := "kubernetes and grpc services in golang"
	assert.Equal(t, first.PredictMatchProbability(text), second.PredictMatchProbability(text))
}

func TestTrain_RejectsEmptyInputs(t *testing.T) {
	_, err := Train("x", "", []string{"other"}, DefaultTrainOptions())
	assert.Error(t, err)

	_, err = Train("x", "some jd", nil, DefaultTrainOptions())
	assert.Error(t, err)
}
