package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-screener/internal/classifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClassifierModel_AcceptsSerializedModel(t *testing.T) {
	m := classifier.NewModel("data_scientist")
	m.AddDocument("python machine learning", true)
	m.AddDocument("payroll recruiting", false)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	assert.NoError(t, ValidateClassifierModel(data))
}

func TestValidateClassifierModel_RejectsMissingDomain(t *testing.T) {
	artifact := []byte(`{
		"positive": {"docs": 1, "total_tokens": 2, "token_counts": {"python": 2}},
		"negative": {"docs": 1, "total_tokens": 1, "token_counts": {"payroll": 1}}
	}`)

	err := ValidateClassifierModel(artifact)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateClassifierModel_RejectsWrongTypes(t *testing.T) {
	artifact := []byte(`{
		"domain": "x",
		"positive": {"docs": "one", "total_tokens": 2, "token_counts": {}},
		"negative": {"docs": 1, "total_tokens": 1, "token_counts": {}}
	}`)

	assert.Error(t, ValidateClassifierModel(artifact))
}

func TestValidateClassifierModel_RejectsMalformedJSON(t *testing.T) {
	assert.Error(t, ValidateClassifierModel([]byte("{not json")))
}
