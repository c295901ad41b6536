package sixdegrees

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractVar(t *testing.T) {
	// extract all variables from statement
	testcases := []struct {
		statement string
		expected  []string
	}{
		{statement: "{{mean}} and {{std_deviation}}", expected: []string{"mean", "std_deviation"}},
		{statement: "({{similar_a}}, {{similar_b}})", expected: []string{"similar_a", "similar_b"}},
		{statement: "no variables", expected: []string{}},
	}
	for _, v := range testcases {
		require.Equal(t, v.expected, getAllVars(v.statement))
	}
}

func TestValidateTemplate(t *testing.T) {
	require.Nil(t, validateTemplate(DefaultReportTemplate))
	require.Nil(t, validateTemplate("plain text"))

	err := validateTemplate("{{mean}} {{median}} {{mode}} {{median}}")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "median,mode")
}

func TestCheckMissing(t *testing.T) {
	require.Nil(t, checkMissing("{{mean}}", map[string]interface{}{"mean": 1.5}))
	require.NotNil(t, checkMissing("{{mean}} {{variance}}", map[string]interface{}{"mean": 1.5}))
}

func TestReplace(t *testing.T) {
	got := Replace("({{a}}, {{b}}) {{c}}", map[string]interface{}{"a": uint32(3), "b": 4, "c": 0.5})
	require.Equal(t, "(3, 4) 0.5", got)
}
