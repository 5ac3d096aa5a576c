package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSource(t *testing.T) {
	t.Run("default placeholder", func(t *testing.T) {
		result := Analyze("SELECT 1;")
		assert.Equal(t, DefaultSource, result.Source)
	})

	t.Run("explicit source", func(t *testing.T) {
		result := Analyze("SELECT 1;", WithSource("migrations/0042.sql"))
		assert.Equal(t, "migrations/0042.sql", result.Source)
	})
}

func TestWithoutDjangoRules(t *testing.T) {
	sql := "RunPython(populate_data)"

	t.Run("django rules on by default", func(t *testing.T) {
		result := Analyze(sql)
		require.Len(t, result.Findings, 1)
		assert.Equal(t, "MS101", result.Findings[0].RuleID)
	})

	t.Run("django rules disabled", func(t *testing.T) {
		result := Analyze(sql, WithoutDjangoRules())
		assert.Empty(t, result.Findings)
		assert.Equal(t, 0, result.TotalScore())
	})

	t.Run("generic rules unaffected", func(t *testing.T) {
		result := Analyze("DROP TABLE t;", WithoutDjangoRules())
		assert.Equal(t, 50, result.TotalScore())
	})
}

func TestWithDisabledRules(t *testing.T) {
	sql := "DROP TABLE t;\nCREATE INDEX i ON t(c);"

	t.Run("single rule disabled", func(t *testing.T) {
		result := Analyze(sql, WithDisabledRules("MS005"))
		assert.Equal(t, []string{"MS003"}, ruleIDs(result))
	})

	t.Run("multiple rules disabled", func(t *testing.T) {
		result := Analyze(sql, WithDisabledRules("MS005", "MS003"))
		assert.Empty(t, result.Findings)
	})

	t.Run("options accumulate", func(t *testing.T) {
		result := Analyze(sql,
			WithDisabledRules("MS005"),
			WithDisabledRules("MS003"),
		)
		assert.Empty(t, result.Findings)
	})
}
