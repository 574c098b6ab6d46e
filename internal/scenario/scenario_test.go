package scenario

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/base-checker/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: test
version: "1.0"
scenarios:
  - id: s1
    declarations: ["bin a 1;"]
    expression: "a"
    expect:
      declarations: [declared]
      expression: valid
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "test", s.Name)
		require.Len(t, s.Scenarios, 1)
		assert.Equal(t, []session.Kind{session.Declared}, s.Scenarios[0].Expect.Declarations)
		require.NotNil(t, s.Scenarios[0].Expect.Expression)
		assert.Equal(t, session.ValidExpression, *s.Scenarios[0].Expect.Expression)
		assert.Equal(t, session.DefaultSentinel, s.sentinel())
	})

	t.Run("empty scenarios", func(t *testing.T) {
		_, err := Parse([]byte("name: test\nscenarios: []\n"))
		assert.ErrorContains(t, err, "no scenarios")
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := Parse([]byte("name: test\nscenarios:\n  - expression: a\n"))
		assert.ErrorContains(t, err, "has no id")
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := Parse([]byte("scenarios:\n  - id: a\n  - id: a\n"))
		assert.ErrorContains(t, err, "duplicate scenario id")
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Parse([]byte("scenarios:\n  - id: a\n    expect:\n      expression: maybe\n"))
		assert.ErrorContains(t, err, "unknown diagnostic kind")
	})

	t.Run("outcome count mismatch", func(t *testing.T) {
		yaml := `
scenarios:
  - id: a
    declarations: ["bin a 1;"]
    expect:
      declarations: [declared, declared]
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, "expects 2 declaration outcomes")
	})

	t.Run("declaration equal to sentinel", func(t *testing.T) {
		_, err := Parse([]byte("sentinel: STOP\nscenarios:\n  - id: a\n    declarations: [STOP]\n"))
		assert.ErrorContains(t, err, "equals the sentinel")
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("bundled suite", func(t *testing.T) {
		s, err := LoadFromFile(filepath.Join("..", "..", "configs", "scenarios", "basics.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "basics", s.Name)
		assert.NotEmpty(t, s.Scenarios)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "read suite file")
	})
}

func TestRun_BundledSuitePasses(t *testing.T) {
	s, err := LoadFromFile(filepath.Join("..", "..", "configs", "scenarios", "basics.yaml"))
	require.NoError(t, err)

	res, err := Run(context.Background(), s)

	require.NoError(t, err)
	for _, sr := range res.Scenarios {
		assert.True(t, sr.Passed(), "%s: %v %v", sr.ID, sr.Mismatches, sr.Error)
	}
	assert.Equal(t, 0, res.Failed())
}

func TestRun_ReportsMismatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	content := `
name: wrong
sentinel: DONE
scenarios:
  - id: wrong-expectations
    declarations: ["bin a 1;", "bin a 0;"]
    expression: "a + b"
    expect:
      declarations: [declared, declared]
      expression: valid
      undeclared: z
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	s, err := LoadFromFile(path)
	require.NoError(t, err)

	res, err := Run(context.Background(), s)

	require.NoError(t, err)
	require.Len(t, res.Scenarios, 1)
	sr := res.Scenarios[0]
	assert.False(t, sr.Passed())
	assert.Equal(t, []string{
		"declaration 2: want declared, got duplicate_or_invalid",
		"expression: want valid, got undeclared",
		`undeclared: want "z", got "b"`,
	}, sr.Mismatches)
	assert.Equal(t, 1, sr.Variables)
	assert.Equal(t, 1, res.Failed())
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, &Suite{Scenarios: []Scenario{{ID: "a"}}})

	assert.ErrorIs(t, err, context.Canceled)
}
