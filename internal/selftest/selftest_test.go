package selftest

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_BuiltInSuitePasses(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cases := Cases()
	sum, err := Run(context.Background(), &out, cases)

	require.NoError(t, err, out.String())
	assert.Equal(t, len(cases), sum.Passed)
	assert.Zero(t, sum.Failed)
	assert.NotContains(t, out.String(), "Failed")
	assert.Contains(t, out.String(), "\nCalc: example\nPassed\n")
}

func TestRun_ReportsFailures(t *testing.T) {
	t.Parallel()

	cases := []Case{
		{Name: "ok", Check: func(context.Context) (string, string, error) { return "x", "x", nil }},
		{Name: "mismatch", Check: func(context.Context) (string, string, error) { return "x", "y", nil }},
		{Name: "broken", Check: func(context.Context) (string, string, error) { return "", "", errors.New("kaput") }},
	}

	var out bytes.Buffer
	sum, err := Run(context.Background(), &out, cases)

	require.ErrorIs(t, err, ErrFailed)
	assert.Equal(t, Summary{Passed: 1, Failed: 2}, sum)
	assert.Contains(t, out.String(), "mismatch\nFailed\nFound:\nx\nExpected:\ny\n")
	assert.Contains(t, out.String(), "Error: kaput")
	assert.True(t, strings.HasSuffix(out.String(), "1 passed, 2 failed\n"))
}

func TestRun_StopsWhenCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, &bytes.Buffer{}, Cases())
	require.ErrorIs(t, err, context.Canceled)
}

func TestDescribeTable(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "{a=1, b=0}", describeTable(map[string]int{"b": 0, "a": 1}))
	assert.Equal(t, "{}", describeTable(nil))
}
