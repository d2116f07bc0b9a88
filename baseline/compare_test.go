package baseline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contagion/baseline"
	"github.com/katalvlaran/contagion/builder"
	"github.com/katalvlaran/contagion/report"
)

func reportOf(scores ...float64) *report.Report {
	r := report.New(len(scores))
	copy(r.Scores, scores)

	return r
}

func TestKendallTau(t *testing.T) {
	tau, err := baseline.KendallTau(reportOf(1, 2, 3), reportOf(10, 20, 30))
	require.NoError(t, err)
	assert.InDelta(t, 1, tau, 1e-12)

	tau, err = baseline.KendallTau(reportOf(1, 2, 3), reportOf(3, 2, 1))
	require.NoError(t, err)
	assert.InDelta(t, -1, tau, 1e-12)

	// pairs (0,1) concordant, (0,2) concordant, (1,2) discordant.
	tau, err = baseline.KendallTau(reportOf(1, 2, 3), reportOf(1, 3, 2))
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, tau, 1e-12)
}

func TestKendallTau_Errors(t *testing.T) {
	_, err := baseline.KendallTau(nil, reportOf(1, 2))
	assert.ErrorIs(t, err, baseline.ErrInvalidParameter)
	_, err = baseline.KendallTau(reportOf(1, 2), reportOf(1, 2, 3))
	assert.ErrorIs(t, err, baseline.ErrInvalidParameter)
	_, err = baseline.KendallTau(reportOf(1), reportOf(1))
	assert.ErrorIs(t, err, baseline.ErrInvalidParameter)
}

func TestDegree(t *testing.T) {
	g, err := builder.Star(5)
	require.NoError(t, err)

	rep, err := baseline.Degree(g)
	require.NoError(t, err)
	assert.InDelta(t, 1, rep.Score(0), 1e-12)
	assert.InDelta(t, 0.25, rep.Score(3), 1e-12)

	_, err = baseline.Degree(nil)
	assert.ErrorIs(t, err, baseline.ErrGraphNil)
}
