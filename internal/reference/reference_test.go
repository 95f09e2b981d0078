package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PolicySimulator/internal/model"
)

func TestNormalize_DefaultRowsSumTo100(t *testing.T) {
	d, err := New(Default())
	require.NoError(t, err)

	rows := d.Rows()
	require.Len(t, rows, 4)
	for i, r := range rows {
		assert.InDelta(t, 100.0, r.Sum(), 1e-9, "row %d", i)
	}
}

func TestNormalize_ScalesEachRowIndependently(t *testing.T) {
	rows, err := Normalize([][]float64{
		{45, 20, 31},
		{50, 25, 25},
		{1, 1, 2},
	})
	require.NoError(t, err)

	want := []model.Reference{
		{46.875, 20.0 / 96 * 100, 31.0 / 96 * 100},
		{50, 25, 25},
		{25, 25, 50},
	}
	if diff := cmp.Diff(want, rows, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("normalized rows mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_RejectsMalformedScenarios(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *model.Scenario)
		want   error
	}{
		{
			name:   "no simulated years",
			mutate: func(s *model.Scenario) { s.Params.YearsSimulated = 0 },
			want:   ErrNoYears,
		},
		{
			name:   "security floor above 100",
			mutate: func(s *model.Scenario) { s.Params.MinSecurityExpenditure = 101 },
			want:   ErrSecurityFloor,
		},
		{
			name:   "short gdp series",
			mutate: func(s *model.Scenario) { s.ActualGDP = s.ActualGDP[:4] },
			want:   ErrGDPSeriesLength,
		},
		{
			name:   "missing expenditure row",
			mutate: func(s *model.Scenario) { s.ActualExpenditures = s.ActualExpenditures[:3] },
			want:   ErrExpenditureRows,
		},
		{
			name:   "row with two categories",
			mutate: func(s *model.Scenario) { s.ActualExpenditures[1] = []float64{50, 50} },
			want:   ErrRowWidth,
		},
		{
			name:   "zero-sum row",
			mutate: func(s *model.Scenario) { s.ActualExpenditures[2] = []float64{0, 0, 0} },
			want:   ErrNonPositiveRow,
		},
		{
			name:   "negative value",
			mutate: func(s *model.Scenario) { s.ActualExpenditures[0] = []float64{60, -10, 50} },
			want:   ErrNegativeValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			_, err := New(s)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNew_CopiesInputSeries(t *testing.T) {
	s := Default()
	d, err := New(s)
	require.NoError(t, err)

	s.ActualGDP[0] = 1
	assert.Equal(t, 80052.0, d.InitialGDP())
	assert.Equal(t, 86975.0, d.MaxGDP())
}

func TestAccessors_OutOfRange(t *testing.T) {
	d, err := New(Default())
	require.NoError(t, err)

	_, err = d.Row(4)
	assert.ErrorIs(t, err, ErrYearOutOfRange)
	_, err = d.Row(-1)
	assert.ErrorIs(t, err, ErrYearOutOfRange)
	_, err = d.GDP(5)
	assert.ErrorIs(t, err, ErrYearOutOfRange)

	g, err := d.GDP(4)
	require.NoError(t, err)
	assert.Equal(t, 86975.0, g)
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := `region: Testland
params:
  start_year: 2000
  years_simulated: 2
  min_security_expenditure: 20
actual_gdp: [1000, 1100, 1300]
actual_expenditures:
  - [50, 30, 20]
  - [2, 1, 1]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	d, err := New(s)
	require.NoError(t, err)

	assert.Equal(t, "Testland", d.Region())
	assert.Equal(t, model.Params{StartYear: 2000, YearsSimulated: 2, MinSecurityExpenditure: 20}, d.Params())
	row, err := d.Row(1)
	require.NoError(t, err)
	assert.Equal(t, model.Reference{50, 25, 25}, row)
}

func TestLoadScenario_Errors(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("actual_gdp: [1, 2"), 0644))
	_, err = LoadScenario(path)
	assert.ErrorContains(t, err, "parse scenario")
}

func TestLoadScenario_ShippedSingaporeMatchesDefault(t *testing.T) {
	s, err := LoadScenario(filepath.Join("..", "..", "configs", "scenarios", "singapore.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), s); diff != "" {
		t.Errorf("shipped scenario drifted from Default (-want +got):\n%s", diff)
	}
}
