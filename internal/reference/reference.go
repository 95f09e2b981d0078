package reference

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"PolicySimulator/internal/model"
)

var (
	ErrNoYears         = errors.New("years_simulated must be at least 1")
	ErrGDPSeriesLength = errors.New("actual_gdp must have years_simulated+1 values")
	ErrExpenditureRows = errors.New("actual_expenditures must have one row per simulated year")
	ErrRowWidth        = errors.New("expenditure row has the wrong number of categories")
	ErrNonPositiveRow  = errors.New("expenditure row must have a positive sum")
	ErrNegativeValue   = errors.New("expenditure values must not be negative")
	ErrSecurityFloor   = errors.New("min_security_expenditure must be within [0,100]")
	ErrYearOutOfRange  = errors.New("year index out of range")
)

// Data is the immutable historical dataset with its allocation table
// normalized so every row sums to 100.
type Data struct {
	region string
	params model.Params
	gdp    []float64
	rows   []model.Reference
}

// New validates a scenario and normalizes its allocation table.
func New(s model.Scenario) (*Data, error) {
	if s.Params.YearsSimulated < 1 {
		return nil, ErrNoYears
	}
	if s.Params.MinSecurityExpenditure < 0 || s.Params.MinSecurityExpenditure > 100 {
		return nil, ErrSecurityFloor
	}
	if len(s.ActualGDP) != s.Params.YearsSimulated+1 {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrGDPSeriesLength, len(s.ActualGDP), s.Params.YearsSimulated+1)
	}
	if len(s.ActualExpenditures) != s.Params.YearsSimulated {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrExpenditureRows, len(s.ActualExpenditures), s.Params.YearsSimulated)
	}
	rows, err := Normalize(s.ActualExpenditures)
	if err != nil {
		return nil, err
	}

	gdp := make([]float64, len(s.ActualGDP))
	copy(gdp, s.ActualGDP)

	return &Data{
		region: s.Region,
		params: s.Params,
		gdp:    gdp,
		rows:   rows,
	}, nil
}

// Normalize rescales each raw row so its values sum to 100.
// Rows are scaled independently.
func Normalize(raw [][]float64) ([]model.Reference, error) {
	rows := make([]model.Reference, len(raw))
	for i, r := range raw {
		if len(r) != model.NumCategories {
			return nil, fmt.Errorf("row %d: %w: got %d, want %d", i, ErrRowWidth, len(r), model.NumCategories)
		}
		if floats.Min(r) < 0 {
			return nil, fmt.Errorf("row %d: %w", i, ErrNegativeValue)
		}
		sum := floats.Sum(r)
		if sum <= 0 {
			return nil, fmt.Errorf("row %d: %w", i, ErrNonPositiveRow)
		}
		for c, v := range r {
			rows[i][c] = v / sum * 100
		}
	}
	return rows, nil
}

// Region names the dataset, e.g. "Singapore".
func (d *Data) Region() string { return d.region }

// Params returns the simulation parameters.
func (d *Data) Params() model.Params { return d.params }

// GDP returns the historical GDP for the year at offset i from the start year.
func (d *Data) GDP(i int) (float64, error) {
	if i < 0 || i >= len(d.gdp) {
		return 0, fmt.Errorf("%w: %d", ErrYearOutOfRange, i)
	}
	return d.gdp[i], nil
}

// InitialGDP is the GDP in the start year.
func (d *Data) InitialGDP() float64 { return d.gdp[0] }

// MaxGDP is the last historical GDP value, the best attainable outcome.
func (d *Data) MaxGDP() float64 { return d.gdp[len(d.gdp)-1] }

// Row returns the normalized reference allocation for simulated year i.
func (d *Data) Row(i int) (model.Reference, error) {
	if i < 0 || i >= len(d.rows) {
		return model.Reference{}, fmt.Errorf("%w: %d", ErrYearOutOfRange, i)
	}
	return d.rows[i], nil
}

// Rows returns a copy of the normalized allocation table.
func (d *Data) Rows() []model.Reference {
	out := make([]model.Reference, len(d.rows))
	copy(out, d.rows)
	return out
}
