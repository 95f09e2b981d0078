package reference

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"PolicySimulator/internal/model"
)

// Default returns the built-in Singapore scenario, 2011 through 2015.
func Default() model.Scenario {
	return model.Scenario{
		Region: "Singapore",
		Params: model.Params{
			StartYear:              2011,
			YearsSimulated:         4,
			MinSecurityExpenditure: 25,
		},
		// GDP per capita (PPP), 2011 to 2015.
		ActualGDP: []float64{80052, 82065, 83002, 84423, 86975},
		// Rows are 2012 to 2015, columns follow model.Category. Unscaled.
		ActualExpenditures: [][]float64{
			{45, 20, 31},
			{46, 18, 32},
			{48, 18, 30},
			{47, 22, 27},
		},
	}
}

// LoadScenario reads a scenario from a YAML file. The result is not validated;
// pass it to New.
func LoadScenario(path string) (model.Scenario, error) {
	var s model.Scenario
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse scenario: %w", err)
	}
	return s, nil
}
