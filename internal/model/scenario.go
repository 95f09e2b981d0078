package model

// NumCategories is the number of spending categories a budget is split across.
const NumCategories = 3

// Category indexes a spending category within an Allocation or Reference.
type Category int

const (
	SocialDevelopment Category = iota
	InfrastructureResearch
	Security
)

var categoryNames = [NumCategories]string{
	"Social Development",
	"Infrastructure & Research",
	"Security",
}

func (c Category) String() string {
	if c < 0 || int(c) >= NumCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

// Params holds the fixed simulation parameters.
type Params struct {
	StartYear              int `yaml:"start_year"`
	YearsSimulated         int `yaml:"years_simulated"`
	MinSecurityExpenditure int `yaml:"min_security_expenditure"`
}

// FinalYear is the calendar year of the last simulated turn.
func (p Params) FinalYear() int {
	return p.StartYear + p.YearsSimulated
}

// Scenario is a historical dataset the simulator scores the player against.
// ActualGDP has YearsSimulated+1 entries, starting at StartYear.
// ActualExpenditures has one unscaled row per simulated year.
type Scenario struct {
	Region             string      `yaml:"region"`
	Params             Params      `yaml:"params"`
	ActualGDP          []float64   `yaml:"actual_gdp"`
	ActualExpenditures [][]float64 `yaml:"actual_expenditures"`
}
