package presenter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"PolicySimulator/internal/model"
)

const Divider = ".........................................................."

// Round rounds half to even, the way the simulator has always reported dollars.
func Round(v float64) int64 {
	return int64(math.RoundToEven(v))
}

// formatHistorical prints a dataset value without forcing a decimal point.
func formatHistorical(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatInstructions renders the welcome text.
func FormatInstructions(region string, p model.Params) string {
	var b strings.Builder
	b.WriteString("\nWelcome to the economic policy simulator!\n")
	b.WriteString(fmt.Sprintf("You will steer the %s economy through the years from %d through %d "+
		"by allocating budget funds across three categories:\n\n", region, p.StartYear, p.FinalYear()))
	b.WriteString("I. Social development (education and healthcare)\n")
	b.WriteString("II. Infrastructure and research\n")
	b.WriteString("III. Security (including police and military)\n\n")
	b.WriteString("For each year, enter the percentage of available funds that you wish to " +
		"allocate to each of these categories. For example, you may enter \"40 30 30\" " +
		"or \"90 5 5\". Please ensure that these percentages sum to 100.\n\n")
	b.WriteString(fmt.Sprintf("Your objective is to maximize the GDP per capita (PPP) of the city in %d.\n\n", p.FinalYear()))
	b.WriteString("You can assume that other necessary expenditures, such as welfare programs and " +
		"national debt repayments, are being taken care of automatically.\n\n")
	b.WriteString("Be careful not to spend too little on security. Doing so may leave the city-state " +
		"vulnerable to attack from a foreign power.\n")
	return b.String()
}

// FormatStart renders the opening GDP line of a session.
func FormatStart(startYear int, gdp float64) string {
	return fmt.Sprintf("In %d, the GDP per capita (PPP) was $%s.", startYear, formatHistorical(gdp))
}

// FormatYearPrompt renders the per-year request for an allocation.
func FormatYearPrompt(year int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("The year is %d.\n", year))
	b.WriteString(fmt.Sprintf("Please enter your allocations towards 1) %s, 2) %s, and 3) %s, "+
		"according to the format described in the instructions above:",
		model.SocialDevelopment, model.InfrastructureResearch, model.Security))
	return b.String()
}

// FormatTurnResult renders the gain and new GDP after a successful turn.
func FormatTurnResult(praise string, res model.TurnResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s! GDP per capita (PPP) has risen by $%d.\n", praise, Round(res.Delta)))
	b.WriteString(fmt.Sprintf("GDP per capita (PPP) is now $%d.", Round(res.GDPAfter)))
	return b.String()
}

// FormatInvasion renders the security-floor failure message.
func FormatInvasion() string {
	return "Insufficient spending on defense led to an invasion by a foreign power. Please try again."
}

// FormatFinal renders the end-of-game summary.
func FormatFinal(s *model.Summary) string {
	return fmt.Sprintf("The city's final GDP per capita (PPP) is $%d, which is $%d away from the "+
		"maximum possible value of $%s.", Round(s.FinalGDP), Round(s.Gap), formatHistorical(s.MaxGDP))
}
