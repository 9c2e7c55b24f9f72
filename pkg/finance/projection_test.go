package finance

import "testing"

func TestProjectWealth(t *testing.T) {
	tests := []struct {
		name                string
		startingValue       float64
		annualReturnPct     float64
		monthlyContribution float64
		years               int
		expectedRange       []float64 // [min, max] expected range
	}{
		{
			name:            "Zero years returns start",
			startingValue:   100000,
			annualReturnPct: 7,
			years:           0,
			expectedRange:   []float64{100000, 100000},
		},
		{
			name:            "Zero return no contributions",
			startingValue:   50000,
			annualReturnPct: 0,
			years:           10,
			expectedRange:   []float64{50000, 50000},
		},
		{
			name:            "Seven percent doubles in about a decade",
			startingValue:   100000,
			annualReturnPct: 7,
			years:           10,
			expectedRange:   []float64{195000, 205000},
		},
		{
			name:                "Contributions only",
			startingValue:       0,
			annualReturnPct:     0,
			monthlyContribution: 500,
			years:               2,
			expectedRange:       []float64{12000, 12000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ProjectWealth(tt.startingValue, tt.annualReturnPct, tt.monthlyContribution, tt.years)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("ProjectWealth() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestYearsToRetirement(t *testing.T) {
	if got := YearsToRetirement(35, 60); got != 25 {
		t.Errorf("YearsToRetirement(35, 60) = %d, expected 25", got)
	}
	if got := YearsToRetirement(65, 60); got != 0 {
		t.Errorf("YearsToRetirement(65, 60) = %d, expected 0", got)
	}
}
