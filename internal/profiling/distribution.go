package profiling

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/D-Vella/Data-Quality-Checker/domain/quality"
)

// Minimum sample size for the Jarque-Bera normality check. Below this the
// test has essentially no power, so the Normality block is omitted.
const minNormalitySample = 8

// Significance level for declaring a sample non-normal.
const normalityAlpha = 0.05

// describeDistribution fills the shape fields of a numeric profile:
// sample skewness, excess kurtosis and, when the sample is large enough,
// a Jarque-Bera normality check.
func describeDistribution(values []float64, std float64, ns *quality.NumericStats) {
	if std == 0 {
		return
	}
	if len(values) >= 3 {
		ns.Skewness = stat.Skew(values, nil)
	}
	if len(values) >= 4 {
		ns.Kurtosis = stat.ExKurtosis(values, nil)
	}
	if len(values) >= minNormalitySample {
		ns.Normality = jarqueBera(len(values), ns.Skewness, ns.Kurtosis)
	}
}

// jarqueBera tests the null hypothesis of normality from the sample's
// skewness and excess kurtosis. The statistic is asymptotically
// chi-squared with two degrees of freedom.
func jarqueBera(n int, skew, exKurt float64) *quality.NormalityCheck {
	jb := float64(n) / 6 * (skew*skew + exKurt*exKurt/4)
	p := distuv.ChiSquared{K: 2}.Survival(jb)
	return &quality.NormalityCheck{
		Statistic: jb,
		PValue:    p,
		IsNormal:  p >= normalityAlpha,
	}
}
