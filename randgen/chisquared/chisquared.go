// Package chisquared implements Pearson's chi-squared goodness-of-fit test,
// used to check that distributions shape engine output as documented.
package chisquared

import (
	"fmt"
	"strconv"
	"strings"
)

// Upper tail critical values, from
// https://www.itl.nist.gov/div898/handbook/eda/section3/eda3674.htm
const probabilities = `0.90 0.95 0.975 0.99 0.999`

// dof      critical values for the probabilities above
const rawTable = `
  1          2.706     3.841     5.024     6.635    10.828
  2          4.605     5.991     7.378     9.210    13.816
  3          6.251     7.815     9.348    11.345    16.266
  4          7.779     9.488    11.143    13.277    18.467
  5          9.236    11.070    12.833    15.086    20.515
  6         10.645    12.592    14.449    16.812    22.458
  7         12.017    14.067    16.013    18.475    24.322
  8         13.362    15.507    17.535    20.090    26.125
  9         14.684    16.919    19.023    21.666    27.877
 10         15.987    18.307    20.483    23.209    29.588
 11         17.275    19.675    21.920    24.725    31.264
 12         18.549    21.026    23.337    26.217    32.910
 13         19.812    22.362    24.736    27.688    34.528
 14         21.064    23.685    26.119    29.141    36.123
 15         22.307    24.996    27.488    30.578    37.697
 16         23.542    26.296    28.845    32.000    39.252
 17         24.769    27.587    30.191    33.409    40.790
 18         25.989    28.869    31.526    34.805    42.312
 19         27.204    30.144    32.852    36.191    43.820
 20         28.412    31.410    34.170    37.566    45.315
 21         29.615    32.671    35.479    38.932    46.797
 22         30.813    33.924    36.781    40.289    48.268
 23         32.007    35.172    38.076    41.638    49.728
 24         33.196    36.415    39.364    42.980    51.179
 25         34.382    37.652    40.646    44.314    52.620
 26         35.563    38.885    41.923    45.642    54.052
 27         36.741    40.113    43.195    46.963    55.476
 28         37.916    41.337    44.461    48.278    56.892
 29         39.087    42.557    45.722    49.588    58.301
 30         40.256    43.773    46.979    50.892    59.703
 31         41.422    44.985    48.232    52.191    61.098
 32         42.585    46.194    49.480    53.486    62.487
 33         43.745    47.400    50.725    54.776    63.870
 34         44.903    48.602    51.966    56.061    65.247
 35         46.059    49.802    53.203    57.342    66.619
 36         47.212    50.998    54.437    58.619    67.985
 37         48.363    52.192    55.668    59.893    69.347
 38         49.513    53.384    56.896    61.162    70.703
 39         50.660    54.572    58.120    62.428    72.055
 40         51.805    55.758    59.342    63.691    73.402
 41         52.949    56.942    60.561    64.950    74.745
`

var (
	confidences []float64
	table       = make(map[int][]float64)
)

// Confidences returns the confidence probabilities with critical values.
func Confidences() []float64 {
	return append([]float64(nil), confidences...)
}

// Critical returns the critical value for the given degrees of freedom and
// confidence probability.
func Critical(dof int, confidence float64) (float64, error) {
	row, ok := table[dof]
	if !ok {
		return 0, fmt.Errorf("chisquared: no critical values for %d degrees of freedom", dof)
	}
	for i, p := range confidences {
		if p == confidence {
			return row[i], nil
		}
	}
	return 0, fmt.Errorf("chisquared: no critical values for confidence %g", confidence)
}

// Statistic returns the chi-squared statistic of the observed bucket counts
// against the expected bucket counts.
func Statistic(observed []int, expected []float64) float64 {
	if len(observed) != len(expected) {
		panic("chisquared: observed and expected lengths differ")
	}

	var chiSq float64
	for i, n := range observed {
		d := float64(n) - expected[i]
		chiSq += d * d / expected[i]
	}
	return chiSq
}

// UniformStatistic returns the chi-squared statistic of the observed bucket
// counts against a uniform expectation.
func UniformStatistic(observed []int) float64 {
	var total int
	for _, n := range observed {
		total += n
	}
	expected := make([]float64, len(observed))
	for i := range expected {
		expected[i] = float64(total) / float64(len(observed))
	}
	return Statistic(observed, expected)
}

// FitsUniform returns true iff the observed bucket counts are consistent
// with a uniform distribution at the given confidence.
func FitsUniform(observed []int, confidence float64) (bool, float64, error) {
	crit, err := Critical(len(observed)-1, confidence)
	if err != nil {
		return false, 0, err
	}
	chiSq := UniformStatistic(observed)
	return chiSq < crit, chiSq, nil
}

func parseFloats(fields []string) []float64 {
	v := make([]float64, len(fields))
	for i, f := range fields {
		var err error
		if v[i], err = strconv.ParseFloat(f, 64); err != nil {
			panic(fmt.Sprintf("chisquared: malformed table value '%s'", f))
		}
	}
	return v
}

func init() {
	confidences = parseFloats(strings.Fields(probabilities))
	for _, line := range strings.Split(rawTable, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != len(confidences)+1 {
			panic(fmt.Sprintf("chisquared: malformed table line '%s'", line))
		}
		dof, err := strconv.Atoi(fields[0])
		if err != nil {
			panic(fmt.Sprintf("chisquared: malformed degrees of freedom in '%s'", line))
		}
		table[dof] = parseFloats(fields[1:])
	}
}
