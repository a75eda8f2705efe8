package forecast

import (
	"fmt"
	"strings"
)

// Report section layout. The format is stable and line-oriented: it is
// what downstream file export writes verbatim, so changes here are
// breaking.
const (
	reportTitle       = "Revenue Forecast Report"
	historicalHeader  = "HISTORICAL"
	predictionsHeader = "PREDICTIONS"
	accuracyHeader    = "ACCURACY"
)

// ExportReport renders a forecast result as the line-oriented text
// report: a commented preamble, then CSV-style historical, prediction,
// and accuracy sections separated by blank lines. All numeric fields
// carry exactly two decimals; MAPE is suffixed with a percent sign.
// Every section is present even when the prediction list is empty.
func ExportReport(result *Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", reportTitle)
	fmt.Fprintf(&b, "# Method: %s\n", result.Method)
	fmt.Fprintf(&b, "# Historical data points: %d\n", len(result.Historical))
	fmt.Fprintf(&b, "# Forecast horizon: %d\n", result.Metadata.RequestedPeriods)
	b.WriteByte('\n')

	b.WriteString(historicalHeader)
	b.WriteByte('\n')
	for _, p := range result.Historical {
		fmt.Fprintf(&b, "%s,%.2f\n", p.Period.Key(), p.Value)
	}
	b.WriteByte('\n')

	b.WriteString(predictionsHeader)
	b.WriteByte('\n')
	for _, p := range result.Predictions {
		fmt.Fprintf(&b, "%s,%.2f,%.2f,%.2f\n", p.Period.Key(), p.Value, p.Lower, p.Upper)
	}
	b.WriteByte('\n')

	b.WriteString(accuracyHeader)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "MAE,%.2f\n", result.Accuracy.MAE)
	fmt.Fprintf(&b, "MSE,%.2f\n", result.Accuracy.MSE)
	fmt.Fprintf(&b, "RMSE,%.2f\n", result.Accuracy.RMSE)
	fmt.Fprintf(&b, "MAPE,%.2f%%\n", result.Accuracy.MAPE)

	return b.String()
}
