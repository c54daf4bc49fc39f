package report

import (
	"fmt"
	"strings"
	"time"

	"Cascade/internal/model"
)

// FormatAlert formats a net-total change alert for a single dataset.
func FormatAlert(ds *model.Dataset, delta float64, level string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Cascade alert [%s] | %s\n\n", level, ds.Name))
	b.WriteString(fmt.Sprintf("net total: %+.2f (change %+.2f)\n", ds.Summary.NetTotal, delta))
	b.WriteString(fmt.Sprintf("bars: %d up / %d down\n", ds.Summary.Rises, ds.Summary.Drops))
	if ds.Summary.LargestDropX != "" {
		b.WriteString(fmt.Sprintf("largest drop: %s (%+.2f)\n", ds.Summary.LargestDropX, ds.Summary.LargestDropY))
	}
	if ds.Summary.LargestRiseX != "" {
		b.WriteString(fmt.Sprintf("largest rise: %s (%+.2f)\n", ds.Summary.LargestRiseX, ds.Summary.LargestRiseY))
	}
	b.WriteString(fmt.Sprintf("computed: %s", ds.ComputedAt.Format("2006-01-02 15:04")))
	return b.String()
}

// FormatDigest formats the daily summary across all datasets.
func FormatDigest(datasets []*model.Dataset) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Cascade digest | %s\n", time.Now().Format("2006-01-02")))

	if len(datasets) == 0 {
		b.WriteString("\nno datasets computed yet")
		return b.String()
	}

	for _, ds := range datasets {
		b.WriteString(fmt.Sprintf("\n%s (%s): net %+.2f, %d bars, range [%.2f, %.2f]\n",
			ds.Name, ds.Source, ds.Summary.NetTotal,
			len(ds.Entries), ds.Summary.DomainMin, ds.Summary.DomainMax))
	}
	return b.String()
}

// FormatFailure formats a refresh failure notice.
func FormatFailure(err error) string {
	return fmt.Sprintf("Cascade refresh failed: %v", err)
}
