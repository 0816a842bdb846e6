package history

import (
	"fmt"

	"github.com/farmtech/memscope/schema"
)

// PrintHistoryStatus prints run history status information.
func PrintHistoryStatus(status schema.HistoryStatus) {
	fmt.Printf("History Backend: %s\n", status.Backend)
	if status.Location != "" {
		fmt.Printf("Location: %s\n", status.Location)
	}
	if status.Backend == schema.NoneBackend {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.LastRun != nil {
		fmt.Printf("Last Run: %s\n", status.LastRun.Format("2006-01-02 15:04:05"))
	}
}
