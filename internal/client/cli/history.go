package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) History(ctx context.Context) {

	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	entries, err := a.api.History(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if len(entries) == 0 {
		fmt.Println("No analyses yet")
		return
	}

	for i, e := range entries {
		fmt.Printf("%d. [%s] %s\n", i+1, e.Timestamp.Format("2006-01-02 15:04"), e.Language)
		if e.AnalysisSummary != "" {
			fmt.Println("   " + e.AnalysisSummary)
		}
	}
}
