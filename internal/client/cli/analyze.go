package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) Analyze(ctx context.Context) {

	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	language, err := GetSimpleText(a.reader, "Enter language (see 'languages' for the list)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	path, err := GetSimpleText(a.reader, "Enter a file path, or leave empty to paste code", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	var code string
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("error reading file: %v", err)
			return
		}
		code = string(data)
	} else {
		code, err = GetMultiline(a.reader, "Paste the code to analyze", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
	}
	if strings.TrimSpace(code) == "" {
		fmt.Println("Nothing to analyze")
		return
	}

	fmt.Println("Analyzing...")

	result, err := a.api.Analyze(ctx, language, code)
	if err != nil {
		log.Printf("Analysis unsuccessful: %s", err.Error())
		return
	}

	if result.Failed() {
		fmt.Println(result.Error)
		return
	}

	for _, section := range []string{result.CodeReview, result.Optimization, result.Security, result.RefactoredCode} {
		if section != "" {
			fmt.Println()
			fmt.Println(section)
		}
	}

	// nothing matched the expected headers, show the reply as-is
	if result.CodeReview == "" && result.Optimization == "" && result.Security == "" && result.RefactoredCode == "" {
		fmt.Println()
		fmt.Println(result.RawAnalysis)
	}
}

func (a *App) Languages(ctx context.Context) {

	languages, err := a.api.Languages(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Println("Supported languages:")
	for _, l := range languages {
		fmt.Println("  " + l)
	}
}
