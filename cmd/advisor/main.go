// Package main provides the command line interface for the Sui DeFi
// advisor.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sui-advisor/internal/advisor"
	"github.com/sui-advisor/internal/config"
	"github.com/sui-advisor/internal/logging"
	"github.com/sui-advisor/internal/rpc"
)

func main() {
	stakingFlag := flag.Bool("staking", false, "Show staking opportunities only")
	platformsFlag := flag.Bool("platforms", false, "Show the DeFi platforms report instead of the portfolio report")
	jsonFlag := flag.Bool("json", false, "Output raw JSON instead of the text report")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// CLI runs quiet unless something goes wrong
	logging.InitGlobalLogger(logging.LevelError, logging.FormatText)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := rpc.NewSuiClient(ctx, &cfg.Sui)
	cancel()
	if err != nil {
		fmt.Printf("Error connecting to Sui fullnode: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	svc := advisor.NewAdvisor(client, logging.GetGlobalLogger())

	if *stakingFlag {
		runStaking(svc, *jsonFlag)
		return
	}

	address := flag.Arg(0)
	if address == "" {
		fmt.Println("Usage: advisor [flags] <address>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *platformsFlag {
		runPlatforms(svc, address, *jsonFlag)
		return
	}

	runReport(svc, address, *jsonFlag)
}

func runStaking(svc *advisor.Advisor, asJSON bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opportunities, err := svc.GetStakingOpportunities(ctx)
	if err != nil {
		fmt.Printf("Error fetching staking opportunities: %v\n", err)
		os.Exit(1)
	}

	if asJSON {
		printJSON(opportunities)
		return
	}

	fmt.Println("💰 STAKING OPPORTUNITIES")
	for _, rec := range opportunities.Recommendations {
		fmt.Printf("  %s\n", rec)
	}
	fmt.Printf("\n⛽ Gas Price: %d\n", opportunities.GasCostAnalysis.CurrentGasPrice)
	fmt.Printf("  %s\n", opportunities.GasCostAnalysis.Recommendation)
	if len(opportunities.TopValidators) > 0 {
		fmt.Println("\n🏛️ Validators:")
		for _, validator := range opportunities.TopValidators {
			fmt.Printf("  • %s: %.2f%%\n", validator.Address, validator.APY)
		}
	}
}

func runPlatforms(svc *advisor.Advisor, address string, asJSON bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if asJSON {
		detected, err := svc.DetectPlatforms(ctx, address)
		if err != nil {
			fmt.Printf("Error detecting platforms: %v\n", err)
			os.Exit(1)
		}
		printJSON(detected)
		return
	}

	report, err := svc.GeneratePlatformsReport(ctx, address)
	if err != nil {
		fmt.Printf("Error generating platforms report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(report)
}

func runReport(svc *advisor.Advisor, address string, asJSON bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if asJSON {
		analysis, err := svc.AnalyzePortfolio(ctx, address)
		if err != nil {
			fmt.Printf("Error analyzing portfolio: %v\n", err)
			os.Exit(1)
		}
		printJSON(analysis)
		return
	}

	report, err := svc.GenerateReport(ctx, address)
	if err != nil {
		fmt.Printf("Error generating report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(report)
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Error encoding output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
