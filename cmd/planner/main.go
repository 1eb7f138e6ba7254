package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	originPath       string
	destinationsPath string
	modesPath        string
	plannerConfig    string
	criterionFlag    string
	reportPath       string
	choice           int
	allCriteria      bool
	noColor          bool
	verbose          bool
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Plan a multi-stop trip from a fixed origin",
	Long: `Finds the shortest visiting order from the origin through every destination
and proposes up to three itineraries that pick a transport mode for every leg.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan the trip and print the alternatives",
	Long: `Solves the visiting order, generates the alternatives for the chosen
criterion (least_time, least_cost or balanced; 1, 2 or 3 also work) and writes
the CSV report of one alternative.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print only the optimal visiting order",
	Args:  cobra.NoArgs,
	RunE:  runPath,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&originPath, "origin", "data/seeds/origin.json", "Origin JSON file")
	rootCmd.PersistentFlags().StringVar(&destinationsPath, "destinations", "data/seeds/destinations.json", "Destinations JSON file")
	rootCmd.PersistentFlags().StringVar(&modesPath, "modes", "data/seeds/modes.json", "Transport modes JSON file")
	rootCmd.PersistentFlags().StringVar(&plannerConfig, "config", "", "Planner YAML config (default $PLANNER_CONFIG or config/planner.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log timings to stderr")

	planCmd.Flags().StringVarP(&criterionFlag, "criterion", "c", "balanced", "least_time | least_cost | balanced")
	planCmd.Flags().StringVarP(&reportPath, "report", "r", "final_route_report.csv", "CSV report path (empty to skip)")
	planCmd.Flags().IntVar(&choice, "choice", 1, "Alternative written to the report (1-based)")
	planCmd.Flags().BoolVar(&allCriteria, "all", false, "Plan every criterion; the report uses --criterion")

	rootCmd.AddCommand(planCmd, pathCmd)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
