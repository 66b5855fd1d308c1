package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parcel-comps/internal/comps"
	"github.com/parcel-comps/internal/config"
	"github.com/parcel-comps/internal/db"
	"github.com/parcel-comps/internal/normalize"
	"github.com/parcel-comps/internal/property"
)

var dbConn *db.Connection

func main() {
	config.LoadEnv()

	var err error
	dbConn, err = db.NewConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	rootCmd := &cobra.Command{
		Use:   "comps",
		Short: "Comparable-parcel finder",
		Long:  `Finds the most similar parcels within a legal subdivision, ranked by weighted-difference similarity`,
	}

	rootCmd.AddCommand(createPingCmd())
	rootCmd.AddCommand(createCompareCmd())
	rootCmd.AddCommand(createByAddressCmd())
	rootCmd.AddCommand(createStatsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createPingCmd creates a command to test database connectivity.
func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Database connection successful!")

			var count int
			err := dbConn.DB.QueryRow("SELECT COUNT(*) FROM parcel").Scan(&count)
			if err != nil {
				log.Printf("Error counting parcel records: %v", err)
			} else {
				fmt.Printf("Parcels loaded: %d\n", count)
			}
		},
	}
}

// createCompareCmd creates the compare subcommand.
func createCompareCmd() *cobra.Command {
	var limit int
	var algorithm string
	var localDebug bool

	cmd := &cobra.Command{
		Use:   "compare [account-number]",
		Short: "Find comparables for a parcel",
		Long:  `Find the most similar parcels in the same subdivision, ranked by similarity score (lower is more similar)`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			override, err := readAlgorithmFlag(algorithm)
			if err != nil {
				log.Fatalf("Failed to read algorithm override: %v", err)
			}

			service := comps.NewService(property.NewStore(dbConn.DB))
			result, err := service.Compare(localDebug, comps.Request{
				PropertyID:      args[0],
				Limit:           limit,
				CustomAlgorithm: override,
			})
			if err != nil {
				log.Fatalf("Comparison failed: %v", err)
			}

			printResult(result)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum comparables to return (default 10)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "Algorithm override: inline JSON or @file")
	cmd.Flags().BoolVar(&localDebug, "debug", false, "Trace per-candidate filtering and scoring")

	return cmd
}

// createByAddressCmd creates the by-address subcommand.
func createByAddressCmd() *cobra.Command {
	var limit int
	var localDebug bool

	cmd := &cobra.Command{
		Use:   "by-address [address]",
		Short: "Find comparables for a parcel by street address",
		Long:  `Resolve a parcel from a free-form address using libpostal, then find its comparables`,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			address := strings.Join(args, " ")
			store := property.NewStore(dbConn.DB)

			rec, err := store.ByAddress(normalize.SitusQuery(address))
			if err != nil {
				log.Fatalf("Address lookup failed: %v", err)
			}
			if rec == nil {
				log.Fatalf("No parcel found at: %s", address)
			}

			fmt.Printf("Resolved to account %s\n\n", rec.ID)

			service := comps.NewService(store)
			result, err := service.Compare(localDebug, comps.Request{
				PropertyID: rec.ID,
				Limit:      limit,
			})
			if err != nil {
				log.Fatalf("Comparison failed: %v", err)
			}

			printResult(result)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum comparables to return (default 10)")
	cmd.Flags().BoolVar(&localDebug, "debug", false, "Trace per-candidate filtering and scoring")

	return cmd
}

// createStatsCmd creates the stats subcommand.
func createStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show parcel data statistics",
		Run: func(cmd *cobra.Command, args []string) {
			var total, subdivisions, scorable int
			err := dbConn.DB.QueryRow(`
				SELECT
					COUNT(*),
					COUNT(DISTINCT subdivision_code),
					COUNT(*) FILTER (WHERE living_area > 0 AND market_value > 0
						AND land_value > 0 AND year_built > 0)
				FROM parcel
			`).Scan(&total, &subdivisions, &scorable)
			if err != nil {
				log.Fatalf("Failed to query statistics: %v", err)
			}

			fmt.Println("=== Parcel Data Statistics ===")
			fmt.Printf("Total Parcels:    %d\n", total)
			fmt.Printf("Subdivisions:     %d\n", subdivisions)
			fmt.Printf("Scorable Parcels: %d (%.1f%%)\n",
				scorable, float64(scorable)/float64(total)*100)
		},
	}
}

// readAlgorithmFlag resolves the --algorithm flag: inline JSON, or the
// contents of a file when prefixed with @.
func readAlgorithmFlag(value string) (json.RawMessage, error) {
	if value == "" {
		return nil, nil
	}
	if strings.HasPrefix(value, "@") {
		data, err := os.ReadFile(strings.TrimPrefix(value, "@"))
		if err != nil {
			return nil, err
		}
		return json.RawMessage(data), nil
	}
	return json.RawMessage(value), nil
}

// printResult writes a ranked comparables table to stdout.
func printResult(result *comps.Result) {
	fmt.Printf("=== Comparables for %s (subdivision %s) ===\n", result.Target.ID, result.SubdivisionCode)
	fmt.Printf("Candidates: %d raw, %d within tolerance\n\n", result.TotalCandidates, result.FilteredCount)

	if len(result.Comparables) == 0 {
		fmt.Println("No comparable parcels found.")
		return
	}

	fmt.Println("Rank | Account      | Similarity | Base     | Price Bias")
	fmt.Println("-----|--------------|------------|----------|-----------")
	for i, c := range result.Comparables {
		fmt.Printf("%4d | %-12s | %10.4f | %8.4f | %9.4f\n",
			i+1, c.ID, c.Similarity, c.BaseSimilarity, c.PriceBiasContribution)
	}
}
