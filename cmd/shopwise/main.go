// Command shopwise is a terminal front-end for the comparison API.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopwise/backend/internal/domain"
	"github.com/shopwise/backend/pkg/client"
	"github.com/shopwise/backend/pkg/present"
)

var (
	backendURL string
	limit      int
	sortBy     string
)

var rootCmd = &cobra.Command{
	Use:   "shopwise",
	Short: "Compare product prices and carbon footprints across retailers",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search retailers and print ranked results",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the backend is reachable",
	RunE:  runHealth,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "",
		"Backend base URL (default: local development backend)")
	searchCmd.Flags().IntVarP(&limit, "limit", "l", 3,
		"Listings to fetch per store (1-10)")
	searchCmd.Flags().StringVarP(&sortBy, "sort", "s", "price",
		"Sort results by: price, carbon")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(healthCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return errors.New("query must not be empty")
	}
	if limit < 1 || limit > 10 {
		return errors.New("limit must be between 1 and 10")
	}

	var mode present.SortMode
	switch sortBy {
	case "price":
		mode = present.ByPrice
	case "carbon":
		mode = present.ByCarbon
	default:
		return fmt.Errorf("unknown sort mode %q (use price or carbon)", sortBy)
	}

	c := client.New(client.ResolveBaseURL("", backendURL))

	resp, err := c.Search(cmd.Context(), query, limit)
	if err != nil {
		log.Printf("[CLI] search failed: %v", err)
		return errors.New("search failed, please try again")
	}

	renderResults(resp.Query, present.Rank(resp.Results, mode), resp.Summary)
	return nil
}

func runHealth(cmd *cobra.Command, args []string) error {
	c := client.New(client.ResolveBaseURL("", backendURL))

	if err := c.Health(cmd.Context()); err != nil {
		log.Printf("[CLI] health check failed: %v", err)
		return errors.New("backend is not reachable")
	}
	fmt.Println("backend is healthy")
	return nil
}

func renderResults(query string, ranked []domain.ProductResult, summary string) {
	fmt.Printf("Results for %q:\n\n", query)

	if len(ranked) == 0 {
		fmt.Println("  No listings found.")
	}
	for i, r := range ranked {
		fmt.Printf("%2d. [%s] %s\n", i+1, r.Store, r.Name)
		fmt.Printf("    %s | carbon: %s (~%.1f kg CO2e) | ethical score %d/5\n",
			present.FormatPrice(r.Price), present.TierFor(r.Carbon.Label), r.Carbon.KgCO2e, r.EthicalScore)
		fmt.Printf("    %s\n", r.Link)
	}

	fmt.Println()
	if strings.TrimSpace(summary) == "" {
		fmt.Println("No recommendation to display.")
	} else {
		fmt.Println(summary)
	}
}

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
