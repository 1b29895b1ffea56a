package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	player    string
	rating    int
	opponent  string
	minRating int
	maxRating int
	sessionID string
)

func init() {
	enqueueCmd.Flags().StringVar(&player, "player", "", "Player identity (required)")
	enqueueCmd.Flags().IntVar(&rating, "rating", 0, "Player rating; 0 lets the server resolve it")
	enqueueCmd.Flags().StringVar(&opponent, "opponent", "ANY", "Preferred opponent: HUMAN, AI or ANY")
	enqueueCmd.Flags().IntVar(&minRating, "min-rating", 0, "Lowest acceptable opponent rating")
	enqueueCmd.Flags().IntVar(&maxRating, "max-rating", 3000, "Highest acceptable opponent rating")
	enqueueCmd.MarkFlagRequired("player")

	cancelCmd.Flags().StringVar(&player, "player", "", "Player identity (required)")
	cancelCmd.MarkFlagRequired("player")

	statusCmd.Flags().StringVar(&player, "player", "", "Player identity (required)")
	statusCmd.MarkFlagRequired("player")

	pollCmd.Flags().StringVar(&player, "player", "", "Player identity (required)")
	pollCmd.MarkFlagRequired("player")

	acceptCmd.Flags().StringVar(&player, "player", "", "Player identity (required)")
	acceptCmd.Flags().StringVar(&sessionID, "session", "", "Session id from poll (required)")
	acceptCmd.MarkFlagRequired("player")
	acceptCmd.MarkFlagRequired("session")

	rootCmd.AddCommand(enqueueCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(pollCmd)
	rootCmd.AddCommand(acceptCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
}

var enqueueCmd = &cobra.Command{
	Use:   "enqueue",
	Short: "Join the matchmaking queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/queue", map[string]any{
			"player":             player,
			"rating":             rating,
			"preferred_opponent": opponent,
			"min_rating":         minRating,
			"max_rating":         maxRating,
		})
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Leave the matchmaking queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/queue/cancel", map[string]any{"player": player})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the player's queue status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/queue/status?player=" + url.QueryEscape(player))
	},
}

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Check whether a match has been found",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/match/poll?player=" + url.QueryEscape(player))
	},
}

var acceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Accept a found match",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/match/accept", map[string]any{
			"player":     player,
			"session_id": sessionID,
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show queue sizes and active match count",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats")
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, payload map[string]any) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
