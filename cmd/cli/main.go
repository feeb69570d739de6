package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mjindal/ledgerbook/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgerbook-cli",
		Short: "LedgerBook CLI tool",
		Long:  `A command line interface for interacting with the LedgerBook API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the LedgerBook API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(partyCmd(), settleCmd(), trialBalanceCmd(), consistencyCmd(), migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func partyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "party",
		Short: "Party operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List parties",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			path := "/api/v1/parties/"
			if name != "" {
				path += "?name=" + name
			}
			return apiGet(path)
		},
	}
	listCmd.Flags().String("name", "", "Filter parties by name")

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a party",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{}
			for _, flag := range []string{"name", "phone", "address", "commission-rate", "commission-direction", "opening-balance"} {
				value, _ := cmd.Flags().GetString(flag)
				if value == "" {
					continue
				}
				switch flag {
				case "commission-rate":
					payload["commission_rate"] = value
				case "commission-direction":
					payload["commission_direction"] = value
				case "opening-balance":
					payload["opening_balance"] = value
				default:
					payload[flag] = value
				}
			}
			return apiPost("/api/v1/parties/", payload)
		},
	}
	createCmd.Flags().String("name", "", "Party name (required)")
	createCmd.Flags().String("phone", "", "Phone number")
	createCmd.Flags().String("address", "", "Address")
	createCmd.Flags().String("commission-rate", "", "Commission rate percentage")
	createCmd.Flags().String("commission-direction", "", "Commission direction: take or give")
	createCmd.Flags().String("opening-balance", "", "Opening balance")
	_ = createCmd.MarkFlagRequired("name")

	statementCmd := &cobra.Command{
		Use:   "statement <party-id>",
		Short: "Show a party's full statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet("/api/v1/parties/" + args[0] + "/statement")
		},
	}

	cmd.AddCommand(listCmd, createCmd, statementCmd)

	return cmd
}

func settleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle <party-id>",
		Short: "Settle a party's current entries (Monday Final)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, _ := cmd.Flags().GetString("note")
			payload := map[string]any{}
			if note != "" {
				payload["note"] = note
			}
			return apiPost("/api/v1/parties/"+args[0]+"/settlements", payload)
		},
	}
	cmd.Flags().String("note", "", "Settlement note")

	return cmd
}

func trialBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trial-balance",
		Short: "Show the trial balance report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet("/api/v1/reports/trial-balance")
		},
	}
}

func consistencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := fetch("/api/v1/reports/consistency")
			if err != nil {
				return err
			}

			var result map[string]any
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printJSON(result)

			if consistent, ok := result["consistent"].(bool); ok && !consistent {
				return fmt.Errorf("ledger is inconsistent")
			}

			fmt.Println("Consistency check PASSED")
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	var databaseURL, migrationsPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection URL")
	cmd.PersistentFlags().StringVar(&migrationsPath, "migrations-path", "internal/infrastructure/postgres/migrations", "Path to migration files")

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.RunMigrations(databaseURL, migrationsPath)
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.RunMigrationsDown(databaseURL, migrationsPath)
		},
	}

	cmd.AddCommand(upCmd, downCmd)

	return cmd
}

func apiGet(path string) error {
	body, err := fetch(path)
	if err != nil {
		return err
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	printJSON(result)
	return nil
}

func apiPost(path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	printJSON(result)
	return nil
}

func fetch(path string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render output: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
