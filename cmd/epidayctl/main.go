package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag       string
	autologinFlag string
	rootCmd       = &cobra.Command{
		Use:           "epidayctl",
		Short:         "CLI client for the epiday gateway REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "epiday base URL")
	rootCmd.PersistentFlags().StringVarP(&autologinFlag, "autologin", "l", "", "Intranet autologin credential (required for most commands)")

	// day subcommand
	var dateFlag, emailFlag string
	var semesterFlag uint64
	dayCmd := &cobra.Command{
		Use:   "day",
		Short: "Fetch the merged day schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			if autologinFlag == "" {
				return fmt.Errorf("--autologin required")
			}
			payload := map[string]interface{}{
				"date":             dateFlag,
				"current_semester": semesterFlag,
				"email":            emailFlag,
			}
			data, err := doJSON("GET", apiFlag+"/v1/planning/day", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	dayCmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Date (YYYY-MM-DD, required)")
	dayCmd.Flags().StringVarP(&emailFlag, "email", "e", "", "Caller email (required)")
	dayCmd.Flags().Uint64VarP(&semesterFlag, "semester", "s", 0, "Caller current semester (required)")
	_ = dayCmd.MarkFlagRequired("date")
	_ = dayCmd.MarkFlagRequired("email")
	_ = dayCmd.MarkFlagRequired("semester")
	rootCmd.AddCommand(dayCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
