package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Show the caller's portal profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if autologinFlag == "" {
				return fmt.Errorf("--autologin required")
			}
			data, err := doJSON("GET", apiFlag+"/v1/user/info", nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(userCmd)

	calendarsCmd := &cobra.Command{
		Use:   "calendars",
		Short: "List the caller's custom calendars",
		RunE: func(cmd *cobra.Command, args []string) error {
			if autologinFlag == "" {
				return fmt.Errorf("--autologin required")
			}
			data, err := doJSON("GET", apiFlag+"/v1/custom/list", nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(calendarsCmd)

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check gateway and portal health",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiData, err := doJSON("GET", apiFlag+"/v1/health/api", nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "api:   "+string(apiData))
			intraData, err := doJSON("GET", apiFlag+"/v1/health/intra", nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "intra: "+string(intraData))
			return nil
		},
	}
	rootCmd.AddCommand(healthCmd)
}
