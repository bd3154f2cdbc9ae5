package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/iffanyt/ChugCheck/client"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	authToken string
)

var rootCmd = &cobra.Command{
	Use:   "chugcheck",
	Short: "chugcheck tracks daily water intake from your terminal",
	Long:  "chugcheck logs water intake against a weight-derived daily goal and shows a monthly history, backed by the ChugCheck server.",
}

func newAPI() *client.API {
	api := &client.API{BaseURL: serverURL}
	token := authToken
	if token == "" {
		token = os.Getenv("CHUGCHECK_TOKEN")
	}
	api.SetToken(token)
	return api
}

func openStore() (*client.LocalStore, error) {
	path, err := client.DefaultStorePath()
	if err != nil {
		return nil, err
	}
	return client.OpenStore(path)
}

var signupCmd = &cobra.Command{
	Use:   "signup <email> <password>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		api := newAPI()
		if err := api.SignUp(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("account created, now run: chugcheck login", args[0], "<password>")
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Sign in and print a session token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		api := newAPI()
		gate := client.NewSessionGate()
		if err := gate.BeginAuth(); err != nil {
			return err
		}

		if _, err := api.SignIn(cmd.Context(), args[0], args[1]); err != nil {
			_ = gate.AuthFailed(err)
			return fmt.Errorf("sign-in failed: %w", err)
		}

		profile, err := api.GetProfile(cmd.Context())
		if err != nil && !errors.Is(err, client.ErrNotFound) {
			_ = gate.AuthFailed(err)
			return err
		}
		if err := gate.AuthSucceeded(profile); err != nil {
			return err
		}

		fmt.Println("signed in; export CHUGCHECK_TOKEN=" + api.Token())
		if gate.State() == client.StateNewUser {
			fmt.Println("welcome! set your goal with: chugcheck goal <weight-lbs>")
		} else if store, err := openStore(); err == nil && profile != nil {
			_ = store.SetGoal(profile.DailyGoalOz)
		}
		return nil
	},
}

var goalCmd = &cobra.Command{
	Use:   "goal <weight-lbs>",
	Short: "Set your daily goal from body weight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("weight must be a number, got %q", args[0])
		}

		api := newAPI()
		goal, err := api.SetWeight(cmd.Context(), weight)
		if err != nil {
			return err
		}
		if err := api.CompleteOnboarding(cmd.Context()); err != nil {
			return err
		}

		if store, err := openStore(); err == nil {
			_ = store.SetGoal(goal)
		}
		fmt.Printf("daily goal set: %d oz\n", goal)
		return nil
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		api := newAPI()
		store, err := openStore()
		if err != nil {
			return err
		}

		tracker := client.NewTracker(api, store, store.Goal())
		if err := tracker.LoadToday(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("%d of %d oz\n", tracker.CurrentOz(), tracker.GoalOz())
		return nil
	},
}

var logCmd = &cobra.Command{
	Use:   "log <oz>",
	Short: "Log a drink in ounces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		oz, err := strconv.Atoi(args[0])
		if err != nil || oz <= 0 {
			return fmt.Errorf("amount must be a positive whole number of ounces, got %q", args[0])
		}

		api := newAPI()
		store, err := openStore()
		if err != nil {
			return err
		}

		tracker := client.NewTracker(api, store, store.Goal())
		if err := tracker.LoadToday(cmd.Context()); err != nil {
			return err
		}

		celebrated := tracker.Add(cmd.Context(), oz)
		if saveErr := tracker.LastSaveErr(); saveErr != nil {
			fmt.Fprintf(os.Stderr, "warning: save failed, showing local total: %v\n", saveErr)
		}
		fmt.Printf("%d of %d oz\n", tracker.CurrentOz(), tracker.GoalOz())
		if celebrated {
			fmt.Println("Goal achieved! You've reached your daily water intake goal!")
		}
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset today's progress to zero",
	RunE: func(cmd *cobra.Command, args []string) error {
		api := newAPI()
		tracker := client.NewTracker(api, nil, 0)
		tracker.Reset(cmd.Context())
		if err := tracker.LastSaveErr(); err != nil {
			return err
		}
		fmt.Println("today reset to 0 oz")
		return nil
	},
}

var (
	historyYear  int
	historyMonth int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show a month of intake as a calendar grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
		if historyYear != 0 && historyMonth != 0 {
			anchor = time.Date(historyYear, time.Month(historyMonth), 1, 0, 0, 0, 0, time.Local)
		}

		api := newAPI()
		done := make(chan client.MonthResult, 1)
		loader := client.NewMonthLoader(anchor, api.QueryMonth, func(r client.MonthResult) {
			done <- r
		})
		loader.Load()

		select {
		case res := <-done:
			if res.Err != nil {
				return res.Err
			}
			printGrid(res)
		case <-cmd.Context().Done():
			loader.Stop()
			return cmd.Context().Err()
		}
		return nil
	},
}

func printGrid(res client.MonthResult) {
	fmt.Println(res.Anchor.Format("Jan 2006"))
	fmt.Println("  Sun   Mon   Tue   Wed   Thu   Fri   Sat")
	for i, cell := range res.Cells {
		if cell == nil {
			fmt.Printf("      ")
		} else if cell.AmountOz > 0 {
			fmt.Printf("%2d:%-3d", cell.Date.Day(), cell.AmountOz)
		} else {
			fmt.Printf("%2d    ", cell.Date.Day())
		}
		if (i+1)%7 == 0 {
			fmt.Println()
		}
	}
}

func main() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "ChugCheck server base URL")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", "", "Session token (defaults to CHUGCHECK_TOKEN)")
	historyCmd.Flags().IntVar(&historyYear, "year", 0, "Year to show")
	historyCmd.Flags().IntVar(&historyMonth, "month", 0, "Month to show (1-12)")

	rootCmd.AddCommand(signupCmd, loginCmd, goalCmd, todayCmd, logCmd, resetCmd, historyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
