package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"quizbank/backend/models"
	"quizbank/backend/results"
)

func newResultsCmd(opts *rootOptions) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show the most recent quiz results",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			var userID *string
			if user != "" {
				userID = &user
			}
			list, err := results.NewLedger(s.DB()).List(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("list results: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No results found.")
				return nil
			}
			printResults(out, list)

			shown := results.Summarize(user, list)
			fmt.Fprintf(out, "\n%d results, %d / %d correct (%d%%)\n",
				shown.Attempts, shown.TotalScore, shown.TotalQuestions, shown.AverageAccuracy)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "Only show results for this user id")
	return cmd
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Summarize one user's quiz history",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			history, err := results.NewLedger(s.DB()).History(cmd.Context(), user)
			if err != nil {
				return fmt.Errorf("history: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "User:      %s\n", history.UserID)
			fmt.Fprintf(out, "Attempts:  %d\n", history.Attempts)
			fmt.Fprintf(out, "Correct:   %d / %d\n", history.TotalScore, history.TotalQuestions)
			fmt.Fprintf(out, "Accuracy:  %d%%\n", history.AverageAccuracy)
			if len(history.Results) > 0 {
				fmt.Fprintln(out)
				printResults(out, history.Results)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "User id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func printResults(out io.Writer, list []models.QuizResult) {
	fmt.Fprintf(out, "%-5s  %-19s  %-24s  %-7s  %s\n", "ID", "Completed", "User", "Score", "%")
	fmt.Fprintln(out, strings.Repeat("─", 70))
	for _, r := range list {
		fmt.Fprintf(out, "%-5d  %-19s  %-24s  %-7s  %d\n",
			r.ID,
			r.CompletedAt.Local().Format("2006-01-02 15:04:05"),
			r.UserID,
			fmt.Sprintf("%d/%d", r.Score, r.TotalQuestions),
			results.Percentage(r.Score, r.TotalQuestions),
		)
	}
}
