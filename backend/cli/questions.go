package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"quizbank/backend/models"
	"quizbank/backend/questions"
)

func newQuestionsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Inspect and curate the question bank",
	}
	cmd.AddCommand(newQuestionsListCmd(opts))
	cmd.AddCommand(newQuestionsAddCmd(opts))
	cmd.AddCommand(newQuestionsDeleteCmd(opts))
	return cmd
}

func newQuestionsListCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List questions in id order, answers included",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			list, err := questions.NewRepository(s.DB()).List(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list questions: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No questions found.")
				return nil
			}

			fmt.Fprintf(out, "%-5s  %-14s  %-6s  %-40s  %s\n", "ID", "Category", "Level", "Question", "Answer")
			fmt.Fprintln(out, strings.Repeat("─", 90))
			for _, q := range list {
				text := q.Question
				if len(text) > 40 {
					text = text[:37] + "..."
				}
				fmt.Fprintf(out, "%-5d  %-14s  %-6s  %-40s  %s\n",
					q.ID, q.Category, q.Difficulty, text, q.Options[q.CorrectAnswer])
			}
			fmt.Fprintf(out, "\n%d questions\n", len(list))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", questions.DefaultListLimit, "Maximum number of questions to show")
	return cmd
}

func newQuestionsAddCmd(opts *rootOptions) *cobra.Command {
	var (
		input      questions.Input
		difficulty string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a question to the bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			input.Difficulty = models.Difficulty(difficulty)
			created, err := questions.NewRepository(s.DB()).Create(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("add question: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added question %d.\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Question, "question", "", "Question text")
	cmd.Flags().StringArrayVar(&input.Options, "option", nil, "Answer option, repeat for each option in order")
	cmd.Flags().IntVar(&input.CorrectAnswer, "correct", -1, "Zero-based index of the correct option")
	cmd.Flags().StringVar(&input.Category, "category", "", "Category name")
	cmd.Flags().StringVar(&difficulty, "difficulty", string(models.DifficultyMedium), "easy, medium or hard")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("correct")
	return cmd
}

func newQuestionsDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a question by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil || id == 0 {
				return fmt.Errorf("invalid question id %q", args[0])
			}

			s, err := opts.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := questions.NewRepository(s.DB()).Delete(cmd.Context(), uint(id)); err != nil {
				return fmt.Errorf("delete question: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted question %d.\n", id)
			return nil
		},
	}
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the distinct question categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			categories, err := questions.NewRepository(s.DB()).Categories(cmd.Context())
			if err != nil {
				return fmt.Errorf("list categories: %w", err)
			}
			for _, c := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
