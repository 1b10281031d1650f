package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const PromptBack = "back"

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Browse career categories and their skill rows",
	Run: func(cmd *cobra.Command, _ []string) {
		category, _ := cmd.Flags().GetString("category")

		env := bootstrap()
		out := cmd.OutOrStdout()

		if category != "" {
			for _, row := range env.store.RowsForCategory(category) {
				fmt.Fprintln(out, row)
			}
			return
		}

		for {
			categoryPrompt := promptui.Select{
				Label: "Choose a category and press ENTER",
				Items: append(env.store.Categories(), PromptBack),
			}

			_, selected, err := categoryPrompt.Run()
			if err != nil {
				if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
					return
				}
				env.logger.Fatal("exiting", zap.Error(err))
			}

			if selected == PromptBack {
				return
			}

			rows := env.store.RowsForCategory(selected)
			env.logger.Info("category rows", zap.String("category", selected), zap.Int("count", len(rows)))
			for _, row := range rows {
				fmt.Fprintln(out, row)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)

	categoriesCmd.Flags().StringP("category", "c", "", "print rows of this category without prompting")
}
