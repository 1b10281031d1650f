package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the career counselor",
	Run: func(cmd *cobra.Command, _ []string) {
		message, _ := cmd.Flags().GetString("message")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		env := bootstrap()
		counselor := newCounselor(ctx, env.config.AI.Gemini, env.logger)
		out := cmd.OutOrStdout()

		if message != "" {
			fmt.Fprintln(out, counselor.Chat(ctx, message))
			return
		}

		if !counselor.Enabled() {
			env.logger.Warn("chat is not available, replies will be an error message")
		}

		messagePrompt := promptui.Prompt{Label: "You (type exit to quit)"}
		for {
			input, err := messagePrompt.Run()
			if err != nil {
				if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
					return
				}
				env.logger.Fatal("reading message", zap.Error(err))
			}

			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
				return
			}

			fmt.Fprintln(out, counselor.Chat(ctx, input))
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringP("message", "m", "", "send a single message and exit")
}
