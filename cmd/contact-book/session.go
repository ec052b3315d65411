package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/contact-book/internal/book"
	"github.com/username/contact-book/internal/config"
	"github.com/username/contact-book/internal/repl"
	"github.com/username/contact-book/pkg/dateutil"
	"go.uber.org/zap"
)

func sessionCmd() *cobra.Command {
	var windowDays int
	var todayStr string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start an interactive contact book session",
		Long:  "Read commands from stdin until exit/close. All contacts live in memory for the duration of the session; nothing is persisted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if windowDays == 0 {
				windowDays = cfg.Book.GetUpcomingWindowDays()
			}
			if windowDays < 0 {
				return fmt.Errorf("window must not be negative")
			}

			// Date source for birthday queries; overridable for testing
			// a session against a fixed date.
			now := dateutil.Today
			if todayStr != "" {
				today, err := dateutil.ParseDate(todayStr)
				if err != nil {
					return fmt.Errorf("invalid today date: %w", err)
				}
				now = func() time.Time { return today }
			}

			logger.Info("Starting interactive session",
				zap.Int("window_days", windowDays),
				zap.String("today_override", todayStr))

			ab := book.NewAddressBook(logger)
			session := repl.NewSession(ab, repl.Params{
				In:         os.Stdin,
				Out:        os.Stdout,
				Prompt:     cfg.Session.GetPrompt(),
				Greeting:   cfg.Session.GetGreeting(),
				WindowDays: windowDays,
				Now:        now,
			}, logger)

			if err := session.Run(); err != nil {
				return fmt.Errorf("session failed: %w", err)
			}

			logger.Info("Session ended", zap.Int("contacts", ab.Len()))
			return nil
		},
	}

	cmd.Flags().IntVar(&windowDays, "window", 0, "Upcoming-birthday window in days (default from config, 7)")
	cmd.Flags().StringVar(&todayStr, "today", "", "Override today's date (YYYY-MM-DD or DD.MM.YYYY)")

	return cmd
}
