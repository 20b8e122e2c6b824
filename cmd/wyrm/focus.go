package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/wyrm/internal/focus"
	"github.com/sadopc/wyrm/internal/store"
)

func focusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run and inspect focus sessions",
	}

	cmd.AddCommand(focusStartCmd())
	cmd.AddCommand(focusStatusCmd())
	cmd.AddCommand(focusPauseCmd())
	cmd.AddCommand(focusResumeCmd())
	cmd.AddCommand(focusStopCmd())
	cmd.AddCommand(focusStatsCmd())

	return cmd
}

func focusStartCmd() *cobra.Command {
	var workMinutes, breakMinutes, cycles int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run a work/break countdown cycle in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if workMinutes == 0 {
				workMinutes = cfg.FocusMinutes
			}
			if breakMinutes == 0 {
				breakMinutes = cfg.BreakMinutes
			}
			if cycles == 0 {
				cycles = cfg.Cycles
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runner := &focus.Runner{Store: s, Out: os.Stdout}
			summary, err := runner.Run(ctx, workMinutes, breakMinutes, cycles)
			if err != nil {
				return err
			}

			if summary.Interrupted {
				fmt.Printf("\ninterrupted after %dm of focused work\n", summary.WorkMinutes)
			} else {
				fmt.Printf("\ndone: %d cycles, %dm of focused work\n", cycles, summary.WorkMinutes)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workMinutes, "work", "w", 0, "work minutes per cycle")
	cmd.Flags().IntVarP(&breakMinutes, "break", "b", 0, "break minutes between cycles")
	cmd.Flags().IntVarP(&cycles, "cycles", "c", 0, "number of work cycles")

	return cmd
}

func focusStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active pomodoro session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			session, err := s.ActiveSession()
			if err != nil {
				return err
			}
			if session == nil {
				fmt.Println("idle")
				return nil
			}
			printSession(session)
			return nil
		},
	}
}

func focusPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the running session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			session, err := s.PauseSession()
			if err != nil {
				return err
			}
			printSession(session)
			return nil
		},
	}
}

func focusResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume the paused session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			session, err := s.ResumeSession()
			if err != nil {
				return err
			}
			printSession(session)
			return nil
		},
	}
}

func focusStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			session, err := s.StopSession()
			if err != nil {
				return err
			}
			fmt.Printf("stopped %s session: %.1f of %d minutes\n",
				session.Mode, session.ElapsedMinutes, session.DurationMinutes)
			return nil
		},
	}
}

func focusStatsCmd() *cobra.Command {
	var rng string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show pomodoro totals for a range",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			stats, err := s.GetPomodoroStats(rng)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %.0f minutes across %d sessions\n",
				stats.Range, stats.TotalFocusMinutes, stats.TotalSessions)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rng, "range", "r", "today", "today, week or all")
	return cmd
}

func printSession(s *store.PomodoroSession) {
	fmt.Printf("%s %s  %.1f of %d minutes  started %s\n",
		s.Mode, s.Status, s.ElapsedMinutes, s.DurationMinutes,
		s.StartTime.Format(time.Kitchen))
}
