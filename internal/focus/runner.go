// Package focus drives interactive work/break cycles from the
// terminal and records completed intervals as focus segments.
package focus

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/wyrm/internal/clock"
	"github.com/sadopc/wyrm/internal/store"
)

var (
	workStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	breakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Runner executes a sequence of work/break intervals, writing one
// focus segment per completed interval.
type Runner struct {
	Store *store.Store
	Out   io.Writer
	Clock clock.Clock

	// Tick is the countdown resolution. Zero means one second.
	Tick time.Duration
}

// CycleResult describes one finished or interrupted interval.
type CycleResult struct {
	Kind        string
	Planned     time.Duration
	Elapsed     time.Duration
	Interrupted bool
}

// Summary is the outcome of a full Run call.
type Summary struct {
	Cycles      []CycleResult
	WorkMinutes int
	Interrupted bool
}

func (r *Runner) tick() time.Duration {
	if r.Tick > 0 {
		return r.Tick
	}
	return time.Second
}

func (r *Runner) now() time.Time {
	if r.Clock != nil {
		return r.Clock.Now()
	}
	return time.Now()
}

// Run executes the given number of work/break cycles. The final break
// is skipped. Cancellation via ctx stops the countdown; the partial
// work interval is reported but only whole completed minutes are
// persisted.
func (r *Runner) Run(ctx context.Context, workMinutes, breakMinutes, cycles int) (*Summary, error) {
	if workMinutes <= 0 || cycles <= 0 {
		return nil, fmt.Errorf("%w: work minutes and cycles must be positive", store.ErrInvalidInput)
	}

	summary := &Summary{}
	for i := 0; i < cycles; i++ {
		fmt.Fprintf(r.Out, "%s cycle %d/%d\n", workStyle.Render("work"), i+1, cycles)
		result, err := r.interval(ctx, "work", time.Duration(workMinutes)*time.Minute)
		if err != nil {
			return summary, err
		}
		summary.Cycles = append(summary.Cycles, result)
		summary.WorkMinutes += int(result.Elapsed.Minutes())
		if result.Interrupted {
			summary.Interrupted = true
			fmt.Fprintf(r.Out, "%s\n", dimStyle.Render(fmt.Sprintf("interrupted after %d min", int(result.Elapsed.Minutes()))))
			return summary, nil
		}

		if breakMinutes > 0 && i < cycles-1 {
			fmt.Fprintf(r.Out, "%s\n", breakStyle.Render("break"))
			result, err := r.interval(ctx, "break", time.Duration(breakMinutes)*time.Minute)
			if err != nil {
				return summary, err
			}
			summary.Cycles = append(summary.Cycles, result)
			if result.Interrupted {
				summary.Interrupted = true
				return summary, nil
			}
		}
	}
	fmt.Fprintf(r.Out, "%s %d cycles, %d focus minutes\n", workStyle.Render("done"), cycles, summary.WorkMinutes)
	return summary, nil
}

// interval counts one planned duration down, persisting the segment
// when at least one whole minute elapsed.
func (r *Runner) interval(ctx context.Context, kind string, planned time.Duration) (CycleResult, error) {
	start := r.now()
	result := CycleResult{Kind: kind, Planned: planned}

	ticker := time.NewTicker(r.tick())
	defer ticker.Stop()

	deadline := time.After(planned)
	for {
		select {
		case <-ctx.Done():
			result.Elapsed = r.now().Sub(start)
			result.Interrupted = true
			r.persist(start, result)
			return result, nil
		case <-deadline:
			result.Elapsed = planned
			r.persist(start, result)
			return result, nil
		case <-ticker.C:
			remaining := planned - r.now().Sub(start)
			if remaining < 0 {
				remaining = 0
			}
			fmt.Fprintf(r.Out, "\r%s  ", dimStyle.Render(formatRemaining(remaining)))
		}
	}
}

func (r *Runner) persist(start time.Time, result CycleResult) {
	minutes := int(result.Elapsed.Minutes())
	if minutes <= 0 {
		return
	}
	end := start.Add(result.Elapsed)
	if _, err := r.Store.AddSegment(start, end, minutes, result.Kind); err != nil {
		fmt.Fprintf(r.Out, "\nwarning: could not record segment: %v\n", err)
	}
}

func formatRemaining(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
