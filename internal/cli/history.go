package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubelab/cubesim/internal/storage"
)

var (
	historyLimit int
	historyLast  bool
	historyNet   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded solve sessions",
	Long:  `Commands for listing and inspecting sessions recorded with 'cubesim solve --record'.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Long:  `Display a list of recent recorded sessions.`,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show details of a session",
	Long: `Display a recorded session including its scramble, the narrated solver
steps, and the final state.

Use --last to show the most recent session.`,
	RunE: runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of sessions to display")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&historyLast, "last", false, "Show the most recent session")
	historyShowCmd.Flags().BoolVar(&historyNet, "show", false, "Render the start and end states")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)
	list, err := sessions.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(list) == 0 {
		fmt.Println("No sessions recorded yet")
		fmt.Println("Record one with: cubesim solve --record")
		return nil
	}

	steps := storage.NewStepRepository(db)

	fmt.Printf("Recent sessions (showing %d):\n", len(list))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-8s  %-6s  %s\n", "ID", "Started", "Result", "Steps", "Scramble")
	fmt.Println("------------------------------------  --------------------  --------  ------  --------")

	for _, s := range list {
		result := "-"
		if s.Complete != nil {
			if *s.Complete {
				result = "solved"
			} else {
				result = "partial"
			}
		} else if s.EndedAt == nil {
			result = "active"
		}

		stepCount := "-"
		if n, err := steps.CountBySession(s.SessionID); err == nil {
			stepCount = fmt.Sprintf("%d", n)
		}

		scramble := ""
		if s.ScrambleText != nil {
			scramble = *s.ScrambleText
			if len(scramble) > 30 {
				scramble = scramble[:27] + "..."
			}
		}

		fmt.Printf("%-36s  %-20s  %-8s  %-6s  %s\n",
			s.SessionID,
			s.StartedAt.Format("2006-01-02 15:04:05"),
			result,
			stepCount,
			scramble,
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)
	steps := storage.NewStepRepository(db)

	var sessionID string
	if historyLast {
		list, err := sessions.List(1)
		if err != nil {
			return fmt.Errorf("failed to get latest session: %w", err)
		}
		if len(list) == 0 {
			return fmt.Errorf("no sessions found")
		}
		sessionID = list[0].SessionID
	} else if len(args) > 0 {
		sessionID = args[0]
	} else {
		return fmt.Errorf("please provide a session ID or use --last")
	}

	session, err := sessions.Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return fmt.Errorf("session not found: %s", sessionID)
	}

	fmt.Println("Session Details")
	fmt.Println("===============")
	fmt.Println()
	fmt.Printf("ID:      %s\n", session.SessionID)
	fmt.Printf("Started: %s\n", session.StartedAt.Format("2006-01-02 15:04:05"))
	if session.EndedAt != nil {
		fmt.Printf("Ended:   %s\n", session.EndedAt.Format("2006-01-02 15:04:05"))
	}
	if session.ScrambleText != nil && *session.ScrambleText != "" {
		fmt.Printf("Scramble: %s\n", *session.ScrambleText)
	}
	if session.Complete != nil {
		if *session.Complete {
			fmt.Println("Result:  white cross complete")
		} else {
			fmt.Println("Result:  incomplete")
		}
	}
	fmt.Println()

	if historyNet && session.StartState != nil {
		fmt.Println("Start state:")
		fmt.Println(RenderState(*session.StartState))
	}

	records, err := steps.GetBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get steps: %w", err)
	}

	if len(records) > 0 {
		fmt.Println("Steps")
		fmt.Println("-----")
		for _, r := range records {
			label := fmt.Sprintf("white-%s", r.Target)
			if r.MovesText != "" {
				fmt.Printf("  [%d] %s: %s  (%s)\n", r.Seq+1, label, r.Description, r.MovesText)
			} else {
				fmt.Printf("  [%d] %s: %s\n", r.Seq+1, label, r.Description)
			}
		}
		fmt.Println()
	}

	if historyNet && session.EndState != nil {
		fmt.Println("End state:")
		fmt.Println(RenderState(*session.EndState))
	}

	return nil
}
