package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"isolation/agent"
	"isolation/config"
	"isolation/engine"
	"isolation/experiments"
	"isolation/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "isolation",
		Short: "Game-playing agents for knight Isolation",
		Long: `Runs time-bounded minimax and alpha-beta agents for knight Isolation,
either in a contest against a field of fixed-depth opponents or in a single game.`,
		PersistentPreRunE: setupLogging,
		SilenceUsage:      true,
	}
	contestCmd = &cobra.Command{
		Use:   "contest",
		Short: "Evaluates the agents under test against every opponent",
		Args:  cobra.NoArgs,
		RunE:  runContest,
	}
	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Plays a single game between two agents and prints the final board",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}

	configPath string
	logLevel   string
	player1    string
	player2    string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Contest YAML file; defaults apply when empty")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	playCmd.Flags().StringVar(&player1, "player1", "Player", "Agent moving first")
	playCmd.Flags().StringVar(&player2, "player2", "AB_Improved", "Agent moving second")

	rootCmd.AddCommand(contestCmd, playCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func runContest(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rounds, err := experiments.RunContest(ctx, c.UnderTest, c.Opponents, c.OutputDir, c.Options()...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, round := range rounds {
		fmt.Fprintf(out, "\nEvaluating: %s\n", round.Agent)
		for i, o := range round.Opponents {
			fmt.Fprintf(out, "  Match %d: %-11s vs %-11s  Result: %d to %d", i+1, round.Agent, o.Opponent, o.Wins, o.Losses)
			if o.Timeouts+o.Forfeits > 0 {
				fmt.Fprintf(out, "  (lost %d on time, %d by forfeit)", o.Timeouts, o.Forfeits)
			}
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%-15s%10.2f%%\n", round.Agent, round.WinRate())
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if player1 == player2 {
		return fmt.Errorf("agent %s cannot play itself", player1)
	}

	agents := map[game.Player]agent.Agent{}
	for _, name := range []string{player1, player2} {
		ac, ok := c.Agent(name)
		if !ok {
			return fmt.Errorf("unknown agent %s", name)
		}
		a, err := agent.New(ac)
		if err != nil {
			return err
		}
		agents[game.Player(name)] = a
	}

	board := game.NewBoard(game.Player(player1), game.Player(player2), c.Board.Width, c.Board.Height)
	outcome := engine.Play(board, agents, c.TimeLimit)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, outcome.Board.String())
	fmt.Fprintf(out, "Winner: %s (player %s %s)\n", outcome.Winner, outcome.Loser, describe(outcome.Termination))
	fmt.Fprintf(out, "Moves: %v\n", outcome.History)
	return nil
}

func describe(t engine.Termination) string {
	switch t {
	case engine.Timeout:
		return "ran out of time"
	case engine.Forfeit:
		return "played an illegal move"
	default:
		return "had no legal moves"
	}
}
