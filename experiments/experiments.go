package experiments

import (
	"context"
	"fmt"

	"isolation/agent"
	"isolation/experiments/metrics"
	"isolation/searcher"

	"github.com/rs/zerolog/log"
)

// NewContestants builds contestants with IDs counting up from firstID.
func NewContestants(firstID int, configs []agent.Config, options ...searcher.Option) ([]Contestant, error) {
	contestants := make([]Contestant, len(configs))
	for i, config := range configs {
		c, err := NewContestant(firstID+i, config, options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create contestant: %w", err)
		}
		contestants[i] = c
	}
	return contestants, nil
}

// RunContest plays one round per agent under test against all opponents.
// When outputDir is not empty, agent configs and game and move records are
// written below it.
func RunContest(ctx context.Context, underTest, opponents []agent.Config, outputDir string, options ...Option) ([]RoundResult, error) {
	opponentContestants, err := NewContestants(0, opponents)
	if err != nil {
		return nil, err
	}
	testContestants, err := NewContestants(len(opponents), underTest)
	if err != nil {
		return nil, err
	}

	var recorder *metrics.Recorder
	if outputDir != "" {
		recorder = metrics.NewRecorder()
		options = append(options, WithRecorder(recorder))
	}
	contest := NewContest(options...)

	log.Info().Msgf("starting contest with %d agents under test...", len(testContestants))

	rounds := []RoundResult{}
	for _, c := range testContestants {
		round, err := contest.PlayRound(ctx, c, opponentContestants)
		if err != nil {
			return rounds, err
		}
		rounds = append(rounds, round)
	}

	log.Info().Msg("completed contest")

	if recorder == nil {
		return rounds, nil
	}
	configs := []metrics.AgentConfig{}
	for _, c := range append(opponentContestants, testContestants...) {
		configs = append(configs, metrics.AgentConfig{ID: c.ID, Config: c.Config})
	}
	dir, err := writeRecords(outputDir, "contest", configs, recorder)
	if err != nil {
		return rounds, err
	}
	log.Info().Msgf("stored records in %s", dir)
	return rounds, nil
}

func writeRecords(outputDir, name string, configs []metrics.AgentConfig, recorder *metrics.Recorder) (string, error) {
	writer, err := metrics.NewWriter(outputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}

	err = writer.WriteGameRecords(recorder.Games())
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}

	err = writer.WriteMoveRecords(recorder.Moves())
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}

	return writer.Dir(), nil
}
