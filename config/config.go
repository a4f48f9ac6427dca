package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"isolation/agent"
	"isolation/experiments"
	"isolation/game"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding the contest file
const (
	EnvTimeLimit  = "ISOLATION_TIME_LIMIT"
	EnvNumMatches = "ISOLATION_NUM_MATCHES"
	EnvBoardSize  = "ISOLATION_BOARD_SIZE"
	EnvOutputDir  = "ISOLATION_OUTPUT_DIR"
)

const minBoardSide = 3

type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ContestConfig describes a contest: its rules, the fixed opponents and the
// agents evaluated against them.
type ContestConfig struct {
	TimeLimit   time.Duration  `yaml:"time_limit"`
	NumMatches  int            `yaml:"num_matches"`
	Board       BoardConfig    `yaml:"board"`
	Parallelism int            `yaml:"parallelism"`
	OutputDir   string         `yaml:"output_dir"` // Records are only written when set
	Opponents   []agent.Config `yaml:"opponents"`
	UnderTest   []agent.Config `yaml:"under_test"`
}

// Default returns the classic contest: 300ms per move on a 7x7 board, five
// matches per seat order against the standard opponents.
func Default() ContestConfig {
	return ContestConfig{
		TimeLimit:   experiments.DefaultTimeLimit,
		NumMatches:  experiments.DefaultNumMatches,
		Board:       BoardConfig{Width: game.DefaultWidth, Height: game.DefaultHeight},
		Parallelism: 1,
		Opponents:   experiments.StandardOpponents(),
		UnderTest:   experiments.AgentsUnderTest(),
	}
}

// Load starts from the defaults, applies the YAML file at path (if any) and
// then the environment, and validates the result.
func Load(path string) (ContestConfig, error) {
	config := Default()

	if path != "" {
		if err := loadFile(path, &config); err != nil {
			return config, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&config); err != nil {
		return config, fmt.Errorf("load config from environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func loadFile(path string, config *ContestConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(config *ContestConfig) error {
	if v := os.Getenv(EnvTimeLimit); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeLimit, err)
		}
		config.TimeLimit = d
	}
	if v := os.Getenv(EnvNumMatches); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNumMatches, err)
		}
		config.NumMatches = n
	}
	if v := os.Getenv(EnvBoardSize); v != "" {
		board, err := ParseBoardSize(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBoardSize, err)
		}
		config.Board = board
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		config.OutputDir = v
	}
	return nil
}

// ParseBoardSize reads "7" as a 7x7 board and "7x5" as 7 wide and 5 high.
func ParseBoardSize(s string) (BoardConfig, error) {
	width, height, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		height = width
	}
	w, err := strconv.Atoi(strings.TrimSpace(width))
	if err != nil {
		return BoardConfig{}, fmt.Errorf("invalid board width in %q", s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(height))
	if err != nil {
		return BoardConfig{}, fmt.Errorf("invalid board height in %q", s)
	}
	return BoardConfig{Width: w, Height: h}, nil
}

func (c ContestConfig) Validate() error {
	if c.TimeLimit <= 0 {
		return fmt.Errorf("time_limit must be positive, got %s", c.TimeLimit)
	}
	if c.NumMatches <= 0 {
		return fmt.Errorf("num_matches must be positive, got %d", c.NumMatches)
	}
	if c.Board.Width < minBoardSide || c.Board.Height < minBoardSide {
		return fmt.Errorf("board must be at least %dx%d, got %dx%d", minBoardSide, minBoardSide, c.Board.Width, c.Board.Height)
	}
	if c.Parallelism <= 0 {
		return fmt.Errorf("parallelism must be positive, got %d", c.Parallelism)
	}
	if len(c.Opponents) == 0 {
		return errors.New("at least one opponent is required")
	}
	if len(c.UnderTest) == 0 {
		return errors.New("at least one agent under test is required")
	}

	seen := map[string]bool{}
	for _, a := range append(append([]agent.Config{}, c.Opponents...), c.UnderTest...) {
		if err := a.Validate(); err != nil {
			return err
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate agent name %s", a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}

// Options translates the contest rules into experiments options.
func (c ContestConfig) Options() []experiments.Option {
	return []experiments.Option{
		experiments.WithTimeLimit(c.TimeLimit),
		experiments.WithNumMatches(c.NumMatches),
		experiments.WithBoardSize(c.Board.Width, c.Board.Height),
		experiments.WithParallelism(c.Parallelism),
	}
}

// Agent finds an opponent or agent under test by name.
func (c ContestConfig) Agent(name string) (agent.Config, bool) {
	for _, a := range append(append([]agent.Config{}, c.Opponents...), c.UnderTest...) {
		if a.Name == name {
			return a, true
		}
	}
	return agent.Config{}, false
}
