package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sudokugame/internal/domain"
	"sudokugame/internal/generator"
	"sudokugame/internal/infrastructure/archive"
	"sudokugame/internal/render"
	"sudokugame/internal/solver"
)

func main() {
	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Generate, solve and publish Sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCommand())
	root.AddCommand(newSolveCommand())
	root.AddCommand(newCountCommand())
	root.AddCommand(newPublishCommand())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func generatePuzzle(difficulty string, seed int64) (*domain.Puzzle, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := solver.NewBacktrackingSolver()
	g := generator.NewUniqueGenerator(s)
	p, st, err := g.Generate(context.Background(), seed, domain.ParseDifficulty(difficulty))
	if err != nil {
		return nil, err
	}
	fmt.Printf("seed=%d removed=%d nodes=%d dur=%s\n", seed, p.Removed, st.Nodes, st.Duration.Round(time.Millisecond))
	return p, nil
}

func newGenerateCommand() *cobra.Command {
	var difficulty string
	var seed int64
	var showSolution bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := generatePuzzle(difficulty, seed)
			if err != nil {
				return err
			}
			fmt.Print(render.Grid(&p.Givens))
			if showSolution {
				fmt.Println("solution:")
				fmt.Print(render.Grid(&p.Solution))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "easy|medium|hard")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 picks one)")
	cmd.Flags().BoolVar(&showSolution, "solution", false, "also print the solution")
	return cmd
}

// parseGrid reads an 81-character puzzle string, row-major; '0' and '.'
// both mean empty.
func parseGrid(s string) (*domain.Grid, error) {
	if len(s) != 81 {
		return nil, fmt.Errorf("puzzle string must be 81 characters, got %d", len(s))
	}
	var g domain.Grid
	for i, ch := range []byte(s) {
		switch {
		case ch == '.' || ch == '0':
			// empty
		case ch >= '1' && ch <= '9':
			g[i/9][i%9] = ch - '0'
		default:
			return nil, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
	}
	return &g, nil
}

func newSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <puzzle>",
		Short: "Solve an 81-character puzzle string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGrid(args[0])
			if err != nil {
				return err
			}
			s := solver.NewBacktrackingSolver()
			out, st, err := s.Solve(context.Background(), g)
			if err != nil {
				return err
			}
			fmt.Printf("nodes=%d dur=%s\n", st.Nodes, st.Duration.Round(time.Millisecond))
			fmt.Print(render.Grid(out))
			return nil
		},
	}
}

func newCountCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "count <puzzle>",
		Short: "Count completions of a puzzle up to a cap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGrid(args[0])
			if err != nil {
				return err
			}
			s := solver.NewBacktrackingSolver()
			n, _, err := s.CountSolutions(context.Background(), g, limit)
			if err != nil {
				return err
			}
			suffix := ""
			if n >= limit {
				suffix = " (capped)"
			}
			fmt.Printf("%d%s\n", n, suffix)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 2, "stop counting at this many solutions")
	return cmd
}

func newPublishCommand() *cobra.Command {
	var difficulty string
	var seed int64
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Generate a puzzle and publish it to the archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintln(os.Stderr, "warning: no .env file found")
			}
			url := os.Getenv("POCKETBASE_URL")
			if url == "" {
				return errors.New("POCKETBASE_URL is not set")
			}
			ar, err := archive.New(url,
				os.Getenv("POCKETBASE_EMAIL"),
				os.Getenv("POCKETBASE_PASSWORD"),
				os.Getenv("POCKETBASE_COLLECTION"))
			if err != nil {
				return err
			}
			p, err := generatePuzzle(difficulty, seed)
			if err != nil {
				return err
			}
			id, err := ar.Publish(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Println("published:", id)
			fmt.Print(render.Grid(&p.Givens))
			return nil
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "easy|medium|hard")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 picks one)")
	return cmd
}
