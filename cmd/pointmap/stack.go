package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zucenko/pointmap/model"
	"github.com/zucenko/pointmap/stack"
)

func newStackCmd(opts *rootOptions) *cobra.Command {
	maxCoord := 11
	order := "origin"
	cmd := &cobra.Command{
		Use:   "stack N",
		Short: "Push N random points on a stack and order them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("number of points: %w", err)
			}
			return runStack(cmd.OutOrStdout(), n, maxCoord, order, opts.rand())
		},
	}
	cmd.Flags().IntVar(&maxCoord, "max", maxCoord, "coordinates are drawn from [0, max)")
	cmd.Flags().StringVar(&order, "order", order, "origin (nearest on top), x or y (greatest on top)")
	return cmd
}

func pointOrder(order string) (func(a, b *model.Point) int, error) {
	switch order {
	case "origin":
		return model.CompareByOriginDistance, nil
	case "x":
		return stack.ByKey(func(p *model.Point) int { return p.X() }), nil
	case "y":
		return stack.ByKey(func(p *model.Point) int { return p.Y() }), nil
	default:
		return nil, fmt.Errorf("unknown order %q", order)
	}
}

func printPoint(w io.Writer, p *model.Point) (int, error) {
	return p.Print(w)
}

func runStack(out io.Writer, n, maxCoord int, order string, rng *rand.Rand) error {
	cmp, err := pointOrder(order)
	if err != nil {
		return err
	}
	points, err := randomPoints(n, maxCoord, rng)
	if err != nil {
		return err
	}
	if err := printDistances(out, points); err != nil {
		return err
	}

	s := stack.New[*model.Point]()
	for _, p := range points {
		s.Push(p)
	}
	fmt.Fprintln(out, "Original stack:")
	if _, err := s.Print(out, printPoint); err != nil {
		return err
	}

	sorted := stack.Sort(s, cmp)
	fmt.Fprintln(out, "Ordered stack:")
	_, err = sorted.Print(out, printPoint)
	return err
}
