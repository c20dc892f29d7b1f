package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zucenko/pointmap/model"
)

func newPointsCmd(opts *rootOptions) *cobra.Command {
	maxCoord := 101
	cmd := &cobra.Command{
		Use:   "points N",
		Short: "Generate N random points and compare their distances to the origin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("number of points: %w", err)
			}
			return runPoints(cmd.OutOrStdout(), n, maxCoord, opts.rand())
		},
	}
	cmd.Flags().IntVar(&maxCoord, "max", maxCoord, "coordinates are drawn from [0, max)")
	return cmd
}

// randomPoints builds n barrier points with coordinates in [0, maxCoord).
func randomPoints(n, maxCoord int, rng *rand.Rand) ([]*model.Point, error) {
	if n <= 0 {
		return nil, fmt.Errorf("number of points must be > 0, got %d", n)
	}
	if maxCoord <= 0 {
		return nil, fmt.Errorf("max must be > 0, got %d", maxCoord)
	}
	points := make([]*model.Point, 0, n)
	for i := 0; i < n; i++ {
		p, err := model.NewPoint(rng.Intn(maxCoord), rng.Intn(maxCoord), model.Barrier)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		log.Debugf("generated p[%d]=%v", i, p)
		points = append(points, p)
	}
	return points, nil
}

// printDistances writes every point with its distance to the origin.
func printDistances(out io.Writer, points []*model.Point) error {
	origin, err := model.NewPoint(0, 0, model.Barrier)
	if err != nil {
		return err
	}
	for i, p := range points {
		d, err := model.EuclideanDistance(p, origin)
		if err != nil {
			return fmt.Errorf("p[%d]: %w", i, err)
		}
		fmt.Fprintf(out, "Point p[%d]=", i)
		if _, err := p.Print(out); err != nil {
			return err
		}
		fmt.Fprintf(out, " distance: %.6f\n", d)
	}
	return nil
}

func runPoints(out io.Writer, n, maxCoord int, rng *rand.Rand) error {
	points, err := randomPoints(n, maxCoord, rng)
	if err != nil {
		return err
	}
	if err := printDistances(out, points); err != nil {
		return err
	}
	for i := range points {
		for j := range points {
			cmp := model.CompareByOriginDistance(points[i], points[j])
			if cmp == model.CmpError {
				return fmt.Errorf("comparing p[%d] and p[%d] failed", i, j)
			}
			answer := "False"
			if cmp == -1 {
				answer = "True"
			}
			fmt.Fprintf(out, "p[%d] < p[%d]: %s\n", i, j, answer)
		}
	}
	return nil
}
