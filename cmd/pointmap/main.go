package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel    string
	profileMode string
	seed        int64
	stopProfile func()
}

func (o *rootOptions) rand() *rand.Rand {
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("random seed %d", seed)
	return rand.New(rand.NewSource(seed))
}

func (o *rootOptions) stop() {
	if o.stopProfile != nil {
		o.stopProfile()
		o.stopProfile = nil
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "pointmap",
		Short:         "Random points, distance orderings and grid maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			switch opts.profileMode {
			case "":
			case "cpu":
				opts.stopProfile = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop
			case "mem":
				opts.stopProfile = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop
			default:
				return fmt.Errorf("unknown profile %q, want cpu or mem", opts.profileMode)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "logrus level")
	root.PersistentFlags().StringVar(&opts.profileMode, "profile", "", "write a cpu or mem profile to the working directory")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")

	root.AddCommand(newPointsCmd(opts), newStackCmd(opts), newMapCmd())
	return root
}

// runRoot executes root and stops a profile it started, also when RunE fails.
func runRoot(root *cobra.Command, opts *rootOptions) error {
	defer opts.stop()
	return root.Execute()
}

func main() {
	opts := &rootOptions{}
	if err := runRoot(newRootCmd(opts), opts); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
