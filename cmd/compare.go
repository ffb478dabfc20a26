package cmd

import (
	"fmt"
	"log"
	"tesim/config"
	"tesim/genome"
	"tesim/sim"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Drive every backing through the same run and require identical state",
	Long: `Compare builds one genome per registered backing and applies the same
operation stream to all of them in lockstep. Every --every steps, and
once more at the end, the genomes are compared cell by cell; the first
divergence aborts the run.`,
	Run: compareExec,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().Int("every", 100, "cross-check the genomes every this many steps")
	viper.BindPFlag("every", compareCmd.Flags().Lookup("every"))
}

func compareExec(cmd *cobra.Command, args []string) {
	cfg := config.New()

	names := genome.Backings()
	var gs []genome.Genome
	for _, name := range names {
		g, err := genome.New(name, cfg.Size)
		if err != nil {
			log.Fatalf("%v", err)
		}

		gs = append(gs, g)
	}

	if len(gs) < 2 {
		log.Fatalf("nothing to compare against: %d backing registered", len(gs))
	}

	r, err := sim.New(model(cfg), cfg.Seed)
	if err != nil {
		log.Fatalf("%v", err)
	}

	every := cfg.Every
	if every < 1 {
		every = cfg.Steps
	}

	for done := 0; done < cfg.Steps; {
		n := every
		if cfg.Steps-done < n {
			n = cfg.Steps - done
		}

		if _, err := r.Run(n, gs...); err != nil {
			log.Fatalf("%v", err)
		}
		done += n

		if err := check(names, gs); err != nil {
			log.Fatalf("after %d steps: %v", done, err)
		}

		if cfg.Trace > 0 {
			log.Printf("step %d: %d cells, %d active, crc64 %016x",
				done, gs[0].Len(), len(gs[0].ActiveTEs()), sim.Fingerprint(gs[0]))
		}
	}

	fmt.Printf("%v agree after %d steps\n", names, cfg.Steps)
	report(r.Stats(), gs[0], cfg.Quiet)
}

// check verifies every genome against the first.
func check(names []string, gs []genome.Genome) error {
	for i := 1; i < len(gs); i++ {
		if err := sim.Verify(gs[0], gs[i]); err != nil {
			return fmt.Errorf("%s vs %s: %w", names[0], names[i], err)
		}
	}

	return nil
}
