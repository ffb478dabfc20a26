// Package cmd is for command line interactions with the simulator.
package cmd

import (
	"log"
	_ "tesim/genome/array"
	_ "tesim/genome/linked"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "tesim",
	Short: `Simulate transposable element activity on a circular genome.
Insertions splice in fresh elements, copies propagate active ones and
disabling knocks an element out for good.`,
	Version: "0.1.0",
}

func init() {
	cobra.OnInitialize(initConfig)

	// settings shared by every subcommand; the backing packages
	// register themselves through the blank imports above
	pf := rootCmd.PersistentFlags()
	pf.Int("size", 64, "starting number of cells")
	pf.Int("steps", 1000, "operations to run")
	pf.Int64("seed", 1, "pseudorandom seed")
	pf.Int("insert-weight", 5, "relative weight of insertions")
	pf.Int("copy-weight", 3, "relative weight of copies")
	pf.Int("disable-weight", 2, "relative weight of disables")
	pf.Int("max-len", 8, "largest element an insertion splices in")
	pf.Int("max-offset", 128, "how far a copy can land from its source")
	pf.Int("trace", 0, "print a progress line every this many steps")
	pf.Bool("quiet", false, "leave the render and active table out of the summary")

	viper.BindPFlag("size", pf.Lookup("size"))
	viper.BindPFlag("steps", pf.Lookup("steps"))
	viper.BindPFlag("seed", pf.Lookup("seed"))
	viper.BindPFlag("insert-weight", pf.Lookup("insert-weight"))
	viper.BindPFlag("copy-weight", pf.Lookup("copy-weight"))
	viper.BindPFlag("disable-weight", pf.Lookup("disable-weight"))
	viper.BindPFlag("max-len", pf.Lookup("max-len"))
	viper.BindPFlag("max-offset", pf.Lookup("max-offset"))
	viper.BindPFlag("trace", pf.Lookup("trace"))
	viper.BindPFlag("quiet", pf.Lookup("quiet"))
}

// initConfig reads tesim.yaml from the working directory when there is
// one. Flags given on the command line still win over the file.
func initConfig() {
	viper.SetConfigName("tesim")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("settings file: %v", err)
		}
	}
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main() and only needs to
// happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
