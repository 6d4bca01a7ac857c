package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mvsolver/sudokuchains/chaining"
)

// runConfig mirrors the subset of chaining.Config a CLI invocation can set,
// loaded through viper so flags, SUDOKUCHAINS_* environment variables, and
// an optional config file (--config, default $HOME/.sudokuchains.yaml) all
// resolve through one precedence order.
type runConfig struct {
	Level        int
	Dynamic      bool
	Multiple     bool
	Nishio       bool
	Parallel     bool
	Workers      int
	NestingLimit int
}

func bindConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.Int("level", 0, "nested auxiliary rule level AdvancedExtension may consult (0 disables it)")
	flags.Bool("dynamic", false, "enable Dynamic Forcing Chains")
	flags.Bool("multiple", false, "enable Multiple Forcing Chains")
	flags.Bool("nishio", false, "restrict the search to contradiction-only binary chaining")
	flags.Bool("parallel", true, "fan starting cells out across a worker pool when level >= 3")
	flags.Int("workers", 0, "worker pool size (0: runtime.NumCPU())")
	flags.Int("nesting-limit", 2, "recursion depth bound for level >= 4 dynamic nested engines")

	viper.BindPFlag("level", flags.Lookup("level"))
	viper.BindPFlag("dynamic", flags.Lookup("dynamic"))
	viper.BindPFlag("multiple", flags.Lookup("multiple"))
	viper.BindPFlag("nishio", flags.Lookup("nishio"))
	viper.BindPFlag("parallel", flags.Lookup("parallel"))
	viper.BindPFlag("workers", flags.Lookup("workers"))
	viper.BindPFlag("nesting-limit", flags.Lookup("nesting-limit"))
}

func initViper(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".sudokuchains")
		viper.AddConfigPath("$HOME")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("sudokuchains")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	// A missing config file is not an error: flags and env still apply.
	_ = viper.ReadInConfig()
}

func loadRunConfig() runConfig {
	return runConfig{
		Level:        viper.GetInt("level"),
		Dynamic:      viper.GetBool("dynamic"),
		Multiple:     viper.GetBool("multiple"),
		Nishio:       viper.GetBool("nishio"),
		Parallel:     viper.GetBool("parallel"),
		Workers:      viper.GetInt("workers"),
		NestingLimit: viper.GetInt("nesting-limit"),
	}
}

func (rc runConfig) toEngineConfig(aux []chaining.RuleProducer) chaining.Config {
	return chaining.Config{
		Multiple:       rc.Multiple,
		Dynamic:        rc.Dynamic,
		Nishio:         rc.Nishio,
		Level:          rc.Level,
		NestingLimit:   rc.NestingLimit,
		Parallel:       rc.Parallel,
		AuxiliaryRules: aux,
	}
}

// processSettings implements chaining.Settings from the resolved runConfig.
type processSettings struct {
	numThreads int
	mode       chaining.FixedChainingMode
}

func (s processSettings) NumThreads() int                           { return s.numThreads }
func (s processSettings) FixedChainingMode() chaining.FixedChainingMode { return s.mode }
