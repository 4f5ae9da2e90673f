package internal

import (
	"flag"
	"fmt"

	"github.com/baalimago/rat/internal/utils"
)

// Configurations set from the command line. Zero values mean 'use the config file'.
type Configurations struct {
	Variant       string
	Model         string
	ConfigPath    string
	NoStream      bool
	HideReasoning bool
	UseDeepseek   bool
}

func parseFlags(defaults Configurations, args []string) (Configurations, []string, error) {
	fs := flag.NewFlagSet("rat", flag.ContinueOnError)
	fs.String("A-helpful-nonexisting-flag", "there is no default", "This isn't a flag. It's only here to tell you that 'rat help' gives better overview of usage than 'rat -h'.")

	vShort := fs.String("v", defaults.Variant, "Set the backend variant: standard, claude or akash. Mutually exclusive with variant flag.")
	vLong := fs.String("variant", defaults.Variant, "Set the backend variant: standard, claude or akash. Mutually exclusive with v flag.")

	mShort := fs.String("m", defaults.Model, "Set the response model to start with. Mutually exclusive with model flag.")
	mLong := fs.String("model", defaults.Model, "Set the response model to start with. Mutually exclusive with m flag.")

	cShort := fs.String("c", defaults.ConfigPath, "Set the path of the config file. Mutually exclusive with config flag.")
	cLong := fs.String("config", defaults.ConfigPath, "Set the path of the config file. Mutually exclusive with c flag.")

	nsShort := fs.Bool("ns", defaults.NoStream, "Set to true to wait for the complete answer instead of streaming it.")
	nsLong := fs.Bool("no-stream", defaults.NoStream, "Set to true to wait for the complete answer instead of streaming it.")

	hrShort := fs.Bool("hr", defaults.HideReasoning, "Set to true to start with the reasoning hidden. Toggle with the 'reasoning' command.")
	hrLong := fs.Bool("hide-reasoning", defaults.HideReasoning, "Set to true to start with the reasoning hidden. Toggle with the 'reasoning' command.")

	udShort := fs.Bool("ud", defaults.UseDeepseek, "Set to true to use the DeepSeek reasoner instead of Akash, for the claude variant.")
	udLong := fs.Bool("use-deepseek", defaults.UseDeepseek, "Set to true to use the DeepSeek reasoner instead of Akash, for the claude variant.")

	err := fs.Parse(args)
	if err != nil {
		return Configurations{}, []string{}, fmt.Errorf("failed to parse args: %w", err)
	}

	variant, err := utils.ReturnNonDefault(*vShort, *vLong, defaults.Variant)
	if err != nil {
		return Configurations{}, nil, flagError(err, "v", "variant")
	}
	model, err := utils.ReturnNonDefault(*mShort, *mLong, defaults.Model)
	if err != nil {
		return Configurations{}, nil, flagError(err, "m", "model")
	}
	configPath, err := utils.ReturnNonDefault(*cShort, *cLong, defaults.ConfigPath)
	if err != nil {
		return Configurations{}, nil, flagError(err, "c", "config")
	}

	return Configurations{
		Variant:       variant,
		Model:         model,
		ConfigPath:    configPath,
		NoStream:      *nsShort || *nsLong,
		HideReasoning: *hrShort || *hrLong,
		UseDeepseek:   *udShort || *udLong,
	}, fs.Args(), nil
}

func flagError(err error, shortFlag, longFlag string) error {
	return fmt.Errorf("flags: '%v' and '%v': %w", shortFlag, longFlag, err)
}
