package internal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/rat/internal/backend"
	"github.com/baalimago/rat/internal/chat"
	"github.com/baalimago/rat/internal/models"
	"github.com/baalimago/rat/internal/session"
	"github.com/baalimago/rat/internal/utils"
)

var defaultFlags = Configurations{}

// Setup parses args, loads the config and resolves the backend. Any error is a
// startup failure, except utils.ErrUserInitiatedExit which is returned after
// printing help or version.
func Setup(ctx context.Context, usage string, args []string) (*chat.Loop, error) {
	flagSet, rest, err := parseFlags(defaultFlags, args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		switch rest[0] {
		case "help", "h":
			fmt.Print(usage)
			return nil, utils.ErrUserInitiatedExit
		case "version":
			return nil, printVersion(os.Stdout)
		default:
			return nil, fmt.Errorf("unknown command: '%v', see 'rat help'", rest[0])
		}
	}

	configDir, err := utils.GetRatConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to find config dir: %w", err)
	}
	if err := utils.CreateConfigDir(configDir); err != nil {
		return nil, err
	}
	configPath := flagSet.ConfigPath
	if configPath == "" {
		configPath = filepath.Join(configDir, backend.ConfigFileName)
	}
	dflt := backend.DefaultConfig()
	conf, err := utils.LoadConfigFromFile(configPath, &dflt)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(&conf, flagSet, defaultFlags)

	variant, err := models.ParseVariant(conf.Variant)
	if err != nil {
		return nil, err
	}
	b, err := backend.New(conf, variant, backend.Options{UseDeepseek: flagSet.UseDeepseek})
	if err != nil {
		return nil, err
	}
	if conf.FetchModels {
		b.FetchModelsOrWarn(ctx)
	}
	responseModel := b.ResponseModel
	if flagSet.Model != "" {
		responseModel = flagSet.Model
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("variant: %v, reasoning: %v, response: %v, known: %v\n", variant, b.ReasoningModel, responseModel, b.KnownModels))
	}

	s, err := session.New(b.Extractor, b.Injector, b.Generator, b.KnownModels,
		models.SessionConfig{
			ResponseModel: responseModel,
			ShowReasoning: !conf.HideReasoning,
		},
		session.Options{
			Out:          os.Stdout,
			NoStream:     conf.NoStream,
			SystemPrompt: conf.SystemPrompt,
			Width:        utils.TermWidth(),
		})
	if err != nil {
		if errors.Is(err, models.ErrModelNotFound) {
			return nil, fmt.Errorf("invalid model flag: %w", err)
		}
		return nil, err
	}

	loop := &chat.Loop{
		Dispatcher: chat.NewDispatcher(s, utils.ConversationsDir(configDir), os.Stdout),
		In:         os.Stdin,
		Out:        os.Stdout,
	}
	if utils.IsTerminal(os.Stdin) {
		fmt.Println(utils.Banner(string(variant), b.ReasoningModel, responseModel))
		loop.Prompt = fmt.Sprintf("\n%v ", utils.RoleLabel(models.RoleUser))
	}
	return loop, nil
}

// applyFlagOverrides sets conf from flagSet, where the flag isn't its default.
// Keeps the convention flags > file > default.
func applyFlagOverrides(conf *backend.Config, flagSet, defaults Configurations) {
	if flagSet.Variant != defaults.Variant {
		conf.Variant = flagSet.Variant
	}
	if flagSet.NoStream != defaults.NoStream {
		conf.NoStream = flagSet.NoStream
	}
	if flagSet.HideReasoning != defaults.HideReasoning {
		conf.HideReasoning = flagSet.HideReasoning
	}
}
