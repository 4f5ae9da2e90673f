package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/go_away_boilerplate/pkg/shutdown"
	"github.com/baalimago/rat/internal"
	"github.com/baalimago/rat/internal/utils"
	"github.com/joho/godotenv"
)

const usage = `rat - (r)etrieval (a)ugmented (t)hinking

Each question is first sent to a reasoning model. Its deliberation is then
handed to a response model, which writes the answer.

Prerequisites, per variant:
  - standard: DEEPSEEK_API_KEY and OPENROUTER_API_KEY
  - claude:   AKASH_API_KEY (or DEEPSEEK_API_KEY with -use-deepseek) and ANTHROPIC_API_KEY
  - akash:    AKASH_API_KEY
  Keys may also be put in a .env file in the working directory.
  - (Optional) Set the NO_COLOR environment variable to disable ansi color output

Usage: rat [flags] [command]

Flags:
  -v, -variant string          Set the backend variant: standard, claude or akash. (default is found in ratConfig.yaml)
  -m, -model string            Set the response model to start with. (default is found in ratConfig.yaml)
  -c, -config string           Set the path of the config file. (default %v)
  -ns, -no-stream bool         Set to true to wait for the complete answer instead of streaming it.
  -hr, -hide-reasoning bool    Set to true to start with the reasoning hidden.
  -ud, -use-deepseek bool      Set to true to reason with DeepSeek instead of Akash, in the claude variant.

Commands:
  h|help                       Display this help message
  version                      Print version and dependencies

Once started, type 'help' for the in-session commands.

Examples:
  - rat
  - rat -v claude -ud
  - rat -v akash -hr
  - echo "What is 2+2?" | rat -ns
`

func run(args []string) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		ancli.PrintWarn(fmt.Sprintf("failed to load .env: %v\n", err))
	}

	configDir, err := utils.GetRatConfigDir()
	if err != nil {
		ancli.Errf("failed to find config dir path: %v", err)
		return 1
	}

	loop, err := internal.Setup(ctx, fmt.Sprintf(usage, configDir+"/ratConfig.yaml"), args)
	if err != nil {
		if errors.Is(err, utils.ErrUserInitiatedExit) {
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to setup: %v\n", err))
		return 1
	}
	go func() { shutdown.Monitor(cancel) }()
	err = loop.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		ancli.PrintErr(fmt.Sprintf("failed to run: %v\n", err))
		return 1
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK("things seems to have worked out. Bye bye! 🚀\n")
	}
	return 0
}

func main() {
	ancli.SetupSlog()
	os.Exit(run(os.Args[1:]))
}
