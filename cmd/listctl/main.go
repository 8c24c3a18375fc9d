package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amartos/sccroll/internal/core"
	"github.com/amartos/sccroll/internal/utils"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	configPath string
	debugMode  bool
	useMsgpack bool
	outMsgpack bool
	failAt     int
)

var rootCmd = &cobra.Command{
	Use:          "listctl",
	Short:        "Drive the sccroll list engine from command scripts",
	Version:      version,
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run [SCRIPT]",
	Short: "Run a command script (stdin when SCRIPT is omitted or -)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Type commands interactively",
	Args:  cobra.NoArgs,
	RunE:  repl,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", utils.DefaultConfigPath(), "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "print debug logs")
	runCmd.Flags().BoolVar(&useMsgpack, "msgpack", false, "read a msgpack request stream instead of text lines")
	runCmd.Flags().BoolVar(&outMsgpack, "output-msgpack", false, "write msgpack responses instead of text lines")
	rootCmd.PersistentFlags().IntVar(&failAt, "fail-at", -1, "fail the Nth allocation (overrides the config, 0 disables)")
	rootCmd.AddCommand(runCmd, replCmd)
}

// setup loads the configuration and builds the command handler.
func setup(cmd *cobra.Command) (*core.CommandHandler, *utils.Logger, error) {
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}
	if cmd.Flags().Changed("fail-at") {
		config.Fault.FailAt = failAt
		if err := config.Validate(); err != nil {
			return nil, nil, err
		}
	}

	logger := utils.NewLogger(config.LogFile, config.Debug || debugMode)
	logger.Debug("loaded configuration from " + configPath)

	session, err := core.NewSessionFromConfig(config)
	if err != nil {
		return nil, nil, err
	}
	return core.NewCommandHandler(session), logger, nil
}

func run(cmd *cobra.Command, args []string) error {
	handler, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	input := io.Reader(os.Stdin)
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		input = file
	}

	out := cmd.OutOrStdout()
	if useMsgpack {
		requests, err := utils.DecodeRequests(input)
		if err != nil {
			return fmt.Errorf("decoding requests: %w", err)
		}
		for _, request := range requests {
			if err := respond(out, handler.HandleCommand(request)); err != nil {
				return err
			}
		}
		return nil
	}
	return runLines(handler, logger, input, out, "")
}

func repl(cmd *cobra.Command, _ []string) error {
	handler, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Type commands (e.g., APPEND l a b, INSERT l 5 x, PRINT l) and press Enter.")
	return runLines(handler, logger, cmd.InOrStdin(), out, ">> ")
}

// runLines executes one text command per line, printing prompt before
// each read when set.
func runLines(handler *core.CommandHandler, logger *utils.Logger, in io.Reader, out io.Writer, prompt string) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for {
		if prompt != "" {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		line++
		request, err := utils.ParseRequest(strings.TrimSpace(scanner.Text()))
		if errors.Is(err, utils.ErrNoCommand) {
			continue
		}
		if err != nil {
			logger.Warn(fmt.Sprintf("line %d: %v", line, err))
			if err := respond(out, map[string]interface{}{"status": "ERROR", "message": err.Error()}); err != nil {
				return err
			}
			continue
		}
		if err := respond(out, handler.HandleCommand(request)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func respond(w io.Writer, response map[string]interface{}) error {
	if outMsgpack {
		data, err := utils.EncodeResponse(response)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	_, err := fmt.Fprintln(w, core.FormatResponse(response))
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		utils.GetLogger().Error(err.Error())
		os.Exit(1)
	}
}
