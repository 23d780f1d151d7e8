package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/contacts"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Shell reads commands line by line and runs them against a contacts
// service, one at a time, until an exit command or end of input.
type Shell struct {
	svc *contacts.Service
	cfg types.Config
	in  io.Reader
	out io.Writer
	log *zap.Logger
}

// NewShell returns a shell over svc reading from in and printing to out.
// A nil log disables logging.
func NewShell(svc *contacts.Service, cfg types.Config, in io.Reader, out io.Writer, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{svc: svc, cfg: cfg, in: in, out: out, log: log}
}

// Run prints the greeting and processes input until an exit command or end
// of input. Command errors are printed and do not stop the loop.
func (sh *Shell) Run() error {
	fmt.Fprintln(sh.out, sh.cfg.Greeting)

	scanner := bufio.NewScanner(sh.in)
	for {
		fmt.Fprint(sh.out, sh.cfg.Prompt)
		if !scanner.Scan() {
			break
		}

		tokens := tokenize(scanner.Text(), sh.cfg.LowercaseInput)
		if len(tokens) == 0 {
			continue
		}

		err := sh.Exec(tokens)
		if errors.Is(err, errExit) {
			sh.log.Debug("shell exit", zap.String("command", tokens[0]))
			return nil
		}
		if err != nil {
			sh.log.Debug("command failed", zap.Strings("args", tokens), zap.Error(err))
			fmt.Fprintln(sh.out, describeError(err))
		}
	}

	// End of input leaves the cursor after the prompt.
	fmt.Fprintln(sh.out)
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// Exec runs one tokenized command line. It returns errExit for the exit
// commands and an *inputError for unknown commands or wrong argument counts.
func (sh *Shell) Exec(tokens []string) error {
	root := sh.commandTree()

	cmd, _, err := root.Find(tokens)
	if err != nil || !cmd.Runnable() {
		return &inputError{hint: msgInvalidCommand}
	}

	root.SetArgs(tokens)
	_, err = root.ExecuteC()
	return err
}

func runShell(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, flags.verbose, cmd.ErrOrStderr())
	if err != nil {
		return sysErrorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	svc := contacts.NewService(types.NewBook(),
		contacts.WithLogger(log),
		contacts.WithLeapDayPolicy(cfg.LeapDay),
	)
	log.Debug("shell started", zap.String("leap_day", string(cfg.LeapDay)))

	return NewShell(svc, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run()
}

func newShellCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive contact book (default)",
		Long: `Start the interactive contact book.

Commands:
  hello
  add <name> <phone> [yyyy mm dd]
  change <name> <phone>
  phone <name>
  birthday <name>
  show all
  good bye | close | exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, flags)
		},
	}
}
