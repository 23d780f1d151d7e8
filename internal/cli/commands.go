package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

const (
	msgGoodBye     = "Good bye!"
	birthdayLayout = "2006 01 02"
)

// commandTree builds the cobra tree for one shell line. Flag parsing is
// disabled on every command so tokens are taken verbatim.
func (sh *Shell) commandTree() *cobra.Command {
	root := &cobra.Command{
		Use:           "contacts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(sh.out)
	root.SetErr(sh.out)

	show := &cobra.Command{Use: "show"}
	show.AddCommand(leaf("all", exactArgs(0, msgInvalidCommand), sh.runShowAll))

	good := &cobra.Command{Use: "good"}
	good.AddCommand(leaf("bye", exactArgs(0, msgInvalidCommand), runExit))

	root.AddCommand(
		leaf("hello", exactArgs(0, msgInvalidCommand), sh.runHello),
		leaf("add", addArgs, sh.runAdd),
		leaf("change", exactArgs(2, hintNameAndPhone), sh.runChange),
		leaf("phone", exactArgs(1, hintName), sh.runPhone),
		leaf("birthday", exactArgs(1, hintName), sh.runBirthday),
		show,
		good,
		leaf("close", exactArgs(0, msgInvalidCommand), runExit),
		leaf("exit", exactArgs(0, msgInvalidCommand), runExit),
	)
	return root
}

func leaf(use string, args cobra.PositionalArgs, run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Args:               args,
		DisableFlagParsing: true,
		RunE:               run,
	}
}

// exactArgs rejects any argument count other than n with hint.
func exactArgs(n int, hint string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &inputError{hint: hint}
		}
		return nil
	}
}

// addArgs accepts a name and phone, optionally followed by year month day.
func addArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 && len(args) != 5 {
		return &inputError{hint: hintNameAndPhone}
	}
	return nil
}

func (sh *Shell) runHello(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), sh.cfg.Greeting)
	return nil
}

func (sh *Shell) runAdd(cmd *cobra.Command, args []string) error {
	var birthday *time.Time
	if len(args) == 5 {
		b, err := parseBirthday(args[2:])
		if err != nil {
			return err
		}
		birthday = &b
	}
	msg, err := sh.svc.AddContact(args[0], args[1], birthday)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func (sh *Shell) runChange(cmd *cobra.Command, args []string) error {
	msg, err := sh.svc.ChangePhone(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func (sh *Shell) runPhone(cmd *cobra.Command, args []string) error {
	phone, err := sh.svc.GetPhone(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), phone)
	return nil
}

func (sh *Shell) runBirthday(cmd *cobra.Command, args []string) error {
	msg, err := sh.svc.GetDaysToBirthday(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func (sh *Shell) runShowAll(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), sh.svc.ListContacts())
	return nil
}

func runExit(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), msgGoodBye)
	return errExit
}

// parseBirthday reads a "yyyy mm dd" token group: a four-digit year and
// two-digit month and day.
func parseBirthday(tokens []string) (time.Time, error) {
	value := strings.Join(tokens, " ")
	t, err := time.Parse(birthdayLayout, value)
	if err != nil {
		return time.Time{}, &types.ValidationError{Field: types.FieldBirthday, Value: value, Err: types.ErrInvalidBirthday}
	}
	return t, nil
}
