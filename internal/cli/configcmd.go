package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ImGajeed76/pathman/pkg/pathman/config"
	"github.com/ImGajeed76/pathman/pkg/pathman/console"
)

var storeKeys = []string{config.KeyBaseURL, config.KeyBasePath, config.KeySFTPPassword}

func NewConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage values remembered in the system keyring",
		Annotations: map[string]string{
			annotationNoBackend: "true",
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set [key] [value]",
		Short: "Remember a value, prompting for whatever is missing",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			store, err := config.NewStore(KeyringService)
			if err != nil {
				return err
			}

			var key, value string
			switch len(args) {
			case 0:
				i, err := a.prompter.Select("Which value do you want to set?", storeChoices(store))
				if err != nil {
					return err
				}
				key = storeKeys[i]
			default:
				key = args[0]
			}
			if err := checkKey(key); err != nil {
				return err
			}

			if len(args) == 2 {
				value = args[1]
			} else if value, err = a.prompter.Input(key, store.Get(key), isSecret(key)); err != nil {
				return err
			}

			return store.Set(key, value)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a remembered value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			store, err := config.NewStore(KeyringService)
			if err != nil {
				return err
			}
			if err := checkKey(args[0]); err != nil {
				return err
			}

			value, ok := store.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%s is not set", args[0])
			}
			fmt.Fprintln(cc.OutOrStdout(), value)
			return nil
		},
	})

	deleteCmd := &cobra.Command{
		Use:   "delete [key]",
		Short: "Forget a remembered value, or all of them with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			all, err := cc.Flags().GetBool("all")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			if all == (len(args) == 1) {
				return fmt.Errorf("%w: pass either a key or --all", ErrInvalidArgument)
			}

			store, err := config.NewStore(KeyringService)
			if err != nil {
				return err
			}
			if all {
				return store.DeleteAll()
			}
			if err := checkKey(args[0]); err != nil {
				return err
			}
			return store.Delete(args[0])
		},
	}
	deleteCmd.Flags().Bool("all", false, "Forget every remembered value")
	cmd.AddCommand(deleteCmd)

	return cmd
}

func isSecret(key string) bool {
	return key == config.KeySFTPPassword
}

// storeChoices pairs every key with its remembered value for the picker.
func storeChoices(store *config.Store) []console.Choice {
	choices := make([]console.Choice, 0, len(storeKeys))
	for _, key := range storeKeys {
		choices = append(choices, console.Choice{Key: key, Value: store.Get(key), Secret: isSecret(key)})
	}
	return choices
}

func checkKey(key string) error {
	if !slices.Contains(storeKeys, key) {
		return fmt.Errorf("%w: unknown key %q, expected one of %v", ErrInvalidArgument, key, storeKeys)
	}
	return nil
}
