// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"recbrowse/cli/internal/keychain"
	"recbrowse/cli/internal/terminal"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var clearPassword bool

// passwdCmd stores the database password in the OS keychain so the credential
// file can leave it out. The entry is keyed by user, host and database.
var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Store the database password in the OS keychain",
	Long: `The passwd command prompts for the password of the database named in the
credential file and stores it in the OS keychain (macOS Keychain, Windows
Credential Manager, Secret Service or KWallet on Linux). Run browse or show
with --keychain to use it when the credential file has no password line.

Use --clear to remove a stored password.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings(os.Stderr)
		if err != nil {
			return err
		}
		key := s.desc.KeychainKey()

		km, err := keychain.GetManager()
		if err != nil {
			fmt.Println("❌ Secure storage is not available on this system.")
			return err
		}

		if clearPassword {
			if err := km.ClearDBPassword(key); err != nil {
				fmt.Println("❌ Failed to remove the stored password.")
				return err
			}
			fmt.Printf("✅ Password for %s removed from the keychain.\n", key)
			return nil
		}

		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return errors.New("passwd needs an interactive terminal")
		}

		promptText := fmt.Sprintf("Password for %s: ", key)
		fmt.Print(promptText)
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return err
		}

		// Clear the prompt from terminal
		terminal.ClearPreviousLines(len(promptText))

		password := strings.TrimRight(string(raw), "\r\n")
		if password == "" {
			return errors.New("password is required")
		}

		if err := km.SaveDBPassword(key, password); err != nil {
			fmt.Println("❌ Failed to save the password securely.")
			return err
		}

		fmt.Printf("✅ Password for %s saved to the keychain.\n", key)
		fmt.Println("   Use it with: recbrowse browse --keychain")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(passwdCmd)
	passwdCmd.Flags().BoolVar(&clearPassword, "clear", false, "Remove the stored password instead of setting one")
}
