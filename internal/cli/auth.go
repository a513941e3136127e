// internal/cli/auth.go
package cli

import (
	"fmt"
	"syscall"

	"petbloom/internal/pkg/token"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in to the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored credential",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the stored credential's identity",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)

	loginCmd.Flags().String("password", "", "password (prompted when omitted)")
	registerCmd.Flags().String("password", "", "password (prompted when omitted)")
	registerCmd.Flags().String("name", "", "full name")
	registerCmd.Flags().String("phone", "", "phone number")
}

func readPassword(cmd *cobra.Command) (string, error) {
	password, _ := cmd.Flags().GetString("password")
	if password != "" {
		return password, nil
	}
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd)
	if err != nil {
		return err
	}

	identity, err := app.sessions.Login(cmd.Context(), args[0], password)
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s <%s>\n", identity.FullName, identity.Email)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd)
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("name")
	phone, _ := cmd.Flags().GetString("phone")

	identity, err := app.sessions.Register(cmd.Context(), args[0], password, name, phone)
	if err != nil {
		return err
	}
	fmt.Printf("Registered as %s <%s>\n", identity.FullName, identity.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	return app.sessions.Logout(cmd.Context())
}

func runWhoami(cmd *cobra.Command, args []string) error {
	cred, err := app.creds.Load()
	if err != nil {
		return err
	}
	if cred == "" {
		fmt.Println("Not signed in")
		return nil
	}

	info := token.Inspect(cred)
	if !info.IsJWT {
		fmt.Println("Signed in with a demo credential")
		return nil
	}
	fmt.Printf("Signed in as %s (user %s)\n", info.Email, info.Subject)
	if !info.IssuedAt.IsZero() {
		fmt.Printf("Session issued at %s\n", info.IssuedAt.Format("2006-01-02 15:04:05"))
	}
	if !info.Expiry.IsZero() {
		fmt.Printf("Session expires at %s\n", info.Expiry.Format("2006-01-02 15:04:05"))
	}
	return nil
}
