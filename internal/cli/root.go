// Package cli contains all commands for the petbloom storefront CLI.
package cli

import (
	"fmt"
	"os"

	"petbloom/internal/config"
	"petbloom/internal/gateway"
	"petbloom/internal/pkg/credential"
	"petbloom/internal/pkg/nav"
	"petbloom/internal/pkg/notify"
	accountsvc "petbloom/internal/service/account"
	alertssvc "petbloom/internal/service/alerts"
	cartsvc "petbloom/internal/service/cart"
	catalogsvc "petbloom/internal/service/catalog"
	ordersvc "petbloom/internal/service/order"
	wishlistsvc "petbloom/internal/service/wishlist"
	"petbloom/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	app     *appContext
)

// appContext wires the client stack once per invocation.
type appContext struct {
	cfg      config.AppConfig
	logger   *zap.Logger
	creds    credential.Store
	gw       *gateway.Client
	sessions *session.Store
	catalog  *catalogsvc.Service
	cart     *cartsvc.Service
	orders   *ordersvc.Service
	wishlist *wishlistsvc.Service
	account  *accountsvc.Service
	alerts   *alertssvc.Service
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "petbloom",
	Short: "PetBloom storefront client",
	Long: `petbloom is a terminal client for the PetBloom pet-adoption and
pet-supplies store.

Example usage:
  petbloom login you@example.com     # Sign in (demo fallback if backend is down)
  petbloom pets --species dog        # Browse adoptable pets
  petbloom cart add --product <id>   # Add a product to the cart
  petbloom checkout --address "..."  # Turn the cart into an order
  petbloom orders watch              # Follow order events live`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// terminalNotifier is the CLI's stand-in for the storefront's toasts.
type terminalNotifier struct{}

func (terminalNotifier) Notify(kind notify.Kind, message string) {
	switch kind {
	case notify.Error:
		fmt.Fprintf(os.Stderr, "❌ %s\n", message)
	default:
		fmt.Printf("✅ %s\n", message)
	}
}

// terminalNavigator is the CLI's stand-in for a login redirect.
func terminalNavigator(path string) {
	if path == nav.LoginPath {
		fmt.Fprintln(os.Stderr, "Session expired. Sign in again with 'petbloom login'")
	}
}

func initApp() error {
	cfg := config.Load()

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		logger = l
	}

	baseURL, err := cfg.ResolveBaseURL()
	if err != nil {
		return err
	}

	creds, err := credential.NewFileStore(cfg.CredentialPath)
	if err != nil {
		return err
	}

	gw := gateway.New(
		gateway.Config{BaseURL: baseURL, Timeout: cfg.RequestTimeout},
		gateway.WithLogger(logger),
		gateway.WithCredentialStore(creds),
		gateway.WithNavigator(nav.Func(terminalNavigator)),
	)

	app = &appContext{
		cfg:      cfg,
		logger:   logger,
		creds:    creds,
		gw:       gw,
		sessions: session.NewStore(gw, creds, terminalNotifier{}, cfg.Mode, logger),
		catalog:  catalogsvc.NewService(gw, logger),
		cart:     cartsvc.NewService(gw, logger),
		orders:   ordersvc.NewService(gw, logger),
		wishlist: wishlistsvc.NewService(gw, logger),
		account:  accountsvc.NewService(gw, logger),
		alerts:   alertssvc.NewService(gw, logger),
	}
	return nil
}
