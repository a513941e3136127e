// internal/cli/orders.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders [id]",
	Short: "Show order history",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOrders,
}

var ordersWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow order events live",
	RunE:  runOrdersWatch,
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersWatchCmd)

	ordersCmd.Flags().String("status", "", "filter by status")
}

func runOrders(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 1 {
		order, err := app.orders.Get(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Order %s — %s, total $%.2f\n", order.ID, order.Status, order.TotalPrice)
		if order.TrackingNumber != "" {
			fmt.Printf("Tracking: %s\n", order.TrackingNumber)
		}
		for _, item := range order.Items {
			ref := item.ProductID
			if ref == "" {
				ref = item.PetID + " (pet)"
			}
			fmt.Printf("  %dx %s — $%.2f\n", item.Quantity, ref, item.Price)
		}
		return nil
	}

	status, _ := cmd.Flags().GetString("status")
	orders, err := app.orders.List(ctx, status)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet")
		return nil
	}
	for _, order := range orders {
		fmt.Printf("%-12s $%-8.2f [%s]\n", order.Status, order.TotalPrice, order.ID)
	}
	return nil
}

func runOrdersWatch(cmd *cobra.Command, args []string) error {
	events, err := app.alerts.Subscribe(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println("Watching order events (Ctrl-C to stop)...")
	for ev := range events {
		fmt.Printf("%s: order %s is now %s\n", ev.Type, ev.OrderID, ev.Status)
	}
	return nil
}
