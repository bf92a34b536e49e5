package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dwikikusuma/guitar-cart/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/guitar-cart/internal/catalog/app"
)

func (c *cli) catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the products that can be added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := c.catalog.ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPRICE")
			for _, p := range products {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ID, p.Name, c.money.Format(p.Price))
			}
			return tw.Flush()
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the cart and its total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printCart(cmd, c.cart.Cart())
		},
	}
}

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product, or one more of it (max 5)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := c.catalog.GetProduct(cmd.Context(), id)
			if errors.Is(err, catalogapp.ErrNotFound) {
				return fmt.Errorf("product %d is not in the catalog", id)
			}
			if err != nil {
				return err
			}
			cart, err := c.cart.AddToCart(cmd.Context(), p)
			if err != nil {
				return err
			}
			return c.printCart(cmd, cart)
		},
	}
}

// byID builds the commands that act on an existing line and are no-ops when
// the id is not in the cart.
func (c *cli) byID(use, short string, op func(ctx context.Context, id int64) (domain.Cart, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <product-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cart, err := op(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printCart(cmd, cart)
		},
	}
}

func (c *cli) removeCmd() *cobra.Command {
	return c.byID("remove", "Remove a product from the cart", func(ctx context.Context, id int64) (domain.Cart, error) {
		return c.cart.RemoveFromCart(ctx, id)
	})
}

func (c *cli) increaseCmd() *cobra.Command {
	return c.byID("inc", "Increase a line's quantity (max 5)", func(ctx context.Context, id int64) (domain.Cart, error) {
		return c.cart.IncreaseQuantity(ctx, id)
	})
}

func (c *cli) decreaseCmd() *cobra.Command {
	return c.byID("dec", "Decrease a line's quantity (min 1)", func(ctx context.Context, id int64) (domain.Cart, error) {
		return c.cart.DecreaseQuantity(ctx, id)
	})
}

func (c *cli) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := c.cart.ClearCart(cmd.Context())
			if err != nil {
				return err
			}
			return c.printCart(cmd, cart)
		},
	}
}

func (c *cli) printCart(cmd *cobra.Command, cart domain.Cart) error {
	out := cmd.OutOrStdout()
	if cart.IsEmpty() {
		_, err := fmt.Fprintln(out, "cart is empty")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tPRICE\tSUBTOTAL")
	for _, li := range cart {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", li.ID, li.Name, li.Quantity, c.money.Format(li.Price), c.money.Format(li.Subtotal()))
	}
	fmt.Fprintf(tw, "\t\t\tTOTAL\t%s\n", c.money.Format(cart.Total()))
	return tw.Flush()
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("product id %q is not a number", s)
	}
	return id, nil
}
