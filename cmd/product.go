package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Alturino/inventory/internal/api"
	"github.com/Alturino/inventory/internal/config"
	"github.com/Alturino/inventory/internal/constants"
	"github.com/Alturino/inventory/internal/log"
	"github.com/Alturino/inventory/internal/ui"
	"github.com/Alturino/inventory/internal/validate"
	"github.com/Alturino/inventory/pkg/request"
)

// newApiClient bootstraps config and logging for a one-shot command and
// returns the configured client. Logs go to the file only; stdout is
// reserved for command output.
func newApiClient(c context.Context) (context.Context, *api.Client) {
	cfg := config.InitConfig(c, "inventory")
	logger := log.InitLogger(cfg.Application.LogFile, cfg.Application.Env, false).
		With().
		Str(log.KeyAppName, constants.AppInventoryClient).
		Logger()
	return logger.WithContext(c), api.NewClient(cfg.Api.BaseUrl)
}

type productFlags struct {
	sku      string
	name     string
	quantity int
	price    string
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sku, "sku", "", "stock-keeping unit")
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().IntVar(&f.quantity, "quantity", 0, "units in stock")
	cmd.Flags().StringVar(&f.price, "price", "", "unit price")
}

func (f *productFlags) build() (request.CreateProduct, error) {
	price := decimal.Zero
	if f.price != "" {
		parsed, err := decimal.NewFromString(f.price)
		if err != nil {
			return request.CreateProduct{}, fmt.Errorf("price must be a number")
		}
		price = parsed
	}

	return request.CreateProduct{
		SKU:      strings.TrimSpace(f.sku),
		Name:     strings.TrimSpace(f.name),
		Quantity: f.quantity,
		Price:    price,
	}, nil
}

func (f *productFlags) parse(c context.Context) (request.CreateProduct, error) {
	param, err := f.build()
	if err != nil {
		return request.CreateProduct{}, err
	}
	if fieldErrors := validate.Struct(c, param); fieldErrors != nil {
		return request.CreateProduct{}, fieldErrors
	}
	return param, nil
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, client := newApiClient(cmd.Context())

			products, err := client.ListProducts(c)
			if err != nil {
				return err
			}
			if len(products) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no products registered")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSKU\tNAME\tQUANTITY\tPRICE\tCREATED")
			for _, product := range products {
				fmt.Fprintf(
					w,
					"%d\t%s\t%s\t%d\t%s\t%s\n",
					product.ID,
					product.SKU,
					product.Name,
					product.Quantity,
					ui.FormatPrice(product.Price),
					ui.FormatDate(product.CreatedAt),
				)
			}
			return w.Flush()
		},
	}
}

func newCreateCommand() *cobra.Command {
	flags := &productFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, client := newApiClient(cmd.Context())

			param, err := flags.parse(c)
			if err != nil {
				return err
			}
			if _, err := client.CreateProduct(c, param); err != nil {
				return fmt.Errorf("error creating product: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "product created successfully")
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newUpdateCommand() *cobra.Command {
	flags := &productFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, client := newApiClient(cmd.Context())

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be an integer")
			}
			param, err := flags.build()
			if err != nil {
				return err
			}
			update := request.UpdateProduct{CreateProduct: param, ID: id}
			if fieldErrors := validate.Struct(c, update); fieldErrors != nil {
				return fieldErrors
			}
			if _, err := client.UpdateProduct(c, id, param); err != nil {
				return fmt.Errorf("error updating product: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "product updated successfully")
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newDeleteCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, client := newApiClient(cmd.Context())

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be an integer")
			}

			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), "Are you sure you want to delete this product? [y/N]: ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "aborted")
					return nil
				}
			}

			if err := client.DeleteProduct(c, id); err != nil {
				return fmt.Errorf("error deleting product: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "product deleted successfully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}
