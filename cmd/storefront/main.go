package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	cartapp "github.com/medplus/storefront/internal/cart/app"
	cartadapter "github.com/medplus/storefront/internal/cart/infra/adapter"
	cartredis "github.com/medplus/storefront/internal/cart/infra/redis"
	catalogapp "github.com/medplus/storefront/internal/catalog/app"
	"github.com/medplus/storefront/internal/catalog/static"
	checkoutapp "github.com/medplus/storefront/internal/checkout/app"
	"github.com/medplus/storefront/internal/coupon"
	"github.com/medplus/storefront/internal/pricing"
	"github.com/medplus/storefront/pkg/config"
	"github.com/medplus/storefront/pkg/logger"
	"github.com/medplus/storefront/pkg/shutdown"
)

const usage = `usage: storefront <command> [args]

commands:
  list                 show the product catalog
  show                 show the current cart and totals
  add <product-id>     add one unit of a product
  remove <product-id>  remove a line item
  qty <product-id> <delta>  adjust a line item quantity
  coupon <code>        apply a coupon ("" clears it)
  checkout             commit the cart and print the receipt
`

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	rdb, err := cfg.Redis.Connect(ctx)
	if err != nil {
		log.Error("redis connect failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer rdb.Close()

	// Catalog
	catalogSvc := catalogapp.NewService(static.NewProductRepo())

	// Cart
	cartRepo := cartredis.NewCartRepo(rdb, cfg.KeyPrefix)
	catalogReader := cartadapter.NewCatalogServiceReader(catalogSvc)
	coupons := coupon.Default()
	cartSvc := cartapp.NewService(cartRepo, catalogReader, coupons)

	// Pricing + checkout
	pricer := pricing.NewEngine(coupons)
	checkoutSvc := checkoutapp.NewService(cartSvc, pricer)

	if err := run(ctx, cfg.SessionID, catalogSvc, cartSvc, pricer, checkoutSvc, os.Args[1:]); err != nil {
		log.Error("command failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	sessionID string,
	catalogSvc *catalogapp.Service,
	cartSvc *cartapp.Service,
	pricer *pricing.Engine,
	checkoutSvc *checkoutapp.Service,
	args []string,
) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing command")
	}

	switch args[0] {
	case "list":
		products, err := catalogSvc.ListProducts(ctx)
		if err != nil {
			return err
		}
		for _, p := range products {
			fmt.Printf("%s  %-24s %8s  %s\n", p.Icon, p.Name, pricing.FormatAmount(p.UnitPrice), p.Description)
		}
		return nil

	case "show":
		cart, err := cartSvc.Snapshot(ctx, sessionID)
		if err != nil {
			return err
		}
		for _, it := range cart.Items {
			fmt.Printf("%s  %-24s x%-3d %8s\n", it.Icon, it.Name, it.Quantity, pricing.FormatAmount(it.UnitPrice))
		}
		totals := pricer.Compute(cart)
		fmt.Printf("subtotal %s  discount %s  total %s\n",
			pricing.FormatAmount(totals.Subtotal),
			pricing.FormatAmount(totals.Discount),
			pricing.FormatAmount(totals.Total),
		)
		if cart.Coupon != "" {
			fmt.Printf("coupon: %s\n", cart.Coupon)
		}
		return nil

	case "add":
		if len(args) < 2 {
			return errors.New("add: missing product id")
		}
		return cartSvc.AddItem(ctx, sessionID, args[1])

	case "remove":
		if len(args) < 2 {
			return errors.New("remove: missing product id")
		}
		return cartSvc.RemoveItem(ctx, sessionID, args[1])

	case "qty":
		if len(args) < 3 {
			return errors.New("qty: need product id and delta")
		}
		delta, err := strconv.ParseInt(args[2], 10, 32)
		if err != nil {
			return fmt.Errorf("qty: bad delta %q: %w", args[2], err)
		}
		return cartSvc.UpdateQuantity(ctx, sessionID, args[1], int32(delta))

	case "coupon":
		code := ""
		if len(args) > 1 {
			code = args[1]
		}
		return cartSvc.ApplyCoupon(ctx, sessionID, code)

	case "checkout":
		receipt, err := checkoutSvc.Checkout(ctx, sessionID)
		if err != nil {
			return err
		}
		fmt.Printf("order %s\n", receipt.OrderID)
		for _, line := range receipt.Lines {
			fmt.Printf("  %-24s x%-3d %8s\n", line.Name, line.Quantity, pricing.FormatAmount(line.LineTotal))
		}
		fmt.Printf("charged %s\n", pricing.FormatAmount(receipt.AmountCharged))
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
