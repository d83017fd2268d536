package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/Gunvolt24/seafood-shop/config"
	"github.com/Gunvolt24/seafood-shop/internal/cart"
	"github.com/Gunvolt24/seafood-shop/internal/cart/filestore"
	"github.com/Gunvolt24/seafood-shop/internal/cart/redisstore"
	"github.com/Gunvolt24/seafood-shop/internal/cart/view"
	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/Gunvolt24/seafood-shop/internal/shopclient"
	"github.com/Gunvolt24/seafood-shop/pkg/ctxmeta"
	"github.com/Gunvolt24/seafood-shop/pkg/logger"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

const usage = `usage: shop [flags] <command> [args]

commands:
  catalog [--category NAME] [--in-stock]   list products
  add <id> [qty]                           add a product to the cart
  remove <id>                              remove a line
  set <id> <qty>                           set quantity (0 removes)
  show                                     print the cart
  clear                                    empty the cart
  checkout --name --phone --address [--payment cash|card] [--change N] [--comment TEXT]

flags:
`

var errUsage = errors.New("bad usage")

// Клиент витрины: каталог с сервера, корзина локально (файл или Redis), оформление заказа.
func main() {
	_ = godotenv.Load(".env.local")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type shell struct {
	cfg      config.Config
	api      *shopclient.Client
	log      ports.Logger
	out      io.Writer
	cartDir  string
	redisURL string
	customer string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("shop", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	apiURL := fs.String("api", envOr("SHOP_API_URL", "http://localhost:8080"), "storefront base URL")
	cartDir := fs.String("cart-dir", defaultCartDir(), "directory of the file-backed cart")
	redisURL := fs.String("redis", cfg.Redis.URL, "redis URL for the cart; overrides --cart-dir")
	customer := fs.String("customer", "guest", "cart owner, used as file dir / redis key prefix")
	timeout := fs.Duration("timeout", 10*time.Second, "API request timeout")
	verbose := fs.BoolP("verbose", "v", false, "write logs to stderr")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	log := logger.FromZap(zap.NewNop())
	if *verbose {
		zl, cleanup, lErr := logger.NewZapLogger(false)
		if lErr != nil {
			fmt.Fprintf(stderr, "logger: %v\n", lErr)
			return 1
		}
		defer func() { _ = cleanup() }()
		log = zl
	}

	sh := &shell{
		cfg:      cfg,
		api:      shopclient.New(*apiURL, *timeout),
		log:      log,
		out:      stdout,
		cartDir:  *cartDir,
		redisURL: *redisURL,
		customer: *customer,
	}

	ctx = ctxmeta.WithRequestID(ctx, uuid.NewString())
	if err := sh.dispatch(ctx, fs.Arg(0), fs.Args()[1:]); err != nil {
		fmt.Fprintf(stderr, "shop: %v\n", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
			return 2
		}
		return 1
	}
	return 0
}

func (s *shell) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "catalog":
		return s.catalog(ctx, args)
	case "add":
		return s.add(ctx, args)
	case "remove":
		return s.withCart(ctx, args, 1, func(c *cart.Cart) error {
			c.RemoveItem(ctx, args[0])
			return nil
		})
	case "set":
		return s.withCart(ctx, args, 2, func(c *cart.Cart) error {
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: quantity %q", errUsage, args[1])
			}
			c.UpdateQuantity(ctx, args[0], qty)
			return nil
		})
	case "clear":
		return s.withCart(ctx, args, 0, func(c *cart.Cart) error {
			c.Clear(ctx)
			return nil
		})
	case "show":
		c, closeCart, err := s.openCart(ctx)
		if err != nil {
			return err
		}
		defer closeCart()
		return view.Summary(s.out, c)
	case "checkout":
		return s.checkout(ctx, args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// openCart — корзина покупателя из Redis (если задан URL) или из файла.
func (s *shell) openCart(ctx context.Context) (*cart.Cart, func(), error) {
	fee, err := decimal.NewFromString(s.cfg.Cart.DeliveryFee)
	if err != nil {
		return nil, nil, fmt.Errorf("parse delivery fee %q: %w", s.cfg.Cart.DeliveryFee, err)
	}

	var (
		storage cart.Storage
		closeFn = func() {}
	)
	if s.redisURL != "" {
		rdb, cErr := redisstore.Connect(ctx, redisstore.Config{
			URL:          s.redisURL,
			ReadTimeout:  s.cfg.Redis.ReadTimeout,
			WriteTimeout: s.cfg.Redis.WriteTimeout,
			DialTimeout:  s.cfg.Redis.DialTimeout,
		})
		if cErr != nil {
			return nil, nil, cErr
		}
		storage = redisstore.New(rdb, "cart:"+s.customer, s.cfg.Redis.CartTTL)
		closeFn = func() {
			if err := rdb.Close(); err != nil {
				s.log.Warnf(ctx, "redis close: %v", err)
			}
		}
	} else {
		fsStore, fErr := filestore.New(filepath.Join(s.cartDir, s.customer))
		if fErr != nil {
			return nil, nil, fErr
		}
		storage = fsStore
	}

	return cart.New(ctx, storage, s.log, cart.WithDeliveryFee(fee)), closeFn, nil
}

// withCart — открыть корзину, подписать рендерер и выполнить мутацию.
func (s *shell) withCart(ctx context.Context, args []string, want int, mutate func(*cart.Cart) error) error {
	if len(args) != want {
		return fmt.Errorf("%w: expected %d argument(s), got %d", errUsage, want, len(args))
	}
	c, closeCart, err := s.openCart(ctx)
	if err != nil {
		return err
	}
	defer closeCart()

	_, detach := view.Attach(c, s.out)
	defer detach()
	return mutate(c)
}

func (s *shell) catalog(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	category := fs.String("category", "", "only products of this category")
	inStock := fs.Bool("in-stock", false, "only products in stock")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	cat, err := s.api.Catalog(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tТовар\tКатегория\tЦена\tОстаток")
	shown := 0
	for _, p := range cat.Products {
		if *category != "" && !strings.EqualFold(p.Category, *category) {
			continue
		}
		if *inStock && !p.IsInStock {
			continue
		}
		stock := strconv.Itoa(p.StockQuantity)
		if !p.IsInStock {
			stock = "нет"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, view.FormatPrice(p.Price), stock)
		shown++
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(s.out, "Показано: %d из %d, в наличии: %d\n", shown, cat.Total, cat.InStock)
	return err
}

func (s *shell) add(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: add <id> [qty]", errUsage)
	}
	qty := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: quantity %q", errUsage, args[1])
		}
		qty = n
	}

	cat, err := s.api.Catalog(ctx)
	if err != nil {
		return err
	}
	p, ok := cat.Find(args[0])
	if !ok {
		return fmt.Errorf("product %q not found", args[0])
	}
	if !p.IsInStock {
		return fmt.Errorf("product %q is out of stock", p.Name)
	}

	return s.withCart(ctx, nil, 0, func(c *cart.Cart) error {
		return c.AddItem(ctx, cart.Product{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image}, qty)
	})
}

func (s *shell) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "customer name")
	phone := fs.String("phone", "", "phone, +7XXXXXXXXXX or 8XXXXXXXXXX")
	address := fs.String("address", "", "delivery address")
	comment := fs.String("comment", "", "comment for the courier")
	payment := fs.String("payment", domain.PaymentCash, "cash|card")
	change := fs.String("change", "", "cash only: bill to give change from")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	c, closeCart, err := s.openCart(ctx)
	if err != nil {
		return err
	}
	defer closeCart()
	if c.IsEmpty() {
		return errors.New("cart is empty")
	}

	order := &domain.Order{
		CustomerName: *name,
		Phone:        *phone,
		Address:      *address,
		Comment:      *comment,
		Payment:      *payment,
		Subtotal:     c.Total(),
		DeliveryFee:  c.DeliveryFee(),
		Total:        c.TotalWithDelivery(),
	}
	if *change != "" {
		amount, dErr := decimal.NewFromString(*change)
		if dErr != nil {
			return fmt.Errorf("%w: change %q", errUsage, *change)
		}
		order.NeedChange = true
		order.ChangeAmount = &amount
	}
	for _, it := range c.Items() {
		order.Items = append(order.Items, domain.OrderLine{
			ProductID: it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	placed, err := s.api.SubmitOrder(ctx, order)
	if err != nil {
		return err
	}
	c.Clear(ctx)

	_, err = fmt.Fprintf(s.out, "Заказ %s оформлен. Итого: %s\n", placed.ID, view.FormatPrice(placed.Total))
	return err
}

func defaultCartDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "seafood-shop")
	}
	return ".seafood-shop"
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
