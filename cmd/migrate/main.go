package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Gunvolt24/seafood-shop/config"
	"github.com/Gunvolt24/seafood-shop/internal/repo/postgres"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"
)

const usage = `usage: migrate [flags] <command> [args]

commands:
  up | down | status | version | reset | redo | up-to N | down-to N
  create-admin   create or update an admin user (--email, --password, --name, --role)

flags:
`

func main() {
	_ = godotenv.Load(".env.local")

	dsn := flag.String("dsn", "", "postgres DSN (default: SHOP_POSTGRES_DSN)")
	email := flag.String("email", "", "admin email for create-admin")
	password := flag.String("password", "", "admin password for create-admin (default: SHOP_ADMIN_PASSWORD)")
	name := flag.String("name", "Администратор", "admin full name for create-admin")
	role := flag.String("role", "admin", "admin role for create-admin")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		*dsn = cfg.Postgres.DSN
	}
	if *dsn == "" {
		fmt.Fprintln(os.Stderr, "postgres DSN is empty")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command, args := flag.Arg(0), flag.Args()[1:]
	var err error
	if command == "create-admin" {
		pass := *password
		if pass == "" {
			pass = os.Getenv("SHOP_ADMIN_PASSWORD")
		}
		err = createAdmin(ctx, *dsn, strings.ToLower(strings.TrimSpace(*email)), pass, *name, *role)
	} else {
		err = postgres.Migrate(ctx, *dsn, command, args...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", command, err)
		os.Exit(1)
	}
}

func createAdmin(ctx context.Context, dsn, email, password, name, role string) error {
	if email == "" || password == "" {
		return fmt.Errorf("--email and --password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	pool, err := postgres.NewPool(ctx, dsn, 2)
	if err != nil {
		return err
	}
	defer pool.Close()

	id, err := postgres.NewAdminUserRepository(pool).UpsertAdmin(ctx, email, string(hash), name, role)
	if err != nil {
		return err
	}
	fmt.Printf("admin %s ready (id=%s)\n", email, id)
	return nil
}
