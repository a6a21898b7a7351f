package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/preranaaa0711/snackshack/internal/admin"
	"github.com/preranaaa0711/snackshack/internal/catalog"
	"github.com/preranaaa0711/snackshack/internal/domain"
	"github.com/preranaaa0711/snackshack/internal/engine"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	log.Println("Snack Shack terminal started")

	ctx := context.Background()

	store, err := openStore()
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	cat := catalog.New(store)
	if err := cat.Load(ctx); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	eng := engine.New(cat)
	gate := admin.NewGate(admin.NewStaticVerifier())

	repl(ctx, eng, gate)
}

// openStore picks the catalog backend. The flat CSV file is the
// default; STORE=sqlite switches to the embedded database.
func openStore() (catalog.Store, error) {
	switch kind := getEnv("STORE", "csv"); kind {
	case "csv":
		return catalog.NewCSVStore(getEnv("CATALOG_PATH", "./vending_inventory.csv")), nil
	case "sqlite":
		store, err := catalog.NewSQLiteStore(getEnv("DB_PATH", "./snackshack.db"))
		if err != nil {
			return nil, err
		}
		migrationsPath := getEnv("MIGRATIONS_PATH", "./internal/catalog/migrations")
		if err := store.RunMigrations(migrationsPath); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", kind)
	}
}

func repl(ctx context.Context, eng *engine.Engine, gate *admin.Gate) {
	fmt.Println("Welcome to The Snack Shack. Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch cmd, args := fields[0], fields[1:]; cmd {
		case "help":
			printHelp()
		case "list":
			printCatalog(eng)
		case "add":
			if len(args) != 1 {
				fmt.Println("usage: add <product-id>")
				continue
			}
			handle(eng.AddToCart(args[0]))
		case "remove":
			handle(eng.RemoveFromCart())
		case "insert":
			if len(args) != 1 {
				fmt.Println("usage: insert <amount>")
				continue
			}
			insertMoney(eng, args[0])
		case "cart":
			printCart(eng)
		case "checkout":
			result := eng.Checkout(ctx)
			fmt.Println(result.Message)
			if result.Success {
				fmt.Println("Receipt:", result.ReceiptID)
			}
		case "clear":
			eng.ClearCart()
			fmt.Println("Cart cleared.")
		case "admin":
			adminSession(ctx, scanner, eng, gate)
		case "quit", "exit":
			return
		default:
			fmt.Println("Unknown command. Type 'help' for commands.")
		}
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  help               show this help")
	fmt.Println("  list               list the product catalog")
	fmt.Println("  add <product-id>   add a product to the cart")
	fmt.Println("  remove             remove the last item from the cart")
	fmt.Println("  insert <amount>    insert money")
	fmt.Println("  cart               show the cart")
	fmt.Println("  checkout           check out the cart")
	fmt.Println("  clear              clear the cart")
	fmt.Println("  admin              enter the admin dashboard")
	fmt.Println("  quit | exit        leave the terminal")
}

func handle(message string, err error) {
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(message)
}

func insertMoney(eng *engine.Engine, raw string) {
	amount, err := domain.MoneyFromString(raw)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err := eng.InsertMoney(amount); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Balance: AED", eng.Balance())
}

func printCatalog(eng *engine.Engine) {
	for _, p := range eng.List() {
		status := fmt.Sprintf("In Stock (%d)", p.Stock)
		if !p.InStock() {
			status = "OUT OF STOCK"
		} else if p.LowStock() {
			status = fmt.Sprintf("LOW STOCK (%d)", p.Stock)
		}
		fmt.Printf("%-3s %-28s AED %8s  %s\n", p.ID, p.Name, p.Price, status)
	}
}

func printCart(eng *engine.Engine) {
	lines := eng.CartSummary()
	if len(lines) == 0 {
		fmt.Println("Your Cart is Empty.")
		return
	}
	fmt.Println("Your Cart:")
	for _, line := range lines {
		fmt.Printf(" - %s (x%d) @ AED %s\n", line.Name, line.Quantity, line.Cost)
	}
	fmt.Println("Total: AED", eng.CartTotal())
	fmt.Println("Balance: AED", eng.Balance())
}

func adminSession(ctx context.Context, scanner *bufio.Scanner, eng *engine.Engine, gate *admin.Gate) {
	fmt.Print("Password: ")
	if !scanner.Scan() || !gate.CheckPassword(scanner.Text()) {
		fmt.Println("Invalid password.")
		return
	}
	fmt.Print("PIN: ")
	if !scanner.Scan() || !gate.CheckPin(scanner.Text()) {
		fmt.Println("Invalid PIN.")
		return
	}

	fmt.Println("Admin dashboard. Commands: list, refill <id>, save, logout")
	for {
		fmt.Print("admin> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch cmd, args := fields[0], fields[1:]; cmd {
		case "list":
			printDashboard(eng)
		case "refill":
			if len(args) != 1 {
				fmt.Println("usage: refill <product-id>")
				continue
			}
			eng.RefillProduct(args[0])
			fmt.Println(args[0], "refilled.")
		case "save":
			if err := eng.Save(ctx); err != nil {
				fmt.Println("Error saving inventory:", err)
				continue
			}
			fmt.Println("Inventory saved.")
		case "logout":
			fmt.Println("Logged out of admin dashboard.")
			return
		default:
			fmt.Println("Unknown admin command.")
		}
	}
}

func printDashboard(eng *engine.Engine) {
	fmt.Printf("%-3s %-28s %10s %6s %6s\n", "ID", "Name", "Price", "Stock", "Sales")
	for _, p := range eng.List() {
		fmt.Printf("%-3s %-28s %10s %6d %6d\n", p.ID, p.Name, p.Price, p.Stock, p.Sales)
	}
}
