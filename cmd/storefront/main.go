package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/account"
	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/dashboard"
	"storefront/internal/logger"
	"storefront/internal/pricing"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// session wires the storefront cores behind the interactive prompt. Every
// command mutates the query or the ledger and re-derives its view, the same
// loop the storefront UI runs on events.
type session struct {
	cfg      *config.Config
	log      *zap.Logger
	catalog  catalog.Catalog
	ledger   *cart.Ledger
	calc     *pricing.Calculator
	accounts *account.Service
	query    catalog.Query
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.App.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting storefront session", zap.String("env", cfg.App.Env))

	cat, err := catalog.Load()
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}

	s := &session{
		cfg:     cfg,
		log:     log,
		catalog: cat,
		ledger:  cart.NewLedger(cat),
		calc: pricing.NewCalculator(pricing.Rules{
			TaxRate:           decimal.NewFromFloat(cfg.Pricing.TaxRate),
			ShippingFee:       decimal.NewFromFloat(cfg.Pricing.ShippingFee),
			FreeShipThreshold: decimal.NewFromFloat(cfg.Pricing.FreeShipThreshold),
		}, pricing.Coupons(cfg.Coupons)),
		accounts: account.NewService(
			account.Credentials{Email: cfg.Auth.DemoEmail, Password: cfg.Auth.DemoPassword},
			time.Duration(cfg.Auth.LoginDelayMS)*time.Millisecond,
		),
		query: catalog.Query{Category: catalog.CategoryAll, Sort: catalog.SortDefault},
	}

	log.Info("Catalog ready",
		zap.Int("products", len(cat.Products())),
		zap.String("session_id", s.ledger.SessionID().String()),
	)

	fmt.Println("storefront - type 'help' for commands")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		s.dispatch(line)
	}

	log.Info("Session ended", zap.Int("cart_items", s.ledger.Count()))
}

func (s *session) dispatch(line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		printHelp()
	case "list":
		s.printListing()
	case "search":
		s.query.Search = strings.Join(args, " ")
		s.printListing()
	case "category":
		s.query.Category = strings.Join(args, " ")
		s.printListing()
	case "price":
		if len(args) != 2 {
			fmt.Println("usage: price <min> <max>  (use '-' for no bound)")
			return
		}
		s.query.MinPrice = boundArg(args[0])
		s.query.MaxPrice = boundArg(args[1])
		s.printListing()
	case "sort":
		if len(args) != 1 {
			fmt.Println("usage: sort <default|price-low|price-high|rating|name>")
			return
		}
		s.query.Sort = catalog.SortKey(args[0])
		s.printListing()
	case "add":
		s.addToCart(args)
	case "qty":
		s.setQuantity(args)
	case "rm":
		if id, ok := intArg(args, 0); ok {
			s.ledger.Remove(id)
			s.printCart()
		}
	case "clear":
		s.ledger.Clear()
		s.calc.Reset()
		fmt.Println("cart cleared")
	case "cart":
		s.printCart()
	case "coupon":
		s.applyCoupon(args)
	case "dashboard":
		s.printDashboard()
	case "login":
		s.login(args)
	case "logout":
		s.accounts.Logout()
		fmt.Println("logged out")
	case "profile":
		s.printProfile()
	case "settings":
		s.printSettings()
	default:
		fmt.Printf("unknown command %q - type 'help'\n", cmd)
	}
}

func (s *session) addToCart(args []string) {
	id, ok := intArg(args, 0)
	if !ok {
		fmt.Println("usage: add <product-id>")
		return
	}
	if err := s.ledger.Add(id); err != nil {
		s.log.Debug("Add to cart rejected", zap.Int("product_id", id), zap.Error(err))
		fmt.Println("no such product")
		return
	}
	s.log.Debug("Product added to cart", zap.Int("product_id", id), zap.Int("count", s.ledger.Count()))
	fmt.Printf("cart: %d item(s)\n", s.ledger.Count())
}

func (s *session) setQuantity(args []string) {
	id, ok := intArg(args, 0)
	qty, ok2 := intArg(args, 1)
	if !ok || !ok2 {
		fmt.Println("usage: qty <product-id> <quantity>")
		return
	}
	s.ledger.SetQuantity(id, qty)
	s.printCart()
}

func (s *session) applyCoupon(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: coupon <code> | coupon reset")
		return
	}
	if args[0] == "reset" {
		s.calc.Reset()
		fmt.Println("coupon removed")
		return
	}
	if err := s.calc.Apply(args[0]); err != nil {
		fmt.Println(err)
		return
	}
	s.log.Info("Coupon applied", zap.String("code", args[0]), zap.Int("percent", s.calc.DiscountPercent()))
	fmt.Printf("coupon applied: %d%% off\n", s.calc.DiscountPercent())
}

func (s *session) login(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: login <email> <password>")
		return
	}
	if err := s.accounts.Login(args[0], args[1]); err != nil {
		s.log.Debug("Login failed", zap.String("email", args[0]))
		fmt.Println("invalid email or password")
		return
	}
	user, _ := s.accounts.CurrentUser()
	s.log.Info("User logged in", zap.String("email", user.Email))
	fmt.Printf("welcome, %s\n", user.Name)
}

func (s *session) printListing() {
	products := s.catalog.List(s.query)
	if len(products) == 0 {
		fmt.Println("no products found - try adjusting your filters")
		return
	}
	for _, p := range products {
		fmt.Printf("%3d  %-16s %10s  %-12s stock %3d  rating %.1f\n",
			p.ID, p.Name, "$"+p.Price.StringFixed(2), p.Category, p.Stock, p.Rating)
	}
	fmt.Printf("(%d items)\n", len(products))
}

func (s *session) printCart() {
	items := s.ledger.Items()
	if len(items) == 0 {
		fmt.Println("your cart is empty")
		return
	}
	for _, it := range items {
		fmt.Printf("%3d  %-16s %10s x %d = %s\n",
			it.Product.ID, it.Product.Name, "$"+it.Product.Price.StringFixed(2),
			it.Quantity, "$"+it.LineTotal.StringFixed(2))
	}

	totals := s.calc.Quote(s.ledger.Subtotal())
	fmt.Printf("subtotal (%d items)  %s\n", s.ledger.Count(), "$"+totals.Subtotal.StringFixed(2))
	if totals.Shipping.IsZero() {
		fmt.Println("shipping             FREE")
	} else {
		fmt.Printf("shipping             %s\n", "$"+totals.Shipping.StringFixed(2))
	}
	fmt.Printf("tax                  %s\n", "$"+totals.Tax.StringFixed(2))
	if code, ok := s.calc.AppliedCoupon(); ok {
		fmt.Printf("discount (%s)    -%s\n", code, "$"+totals.Discount.StringFixed(2))
	}
	fmt.Printf("total                %s\n", "$"+totals.GrandTotal.StringFixed(2))
}

func (s *session) printDashboard() {
	summary := dashboard.Summarize(s.catalog.Orders(), s.catalog.Products())
	fmt.Printf("revenue %s | orders %d | avg order %s | products %d\n",
		"$"+summary.TotalRevenue.StringFixed(2), summary.TotalOrders,
		"$"+summary.AverageOrderValue.StringFixed(2), summary.TotalProducts)

	fmt.Println("top selling:")
	for _, p := range dashboard.TopSelling(s.catalog.Products(), s.cfg.Dashboard.TopSellingCount) {
		fmt.Printf("  %-16s %d sold\n", p.Name, p.Sales)
	}

	low := dashboard.LowStock(s.catalog.Products(), s.cfg.Dashboard.LowStockThreshold)
	if len(low) > 0 {
		fmt.Println("low stock:")
		for _, p := range low {
			fmt.Printf("  %-16s %d left\n", p.Name, p.Stock)
		}
	}

	fmt.Println("recent orders:")
	for _, o := range dashboard.RecentOrders(s.catalog.Orders(), s.cfg.Dashboard.RecentOrdersCount) {
		fmt.Printf("  #%d %s %-16s %10s %s\n", o.ID, o.Date, o.Customer, "$"+o.Total.StringFixed(2), o.Status)
	}
}

func (s *session) printProfile() {
	if _, ok := s.accounts.CurrentUser(); !ok {
		fmt.Println("not logged in")
		return
	}
	p := s.accounts.Profile()
	fmt.Printf("%s <%s>\n%s\n%s, %s %s, %s\n", p.Name, p.Email, p.Phone, p.Address, p.City, p.PostalCode, p.Country)
	fmt.Println("order history:")
	for _, o := range s.accounts.OrderHistory() {
		fmt.Printf("  #%d %s %d item(s) %s %s\n", o.ID, o.Date, o.Items, "$"+o.Total.StringFixed(2), o.Status)
	}
	fmt.Println("recent activity:")
	for _, a := range s.accounts.ActivityLog() {
		fmt.Printf("  %s  %s\n", a.Timestamp, a.Action)
	}
}

func (s *session) printSettings() {
	set := s.accounts.Settings()
	fmt.Printf("notifications %v | newsletter %v | dark mode %v | two-factor %v\n",
		set.Notifications, set.Newsletter, set.DarkMode, set.TwoFactor)
	fmt.Printf("language %s | currency %s | time zone %s\n", set.Language, set.Currency, set.TimeZone)
}

func printHelp() {
	fmt.Print(`listing:
  list                      show the current listing
  search <term>             case-insensitive name search
  category <name>           filter by category ('All' clears)
  price <min> <max>         price bounds, '-' for none
  sort <key>                default | price-low | price-high | rating | name
cart:
  add <id>                  add a product (or +1 if present)
  qty <id> <n>              set a line's quantity
  rm <id>                   remove a line
  cart                      show cart and totals
  clear                     empty the cart
  coupon <code>             apply a coupon (coupon reset removes it)
account:
  login <email> <password>  demo login
  logout | profile | settings
other:
  dashboard | help | quit
`)
}

func boundArg(arg string) string {
	if arg == "-" {
		return ""
	}
	return arg
}

func intArg(args []string, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, false
	}
	return n, true
}
