package config

import (
	"log"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Pricing   PricingConfig
	Coupons   map[string]int
	Dashboard DashboardConfig
	Auth      AuthConfig
}

type AppConfig struct {
	Env string
}

type PricingConfig struct {
	TaxRate           float64
	ShippingFee       float64
	FreeShipThreshold float64
}

type DashboardConfig struct {
	LowStockThreshold int
	TopSellingCount   int
	RecentOrdersCount int
}

type AuthConfig struct {
	DemoEmail    string
	DemoPassword string
	LoginDelayMS int
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PRICING_TAX_RATE", 0.08)
	viper.SetDefault("PRICING_SHIPPING_FEE", 10.0)
	viper.SetDefault("PRICING_FREE_SHIP_THRESHOLD", 100.0)
	viper.SetDefault("COUPON_CODES", "SAVE10:10,SAVE20:20")
	viper.SetDefault("DASHBOARD_LOW_STOCK_THRESHOLD", 10)
	viper.SetDefault("DASHBOARD_TOP_SELLING_COUNT", 5)
	viper.SetDefault("DASHBOARD_RECENT_ORDERS_COUNT", 5)
	viper.SetDefault("AUTH_DEMO_EMAIL", "admin@example.com")
	viper.SetDefault("AUTH_DEMO_PASSWORD", "admin123")
	viper.SetDefault("AUTH_LOGIN_DELAY_MS", 500)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		App: AppConfig{
			Env: viper.GetString("APP_ENV"),
		},
		Pricing: PricingConfig{
			TaxRate:           viper.GetFloat64("PRICING_TAX_RATE"),
			ShippingFee:       viper.GetFloat64("PRICING_SHIPPING_FEE"),
			FreeShipThreshold: viper.GetFloat64("PRICING_FREE_SHIP_THRESHOLD"),
		},
		Coupons: parseCoupons(viper.GetString("COUPON_CODES")),
		Dashboard: DashboardConfig{
			LowStockThreshold: viper.GetInt("DASHBOARD_LOW_STOCK_THRESHOLD"),
			TopSellingCount:   viper.GetInt("DASHBOARD_TOP_SELLING_COUNT"),
			RecentOrdersCount: viper.GetInt("DASHBOARD_RECENT_ORDERS_COUNT"),
		},
		Auth: AuthConfig{
			DemoEmail:    viper.GetString("AUTH_DEMO_EMAIL"),
			DemoPassword: viper.GetString("AUTH_DEMO_PASSWORD"),
			LoginDelayMS: viper.GetInt("AUTH_LOGIN_DELAY_MS"),
		},
	}
}

// parseCoupons turns a "CODE:PERCENT,CODE:PERCENT" list into the coupon
// book. Malformed pairs and non-positive percentages are dropped.
func parseCoupons(raw string) map[string]int {
	book := make(map[string]int)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		percent, err := strconv.Atoi(parts[1])
		if err != nil || percent <= 0 {
			continue
		}
		book[parts[0]] = percent
	}
	return book
}
