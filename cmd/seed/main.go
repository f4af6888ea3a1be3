package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

var marketplaces = []string{"tiktok_shop", "shopee", "tokopedia", "lazada"}

var catalog = []models.CreateProductRequest{
	{ProductCode: "DBS-001", ProductName: "Gamis Premium Navy", Category: "gamis", Size: "M", Color: "navy", Price: 185000, Cost: 95000, StockQuantity: 120, MinStock: 20},
	{ProductCode: "DBS-002", ProductName: "Gamis Premium Maroon", Category: "gamis", Size: "L", Color: "maroon", Price: 185000, Cost: 95000, StockQuantity: 85, MinStock: 20},
	{ProductCode: "DBS-003", ProductName: "Hijab Voal Dusty Pink", Category: "hijab", Size: "", Color: "dusty pink", Price: 45000, Cost: 18000, StockQuantity: 300, MinStock: 50},
	{ProductCode: "DBS-004", ProductName: "Hijab Voal Black", Category: "hijab", Size: "", Color: "black", Price: 45000, Cost: 18000, StockQuantity: 12, MinStock: 50},
	{ProductCode: "DBS-005", ProductName: "Tunik Katun Sage", Category: "tunik", Size: "XL", Color: "sage", Price: 125000, Cost: 62000, StockQuantity: 0, MinStock: 15},
	{ProductCode: "DBS-006", ProductName: "Khimar Ceruty Mocca", Category: "khimar", Size: "", Color: "mocca", Price: 95000, Cost: 41000, StockQuantity: 64, MinStock: 15},
}

// main seeds two months of realistic demo data so the dashboard endpoints
// return meaningful month-over-month trends.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("D'BUSANA DASHBOARD - Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	ctx := context.Background()

	db, err := config.OpenDatabase(ctx)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	log.Println("✓ Connected to database")

	if err := db.Gorm.AutoMigrate(
		&models.SalesData{},
		&models.ProductData{},
		&models.AdvertisingSettlement{},
		&models.AffiliateEndorsement{},
		&models.Expense{},
		&models.ReturnsCancellation{},
		&models.Supplier{},
		&models.PurchaseOrder{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	rng := rand.New(rand.NewSource(7))
	now := time.Now().UTC()
	curMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonth := curMonth.AddDate(0, -1, 0)

	seedProducts(db)
	supplierID := seedSuppliers(db)
	seedPurchaseOrders(db, supplierID, prevMonth)

	// Bulk-load sales rows over COPY; far faster than row-at-a-time inserts.
	rows := buildSalesRows(rng, prevMonth, 420)
	rows = append(rows, buildSalesRows(rng, curMonth, 510)...)
	copied, err := db.Pool.CopyFrom(ctx,
		pgx.Identifier{"sales_data"},
		[]string{"id", "order_id", "seller_sku", "product_name", "color", "size", "marketplace", "quantity", "order_amount", "total_revenue", "settlement_amount", "hpp", "created_time", "created_at", "updated_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		log.Fatalf("Sales bulk load failed: %v", err)
	}
	log.Printf("✓ Loaded %d sales rows", copied)

	seedAdvertising(db, rng, prevMonth, curMonth)
	seedAffiliate(db, prevMonth, curMonth)
	seedExpenses(db, prevMonth, curMonth)
	seedReturns(db, rng, prevMonth, curMonth)

	fmt.Println()
	fmt.Println("✅ Demo data ready. Start the server with: go run main.go")
}

func seedProducts(db *config.Database) {
	for _, p := range catalog {
		product := models.ProductData{
			ID:            uuid.Must(uuid.NewV7()).String(),
			ProductCode:   p.ProductCode,
			ProductName:   p.ProductName,
			Category:      p.Category,
			Size:          p.Size,
			Color:         p.Color,
			Price:         p.Price,
			Cost:          p.Cost,
			StockQuantity: p.StockQuantity,
			MinStock:      p.MinStock,
		}
		if err := db.Gorm.Create(&product).Error; err != nil {
			log.Fatalf("Failed to seed product %s: %v", p.ProductCode, err)
		}
	}
	log.Printf("✓ Seeded %d products", len(catalog))
}

func seedSuppliers(db *config.Database) string {
	supplier := models.Supplier{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Name:        "CV Garmen Sejahtera",
		ContactName: "Pak Hendra",
		Phone:       "+62 812-3456-7890",
		Address:     "Jl. Industri No. 14, Bandung",
	}
	if err := db.Gorm.Create(&supplier).Error; err != nil {
		log.Fatalf("Failed to seed supplier: %v", err)
	}
	log.Println("✓ Seeded supplier")
	return supplier.ID
}

func seedPurchaseOrders(db *config.Database, supplierID string, prevMonth time.Time) {
	received := prevMonth.AddDate(0, 0, 12)
	orders := []models.PurchaseOrder{
		{
			ID:         uuid.Must(uuid.NewV7()).String(),
			PONumber:   "PO-2025-0001",
			SupplierID: supplierID,
			Status:     "received",
			TotalCost:  18500000,
			OrderDate:  prevMonth.AddDate(0, 0, 3),
			ReceivedAt: &received,
		},
		{
			ID:         uuid.Must(uuid.NewV7()).String(),
			PONumber:   "PO-2025-0002",
			SupplierID: supplierID,
			Status:     "ordered",
			TotalCost:  9200000,
			OrderDate:  prevMonth.AddDate(0, 1, 5),
		},
	}
	for _, po := range orders {
		if err := db.Gorm.Create(&po).Error; err != nil {
			log.Fatalf("Failed to seed purchase order %s: %v", po.PONumber, err)
		}
	}
	log.Printf("✓ Seeded %d purchase orders", len(orders))
}

func buildSalesRows(rng *rand.Rand, monthStart time.Time, count int) [][]any {
	rows := make([][]any, 0, count)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()
	for i := 0; i < count; i++ {
		p := catalog[rng.Intn(len(catalog))]
		qty := 1 + rng.Intn(3)
		gmv := p.Price * float64(qty)
		revenue := gmv * (0.92 + rng.Float64()*0.08)
		settlement := revenue * (0.82 + rng.Float64()*0.08)
		hpp := p.Cost * float64(qty)
		createdTime := monthStart.
			AddDate(0, 0, rng.Intn(daysInMonth)).
			Add(time.Duration(rng.Intn(86400)) * time.Second)
		rows = append(rows, []any{
			uuid.Must(uuid.NewV7()).String(),
			fmt.Sprintf("ORD-%s-%05d", monthStart.Format("200601"), i+1),
			p.ProductCode,
			p.ProductName,
			p.Color,
			p.Size,
			marketplaces[rng.Intn(len(marketplaces))],
			qty,
			gmv,
			revenue,
			settlement,
			hpp,
			createdTime,
			time.Now().UTC(),
			time.Now().UTC(),
		})
	}
	return rows
}

func seedAdvertising(db *config.Database, rng *rand.Rand, months ...time.Time) {
	total := 0
	for _, month := range months {
		for i := 0; i < 8; i++ {
			s := models.AdvertisingSettlement{
				ID:               uuid.Must(uuid.NewV7()).String(),
				OrderID:          fmt.Sprintf("ADV-%s-%03d", month.Format("200601"), i+1),
				SettlementAmount: 150000 + rng.Float64()*450000,
				SettlementPeriod: month.Format("2006-01"),
				AccountName:      "dbusana_official",
				Currency:         "IDR",
				OrderCreatedTime: month.AddDate(0, 0, rng.Intn(25)),
				OrderSettledTime: month.AddDate(0, 0, rng.Intn(25)+2),
			}
			if err := db.Gorm.Create(&s).Error; err != nil {
				log.Fatalf("Failed to seed advertising settlement: %v", err)
			}
			total++
		}
	}
	log.Printf("✓ Seeded %d advertising settlements", total)
}

func seedAffiliate(db *config.Database, months ...time.Time) {
	total := 0
	for _, month := range months {
		campaigns := []models.AffiliateEndorsement{
			{CampaignName: "Ramadan Push " + month.Format("Jan"), InfluencerName: "Kak Nayla", Platform: "tiktok", EndorseFee: 2500000, ActualSales: 11800000, PaidCommission: 590000},
			{CampaignName: "Livestream " + month.Format("Jan"), InfluencerName: "Bunda Rias", Platform: "shopee", EndorseFee: 1200000, ActualSales: 4300000, PaidCommission: 215000},
		}
		for _, c := range campaigns {
			c.ID = uuid.Must(uuid.NewV7()).String()
			c.CreatedAt = month.AddDate(0, 0, 6)
			if err := db.Gorm.Create(&c).Error; err != nil {
				log.Fatalf("Failed to seed endorsement: %v", err)
			}
			total++
		}
	}
	log.Printf("✓ Seeded %d affiliate endorsements", total)
}

func seedExpenses(db *config.Database, months ...time.Time) {
	total := 0
	for _, month := range months {
		expenses := []models.Expense{
			{Category: models.ExpenseCategorySalaries, Description: "Gaji tim packing dan admin", Amount: 14500000, ExpenseDate: month.AddDate(0, 0, 24)},
			{Category: "operational", Description: "Sewa gudang", Amount: 3500000, ExpenseDate: month.AddDate(0, 0, 1)},
			{Category: "packaging", Description: "Polymailer dan box", Amount: 820000, ExpenseDate: month.AddDate(0, 0, 10)},
		}
		for _, e := range expenses {
			e.ID = uuid.Must(uuid.NewV7()).String()
			if err := db.Gorm.Create(&e).Error; err != nil {
				log.Fatalf("Failed to seed expense: %v", err)
			}
			total++
		}
	}
	log.Printf("✓ Seeded %d expenses", total)
}

func seedReturns(db *config.Database, rng *rand.Rand, months ...time.Time) {
	reasons := []string{"ukuran tidak sesuai", "warna beda dari foto", "berubah pikiran", "barang cacat"}
	types := []string{"return", "cancel"}
	total := 0
	for _, month := range months {
		for i := 0; i < 6; i++ {
			r := models.ReturnsCancellation{
				ID:             uuid.Must(uuid.NewV7()).String(),
				OrderID:        fmt.Sprintf("ORD-%s-%05d", month.Format("200601"), rng.Intn(400)+1),
				Type:           types[rng.Intn(len(types))],
				Reason:         reasons[rng.Intn(len(reasons))],
				ReturnedAmount: 45000 + rng.Float64()*185000,
				RestockStatus:  "pending",
				ReturnDate:     month.AddDate(0, 0, rng.Intn(25)),
			}
			if err := db.Gorm.Create(&r).Error; err != nil {
				log.Fatalf("Failed to seed return: %v", err)
			}
			total++
		}
	}
	log.Printf("✓ Seeded %d returns/cancellations", total)
}
