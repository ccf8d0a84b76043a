package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	sqlmysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-reservations/models"
	"hotel-reservations/utils"
)

var DB *gorm.DB

func newDSNConfig(user, pass, addr, dbName string) *sqlmysql.Config {
	cfg := sqlmysql.NewConfig()
	cfg.User = user
	cfg.Passwd = pass
	cfg.Net = "tcp"
	cfg.Addr = addr
	cfg.DBName = dbName
	cfg.ParseTime = true
	// DATE columns round-trip as UTC midnights; date rules compare calendar
	// days and must not shift with the server's zone.
	cfg.Loc = time.UTC
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg
}

// mysqlDSNFromURL converts a mysql:// URL into the DSN format the driver
// expects.
func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid database url: %w", err)
	}

	user := ""
	pass := ""
	if u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}

	host := u.Host
	if !strings.Contains(host, ":") {
		host += ":3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("database url is missing the database name")
	}

	return newDSNConfig(user, pass, host, dbName).FormatDSN(), nil
}

func resolveMySQLDSN() (string, error) {
	if raw := os.Getenv("MYSQL_URL"); raw != "" {
		return mysqlDSNFromURL(raw)
	}
	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		return mysqlDSNFromURL(raw)
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASSWORD", "secret")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	name := utils.EnvOrDefault("DB_NAME", "hotel_reservations")

	return newDSNConfig(user, pass, host+":"+port, name).FormatDSN(), nil
}

func ConnectDatabase() {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		log.Fatalf("❌ Database configuration error: %v", err)
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Reservation{},
	); err != nil {
		log.Fatalf("❌ Failed to migrate database: %v", err)
	}

	DB = db
	log.Println("✅ Database connected and migrated")
}

// SeedDatabase creates the admin account and a small starter room inventory
// when the tables are empty.
func SeedDatabase(db *gorm.DB) {
	adminEmail := utils.EnvOrDefault("ADMIN_EMAIL", "admin@hotel.local")

	var count int64
	db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count)
	if count == 0 {
		hashed, err := utils.HashPassword(utils.EnvOrDefault("ADMIN_PASSWORD", "admin123"))
		if err != nil {
			log.Printf("⚠️ Failed to hash admin password: %v", err)
		} else {
			admin := models.User{
				Email:    adminEmail,
				Password: hashed,
				Enabled:  true,
				Role:     models.RoleAdmin,
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("⚠️ Failed to seed admin user: %v", err)
			} else {
				log.Printf("✅ Seeded admin user %s", adminEmail)
			}
		}
	}

	db.Model(&models.Room{}).Count(&count)
	if count == 0 {
		rooms := []models.Room{
			{RoomNumber: 101, Type: models.RoomTypeSingle, PricePerNight: 75.00, Capacity: 1, Description: "Cozy single room with a city view"},
			{RoomNumber: 102, Type: models.RoomTypeDouble, PricePerNight: 120.00, Capacity: 2, Description: "Double room with queen-size bed"},
			{RoomNumber: 201, Type: models.RoomTypeSuite, PricePerNight: 220.00, Capacity: 4, Description: "Suite with separate living area"},
			{RoomNumber: 301, Type: models.RoomTypeDeluxe, PricePerNight: 310.00, Capacity: 2, Description: "Deluxe room with balcony and sea view"},
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.Printf("⚠️ Failed to seed rooms: %v", err)
		} else {
			log.Printf("✅ Seeded %d starter rooms", len(rooms))
		}
	}
}
