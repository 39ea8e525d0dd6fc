package persistence

import (
	"context"
	"fmt"
	"time"

	"tagtube/domain/model"
	"tagtube/infrastructure/configuration"
	"tagtube/infrastructure/utils"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabase opens a pooled GORM connection for the configured vendor
// and verifies it with a ping.
func NewDatabase(cfg configuration.Database) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: utils.GetCurrentTime,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Vendor, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Ping(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func Dialector(cfg configuration.Database) (gorm.Dialector, error) {
	switch cfg.Vendor {
	case configuration.VendorPostgres, "":
		return postgres.Open(PostgresDSN(cfg.Psql)), nil
	case configuration.VendorMySQL:
		return mysql.Open(MySQLDSN(cfg.MySql)), nil
	}
	return nil, fmt.Errorf("unsupported database vendor %q", cfg.Vendor)
}

func PostgresDSN(db configuration.Db) string {
	sslMode := db.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		db.Host, db.User, db.Password, db.Name, db.Port, sslMode)
}

func MySQLDSN(db configuration.Db) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		db.User, db.Password, db.Host, db.Port, db.Name)
}

// Migrate creates or updates every table, the reserved ones included.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Access{},
		&model.Search{},
		&model.Video{},
		&model.CartItem{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
