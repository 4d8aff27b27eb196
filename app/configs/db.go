package configs

import (
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// OpenConnection dials MySQL with a retry loop so the app survives a
// database that comes up after it does. TranslateError is on so
// duplicate-key violations surface as gorm.ErrDuplicatedKey, which the
// wishlist toggle depends on.
func OpenConnection() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		LoadENV.DBUser,
		LoadENV.DBPassword,
		LoadENV.DBHost,
		LoadENV.DBPort,
		LoadENV.DBName,
	)

	maxRetries := 10
	retryDelay := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				if pingErr = sqlDB.Ping(); pingErr == nil {
					return db, nil
				}
			}
			log.Printf("Failed to ping database (attempt %d/%d): %v. Retrying in %v...", i+1, maxRetries, pingErr, retryDelay)
		} else {
			log.Printf("Failed to open connection (attempt %d/%d): %v. Retrying in %v...", i+1, maxRetries, err, retryDelay)
		}
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to the database after %d retries", maxRetries)
}
