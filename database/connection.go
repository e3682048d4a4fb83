package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the PostgreSQL connection from the DATABASE_URL DSN. The
// bot cannot run without durable session state, so a failure here is fatal
// for the caller.
func Connect(databaseURL string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return err
	}

	log.Println("✅ Database connected successfully!")
	return nil
}
