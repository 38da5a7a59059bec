package models

import (
	"log"

	"github.com/hectohq/hecto_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&User{},
		&Company{},
		&Campaign{},
		&NewsletterStat{},
		&Package{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
