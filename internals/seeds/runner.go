package seeds

import (
	"log"

	"gorm.io/gorm"

	users "readquest_backend/internals/seeds/users"
)

// RunAllSeeds runs the idempotent bootstrap seeds. Enabled with RUN_SEEDS=true.
func RunAllSeeds(db *gorm.DB) {
	if err := users.SeedAdminUser(db); err != nil {
		log.Printf("❌ Admin seed failed: %v", err)
	}
}
