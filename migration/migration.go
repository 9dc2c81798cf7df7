package migration

import (
	"github.com/Favorjs/e-rights-backend/models"
	"github.com/jinzhu/gorm"
	gormigrate "gopkg.in/gormigrate.v1"
)

// Migration contains all of the incremental migrations that the database
// requires to keep its schema and models up to date with current source code.
func Migration(db *gorm.DB) *gormigrate.Gormigrate {
	return gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		// initial migration
		{
			ID: "202408121030",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&models.Shareholder{}).Error; err != nil {
					return err
				}
				if err := tx.AutoMigrate(&models.Stockbroker{}).Error; err != nil {
					return err
				}
				if err := tx.AutoMigrate(&models.RightsSubmission{}).Error; err != nil {
					return err
				}
				if err := tx.AutoMigrate(&models.AdminUser{}).Error; err != nil {
					return err
				}
				return tx.Model(&models.RightsSubmission{}).
					AddForeignKey(
						"shareholder_id", "shareholders(id)",
						"CASCADE", "CASCADE").Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.DropTableIfExists(
					"rights_submissions",
					"admin_users",
					"stockbrokers",
					"shareholders",
				).Error
			},
		},
		// placeholder back-office credential row
		{
			ID: "202408121031",
			Migrate: func(tx *gorm.DB) error {
				admin := models.AdminUser{
					Username:     "admin",
					PasswordHash: "$2a$10$rQZ8K9mX2nL1vP3qR5sT7u",
					Email:        "admin@apel.com.ng",
					Role:         "admin",
				}
				return tx.
					Where(models.AdminUser{Username: admin.Username}).
					FirstOrCreate(&admin).Error
			},
		},
		// seed the selectable stockbroker list. The loader tool can
		// extend it from the CSCS broker file later.
		{
			ID: "202408121032",
			Migrate: func(tx *gorm.DB) error {
				for _, b := range seedStockbrokers {
					if err := tx.
						Where(models.Stockbroker{Code: b.Code}).
						FirstOrCreate(&b).Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	})
}

var seedStockbrokers = []models.Stockbroker{
	{Name: "APT Securities & Funds Ltd", Code: "APT"},
	{Name: "Cardinalstone Securities Ltd", Code: "CDS"},
	{Name: "CSL Stockbrokers Ltd", Code: "CSL"},
	{Name: "Meristem Stockbrokers Ltd", Code: "MSL"},
	{Name: "Stanbic IBTC Stockbrokers Ltd", Code: "SISL"},
	{Name: "United Capital Securities Ltd", Code: "UCS"},
}
