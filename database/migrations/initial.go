package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/pkg/migration"
)

func init() {
	migration.Register("20260101000000_create_user_table", table(&models.User{}))
	migration.Register("20260101000001_create_venue_table", table(&models.Venue{}))
	migration.Register("20260101000002_create_orders_table", table(&models.Order{}))
	migration.Register("20260101000003_create_message_table", table(&models.Message{}))
	migration.Register("20260101000004_create_news_table", table(&models.News{}))
}

// createTable migrates one model up and drops its table down.
type createTable struct {
	model interface{}
}

func table(model interface{}) *createTable {
	return &createTable{model: model}
}

func (m *createTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(m.model)
}

func (m *createTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(m.model)
}

// Models lists every table model in creation order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Venue{},
		&models.Order{},
		&models.Message{},
		&models.News{},
	}
}
