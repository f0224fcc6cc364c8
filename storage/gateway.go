package storage

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/utils"
)

// Snapshot keys, one per logical collection.
const (
	KeyOrders        = "qs_orders"
	KeyCalls         = "qs_calls"
	KeyMenu          = "qs_menu"
	KeyTableLayouts  = "qs_table_layouts"
	KeyStaffSettings = "qs_staff_settings"
)

// Gateway persists JSON snapshots of whole collections, one blob per key.
// Writes are best-effort: in-memory state is the source of truth for the
// running session and a failed write never rolls a mutation back.
type Gateway struct {
	DB *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{DB: db}
}

// Migrate creates the snapshot table.
func (g *Gateway) Migrate() error {
	return g.DB.AutoMigrate(&models.Snapshot{})
}

// Save serializes v and upserts it under key. Failures are logged and
// swallowed.
func (g *Gateway) Save(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		utils.ErrorLogger.Printf("snapshot %s: marshal failed: %v", key, err)
		return
	}

	snap := models.Snapshot{
		Key:       key,
		Value:     string(data),
		UpdatedAt: time.Now(),
	}
	err = g.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&snap).Error
	if err != nil {
		utils.ErrorLogger.Printf("snapshot %s: save failed: %v", key, err)
	}
}

// Load reads the blob stored under key into dest. A missing or unparseable
// snapshot counts as "no prior state": dest is left untouched and false is
// returned.
func (g *Gateway) Load(key string, dest interface{}) bool {
	var snap models.Snapshot
	if err := g.DB.First(&snap, "key = ?", key).Error; err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(snap.Value), dest); err != nil {
		utils.ErrorLogger.Printf("snapshot %s: corrupt blob dropped: %v", key, err)
		return false
	}
	return true
}
