package models

// InventoryType is the VVAIS classifier for what an inventory holds
type InventoryType string

const (
	InventoryTypePhoto    InventoryType = "photo"
	InventoryTypeAudio    InventoryType = "audio"
	InventoryTypeTextual  InventoryType = "textual"
	InventoryTypeVideo    InventoryType = "video"
	InventoryTypeDatabase InventoryType = "database"
)

// StorageTerm is the VVAIS retention classifier
type StorageTerm string

const (
	StorageTermPermanent StorageTerm = "permanent-retention"
	StorageTermLongTerm  StorageTerm = "long-term-retention"
)

// Media is the VVAIS carrier classifier, derived from Inventory.Electronic
type Media string

const (
	MediaPaper      Media = "paper"
	MediaElectronic Media = "electronic"
)

// InventoryTypes lists every accepted inventory type
var InventoryTypes = []InventoryType{
	InventoryTypePhoto,
	InventoryTypeAudio,
	InventoryTypeTextual,
	InventoryTypeVideo,
	InventoryTypeDatabase,
}

// StorageTerms lists every accepted storage term
var StorageTerms = []StorageTerm{
	StorageTermPermanent,
	StorageTermLongTerm,
}

// Media returns the carrier classifier for the inventory
func (i Inventory) Media() Media {
	if i.Electronic {
		return MediaElectronic
	}
	return MediaPaper
}
