package models

// Item is a single inventory record. The ID is assigned by the storage
// engine on insert and never changes for the lifetime of the record.
type Item struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Location string `json:"location" db:"location"`
	Qty      int    `json:"qty" db:"qty"`
}
