package entity

import "time"

// CatalogKind представляет вид справочника для выпадающих списков
type CatalogKind string

const (
	CatalogKindEmployee CatalogKind = "employee"
	CatalogKindClient   CatalogKind = "client"
	CatalogKindProject  CatalogKind = "project"
)

// CatalogEntry представляет значение справочника, привязанное к команде.
// Новые значения регистрируются best-effort после записи задачи.
type CatalogEntry struct {
	TeamName  string
	Kind      CatalogKind
	Value     string
	CreatedAt time.Time
}
