// Package model defines domain types for the lima finance prototype.
package model

// Bank is a bank that can be linked from the bank-selection screen.
type Bank struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Color string `toml:"color"` // hex color used for the bank badge
}

// Catalog is the ordered list of banks offered for linking.
type Catalog []Bank

// DefaultBanks is the catalog used when the config does not define one.
var DefaultBanks = Catalog{
	{ID: "ozon", Name: "Озон банк", Color: "#2563EB"},
	{ID: "tbank", Name: "Т-Банк", Color: "#EAB308"},
	{ID: "vtb", Name: "ВТБ", Color: "#1D4ED8"},
	{ID: "alfa", Name: "Альфа-Банк", Color: "#DC2626"},
	{ID: "sber", Name: "Сбер", Color: "#16A34A"},
}

// Lookup returns the bank with the given id.
func (c Catalog) Lookup(id string) (Bank, bool) {
	if id == "" {
		return Bank{}, false
	}
	for _, b := range c {
		if b.ID == id {
			return b, true
		}
	}
	return Bank{}, false
}

// IDs returns the bank ids in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c))
	for i, b := range c {
		ids[i] = b.ID
	}
	return ids
}
