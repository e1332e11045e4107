package entity

import (
	"strings"

	"github.com/imxdigital/producao-tracker/constants"
)

// FilterCriteria carries the caller-supplied filter state for one page fetch.
// All text filters are case-insensitive substring matches.
type FilterCriteria struct {
	NumeroFO  string        `json:"numero_fo,omitempty"`
	NumeroORC string        `json:"numero_orc,omitempty"`
	Campanha  string        `json:"campanha,omitempty"`
	Cliente   string        `json:"cliente,omitempty"`
	Item      string        `json:"item,omitempty"`
	Codigo    string        `json:"codigo,omitempty"`
	Tab       constants.Tab `json:"tab,omitempty"`
	Page      int           `json:"page"`
}

// HasDirectFilters reports whether any direct job-column filter is set.
// Item/code terms are not direct filters; they restrict through the item
// search instead.
func (c FilterCriteria) HasDirectFilters() bool {
	return strings.TrimSpace(c.NumeroFO) != "" ||
		strings.TrimSpace(c.NumeroORC) != "" ||
		strings.TrimSpace(c.Campanha) != "" ||
		strings.TrimSpace(c.Cliente) != ""
}

// HasItemSearch reports whether an item description or code term is set.
func (c FilterCriteria) HasItemSearch() bool {
	return strings.TrimSpace(c.Item) != "" || strings.TrimSpace(c.Codigo) != ""
}

// SearchTerms returns the non-empty item/code terms, trimmed.
func (c FilterCriteria) SearchTerms() []string {
	var terms []string
	if t := strings.TrimSpace(c.Item); t != "" {
		terms = append(terms, t)
	}
	if t := strings.TrimSpace(c.Codigo); t != "" {
		terms = append(terms, t)
	}
	return terms
}
