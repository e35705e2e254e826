package model

import "time"

// Column names a multi-valued entity field, using the corpus CSV header names.
type Column string

const (
	Keywords      Column = "kws"
	Locations     Column = "loc"
	Organizations Column = "org"
	People        Column = "per"
)

// EntityColumns lists the four entity columns in leaderboard order.
var EntityColumns = []Column{Keywords, Locations, People, Organizations}

// ParseColumn accepts either the CSV header name or a readable alias.
func ParseColumn(s string) (Column, bool) {
	switch s {
	case "kws", "keywords":
		return Keywords, true
	case "loc", "locations":
		return Locations, true
	case "org", "organizations":
		return Organizations, true
	case "per", "people", "persons":
		return People, true
	}
	return "", false
}

// Article is one corpus record. Records are never mutated after load.
type Article struct {
	Date          time.Time `json:"date"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	URL           string    `json:"url,omitempty"`
	Keywords      []string  `json:"kws"`
	Locations     []string  `json:"loc"`
	Organizations []string  `json:"org"`
	People        []string  `json:"per"`
}

// Entities returns the entity list stored under col, or nil for an unknown column.
func (a Article) Entities(col Column) []string {
	switch col {
	case Keywords:
		return a.Keywords
	case Locations:
		return a.Locations
	case Organizations:
		return a.Organizations
	case People:
		return a.People
	}
	return nil
}
