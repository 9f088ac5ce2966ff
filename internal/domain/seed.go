package domain

import (
	"encoding/json"
	"net/url"
)

type seedUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type seedData struct {
	Mode         string             `json:"mode"`
	Users        []seedUser         `json:"users"`
	CurrentUser  string             `json:"currentUser"`
	Transactions []json.RawMessage  `json:"transactions"`
	Budgets      []json.RawMessage  `json:"budgets"`
	Goals        []json.RawMessage  `json:"goals"`
	Clients      []json.RawMessage  `json:"clients"`
	Categories   []string           `json:"categories"`
	Rates        map[string]float64 `json:"rates"`
}

// DefaultData is the blob every new account starts with: personal mode, a
// single "self" user with a deterministic avatar, empty ledgers, the starter
// categories and the fixed currency-rate table. The shape is a client-side
// convention, not a schema — the server never validates it afterwards.
func DefaultData(username string) json.RawMessage {
	seed := seedData{
		Mode: "personal",
		Users: []seedUser{{
			ID:    "u1",
			Name:  username,
			Photo: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(username),
		}},
		CurrentUser:  "u1",
		Transactions: []json.RawMessage{},
		Budgets:      []json.RawMessage{},
		Goals:        []json.RawMessage{},
		Clients:      []json.RawMessage{},
		Categories:   []string{"Food", "Transport", "Shopping", "Entertainment", "Health", "Salary"},
		Rates:        map[string]float64{"USD": 135.50, "EUR": 145.80, "DZD": 1},
	}
	b, _ := json.Marshal(seed)
	return b
}
