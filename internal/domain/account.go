// Package domain holds the record types rendered by the dashboard: accounts,
// inquiries, verifications, reports, telemetry and templates. Types are plain
// values; collections that hand them out return clones so callers never share
// slices or maps with the store that owns them.
package domain

import (
	"slices"
	"time"
)

type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusPending   AccountStatus = "pending"
	AccountStatusSuspended AccountStatus = "suspended"
)

type AccountType string

const (
	AccountTypeIndividual AccountType = "individual"
	AccountTypeBusiness   AccountType = "business"
)

type Address struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	Subdivision string `json:"subdivision,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Country     string `json:"country"`
}

// Account is the identity subject. Inquiries reference it by ID.
type Account struct {
	ID          string        `json:"id"`
	ReferenceID string        `json:"referenceId,omitempty"`
	Name        string        `json:"name"`
	Status      AccountStatus `json:"status"`
	Type        AccountType   `json:"type"`
	Birthdate   string        `json:"birthdate,omitempty"`
	Age         int           `json:"age,omitempty"`
	Address     *Address      `json:"address,omitempty"`
	Tags        []string      `json:"tags"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func (a Account) Clone() Account {
	out := a
	if a.Address != nil {
		addr := *a.Address
		out.Address = &addr
	}
	out.Tags = slices.Clone(a.Tags)
	return out
}
