// Package client holds the profile of the issuing company shown on every
// printed document. Exactly one profile exists.
package client

import "time"

const DefaultCompanyName = "My Company"

type Client struct {
	CompanyName string
	LogoKey     string
	Address     string
	Email       string
	PhoneNumber string
	UpdatedAt   *time.Time
}
