package sitemd

import (
	"context"
	"time"
)

// Site represents a website snapshot registered for conversion.
type Site struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	InputDir   string    `json:"inputDir"`
	ConfigPath string    `json:"configPath"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if s.InputDir == "" {
		return Errorf(EINVALID, "site input directory required")
	}
	return nil
}

// SiteService represents a service for managing registered sites.
type SiteService interface {
	// CreateSite creates a new site.
	CreateSite(ctx context.Context, site *Site) error

	// FindSiteByID retrieves a site by ID.
	// Returns ENOTFOUND if site does not exist.
	FindSiteByID(ctx context.Context, id string) (*Site, error)

	// FindSites retrieves sites matching the filter.
	FindSites(ctx context.Context, filter SiteFilter) ([]*Site, error)

	// DeleteSite permanently removes a site and all associated documents.
	// Returns ENOTFOUND if site does not exist.
	DeleteSite(ctx context.Context, id string) error
}

// SiteFilter represents a filter for FindSites.
type SiteFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
