// Package sitemd turns a static website snapshot saved to disk into a
// cleaned, consolidated markdown corpus. It infers the CSS selectors that
// identify a site's main content and boilerplate by scoring DOM containers
// across the whole snapshot, converts each page to markdown using the
// inferred configuration, and merges the results into one document with
// extracted metadata.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/).
package sitemd
