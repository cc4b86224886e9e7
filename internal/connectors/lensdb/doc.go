// Package lensdb scrapes lens-db.com catalog listings.
//
// A catalog source is one listing page covering a single mount family.
// Each listing row becomes one lens record; the lens detail page is then
// fetched for up to three example photo links. Pages are retrieved
// through a driven.PageFetcher, so they are cached and paced.
package lensdb
