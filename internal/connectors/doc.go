// Package connectors groups the clients for the upstream sites lenscout
// reads from. Each subpackage knows one site:
//
//   - flickr: keyword photo search and per-photo EXIF lookup
//   - lensdb: lens-db.com catalog listings and lens detail pages
//
// Connectors never talk to the network directly. They receive a fetcher
// port, so every response is cached and paced by the caller.
package connectors
