// Package flickr provides a client for the Flickr REST API covering the
// two calls lenscout needs: keyword photo search and per-photo EXIF lookup.
// All requests go through a driven.APIFetcher, so responses are cached and
// paced by the caller's fetcher.
package flickr
