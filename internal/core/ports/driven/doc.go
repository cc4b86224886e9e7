// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ResponseCache: Persistent request-identity to response store
//   - PageFetcher: Cached, paced HTML page retrieval
//   - APIFetcher: Cached, paced parameterised JSON retrieval
//   - CatalogScraper: Turns one catalog source into lens entries
//   - CatalogStore: Lens and example photo persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PhotoAPI: Keyword search and EXIF lookup. Without it, EXIF reports are disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
