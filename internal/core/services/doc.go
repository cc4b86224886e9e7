// Package services implements the driving port interfaces.
// Services hold the catalog refresh and query logic and the EXIF report
// pipeline, and orchestrate calls to driven ports (adapters).
package services
