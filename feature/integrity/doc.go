// Package integrity provides catalog health checks.
//
// # Checks Provided
//
//   - Schema: Validates that the connected database schema matches the catalog models (columns, types).
//   - Catalog: Counts offers and configurations, and how many configurations are malformed (memory or storage 0).
//   - Storage: Verifies the snapshot archive bucket exists and counts archived files.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/malformed : Runs the catalog check.
//   - GET /integrity/storage : Runs the storage check (404 when the archive is disabled).
package integrity
