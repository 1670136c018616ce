// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) with public path prefixes.
//   - rayid: assigns a request id (RayID), stores it in Locals for
//     logger.WithRayID and echoes it in the X-Ray-ID response header.
package middleware
