// Package catalog owns the local offer catalog: the gorm store used by the sync
// worker, plus the read-only browse API and per-user bookmarks.
//
// Routes:
//
//	GET    /offers                          list configurations of available offers
//	GET    /offers/:id                      one configuration
//	GET    /bookmarks                       caller's bookmarks (X-User-Id)
//	POST   /bookmarks/:configurationId      bookmark a configuration
//	DELETE /bookmarks/:configurationId      remove a bookmark
package catalog
