// Package models defines the persisted catalog: offers, their configurations and
// user bookmarks. Deleting an offer cascades to its configurations, and deleting a
// configuration cascades to its bookmarks.
package models
