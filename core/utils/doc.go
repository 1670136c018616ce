// Package utils provides small helpers shared by the catalog-sync packages:
// int16 parsing with the catalog's numeric semantics and generic slice chunking
// for batched marketplace requests.
package utils
