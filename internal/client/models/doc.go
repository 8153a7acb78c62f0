// Package models defines the data exchanged between the client and the
// paragraph backend.
package models
