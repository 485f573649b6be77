package models

// Code is an uploaded contract code blob keyed by its 32-byte hash.
type Code struct {
	Hash []byte `db:"hash"`
	Code []byte `db:"code"`
}
