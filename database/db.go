package database

import (
	"database/sql"
	"errors"
)

// DBTX is satisfied by both *sqlx.DB and *sqlx.Tx, so read queries can
// run standalone or inside a caller's transaction.
type DBTX interface {
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// ErrEstoqueInsuficiente is returned by CriarVenda when the product has
// no stock row or fewer units than requested. Nothing is written in
// that case.
var ErrEstoqueInsuficiente = errors.New("estoque insuficiente")
