package ioschema

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnoccur/pkg/errcode"
)

func NotConnectedError() error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database is not connected, call Connect first",
		Err:  fmt.Errorf("from %s: operator is not connected", fn),
	}
}

func GORMConnectionError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  "Cannot open GORM session over the database pool",
		Err:  fmt.Errorf("from %s: gorm open failed: %w", fn, err),
	}
}

func CreateSchemaError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  "Cannot create database schema",
		Err:  fmt.Errorf("from %s: auto-migrate failed: %w", fn, err),
	}
}

func CollationError(table, column string, err error) error {
	msg := "Cannot set collation on <em>%s.%s</em>"
	vars := []any{table, column}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: collation on %s.%s failed: %w",
			fn, table, column, err),
	}
}
