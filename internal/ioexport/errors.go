package ioexport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnoccur/pkg/errcode"
	"github.com/gnames/gnoccur/pkg/gnoccur"
)

func FormatError(format string) error {
	msg := "Unknown export format <em>%s</em>, " +
		"expected one of: %s, %s, %s, %s"
	vars := []any{
		format, gnoccur.FormatCSV, gnoccur.FormatJSON,
		gnoccur.FormatSQLite, gnoccur.FormatPostgres,
	}
	return &gn.Error{
		Code: errcode.ExportFormatError,
		Msg:  msg,
		Vars: vars,
	}
}

func CreateFileError(path string, err error) error {
	msg := "Cannot create output file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportCreateFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot create output file: %w", fn, err),
	}
}

func CSVError(path string, err error) error {
	msg := "Cannot write CSV output <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportCSVError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: csv write failed: %w", fn, err),
	}
}

func JSONError(name string, err error) error {
	msg := "Cannot encode table <em>%s</em> as JSON"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportJSONError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: json encode failed: %w", fn, err),
	}
}

func SQLiteError(target string, err error) error {
	msg := "Cannot write SQLite output for <em>%s</em>"
	vars := []any{target}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportSQLiteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: sqlite write failed: %w", fn, err),
	}
}

func CopyError(table string, err error) error {
	msg := "Cannot copy table <em>%s</em> into PostgreSQL"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportCopyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: copy into %s failed: %w", fn, table, err),
	}
}
