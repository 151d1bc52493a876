package ioingest

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnoccur/pkg/errcode"
)

func OpenError(path string, err error) error {
	msg := "Cannot open snapshot file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IngestOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open snapshot: %w", fn, err),
	}
}

func ReadError(path string, err error) error {
	msg := "Cannot read snapshot file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IngestReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read snapshot: %w", fn, err),
	}
}

func HeaderError(path string, err error) error {
	msg := "Snapshot file <em>%s</em> has an unexpected header"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IngestHeaderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: bad snapshot header: %w", fn, err),
	}
}
