package pipeline

import (
	"github.com/gnames/gn"
	"github.com/gnames/gnoccur/pkg/errcode"
)

func emptyInputError() error {
	return &gn.Error{
		Code: errcode.PipelineEmptyInputError,
		Msg:  "No occurrence records found in the configured <em>sources</em>.",
	}
}
