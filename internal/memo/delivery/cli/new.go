package cli

import (
	"errors"
	"io"

	"memo-manager/internal/memo"
	"memo-manager/pkg/log"
)

// UseCaseFactory builds a controller for the terminal view.
type UseCaseFactory func(view memo.View) memo.UseCase

// Options configures the terminal delivery.
type Options struct {
	In  io.Reader
	Out io.Writer
	// AssumeYes answers every confirmation with yes.
	AssumeYes bool
}

// Handler runs one memo operation per call and prints the resulting list.
type Handler struct {
	l   log.Logger
	uc  memo.UseCase
	out io.Writer
}

// New creates a terminal handler with its own controller.
func New(l log.Logger, factory UseCaseFactory, opt Options) (*Handler, error) {
	if l == nil {
		return nil, errors.New("logger is required")
	}
	if factory == nil {
		return nil, errors.New("use case factory is required")
	}
	if opt.In == nil || opt.Out == nil {
		return nil, errors.New("input and output are required")
	}

	return &Handler{
		l:   l,
		uc:  factory(newTermView(opt.In, opt.Out, opt.AssumeYes)),
		out: opt.Out,
	}, nil
}
