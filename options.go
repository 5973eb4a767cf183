// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import (
	"errors"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Option configures a Func. See NewFunc.
type Option func(*options) error

type options struct {
	logger hclog.Logger
	name   string
}

func newOptions(opts ...Option) (*options, error) {
	o := &options{
		logger: hclog.L(),
	}

	var buildErr error
	for _, opt := range opts {
		if err := opt(o); err != nil {
			buildErr = multierror.Append(buildErr, err)
		}
	}

	return o, buildErr
}

// WithLogger sets the logger used to trace binding and calls. The
// default is hclog.L().
func WithLogger(l hclog.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}

		o.logger = l
		return nil
	}
}

// WithName sets the name reported for the function in logs and errors.
func WithName(n string) Option {
	return func(o *options) error {
		if n == "" {
			return errors.New("name must not be empty")
		}

		o.name = n
		return nil
	}
}
