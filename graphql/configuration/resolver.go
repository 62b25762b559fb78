/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package configuration

import (
	"context"
)

// ResolverContext is given to a field resolver.
type ResolverContext struct {
	// Context of the running request
	Context context.Context

	// Parent is the value of the object that contains the resolved field.
	Parent interface{}

	// Arguments given to the field
	Arguments map[string]interface{}

	// Field is the configuration of the resolved field.
	Field *ObjectFieldConfiguration
}

// FieldResolver resolves the value of a field.
type FieldResolver func(rc *ResolverContext) (interface{}, error)

// PureFieldResolver resolves the value of a field from the parent value and the arguments only.
type PureFieldResolver func(parent interface{}, args map[string]interface{}) (interface{}, error)

// SubscribeResolver creates the source event stream of a subscription field.
type SubscribeResolver func(rc *ResolverContext) (<-chan interface{}, error)

// FieldMiddleware wraps a FieldResolver.
type FieldMiddleware func(next FieldResolver) FieldResolver

// ResultFormatter transforms the value produced by a resolver.
type ResultFormatter func(rc *ResolverContext, result interface{}) (interface{}, error)

// MiddlewareConfiguration is a middleware applied to a field.
type MiddlewareConfiguration struct {
	Middleware FieldMiddleware

	// Key identifies the middleware. Non-repeatable middleware with the same key is applied once.
	Key string

	// IsRepeatable allows the middleware to be applied more than once.
	IsRepeatable bool
}

func (m *MiddlewareConfiguration) repeatableKey() (string, bool) {
	return m.Key, m.IsRepeatable
}

// ResultFormatterConfiguration is a result formatter applied to a field.
type ResultFormatterConfiguration struct {
	Formatter ResultFormatter

	// Key identifies the formatter. Non-repeatable formatters with the same key are applied once.
	Key string

	// IsRepeatable allows the formatter to be applied more than once.
	IsRepeatable bool
}

func (f *ResultFormatterConfiguration) repeatableKey() (string, bool) {
	return f.Key, f.IsRepeatable
}

// fieldPipeline holds the middleware and result formatters of an object field or an interface
// field.
type fieldPipeline struct {
	middleware        []*MiddlewareConfiguration
	formatters        []*ResultFormatterConfiguration
	middlewareCleaned bool
	formattersCleaned bool
}

// MiddlewareConfigurations returns the middleware applied to the field in order.
func (p *fieldPipeline) MiddlewareConfigurations() []*MiddlewareConfiguration {
	return p.middleware
}

// ResultFormatters returns the result formatters applied to the field in order.
func (p *fieldPipeline) ResultFormatters() []*ResultFormatterConfiguration {
	return p.formatters
}

func (p *fieldPipeline) addMiddleware(m *MiddlewareConfiguration) {
	p.middleware = append(p.middleware, m)
	p.middlewareCleaned = false
}

func (p *fieldPipeline) addResultFormatter(f *ResultFormatterConfiguration) {
	p.formatters = append(p.formatters, f)
	p.formattersCleaned = false
}

func (p *fieldPipeline) cleanRepeatableConfigurations() {
	p.middleware = cleanRepeatable(p.middleware, &p.middlewareCleaned)
	p.formatters = cleanRepeatable(p.formatters, &p.formattersCleaned)
}

func (p *fieldPipeline) copyPipelineTo(target *fieldPipeline) {
	target.middleware = nil
	if len(p.middleware) > 0 {
		target.middleware = append([]*MiddlewareConfiguration(nil), p.middleware...)
	}
	target.formatters = nil
	if len(p.formatters) > 0 {
		target.formatters = append([]*ResultFormatterConfiguration(nil), p.formatters...)
	}
	target.middlewareCleaned = p.middlewareCleaned
	target.formattersCleaned = p.formattersCleaned
}

func (p *fieldPipeline) mergePipelineInto(target *fieldPipeline) {
	if len(p.middleware) > 0 {
		target.middleware = append(target.middleware, p.middleware...)
		target.middlewareCleaned = false
	}
	if len(p.formatters) > 0 {
		target.formatters = append(target.formatters, p.formatters...)
		target.formattersCleaned = false
	}
}

// compose wraps resolver with the middleware and the result formatters. The first middleware is
// the outermost one. Result formatters run in order on the value returned by resolver.
func (p *fieldPipeline) compose(resolver FieldResolver) FieldResolver {
	if len(p.formatters) > 0 {
		formatters := make([]ResultFormatter, len(p.formatters))
		for i, f := range p.formatters {
			formatters[i] = f.Formatter
		}
		next := resolver
		resolver = func(rc *ResolverContext) (interface{}, error) {
			result, err := next(rc)
			if err != nil {
				return nil, err
			}
			for _, format := range formatters {
				result, err = format(rc, result)
				if err != nil {
					return nil, err
				}
			}
			return result, nil
		}
	}

	for i := len(p.middleware) - 1; i >= 0; i-- {
		resolver = p.middleware[i].Middleware(resolver)
	}
	return resolver
}
