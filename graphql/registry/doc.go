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

// Package registry completes a set of type configurations into a TypeSystem.
//
// Configurations are registered with Register and completed with Complete which runs the
// following phases:
//
//  1. Run the ApplyOnCreate and the ApplyOnBeforeNaming tasks.
//  2. Merge every type extension into the type it extends and infer the fields of object types
//     with implicit field binding.
//  3. Collapse the applications of non-repeatable directives.
//  4. Run the ApplyOnBeforeCompletion tasks, clean repeatable middleware and result formatters and
//     resolve every type reference.
//  5. Seal the configurations and run the ApplyOnAfterCompletion tasks.
//
// The built-in scalars of package scalar and the directives defined by GraphQL (@skip, @include,
// @deprecated and @specifiedBy) are registered automatically.
package registry
