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

// Package scalar provides the leaf types of the type system: the scalars defined by GraphQL (Int,
// Float, String, Boolean and ID) and the extended scalars commonly shipped with GraphQL servers
// (Short, Byte, Long, UUID, DateTime, Date and URL).
//
// Every leaf type converts values in four directions:
//
//	+--------------------+----------------------------+------------------------+
//	| Method             | From                       | To                     |
//	+--------------------+----------------------------+------------------------+
//	| CoerceInputLiteral | literal in a GraphQL doc   | runtime value          |
//	| CoerceInputValue   | parsed JSON variable value | runtime value          |
//	| CoerceOutputValue  | runtime value              | JSON written to stream |
//	| ValueToLiteral     | runtime value              | literal                |
//	+--------------------+----------------------------+------------------------+
//
// The runtime type of each scalar is fixed. For example, when you receive an Int argument, you can
// expect you got an "int" not int32 or others. Failures are reported as graphql.Error with
// graphql.ErrKindCoercion.
package scalar
