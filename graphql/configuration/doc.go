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

// Package configuration provides the mutable object model used while a type system is being
// assembled. A configuration describes a schema member (an object type, a field, an argument, a
// directive and so on) before it is completed into a read-only type.
//
// Configurations come in two flavors. A type declaration provides the base configuration of a type.
// A type extension (IsExtension is set) contributes additional fields, interfaces and directives
// and is folded into the base configuration with MergeInto. CopyTo produces an independent clone.
//
// Once a configuration is sealed, every mutating method (and every MergeInto or CopyTo targeting
// it) fails with ErrConfigurationSealed.
package configuration
