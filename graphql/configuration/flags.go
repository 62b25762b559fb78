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
	"strings"
)

// CoreFieldFlags is a set of facets describing a field or an argument.
type CoreFieldFlags uint64

// Enumeration of CoreFieldFlags
const (
	FieldFlagNone          CoreFieldFlags = 0
	FieldFlagIntrospection CoreFieldFlags = 1 << iota
	FieldFlagSchemaIntrospectionField
	FieldFlagTypeIntrospectionField
	FieldFlagTypeNameIntrospectionField
	FieldFlagDeprecated
	FieldFlagIgnored
	FieldFlagSealed
	FieldFlagParallelExecutable
	FieldFlagStream
	FieldFlagConnection
	FieldFlagConnectionEdgesField
	FieldFlagConnectionNodesField
	FieldFlagConnectionFirstArgument
	FieldFlagConnectionLastArgument
	FieldFlagConnectionAfterArgument
	FieldFlagConnectionBeforeArgument
	FieldFlagCollectionSegment
	FieldFlagCollectionSegmentItemsField
	FieldFlagCollectionSegmentSkipArgument
	FieldFlagCollectionSegmentTakeArgument
	FieldFlagTotalCount
	FieldFlagSkipDirective
	FieldFlagIncludeDirective
	FieldFlagMutationQueryField
	FieldFlagGlobalIDNodeField
	FieldFlagGlobalIDNodesField
	FieldFlagUsesProjections
	FieldFlagWithRequirements
	FieldFlagPureResolver
	FieldFlagSubscribeResolver
	FieldFlagExtension
)

var fieldFlagNames = []struct {
	flag CoreFieldFlags
	name string
}{
	{FieldFlagIntrospection, "Introspection"},
	{FieldFlagSchemaIntrospectionField, "SchemaIntrospectionField"},
	{FieldFlagTypeIntrospectionField, "TypeIntrospectionField"},
	{FieldFlagTypeNameIntrospectionField, "TypeNameIntrospectionField"},
	{FieldFlagDeprecated, "Deprecated"},
	{FieldFlagIgnored, "Ignored"},
	{FieldFlagSealed, "Sealed"},
	{FieldFlagParallelExecutable, "ParallelExecutable"},
	{FieldFlagStream, "Stream"},
	{FieldFlagConnection, "Connection"},
	{FieldFlagConnectionEdgesField, "ConnectionEdgesField"},
	{FieldFlagConnectionNodesField, "ConnectionNodesField"},
	{FieldFlagConnectionFirstArgument, "ConnectionFirstArgument"},
	{FieldFlagConnectionLastArgument, "ConnectionLastArgument"},
	{FieldFlagConnectionAfterArgument, "ConnectionAfterArgument"},
	{FieldFlagConnectionBeforeArgument, "ConnectionBeforeArgument"},
	{FieldFlagCollectionSegment, "CollectionSegment"},
	{FieldFlagCollectionSegmentItemsField, "CollectionSegmentItemsField"},
	{FieldFlagCollectionSegmentSkipArgument, "CollectionSegmentSkipArgument"},
	{FieldFlagCollectionSegmentTakeArgument, "CollectionSegmentTakeArgument"},
	{FieldFlagTotalCount, "TotalCount"},
	{FieldFlagSkipDirective, "SkipDirective"},
	{FieldFlagIncludeDirective, "IncludeDirective"},
	{FieldFlagMutationQueryField, "MutationQueryField"},
	{FieldFlagGlobalIDNodeField, "GlobalIDNodeField"},
	{FieldFlagGlobalIDNodesField, "GlobalIDNodesField"},
	{FieldFlagUsesProjections, "UsesProjections"},
	{FieldFlagWithRequirements, "WithRequirements"},
	{FieldFlagPureResolver, "PureResolver"},
	{FieldFlagSubscribeResolver, "SubscribeResolver"},
	{FieldFlagExtension, "Extension"},
}

// Has returns true if all flags in mask are set.
func (flags CoreFieldFlags) Has(mask CoreFieldFlags) bool {
	return mask != 0 && flags&mask == mask
}

// Set sets the flags in mask.
func (flags *CoreFieldFlags) Set(mask CoreFieldFlags) {
	*flags |= mask
}

// Clear clears the flags in mask.
func (flags *CoreFieldFlags) Clear(mask CoreFieldFlags) {
	*flags &^= mask
}

// String implements fmt.Stringer.
func (flags CoreFieldFlags) String() string {
	if flags == FieldFlagNone {
		return "None"
	}
	var names []string
	for _, entry := range fieldFlagNames {
		if flags&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "|")
}
