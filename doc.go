/*
Package graft reads, writes and restructures deeply nested string-keyed
mappings through dotted composite keys (e.g. "a.b.c" addresses
m["a"]["b"]["c"]).

It is built for the gap between "I have a nested config document" and "I
want to change one thing in it from a string path": patch application
from command-line arguments, config-diff tooling, and programmatic
surgery on decoded JSON/YAML/TOML documents.

# Concept

The mapping is caller-owned and mutated in place. Values form a closed
union (Null, Bool, Number, String, List, Map) so traversal code can
switch over shapes instead of reflecting on arbitrary types. Every
operation resolves a composite key by walking all but the last segment,
then acts on the final segment: Get, Set, SetMissing, Delete, Rename,
Append and Remove cover the leaf operations, Flatten/Unflatten convert
between nested and single-level views, and Prune sweeps out empty
sub-maps.

Per-call behavior is controlled with functional options: Sep changes
the separator, Create inserts missing intermediate maps, NoOverwrite
guards existing values, Unique deduplicates appends, MissingOK turns
absent-key failures into no-ops.

# Patch DSL

Command-line style patch strings combine a key, an operator and a
literal: "server.port=8080", "tags+=[\"a\",\"b\"]", "old.key~=new.key".
ParseArgs tokenizes them, the literal grammar handles numbers, quoted
strings, lists, booleans and null (bare words stay plain strings), and
Apply runs the resulting patches in order, pruning afterwards.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/graft"
	)

	func main() {
		m := graft.Map{}

		// Build nested structure from dotted paths.
		if err := graft.Set(m, "server.host", graft.String("localhost")); err != nil {
			log.Fatal(err)
		}

		// Apply command-line style patches.
		patches, err := graft.ParseArgs("server.port=8080", "server.tags+=[\"web\"]")
		if err != nil {
			log.Fatal(err)
		}
		if _, err := graft.Apply(m, patches); err != nil {
			log.Fatal(err)
		}

		// Walk the result as flat key/value pairs.
		for key, value := range graft.Flatten(m) {
			fmt.Println(key, "=", graft.ToAny(value))
		}
	}

All operations are synchronous and single-threaded; concurrent use of
one mapping needs external locking.
*/
package graft
