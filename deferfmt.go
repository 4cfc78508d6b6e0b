// Package deferfmt provides convenient top-level entry points into the
// deferred-formatting pipeline: parsing and statically resolving a format
// string, registering its shape in a catalog, dispatching an encoded frame
// from the producer side, and decoding + rendering it back on the host.
//
// # Producer side
//
// A producer registers each print/write statement's argument shape once
// (typically at compile time, via the registration package), initializes
// the global dispatch.Dispatcher once, and then emits frames:
//
//	registrar := deferfmt.NewMemoryRegistrar(1)
//	shape := registration.StatementShape{
//		Expression: registration.StoredExpression{ProcessedFormatString: "value={}", PositionalArgCount: 1},
//	}
//	crateID, printID, _ := registrar.RegisterPrintStatement("my_crate", shape)
//
//	d := dispatch.New()
//	d.Init(mySink, wire.PointerWidth64)
//
//	h := d.Begin(wire.LevelInfo, crateID, printID)
//	h.WriteValue(wirevalue.U32(42))
//	h.Release()
//
// # Consumer side
//
// A consumer decodes frames against the same ShapeProvider the producer
// registered against, then renders the statement's format string against
// the decoded values with RenderValues:
//
//	dec := decoder.NewFrameDecoder(registrar)
//	dec.Feed(bytes)
//	frame, _ := dec.Decode()
//	out, _ := deferfmt.RenderValues(frame.ProcessedFormatString, frame.Positional, frame.Named, args.ResolverConfig[int]{})
//
// This package provides the glue; for direct control over any stage, use
// fstring, args, deferred, wirevalue, catalog, dispatch, decoder, and
// registration directly.
package deferfmt

import (
	"github.com/deferfmt/deferfmt/args"
	"github.com/deferfmt/deferfmt/catalog"
	"github.com/deferfmt/deferfmt/deferred"
	"github.com/deferfmt/deferfmt/fstring"
	"github.com/deferfmt/deferfmt/registration"
)

// RenderValues parses str, statically resolves its argument references
// against positional and named, and renders the result — the full
// format-string path (component B, C, D) collapsed into one call for
// callers that already have concrete deferred.Value arguments in hand
// (typically a host-side pretty-printer working from a decoder.Frame).
//
// deferred.Value holds slice fields (List/Tuple elements) and so isn't a
// comparable type; args.Resolve's compaction pass needs E comparable only
// to detect equal-valued duplicates, not to carry the values themselves.
// Resolution therefore runs over a throwaway slice of distinct ints — one
// per argument, positional then named — that stands in 1:1 for positions
// in provided, exactly mirroring how the deferred package's own tests
// drive args.Resolve ahead of deferred.Render.
func RenderValues(str string, positional []deferred.Value, named []deferred.NamedValue, cfg args.ResolverConfig[int]) (string, error) {
	fs, err := fstring.Parse(str)
	if err != nil {
		return "", err
	}

	placeholders := &args.ProvidedArgs[int]{}
	counter := 0
	for range positional {
		placeholders.Positional = append(placeholders.Positional, counter)
		counter++
	}
	for _, n := range named {
		placeholders.Named = append(placeholders.Named, args.NamedArg[int]{Name: n.Name, Value: counter})
		counter++
	}

	if err := args.Resolve(fs, placeholders, cfg); err != nil {
		return "", err
	}

	return deferred.Render(fs, &deferred.ProvidedArgs{Positional: positional, Named: named}, deferred.Config{})
}

// NewMemoryRegistrar creates a registration.CatalogRegistrar backed by an
// ephemeral in-memory catalog (catalog.MemoryOpener), suitable for tests
// and for producers that never persist their catalog across runs.
func NewMemoryRegistrar(schemaVersion uint32) *registration.CatalogRegistrar {
	registry := catalog.NewRegistry(catalog.MemoryOpener{SchemaVersion: schemaVersion})
	return registration.NewCatalogRegistrar(registry)
}

// NewFileRegistrar creates a registration.CatalogRegistrar backed by one
// compressed snapshot file per crate under dir (catalog.FileOpener),
// suitable for a producer that registers statements across separate
// compile/run invocations.
func NewFileRegistrar(dir string, schemaVersion uint32) *registration.CatalogRegistrar {
	registry := catalog.NewRegistry(catalog.NewFileOpener(dir, schemaVersion))
	return registration.NewCatalogRegistrar(registry)
}
