package registration

import (
	"github.com/deferfmt/deferfmt/catalog"
	"github.com/deferfmt/deferfmt/decoder"
	"github.com/deferfmt/deferfmt/deferred"
	"github.com/deferfmt/deferfmt/wire"
)

// CatalogRegistrar implements Registrar on top of a catalog.Registry,
// serializing shapes into content bytes so shape registration gets the
// same content-addressed deduplication as any other catalog record
// (spec.md §4.F). It also implements decoder.ShapeProvider, reading the
// same bytes back and translating them into decoder's own shape types to
// answer the decoder's lookups — registration and decoding share one
// serialization format by construction, but decoder owns the shape
// contract since registration already imports decoder.
type CatalogRegistrar struct {
	registry *catalog.Registry
}

// NewCatalogRegistrar wraps registry.
func NewCatalogRegistrar(registry *catalog.Registry) *CatalogRegistrar {
	return &CatalogRegistrar{registry: registry}
}

func (r *CatalogRegistrar) RegisterPrintStatement(crateName string, shape StatementShape) (wire.CrateID, wire.PrintStatementID, error) {
	crateID, store, err := r.openCrate(crateName)
	if err != nil {
		return 0, 0, err
	}

	id, err := store.InsertPrintStatement(encodeStatementShape(shape))
	return crateID, id, err
}

func (r *CatalogRegistrar) RegisterWriteStatement(crateName string, shape StatementShape) (wire.CrateID, wire.WriteStatementID, error) {
	crateID, store, err := r.openCrate(crateName)
	if err != nil {
		return 0, 0, err
	}

	id, err := store.InsertWriteStatement(encodeStatementShape(shape))
	return crateID, id, err
}

func (r *CatalogRegistrar) RegisterTypeStructure(crateName string, shape TypeShape) (wire.CrateID, wire.TypeStructureID, error) {
	crateID, store, err := r.openCrate(crateName)
	if err != nil {
		return 0, 0, err
	}

	id, err := store.InsertTypeStructure(encodeTypeShape(shape))
	return crateID, id, err
}

func (r *CatalogRegistrar) openCrate(crateName string) (wire.CrateID, *catalog.Store, error) {
	crateID, err := r.registry.FindOrInsertCrate(crateName)
	if err != nil {
		return 0, nil, err
	}

	store, _ := r.registry.Store(crateID)
	return crateID, store, nil
}

// HasCrate implements decoder.ShapeProvider.
func (r *CatalogRegistrar) HasCrate(id wire.CrateID) bool {
	_, ok := r.registry.Store(id)
	return ok
}

// PrintStatementShape implements decoder.ShapeProvider.
func (r *CatalogRegistrar) PrintStatementShape(crate wire.CrateID, id wire.PrintStatementID) (decoder.StatementShape, bool) {
	store, ok := r.registry.Store(crate)
	if !ok {
		return decoder.StatementShape{}, false
	}

	rec, ok := store.FindPrintStatementByID(id)
	if !ok {
		return decoder.StatementShape{}, false
	}

	shape, err := decodeStatementShape(rec.Content)
	if err != nil {
		return decoder.StatementShape{}, false
	}

	return toDecoderStatementShape(shape), true
}

// WriteStatementShape implements decoder.ShapeProvider.
func (r *CatalogRegistrar) WriteStatementShape(crate wire.CrateID, id wire.WriteStatementID) (decoder.StatementShape, bool) {
	store, ok := r.registry.Store(crate)
	if !ok {
		return decoder.StatementShape{}, false
	}

	rec, ok := store.FindWriteStatementByID(id)
	if !ok {
		return decoder.StatementShape{}, false
	}

	shape, err := decodeStatementShape(rec.Content)
	if err != nil {
		return decoder.StatementShape{}, false
	}

	return toDecoderStatementShape(shape), true
}

// TypeStructureShape implements decoder.ShapeProvider.
func (r *CatalogRegistrar) TypeStructureShape(crate wire.CrateID, id wire.TypeStructureID) (decoder.TypeShape, bool) {
	store, ok := r.registry.Store(crate)
	if !ok {
		return decoder.TypeShape{}, false
	}

	rec, ok := store.FindTypeStructureByID(id)
	if !ok {
		return decoder.TypeShape{}, false
	}

	shape, err := decodeTypeShape(rec.Content)
	if err != nil {
		return decoder.TypeShape{}, false
	}

	return toDecoderTypeShape(shape), true
}

func toDecoderStatementShape(shape StatementShape) decoder.StatementShape {
	return decoder.StatementShape{
		Location:              decoder.Location{File: shape.Location.File, Line: shape.Location.Line},
		ProcessedFormatString: shape.Expression.ProcessedFormatString,
		AppendNewline:         shape.Expression.AppendNewline,
		PositionalArgCount:    shape.Expression.PositionalArgCount,
		NamedArgs:             shape.Expression.NamedArgs,
	}
}

func toDecoderTypeShape(shape TypeShape) decoder.TypeShape {
	if !shape.IsEnum {
		return decoder.TypeShape{Name: shape.Name, Struct: toDecoderVariantShape(shape.Struct)}
	}

	variants := make([]decoder.EnumVariantShape, len(shape.Variants))
	for i, v := range shape.Variants {
		variants[i] = decoder.EnumVariantShape{Name: v.Name, Shape: toDecoderVariantShape(v.Variant)}
	}

	return decoder.TypeShape{Name: shape.Name, IsEnum: true, Variants: variants}
}

func toDecoderVariantShape(v Variant) decoder.VariantShape {
	return decoder.VariantShape{
		Kind:       toDeferredVariantKind(v.Kind),
		FieldCount: v.FieldCount,
		FieldNames: v.FieldNames,
	}
}

func toDeferredVariantKind(k VariantKind) deferred.TypeVariantKind {
	switch k {
	case VariantTuple:
		return deferred.VariantTuple
	case VariantNamed:
		return deferred.VariantNamed
	default:
		return deferred.VariantUnit
	}
}
