package cipherstring

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

// tagEnvelope marks a field as holding an encrypted-string envelope.
const tagEnvelope = "envelope"

func init() {
	sentinel.Tag(tagEnvelope)
}

// Processor verifies envelope fields of T at document boundaries.
// Use Receive/Load for ingress and Store for egress to storage.
//
// Processors are immutable after construction and safe for concurrent use.
type Processor[T Cloner[T]] struct {
	codec    Codec
	plans    []fieldPlan
	typeName string
}

// fieldPlan describes how to reach and verify a single field.
type fieldPlan struct {
	index      []int  // reflect.Value.FieldByIndex access path
	name       string // field name for error messages
	rule       Rule
	ptrIndices []int // indices where pointer dereference is needed
	isPtr      bool  // true if field is *string
	isSlice    bool  // true if field is []string
	isMap      bool  // true if field is map[K]string
}

// typePlans is the cached result of scanning a type.
type typePlans struct {
	typeName string
	fields   []fieldPlan
}

var planCache sync.Map // reflect.Type -> *typePlans

// NewProcessor creates a new Processor for type T.
// It fails with a *ConfigError when an envelope tag is malformed or placed on
// a field that cannot hold a string.
func NewProcessor[T Cloner[T]](codec Codec) (*Processor[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:    codec,
		plans:    plans.fields,
		typeName: plans.typeName,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), plans.typeName)
	return p, nil
}

// Fields returns the paths of all envelope fields found on T.
func (p *Processor[T]) Fields() []string {
	names := make([]string, len(p.plans))
	for i, plan := range p.plans {
		names[i] = plan.name
	}
	return names
}

// getOrBuildPlans returns the cached plans for T, scanning it on first use.
func getOrBuildPlans[T Cloner[T]]() (*typePlans, error) {
	typ := reflect.TypeFor[T]()
	if cached, ok := planCache.Load(typ); ok {
		return cached.(*typePlans), nil
	}

	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}

	actual, _ := planCache.LoadOrStore(typ, plans)
	return actual.(*typePlans), nil
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T Cloner[T]]() (*typePlans, error) {
	meta := sentinel.Scan[T]()
	plans := &typePlans{
		typeName: meta.TypeName,
	}

	if err := buildFieldPlansRecursive(plans, meta, nil, nil, ""); err != nil {
		return nil, err
	}

	return plans, nil
}

// buildFieldPlansRecursive recursively processes fields and nested structs.
func buildFieldPlansRecursive(plans *typePlans, meta sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string) error {
	for _, field := range meta.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		tagVal, tagged := field.Tags[tagEnvelope]
		rt := field.ReflectType

		// Nested structs are walked unless the struct itself is tagged.
		if !tagged {
			switch {
			case field.Kind == sentinel.KindStruct:
				if nested := scanNestedType(rt); nested != nil {
					if err := buildFieldPlansRecursive(plans, *nested, fullIndex, ptrIndices, fullName); err != nil {
						return err
					}
				}
			case field.Kind == sentinel.KindPointer && rt.Elem().Kind() == reflect.Struct:
				if nested := scanNestedType(rt.Elem()); nested != nil {
					newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
					if err := buildFieldPlansRecursive(plans, *nested, fullIndex, newPtrIndices, fullName); err != nil {
						return err
					}
				}
			}
			continue
		}

		rule, err := ParseRule(tagVal)
		if err != nil {
			return newConfigError(ErrInvalidTag, tagVal, fullName)
		}

		isString := rt.Kind() == reflect.String
		isPtr := rt.Kind() == reflect.Ptr && rt.Elem().Kind() == reflect.String
		isSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String

		if !isString && !isPtr && !isSlice && !isMap {
			return newConfigError(ErrInvalidTag, tagVal, fullName)
		}

		plans.fields = append(plans.fields, fieldPlan{
			index:      fullIndex,
			name:       fullName,
			rule:       rule,
			ptrIndices: ptrIndices,
			isPtr:      isPtr,
			isSlice:    isSlice,
			isMap:      isMap,
		})
	}

	return nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		return &meta
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseEnvelopeTag(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return &meta
}

// parseEnvelopeTag extracts the envelope tag from a struct tag.
func parseEnvelopeTag(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string, 1)
	if val, ok := tag.Lookup(tagEnvelope); ok {
		tags[tagEnvelope] = val
	}
	return tags
}

// Receive unmarshals data and verifies every envelope field.
// Use for data coming from external sources (API requests, events).
//
//nolint:dupl // Intentional parallel structure with Load for boundary operations
func (p *Processor[T]) Receive(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitReceiveStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var verified int
	defer func() {
		emitReceiveComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), verified, retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	verified, retErr = p.verify(ctx, &obj)
	if retErr != nil {
		return nil, retErr
	}
	return &obj, nil
}

// Load unmarshals data and verifies every envelope field.
// Use for data coming from storage (database, cache); a failure here means a
// stored row was corrupted or written around the processor.
//
//nolint:dupl // Intentional parallel structure with Receive for boundary operations
func (p *Processor[T]) Load(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitLoadStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var verified int
	defer func() {
		emitLoadComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), verified, retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	verified, retErr = p.verify(ctx, &obj)
	if retErr != nil {
		return nil, retErr
	}
	return &obj, nil
}

// Store verifies every envelope field and marshals the result.
// Use for data going to storage. The object is cloned first, so the bytes
// written are exactly the values that were verified.
func (p *Processor[T]) Store(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitStoreStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	var verified int
	defer func() {
		emitStoreComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), verified, retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	clone := (*obj).Clone()

	verified, retErr = p.verify(ctx, &clone)
	if retErr != nil {
		return nil, retErr
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

// Verify checks every envelope field of obj without any codec work.
func (p *Processor[T]) Verify(ctx context.Context, obj *T) error {
	if obj == nil {
		return nil
	}
	_, err := p.verify(ctx, obj)
	return err
}

func (p *Processor[T]) marshal(v any) ([]byte, error) {
	data, err := p.codec.Marshal(v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// verify checks all envelope fields of obj and returns how many values were
// inspected. It stops at the first rejected value.
func (p *Processor[T]) verify(ctx context.Context, obj *T) (int, error) {
	if v, ok := any(obj).(Verifiable); ok {
		fields := v.EnvelopeFields()
		for i, f := range fields {
			if err := p.check(ctx, f.Name, f.Value, f.Rule); err != nil {
				return i + 1, err
			}
		}
		return len(fields), nil
	}

	rv := reflect.ValueOf(obj).Elem()
	count := 0

	for _, plan := range p.plans {
		field, ok := p.getField(rv, plan)
		if !ok {
			// Nil parent: the whole section is absent.
			continue
		}

		switch {
		case plan.isSlice:
			for i := 0; i < field.Len(); i++ {
				count++
				name := fmt.Sprintf("%s[%d]", plan.name, i)
				if err := p.check(ctx, name, field.Index(i).String(), plan.rule); err != nil {
					return count, err
				}
			}

		case plan.isMap:
			iter := field.MapRange()
			for iter.Next() {
				count++
				name := fmt.Sprintf("%s[%v]", plan.name, iter.Key().Interface())
				if err := p.check(ctx, name, iter.Value().String(), plan.rule); err != nil {
					return count, err
				}
			}

		case plan.isPtr:
			count++
			value := ""
			if !field.IsNil() {
				value = field.Elem().String()
			}
			if err := p.check(ctx, plan.name, value, plan.rule); err != nil {
				return count, err
			}

		default:
			count++
			if err := p.check(ctx, plan.name, field.String(), plan.rule); err != nil {
				return count, err
			}
		}
	}

	return count, nil
}

// check applies rule to one value and reports a rejection.
func (p *Processor[T]) check(ctx context.Context, name, value string, rule Rule) error {
	if err := rule.Check(value); err != nil {
		return p.reject(ctx, name, value, err)
	}
	return nil
}

// reject emits the rejection event and wraps cause in a *FieldError.
func (p *Processor[T]) reject(ctx context.Context, name, value string, cause error) error {
	reason := "invalid"
	var envErr *EnvelopeError
	if errors.As(cause, &envErr) {
		reason = reasonName(envErr.Err)
	}
	fe := newFieldError(name, value, cause)
	emitFieldRejected(ctx, p.typeName, name, reason, fe.Shape)
	return fe
}

// reasonName returns the event name for an envelope sentinel.
func reasonName(sentinel error) string {
	for r, err := range reasonErrors {
		if err != nil && err == sentinel {
			return Reason(r).String()
		}
	}
	if sentinel == ErrSchemeNotAllowed {
		return "scheme_not_allowed"
	}
	return "invalid"
}

// getField navigates a field path, dereferencing pointers as needed.
func (p *Processor[T]) getField(rv reflect.Value, plan fieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
