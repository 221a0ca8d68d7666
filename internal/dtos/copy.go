package dtos

import (
	"fmt"
	"reflect"
)

// Apply copies every field present in the input payload onto the model
// field of the same Go name. A null clears a pointer field. Fields the model
// does not declare are skipped.
func Apply(model interface{}, in interface{}) error {
	holder, ok := in.(payloadHolder)
	if !ok {
		return fmt.Errorf("dtos: %T does not embed Payload", in)
	}
	p := holder.payload()

	dst := reflect.ValueOf(model).Elem()
	for _, f := range wireFields(reflect.ValueOf(in).Elem()) {
		if !p.Has(f.key) {
			continue
		}
		target := dst.FieldByName(f.name)
		if !target.IsValid() || !target.CanSet() {
			continue
		}
		if err := assign(target, f.value); err != nil {
			return fmt.Errorf("apply %s: %w", f.key, err)
		}
	}
	return nil
}

// Fill copies model fields into the wire fields of out with the same Go name.
func Fill(out interface{}, model interface{}) {
	src := reflect.ValueOf(model)
	if src.Kind() == reflect.Ptr {
		src = src.Elem()
	}
	for _, f := range wireFields(reflect.ValueOf(out).Elem()) {
		value := src.FieldByName(f.name)
		if !value.IsValid() {
			continue
		}
		_ = assign(f.value, value)
	}
}

// assign sets dst from src, dereferencing or allocating pointers on either
// side and converting between named types sharing an underlying type.
func assign(dst, src reflect.Value) error {
	srcType := src.Type()
	if srcType.Kind() == reflect.Ptr {
		srcType = srcType.Elem()
	}
	dstType := dst.Type()
	if dstType.Kind() == reflect.Ptr {
		dstType = dstType.Elem()
	}
	if !srcType.ConvertibleTo(dstType) || srcType.Kind() != dstType.Kind() && !numeric(srcType, dstType) {
		return fmt.Errorf("cannot assign %s to %s", src.Type(), dst.Type())
	}

	if src.Kind() == reflect.Ptr {
		if src.IsNil() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		src = src.Elem()
	}

	converted := src.Convert(dstType)
	if dst.Kind() == reflect.Ptr {
		ptr := reflect.New(dstType)
		ptr.Elem().Set(converted)
		dst.Set(ptr)
		return nil
	}
	dst.Set(converted)
	return nil
}

func numeric(a, b reflect.Type) bool {
	return isInteger(a.Kind()) && isInteger(b.Kind())
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
