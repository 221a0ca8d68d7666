// payload.go
//
// Property-management back office data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of imoveis.
// imoveis is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// imoveis is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with imoveis.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.
package dtos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/localnerve/imoveis/internal/types"
)

// NonFieldErrors is the error key used for failures not tied to one field.
const NonFieldErrors = "non_field_errors"

// Payload records which wire keys were present in a decoded request body.
// Input types embed it.
type Payload struct {
	present map[string]bool
}

// Has reports whether key was supplied, with any value including null.
func (p *Payload) Has(key string) bool {
	return p.present[key]
}

func (p *Payload) mark(key string) {
	if p.present == nil {
		p.present = make(map[string]bool)
	}
	p.present[key] = true
}

func (p *Payload) payload() *Payload {
	return p
}

type payloadHolder interface {
	payload() *Payload
}

var (
	payloadType = reflect.TypeOf(Payload{})
	decimalType = reflect.TypeOf(types.Decimal{})
	dateType    = reflect.TypeOf(types.Date{})
	idType      = reflect.TypeOf(types.ID(0))
)

// Decode reads a JSON object into dst key by key. Every wire field of dst is
// a pointer: keys that are absent stay nil and unmarked, an explicit null
// stays nil but is marked present. Keys dst does not declare are ignored.
func Decode(body []byte, dst interface{}) error {
	holder, ok := dst.(payloadHolder)
	if !ok {
		return fmt.Errorf("dtos: %T does not embed Payload", dst)
	}
	p := holder.payload()

	raw := map[string]json.RawMessage{}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return &ValidationError{Errors: map[string][]string{
			NonFieldErrors: {fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", jsonKind(trimmed))},
		}}
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return &ValidationError{Errors: map[string][]string{
			NonFieldErrors: {"JSON parse error - " + err.Error()},
		}}
	}

	verr := &ValidationError{}
	for _, f := range wireFields(reflect.ValueOf(dst).Elem()) {
		value, found := raw[f.key]
		if !found {
			continue
		}
		p.mark(f.key)

		if string(bytes.TrimSpace(value)) == "null" {
			f.value.Set(reflect.Zero(f.value.Type()))
			continue
		}

		target := reflect.New(f.value.Type().Elem())
		if err := json.Unmarshal(value, target.Interface()); err != nil {
			verr.Add(f.key, decodeMessage(f.value.Type().Elem(), err))
			continue
		}
		if s, ok := target.Interface().(*string); ok {
			*s = strings.TrimSpace(*s)
		}
		f.value.Set(target)
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// wireField is one json-tagged pointer field of an input or output struct
type wireField struct {
	key   string
	name  string
	field reflect.StructField
	value reflect.Value
}

// wireFields flattens v, descending into embedded structs, and returns its
// json-tagged fields in declaration order.
func wireFields(v reflect.Value) []wireField {
	var fields []wireField
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Type == payloadType {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			fields = append(fields, wireFields(v.Field(i))...)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		key := strings.Split(sf.Tag.Get("json"), ",")[0]
		if key == "" || key == "-" {
			continue
		}
		fields = append(fields, wireField{key: key, name: sf.Name, field: sf, value: v.Field(i)})
	}
	return fields
}

func decodeMessage(t reflect.Type, err error) string {
	switch t {
	case decimalType, dateType, idType:
		return err.Error()
	}
	switch t.Kind() {
	case reflect.String:
		return "Not a valid string."
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return "A valid integer is required."
	}
	return "Invalid value."
}

func jsonKind(data []byte) string {
	if len(data) == 0 {
		return "nothing"
	}
	switch data[0] {
	case '[':
		return "list"
	case '"':
		return "str"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	}
	return "number"
}
