// relations.go
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
package services

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RelationKind is what happens to dependent rows when their target is deleted
type RelationKind int

const (
	// Protected dependents block the delete
	Protected RelationKind = iota
	// Cascaded dependents are deleted with their target
	Cascaded
	// Nullified dependents survive with their reference cleared
	Nullified
)

// Relation is one dependent table of a resource
type Relation struct {
	Kind    RelationKind
	Model   interface{}
	Column  string
	Message string
}

// Protect blocks the delete while rows of model reference it through column
func Protect(model interface{}, column, message string) Relation {
	return Relation{Kind: Protected, Model: model, Column: column, Message: message}
}

// Cascade deletes the rows of model that reference it through column
func Cascade(model interface{}, column string) Relation {
	return Relation{Kind: Cascaded, Model: model, Column: column}
}

// Nullify clears column on the rows of model that reference it
func Nullify(model interface{}, column string) Relation {
	return Relation{Kind: Nullified, Model: model, Column: column}
}

// applyRelations runs every protect check before touching any dependent,
// then the cascades and nullifications. It must run inside the delete's transaction.
func applyRelations(tx *gorm.DB, resource string, relations []Relation, id uint64) error {
	for _, r := range relations {
		if r.Kind != Protected {
			continue
		}
		var count int64
		if err := tx.Model(r.Model).Where(clause.Eq{Column: clause.Column{Name: r.Column}, Value: id}).
			Count(&count).Error; err != nil {
			return fmt.Errorf("count %s dependents: %w", resource, err)
		}
		if count > 0 {
			return &ProtectedError{Resource: resource, Message: r.Message}
		}
	}

	for _, r := range relations {
		where := clause.Eq{Column: clause.Column{Name: r.Column}, Value: id}
		switch r.Kind {
		case Cascaded:
			if err := tx.Where(where).Delete(r.Model).Error; err != nil {
				return fmt.Errorf("cascade %s delete: %w", resource, err)
			}
		case Nullified:
			if err := tx.Model(r.Model).Where(where).Update(r.Column, nil).Error; err != nil {
				return fmt.Errorf("clear %s references: %w", resource, err)
			}
		}
	}
	return nil
}
