package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/localnerve/imoveis/internal/dtos"
	"github.com/localnerve/imoveis/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// MaxID is the largest identity a row can hold; ids are signed 64-bit
// integers in every supported database.
const MaxID = math.MaxInt64

// Unique is a column whose value must not repeat within the table
type Unique[M any] struct {
	Field  string
	Label  string
	Column string
	Value  func(*M) interface{}
}

// Service runs the CRUD operations of one resource: M is the stored model,
// In the write representation and Out the read representation. OrderIndex
// names the index backing Order, which MySQL is told to read through.
type Service[M any, In any, Out any] struct {
	DB         *gorm.DB
	Resource   string
	Singular   string
	Preload    []string
	Order      string
	OrderIndex string
	Unique     []Unique[M]
	Relations  []Relation
	Output     func(*M) Out
}

// List returns every row in the resource's order
func (s *Service[M, In, Out]) List(ctx context.Context) ([]Out, error) {
	var rows []M
	if err := s.listQuery(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", s.Resource, err)
	}

	out := make([]Out, 0, len(rows))
	for i := range rows {
		out = append(out, s.Output(&rows[i]))
	}
	return out, nil
}

// Get returns the row with the given id
func (s *Service[M, In, Out]) Get(ctx context.Context, id uint64) (Out, error) {
	m, err := s.load(ctx, s.DB, id)
	if err != nil {
		var zero Out
		return zero, err
	}
	return s.Output(m), nil
}

// Create validates in, inserts a new row and returns it as stored
func (s *Service[M, In, Out]) Create(ctx context.Context, in *In) (Out, error) {
	var zero Out
	if err := dtos.Validate(in, false); err != nil {
		return zero, err
	}

	var created *M
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, in); err != nil {
			return err
		}

		var m M
		if d, ok := any(&m).(models.Defaulter); ok {
			d.SetDefaults()
		}
		if err := dtos.Apply(&m, in); err != nil {
			return err
		}
		if err := s.checkUnique(tx, &m, 0); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return s.translate(err)
		}

		var err error
		created, err = s.load(ctx, tx, identity(&m))
		return err
	})
	if err != nil {
		return zero, err
	}
	return s.Output(created), nil
}

// Update applies in to the row with the given id. A full update requires
// every required field; a partial one only validates the fields supplied.
func (s *Service[M, In, Out]) Update(ctx context.Context, id uint64, in *In, partial bool) (Out, error) {
	var zero Out
	var updated *M
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m M
		if err := s.lock(tx, id, &m); err != nil {
			return err
		}

		if err := dtos.Validate(in, partial); err != nil {
			return err
		}
		if err := checkReferences(tx, in); err != nil {
			return err
		}
		if err := dtos.Apply(&m, in); err != nil {
			return err
		}
		if err := s.checkUnique(tx, &m, id); err != nil {
			return err
		}

		if err := tx.Model(&m).Select("*").Omit(clause.Associations).Updates(&m).Error; err != nil {
			return s.translate(err)
		}

		var err error
		updated, err = s.load(ctx, tx, id)
		return err
	})
	if err != nil {
		return zero, err
	}
	return s.Output(updated), nil
}

// Delete removes the row with the given id after applying the resource's
// relationship rules, all in one transaction.
func (s *Service[M, In, Out]) Delete(ctx context.Context, id uint64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m M
		if err := s.lock(tx, id, &m); err != nil {
			return err
		}

		if err := applyRelations(tx, s.Resource, s.Relations, id); err != nil {
			return err
		}

		if err := tx.Delete(&m).Error; err != nil {
			return s.translate(err)
		}
		return nil
	})
}

// listQuery reads every row in the resource's order
func (s *Service[M, In, Out]) listQuery(ctx context.Context) *gorm.DB {
	q := s.query(ctx, s.DB).Order(s.Order)
	if s.OrderIndex != "" && s.DB.Dialector.Name() == "mysql" {
		q = q.Clauses(hints.UseIndex(s.OrderIndex))
	}
	return q
}

// query starts a read of the resource with its labels preloaded
func (s *Service[M, In, Out]) query(ctx context.Context, db *gorm.DB) *gorm.DB {
	q := db.WithContext(ctx)
	for _, p := range s.Preload {
		q = q.Preload(p)
	}
	return q
}

func (s *Service[M, In, Out]) load(ctx context.Context, db *gorm.DB, id uint64) (*M, error) {
	if id > MaxID {
		return nil, s.notFound(id, gorm.ErrRecordNotFound)
	}
	var m M
	if err := s.query(ctx, db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, s.notFound(id, err)
	}
	return &m, nil
}

// lock reads the row with the given id into m under a row lock
func (s *Service[M, In, Out]) lock(tx *gorm.DB, id uint64, m *M) error {
	if id > MaxID {
		return s.notFound(id, gorm.ErrRecordNotFound)
	}
	if err := lockRow(tx).Where("id = ?", id).First(m).Error; err != nil {
		return s.notFound(id, err)
	}
	return nil
}

func (s *Service[M, In, Out]) notFound(id uint64, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", s.Resource, id, ErrNotFound)
	}
	return fmt.Errorf("find %s %d: %w", s.Resource, id, err)
}

// checkUnique fails when another row already holds one of m's unique values
func (s *Service[M, In, Out]) checkUnique(tx *gorm.DB, m *M, id uint64) error {
	verr := &dtos.ValidationError{}
	for _, u := range s.Unique {
		q := tx.Model(new(M)).Where(clause.Eq{Column: clause.Column{Name: u.Column}, Value: u.Value(m)})
		if id != 0 {
			q = q.Where("id <> ?", id)
		}

		var count int64
		if err := q.Count(&count).Error; err != nil {
			return fmt.Errorf("check %s %s: %w", s.Resource, u.Column, err)
		}
		if count > 0 {
			verr.Add(u.Field, fmt.Sprintf("%s with this %s already exists.", s.Singular, u.Label))
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// translate maps constraint violations the database caught to API errors
func (s *Service[M, In, Out]) translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return dtos.NewValidationError(dtos.NonFieldErrors, fmt.Sprintf("%s with these values already exists.", s.Singular))
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ProtectedError{
			Resource: s.Resource,
			Message:  fmt.Sprintf("Cannot complete the operation on %s because related records exist.", s.Singular),
		}
	}
	return fmt.Errorf("write %s: %w", s.Resource, err)
}

// checkReferences fails with a ReferenceError when in names a missing row
func checkReferences(tx *gorm.DB, in interface{}) error {
	r, ok := in.(dtos.Referencer)
	if !ok {
		return nil
	}
	for _, ref := range r.References() {
		if ref.ID == nil {
			continue
		}
		if ref.ID.Uint64() > MaxID {
			return &ReferenceError{Field: ref.Field, ID: ref.ID.Uint64()}
		}
		var count int64
		if err := tx.Model(ref.Model).Where("id = ?", ref.ID.Uint64()).Count(&count).Error; err != nil {
			return fmt.Errorf("resolve %s: %w", ref.Field, err)
		}
		if count == 0 {
			return &ReferenceError{Field: ref.Field, ID: ref.ID.Uint64()}
		}
	}
	return nil
}

// lockRow takes a row lock on the dialects that support SELECT ... FOR UPDATE
func lockRow(tx *gorm.DB) *gorm.DB {
	switch tx.Dialector.Name() {
	case "mysql", "postgres":
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func identity(m interface{}) uint64 {
	if i, ok := m.(interface{ Identity() uint64 }); ok {
		return i.Identity()
	}
	return 0
}
