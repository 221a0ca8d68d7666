package models

// Labeled is implemented by every entity with a canonical display string
type Labeled interface {
	Label() string
}

// Defaulter is implemented by entities whose new records start from column
// defaults before caller input is applied.
type Defaulter interface {
	SetDefaults()
}

// All returns one value of each entity, referenced tables first, in the
// order they must be migrated.
func All() []interface{} {
	return []interface{}{
		&Property{},
		&Lessor{},
		&Lessee{},
		&Guarantor{},
		&Intermediary{},
		&Contract{},
		&Payment{},
		&Maintenance{},
		&Document{},
	}
}
