package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Text is an unbounded string column
type Text string

// GormDBDataType ensures the correct data type is used for each database driver.
// MSSQL has deprecated 'text' in favour of NVARCHAR(MAX).
func (Text) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "LONGTEXT"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	}
	return "TEXT"
}
