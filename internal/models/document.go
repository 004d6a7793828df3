package models

import (
	"gorm.io/datatypes"
)

// Document is the single physical storage unit: one key→JSON-value row.
// Every domain entity and every singleton collection lives in this table;
// no schema is enforced on the value side.
type Document struct {
	Key   string         `gorm:"column:key;primaryKey;type:varchar(255)" json:"key"`
	Value datatypes.JSON `gorm:"column:value;type:jsonb" json:"value"`
}

// TableName specifies the table name
func (Document) TableName() string {
	return "documents"
}
