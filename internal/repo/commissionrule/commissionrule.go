// Code generated by ent, DO NOT EDIT.

package commissionrule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the commissionrule type in the database.
	Label = "commission_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldAgencyID holds the string denoting the agency_id field in the database.
	FieldAgencyID = "agency_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldProductType holds the string denoting the product_type field in the database.
	FieldProductType = "product_type"
	// FieldTotalPercent holds the string denoting the total_percent field in the database.
	FieldTotalPercent = "total_percent"
	// FieldTotalRuleID holds the string denoting the total_rule_id field in the database.
	FieldTotalRuleID = "total_rule_id"
	// FieldParticipants holds the string denoting the participants field in the database.
	FieldParticipants = "participants"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDevelopmentID holds the string denoting the development_id field in the database.
	FieldDevelopmentID = "development_id"
	// FieldProductID holds the string denoting the product_id field in the database.
	FieldProductID = "product_id"
	// FieldValidFrom holds the string denoting the valid_from field in the database.
	FieldValidFrom = "valid_from"
	// FieldValidTo holds the string denoting the valid_to field in the database.
	FieldValidTo = "valid_to"
	// Table holds the table name of the commissionrule in the database.
	Table = "commission_rules"
)

// Columns holds all SQL columns for commissionrule fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldAgencyID,
	FieldName,
	FieldDescription,
	FieldKind,
	FieldProductType,
	FieldTotalPercent,
	FieldTotalRuleID,
	FieldParticipants,
	FieldStatus,
	FieldDevelopmentID,
	FieldProductID,
	FieldValidFrom,
	FieldValidTo,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindTotal        Kind = "total"
	KindDistribution Kind = "distribution"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindTotal, KindDistribution:
		return nil
	default:
		return fmt.Errorf("commissionrule: invalid enum value for kind field: %q", k)
	}
}

// ProductType defines the type for the "product_type" enum field.
type ProductType string

// ProductType values.
const (
	ProductTypeProperty    ProductType = "property"
	ProductTypeLand        ProductType = "land"
	ProductTypeDevelopment ProductType = "development"
)

func (pt ProductType) String() string {
	return string(pt)
}

// ProductTypeValidator is a validator for the "product_type" field enum values. It is called by the builders before save.
func ProductTypeValidator(pt ProductType) error {
	switch pt {
	case ProductTypeProperty, ProductTypeLand, ProductTypeDevelopment:
		return nil
	default:
		return fmt.Errorf("commissionrule: invalid enum value for product_type field: %q", pt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return nil
	default:
		return fmt.Errorf("commissionrule: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CommissionRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAgencyID orders the results by the agency_id field.
func ByAgencyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgencyID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByProductType orders the results by the product_type field.
func ByProductType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductType, opts...).ToFunc()
}

// ByTotalPercent orders the results by the total_percent field.
func ByTotalPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPercent, opts...).ToFunc()
}

// ByTotalRuleID orders the results by the total_rule_id field.
func ByTotalRuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRuleID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDevelopmentID orders the results by the development_id field.
func ByDevelopmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDevelopmentID, opts...).ToFunc()
}

// ByProductID orders the results by the product_id field.
func ByProductID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductID, opts...).ToFunc()
}

// ByValidFrom orders the results by the valid_from field.
func ByValidFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidFrom, opts...).ToFunc()
}

// ByValidTo orders the results by the valid_to field.
func ByValidTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidTo, opts...).ToFunc()
}
