// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CommissionRulesColumns holds the columns for the "commission_rules" table.
	CommissionRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agency_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"total", "distribution"}},
		{Name: "product_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"property", "land", "development"}},
		{Name: "total_percent", Type: field.TypeFloat64, Nullable: true},
		{Name: "total_rule_id", Type: field.TypeUUID, Nullable: true},
		{Name: "participants", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive", "pending"}, Default: "active"},
		{Name: "development_id", Type: field.TypeUUID, Nullable: true},
		{Name: "product_id", Type: field.TypeUUID, Nullable: true},
		{Name: "valid_from", Type: field.TypeTime, Nullable: true},
		{Name: "valid_to", Type: field.TypeTime, Nullable: true},
	}
	// CommissionRulesTable holds the schema information for the "commission_rules" table.
	CommissionRulesTable = &schema.Table{
		Name:       "commission_rules",
		Columns:    CommissionRulesColumns,
		PrimaryKey: []*schema.Column{CommissionRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "commissionrule_agency_id",
				Unique:  false,
				Columns: []*schema.Column{CommissionRulesColumns[3]},
			},
			{
				Name:    "commissionrule_agency_id_name",
				Unique:  false,
				Columns: []*schema.Column{CommissionRulesColumns[3], CommissionRulesColumns[4]},
			},
			{
				Name:    "commissionrule_agency_id_kind_status",
				Unique:  false,
				Columns: []*schema.Column{CommissionRulesColumns[3], CommissionRulesColumns[6], CommissionRulesColumns[11]},
			},
			{
				Name:    "commissionrule_total_rule_id",
				Unique:  false,
				Columns: []*schema.Column{CommissionRulesColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CommissionRulesTable,
	}
)

func init() {
}
