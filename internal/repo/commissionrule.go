// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/habitacasa/habitacasa_backend/internal/commission"
	"github.com/habitacasa/habitacasa_backend/internal/repo/commissionrule"
)

// CommissionRule is the model entity for the CommissionRule schema.
type CommissionRule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → agencies.id (tenant scope); exposed as real_estate_id on the wire
	AgencyID uuid.UUID `json:"real_estate_id"`
	// Unique among non-inactive rules of the same agency
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind commissionrule.Kind `json:"kind,omitempty"`
	// Set when kind=total
	ProductType *commissionrule.ProductType `json:"product_type,omitempty"`
	// Share of sale value the agency retains (0–100), kind=total
	TotalPercent *float64 `json:"total_percent,omitempty"`
	// FK → commission_rules.id of the distributed total rule, kind=distribution
	TotalRuleID *uuid.UUID `json:"total_rule_id,omitempty"`
	// Ordered beneficiary entries, kind=distribution
	Participants []commission.Participant `json:"participants,omitempty"`
	// inactive is the soft-delete terminal state
	Status commissionrule.Status `json:"status,omitempty"`
	// Narrows the rule to one development
	DevelopmentID *uuid.UUID `json:"development_id,omitempty"`
	// Narrows the rule to one listing
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	// ValidFrom holds the value of the "valid_from" field.
	ValidFrom *time.Time `json:"valid_from,omitempty"`
	// ValidTo holds the value of the "valid_to" field.
	ValidTo      *time.Time `json:"valid_to,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CommissionRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case commissionrule.FieldTotalRuleID, commissionrule.FieldDevelopmentID, commissionrule.FieldProductID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case commissionrule.FieldParticipants:
			values[i] = new([]byte)
		case commissionrule.FieldTotalPercent:
			values[i] = new(sql.NullFloat64)
		case commissionrule.FieldName, commissionrule.FieldDescription, commissionrule.FieldKind, commissionrule.FieldProductType, commissionrule.FieldStatus:
			values[i] = new(sql.NullString)
		case commissionrule.FieldCreatedAt, commissionrule.FieldUpdatedAt, commissionrule.FieldValidFrom, commissionrule.FieldValidTo:
			values[i] = new(sql.NullTime)
		case commissionrule.FieldID, commissionrule.FieldAgencyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CommissionRule fields.
func (_m *CommissionRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case commissionrule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case commissionrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case commissionrule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case commissionrule.FieldAgencyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field agency_id", values[i])
			} else if value != nil {
				_m.AgencyID = *value
			}
		case commissionrule.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case commissionrule.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case commissionrule.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = commissionrule.Kind(value.String)
			}
		case commissionrule.FieldProductType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_type", values[i])
			} else if value.Valid {
				_m.ProductType = new(commissionrule.ProductType)
				*_m.ProductType = commissionrule.ProductType(value.String)
			}
		case commissionrule.FieldTotalPercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_percent", values[i])
			} else if value.Valid {
				_m.TotalPercent = new(float64)
				*_m.TotalPercent = value.Float64
			}
		case commissionrule.FieldTotalRuleID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field total_rule_id", values[i])
			} else if value.Valid {
				_m.TotalRuleID = new(uuid.UUID)
				*_m.TotalRuleID = *value.S.(*uuid.UUID)
			}
		case commissionrule.FieldParticipants:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field participants", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Participants); err != nil {
					return fmt.Errorf("unmarshal field participants: %w", err)
				}
			}
		case commissionrule.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = commissionrule.Status(value.String)
			}
		case commissionrule.FieldDevelopmentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field development_id", values[i])
			} else if value.Valid {
				_m.DevelopmentID = new(uuid.UUID)
				*_m.DevelopmentID = *value.S.(*uuid.UUID)
			}
		case commissionrule.FieldProductID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field product_id", values[i])
			} else if value.Valid {
				_m.ProductID = new(uuid.UUID)
				*_m.ProductID = *value.S.(*uuid.UUID)
			}
		case commissionrule.FieldValidFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_from", values[i])
			} else if value.Valid {
				_m.ValidFrom = new(time.Time)
				*_m.ValidFrom = value.Time
			}
		case commissionrule.FieldValidTo:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_to", values[i])
			} else if value.Valid {
				_m.ValidTo = new(time.Time)
				*_m.ValidTo = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CommissionRule.
// This includes values selected through modifiers, order, etc.
func (_m *CommissionRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CommissionRule.
// Note that you need to call CommissionRule.Unwrap() before calling this method if this CommissionRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CommissionRule) Update() *CommissionRuleUpdateOne {
	return NewCommissionRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CommissionRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CommissionRule) Unwrap() *CommissionRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CommissionRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CommissionRule) String() string {
	var builder strings.Builder
	builder.WriteString("CommissionRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("agency_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgencyID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	if v := _m.ProductType; v != nil {
		builder.WriteString("product_type=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalPercent; v != nil {
		builder.WriteString("total_percent=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalRuleID; v != nil {
		builder.WriteString("total_rule_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("participants=")
	builder.WriteString(fmt.Sprintf("%v", _m.Participants))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.DevelopmentID; v != nil {
		builder.WriteString("development_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProductID; v != nil {
		builder.WriteString("product_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ValidFrom; v != nil {
		builder.WriteString("valid_from=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ValidTo; v != nil {
		builder.WriteString("valid_to=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CommissionRules is a parsable slice of CommissionRule.
type CommissionRules []*CommissionRule
