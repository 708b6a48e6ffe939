// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/habitacasa/habitacasa_backend/internal/commission"
	"github.com/habitacasa/habitacasa_backend/internal/repo/commissionrule"
	"github.com/habitacasa/habitacasa_backend/internal/repo/predicate"
)

// CommissionRuleUpdate is the builder for updating CommissionRule entities.
type CommissionRuleUpdate struct {
	config
	hooks    []Hook
	mutation *CommissionRuleMutation
}

// Where appends a list predicates to the CommissionRuleUpdate builder.
func (_u *CommissionRuleUpdate) Where(ps ...predicate.CommissionRule) *CommissionRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommissionRuleUpdate) SetUpdatedAt(v time.Time) *CommissionRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CommissionRuleUpdate) SetName(v string) *CommissionRuleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CommissionRuleUpdate) SetNillableName(v *string) *CommissionRuleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CommissionRuleUpdate) SetDescription(v string) *CommissionRuleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CommissionRuleUpdate) SetNillableDescription(v *string) *CommissionRuleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CommissionRuleUpdate) ClearDescription() *CommissionRuleUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetProductType sets the "product_type" field.
func (_u *CommissionRuleUpdate) SetProductType(v commissionrule.ProductType) *CommissionRuleUpdate {
	_u.mutation.SetProductType(v)
	return _u
}

// SetNillableProductType sets the "product_type" field if the given value is not nil.
func (_u *CommissionRuleUpdate) SetNillableProductType(v *commissionrule.ProductType) *CommissionRuleUpdate {
	if v != nil {
		_u.SetProductType(*v)
	}
	return _u
}

// ClearProductType clears the value of the "product_type" field.
func (_u *CommissionRuleUpdate) ClearProductType() *CommissionRuleUpdate {
	_u.mutation.ClearProductType()
	return _u
}

// SetTotalPercent sets the "total_percent" field.
func (_u *CommissionRuleUpdate) SetTotalPercent(v float64) *CommissionRuleUpdate {
	_u.mutation.ResetTotalPercent()
	_u.mutation.SetTotalPercent(v)
	return _u
}

// SetNillableTotalPercent sets the "total_percent" field if the given value is not nil.
func (_u *CommissionRuleUpdate) SetNillableTotalPercent(v *float64) *CommissionRuleUpdate {
	if v != nil {
		_u.SetTotalPercent(*v)
	}
	return _u
}

// AddTotalPercent adds value to the "total_percent" field.
func (_u *CommissionRuleUpdate) AddTotalPercent(v float64) *CommissionRuleUpdate {
	_u.mutation.AddTotalPercent(v)
	return _u
}

// ClearTotalPercent clears the value of the "total_percent" field.
func (_u *CommissionRuleUpdate) ClearTotalPercent() *CommissionRuleUpdate {
	_u.mutation.ClearTotalPercent()
	return _u
}

// SetTotalRuleID sets the "total_rule_id" field.
func (_u *CommissionRuleUpdate) SetTotalRuleID(v uuid.UUID) *CommissionRuleUpdate {
	_u.mutation.SetTotalRuleID(v)
	return _u
}

// SetNillableTotalRuleID sets the "total_rule_id" field if the given value is not nil.
func (_u *CommissionRuleUpdate) SetNillableTotalRuleID(v *uuid.UUID) *CommissionRuleUpdate {
	if v != nil {
		_u.SetTotalRuleID(*v)
	}
	return _u
}

// ClearTotalRuleID clears the value of the "total_rule_id" field.
func (_u *CommissionRuleUpdate) ClearTotalRuleID() *CommissionRuleUpdate {
	_u.mutation.ClearTotalRuleID()
	return _u
}

// SetParticipants sets the "participants" field.
func (_u *CommissionRuleUpdate) SetParticipants(v []commission.Participant) *CommissionRuleUpdate {
	_u.mutation.SetParticipants(v)
	return _u
}

// AppendParticipants appends value to the "participants" field.
func (_u *CommissionRuleUpdate) AppendParticipants(v []commission.Participant) *CommissionRuleUpdate {
	_u.mutation.AppendParticipants(v)
	return _u
}

// ClearParticipants clears the value of the "participants" field.
func (_u *CommissionRuleUpdate) ClearParticipants() *CommissionRuleUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommissionRuleUpdate) SetStatus(v commissionrule.Status) *CommissionRuleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommissionRuleUpdate) SetNillableStatus(v *commissionrule.Status) *CommissionRuleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDevelopmentID sets the "development_id" field.
func (_u *CommissionRuleUpdate) SetDevelopmentID(v uuid.UUID) *CommissionRuleUpdate {
	_u.mutation.SetDevelopmentID(v)
	return _u
}

// SetNillableDevelopmentID sets the "development_id" field if the given value is not nil.
func (_u *CommissionRuleUpdate) SetNillableDevelopmentID(v *uuid.UUID) *CommissionRuleUpdate {
	if v != nil {
		_u.SetDevelopmentID(*v)
	}
	return _u
}

// ClearDevelopmentID clears the value of the "development_id" field.
func (_u *CommissionRuleUpdate) ClearDevelopmentID() *CommissionRuleUpdate {
	_u.mutation.ClearDevelopmentID()
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *CommissionRuleUpdate) SetProductID(v uuid.UUID) *CommissionRuleUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *CommissionRuleUpdate) SetNillableProductID(v *uuid.UUID) *CommissionRuleUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// ClearProductID clears the value of the "product_id" field.
func (_u *CommissionRuleUpdate) ClearProductID() *CommissionRuleUpdate {
	_u.mutation.ClearProductID()
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *CommissionRuleUpdate) SetValidFrom(v time.Time) *CommissionRuleUpdate {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *CommissionRuleUpdate) SetNillableValidFrom(v *time.Time) *CommissionRuleUpdate {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// ClearValidFrom clears the value of the "valid_from" field.
func (_u *CommissionRuleUpdate) ClearValidFrom() *CommissionRuleUpdate {
	_u.mutation.ClearValidFrom()
	return _u
}

// SetValidTo sets the "valid_to" field.
func (_u *CommissionRuleUpdate) SetValidTo(v time.Time) *CommissionRuleUpdate {
	_u.mutation.SetValidTo(v)
	return _u
}

// SetNillableValidTo sets the "valid_to" field if the given value is not nil.
func (_u *CommissionRuleUpdate) SetNillableValidTo(v *time.Time) *CommissionRuleUpdate {
	if v != nil {
		_u.SetValidTo(*v)
	}
	return _u
}

// ClearValidTo clears the value of the "valid_to" field.
func (_u *CommissionRuleUpdate) ClearValidTo() *CommissionRuleUpdate {
	_u.mutation.ClearValidTo()
	return _u
}

// Mutation returns the CommissionRuleMutation object of the builder.
func (_u *CommissionRuleUpdate) Mutation() *CommissionRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommissionRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommissionRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommissionRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommissionRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommissionRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := commissionrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommissionRuleUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := commissionrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "CommissionRule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProductType(); ok {
		if err := commissionrule.ProductTypeValidator(v); err != nil {
			return &ValidationError{Name: "product_type", err: fmt.Errorf(`repo: validator failed for field "CommissionRule.product_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := commissionrule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "CommissionRule.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CommissionRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commissionrule.Table, commissionrule.Columns, sqlgraph.NewFieldSpec(commissionrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(commissionrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(commissionrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(commissionrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(commissionrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ProductType(); ok {
		_spec.SetField(commissionrule.FieldProductType, field.TypeEnum, value)
	}
	if _u.mutation.ProductTypeCleared() {
		_spec.ClearField(commissionrule.FieldProductType, field.TypeEnum)
	}
	if value, ok := _u.mutation.TotalPercent(); ok {
		_spec.SetField(commissionrule.FieldTotalPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPercent(); ok {
		_spec.AddField(commissionrule.FieldTotalPercent, field.TypeFloat64, value)
	}
	if _u.mutation.TotalPercentCleared() {
		_spec.ClearField(commissionrule.FieldTotalPercent, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalRuleID(); ok {
		_spec.SetField(commissionrule.FieldTotalRuleID, field.TypeUUID, value)
	}
	if _u.mutation.TotalRuleIDCleared() {
		_spec.ClearField(commissionrule.FieldTotalRuleID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(commissionrule.FieldParticipants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, commissionrule.FieldParticipants, value)
		})
	}
	if _u.mutation.ParticipantsCleared() {
		_spec.ClearField(commissionrule.FieldParticipants, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commissionrule.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DevelopmentID(); ok {
		_spec.SetField(commissionrule.FieldDevelopmentID, field.TypeUUID, value)
	}
	if _u.mutation.DevelopmentIDCleared() {
		_spec.ClearField(commissionrule.FieldDevelopmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ProductID(); ok {
		_spec.SetField(commissionrule.FieldProductID, field.TypeUUID, value)
	}
	if _u.mutation.ProductIDCleared() {
		_spec.ClearField(commissionrule.FieldProductID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(commissionrule.FieldValidFrom, field.TypeTime, value)
	}
	if _u.mutation.ValidFromCleared() {
		_spec.ClearField(commissionrule.FieldValidFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidTo(); ok {
		_spec.SetField(commissionrule.FieldValidTo, field.TypeTime, value)
	}
	if _u.mutation.ValidToCleared() {
		_spec.ClearField(commissionrule.FieldValidTo, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commissionrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommissionRuleUpdateOne is the builder for updating a single CommissionRule entity.
type CommissionRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommissionRuleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommissionRuleUpdateOne) SetUpdatedAt(v time.Time) *CommissionRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CommissionRuleUpdateOne) SetName(v string) *CommissionRuleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CommissionRuleUpdateOne) SetNillableName(v *string) *CommissionRuleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CommissionRuleUpdateOne) SetDescription(v string) *CommissionRuleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CommissionRuleUpdateOne) SetNillableDescription(v *string) *CommissionRuleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CommissionRuleUpdateOne) ClearDescription() *CommissionRuleUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetProductType sets the "product_type" field.
func (_u *CommissionRuleUpdateOne) SetProductType(v commissionrule.ProductType) *CommissionRuleUpdateOne {
	_u.mutation.SetProductType(v)
	return _u
}

// SetNillableProductType sets the "product_type" field if the given value is not nil.
func (_u *CommissionRuleUpdateOne) SetNillableProductType(v *commissionrule.ProductType) *CommissionRuleUpdateOne {
	if v != nil {
		_u.SetProductType(*v)
	}
	return _u
}

// ClearProductType clears the value of the "product_type" field.
func (_u *CommissionRuleUpdateOne) ClearProductType() *CommissionRuleUpdateOne {
	_u.mutation.ClearProductType()
	return _u
}

// SetTotalPercent sets the "total_percent" field.
func (_u *CommissionRuleUpdateOne) SetTotalPercent(v float64) *CommissionRuleUpdateOne {
	_u.mutation.ResetTotalPercent()
	_u.mutation.SetTotalPercent(v)
	return _u
}

// SetNillableTotalPercent sets the "total_percent" field if the given value is not nil.
func (_u *CommissionRuleUpdateOne) SetNillableTotalPercent(v *float64) *CommissionRuleUpdateOne {
	if v != nil {
		_u.SetTotalPercent(*v)
	}
	return _u
}

// AddTotalPercent adds value to the "total_percent" field.
func (_u *CommissionRuleUpdateOne) AddTotalPercent(v float64) *CommissionRuleUpdateOne {
	_u.mutation.AddTotalPercent(v)
	return _u
}

// ClearTotalPercent clears the value of the "total_percent" field.
func (_u *CommissionRuleUpdateOne) ClearTotalPercent() *CommissionRuleUpdateOne {
	_u.mutation.ClearTotalPercent()
	return _u
}

// SetTotalRuleID sets the "total_rule_id" field.
func (_u *CommissionRuleUpdateOne) SetTotalRuleID(v uuid.UUID) *CommissionRuleUpdateOne {
	_u.mutation.SetTotalRuleID(v)
	return _u
}

// SetNillableTotalRuleID sets the "total_rule_id" field if the given value is not nil.
func (_u *CommissionRuleUpdateOne) SetNillableTotalRuleID(v *uuid.UUID) *CommissionRuleUpdateOne {
	if v != nil {
		_u.SetTotalRuleID(*v)
	}
	return _u
}

// ClearTotalRuleID clears the value of the "total_rule_id" field.
func (_u *CommissionRuleUpdateOne) ClearTotalRuleID() *CommissionRuleUpdateOne {
	_u.mutation.ClearTotalRuleID()
	return _u
}

// SetParticipants sets the "participants" field.
func (_u *CommissionRuleUpdateOne) SetParticipants(v []commission.Participant) *CommissionRuleUpdateOne {
	_u.mutation.SetParticipants(v)
	return _u
}

// AppendParticipants appends value to the "participants" field.
func (_u *CommissionRuleUpdateOne) AppendParticipants(v []commission.Participant) *CommissionRuleUpdateOne {
	_u.mutation.AppendParticipants(v)
	return _u
}

// ClearParticipants clears the value of the "participants" field.
func (_u *CommissionRuleUpdateOne) ClearParticipants() *CommissionRuleUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommissionRuleUpdateOne) SetStatus(v commissionrule.Status) *CommissionRuleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommissionRuleUpdateOne) SetNillableStatus(v *commissionrule.Status) *CommissionRuleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDevelopmentID sets the "development_id" field.
func (_u *CommissionRuleUpdateOne) SetDevelopmentID(v uuid.UUID) *CommissionRuleUpdateOne {
	_u.mutation.SetDevelopmentID(v)
	return _u
}

// SetNillableDevelopmentID sets the "development_id" field if the given value is not nil.
func (_u *CommissionRuleUpdateOne) SetNillableDevelopmentID(v *uuid.UUID) *CommissionRuleUpdateOne {
	if v != nil {
		_u.SetDevelopmentID(*v)
	}
	return _u
}

// ClearDevelopmentID clears the value of the "development_id" field.
func (_u *CommissionRuleUpdateOne) ClearDevelopmentID() *CommissionRuleUpdateOne {
	_u.mutation.ClearDevelopmentID()
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *CommissionRuleUpdateOne) SetProductID(v uuid.UUID) *CommissionRuleUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *CommissionRuleUpdateOne) SetNillableProductID(v *uuid.UUID) *CommissionRuleUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// ClearProductID clears the value of the "product_id" field.
func (_u *CommissionRuleUpdateOne) ClearProductID() *CommissionRuleUpdateOne {
	_u.mutation.ClearProductID()
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *CommissionRuleUpdateOne) SetValidFrom(v time.Time) *CommissionRuleUpdateOne {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *CommissionRuleUpdateOne) SetNillableValidFrom(v *time.Time) *CommissionRuleUpdateOne {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// ClearValidFrom clears the value of the "valid_from" field.
func (_u *CommissionRuleUpdateOne) ClearValidFrom() *CommissionRuleUpdateOne {
	_u.mutation.ClearValidFrom()
	return _u
}

// SetValidTo sets the "valid_to" field.
func (_u *CommissionRuleUpdateOne) SetValidTo(v time.Time) *CommissionRuleUpdateOne {
	_u.mutation.SetValidTo(v)
	return _u
}

// SetNillableValidTo sets the "valid_to" field if the given value is not nil.
func (_u *CommissionRuleUpdateOne) SetNillableValidTo(v *time.Time) *CommissionRuleUpdateOne {
	if v != nil {
		_u.SetValidTo(*v)
	}
	return _u
}

// ClearValidTo clears the value of the "valid_to" field.
func (_u *CommissionRuleUpdateOne) ClearValidTo() *CommissionRuleUpdateOne {
	_u.mutation.ClearValidTo()
	return _u
}

// Mutation returns the CommissionRuleMutation object of the builder.
func (_u *CommissionRuleUpdateOne) Mutation() *CommissionRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommissionRuleUpdate builder.
func (_u *CommissionRuleUpdateOne) Where(ps ...predicate.CommissionRule) *CommissionRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommissionRuleUpdateOne) Select(field string, fields ...string) *CommissionRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommissionRule entity.
func (_u *CommissionRuleUpdateOne) Save(ctx context.Context) (*CommissionRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommissionRuleUpdateOne) SaveX(ctx context.Context) *CommissionRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommissionRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommissionRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommissionRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := commissionrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommissionRuleUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := commissionrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "CommissionRule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProductType(); ok {
		if err := commissionrule.ProductTypeValidator(v); err != nil {
			return &ValidationError{Name: "product_type", err: fmt.Errorf(`repo: validator failed for field "CommissionRule.product_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := commissionrule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "CommissionRule.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CommissionRuleUpdateOne) sqlSave(ctx context.Context) (_node *CommissionRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commissionrule.Table, commissionrule.Columns, sqlgraph.NewFieldSpec(commissionrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CommissionRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commissionrule.FieldID)
		for _, f := range fields {
			if !commissionrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != commissionrule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(commissionrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(commissionrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(commissionrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(commissionrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ProductType(); ok {
		_spec.SetField(commissionrule.FieldProductType, field.TypeEnum, value)
	}
	if _u.mutation.ProductTypeCleared() {
		_spec.ClearField(commissionrule.FieldProductType, field.TypeEnum)
	}
	if value, ok := _u.mutation.TotalPercent(); ok {
		_spec.SetField(commissionrule.FieldTotalPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPercent(); ok {
		_spec.AddField(commissionrule.FieldTotalPercent, field.TypeFloat64, value)
	}
	if _u.mutation.TotalPercentCleared() {
		_spec.ClearField(commissionrule.FieldTotalPercent, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalRuleID(); ok {
		_spec.SetField(commissionrule.FieldTotalRuleID, field.TypeUUID, value)
	}
	if _u.mutation.TotalRuleIDCleared() {
		_spec.ClearField(commissionrule.FieldTotalRuleID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(commissionrule.FieldParticipants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, commissionrule.FieldParticipants, value)
		})
	}
	if _u.mutation.ParticipantsCleared() {
		_spec.ClearField(commissionrule.FieldParticipants, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commissionrule.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DevelopmentID(); ok {
		_spec.SetField(commissionrule.FieldDevelopmentID, field.TypeUUID, value)
	}
	if _u.mutation.DevelopmentIDCleared() {
		_spec.ClearField(commissionrule.FieldDevelopmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ProductID(); ok {
		_spec.SetField(commissionrule.FieldProductID, field.TypeUUID, value)
	}
	if _u.mutation.ProductIDCleared() {
		_spec.ClearField(commissionrule.FieldProductID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(commissionrule.FieldValidFrom, field.TypeTime, value)
	}
	if _u.mutation.ValidFromCleared() {
		_spec.ClearField(commissionrule.FieldValidFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidTo(); ok {
		_spec.SetField(commissionrule.FieldValidTo, field.TypeTime, value)
	}
	if _u.mutation.ValidToCleared() {
		_spec.ClearField(commissionrule.FieldValidTo, field.TypeTime)
	}
	_node = &CommissionRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commissionrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
