// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/habitacasa/habitacasa_backend/internal/commission"
	"github.com/habitacasa/habitacasa_backend/internal/repo/commissionrule"
)

// CommissionRuleCreate is the builder for creating a CommissionRule entity.
type CommissionRuleCreate struct {
	config
	mutation *CommissionRuleMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommissionRuleCreate) SetCreatedAt(v time.Time) *CommissionRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommissionRuleCreate) SetNillableCreatedAt(v *time.Time) *CommissionRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CommissionRuleCreate) SetUpdatedAt(v time.Time) *CommissionRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CommissionRuleCreate) SetNillableUpdatedAt(v *time.Time) *CommissionRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAgencyID sets the "agency_id" field.
func (_c *CommissionRuleCreate) SetAgencyID(v uuid.UUID) *CommissionRuleCreate {
	_c.mutation.SetAgencyID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CommissionRuleCreate) SetName(v string) *CommissionRuleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CommissionRuleCreate) SetDescription(v string) *CommissionRuleCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CommissionRuleCreate) SetNillableDescription(v *string) *CommissionRuleCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *CommissionRuleCreate) SetKind(v commissionrule.Kind) *CommissionRuleCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetProductType sets the "product_type" field.
func (_c *CommissionRuleCreate) SetProductType(v commissionrule.ProductType) *CommissionRuleCreate {
	_c.mutation.SetProductType(v)
	return _c
}

// SetNillableProductType sets the "product_type" field if the given value is not nil.
func (_c *CommissionRuleCreate) SetNillableProductType(v *commissionrule.ProductType) *CommissionRuleCreate {
	if v != nil {
		_c.SetProductType(*v)
	}
	return _c
}

// SetTotalPercent sets the "total_percent" field.
func (_c *CommissionRuleCreate) SetTotalPercent(v float64) *CommissionRuleCreate {
	_c.mutation.SetTotalPercent(v)
	return _c
}

// SetNillableTotalPercent sets the "total_percent" field if the given value is not nil.
func (_c *CommissionRuleCreate) SetNillableTotalPercent(v *float64) *CommissionRuleCreate {
	if v != nil {
		_c.SetTotalPercent(*v)
	}
	return _c
}

// SetTotalRuleID sets the "total_rule_id" field.
func (_c *CommissionRuleCreate) SetTotalRuleID(v uuid.UUID) *CommissionRuleCreate {
	_c.mutation.SetTotalRuleID(v)
	return _c
}

// SetNillableTotalRuleID sets the "total_rule_id" field if the given value is not nil.
func (_c *CommissionRuleCreate) SetNillableTotalRuleID(v *uuid.UUID) *CommissionRuleCreate {
	if v != nil {
		_c.SetTotalRuleID(*v)
	}
	return _c
}

// SetParticipants sets the "participants" field.
func (_c *CommissionRuleCreate) SetParticipants(v []commission.Participant) *CommissionRuleCreate {
	_c.mutation.SetParticipants(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CommissionRuleCreate) SetStatus(v commissionrule.Status) *CommissionRuleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CommissionRuleCreate) SetNillableStatus(v *commissionrule.Status) *CommissionRuleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDevelopmentID sets the "development_id" field.
func (_c *CommissionRuleCreate) SetDevelopmentID(v uuid.UUID) *CommissionRuleCreate {
	_c.mutation.SetDevelopmentID(v)
	return _c
}

// SetNillableDevelopmentID sets the "development_id" field if the given value is not nil.
func (_c *CommissionRuleCreate) SetNillableDevelopmentID(v *uuid.UUID) *CommissionRuleCreate {
	if v != nil {
		_c.SetDevelopmentID(*v)
	}
	return _c
}

// SetProductID sets the "product_id" field.
func (_c *CommissionRuleCreate) SetProductID(v uuid.UUID) *CommissionRuleCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_c *CommissionRuleCreate) SetNillableProductID(v *uuid.UUID) *CommissionRuleCreate {
	if v != nil {
		_c.SetProductID(*v)
	}
	return _c
}

// SetValidFrom sets the "valid_from" field.
func (_c *CommissionRuleCreate) SetValidFrom(v time.Time) *CommissionRuleCreate {
	_c.mutation.SetValidFrom(v)
	return _c
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_c *CommissionRuleCreate) SetNillableValidFrom(v *time.Time) *CommissionRuleCreate {
	if v != nil {
		_c.SetValidFrom(*v)
	}
	return _c
}

// SetValidTo sets the "valid_to" field.
func (_c *CommissionRuleCreate) SetValidTo(v time.Time) *CommissionRuleCreate {
	_c.mutation.SetValidTo(v)
	return _c
}

// SetNillableValidTo sets the "valid_to" field if the given value is not nil.
func (_c *CommissionRuleCreate) SetNillableValidTo(v *time.Time) *CommissionRuleCreate {
	if v != nil {
		_c.SetValidTo(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommissionRuleCreate) SetID(v uuid.UUID) *CommissionRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CommissionRuleCreate) SetNillableID(v *uuid.UUID) *CommissionRuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CommissionRuleMutation object of the builder.
func (_c *CommissionRuleCreate) Mutation() *CommissionRuleMutation {
	return _c.mutation
}

// Save creates the CommissionRule in the database.
func (_c *CommissionRuleCreate) Save(ctx context.Context) (*CommissionRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommissionRuleCreate) SaveX(ctx context.Context) *CommissionRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommissionRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommissionRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommissionRuleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := commissionrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := commissionrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := commissionrule.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := commissionrule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommissionRuleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CommissionRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CommissionRule.updated_at"`)}
	}
	if _, ok := _c.mutation.AgencyID(); !ok {
		return &ValidationError{Name: "agency_id", err: errors.New(`repo: missing required field "CommissionRule.agency_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "CommissionRule.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := commissionrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "CommissionRule.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`repo: missing required field "CommissionRule.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := commissionrule.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "CommissionRule.kind": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ProductType(); ok {
		if err := commissionrule.ProductTypeValidator(v); err != nil {
			return &ValidationError{Name: "product_type", err: fmt.Errorf(`repo: validator failed for field "CommissionRule.product_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "CommissionRule.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := commissionrule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "CommissionRule.status": %w`, err)}
		}
	}
	return nil
}

func (_c *CommissionRuleCreate) sqlSave(ctx context.Context) (*CommissionRule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommissionRuleCreate) createSpec() (*CommissionRule, *sqlgraph.CreateSpec) {
	var (
		_node = &CommissionRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commissionrule.Table, sqlgraph.NewFieldSpec(commissionrule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(commissionrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(commissionrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AgencyID(); ok {
		_spec.SetField(commissionrule.FieldAgencyID, field.TypeUUID, value)
		_node.AgencyID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(commissionrule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(commissionrule.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(commissionrule.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.ProductType(); ok {
		_spec.SetField(commissionrule.FieldProductType, field.TypeEnum, value)
		_node.ProductType = &value
	}
	if value, ok := _c.mutation.TotalPercent(); ok {
		_spec.SetField(commissionrule.FieldTotalPercent, field.TypeFloat64, value)
		_node.TotalPercent = &value
	}
	if value, ok := _c.mutation.TotalRuleID(); ok {
		_spec.SetField(commissionrule.FieldTotalRuleID, field.TypeUUID, value)
		_node.TotalRuleID = &value
	}
	if value, ok := _c.mutation.Participants(); ok {
		_spec.SetField(commissionrule.FieldParticipants, field.TypeJSON, value)
		_node.Participants = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(commissionrule.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DevelopmentID(); ok {
		_spec.SetField(commissionrule.FieldDevelopmentID, field.TypeUUID, value)
		_node.DevelopmentID = &value
	}
	if value, ok := _c.mutation.ProductID(); ok {
		_spec.SetField(commissionrule.FieldProductID, field.TypeUUID, value)
		_node.ProductID = &value
	}
	if value, ok := _c.mutation.ValidFrom(); ok {
		_spec.SetField(commissionrule.FieldValidFrom, field.TypeTime, value)
		_node.ValidFrom = &value
	}
	if value, ok := _c.mutation.ValidTo(); ok {
		_spec.SetField(commissionrule.FieldValidTo, field.TypeTime, value)
		_node.ValidTo = &value
	}
	return _node, _spec
}

// CommissionRuleCreateBulk is the builder for creating many CommissionRule entities in bulk.
type CommissionRuleCreateBulk struct {
	config
	err      error
	builders []*CommissionRuleCreate
}

// Save creates the CommissionRule entities in the database.
func (_c *CommissionRuleCreateBulk) Save(ctx context.Context) ([]*CommissionRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommissionRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommissionRuleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CommissionRuleCreateBulk) SaveX(ctx context.Context) []*CommissionRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommissionRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommissionRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
