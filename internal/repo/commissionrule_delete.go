// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/habitacasa/habitacasa_backend/internal/repo/commissionrule"
	"github.com/habitacasa/habitacasa_backend/internal/repo/predicate"
)

// CommissionRuleDelete is the builder for deleting a CommissionRule entity.
type CommissionRuleDelete struct {
	config
	hooks    []Hook
	mutation *CommissionRuleMutation
}

// Where appends a list predicates to the CommissionRuleDelete builder.
func (_d *CommissionRuleDelete) Where(ps ...predicate.CommissionRule) *CommissionRuleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CommissionRuleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CommissionRuleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CommissionRuleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(commissionrule.Table, sqlgraph.NewFieldSpec(commissionrule.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CommissionRuleDeleteOne is the builder for deleting a single CommissionRule entity.
type CommissionRuleDeleteOne struct {
	_d *CommissionRuleDelete
}

// Where appends a list predicates to the CommissionRuleDelete builder.
func (_d *CommissionRuleDeleteOne) Where(ps ...predicate.CommissionRule) *CommissionRuleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CommissionRuleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{commissionrule.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CommissionRuleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
