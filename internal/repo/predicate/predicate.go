// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CommissionRule is the predicate function for commissionrule builders.
type CommissionRule func(*sql.Selector)
