// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/habitacasa/habitacasa_backend/internal/repo/commissionrule"
	"github.com/habitacasa/habitacasa_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	commissionruleMixin := schema.CommissionRule{}.Mixin()
	commissionruleMixinFields0 := commissionruleMixin[0].Fields()
	_ = commissionruleMixinFields0
	commissionruleMixinFields1 := commissionruleMixin[1].Fields()
	_ = commissionruleMixinFields1
	commissionruleFields := schema.CommissionRule{}.Fields()
	_ = commissionruleFields
	// commissionruleDescCreatedAt is the schema descriptor for created_at field.
	commissionruleDescCreatedAt := commissionruleMixinFields1[0].Descriptor()
	// commissionrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	commissionrule.DefaultCreatedAt = commissionruleDescCreatedAt.Default.(func() time.Time)
	// commissionruleDescUpdatedAt is the schema descriptor for updated_at field.
	commissionruleDescUpdatedAt := commissionruleMixinFields1[1].Descriptor()
	// commissionrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	commissionrule.DefaultUpdatedAt = commissionruleDescUpdatedAt.Default.(func() time.Time)
	// commissionrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	commissionrule.UpdateDefaultUpdatedAt = commissionruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// commissionruleDescName is the schema descriptor for name field.
	commissionruleDescName := commissionruleFields[1].Descriptor()
	// commissionrule.NameValidator is a validator for the "name" field. It is called by the builders before save.
	commissionrule.NameValidator = func() func(string) error {
		validators := commissionruleDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// commissionruleDescID is the schema descriptor for id field.
	commissionruleDescID := commissionruleMixinFields0[0].Descriptor()
	// commissionrule.DefaultID holds the default value on creation for the id field.
	commissionrule.DefaultID = commissionruleDescID.Default.(func() uuid.UUID)
}
