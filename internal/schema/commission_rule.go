package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/habitacasa/habitacasa_backend/internal/commission"
)

// CommissionRule stores both rule kinds in one table, discriminated by the
// kind column. Kind-specific columns are nullable; the validation engine in
// internal/commission guarantees the right combination is present before
// anything is written.
type CommissionRule struct {
	ent.Schema
}

func (CommissionRule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (CommissionRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("agency_id", uuid.UUID{}).
			Immutable().
			StructTag(`json:"real_estate_id"`).
			Comment("FK → agencies.id (tenant scope); exposed as real_estate_id on the wire"),

		field.String("name").
			MaxLen(255).
			NotEmpty().
			Comment("Unique among non-inactive rules of the same agency"),

		field.String("description").
			Optional().
			Nillable(),

		field.Enum("kind").
			Values("total", "distribution").
			Immutable(),

		field.Enum("product_type").
			Values("property", "land", "development").
			Optional().
			Nillable().
			Comment("Set when kind=total"),

		field.Float("total_percent").
			Optional().
			Nillable().
			Comment("Share of sale value the agency retains (0–100), kind=total"),

		field.UUID("total_rule_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → commission_rules.id of the distributed total rule, kind=distribution"),

		field.JSON("participants", []commission.Participant{}).
			Optional().
			Comment("Ordered beneficiary entries, kind=distribution"),

		field.Enum("status").
			Values("active", "inactive", "pending").
			Default("active").
			Comment("inactive is the soft-delete terminal state"),

		field.UUID("development_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Narrows the rule to one development"),

		field.UUID("product_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Narrows the rule to one listing"),

		field.Time("valid_from").
			Optional().
			Nillable(),

		field.Time("valid_to").
			Optional().
			Nillable(),
	}
}

func (CommissionRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agency_id"),
		index.Fields("agency_id", "name"),
		index.Fields("agency_id", "kind", "status"),
		index.Fields("total_rule_id"),
	}
}
