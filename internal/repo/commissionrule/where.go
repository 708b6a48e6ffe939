// Code generated by ent, DO NOT EDIT.

package commissionrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/habitacasa/habitacasa_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgencyID applies equality check predicate on the "agency_id" field. It's identical to AgencyIDEQ.
func AgencyID(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldAgencyID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldDescription, v))
}

// TotalPercent applies equality check predicate on the "total_percent" field. It's identical to TotalPercentEQ.
func TotalPercent(v float64) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldTotalPercent, v))
}

// TotalRuleID applies equality check predicate on the "total_rule_id" field. It's identical to TotalRuleIDEQ.
func TotalRuleID(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldTotalRuleID, v))
}

// DevelopmentID applies equality check predicate on the "development_id" field. It's identical to DevelopmentIDEQ.
func DevelopmentID(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldDevelopmentID, v))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldProductID, v))
}

// ValidFrom applies equality check predicate on the "valid_from" field. It's identical to ValidFromEQ.
func ValidFrom(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldValidFrom, v))
}

// ValidTo applies equality check predicate on the "valid_to" field. It's identical to ValidToEQ.
func ValidTo(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldValidTo, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// AgencyIDEQ applies the EQ predicate on the "agency_id" field.
func AgencyIDEQ(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldAgencyID, v))
}

// AgencyIDNEQ applies the NEQ predicate on the "agency_id" field.
func AgencyIDNEQ(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldAgencyID, v))
}

// AgencyIDIn applies the In predicate on the "agency_id" field.
func AgencyIDIn(vs ...uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldAgencyID, vs...))
}

// AgencyIDNotIn applies the NotIn predicate on the "agency_id" field.
func AgencyIDNotIn(vs ...uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldAgencyID, vs...))
}

// AgencyIDGT applies the GT predicate on the "agency_id" field.
func AgencyIDGT(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGT(FieldAgencyID, v))
}

// AgencyIDGTE applies the GTE predicate on the "agency_id" field.
func AgencyIDGTE(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGTE(FieldAgencyID, v))
}

// AgencyIDLT applies the LT predicate on the "agency_id" field.
func AgencyIDLT(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLT(FieldAgencyID, v))
}

// AgencyIDLTE applies the LTE predicate on the "agency_id" field.
func AgencyIDLTE(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLTE(FieldAgencyID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldContainsFold(FieldDescription, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldKind, vs...))
}

// ProductTypeEQ applies the EQ predicate on the "product_type" field.
func ProductTypeEQ(v ProductType) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldProductType, v))
}

// ProductTypeNEQ applies the NEQ predicate on the "product_type" field.
func ProductTypeNEQ(v ProductType) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldProductType, v))
}

// ProductTypeIn applies the In predicate on the "product_type" field.
func ProductTypeIn(vs ...ProductType) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldProductType, vs...))
}

// ProductTypeNotIn applies the NotIn predicate on the "product_type" field.
func ProductTypeNotIn(vs ...ProductType) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldProductType, vs...))
}

// ProductTypeIsNil applies the IsNil predicate on the "product_type" field.
func ProductTypeIsNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIsNull(FieldProductType))
}

// ProductTypeNotNil applies the NotNil predicate on the "product_type" field.
func ProductTypeNotNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotNull(FieldProductType))
}

// TotalPercentEQ applies the EQ predicate on the "total_percent" field.
func TotalPercentEQ(v float64) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldTotalPercent, v))
}

// TotalPercentNEQ applies the NEQ predicate on the "total_percent" field.
func TotalPercentNEQ(v float64) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldTotalPercent, v))
}

// TotalPercentIn applies the In predicate on the "total_percent" field.
func TotalPercentIn(vs ...float64) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldTotalPercent, vs...))
}

// TotalPercentNotIn applies the NotIn predicate on the "total_percent" field.
func TotalPercentNotIn(vs ...float64) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldTotalPercent, vs...))
}

// TotalPercentGT applies the GT predicate on the "total_percent" field.
func TotalPercentGT(v float64) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGT(FieldTotalPercent, v))
}

// TotalPercentGTE applies the GTE predicate on the "total_percent" field.
func TotalPercentGTE(v float64) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGTE(FieldTotalPercent, v))
}

// TotalPercentLT applies the LT predicate on the "total_percent" field.
func TotalPercentLT(v float64) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLT(FieldTotalPercent, v))
}

// TotalPercentLTE applies the LTE predicate on the "total_percent" field.
func TotalPercentLTE(v float64) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLTE(FieldTotalPercent, v))
}

// TotalPercentIsNil applies the IsNil predicate on the "total_percent" field.
func TotalPercentIsNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIsNull(FieldTotalPercent))
}

// TotalPercentNotNil applies the NotNil predicate on the "total_percent" field.
func TotalPercentNotNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotNull(FieldTotalPercent))
}

// TotalRuleIDEQ applies the EQ predicate on the "total_rule_id" field.
func TotalRuleIDEQ(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldTotalRuleID, v))
}

// TotalRuleIDNEQ applies the NEQ predicate on the "total_rule_id" field.
func TotalRuleIDNEQ(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldTotalRuleID, v))
}

// TotalRuleIDIn applies the In predicate on the "total_rule_id" field.
func TotalRuleIDIn(vs ...uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldTotalRuleID, vs...))
}

// TotalRuleIDNotIn applies the NotIn predicate on the "total_rule_id" field.
func TotalRuleIDNotIn(vs ...uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldTotalRuleID, vs...))
}

// TotalRuleIDGT applies the GT predicate on the "total_rule_id" field.
func TotalRuleIDGT(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGT(FieldTotalRuleID, v))
}

// TotalRuleIDGTE applies the GTE predicate on the "total_rule_id" field.
func TotalRuleIDGTE(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGTE(FieldTotalRuleID, v))
}

// TotalRuleIDLT applies the LT predicate on the "total_rule_id" field.
func TotalRuleIDLT(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLT(FieldTotalRuleID, v))
}

// TotalRuleIDLTE applies the LTE predicate on the "total_rule_id" field.
func TotalRuleIDLTE(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLTE(FieldTotalRuleID, v))
}

// TotalRuleIDIsNil applies the IsNil predicate on the "total_rule_id" field.
func TotalRuleIDIsNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIsNull(FieldTotalRuleID))
}

// TotalRuleIDNotNil applies the NotNil predicate on the "total_rule_id" field.
func TotalRuleIDNotNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotNull(FieldTotalRuleID))
}

// ParticipantsIsNil applies the IsNil predicate on the "participants" field.
func ParticipantsIsNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIsNull(FieldParticipants))
}

// ParticipantsNotNil applies the NotNil predicate on the "participants" field.
func ParticipantsNotNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotNull(FieldParticipants))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldStatus, vs...))
}

// DevelopmentIDEQ applies the EQ predicate on the "development_id" field.
func DevelopmentIDEQ(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldDevelopmentID, v))
}

// DevelopmentIDNEQ applies the NEQ predicate on the "development_id" field.
func DevelopmentIDNEQ(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldDevelopmentID, v))
}

// DevelopmentIDIn applies the In predicate on the "development_id" field.
func DevelopmentIDIn(vs ...uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldDevelopmentID, vs...))
}

// DevelopmentIDNotIn applies the NotIn predicate on the "development_id" field.
func DevelopmentIDNotIn(vs ...uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldDevelopmentID, vs...))
}

// DevelopmentIDGT applies the GT predicate on the "development_id" field.
func DevelopmentIDGT(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGT(FieldDevelopmentID, v))
}

// DevelopmentIDGTE applies the GTE predicate on the "development_id" field.
func DevelopmentIDGTE(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGTE(FieldDevelopmentID, v))
}

// DevelopmentIDLT applies the LT predicate on the "development_id" field.
func DevelopmentIDLT(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLT(FieldDevelopmentID, v))
}

// DevelopmentIDLTE applies the LTE predicate on the "development_id" field.
func DevelopmentIDLTE(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLTE(FieldDevelopmentID, v))
}

// DevelopmentIDIsNil applies the IsNil predicate on the "development_id" field.
func DevelopmentIDIsNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIsNull(FieldDevelopmentID))
}

// DevelopmentIDNotNil applies the NotNil predicate on the "development_id" field.
func DevelopmentIDNotNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotNull(FieldDevelopmentID))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldProductID, vs...))
}

// ProductIDGT applies the GT predicate on the "product_id" field.
func ProductIDGT(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGT(FieldProductID, v))
}

// ProductIDGTE applies the GTE predicate on the "product_id" field.
func ProductIDGTE(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGTE(FieldProductID, v))
}

// ProductIDLT applies the LT predicate on the "product_id" field.
func ProductIDLT(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLT(FieldProductID, v))
}

// ProductIDLTE applies the LTE predicate on the "product_id" field.
func ProductIDLTE(v uuid.UUID) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLTE(FieldProductID, v))
}

// ProductIDIsNil applies the IsNil predicate on the "product_id" field.
func ProductIDIsNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIsNull(FieldProductID))
}

// ProductIDNotNil applies the NotNil predicate on the "product_id" field.
func ProductIDNotNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotNull(FieldProductID))
}

// ValidFromEQ applies the EQ predicate on the "valid_from" field.
func ValidFromEQ(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldValidFrom, v))
}

// ValidFromNEQ applies the NEQ predicate on the "valid_from" field.
func ValidFromNEQ(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldValidFrom, v))
}

// ValidFromIn applies the In predicate on the "valid_from" field.
func ValidFromIn(vs ...time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldValidFrom, vs...))
}

// ValidFromNotIn applies the NotIn predicate on the "valid_from" field.
func ValidFromNotIn(vs ...time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldValidFrom, vs...))
}

// ValidFromGT applies the GT predicate on the "valid_from" field.
func ValidFromGT(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGT(FieldValidFrom, v))
}

// ValidFromGTE applies the GTE predicate on the "valid_from" field.
func ValidFromGTE(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGTE(FieldValidFrom, v))
}

// ValidFromLT applies the LT predicate on the "valid_from" field.
func ValidFromLT(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLT(FieldValidFrom, v))
}

// ValidFromLTE applies the LTE predicate on the "valid_from" field.
func ValidFromLTE(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLTE(FieldValidFrom, v))
}

// ValidFromIsNil applies the IsNil predicate on the "valid_from" field.
func ValidFromIsNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIsNull(FieldValidFrom))
}

// ValidFromNotNil applies the NotNil predicate on the "valid_from" field.
func ValidFromNotNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotNull(FieldValidFrom))
}

// ValidToEQ applies the EQ predicate on the "valid_to" field.
func ValidToEQ(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldEQ(FieldValidTo, v))
}

// ValidToNEQ applies the NEQ predicate on the "valid_to" field.
func ValidToNEQ(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNEQ(FieldValidTo, v))
}

// ValidToIn applies the In predicate on the "valid_to" field.
func ValidToIn(vs ...time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIn(FieldValidTo, vs...))
}

// ValidToNotIn applies the NotIn predicate on the "valid_to" field.
func ValidToNotIn(vs ...time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotIn(FieldValidTo, vs...))
}

// ValidToGT applies the GT predicate on the "valid_to" field.
func ValidToGT(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGT(FieldValidTo, v))
}

// ValidToGTE applies the GTE predicate on the "valid_to" field.
func ValidToGTE(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldGTE(FieldValidTo, v))
}

// ValidToLT applies the LT predicate on the "valid_to" field.
func ValidToLT(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLT(FieldValidTo, v))
}

// ValidToLTE applies the LTE predicate on the "valid_to" field.
func ValidToLTE(v time.Time) predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldLTE(FieldValidTo, v))
}

// ValidToIsNil applies the IsNil predicate on the "valid_to" field.
func ValidToIsNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldIsNull(FieldValidTo))
}

// ValidToNotNil applies the NotNil predicate on the "valid_to" field.
func ValidToNotNil() predicate.CommissionRule {
	return predicate.CommissionRule(sql.FieldNotNull(FieldValidTo))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommissionRule) predicate.CommissionRule {
	return predicate.CommissionRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommissionRule) predicate.CommissionRule {
	return predicate.CommissionRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommissionRule) predicate.CommissionRule {
	return predicate.CommissionRule(sql.NotPredicates(p))
}
