// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/habitacasa/habitacasa_backend/internal/commission"
	"github.com/habitacasa/habitacasa_backend/internal/repo/commissionrule"
	"github.com/habitacasa/habitacasa_backend/internal/repo/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCommissionRule = "CommissionRule"
)

// CommissionRuleMutation represents an operation that mutates the CommissionRule nodes in the graph.
type CommissionRuleMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	agency_id          *uuid.UUID
	name               *string
	description        *string
	kind               *commissionrule.Kind
	product_type       *commissionrule.ProductType
	total_percent      *float64
	addtotal_percent   *float64
	total_rule_id      *uuid.UUID
	participants       *[]commission.Participant
	appendparticipants []commission.Participant
	status             *commissionrule.Status
	development_id     *uuid.UUID
	product_id         *uuid.UUID
	valid_from         *time.Time
	valid_to           *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*CommissionRule, error)
	predicates         []predicate.CommissionRule
}

var _ ent.Mutation = (*CommissionRuleMutation)(nil)

// commissionruleOption allows management of the mutation configuration using functional options.
type commissionruleOption func(*CommissionRuleMutation)

// newCommissionRuleMutation creates new mutation for the CommissionRule entity.
func newCommissionRuleMutation(c config, op Op, opts ...commissionruleOption) *CommissionRuleMutation {
	m := &CommissionRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeCommissionRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommissionRuleID sets the ID field of the mutation.
func withCommissionRuleID(id uuid.UUID) commissionruleOption {
	return func(m *CommissionRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *CommissionRule
		)
		m.oldValue = func(ctx context.Context) (*CommissionRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CommissionRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommissionRule sets the old CommissionRule of the mutation.
func withCommissionRule(node *CommissionRule) commissionruleOption {
	return func(m *CommissionRuleMutation) {
		m.oldValue = func(context.Context) (*CommissionRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommissionRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommissionRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CommissionRule entities.
func (m *CommissionRuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommissionRuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommissionRuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CommissionRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CommissionRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommissionRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommissionRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CommissionRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CommissionRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CommissionRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAgencyID sets the "agency_id" field.
func (m *CommissionRuleMutation) SetAgencyID(u uuid.UUID) {
	m.agency_id = &u
}

// AgencyID returns the value of the "agency_id" field in the mutation.
func (m *CommissionRuleMutation) AgencyID() (r uuid.UUID, exists bool) {
	v := m.agency_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgencyID returns the old "agency_id" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldAgencyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgencyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgencyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgencyID: %w", err)
	}
	return oldValue.AgencyID, nil
}

// ResetAgencyID resets all changes to the "agency_id" field.
func (m *CommissionRuleMutation) ResetAgencyID() {
	m.agency_id = nil
}

// SetName sets the "name" field.
func (m *CommissionRuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CommissionRuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CommissionRuleMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *CommissionRuleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CommissionRuleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CommissionRuleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[commissionrule.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CommissionRuleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[commissionrule.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CommissionRuleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, commissionrule.FieldDescription)
}

// SetKind sets the "kind" field.
func (m *CommissionRuleMutation) SetKind(c commissionrule.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *CommissionRuleMutation) Kind() (r commissionrule.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldKind(ctx context.Context) (v commissionrule.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *CommissionRuleMutation) ResetKind() {
	m.kind = nil
}

// SetProductType sets the "product_type" field.
func (m *CommissionRuleMutation) SetProductType(ct commissionrule.ProductType) {
	m.product_type = &ct
}

// ProductType returns the value of the "product_type" field in the mutation.
func (m *CommissionRuleMutation) ProductType() (r commissionrule.ProductType, exists bool) {
	v := m.product_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProductType returns the old "product_type" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldProductType(ctx context.Context) (v *commissionrule.ProductType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductType: %w", err)
	}
	return oldValue.ProductType, nil
}

// ClearProductType clears the value of the "product_type" field.
func (m *CommissionRuleMutation) ClearProductType() {
	m.product_type = nil
	m.clearedFields[commissionrule.FieldProductType] = struct{}{}
}

// ProductTypeCleared returns if the "product_type" field was cleared in this mutation.
func (m *CommissionRuleMutation) ProductTypeCleared() bool {
	_, ok := m.clearedFields[commissionrule.FieldProductType]
	return ok
}

// ResetProductType resets all changes to the "product_type" field.
func (m *CommissionRuleMutation) ResetProductType() {
	m.product_type = nil
	delete(m.clearedFields, commissionrule.FieldProductType)
}

// SetTotalPercent sets the "total_percent" field.
func (m *CommissionRuleMutation) SetTotalPercent(f float64) {
	m.total_percent = &f
	m.addtotal_percent = nil
}

// TotalPercent returns the value of the "total_percent" field in the mutation.
func (m *CommissionRuleMutation) TotalPercent() (r float64, exists bool) {
	v := m.total_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPercent returns the old "total_percent" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldTotalPercent(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPercent: %w", err)
	}
	return oldValue.TotalPercent, nil
}

// AddTotalPercent adds f to the "total_percent" field.
func (m *CommissionRuleMutation) AddTotalPercent(f float64) {
	if m.addtotal_percent != nil {
		*m.addtotal_percent += f
	} else {
		m.addtotal_percent = &f
	}
}

// AddedTotalPercent returns the value that was added to the "total_percent" field in this mutation.
func (m *CommissionRuleMutation) AddedTotalPercent() (r float64, exists bool) {
	v := m.addtotal_percent
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalPercent clears the value of the "total_percent" field.
func (m *CommissionRuleMutation) ClearTotalPercent() {
	m.total_percent = nil
	m.addtotal_percent = nil
	m.clearedFields[commissionrule.FieldTotalPercent] = struct{}{}
}

// TotalPercentCleared returns if the "total_percent" field was cleared in this mutation.
func (m *CommissionRuleMutation) TotalPercentCleared() bool {
	_, ok := m.clearedFields[commissionrule.FieldTotalPercent]
	return ok
}

// ResetTotalPercent resets all changes to the "total_percent" field.
func (m *CommissionRuleMutation) ResetTotalPercent() {
	m.total_percent = nil
	m.addtotal_percent = nil
	delete(m.clearedFields, commissionrule.FieldTotalPercent)
}

// SetTotalRuleID sets the "total_rule_id" field.
func (m *CommissionRuleMutation) SetTotalRuleID(u uuid.UUID) {
	m.total_rule_id = &u
}

// TotalRuleID returns the value of the "total_rule_id" field in the mutation.
func (m *CommissionRuleMutation) TotalRuleID() (r uuid.UUID, exists bool) {
	v := m.total_rule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRuleID returns the old "total_rule_id" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldTotalRuleID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRuleID: %w", err)
	}
	return oldValue.TotalRuleID, nil
}

// ClearTotalRuleID clears the value of the "total_rule_id" field.
func (m *CommissionRuleMutation) ClearTotalRuleID() {
	m.total_rule_id = nil
	m.clearedFields[commissionrule.FieldTotalRuleID] = struct{}{}
}

// TotalRuleIDCleared returns if the "total_rule_id" field was cleared in this mutation.
func (m *CommissionRuleMutation) TotalRuleIDCleared() bool {
	_, ok := m.clearedFields[commissionrule.FieldTotalRuleID]
	return ok
}

// ResetTotalRuleID resets all changes to the "total_rule_id" field.
func (m *CommissionRuleMutation) ResetTotalRuleID() {
	m.total_rule_id = nil
	delete(m.clearedFields, commissionrule.FieldTotalRuleID)
}

// SetParticipants sets the "participants" field.
func (m *CommissionRuleMutation) SetParticipants(c []commission.Participant) {
	m.participants = &c
	m.appendparticipants = nil
}

// Participants returns the value of the "participants" field in the mutation.
func (m *CommissionRuleMutation) Participants() (r []commission.Participant, exists bool) {
	v := m.participants
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipants returns the old "participants" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldParticipants(ctx context.Context) (v []commission.Participant, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipants: %w", err)
	}
	return oldValue.Participants, nil
}

// AppendParticipants adds c to the "participants" field.
func (m *CommissionRuleMutation) AppendParticipants(c []commission.Participant) {
	m.appendparticipants = append(m.appendparticipants, c...)
}

// AppendedParticipants returns the list of values that were appended to the "participants" field in this mutation.
func (m *CommissionRuleMutation) AppendedParticipants() ([]commission.Participant, bool) {
	if len(m.appendparticipants) == 0 {
		return nil, false
	}
	return m.appendparticipants, true
}

// ClearParticipants clears the value of the "participants" field.
func (m *CommissionRuleMutation) ClearParticipants() {
	m.participants = nil
	m.appendparticipants = nil
	m.clearedFields[commissionrule.FieldParticipants] = struct{}{}
}

// ParticipantsCleared returns if the "participants" field was cleared in this mutation.
func (m *CommissionRuleMutation) ParticipantsCleared() bool {
	_, ok := m.clearedFields[commissionrule.FieldParticipants]
	return ok
}

// ResetParticipants resets all changes to the "participants" field.
func (m *CommissionRuleMutation) ResetParticipants() {
	m.participants = nil
	m.appendparticipants = nil
	delete(m.clearedFields, commissionrule.FieldParticipants)
}

// SetStatus sets the "status" field.
func (m *CommissionRuleMutation) SetStatus(c commissionrule.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CommissionRuleMutation) Status() (r commissionrule.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldStatus(ctx context.Context) (v commissionrule.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CommissionRuleMutation) ResetStatus() {
	m.status = nil
}

// SetDevelopmentID sets the "development_id" field.
func (m *CommissionRuleMutation) SetDevelopmentID(u uuid.UUID) {
	m.development_id = &u
}

// DevelopmentID returns the value of the "development_id" field in the mutation.
func (m *CommissionRuleMutation) DevelopmentID() (r uuid.UUID, exists bool) {
	v := m.development_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDevelopmentID returns the old "development_id" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldDevelopmentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDevelopmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDevelopmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDevelopmentID: %w", err)
	}
	return oldValue.DevelopmentID, nil
}

// ClearDevelopmentID clears the value of the "development_id" field.
func (m *CommissionRuleMutation) ClearDevelopmentID() {
	m.development_id = nil
	m.clearedFields[commissionrule.FieldDevelopmentID] = struct{}{}
}

// DevelopmentIDCleared returns if the "development_id" field was cleared in this mutation.
func (m *CommissionRuleMutation) DevelopmentIDCleared() bool {
	_, ok := m.clearedFields[commissionrule.FieldDevelopmentID]
	return ok
}

// ResetDevelopmentID resets all changes to the "development_id" field.
func (m *CommissionRuleMutation) ResetDevelopmentID() {
	m.development_id = nil
	delete(m.clearedFields, commissionrule.FieldDevelopmentID)
}

// SetProductID sets the "product_id" field.
func (m *CommissionRuleMutation) SetProductID(u uuid.UUID) {
	m.product_id = &u
}

// ProductID returns the value of the "product_id" field in the mutation.
func (m *CommissionRuleMutation) ProductID() (r uuid.UUID, exists bool) {
	v := m.product_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProductID returns the old "product_id" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldProductID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductID: %w", err)
	}
	return oldValue.ProductID, nil
}

// ClearProductID clears the value of the "product_id" field.
func (m *CommissionRuleMutation) ClearProductID() {
	m.product_id = nil
	m.clearedFields[commissionrule.FieldProductID] = struct{}{}
}

// ProductIDCleared returns if the "product_id" field was cleared in this mutation.
func (m *CommissionRuleMutation) ProductIDCleared() bool {
	_, ok := m.clearedFields[commissionrule.FieldProductID]
	return ok
}

// ResetProductID resets all changes to the "product_id" field.
func (m *CommissionRuleMutation) ResetProductID() {
	m.product_id = nil
	delete(m.clearedFields, commissionrule.FieldProductID)
}

// SetValidFrom sets the "valid_from" field.
func (m *CommissionRuleMutation) SetValidFrom(t time.Time) {
	m.valid_from = &t
}

// ValidFrom returns the value of the "valid_from" field in the mutation.
func (m *CommissionRuleMutation) ValidFrom() (r time.Time, exists bool) {
	v := m.valid_from
	if v == nil {
		return
	}
	return *v, true
}

// OldValidFrom returns the old "valid_from" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldValidFrom(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidFrom: %w", err)
	}
	return oldValue.ValidFrom, nil
}

// ClearValidFrom clears the value of the "valid_from" field.
func (m *CommissionRuleMutation) ClearValidFrom() {
	m.valid_from = nil
	m.clearedFields[commissionrule.FieldValidFrom] = struct{}{}
}

// ValidFromCleared returns if the "valid_from" field was cleared in this mutation.
func (m *CommissionRuleMutation) ValidFromCleared() bool {
	_, ok := m.clearedFields[commissionrule.FieldValidFrom]
	return ok
}

// ResetValidFrom resets all changes to the "valid_from" field.
func (m *CommissionRuleMutation) ResetValidFrom() {
	m.valid_from = nil
	delete(m.clearedFields, commissionrule.FieldValidFrom)
}

// SetValidTo sets the "valid_to" field.
func (m *CommissionRuleMutation) SetValidTo(t time.Time) {
	m.valid_to = &t
}

// ValidTo returns the value of the "valid_to" field in the mutation.
func (m *CommissionRuleMutation) ValidTo() (r time.Time, exists bool) {
	v := m.valid_to
	if v == nil {
		return
	}
	return *v, true
}

// OldValidTo returns the old "valid_to" field's value of the CommissionRule entity.
// If the CommissionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionRuleMutation) OldValidTo(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidTo: %w", err)
	}
	return oldValue.ValidTo, nil
}

// ClearValidTo clears the value of the "valid_to" field.
func (m *CommissionRuleMutation) ClearValidTo() {
	m.valid_to = nil
	m.clearedFields[commissionrule.FieldValidTo] = struct{}{}
}

// ValidToCleared returns if the "valid_to" field was cleared in this mutation.
func (m *CommissionRuleMutation) ValidToCleared() bool {
	_, ok := m.clearedFields[commissionrule.FieldValidTo]
	return ok
}

// ResetValidTo resets all changes to the "valid_to" field.
func (m *CommissionRuleMutation) ResetValidTo() {
	m.valid_to = nil
	delete(m.clearedFields, commissionrule.FieldValidTo)
}

// Where appends a list predicates to the CommissionRuleMutation builder.
func (m *CommissionRuleMutation) Where(ps ...predicate.CommissionRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommissionRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommissionRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CommissionRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommissionRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommissionRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CommissionRule).
func (m *CommissionRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommissionRuleMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, commissionrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, commissionrule.FieldUpdatedAt)
	}
	if m.agency_id != nil {
		fields = append(fields, commissionrule.FieldAgencyID)
	}
	if m.name != nil {
		fields = append(fields, commissionrule.FieldName)
	}
	if m.description != nil {
		fields = append(fields, commissionrule.FieldDescription)
	}
	if m.kind != nil {
		fields = append(fields, commissionrule.FieldKind)
	}
	if m.product_type != nil {
		fields = append(fields, commissionrule.FieldProductType)
	}
	if m.total_percent != nil {
		fields = append(fields, commissionrule.FieldTotalPercent)
	}
	if m.total_rule_id != nil {
		fields = append(fields, commissionrule.FieldTotalRuleID)
	}
	if m.participants != nil {
		fields = append(fields, commissionrule.FieldParticipants)
	}
	if m.status != nil {
		fields = append(fields, commissionrule.FieldStatus)
	}
	if m.development_id != nil {
		fields = append(fields, commissionrule.FieldDevelopmentID)
	}
	if m.product_id != nil {
		fields = append(fields, commissionrule.FieldProductID)
	}
	if m.valid_from != nil {
		fields = append(fields, commissionrule.FieldValidFrom)
	}
	if m.valid_to != nil {
		fields = append(fields, commissionrule.FieldValidTo)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommissionRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case commissionrule.FieldCreatedAt:
		return m.CreatedAt()
	case commissionrule.FieldUpdatedAt:
		return m.UpdatedAt()
	case commissionrule.FieldAgencyID:
		return m.AgencyID()
	case commissionrule.FieldName:
		return m.Name()
	case commissionrule.FieldDescription:
		return m.Description()
	case commissionrule.FieldKind:
		return m.Kind()
	case commissionrule.FieldProductType:
		return m.ProductType()
	case commissionrule.FieldTotalPercent:
		return m.TotalPercent()
	case commissionrule.FieldTotalRuleID:
		return m.TotalRuleID()
	case commissionrule.FieldParticipants:
		return m.Participants()
	case commissionrule.FieldStatus:
		return m.Status()
	case commissionrule.FieldDevelopmentID:
		return m.DevelopmentID()
	case commissionrule.FieldProductID:
		return m.ProductID()
	case commissionrule.FieldValidFrom:
		return m.ValidFrom()
	case commissionrule.FieldValidTo:
		return m.ValidTo()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommissionRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case commissionrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case commissionrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case commissionrule.FieldAgencyID:
		return m.OldAgencyID(ctx)
	case commissionrule.FieldName:
		return m.OldName(ctx)
	case commissionrule.FieldDescription:
		return m.OldDescription(ctx)
	case commissionrule.FieldKind:
		return m.OldKind(ctx)
	case commissionrule.FieldProductType:
		return m.OldProductType(ctx)
	case commissionrule.FieldTotalPercent:
		return m.OldTotalPercent(ctx)
	case commissionrule.FieldTotalRuleID:
		return m.OldTotalRuleID(ctx)
	case commissionrule.FieldParticipants:
		return m.OldParticipants(ctx)
	case commissionrule.FieldStatus:
		return m.OldStatus(ctx)
	case commissionrule.FieldDevelopmentID:
		return m.OldDevelopmentID(ctx)
	case commissionrule.FieldProductID:
		return m.OldProductID(ctx)
	case commissionrule.FieldValidFrom:
		return m.OldValidFrom(ctx)
	case commissionrule.FieldValidTo:
		return m.OldValidTo(ctx)
	}
	return nil, fmt.Errorf("unknown CommissionRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommissionRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case commissionrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case commissionrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case commissionrule.FieldAgencyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgencyID(v)
		return nil
	case commissionrule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case commissionrule.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case commissionrule.FieldKind:
		v, ok := value.(commissionrule.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case commissionrule.FieldProductType:
		v, ok := value.(commissionrule.ProductType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductType(v)
		return nil
	case commissionrule.FieldTotalPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPercent(v)
		return nil
	case commissionrule.FieldTotalRuleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRuleID(v)
		return nil
	case commissionrule.FieldParticipants:
		v, ok := value.([]commission.Participant)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipants(v)
		return nil
	case commissionrule.FieldStatus:
		v, ok := value.(commissionrule.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case commissionrule.FieldDevelopmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDevelopmentID(v)
		return nil
	case commissionrule.FieldProductID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductID(v)
		return nil
	case commissionrule.FieldValidFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidFrom(v)
		return nil
	case commissionrule.FieldValidTo:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidTo(v)
		return nil
	}
	return fmt.Errorf("unknown CommissionRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommissionRuleMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_percent != nil {
		fields = append(fields, commissionrule.FieldTotalPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommissionRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case commissionrule.FieldTotalPercent:
		return m.AddedTotalPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommissionRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case commissionrule.FieldTotalPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPercent(v)
		return nil
	}
	return fmt.Errorf("unknown CommissionRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommissionRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(commissionrule.FieldDescription) {
		fields = append(fields, commissionrule.FieldDescription)
	}
	if m.FieldCleared(commissionrule.FieldProductType) {
		fields = append(fields, commissionrule.FieldProductType)
	}
	if m.FieldCleared(commissionrule.FieldTotalPercent) {
		fields = append(fields, commissionrule.FieldTotalPercent)
	}
	if m.FieldCleared(commissionrule.FieldTotalRuleID) {
		fields = append(fields, commissionrule.FieldTotalRuleID)
	}
	if m.FieldCleared(commissionrule.FieldParticipants) {
		fields = append(fields, commissionrule.FieldParticipants)
	}
	if m.FieldCleared(commissionrule.FieldDevelopmentID) {
		fields = append(fields, commissionrule.FieldDevelopmentID)
	}
	if m.FieldCleared(commissionrule.FieldProductID) {
		fields = append(fields, commissionrule.FieldProductID)
	}
	if m.FieldCleared(commissionrule.FieldValidFrom) {
		fields = append(fields, commissionrule.FieldValidFrom)
	}
	if m.FieldCleared(commissionrule.FieldValidTo) {
		fields = append(fields, commissionrule.FieldValidTo)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommissionRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommissionRuleMutation) ClearField(name string) error {
	switch name {
	case commissionrule.FieldDescription:
		m.ClearDescription()
		return nil
	case commissionrule.FieldProductType:
		m.ClearProductType()
		return nil
	case commissionrule.FieldTotalPercent:
		m.ClearTotalPercent()
		return nil
	case commissionrule.FieldTotalRuleID:
		m.ClearTotalRuleID()
		return nil
	case commissionrule.FieldParticipants:
		m.ClearParticipants()
		return nil
	case commissionrule.FieldDevelopmentID:
		m.ClearDevelopmentID()
		return nil
	case commissionrule.FieldProductID:
		m.ClearProductID()
		return nil
	case commissionrule.FieldValidFrom:
		m.ClearValidFrom()
		return nil
	case commissionrule.FieldValidTo:
		m.ClearValidTo()
		return nil
	}
	return fmt.Errorf("unknown CommissionRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommissionRuleMutation) ResetField(name string) error {
	switch name {
	case commissionrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case commissionrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case commissionrule.FieldAgencyID:
		m.ResetAgencyID()
		return nil
	case commissionrule.FieldName:
		m.ResetName()
		return nil
	case commissionrule.FieldDescription:
		m.ResetDescription()
		return nil
	case commissionrule.FieldKind:
		m.ResetKind()
		return nil
	case commissionrule.FieldProductType:
		m.ResetProductType()
		return nil
	case commissionrule.FieldTotalPercent:
		m.ResetTotalPercent()
		return nil
	case commissionrule.FieldTotalRuleID:
		m.ResetTotalRuleID()
		return nil
	case commissionrule.FieldParticipants:
		m.ResetParticipants()
		return nil
	case commissionrule.FieldStatus:
		m.ResetStatus()
		return nil
	case commissionrule.FieldDevelopmentID:
		m.ResetDevelopmentID()
		return nil
	case commissionrule.FieldProductID:
		m.ResetProductID()
		return nil
	case commissionrule.FieldValidFrom:
		m.ResetValidFrom()
		return nil
	case commissionrule.FieldValidTo:
		m.ResetValidTo()
		return nil
	}
	return fmt.Errorf("unknown CommissionRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommissionRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommissionRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommissionRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommissionRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommissionRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommissionRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommissionRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CommissionRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommissionRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CommissionRule edge %s", name)
}
