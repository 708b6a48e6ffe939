// Package commission holds the domain model and validation engine for
// commission allocation rules. It is store-agnostic: persistence lookups are
// abstracted behind the Lookup interface so every invariant can be exercised
// with a stub.
package commission

import (
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Enums
// ---------------------------------------------------------------------------

// Kind discriminates the two rule payloads.
type Kind string

const (
	KindTotal        Kind = "total"
	KindDistribution Kind = "distribution"
)

func (k Kind) Valid() bool {
	return k == KindTotal || k == KindDistribution
}

// Status models the rule lifecycle: pending → active → inactive, with
// pending → inactive allowed for discarding unapproved rules. Inactive is
// terminal; reactivation means creating a new rule.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
// A no-op transition (same status) is always allowed.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusActive || next == StatusInactive
	case StatusActive:
		return next == StatusInactive
	}
	return false
}

// ProductType is the listing category a total rule applies to.
type ProductType string

const (
	ProductProperty    ProductType = "property"
	ProductLand        ProductType = "land"
	ProductDevelopment ProductType = "development"
)

func (p ProductType) Valid() bool {
	switch p {
	case ProductProperty, ProductLand, ProductDevelopment:
		return true
	}
	return false
}

// ParticipantType identifies one beneficiary class of a distribution rule.
type ParticipantType string

const (
	ParticipantAgency        ParticipantType = "agency"
	ParticipantLeadBroker    ParticipantType = "lead_broker"
	ParticipantSupportBroker ParticipantType = "support_broker"
	ParticipantCoordinator   ParticipantType = "coordinator"
	ParticipantGroup         ParticipantType = "group"
	ParticipantLeadGenerator ParticipantType = "lead_generator"
)

func (p ParticipantType) Valid() bool {
	switch p {
	case ParticipantAgency, ParticipantLeadBroker, ParticipantSupportBroker,
		ParticipantCoordinator, ParticipantGroup, ParticipantLeadGenerator:
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Stored shapes
// ---------------------------------------------------------------------------

// Participant is one beneficiary entry of a distribution rule. Participants
// are owned by their rule and have no independent identity; they are
// persisted as a JSON column.
type Participant struct {
	Type       ParticipantType `json:"participant_type"`
	Percent    float64         `json:"percent"`
	Active     bool            `json:"active"`
	Fixed      bool            `json:"fixed"`
	Mandatory  bool            `json:"mandatory"`
	GroupID    *uuid.UUID      `json:"group_id,omitempty"`
	PercentMin *float64        `json:"percent_min,omitempty"`
	PercentMax *float64        `json:"percent_max,omitempty"`
}

// TotalRule is the payload of a rule that defines the share of sale value
// the agency retains for one product type.
type TotalRule struct {
	ProductType ProductType
	Percent     float64
}

// DistributionRule is the payload of a rule that splits a referenced total
// rule's percentage among internal participants.
type DistributionRule struct {
	TotalRuleID  uuid.UUID
	Participants []Participant
}

// Rule is the domain view of a stored commission rule: a common envelope
// carrying exactly one of the two payloads. Kind is derived, not stored in
// the struct, which keeps "total rule with participants" unrepresentable.
type Rule struct {
	ID            uuid.UUID
	AgencyID      uuid.UUID
	Name          string
	Description   string
	Status        Status
	DevelopmentID *uuid.UUID
	ProductID     *uuid.UUID
	ValidFrom     *time.Time
	ValidTo       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Total        *TotalRule
	Distribution *DistributionRule
}

// Kind derives the discriminator from the payload that is present.
func (r *Rule) Kind() Kind {
	if r.Distribution != nil {
		return KindDistribution
	}
	return KindTotal
}

// ActivePercentSum returns the fresh sum of percent over active participants,
// rounded to 2 decimal places. Inactive participants are excluded so a parked
// participant definition does not count toward the cap. The sum is always
// recomputed from the full snapshot; no running total is kept anywhere.
func ActivePercentSum(participants []Participant) float64 {
	var sum float64
	for _, p := range participants {
		if p.Active {
			sum += p.Percent
		}
	}
	return round2(sum)
}

// ---------------------------------------------------------------------------
// Submission shapes
// ---------------------------------------------------------------------------

// TotalInput carries the total-rule payload of a submission. Percent is a
// pointer so "absent" and "zero" are distinguishable for required-field
// reporting.
type TotalInput struct {
	ProductType ProductType
	Percent     *float64
}

// DistributionInput carries the distribution-rule payload of a submission.
type DistributionInput struct {
	TotalRuleID  uuid.UUID
	Participants []ParticipantInput
}

// ParticipantInput is one submitted participant entry. Active defaults to
// true when omitted.
type ParticipantInput struct {
	Type       ParticipantType
	Percent    float64
	Active     *bool
	Fixed      bool
	Mandatory  bool
	GroupID    *uuid.UUID
	PercentMin *float64
	PercentMax *float64
}

func (p ParticipantInput) toParticipant() Participant {
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	return Participant{
		Type:       p.Type,
		Percent:    p.Percent,
		Active:     active,
		Fixed:      p.Fixed,
		Mandatory:  p.Mandatory,
		GroupID:    p.GroupID,
		PercentMin: p.PercentMin,
		PercentMax: p.PercentMax,
	}
}

// CreateInput is a full rule submission. Exactly one of Total/Distribution
// must match Kind; the handler builds whichever payload the wire kind names
// and the engine reports the conditional required fields.
type CreateInput struct {
	AgencyID      uuid.UUID
	Name          string
	Description   string
	Kind          Kind
	Status        Status // empty means active
	Total         *TotalInput
	Distribution  *DistributionInput
	DevelopmentID *uuid.UUID
	ProductID     *uuid.UUID
	ValidFrom     *time.Time
	ValidTo       *time.Time
}

// UpdatePatch is a partial rule submission. Kind and AgencyID are present
// only so the engine can reject attempts to change them; they are never
// applied. Participants replace the stored list wholesale when non-nil.
type UpdatePatch struct {
	Kind     *Kind
	AgencyID *uuid.UUID

	Name          *string
	Description   *string
	Status        *Status
	ProductType   *ProductType
	Percent       *float64
	TotalRuleID   *uuid.UUID
	Participants  []ParticipantInput
	DevelopmentID *uuid.UUID
	ProductID     *uuid.UUID
	ValidFrom     *time.Time
	ValidTo       *time.Time
}
