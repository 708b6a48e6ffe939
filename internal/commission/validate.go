package commission

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Store lookups
// ---------------------------------------------------------------------------

// RuleRef is the subset of a stored rule the engine needs when resolving a
// total-rule reference.
type RuleRef struct {
	Kind   Kind
	Status Status
}

// Lookup is the narrow store surface the engine depends on. The rule store
// implements it against the database; tests implement it with stubs.
type Lookup interface {
	// NameTaken reports whether a non-inactive rule other than excludeID
	// already uses name within the agency. Matching is case-sensitive exact.
	NameTaken(ctx context.Context, agencyID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)

	// FindRuleRef resolves id within the agency. Returns nil when absent.
	FindRuleRef(ctx context.Context, agencyID, id uuid.UUID) (*RuleRef, error)

	// CountActiveDependents counts non-inactive distribution rules
	// referencing totalRuleID.
	CountActiveDependents(ctx context.Context, totalRuleID uuid.UUID) (int, error)
}

// ---------------------------------------------------------------------------
// Engine
// ---------------------------------------------------------------------------

// Engine enforces every cross-field and cross-record invariant on rule
// submissions. Expected business violations come back as *ValidationError or
// ErrHasActiveDependents; only store failures propagate as plain errors.
type Engine struct {
	store Lookup
}

func NewEngine(store Lookup) *Engine {
	return &Engine{store: store}
}

// ValidateCreate checks a full submission and returns the normalized rule
// ready for persistence. All invariants are evaluated independently so the
// caller receives every violation in one pass.
func (e *Engine) ValidateCreate(ctx context.Context, in CreateInput) (*Rule, error) {
	var v violations

	in.Name = strings.TrimSpace(in.Name)

	if in.AgencyID == uuid.Nil {
		v.add("real_estate_id", "required")
	}
	if in.Name == "" {
		v.add("name", "required")
	}

	status := in.Status
	if status == "" {
		status = StatusActive
	}
	switch {
	case !status.Valid():
		v.add("status", "must be one of active, inactive, pending")
	case status == StatusInactive:
		v.add("status", "a rule cannot be created inactive")
	}

	rule := &Rule{
		AgencyID:      in.AgencyID,
		Name:          in.Name,
		Description:   strings.TrimSpace(in.Description),
		Status:        status,
		DevelopmentID: in.DevelopmentID,
		ProductID:     in.ProductID,
		ValidFrom:     in.ValidFrom,
		ValidTo:       in.ValidTo,
	}

	switch in.Kind {
	case KindTotal:
		rule.Total = e.checkTotal(in.Total, &v)
	case KindDistribution:
		dist, err := e.checkDistribution(ctx, in.AgencyID, in.Distribution, &v)
		if err != nil {
			return nil, err
		}
		rule.Distribution = dist
	default:
		v.add("kind", "must be one of total, distribution")
	}

	checkDateRange(in.ValidFrom, in.ValidTo, &v)

	if err := e.checkNameUnique(ctx, in.AgencyID, in.Name, uuid.Nil, &v); err != nil {
		return nil, err
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	return rule, nil
}

// ValidateUpdate re-validates the merged (existing + patch) view and returns
// it, ready to be written back. Kind and agency are immutable: a patch that
// tries to change either is rejected, never silently ignored.
func (e *Engine) ValidateUpdate(ctx context.Context, cur Rule, patch UpdatePatch) (*Rule, error) {
	var v violations

	if cur.Status == StatusInactive {
		v.add("status", "inactive rules cannot be modified")
		return nil, v.err()
	}

	if patch.Kind != nil && *patch.Kind != cur.Kind() {
		v.add("kind", "immutable")
	}
	if patch.AgencyID != nil && *patch.AgencyID != cur.AgencyID {
		v.add("real_estate_id", "immutable")
	}

	merged := cur
	if patch.Name != nil {
		merged.Name = strings.TrimSpace(*patch.Name)
		if merged.Name == "" {
			v.add("name", "required")
		}
	}
	if patch.Description != nil {
		merged.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.DevelopmentID != nil {
		merged.DevelopmentID = patch.DevelopmentID
	}
	if patch.ProductID != nil {
		merged.ProductID = patch.ProductID
	}
	if patch.ValidFrom != nil {
		merged.ValidFrom = patch.ValidFrom
	}
	if patch.ValidTo != nil {
		merged.ValidTo = patch.ValidTo
	}

	if patch.Status != nil {
		switch {
		case !patch.Status.Valid():
			v.add("status", "must be one of active, inactive, pending")
		case !cur.Status.CanTransitionTo(*patch.Status):
			v.add("status", "cannot transition from %s to %s", cur.Status, *patch.Status)
		default:
			merged.Status = *patch.Status
		}
	}

	switch cur.Kind() {
	case KindTotal:
		if patch.TotalRuleID != nil {
			v.add("total_rule_id", "not applicable to total rules")
		}
		if patch.Participants != nil {
			v.add("participants", "not applicable to total rules")
		}
		t := *cur.Total
		if patch.ProductType != nil {
			t.ProductType = *patch.ProductType
		}
		if patch.Percent != nil {
			t.Percent = *patch.Percent
		}
		pct := t.Percent
		merged.Total = e.checkTotal(&TotalInput{ProductType: t.ProductType, Percent: &pct}, &v)

	case KindDistribution:
		if patch.ProductType != nil {
			v.add("product_type", "not applicable to distribution rules")
		}
		if patch.Percent != nil {
			v.add("total_percent", "not applicable to distribution rules")
		}
		in := DistributionInput{TotalRuleID: cur.Distribution.TotalRuleID}
		if patch.TotalRuleID != nil {
			in.TotalRuleID = *patch.TotalRuleID
		}
		if patch.Participants != nil {
			in.Participants = patch.Participants
		} else {
			for _, p := range cur.Distribution.Participants {
				active := p.Active
				in.Participants = append(in.Participants, ParticipantInput{
					Type:       p.Type,
					Percent:    p.Percent,
					Active:     &active,
					Fixed:      p.Fixed,
					Mandatory:  p.Mandatory,
					GroupID:    p.GroupID,
					PercentMin: p.PercentMin,
					PercentMax: p.PercentMax,
				})
			}
		}
		dist, err := e.checkDistribution(ctx, cur.AgencyID, &in, &v)
		if err != nil {
			return nil, err
		}
		merged.Distribution = dist
	}

	checkDateRange(merged.ValidFrom, merged.ValidTo, &v)

	if patch.Name != nil && merged.Name != "" {
		if err := e.checkNameUnique(ctx, cur.AgencyID, merged.Name, cur.ID, &v); err != nil {
			return nil, err
		}
	}

	if err := v.err(); err != nil {
		return nil, err
	}

	// Deactivating a total rule is equivalent to deleting it as far as
	// dependents are concerned.
	if cur.Kind() == KindTotal && merged.Status == StatusInactive && cur.Status != StatusInactive {
		if err := e.ValidateDeletion(ctx, cur); err != nil {
			return nil, err
		}
	}

	return &merged, nil
}

// ValidateDeletion refuses to retire a total rule while any non-inactive
// distribution rule references it.
func (e *Engine) ValidateDeletion(ctx context.Context, cur Rule) error {
	if cur.Kind() != KindTotal {
		return nil
	}
	n, err := e.store.CountActiveDependents(ctx, cur.ID)
	if err != nil {
		return fmt.Errorf("count active dependents: %w", err)
	}
	if n > 0 {
		return ErrHasActiveDependents
	}
	return nil
}

// ---------------------------------------------------------------------------
// Invariant checks
// ---------------------------------------------------------------------------

func (e *Engine) checkTotal(in *TotalInput, v *violations) *TotalRule {
	if in == nil {
		v.add("product_type", "required for total rules")
		v.add("total_percent", "required for total rules")
		return nil
	}

	out := &TotalRule{ProductType: in.ProductType}

	switch {
	case in.ProductType == "":
		v.add("product_type", "required for total rules")
	case !in.ProductType.Valid():
		v.add("product_type", "must be one of property, land, development")
	}

	if in.Percent == nil {
		v.add("total_percent", "required for total rules")
	} else {
		out.Percent = *in.Percent
		if !inPercentRange(*in.Percent) {
			v.add("total_percent", "must be between 0 and 100")
		}
	}
	return out
}

func (e *Engine) checkDistribution(ctx context.Context, agencyID uuid.UUID, in *DistributionInput, v *violations) (*DistributionRule, error) {
	if in == nil {
		v.add("total_rule_id", "required for distribution rules")
		v.add("participants", "at least one participant is required")
		return nil, nil
	}

	out := &DistributionRule{TotalRuleID: in.TotalRuleID}

	if in.TotalRuleID == uuid.Nil {
		v.add("total_rule_id", "required for distribution rules")
	} else if agencyID != uuid.Nil {
		ref, err := e.store.FindRuleRef(ctx, agencyID, in.TotalRuleID)
		if err != nil {
			return nil, fmt.Errorf("resolve total rule reference: %w", err)
		}
		switch {
		case ref == nil:
			v.add("total_rule_id", "referenced total rule does not exist")
		case ref.Kind != KindTotal:
			v.add("total_rule_id", "referenced rule is not a total rule")
		case ref.Status == StatusInactive:
			v.add("total_rule_id", "referenced total rule is inactive")
		}
	}

	if len(in.Participants) == 0 {
		v.add("participants", "at least one participant is required")
		return out, nil
	}

	mandatory := map[ParticipantType]bool{}
	activeByType := map[ParticipantType]bool{}

	for i, pin := range in.Participants {
		p := pin.toParticipant()
		out.Participants = append(out.Participants, p)
		checkParticipant(i, p, v)

		if p.Mandatory {
			mandatory[p.Type] = true
		}
		if p.Active {
			activeByType[p.Type] = true
		}
	}

	// The aggregate cap is recomputed from the snapshot every time.
	if sum := ActivePercentSum(out.Participants); sum > 100 {
		v.add("participants", "active participant percents sum to %s, exceeding 100", trimFloat(sum))
	}

	for t := range mandatory {
		if !activeByType[t] {
			v.add("participants", "mandatory participant type %s has no active entry", t)
		}
	}

	return out, nil
}

func checkParticipant(i int, p Participant, v *violations) {
	field := func(name string) string {
		return fmt.Sprintf("participants[%d].%s", i, name)
	}

	if !p.Type.Valid() {
		v.add(field("participant_type"), "must be one of agency, lead_broker, support_broker, coordinator, group, lead_generator")
	}
	if !inPercentRange(p.Percent) {
		v.add(field("percent"), "must be between 0 and 100")
	}

	min, max := p.PercentMin, p.PercentMax
	if min != nil && !inPercentRange(*min) {
		v.add(field("percent_min"), "must be between 0 and 100")
	}
	if max != nil && !inPercentRange(*max) {
		v.add(field("percent_max"), "must be between 0 and 100")
	}
	if min != nil && max != nil {
		if *min > *max {
			v.add(field("percent_min"), "must not exceed percent_max")
		} else if p.Percent < *min || p.Percent > *max {
			v.add(field("percent"), "must be between %s and %s", trimFloat(*min), trimFloat(*max))
		}
	}
}

func checkDateRange(from, to *time.Time, v *violations) {
	if from != nil && to != nil && !to.After(*from) {
		v.add("valid_to", "must be after valid_from")
	}
}

func (e *Engine) checkNameUnique(ctx context.Context, agencyID uuid.UUID, name string, excludeID uuid.UUID, v *violations) error {
	if agencyID == uuid.Nil || name == "" {
		return nil
	}
	taken, err := e.store.NameTaken(ctx, agencyID, name, excludeID)
	if err != nil {
		return fmt.Errorf("check name uniqueness: %w", err)
	}
	if taken {
		v.add("name", "already used by another non-inactive rule in this agency")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func inPercentRange(f float64) bool {
	return f >= 0 && f <= 100
}

// round2 rounds to 2 decimal places so binary float noise cannot push an
// exact-100 split over the cap.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
