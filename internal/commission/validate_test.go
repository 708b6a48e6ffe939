package commission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Stub store
// ---------------------------------------------------------------------------

type stubStore struct {
	takenNames map[uuid.UUID]map[string]bool
	refs       map[uuid.UUID]RuleRef
	dependents map[uuid.UUID]int
	err        error
}

func (s *stubStore) NameTaken(_ context.Context, agencyID uuid.UUID, name string, _ uuid.UUID) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.takenNames[agencyID][name], nil
}

func (s *stubStore) FindRuleRef(_ context.Context, _, id uuid.UUID) (*RuleRef, error) {
	if s.err != nil {
		return nil, s.err
	}
	ref, ok := s.refs[id]
	if !ok {
		return nil, nil
	}
	return &ref, nil
}

func (s *stubStore) CountActiveDependents(_ context.Context, totalRuleID uuid.UUID) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.dependents[totalRuleID], nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

var (
	agencyA = uuid.MustParse("018f0000-0000-7000-8000-00000000000a")
	agencyB = uuid.MustParse("018f0000-0000-7000-8000-00000000000b")
	totalID = uuid.MustParse("018f0000-0000-7000-8000-000000000001")
	distID  = uuid.MustParse("018f0000-0000-7000-8000-000000000002")
)

func newStore() *stubStore {
	return &stubStore{
		takenNames: map[uuid.UUID]map[string]bool{},
		refs: map[uuid.UUID]RuleRef{
			totalID: {Kind: KindTotal, Status: StatusActive},
			distID:  {Kind: KindDistribution, Status: StatusActive},
		},
		dependents: map[uuid.UUID]int{},
	}
}

func fp(f float64) *float64 { return &f }

func bp(b bool) *bool { return &b }

func validTotalInput() CreateInput {
	return CreateInput{
		AgencyID: agencyA,
		Name:     "Standard sale",
		Kind:     KindTotal,
		Total:    &TotalInput{ProductType: ProductProperty, Percent: fp(6)},
	}
}

func validDistributionInput(parts ...ParticipantInput) CreateInput {
	if len(parts) == 0 {
		parts = []ParticipantInput{
			{Type: ParticipantAgency, Percent: 40},
			{Type: ParticipantLeadBroker, Percent: 60},
		}
	}
	return CreateInput{
		AgencyID:     agencyA,
		Name:         "Standard split",
		Kind:         KindDistribution,
		Distribution: &DistributionInput{TotalRuleID: totalID, Participants: parts},
	}
}

func fieldsOf(t *testing.T, err error) map[string]int {
	t.Helper()
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	out := map[string]int{}
	for _, viol := range ve.Violations {
		out[viol.Field]++
	}
	return out
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestValidateCreate_TotalOK(t *testing.T) {
	e := NewEngine(newStore())

	rule, err := e.ValidateCreate(context.Background(), validTotalInput())
	if err != nil {
		t.Fatalf("ValidateCreate() error = %v", err)
	}
	if rule.Kind() != KindTotal {
		t.Errorf("Kind() = %s, want total", rule.Kind())
	}
	if rule.Status != StatusActive {
		t.Errorf("Status = %s, want active (default)", rule.Status)
	}
	if rule.Total == nil || rule.Total.Percent != 6 {
		t.Errorf("Total payload not normalized: %+v", rule.Total)
	}
}

func TestValidateCreate_TotalRequiredFields(t *testing.T) {
	e := NewEngine(newStore())

	in := validTotalInput()
	in.Total = &TotalInput{}

	_, err := e.ValidateCreate(context.Background(), in)
	fields := fieldsOf(t, err)
	if fields["product_type"] == 0 {
		t.Error("missing product_type not reported")
	}
	if fields["total_percent"] == 0 {
		t.Error("missing total_percent not reported")
	}
}

func TestValidateCreate_DistributionRequiredFields(t *testing.T) {
	e := NewEngine(newStore())

	in := validDistributionInput()
	in.Distribution = &DistributionInput{}

	_, err := e.ValidateCreate(context.Background(), in)
	fields := fieldsOf(t, err)
	if fields["total_rule_id"] == 0 {
		t.Error("missing total_rule_id not reported")
	}
	if fields["participants"] == 0 {
		t.Error("empty participants not reported")
	}
}

func TestValidateCreate_ReportsAllViolations(t *testing.T) {
	e := NewEngine(newStore())

	// Missing agency, name, payload and a reversed date range at once.
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	in := CreateInput{
		Kind:      KindTotal,
		ValidFrom: &from,
		ValidTo:   &to,
	}

	_, err := e.ValidateCreate(context.Background(), in)
	fields := fieldsOf(t, err)
	for _, f := range []string{"real_estate_id", "name", "product_type", "total_percent", "valid_to"} {
		if fields[f] == 0 {
			t.Errorf("violation for %s not reported, got %v", f, fields)
		}
	}
}

func TestValidateCreate_SumInvariant(t *testing.T) {
	tests := []struct {
		name    string
		parts   []ParticipantInput
		wantErr bool
	}{
		{
			name: "exactly 100 accepted",
			parts: []ParticipantInput{
				{Type: ParticipantAgency, Percent: 40},
				{Type: ParticipantLeadBroker, Percent: 60},
			},
		},
		{
			name: "100.01 rejected",
			parts: []ParticipantInput{
				{Type: ParticipantAgency, Percent: 40.01},
				{Type: ParticipantLeadBroker, Percent: 60},
			},
			wantErr: true,
		},
		{
			name: "inactive participants excluded",
			parts: []ParticipantInput{
				{Type: ParticipantAgency, Percent: 60},
				{Type: ParticipantLeadBroker, Percent: 60, Active: bp(false)},
			},
		},
		{
			name: "float noise on an exact split tolerated",
			parts: []ParticipantInput{
				{Type: ParticipantAgency, Percent: 33.3},
				{Type: ParticipantLeadBroker, Percent: 33.3},
				{Type: ParticipantSupportBroker, Percent: 33.4},
			},
		},
		{
			name: "under 100 accepted",
			parts: []ParticipantInput{
				{Type: ParticipantCoordinator, Percent: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(newStore())
			_, err := e.ValidateCreate(context.Background(), validDistributionInput(tt.parts...))
			if tt.wantErr {
				if fields := fieldsOf(t, err); fields["participants"] == 0 {
					t.Errorf("expected participants sum violation, got %v", fields)
				}
			} else if err != nil {
				t.Errorf("ValidateCreate() error = %v", err)
			}
		})
	}
}

func TestValidateCreate_ParticipantBounds(t *testing.T) {
	tests := []struct {
		name      string
		part      ParticipantInput
		wantField string
	}{
		{
			name:      "percent above 100",
			part:      ParticipantInput{Type: ParticipantAgency, Percent: 100.5},
			wantField: "participants[0].percent",
		},
		{
			name:      "negative percent",
			part:      ParticipantInput{Type: ParticipantAgency, Percent: -1},
			wantField: "participants[0].percent",
		},
		{
			name:      "unknown participant type",
			part:      ParticipantInput{Type: "janitor", Percent: 10},
			wantField: "participants[0].participant_type",
		},
		{
			name:      "percent_min above percent_max",
			part:      ParticipantInput{Type: ParticipantAgency, Percent: 10, PercentMin: fp(50), PercentMax: fp(20)},
			wantField: "participants[0].percent_min",
		},
		{
			name:      "percent outside narrowed bounds",
			part:      ParticipantInput{Type: ParticipantAgency, Percent: 10, PercentMin: fp(20), PercentMax: fp(30)},
			wantField: "participants[0].percent",
		},
		{
			name:      "percent_max outside 0..100",
			part:      ParticipantInput{Type: ParticipantAgency, Percent: 10, PercentMax: fp(120)},
			wantField: "participants[0].percent_max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(newStore())
			_, err := e.ValidateCreate(context.Background(), validDistributionInput(tt.part))
			if fields := fieldsOf(t, err); fields[tt.wantField] == 0 {
				t.Errorf("expected violation on %s, got %v", tt.wantField, fields)
			}
		})
	}
}

func TestValidateCreate_MandatoryParticipant(t *testing.T) {
	e := NewEngine(newStore())

	// The only coordinator entry is mandatory but inactive.
	in := validDistributionInput(
		ParticipantInput{Type: ParticipantAgency, Percent: 50},
		ParticipantInput{Type: ParticipantCoordinator, Percent: 10, Mandatory: true, Active: bp(false)},
	)
	_, err := e.ValidateCreate(context.Background(), in)
	if fields := fieldsOf(t, err); fields["participants"] == 0 {
		t.Errorf("expected mandatory-participant violation, got %v", fields)
	}

	// A second, active coordinator satisfies the requirement.
	in = validDistributionInput(
		ParticipantInput{Type: ParticipantAgency, Percent: 50},
		ParticipantInput{Type: ParticipantCoordinator, Percent: 10, Mandatory: true, Active: bp(false)},
		ParticipantInput{Type: ParticipantCoordinator, Percent: 10},
	)
	if _, err := e.ValidateCreate(context.Background(), in); err != nil {
		t.Errorf("ValidateCreate() error = %v", err)
	}
}

func TestValidateCreate_ReferentialIntegrity(t *testing.T) {
	tests := []struct {
		name string
		ref  uuid.UUID
	}{
		{"nonexistent reference", uuid.MustParse("018f0000-0000-7000-8000-0000000000ff")},
		{"reference to a distribution rule", distID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(newStore())
			in := validDistributionInput()
			in.Distribution.TotalRuleID = tt.ref
			_, err := e.ValidateCreate(context.Background(), in)
			if fields := fieldsOf(t, err); fields["total_rule_id"] == 0 {
				t.Errorf("expected total_rule_id violation, got %v", fields)
			}
		})
	}
}

func TestValidateCreate_InactiveReferenceRejected(t *testing.T) {
	store := newStore()
	store.refs[totalID] = RuleRef{Kind: KindTotal, Status: StatusInactive}
	e := NewEngine(store)

	_, err := e.ValidateCreate(context.Background(), validDistributionInput())
	if fields := fieldsOf(t, err); fields["total_rule_id"] == 0 {
		t.Errorf("expected total_rule_id violation, got %v", fields)
	}
}

func TestValidateCreate_NameUniqueness(t *testing.T) {
	store := newStore()
	store.takenNames[agencyA] = map[string]bool{"Standard sale": true}
	e := NewEngine(store)

	in := validTotalInput()
	_, err := e.ValidateCreate(context.Background(), in)
	if fields := fieldsOf(t, err); fields["name"] == 0 {
		t.Errorf("expected duplicate-name violation, got %v", fields)
	}

	// Same name in a different agency is fine.
	in.AgencyID = agencyB
	if _, err := e.ValidateCreate(context.Background(), in); err != nil {
		t.Errorf("ValidateCreate() error = %v", err)
	}
}

func TestValidateCreate_DateRange(t *testing.T) {
	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		from, to *time.Time
		wantErr  bool
	}{
		{"ordered range accepted", &jan, &jun, false},
		{"reversed range rejected", &jun, &jan, true},
		{"equal boundaries rejected", &jan, &jan, true},
		{"open-ended range accepted", &jan, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(newStore())
			in := validTotalInput()
			in.ValidFrom = tt.from
			in.ValidTo = tt.to
			_, err := e.ValidateCreate(context.Background(), in)
			if tt.wantErr {
				if fields := fieldsOf(t, err); fields["valid_to"] == 0 {
					t.Errorf("expected valid_to violation, got %v", fields)
				}
			} else if err != nil {
				t.Errorf("ValidateCreate() error = %v", err)
			}
		})
	}
}

func TestValidateCreate_Status(t *testing.T) {
	tests := []struct {
		name    string
		status  Status
		wantErr bool
	}{
		{"default active", "", false},
		{"pending accepted", StatusPending, false},
		{"inactive rejected", StatusInactive, true},
		{"unknown rejected", Status("archived"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(newStore())
			in := validTotalInput()
			in.Status = tt.status
			_, err := e.ValidateCreate(context.Background(), in)
			if tt.wantErr {
				if fields := fieldsOf(t, err); fields["status"] == 0 {
					t.Errorf("expected status violation, got %v", fields)
				}
			} else if err != nil {
				t.Errorf("ValidateCreate() error = %v", err)
			}
		})
	}
}

func TestValidateCreate_StoreFailurePropagates(t *testing.T) {
	store := newStore()
	store.err = errors.New("connection refused")
	e := NewEngine(store)

	_, err := e.ValidateCreate(context.Background(), validDistributionInput())
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := AsValidationError(err); ok {
		t.Errorf("store failure must not surface as a validation error: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func storedTotal() Rule {
	return Rule{
		ID:       totalID,
		AgencyID: agencyA,
		Name:     "Standard sale",
		Status:   StatusActive,
		Total:    &TotalRule{ProductType: ProductProperty, Percent: 6},
	}
}

func storedDistribution() Rule {
	return Rule{
		ID:       distID,
		AgencyID: agencyA,
		Name:     "Standard split",
		Status:   StatusActive,
		Distribution: &DistributionRule{
			TotalRuleID: totalID,
			Participants: []Participant{
				{Type: ParticipantAgency, Percent: 40, Active: true},
				{Type: ParticipantLeadBroker, Percent: 60, Active: true},
			},
		},
	}
}

func TestValidateUpdate_ImmutableFields(t *testing.T) {
	otherKind := KindDistribution
	sameKind := KindTotal

	tests := []struct {
		name      string
		patch     UpdatePatch
		wantField string
	}{
		{"changing kind rejected", UpdatePatch{Kind: &otherKind}, "kind"},
		{"changing agency rejected", UpdatePatch{AgencyID: &agencyB}, "real_estate_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(newStore())
			_, err := e.ValidateUpdate(context.Background(), storedTotal(), tt.patch)
			if fields := fieldsOf(t, err); fields[tt.wantField] == 0 {
				t.Errorf("expected %s violation, got %v", tt.wantField, fields)
			}
		})
	}

	// Restating the current value is not a change.
	e := NewEngine(newStore())
	if _, err := e.ValidateUpdate(context.Background(), storedTotal(), UpdatePatch{Kind: &sameKind, AgencyID: &agencyA}); err != nil {
		t.Errorf("ValidateUpdate() error = %v", err)
	}
}

func TestValidateUpdate_StatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		next    Status
		wantErr bool
	}{
		{"pending to active", StatusPending, StatusActive, false},
		{"pending to inactive", StatusPending, StatusInactive, false},
		{"active to inactive", StatusActive, StatusInactive, false},
		{"active to pending rejected", StatusActive, StatusPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(newStore())
			cur := storedDistribution()
			cur.Status = tt.current
			_, err := e.ValidateUpdate(context.Background(), cur, UpdatePatch{Status: &tt.next})
			if tt.wantErr {
				if fields := fieldsOf(t, err); fields["status"] == 0 {
					t.Errorf("expected status violation, got %v", fields)
				}
			} else if err != nil {
				t.Errorf("ValidateUpdate() error = %v", err)
			}
		})
	}
}

func TestValidateUpdate_InactiveRuleFrozen(t *testing.T) {
	e := NewEngine(newStore())
	cur := storedTotal()
	cur.Status = StatusInactive

	name := "Renamed"
	_, err := e.ValidateUpdate(context.Background(), cur, UpdatePatch{Name: &name})
	if fields := fieldsOf(t, err); fields["status"] == 0 {
		t.Errorf("expected frozen-rule violation, got %v", fields)
	}
}

func TestValidateUpdate_CrossKindFields(t *testing.T) {
	pt := ProductLand
	pct := 5.0

	e := NewEngine(newStore())
	_, err := e.ValidateUpdate(context.Background(), storedDistribution(), UpdatePatch{ProductType: &pt, Percent: &pct})
	fields := fieldsOf(t, err)
	if fields["product_type"] == 0 || fields["total_percent"] == 0 {
		t.Errorf("expected cross-kind violations, got %v", fields)
	}

	_, err = e.ValidateUpdate(context.Background(), storedTotal(), UpdatePatch{TotalRuleID: &distID, Participants: []ParticipantInput{}})
	fields = fieldsOf(t, err)
	if fields["total_rule_id"] == 0 || fields["participants"] == 0 {
		t.Errorf("expected cross-kind violations, got %v", fields)
	}
}

func TestValidateUpdate_MergedSumChecked(t *testing.T) {
	e := NewEngine(newStore())

	// Replacement participant list pushes the active sum over the cap.
	patch := UpdatePatch{Participants: []ParticipantInput{
		{Type: ParticipantAgency, Percent: 70},
		{Type: ParticipantLeadBroker, Percent: 30.01},
	}}
	_, err := e.ValidateUpdate(context.Background(), storedDistribution(), patch)
	if fields := fieldsOf(t, err); fields["participants"] == 0 {
		t.Errorf("expected participants sum violation, got %v", fields)
	}
}

func TestValidateUpdate_RefRevalidated(t *testing.T) {
	store := newStore()
	store.refs[totalID] = RuleRef{Kind: KindTotal, Status: StatusInactive}
	e := NewEngine(store)

	// Even without touching the reference, the merged view re-resolves it.
	desc := "updated"
	_, err := e.ValidateUpdate(context.Background(), storedDistribution(), UpdatePatch{Description: &desc})
	if fields := fieldsOf(t, err); fields["total_rule_id"] == 0 {
		t.Errorf("expected total_rule_id violation, got %v", fields)
	}
}

func TestValidateUpdate_DeactivateTotalWithDependents(t *testing.T) {
	store := newStore()
	store.dependents[totalID] = 2
	e := NewEngine(store)

	inactive := StatusInactive
	_, err := e.ValidateUpdate(context.Background(), storedTotal(), UpdatePatch{Status: &inactive})
	if !errors.Is(err, ErrHasActiveDependents) {
		t.Errorf("ValidateUpdate() error = %v, want ErrHasActiveDependents", err)
	}

	store.dependents[totalID] = 0
	if _, err := e.ValidateUpdate(context.Background(), storedTotal(), UpdatePatch{Status: &inactive}); err != nil {
		t.Errorf("ValidateUpdate() error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// Deletion
// ---------------------------------------------------------------------------

func TestValidateDeletion(t *testing.T) {
	store := newStore()
	e := NewEngine(store)

	store.dependents[totalID] = 1
	if err := e.ValidateDeletion(context.Background(), storedTotal()); !errors.Is(err, ErrHasActiveDependents) {
		t.Errorf("ValidateDeletion() error = %v, want ErrHasActiveDependents", err)
	}

	// After the dependents are retired themselves, deletion goes through.
	store.dependents[totalID] = 0
	if err := e.ValidateDeletion(context.Background(), storedTotal()); err != nil {
		t.Errorf("ValidateDeletion() error = %v", err)
	}

	// Distribution rules never have dependents.
	store.dependents[distID] = 5
	if err := e.ValidateDeletion(context.Background(), storedDistribution()); err != nil {
		t.Errorf("ValidateDeletion() error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// Aggregate helpers
// ---------------------------------------------------------------------------

func TestActivePercentSum(t *testing.T) {
	parts := []Participant{
		{Type: ParticipantAgency, Percent: 33.3, Active: true},
		{Type: ParticipantLeadBroker, Percent: 33.3, Active: true},
		{Type: ParticipantSupportBroker, Percent: 33.4, Active: true},
		{Type: ParticipantCoordinator, Percent: 50, Active: false},
	}
	if got := ActivePercentSum(parts); got != 100 {
		t.Errorf("ActivePercentSum() = %v, want 100", got)
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusActive, true},
		{StatusPending, StatusInactive, true},
		{StatusActive, StatusInactive, true},
		{StatusActive, StatusPending, false},
		{StatusInactive, StatusActive, false},
		{StatusInactive, StatusPending, false},
		{StatusInactive, StatusInactive, true},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
