package commission

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	domain "github.com/habitacasa/habitacasa_backend/internal/commission"
	"github.com/habitacasa/habitacasa_backend/internal/repo"
	entrule "github.com/habitacasa/habitacasa_backend/internal/repo/commissionrule"
	"github.com/habitacasa/habitacasa_backend/pkg/pagination"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	AgencyID      uuid.UUID
	Kind          *domain.Kind
	ProductType   *domain.ProductType
	Status        *domain.Status
	Query         string // free-text match on name/description
	DevelopmentID *uuid.UUID
	Page          int
	Limit         int
	SortBy        string // created_at | updated_at | name | total_percent
	SortDir       string // asc | desc
}

// TotalRuleOption is the abbreviated shape backing the "choose a total rule
// to distribute" selector.
type TotalRuleOption struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	ProductType  domain.ProductType `json:"product_type"`
	TotalPercent float64            `json:"total_percent"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, in domain.CreateInput) (*repo.CommissionRule, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.CommissionRule, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.UpdatePatch) (*repo.CommissionRule, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*repo.CommissionRule, error)
	List(ctx context.Context, req ListRequest) (*pagination.Page[*repo.CommissionRule], error)
	ListActiveTotals(ctx context.Context, agencyID uuid.UUID, productType *domain.ProductType) ([]TotalRuleOption, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type ruleService struct {
	db     *repo.Client
	engine *domain.Engine
}

func New(db *repo.Client) Service {
	return &ruleService{
		db:     db,
		engine: domain.NewEngine(&entLookup{db: db}),
	}
}

func (s *ruleService) Create(ctx context.Context, in domain.CreateInput) (*repo.CommissionRule, error) {
	rule, err := s.engine.ValidateCreate(ctx, in)
	if err != nil {
		return nil, err
	}

	c := s.db.CommissionRule.Create().
		SetAgencyID(rule.AgencyID).
		SetName(rule.Name).
		SetKind(entrule.Kind(rule.Kind())).
		SetStatus(entrule.Status(rule.Status)).
		SetNillableDescription(nilIfEmpty(rule.Description)).
		SetNillableDevelopmentID(rule.DevelopmentID).
		SetNillableProductID(rule.ProductID).
		SetNillableValidFrom(rule.ValidFrom).
		SetNillableValidTo(rule.ValidTo)

	if rule.Total != nil {
		c = c.
			SetProductType(entrule.ProductType(rule.Total.ProductType)).
			SetTotalPercent(rule.Total.Percent)
	}
	if rule.Distribution != nil {
		c = c.
			SetTotalRuleID(rule.Distribution.TotalRuleID).
			SetParticipants(rule.Distribution.Participants)
	}

	row, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create commission rule: %w", err)
	}
	return row, nil
}

func (s *ruleService) Get(ctx context.Context, id uuid.UUID) (*repo.CommissionRule, error) {
	row, err := s.db.CommissionRule.Query().
		Where(entrule.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("get commission rule: %w", err)
	}
	return row, nil
}

func (s *ruleService) Update(ctx context.Context, id uuid.UUID, patch domain.UpdatePatch) (*repo.CommissionRule, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, err := s.engine.ValidateUpdate(ctx, toDomain(row), patch)
	if err != nil {
		return nil, err
	}

	// The merged view is the full final state; write it back wholesale.
	// Kind and agency are immutable columns and never touched.
	upd := s.db.CommissionRule.UpdateOne(row).
		SetName(merged.Name).
		SetStatus(entrule.Status(merged.Status))

	if desc := nilIfEmpty(merged.Description); desc != nil {
		upd = upd.SetDescription(*desc)
	} else {
		upd = upd.ClearDescription()
	}
	if merged.DevelopmentID != nil {
		upd = upd.SetDevelopmentID(*merged.DevelopmentID)
	} else {
		upd = upd.ClearDevelopmentID()
	}
	if merged.ProductID != nil {
		upd = upd.SetProductID(*merged.ProductID)
	} else {
		upd = upd.ClearProductID()
	}
	if merged.ValidFrom != nil {
		upd = upd.SetValidFrom(*merged.ValidFrom)
	} else {
		upd = upd.ClearValidFrom()
	}
	if merged.ValidTo != nil {
		upd = upd.SetValidTo(*merged.ValidTo)
	} else {
		upd = upd.ClearValidTo()
	}

	if merged.Total != nil {
		upd = upd.
			SetProductType(entrule.ProductType(merged.Total.ProductType)).
			SetTotalPercent(merged.Total.Percent)
	}
	if merged.Distribution != nil {
		upd = upd.
			SetTotalRuleID(merged.Distribution.TotalRuleID).
			SetParticipants(merged.Distribution.Participants)
	}

	out, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update commission rule: %w", err)
	}
	return out, nil
}

func (s *ruleService) SoftDelete(ctx context.Context, id uuid.UUID) (*repo.CommissionRule, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cur := toDomain(row)
	if cur.Status == domain.StatusInactive {
		// Already retired; soft delete is idempotent.
		return row, nil
	}

	if err := s.engine.ValidateDeletion(ctx, cur); err != nil {
		return nil, err
	}

	out, err := s.db.CommissionRule.UpdateOne(row).
		SetStatus(entrule.StatusInactive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("soft delete commission rule: %w", err)
	}
	return out, nil
}

func (s *ruleService) List(ctx context.Context, req ListRequest) (*pagination.Page[*repo.CommissionRule], error) {
	page, limit := pagination.Normalize(req.Page, req.Limit)

	q := s.db.CommissionRule.Query().
		Where(entrule.AgencyID(req.AgencyID))

	if req.Kind != nil {
		q = q.Where(entrule.KindEQ(entrule.Kind(*req.Kind)))
	}
	if req.ProductType != nil {
		q = q.Where(entrule.ProductTypeEQ(entrule.ProductType(*req.ProductType)))
	}
	if req.Status != nil {
		q = q.Where(entrule.StatusEQ(entrule.Status(*req.Status)))
	}
	if req.DevelopmentID != nil {
		q = q.Where(entrule.DevelopmentID(*req.DevelopmentID))
	}
	if req.Query != "" {
		q = q.Where(entrule.Or(
			entrule.NameContainsFold(req.Query),
			entrule.DescriptionContainsFold(req.Query),
		))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count commission rules: %w", err)
	}

	rows, err := q.
		Order(sortOrder(req.SortBy, req.SortDir)).
		Offset(pagination.Offset(page, limit)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list commission rules: %w", err)
	}

	return pagination.NewPage(rows, page, limit, total), nil
}

func (s *ruleService) ListActiveTotals(ctx context.Context, agencyID uuid.UUID, productType *domain.ProductType) ([]TotalRuleOption, error) {
	q := s.db.CommissionRule.Query().
		Where(
			entrule.AgencyID(agencyID),
			entrule.KindEQ(entrule.KindTotal),
			entrule.StatusEQ(entrule.StatusActive),
		)
	if productType != nil {
		q = q.Where(entrule.ProductTypeEQ(entrule.ProductType(*productType)))
	}

	rows, err := q.Order(repo.Asc(entrule.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active total rules: %w", err)
	}

	opts := make([]TotalRuleOption, 0, len(rows))
	for _, row := range rows {
		opt := TotalRuleOption{ID: row.ID, Name: row.Name}
		if row.ProductType != nil {
			opt.ProductType = domain.ProductType(*row.ProductType)
		}
		if row.TotalPercent != nil {
			opt.TotalPercent = *row.TotalPercent
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

// ---------------------------------------------------------------------------
// Engine lookups
// ---------------------------------------------------------------------------

// entLookup implements the validation engine's store surface against ent.
type entLookup struct {
	db *repo.Client
}

func (l *entLookup) NameTaken(ctx context.Context, agencyID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	q := l.db.CommissionRule.Query().
		Where(
			entrule.AgencyID(agencyID),
			entrule.Name(name),
			entrule.StatusNEQ(entrule.StatusInactive),
		)
	if excludeID != uuid.Nil {
		q = q.Where(entrule.IDNEQ(excludeID))
	}
	return q.Exist(ctx)
}

func (l *entLookup) FindRuleRef(ctx context.Context, agencyID, id uuid.UUID) (*domain.RuleRef, error) {
	row, err := l.db.CommissionRule.Query().
		Where(entrule.ID(id), entrule.AgencyID(agencyID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.RuleRef{
		Kind:   domain.Kind(row.Kind),
		Status: domain.Status(row.Status),
	}, nil
}

func (l *entLookup) CountActiveDependents(ctx context.Context, totalRuleID uuid.UUID) (int, error) {
	return l.db.CommissionRule.Query().
		Where(
			entrule.TotalRuleID(totalRuleID),
			entrule.KindEQ(entrule.KindDistribution),
			entrule.StatusNEQ(entrule.StatusInactive),
		).
		Count(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// toDomain converts a stored row into the engine's tagged-union view.
func toDomain(row *repo.CommissionRule) domain.Rule {
	r := domain.Rule{
		ID:            row.ID,
		AgencyID:      row.AgencyID,
		Name:          row.Name,
		Status:        domain.Status(row.Status),
		DevelopmentID: row.DevelopmentID,
		ProductID:     row.ProductID,
		ValidFrom:     row.ValidFrom,
		ValidTo:       row.ValidTo,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if row.Description != nil {
		r.Description = *row.Description
	}

	switch domain.Kind(row.Kind) {
	case domain.KindDistribution:
		d := &domain.DistributionRule{Participants: row.Participants}
		if row.TotalRuleID != nil {
			d.TotalRuleID = *row.TotalRuleID
		}
		r.Distribution = d
	default:
		t := &domain.TotalRule{}
		if row.ProductType != nil {
			t.ProductType = domain.ProductType(*row.ProductType)
		}
		if row.TotalPercent != nil {
			t.Percent = *row.TotalPercent
		}
		r.Total = t
	}
	return r
}

var sortFields = map[string]string{
	"created_at":    entrule.FieldCreatedAt,
	"updated_at":    entrule.FieldUpdatedAt,
	"name":          entrule.FieldName,
	"total_percent": entrule.FieldTotalPercent,
	"status":        entrule.FieldStatus,
}

// sortOrder maps a caller-specified sort key/direction onto a whitelisted
// column, defaulting to creation time descending.
func sortOrder(key, dir string) func(*sql.Selector) {
	field, ok := sortFields[strings.ToLower(key)]
	if !ok {
		field = entrule.FieldCreatedAt
		dir = "desc"
	}
	if strings.EqualFold(dir, "asc") {
		return repo.Asc(field)
	}
	return repo.Desc(field)
}

func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
