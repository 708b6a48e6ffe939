package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	domain "github.com/habitacasa/habitacasa_backend/internal/commission"
	"github.com/habitacasa/habitacasa_backend/internal/service/commission"
)

type CommissionHandler struct {
	svc commission.Service
}

func NewCommissionHandler(svc commission.Service) *CommissionHandler {
	return &CommissionHandler{svc: svc}
}

func mapCommissionError(c fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidationError(err); ok {
		return validationFailed(c, ve.Violations)
	}
	switch {
	case errors.Is(err, commission.ErrRuleNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, domain.ErrHasActiveDependents):
		return hasActiveDependents(c)
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Wire payloads
// ---------------------------------------------------------------------------

type participantPayload struct {
	Type       string   `json:"participant_type"`
	Percent    float64  `json:"percent"`
	Active     *bool    `json:"active"`
	Fixed      bool     `json:"fixed"`
	Mandatory  bool     `json:"mandatory"`
	GroupID    *string  `json:"group_id"`
	PercentMin *float64 `json:"percent_min"`
	PercentMax *float64 `json:"percent_max"`
}

func (p participantPayload) toInput() (domain.ParticipantInput, error) {
	in := domain.ParticipantInput{
		Type:       domain.ParticipantType(p.Type),
		Percent:    p.Percent,
		Active:     p.Active,
		Fixed:      p.Fixed,
		Mandatory:  p.Mandatory,
		PercentMin: p.PercentMin,
		PercentMax: p.PercentMax,
	}
	if p.GroupID != nil && *p.GroupID != "" {
		id, err := uuid.Parse(*p.GroupID)
		if err != nil {
			return in, errors.New("invalid group_id")
		}
		in.GroupID = &id
	}
	return in, nil
}

type createRulePayload struct {
	AgencyID      string               `json:"real_estate_id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Kind          string               `json:"kind"`
	Status        string               `json:"status"`
	ProductType   string               `json:"product_type"`
	TotalPercent  *float64             `json:"total_percent"`
	TotalRuleID   string               `json:"total_rule_id"`
	Participants  []participantPayload `json:"participants"`
	DevelopmentID string               `json:"development_id"`
	ProductID     string               `json:"product_id"`
	ValidFrom     string               `json:"valid_from"`
	ValidTo       string               `json:"valid_to"`
}

type updateRulePayload struct {
	AgencyID      *string              `json:"real_estate_id"`
	Name          *string              `json:"name"`
	Description   *string              `json:"description"`
	Kind          *string              `json:"kind"`
	Status        *string              `json:"status"`
	ProductType   *string              `json:"product_type"`
	TotalPercent  *float64             `json:"total_percent"`
	TotalRuleID   *string              `json:"total_rule_id"`
	Participants  []participantPayload `json:"participants"`
	DevelopmentID *string              `json:"development_id"`
	ProductID     *string              `json:"product_id"`
	ValidFrom     *string              `json:"valid_from"`
	ValidTo       *string              `json:"valid_to"`
}

// parseOptionalUUID treats "" as absent so clients can omit or blank a field
// interchangeably.
func parseOptionalUUID(s, field string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, errors.New("invalid " + field)
	}
	return &id, nil
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(s, field string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, errors.New("invalid " + field)
	}
	return &t, nil
}

func participantInputs(payloads []participantPayload) ([]domain.ParticipantInput, error) {
	if payloads == nil {
		return nil, nil
	}
	ins := make([]domain.ParticipantInput, 0, len(payloads))
	for _, p := range payloads {
		in, err := p.toInput()
		if err != nil {
			return nil, err
		}
		ins = append(ins, in)
	}
	return ins, nil
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

// POST /commission
func (h *CommissionHandler) Create(c fiber.Ctx) error {
	var body createRulePayload
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	agencyID, err := parseOptionalUUID(body.AgencyID, "real_estate_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if agencyID == nil {
		return badRequest(c, "real_estate_id is required")
	}

	in := domain.CreateInput{
		AgencyID:    *agencyID,
		Name:        body.Name,
		Description: body.Description,
		Kind:        domain.Kind(body.Kind),
		Status:      domain.Status(body.Status),
	}

	switch in.Kind {
	case domain.KindTotal:
		in.Total = &domain.TotalInput{
			ProductType: domain.ProductType(body.ProductType),
			Percent:     body.TotalPercent,
		}
	case domain.KindDistribution:
		totalID, err := parseOptionalUUID(body.TotalRuleID, "total_rule_id")
		if err != nil {
			return badRequest(c, err.Error())
		}
		dist := &domain.DistributionInput{}
		if totalID != nil {
			dist.TotalRuleID = *totalID
		}
		if dist.Participants, err = participantInputs(body.Participants); err != nil {
			return badRequest(c, err.Error())
		}
		in.Distribution = dist
	}

	if in.DevelopmentID, err = parseOptionalUUID(body.DevelopmentID, "development_id"); err != nil {
		return badRequest(c, err.Error())
	}
	if in.ProductID, err = parseOptionalUUID(body.ProductID, "product_id"); err != nil {
		return badRequest(c, err.Error())
	}
	if in.ValidFrom, err = parseDate(body.ValidFrom, "valid_from"); err != nil {
		return badRequest(c, err.Error())
	}
	if in.ValidTo, err = parseDate(body.ValidTo, "valid_to"); err != nil {
		return badRequest(c, err.Error())
	}

	row, err := h.svc.Create(c.Context(), in)
	if err != nil {
		return mapCommissionError(c, err)
	}
	return created(c, "commission rule created", row)
}

// GET /commission/:id
func (h *CommissionHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid rule id")
	}

	row, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapCommissionError(c, err)
	}
	return ok(c, "commission rule retrieved", row)
}

// PUT /commission/:id
func (h *CommissionHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid rule id")
	}

	var body updateRulePayload
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patch := domain.UpdatePatch{
		Name:        body.Name,
		Description: body.Description,
		Percent:     body.TotalPercent,
	}
	if body.Kind != nil {
		k := domain.Kind(*body.Kind)
		patch.Kind = &k
	}
	if body.Status != nil {
		s := domain.Status(*body.Status)
		patch.Status = &s
	}
	if body.ProductType != nil {
		pt := domain.ProductType(*body.ProductType)
		patch.ProductType = &pt
	}
	if body.AgencyID != nil {
		agencyID, err := parseOptionalUUID(*body.AgencyID, "real_estate_id")
		if err != nil {
			return badRequest(c, err.Error())
		}
		patch.AgencyID = agencyID
	}
	if body.TotalRuleID != nil {
		if patch.TotalRuleID, err = parseOptionalUUID(*body.TotalRuleID, "total_rule_id"); err != nil {
			return badRequest(c, err.Error())
		}
	}
	if patch.Participants, err = participantInputs(body.Participants); err != nil {
		return badRequest(c, err.Error())
	}
	if body.DevelopmentID != nil {
		if patch.DevelopmentID, err = parseOptionalUUID(*body.DevelopmentID, "development_id"); err != nil {
			return badRequest(c, err.Error())
		}
	}
	if body.ProductID != nil {
		if patch.ProductID, err = parseOptionalUUID(*body.ProductID, "product_id"); err != nil {
			return badRequest(c, err.Error())
		}
	}
	if body.ValidFrom != nil {
		if patch.ValidFrom, err = parseDate(*body.ValidFrom, "valid_from"); err != nil {
			return badRequest(c, err.Error())
		}
	}
	if body.ValidTo != nil {
		if patch.ValidTo, err = parseDate(*body.ValidTo, "valid_to"); err != nil {
			return badRequest(c, err.Error())
		}
	}

	row, err := h.svc.Update(c.Context(), id, patch)
	if err != nil {
		return mapCommissionError(c, err)
	}
	return ok(c, "commission rule updated", row)
}

// DELETE /commission/:id
// Soft delete: the rule transitions to inactive and stays queryable.
func (h *CommissionHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid rule id")
	}

	row, err := h.svc.SoftDelete(c.Context(), id)
	if err != nil {
		return mapCommissionError(c, err)
	}
	return ok(c, "commission rule deactivated", row)
}

// ---------------------------------------------------------------------------
// Listing
// ---------------------------------------------------------------------------

type listQuery struct {
	AgencyID      string `query:"real_estate_id"`
	Kind          string `query:"kind"`
	ProductType   string `query:"product_type"`
	Status        string `query:"status"`
	Query         string `query:"q"`
	DevelopmentID string `query:"development_id"`
	Page          int    `query:"page"`
	Limit         int    `query:"limit"`
	SortBy        string `query:"sort_by"`
	SortDir       string `query:"sort_dir"`
}

func (h *CommissionHandler) listRequest(c fiber.Ctx) (commission.ListRequest, error) {
	var q listQuery
	if err := c.Bind().Query(&q); err != nil {
		return commission.ListRequest{}, errors.New("invalid query parameters")
	}

	agencyID, err := parseOptionalUUID(q.AgencyID, "real_estate_id")
	if err != nil {
		return commission.ListRequest{}, err
	}
	if agencyID == nil {
		return commission.ListRequest{}, errors.New("real_estate_id is required")
	}

	req := commission.ListRequest{
		AgencyID: *agencyID,
		Query:    q.Query,
		Page:     q.Page,
		Limit:    q.Limit,
		SortBy:   q.SortBy,
		SortDir:  q.SortDir,
	}
	if q.Kind != "" {
		k := domain.Kind(q.Kind)
		if !k.Valid() {
			return req, errors.New("invalid kind")
		}
		req.Kind = &k
	}
	if q.ProductType != "" {
		pt := domain.ProductType(q.ProductType)
		if !pt.Valid() {
			return req, errors.New("invalid product_type")
		}
		req.ProductType = &pt
	}
	if q.Status != "" {
		s := domain.Status(q.Status)
		if !s.Valid() {
			return req, errors.New("invalid status")
		}
		req.Status = &s
	}
	if req.DevelopmentID, err = parseOptionalUUID(q.DevelopmentID, "development_id"); err != nil {
		return req, err
	}
	return req, nil
}

// GET /commission/list
func (h *CommissionHandler) List(c fiber.Ctx) error {
	req, err := h.listRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	// Plain listing ignores the free-text parameter; /search honors it.
	req.Query = ""

	page, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapCommissionError(c, err)
	}
	return paginated(c, "commission rules retrieved", *page)
}

// GET /commission/search
func (h *CommissionHandler) Search(c fiber.Ctx) error {
	req, err := h.listRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapCommissionError(c, err)
	}
	return paginated(c, "commission rules retrieved", *page)
}

// GET /commission/totais
// Abbreviated active total rules backing the distribution form's selector.
func (h *CommissionHandler) ListActiveTotals(c fiber.Ctx) error {
	var q struct {
		AgencyID    string `query:"real_estate_id"`
		ProductType string `query:"product_type"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	agencyID, err := parseOptionalUUID(q.AgencyID, "real_estate_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if agencyID == nil {
		return badRequest(c, "real_estate_id is required")
	}

	var productType *domain.ProductType
	if q.ProductType != "" {
		pt := domain.ProductType(q.ProductType)
		if !pt.Valid() {
			return badRequest(c, "invalid product_type")
		}
		productType = &pt
	}

	opts, err := h.svc.ListActiveTotals(c.Context(), *agencyID, productType)
	if err != nil {
		return mapCommissionError(c, err)
	}
	return ok(c, "total rules retrieved", opts)
}
