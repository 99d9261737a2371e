package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadmentor/advisor/internal/catalog"
	"github.com/acadmentor/advisor/internal/chat"
	"github.com/acadmentor/advisor/internal/logger"
	"github.com/acadmentor/advisor/internal/planner"
	"github.com/acadmentor/advisor/internal/skills"
)

// AdvisingHandler serves the synchronous advising endpoints over the
// read-only reference data.
type AdvisingHandler struct {
	log      *logger.Logger
	cat      *catalog.Catalog
	careers  *catalog.CareerData
	analyzer *skills.Analyzer
	advisor  *chat.Advisor
}

func NewAdvisingHandler(log *logger.Logger, cat *catalog.Catalog, careers *catalog.CareerData, analyzer *skills.Analyzer, advisor *chat.Advisor) *AdvisingHandler {
	return &AdvisingHandler{
		log:      log.With("handler", "AdvisingHandler"),
		cat:      cat,
		careers:  careers,
		analyzer: analyzer,
		advisor:  advisor,
	}
}

func HealthCheck(c *gin.Context) {
	RespondOK(c, gin.H{"status": "ok"})
}

// POST /api/chat
func (h *AdvisingHandler) Chat(c *gin.Context) {
	var msg chat.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if msg.Text == "" {
		RespondError(c, http.StatusBadRequest, "invalid_request", errors.New("message is required"))
		return
	}
	resp, err := h.advisor.Process(msg)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	RespondOK(c, resp)
}

// POST /api/plan
func (h *AdvisingHandler) Plan(c *gin.Context) {
	var req planner.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	plan, err := planner.Plan(h.cat, req)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	RespondOK(c, plan)
}

type gapRequest struct {
	Profile   catalog.StudentProfile `json:"profile"`
	RoleTitle string                 `json:"role_title" binding:"required"`
}

// POST /api/gap
func (h *AdvisingHandler) Gap(c *gin.Context) {
	var req gapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	role, err := h.careers.RoleByTitle(req.RoleTitle)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	RespondOK(c, h.analyzer.Analyze(req.Profile, *role))
}

type compareRequest struct {
	Profile    catalog.StudentProfile `json:"profile"`
	RoleTitles []string               `json:"role_titles" binding:"required,min=1"`
}

// POST /api/gap/compare
func (h *AdvisingHandler) Compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	roles := make([]catalog.Role, 0, len(req.RoleTitles))
	for _, title := range req.RoleTitles {
		role, err := h.careers.RoleByTitle(title)
		if err != nil {
			h.respondDomainError(c, err)
			return
		}
		roles = append(roles, *role)
	}
	RespondOK(c, h.analyzer.CompareRoles(req.Profile, roles))
}

type careerResponse struct {
	Role       *catalog.Role             `json:"role"`
	Trajectory []catalog.TrajectoryLevel `json:"trajectory"`
	Categories catalog.SkillCategories   `json:"skill_categories"`
}

// GET /api/careers/:title
func (h *AdvisingHandler) Career(c *gin.Context) {
	role, err := h.careers.RoleByTitle(c.Param("title"))
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	RespondOK(c, careerResponse{
		Role:       role,
		Trajectory: role.Trajectory(),
		Categories: role.CategorizeSkills(),
	})
}

// respondDomainError maps core error kinds onto HTTP statuses. The core
// never aborts the process; everything surfaces here.
func (h *AdvisingHandler) respondDomainError(c *gin.Context, err error) {
	var reqErr *planner.RequestError
	var catErr *planner.CatalogError
	switch {
	case errors.As(err, &reqErr):
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
	case errors.As(err, &catErr):
		RespondError(c, http.StatusUnprocessableEntity, "catalog_inconsistency", err)
	case errors.Is(err, catalog.ErrRoleNotFound), errors.Is(err, catalog.ErrDegreeNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	default:
		h.log.Error("unhandled error", "err", err)
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
