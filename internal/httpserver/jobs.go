package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/carrierx/carrierx/internal/logging"
	"github.com/carrierx/carrierx/internal/service"
	"github.com/carrierx/carrierx/internal/session"
	"github.com/carrierx/carrierx/internal/util"
)

type JobsHTTP struct {
	Jobs     *service.JobService
	Apps     *service.ApplicationService
	Resolver *session.Resolver
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (h *JobsHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "jobs_list")

	params := service.ListJobsParams{
		Type:     c.QueryParam("type"),
		Premium:  c.QueryParam("premium") == "true",
		PPO:      c.QueryParam("ppo") == "true",
		Skills:   splitSkills(c.QueryParam("skills")),
		Page:     util.ParseIntDefault(c.QueryParam("page"), 1),
		PageSize: util.ParseIntDefault(c.QueryParam("pageSize"), util.DefaultPageSize),
	}

	page, err := h.Jobs.List(ctx, params)
	if err != nil {
		l.Error("jobs_list_failed", "status", 500, "error", err)
		return failFor(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"data": page})
}

func (h *JobsHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "jobs_get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid job id")
	}

	viewer := h.Resolver.Resolve(c)
	job, hasApplied, err := h.Jobs.Get(ctx, id, viewer)
	if err != nil {
		if err == service.ErrNotFound {
			return fail(c, http.StatusNotFound, "Job not found")
		}
		l.Error("jobs_get_failed", "status", 500, "error", err)
		return failFor(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"job": job, "hasApplied": hasApplied})
}

type createJobRequest struct {
	CompanyID       string   `json:"companyId"`
	Title           string   `json:"title"`
	Type            string   `json:"type"`
	Location        string   `json:"location"`
	Stipend         float64  `json:"stipend"`
	Duration        string   `json:"duration"`
	TechStack       []string `json:"techStack"`
	PrepGuide       string   `json:"prepGuide"`
	Deadline        string   `json:"deadline"`
	ApplyLink       string   `json:"applyLink"`
	IsInternalApply *bool    `json:"isInternalApply"`
	IsPPO           bool     `json:"isPPO"`
}

func parseDeadline(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (h *JobsHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "jobs_create")

	if _, err := h.Resolver.RequireAdmin(c); err != nil {
		return failFor(c, err)
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("jobs_create_error", "status", 400, "error", err)
		return fail(c, http.StatusBadRequest, "Invalid body")
	}
	if req.CompanyID == "" || req.Title == "" || req.Location == "" || req.Deadline == "" {
		return fail(c, http.StatusBadRequest, "Missing required fields")
	}
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid companyId")
	}
	deadline, valid := parseDeadline(req.Deadline)
	if !valid {
		return fail(c, http.StatusBadRequest, "Invalid deadline")
	}

	job, err := h.Jobs.Create(ctx, service.CreateJobParams{
		CompanyID:       companyID,
		Title:           req.Title,
		Type:            req.Type,
		Location:        req.Location,
		Stipend:         req.Stipend,
		Duration:        req.Duration,
		TechStack:       req.TechStack,
		PrepGuide:       req.PrepGuide,
		Deadline:        deadline,
		ApplyLink:       req.ApplyLink,
		IsInternalApply: req.IsInternalApply,
		IsPPO:           req.IsPPO,
	})
	if err != nil {
		if err == service.ErrValidation {
			return fail(c, http.StatusBadRequest, "Missing required fields")
		}
		l.Error("jobs_create_failed", "status", 500, "error", err)
		return failFor(c, err)
	}
	return ok(c, http.StatusCreated, echo.Map{"data": job})
}

func (h *JobsHTTP) Apply(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "jobs_apply")

	id, err := h.Resolver.RequireAuth(c)
	if err != nil {
		return failFor(c, err)
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid job id")
	}

	var req struct {
		Answers json.RawMessage `json:"answers"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("jobs_apply_error", "status", 400, "error", err)
		return fail(c, http.StatusBadRequest, "Invalid body")
	}
	var answers *string
	if len(req.Answers) > 0 && string(req.Answers) != "null" {
		s := string(req.Answers)
		answers = &s
	}

	app, err := h.Apps.Apply(ctx, id.UserID, jobID, answers)
	if err != nil {
		switch err {
		case service.ErrNotFound:
			return fail(c, http.StatusNotFound, "Job not found or inactive")
		case service.ErrConflict:
			return fail(c, http.StatusConflict, "You have already applied to this job")
		}
		l.Error("jobs_apply_failed", "status", 500, "error", err)
		return failFor(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"application": app})
}
