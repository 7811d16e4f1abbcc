package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/service"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/response"
)

// FormHandler serves the form and submission endpoints, including the
// approval pipeline.
type FormHandler struct {
	formSvc     service.FormService
	approvalSvc service.ApprovalService
}

// NewFormHandler creates the FormHandler.
func NewFormHandler(formSvc service.FormService, approvalSvc service.ApprovalService) *FormHandler {
	return &FormHandler{formSvc: formSvc, approvalSvc: approvalSvc}
}

// Create defines a new form.
// POST /api/v1/forms
func (h *FormHandler) Create(c *gin.Context) {
	var req dto.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	form, err := h.formSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrFormSlugExists) {
			response.Conflict(c, 50002, "form slug already exists")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, form)
}

// List returns all forms.
// GET /api/v1/forms
func (h *FormHandler) List(c *gin.Context) {
	forms, err := h.formSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, forms)
}

// Get returns one form, by ID or by slug.
// GET /api/v1/forms/:id
func (h *FormHandler) Get(c *gin.Context) {
	form, err := h.formSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			// Fall back to slug lookup for pretty URLs.
			form, err = h.formSvc.GetBySlug(c.Request.Context(), c.Param("id"))
		}
		if err != nil {
			if errors.Is(err, service.ErrFormNotFound) {
				response.NotFound(c, 50001, "form not found")
				return
			}
			response.InternalError(c)
			return
		}
	}

	response.OK(c, form)
}

// Delete removes a form together with its submissions.
// DELETE /api/v1/forms/:id
func (h *FormHandler) Delete(c *gin.Context) {
	if err := h.formSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			response.NotFound(c, 50001, "form not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Submit records a public submission against a form.
// POST /api/v1/forms/:id/submissions
func (h *FormHandler) Submit(c *gin.Context) {
	var req dto.SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	sub, err := h.formSvc.Submit(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			response.NotFound(c, 50001, "form not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, sub)
}

// ListSubmissions pages through a form's submissions.
// GET /api/v1/forms/:id/submissions
func (h *FormHandler) ListSubmissions(c *gin.Context) {
	var req dto.SubmissionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	subs, total, err := h.formSvc.ListSubmissions(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			response.NotFound(c, 50001, "form not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OKPage(c, subs, total, req.GetPage(), req.GetPageSize())
}

// GetSubmission returns one submission.
// GET /api/v1/forms/submissions/:id
func (h *FormHandler) GetSubmission(c *gin.Context) {
	sub, err := h.formSvc.GetSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			response.NotFound(c, 50003, "submission not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, sub)
}

// Verify runs the approval pipeline on a submission: resolve or create
// the user, assign a membership ID joined with the requested fields.
// POST /api/v1/forms/submissions/:id/verify
func (h *FormHandler) Verify(c *gin.Context) {
	if err := h.approvalSvc.Verify(c.Request.Context(), c.Param("id")); err != nil {
		h.writeApprovalError(c, err)
		return
	}

	response.OK(c, nil)
}

// Approve assigns the submitter to one specific field.
// POST /api/v1/forms/submissions/:id/approve
func (h *FormHandler) Approve(c *gin.Context) {
	var req dto.ApproveSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	if err := h.approvalSvc.Approve(c.Request.Context(), c.Param("id"), req.FieldID); err != nil {
		h.writeApprovalError(c, err)
		return
	}

	response.OK(c, nil)
}

// UpdateStatus overrides the submission status directly.
// PUT /api/v1/forms/submissions/:id/status
func (h *FormHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateSubmissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	if err := h.approvalSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.writeApprovalError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *FormHandler) writeApprovalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSubmissionNotFound):
		response.NotFound(c, 50003, "submission not found")
	case errors.Is(err, service.ErrSubmissionAlreadyProcessed):
		response.Conflict(c, 50004, "submission already approved")
	case errors.Is(err, service.ErrSubmissionNoEmail):
		response.BadRequest(c, 50005, "submission has no email")
	case errors.Is(err, service.ErrSubmissionBadPayload):
		response.BadRequest(c, 50006, "submission payload is not valid")
	case errors.Is(err, service.ErrFieldNotFound):
		response.NotFound(c, 30005, "field not found")
	default:
		response.InternalError(c)
	}
}
