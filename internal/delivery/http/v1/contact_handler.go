package v1

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxSubmissionBytes caps the request body (same as a default express.json parser).
const maxSubmissionBytes = 100 << 10

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/send", handler.Send)
}

// Send godoc
// @Summary      Send Contact Message
// @Description  Validate a contact form submission and forward it to the site owner by email.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.Submission  true  "Contact Form Data"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.ErrorResponse
// @Failure      413         {object}  response.ErrorResponse
// @Failure      500         {object}  response.ErrorResponse
// @Router       /send [post]
func (h *ContactHandler) Send(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSubmissionBytes)

	var req domain.Submission
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.New(http.StatusRequestEntityTooLarge, domain.MsgBodyTooLarge, err))
			return
		}
		// An unreadable body carries no usable fields
		req = domain.Submission{}
	}

	if err := h.contactUC.Submit(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, domain.MsgSent)
}
