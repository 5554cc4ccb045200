package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobfit/backend/matching"
	"github.com/jobfit/backend/models"
)

// SkillHandler extracts skills from CVs without storing anything
type SkillHandler struct {
	cvReader *CVReader
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(cvReader *CVReader) *SkillHandler {
	return &SkillHandler{cvReader: cvReader}
}

// ExtractSkills extracts a normalized skill list from a CV file or text
// @Summary Extract skills
// @Description Extract skills from a CV file (multipart) or CV text (JSON or form field)
// @Tags Skills
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body models.SkillExtractRequest false "CV text (JSON)"
// @Param cv_file formData file false "CV file (PDF, DOC, DOCX, TXT)"
// @Param cv_text formData string false "CV text content"
// @Success 200 {object} models.SkillExtractResponse "Extracted skills"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 502 {object} models.ErrorResponse "Skill extraction failed"
// @Router /skills/extract [post]
func (h *SkillHandler) ExtractSkills(c *gin.Context) {
	var (
		skills []string
		err    error
	)
	ctx := c.Request.Context()

	if strings.Contains(c.ContentType(), "multipart/form-data") {
		if header, ferr := c.FormFile("cv_file"); ferr == nil {
			data, rerr := readUpload(header)
			if rerr != nil {
				respondError(c, http.StatusBadRequest, "Failed to read CV file", rerr.Error())
				return
			}
			log.Printf("[SkillHandler] Received CV file: %s", header.Filename)
			skills, err = h.cvReader.SkillsFromFile(ctx, header.Filename, data)
		} else {
			text := strings.TrimSpace(c.PostForm("cv_text"))
			if text == "" {
				respondError(c, http.StatusBadRequest, "CV text or file is required", "")
				return
			}
			skills, err = h.cvReader.SkillsFromText(ctx, text)
		}
	} else {
		var req models.SkillExtractRequest
		if berr := c.ShouldBindJSON(&req); berr != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body", berr.Error())
			return
		}
		if strings.TrimSpace(req.CVText) == "" {
			respondError(c, http.StatusBadRequest, "CV text or file is required", "")
			return
		}
		skills, err = h.cvReader.SkillsFromText(ctx, req.CVText)
	}

	if err != nil {
		log.Printf("[SkillHandler] Skill extraction failed: %v", err)
		respondError(c, cvErrorStatus(err), "Failed to extract skills", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.SkillExtractResponse{
		Skills: skills,
		Count:  len(skills),
	})
}

func normalizeSkills(raw []string) []string {
	return matching.NewSkillSet(raw).Skills()
}
