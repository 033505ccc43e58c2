package server

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/limaJavier/coursetable/internal/config"
	"github.com/limaJavier/coursetable/pkg/catalog"
	"github.com/limaJavier/coursetable/pkg/export"
	"github.com/limaJavier/coursetable/pkg/model"
	"github.com/limaJavier/coursetable/pkg/planner"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilename  = "timetables.xlsx"
)

type Handler struct {
	search    config.SearchConfig
	catalog   catalog.Catalog
	generator model.Generator
	logger    *zap.Logger
}

func NewHandler(search config.SearchConfig, offerings catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{
		search:    search,
		catalog:   offerings,
		generator: search.Generator(),
		logger:    logger,
	}
}

type sectionView struct {
	Key string `json:"key"`
	catalog.Section
}

type blockView struct {
	Stat     string        `json:"stat"`
	Label    string        `json:"label"`
	Sections []sectionView `json:"sections"`
}

type offeringView struct {
	CourseNo    string      `json:"course_no"`
	CourseTitle string      `json:"course_title"`
	Blocks      []blockView `json:"blocks"`
}

func viewOffering(offering catalog.Offering) offeringView {
	return offeringView{
		CourseNo:    offering.CourseNo,
		CourseTitle: offering.CourseTitle,
		Blocks: lo.Map(offering.Blocks, func(block catalog.Block, _ int) blockView {
			return blockView{
				Stat:  block.Stat,
				Label: catalog.StatLabel(block.Stat),
				Sections: lo.Map(block.Sections, func(section catalog.Section, _ int) sectionView {
					return sectionView{Key: catalog.SectionKey(block.Stat, section), Section: section}
				}),
			}
		}),
	}
}

// GET /api/v1/catalog/courses?q=
func (h *Handler) SearchCourses(c *gin.Context) {
	offerings := h.catalog.Search(c.Query("q"))
	OK(c, lo.Map(offerings, func(offering catalog.Offering, _ int) offeringView { return viewOffering(offering) }))
}

// GET /api/v1/catalog/courses/:courseNo
func (h *Handler) GetCourse(c *gin.Context) {
	offering, ok := h.catalog.Find(c.Param("courseNo"))
	if !ok {
		NotFound(c, codeUnknownCourse, "course is not offered in the catalog")
		return
	}
	OK(c, viewOffering(offering))
}

type parseSlotsRequest struct {
	Text    string `json:"text" binding:"required"`
	Grammar string `json:"grammar"`
}

type parseSlotsResponse struct {
	Slots   model.SlotOption `json:"slots"`
	Summary string           `json:"summary"`
}

// POST /api/v1/slots/parse
func (h *Handler) ParseSlots(c *gin.Context) {
	var request parseSlotsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		BadRequest(c, codeBadRequest, "invalid request body")
		return
	}

	grammar, err := planner.ParseGrammar(request.Grammar)
	if err != nil {
		BadRequest(c, codeBadRequest, err.Error())
		return
	}

	option := grammar.Parse(request.Text)
	OK(c, parseSlotsResponse{Slots: option, Summary: model.FormatOption(option)})
}

type planRequest struct {
	Plan planner.Plan `json:"plan"`
}

// POST /api/v1/timetables/generate
func (h *Handler) GenerateTimetables(c *gin.Context) {
	result, ok := h.generate(c)
	if !ok {
		return
	}
	OK(c, export.Views(result))
}

// POST /api/v1/timetables/export
func (h *Handler) ExportTimetables(c *gin.Context) {
	result, ok := h.generate(c)
	if !ok {
		return
	}

	buffer, err := export.Workbook(result)
	if errors.Is(err, export.ErrNoTimetables) {
		NotFound(c, codeNoTimetables, "no timetable fits the selected courses")
		return
	} else if err != nil {
		h.logger.Error("cannot export timetables", zap.Error(err))
		InternalError(c)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(exportFilename))
	c.Data(http.StatusOK, xlsxContentType, buffer.Bytes())
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Materialises the plan of the request into a fresh workspace and runs the configured generator over it.
// Replies on its own and returns false when the request cannot be served
func (h *Handler) generate(c *gin.Context) (model.SearchResult, bool) {
	var request planRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		BadRequest(c, codeBadRequest, "invalid request body")
		return model.SearchResult{}, false
	}

	workspace := planner.NewWorkspace(h.logger)
	if _, err := request.Plan.Apply(workspace, h.catalog); err != nil {
		h.handlePlanError(c, err)
		return model.SearchResult{}, false
	}

	ctx, cancel := h.search.Context(c.Request.Context())
	defer cancel()
	result := workspace.Generate(ctx, h.generator)

	for i, timetable := range result.Timetables {
		if !h.generator.Verify(timetable) {
			h.logger.Error("generated timetable has colliding slots", zap.Int("timetable", i+1))
			InternalError(c)
			return model.SearchResult{}, false
		}
	}
	return result, true
}

func (h *Handler) handlePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownCourse):
		NotFound(c, codeUnknownCourse, err.Error())
	case errors.Is(err, catalog.ErrUnknownSection):
		NotFound(c, codeUnknownSection, err.Error())
	default:
		BadRequest(c, codeBadRequest, err.Error())
	}
}
