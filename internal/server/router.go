package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Setup(h *Handler, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Logger(logger))

	r.GET("/healthz", h.Health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/catalog/courses", h.SearchCourses)
		v1.GET("/catalog/courses/:courseNo", h.GetCourse)
		v1.POST("/slots/parse", h.ParseSlots)

		timetables := v1.Group("/timetables")
		{
			timetables.POST("/generate", h.GenerateTimetables)
			timetables.POST("/export", h.ExportTimetables)
		}
	}

	return r
}
