// Package server exposes rollcall over HTTP.
package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/ukaji3/rollcall-go/pkg/rollcall"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/models"
)

// DownloadName is the attachment name of the ledger download.
const DownloadName = "Attendance.xlsx"

// Handler serves the attendance API. Submissions are serialized so each
// ledger read-modify-write completes before the next one starts.
type Handler struct {
	svc        *rollcall.Service
	ledgerPath string
	logger     log.Logger

	mu sync.Mutex
}

// NewHandler creates a Handler. ledgerPath is served by the download endpoint.
func NewHandler(svc *rollcall.Service, ledgerPath string, logger log.Logger) *Handler {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Handler{svc: svc, ledgerPath: ledgerPath, logger: logger}
}

// Router builds the gin engine with CORS enabled for all origins.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	config.AllowMethods = []string{"GET", "POST"}
	r.Use(cors.New(config))

	api := r.Group("/api")
	api.GET("/get-total-students", h.TotalStudents)
	api.POST("/process-attendance", h.ProcessAttendance)
	api.GET("/download-attendance", h.DownloadAttendance)
	return r
}

// TotalStudents returns the roster size.
func (h *Handler) TotalStudents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"total": h.svc.Roster().Len()})
}

// processRequest mirrors models.Submission but accepts totalStudents as a
// number or numeric string, as browser forms send it.
type processRequest struct {
	Date          string      `json:"date"`
	Hour          string      `json:"hour"`
	Department    string      `json:"department"`
	Course        string      `json:"course"`
	TotalStudents interface{} `json:"totalStudents"`
	Absent        string      `json:"absent"`
	OD            string      `json:"od"`
	SaveToExcel   *bool       `json:"saveToExcel"`
}

func (r processRequest) submission() (models.Submission, error) {
	sub := models.Submission{
		Date:        strings.TrimSpace(r.Date),
		Hour:        r.Hour,
		Department:  r.Department,
		Course:      r.Course,
		Absent:      r.Absent,
		OD:          r.OD,
		SaveToExcel: r.SaveToExcel,
	}

	switch v := r.TotalStudents.(type) {
	case nil:
	case float64:
		if v != math.Trunc(v) {
			return sub, fmt.Errorf("totalStudents must be a whole number")
		}
		n := int(v)
		sub.TotalStudents = &n
	case string:
		if v = strings.TrimSpace(v); v == "" {
			break
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return sub, fmt.Errorf("totalStudents %q must be numeric", v)
		}
		sub.TotalStudents = &n
	default:
		return sub, fmt.Errorf("totalStudents must be a number")
	}
	return sub, nil
}

// ProcessAttendance validates a submission and returns its report.
func (h *Handler) ProcessAttendance(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := req.submission()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	result, err := h.svc.Submit(sub)
	h.mu.Unlock()

	if err != nil {
		var validationErr *rollcall.ValidationError
		var dateErr *rollcall.DateFormatError
		if errors.As(err, &validationErr) || errors.As(err, &dateErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Log("msg", "process attendance failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DownloadAttendance sends the ledger workbook as an attachment.
func (h *Handler) DownloadAttendance(c *gin.Context) {
	if _, err := os.Stat(h.ledgerPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.FileAttachment(h.ledgerPath, DownloadName)
}
