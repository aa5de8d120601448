package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/lostpaws/petfinder-api/internal/domain/report"
	"github.com/lostpaws/petfinder-api/internal/dto"
	"github.com/lostpaws/petfinder-api/internal/httperr"
	"github.com/lostpaws/petfinder-api/internal/imaging"
	"github.com/lostpaws/petfinder-api/internal/storage"
	ucReport "github.com/lostpaws/petfinder-api/internal/usecase/report"
)

type ReportHandler struct {
	createUC        *ucReport.CreateReport
	listUC          *ucReport.ListReports
	listMineUC      *ucReport.ListMyReports
	getUC           *ucReport.GetReport
	summaryUC       *ucReport.GetSummary
	updateStatusUC  *ucReport.UpdateReportStatus
	updateDetailsUC *ucReport.UpdateReportDetails
	removeUC        *ucReport.RemoveReport

	photos storage.PhotoStorage
}

func NewReportHandler(
	createUC *ucReport.CreateReport,
	listUC *ucReport.ListReports,
	listMineUC *ucReport.ListMyReports,
	getUC *ucReport.GetReport,
	summaryUC *ucReport.GetSummary,
	updateStatusUC *ucReport.UpdateReportStatus,
	updateDetailsUC *ucReport.UpdateReportDetails,
	removeUC *ucReport.RemoveReport,
	photos storage.PhotoStorage,
) *ReportHandler {
	return &ReportHandler{
		createUC:        createUC,
		listUC:          listUC,
		listMineUC:      listMineUC,
		getUC:           getUC,
		summaryUC:       summaryUC,
		updateStatusUC:  updateStatusUC,
		updateDetailsUC: updateDetailsUC,
		removeUC:        removeUC,
		photos:          photos,
	}
}

func (h *ReportHandler) resolver(ctx context.Context) dto.URLResolver {
	if h.photos == nil {
		return func(key string) string { return key }
	}
	return func(key string) string { return h.photos.PublicURL(ctx, key) }
}

// --------- Requests ---------

type CreateReportRequest struct {
	OwnerName   string `form:"ownerName" json:"ownerName"`
	OwnerPhone  string `form:"ownerPhone" json:"ownerPhone"`
	OwnerEmail  string `form:"ownerEmail" json:"ownerEmail"`
	OwnerLineID string `form:"ownerLineId" json:"ownerLineId"`

	PetName     string   `form:"petName" json:"petName"`
	Species     string   `form:"species" json:"species"`
	Breed       string   `form:"breed" json:"breed"`
	Color       string   `form:"color" json:"color"`
	Sex         string   `form:"sex" json:"sex"`
	AgeYears    *float64 `form:"ageYears" json:"ageYears"`
	MicrochipID string   `form:"microchipId" json:"microchipId"`
	SpecialMark string   `form:"specialMark" json:"specialMark"`

	ReportType string `form:"reportType" json:"reportType"`
	Status     string `form:"status" json:"status"`
	DateLost   string `form:"dateLost" json:"dateLost"`

	Province        string   `form:"province" json:"province"`
	District        string   `form:"district" json:"district"`
	LastSeenAddress string   `form:"lastSeenAddress" json:"lastSeenAddress"`
	LastSeenLat     *float64 `form:"lastSeenLat" json:"lastSeenLat"`
	LastSeenLng     *float64 `form:"lastSeenLng" json:"lastSeenLng"`

	RewardAmount *float64 `form:"rewardAmount" json:"rewardAmount"`
	Description  string   `form:"description" json:"description"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateReportRequest struct {
	PetName     *string  `json:"petName,omitempty"`
	Species     *string  `json:"species,omitempty"`
	Breed       *string  `json:"breed,omitempty"`
	Color       *string  `json:"color,omitempty"`
	Sex         *string  `json:"sex,omitempty"`
	AgeYears    *float64 `json:"ageYears,omitempty"`
	MicrochipID *string  `json:"microchipId,omitempty"`
	SpecialMark *string  `json:"specialMark,omitempty"`

	ReportType *string `json:"reportType,omitempty"`
	Status     *string `json:"status,omitempty"`
	DateLost   *string `json:"dateLost,omitempty"`

	Province        *string  `json:"province,omitempty"`
	District        *string  `json:"district,omitempty"`
	LastSeenAddress *string  `json:"lastSeenAddress,omitempty"`
	LastSeenLat     *float64 `json:"lastSeenLat,omitempty"`
	LastSeenLng     *float64 `json:"lastSeenLng,omitempty"`

	RewardAmount *float64 `json:"rewardAmount,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

// --------- Handlers ---------

func (h *ReportHandler) List(c *gin.Context) {
	filters := domain.Filters{
		District:   c.Query("district"),
		Province:   c.Query("province"),
		Species:    c.Query("species"),
		Status:     c.Query("status"),
		ReportType: c.Query("reportType"),
		Search:     c.Query("search"),
	}

	reports, err := h.listUC.Execute(c.Request.Context(), filters)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportList(reports, h.resolver(c.Request.Context())))
}

func (h *ReportHandler) ListMine(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "not authenticated")
		return
	}

	reports, err := h.listMineUC.Execute(c.Request.Context(), caller, domain.Filters{
		Status:     c.Query("status"),
		ReportType: c.Query("reportType"),
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportList(reports, h.resolver(c.Request.Context())))
}

func (h *ReportHandler) GetByID(c *gin.Context) {
	id, err := parseReportID(c)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	report, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportDTO(*report, h.resolver(c.Request.Context())))
}

func (h *ReportHandler) Summary(c *gin.Context) {
	stats, err := h.summaryUC.Execute(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "not authenticated")
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	photoURL, err := h.uploadPhotoIfPresent(c)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	in := domain.CreateInput{
		OwnerName:       strings.TrimSpace(req.OwnerName),
		OwnerPhone:      strings.TrimSpace(req.OwnerPhone),
		OwnerEmail:      strings.TrimSpace(req.OwnerEmail),
		OwnerLineID:     strings.TrimSpace(req.OwnerLineID),
		PetName:         strings.TrimSpace(req.PetName),
		Species:         strings.TrimSpace(req.Species),
		Breed:           req.Breed,
		Color:           req.Color,
		Sex:             req.Sex,
		AgeYears:        req.AgeYears,
		MicrochipID:     req.MicrochipID,
		SpecialMark:     req.SpecialMark,
		ReportType:      req.ReportType,
		Status:          req.Status,
		Province:        req.Province,
		District:        req.District,
		LastSeenAddress: req.LastSeenAddress,
		LastSeenLat:     req.LastSeenLat,
		LastSeenLng:     req.LastSeenLng,
		RewardAmount:    req.RewardAmount,
		Description:     req.Description,
		PhotoURL:        photoURL,
	}

	if req.DateLost != "" {
		dateLost, err := parseDate(req.DateLost)
		if err != nil {
			httperr.WriteError(c, err)
			return
		}
		in.DateLost = dateLost
	}

	report, err := h.createUC.Execute(c.Request.Context(), caller, in)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewReportDTO(*report, h.resolver(c.Request.Context())))
}

// uploadPhotoIfPresent normalizes and stores the multipart "photo"
// part, returning the opaque storage key ("" when no file was sent).
func (h *ReportHandler) uploadPhotoIfPresent(c *gin.Context) (string, error) {
	file, err := c.FormFile("photo")
	if err != nil {
		return "", nil
	}

	if file.Size > imaging.MaxUploadBytes {
		return "", httperr.ErrValidation("photo_too_large", "photo must be at most 5 MiB")
	}
	if h.photos == nil {
		return "", httperr.ErrConfig("storage_not_configured", "photo storage is not configured")
	}

	f, err := file.Open()
	if err != nil {
		return "", httperr.ErrStorage("photo_read_failed", err.Error())
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, imaging.MaxUploadBytes+1))
	if err != nil {
		return "", httperr.ErrStorage("photo_read_failed", err.Error())
	}

	normalized, contentType, err := imaging.Normalize(raw)
	if err != nil {
		return "", err
	}

	name := strings.TrimSuffix(file.Filename, pathExt(file.Filename)) + ".webp"
	return h.photos.UploadPetPhoto(c.Request.Context(), name, normalized, contentType)
}

func pathExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "not authenticated")
		return
	}

	id, err := parseReportID(c)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	report, err := h.updateStatusUC.Execute(c.Request.Context(), caller, id, req.Status)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportDTO(*report, h.resolver(c.Request.Context())))
}

func (h *ReportHandler) UpdateDetails(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "not authenticated")
		return
	}

	id, err := parseReportID(c)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	patch := domain.DetailsPatch{
		PetName:         req.PetName,
		Species:         req.Species,
		Breed:           req.Breed,
		Color:           req.Color,
		Sex:             req.Sex,
		AgeYears:        req.AgeYears,
		MicrochipID:     req.MicrochipID,
		SpecialMark:     req.SpecialMark,
		ReportType:      req.ReportType,
		Status:          req.Status,
		Province:        req.Province,
		District:        req.District,
		LastSeenAddress: req.LastSeenAddress,
		LastSeenLat:     req.LastSeenLat,
		LastSeenLng:     req.LastSeenLng,
		RewardAmount:    req.RewardAmount,
		Description:     req.Description,
	}

	if req.DateLost != nil {
		dateLost, err := parseDate(*req.DateLost)
		if err != nil {
			httperr.WriteError(c, err)
			return
		}
		patch.DateLost = &dateLost
	}

	report, err := h.updateDetailsUC.Execute(c.Request.Context(), caller, id, patch)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportDTO(*report, h.resolver(c.Request.Context())))
}

func (h *ReportHandler) Remove(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "not authenticated")
		return
	}

	id, err := parseReportID(c)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), caller, id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
