package handlers

import (
	"net/http"
	"strconv"

	packageRepo "weddify/database/repository/packages"
	vendorRepo "weddify/database/repository/vendor"
	"weddify/models"
	"weddify/services/vendor"
	"weddify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VendorHandler exposes vendor account and catalogue endpoints.
type VendorHandler struct {
	VendorService vendor.VendorService
}

func NewVendorHandler(svc vendor.VendorService) *VendorHandler {
	return &VendorHandler{VendorService: svc}
}

// RegisterVendorHandler handles POST /vendors/register.
func (h *VendorHandler) RegisterVendorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req vendor.VendorRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	v, err := h.VendorService.Register(req)
	if err != nil {
		logger.Error("Vendor registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, v)
}

// AuthenticateVendorHandler handles POST /vendors/login.
func (h *VendorHandler) AuthenticateVendorHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	v, err := h.VendorService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}

// GetVendorHandler handles GET /vendors/:id (public profile).
func (h *VendorHandler) GetVendorHandler(c *gin.Context) {
	id := c.Param("id")
	v, err := h.VendorService.GetVendorByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}

// UpdateVendorProfileHandler handles PUT /vendors/me.
func (h *VendorHandler) UpdateVendorProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var profile models.VendorProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	v, err := h.VendorService.UpdateProfile(idStr, profile)
	if err != nil {
		logger.Error("Vendor profile update failed", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}

// SearchVendorsHandler handles GET /vendors/search.
func (h *VendorHandler) SearchVendorsHandler(c *gin.Context) {
	minRating, _ := strconv.ParseFloat(c.Query("minRating"), 64)
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)

	criteria := vendorRepo.VendorSearchCriteria{
		Category:  c.Query("category"),
		City:      c.Query("city"),
		MinRating: minRating,
		Limit:     limit,
	}
	vendors, err := h.VendorService.SearchVendors(criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

// CreatePackageHandler handles POST /vendors/me/packages.
func (h *VendorHandler) CreatePackageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.VendorService.CreatePackage(idStr, pkg)
	if err != nil {
		logger.Error("Package creation failed", zap.String("vendorID", idStr), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePackageHandler handles PUT /vendors/me/packages/:id.
func (h *VendorHandler) UpdatePackageHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	pkg.ID = c.Param("id")

	updated, err := h.VendorService.UpdatePackage(idStr, pkg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePackageHandler handles DELETE /vendors/me/packages/:id.
func (h *VendorHandler) DeletePackageHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.VendorService.DeletePackage(idStr, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
}

// ListVendorPackagesHandler handles GET /vendors/:id/packages.
func (h *VendorHandler) ListVendorPackagesHandler(c *gin.Context) {
	pkgs, err := h.VendorService.ListPackages(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": pkgs})
}

// SearchPackagesHandler handles GET /packages/search.
func (h *VendorHandler) SearchPackagesHandler(c *gin.Context) {
	maxPrice, _ := strconv.ParseInt(c.Query("maxPrice"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)

	criteria := packageRepo.PackageSearchCriteria{
		Category:      c.Query("category"),
		VendorID:      c.Query("vendorId"),
		MaxPrice:      maxPrice,
		OnlyAvailable: c.Query("available") == "true",
		Limit:         limit,
	}
	pkgs, err := h.VendorService.SearchPackages(criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": pkgs})
}
