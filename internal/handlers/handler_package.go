package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
)

// packageHandler handles HTTP requests for the tour catalog.
type packageHandler struct {
	packageService portssvc.PackageSvcFacade
}

func newPackageHandler(ps portssvc.PackageSvcFacade) *packageHandler {
	return &packageHandler{packageService: ps}
}

func registerPackageRoutes(rg *gin.RouterGroup, packageService portssvc.PackageSvcFacade) {
	h := newPackageHandler(packageService)

	packages := rg.Group("/packages")
	{
		packages.POST("", h.createPackage)
		packages.GET("", h.listPackages)
		packages.GET("/:id", h.getPackage)
		packages.GET("/:id/pricing", h.getPackagePricing)
		packages.PUT("/:id", h.updatePackage)
		packages.DELETE("/:id", h.deletePackage)
	}
}

func (h *packageHandler) createPackage(c *gin.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	pkg, err := h.packageService.CreatePackage(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPackageResponse(pkg))
}

func (h *packageHandler) getPackage(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	pkg, err := h.packageService.GetPackageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

// getPackagePricing returns the lightweight payload booking forms use to
// prefill the quoted price.
func (h *packageHandler) getPackagePricing(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	pkg, err := h.packageService.GetPackageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PackagePricingResponse{
		PackageID:             pkg.PackageID,
		CurrentPrice:          pkg.CurrentPrice(),
		BasePrice:             pkg.BasePrice,
		SeasonalPrice:         pkg.SeasonalPrice,
		TaxPercentage:         pkg.TaxPercentage,
		MaxDiscountPercentage: pkg.MaxDiscountPercentage,
	})
}

func (h *packageHandler) updatePackage(c *gin.Context) {
	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	pkg, err := h.packageService.UpdatePackage(c.Request.Context(), c.Param("id"), req, actorUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

func (h *packageHandler) deletePackage(c *gin.Context) {
	actorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.packageService.DeletePackage(c.Request.Context(), c.Param("id"), actorUserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *packageHandler) listPackages(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	activeOnly := c.DefaultQuery("activeOnly", "false") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	packages, newToken, err := h.packageService.ListPackages(c.Request.Context(), activeOnly, limit, queryToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListPackagesResponse{Packages: dto.ToPackageResponses(packages), NextToken: newToken})
}
