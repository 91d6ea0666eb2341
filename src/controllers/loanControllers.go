package controllers

import (
	"net/http"
	"strconv"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type LoanController struct {
	loans    *services.LoanService
	renewals *services.RenewalService
	returns  *services.ReturnService
}

func NewLoanController(loans *services.LoanService, renewals *services.RenewalService, returns *services.ReturnService) *LoanController {
	return &LoanController{
		loans:    loans,
		renewals: renewals,
		returns:  returns,
	}
}

// GetAllLoans handles GET requests to retrieve all loan transactions
func (c *LoanController) GetAllLoans(ctx *gin.Context) {
	loans, err := c.loans.GetAllLoans()
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, loans)
}

// GetLoanByID handles GET requests to retrieve a loan transaction by its ID
func (c *LoanController) GetLoanByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan ID"})
		return
	}

	loan, err := c.loans.GetLoanByID(id)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, loan)
}

// CreateLoan handles POST requests to open a new loan transaction
func (c *LoanController) CreateLoan(ctx *gin.Context) {
	var req services.CreateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.loans.CreateLoan(&req)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// CheckRenewal handles GET requests for a loan's renewal eligibility
func (c *LoanController) CheckRenewal(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan ID"})
		return
	}

	eligibility, err := c.renewals.CheckEligibility(id)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, eligibility)
}

// RenewLoan handles POST requests to extend a loan's due date
func (c *LoanController) RenewLoan(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan ID"})
		return
	}

	result, err := c.renewals.Renew(id)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ReturnBooks handles POST requests to return copies and settle fees
func (c *LoanController) ReturnBooks(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan ID"})
		return
	}

	var req services.ReturnRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.LoanTransactionId = id

	result, err := c.returns.ReturnBooks(&req)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
