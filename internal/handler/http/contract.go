package http

import (
	"net/http"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/domain/contract"
	"github.com/sbexpress/hris-backend-go/internal/handler/http/response"
)

type ContractHandler interface {
	GetEmployeeContract(w http.ResponseWriter, r *http.Request)
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type contractHandlerImpl struct {
	contractService contract.ContractService
	now             func() time.Time
}

func NewContractHandler(contractService contract.ContractService) ContractHandler {
	return &contractHandlerImpl{
		contractService: contractService,
		now:             time.Now,
	}
}

// GetEmployeeContract handles GET /employees/{id}/contract
func (h *contractHandlerImpl) GetEmployeeContract(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.contractService.GetEmployeeContract(r.Context(), id, h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetOverview handles GET /contracts/overview
func (h *contractHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.contractService.GetOverview(r.Context(), h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
